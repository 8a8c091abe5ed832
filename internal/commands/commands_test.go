package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testVersion = "v1.2.3"

// execute runs the root command with args in an isolated working directory
// and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCommand(testVersion)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

// writeConfig writes a stmtkit.yaml to a temporary directory and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stmtkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
