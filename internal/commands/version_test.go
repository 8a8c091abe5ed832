package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const builtWithPrefix = "Built with "

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand(testVersion)
	require.NotNil(t, cmd)

	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Show version information", cmd.Short)
	assert.NotNil(t, cmd.Run)
}

func TestPrintVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "development version", version: "dev"},
		{name: "release version", version: "v1.0.0"},
		{name: "empty version", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printVersion(&buf, tt.version)

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, 3)
			assert.Equal(t, "stmtkit version "+tt.version, lines[0])
			assert.Equal(t, builtWithPrefix+runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH, lines[1])
			assert.Equal(t, "Supported vendors: generic, postgresql, oracle", lines[2])
		})
	}
}

func TestVersionCommandIntegration(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stmtkit version "+testVersion)
	assert.Contains(t, out, builtWithPrefix+runtime.Version())
}

func TestRootVersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, testVersion)
}
