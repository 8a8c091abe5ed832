package testing

// Logger levels used across test files.
const (
	// TestLoggerLevelDebug is the debug log level used in most tests
	TestLoggerLevelDebug = "debug"
)

// Common statement fragments shared by tests.
const (
	TestTarget      = "users"
	TestField       = "id"
	TestPredicate   = "age > 18"
	TestSortField   = "name"
	TestRenderedSQL = "SELECT id FROM users WHERE age > 18"
)
