// Package logger provides filtering capabilities for sensitive data in log output.
package logger

import (
	"net/url"
	"reflect"
	"strings"
)

const (
	// DefaultMaskValue replaces sensitive values in log output
	DefaultMaskValue = "***"

	// DefaultMaxDepth is the default maximum recursion depth for filtering
	DefaultMaxDepth = 8
)

// FilterConfig defines the configuration for sensitive data filtering
type FilterConfig struct {
	// SensitiveFields contains field names that should be masked in logs
	SensitiveFields []string
	// MaskValue is the value used to replace sensitive data (default: "***")
	MaskValue string
}

// DefaultFilterConfig returns a default configuration with common sensitive field names
func DefaultFilterConfig() *FilterConfig {
	return &FilterConfig{
		SensitiveFields: []string{
			"password", "passwd", "pwd",
			"secret", "api_key", "apikey",
			"token", "authorization",
			"credential", "dsn", "connection_string",
		},
		MaskValue: DefaultMaskValue,
	}
}

// SensitiveDataFilter masks values whose field names look sensitive
type SensitiveDataFilter struct {
	config *FilterConfig
}

// NewSensitiveDataFilter creates a new filter with the given configuration
func NewSensitiveDataFilter(config *FilterConfig) *SensitiveDataFilter {
	if config == nil {
		config = DefaultFilterConfig()
	}
	if config.MaskValue == "" {
		config.MaskValue = DefaultMaskValue
	}
	return &SensitiveDataFilter{config: config}
}

// FilterString filters sensitive data from string values
func (f *SensitiveDataFilter) FilterString(key, value string) string {
	if f.isSensitiveField(key) {
		return f.maskString(value)
	}
	return value
}

// FilterValue filters sensitive data from any value, descending into
// map[string]any and slices up to DefaultMaxDepth levels.
func (f *SensitiveDataFilter) FilterValue(key string, value any) any {
	return f.filterValue(key, value, DefaultMaxDepth)
}

// FilterFields filters a map of fields for sensitive data
func (f *SensitiveDataFilter) FilterFields(fields map[string]any) map[string]any {
	filtered := make(map[string]any, len(fields))
	for key, value := range fields {
		filtered[key] = f.FilterValue(key, value)
	}
	return filtered
}

func (f *SensitiveDataFilter) filterValue(key string, value any, depth int) any {
	if f.isSensitiveField(key) {
		if s, ok := value.(string); ok {
			return f.maskString(s)
		}
		return f.config.MaskValue
	}
	if value == nil || depth <= 0 {
		return value
	}

	if m, ok := value.(map[string]any); ok {
		filtered := make(map[string]any, len(m))
		for k, v := range m {
			filtered[k] = f.filterValue(k, v, depth-1)
		}
		return filtered
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return value
	}

	filtered := make([]any, rv.Len())
	changed := false
	for i := range rv.Len() {
		elem := rv.Index(i).Interface()
		filtered[i] = f.filterValue(key, elem, depth-1)
		if _, isMap := elem.(map[string]any); isMap {
			changed = true
		}
	}
	if !changed {
		// Preserve the original slice type
		return value
	}
	return filtered
}

// isSensitiveField checks if a field name is considered sensitive
func (f *SensitiveDataFilter) isSensitiveField(fieldName string) bool {
	lowerFieldName := strings.ToLower(fieldName)
	for _, sensitiveField := range f.config.SensitiveFields {
		if strings.Contains(lowerFieldName, strings.ToLower(sensitiveField)) {
			return true
		}
	}
	return false
}

// maskString masks sensitive string values. Connection URLs keep their structure
// with only the password replaced.
func (f *SensitiveDataFilter) maskString(value string) string {
	if value == "" {
		return value
	}
	if isURL(value) {
		return f.maskURL(value)
	}
	return f.config.MaskValue
}

func isURL(value string) bool {
	for _, scheme := range []string{"http://", "https://", "postgres://", "postgresql://", "oracle://"} {
		if strings.HasPrefix(value, scheme) {
			return true
		}
	}
	return false
}

// maskURL replaces the password in user info. URLs without a password are masked entirely.
func (f *SensitiveDataFilter) maskURL(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.User == nil {
		return f.config.MaskValue
	}
	if _, hasPassword := parsed.User.Password(); !hasPassword {
		return f.config.MaskValue
	}

	username := parsed.User.Username()
	parsed.User = nil
	rest := strings.TrimPrefix(parsed.String(), parsed.Scheme+"://")
	return parsed.Scheme + "://" + username + ":" + f.config.MaskValue + "@" + rest
}
