package config

// GetString retrieves a string value from the configuration or the provided default.
// It serves keys outside the typed sections, such as log.mask and log.redact.
func (c *Config) GetString(key string, defaultVal ...string) string {
	if !c.exists(key) {
		if len(defaultVal) > 0 {
			return defaultVal[0]
		}
		return ""
	}
	return c.k.String(key)
}

// Exists reports whether key was set by any configuration source.
func (c *Config) Exists(key string) bool {
	return c.exists(key)
}

func (c *Config) exists(key string) bool {
	return c != nil && c.k != nil && c.k.Exists(key)
}
