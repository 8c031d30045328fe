package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be > 0 (got %v)", c.Provider.Timeout)
	}

	if c.TTS.MaxTextLen <= 0 {
		return fmt.Errorf("tts.max_text_len must be > 0 (got %d)", c.TTS.MaxTextLen)
	}

	if c.History.DefaultLimit <= 0 {
		return fmt.Errorf("history.default_limit must be > 0 (got %d)", c.History.DefaultLimit)
	}
	if c.History.MaxLimit < c.History.DefaultLimit {
		return fmt.Errorf("history.max_limit must be >= default_limit (got %d < %d)",
			c.History.MaxLimit, c.History.DefaultLimit)
	}

	return nil
}
