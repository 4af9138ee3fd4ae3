package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is not loaded")
	}
	return cfg.Validate()
}
