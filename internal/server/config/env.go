package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays values from the environment using the env tags on
// Config. Variables that are not set leave the current value untouched.
func parseEnv(config *Config) error {
	return cleanenv.ReadEnv(config)
}
