package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv parses a .env file. A missing file yields an empty map.
func LoadDotEnv(fs afero.Fs, path string) (map[string]string, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	envs, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return envs, nil
}

// ResolveToken fills Token from the environment variable named by
// Converter.TokenEnv. Process variables take precedence over dotenv values.
func (c *Config) ResolveToken(lookup LookupFunc, dotenv map[string]string) {
	key := c.Converter.TokenEnv
	if key == "" {
		key = DefaultTokenEnv
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup(key); ok && value != "" {
		c.Token = value
		return
	}
	c.Token = dotenv[key]
}
