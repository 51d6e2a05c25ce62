package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	AppName  = "vcli"
	FileName = "config.yaml"

	EnvHost  = "VIKUNJA_HOST"
	EnvToken = "VIKUNJA_TOKEN"
)

// Config holds the credentials for one Vikunja instance
type Config struct {
	Host  string `yaml:"host"`
	Token string `yaml:"token"`
}

// UnreadableError reports a missing or corrupt credential file
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("cannot read credentials from %s: %v (run `%s login` to authenticate)", e.Path, e.Err, AppName)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// DefaultPath returns the credential file location under the XDG config directory
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName, FileName), nil
}

// LoadEnvFile loads a .env file from the working directory if there is one
func LoadEnvFile() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the credential file at path. VIKUNJA_HOST and VIKUNJA_TOKEN
// override its values; when both are set the file is not needed at all.
func Load(path string) (*Config, error) {
	envHost := strings.TrimSpace(os.Getenv(EnvHost))
	envToken := strings.TrimSpace(os.Getenv(EnvToken))
	if envHost != "" && envToken != "" {
		return &Config{Host: normalizeHost(envHost), Token: envToken}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}

	if envHost != "" {
		cfg.Host = envHost
	}
	if envToken != "" {
		cfg.Token = envToken
	}
	cfg.Host = normalizeHost(cfg.Host)

	if cfg.Host == "" || strings.TrimSpace(cfg.Token) == "" {
		return nil, &UnreadableError{Path: path, Err: errors.New("host and token must both be set")}
	}
	return cfg, nil
}

// Save overwrites the credential file at path, creating its directory
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(&Config{Host: normalizeHost(cfg.Host), Token: cfg.Token})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func normalizeHost(host string) string {
	return strings.TrimRight(strings.TrimSpace(host), "/")
}
