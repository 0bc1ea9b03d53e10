package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/skillsenselab/transcribe/errors"
)

// DefaultConfigDir is the directory under the user home that holds the
// persisted config file.
const DefaultConfigDir = ".transcribe"

// DefaultConfigFile is the config file name inside DefaultConfigDir.
const DefaultConfigFile = "config.json"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	UserHomeDir() (string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	fs         FileSystem
	configFile string
	envFile    string
}

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *loaderConfig) { lc.fs = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load populates cfg from the config file and loads any .env file into the
// process environment. An explicitly supplied config file must exist and
// parse; the searched default locations are skipped silently when absent.
// Parse and read failures surface as configuration errors.
func Load(cfg any, opts ...LoaderOption) error {
	lc := loaderConfig{}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.fs == nil {
		lc.fs = &RealFileSystem{}
	}

	loadEnvFile(lc.fs, lc.envFile)

	path, explicit := lc.configFile, lc.configFile != ""
	if !explicit {
		path = findConfigFile(lc.fs)
	}
	if path == "" {
		return nil
	}
	if explicit && !lc.fs.Exists(path) {
		return errors.Configuration("failed to read config file: " + path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return errors.Configuration("failed to read config file: " + path).WithCause(err)
		}
		return errors.Configuration("failed to parse config file: " + path).WithCause(err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Configuration("failed to parse config file: " + path).WithCause(err)
	}
	return nil
}

// DefaultConfigPath returns the standard per-user config file path.
func DefaultConfigPath(fs FileSystem) (string, error) {
	home, err := fs.UserHomeDir()
	if err != nil {
		return "", errors.Configuration("cannot resolve user home directory").WithCause(err)
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// findConfigFile searches standard locations for a config file.
func findConfigFile(fs FileSystem) string {
	if home, err := fs.UserHomeDir(); err == nil {
		candidates := []string{
			filepath.Join(home, DefaultConfigDir, DefaultConfigFile),
			filepath.Join(home, DefaultConfigDir, "config.yml"),
		}
		for _, path := range candidates {
			if fs.Exists(path) {
				return path
			}
		}
	}
	for _, path := range []string{"./config.json", "./config.yml"} {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// loadEnvFile loads a .env file if present. Best effort: a missing default
// .env is not an error.
func loadEnvFile(fs FileSystem, explicit string) {
	path := explicit
	if path == "" {
		path = ".env"
	}
	if fs.Exists(path) {
		_ = fs.LoadEnv(path)
	}
}
