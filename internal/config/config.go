package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/layoutlab/nodekit/internal/branding"
	"github.com/layoutlab/nodekit/internal/logger"
	"github.com/layoutlab/nodekit/internal/userdata"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyLogOutput  = "log.output"
	KeyPluginsDir = "plugins.dir"
	shortcutsKey  = "shortcuts"
)

// Settings is a loaded settings file.
type Settings struct {
	v    *viper.Viper
	path string

	// Kept out of viper so WriteConfigAs never persists them.
	shortcutDefaults map[string]string
}

// Dir returns the path to the config directory (~/.nodekit/).
func Dir() string {
	dir, err := userdata.GetHomeRoot()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return dir
}

// FilePath returns the full path to the config file (~/.nodekit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads the default config file and environment.
func Load() (*Settings, error) {
	return Open(FilePath())
}

// Open reads the config file at path. A missing file is not an error; the
// file is created on the first Set.
func Open(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return &Settings{v: v, path: path, shortcutDefaults: make(map[string]string)}, nil
}

// Path returns the backing file path.
func (s *Settings) Path() string { return s.path }

// Get returns a config value by key. Returns empty string if not set.
func (s *Settings) Get(key string) string {
	return s.v.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func (s *Settings) Set(key string, value any) error {
	s.v.Set(key, value)
	return s.save()
}

// Logging returns the logging configuration.
func (s *Settings) Logging() logger.Config {
	cfg := logger.Config{
		Level:   s.v.GetString(KeyLogLevel),
		Format:  s.v.GetString(KeyLogFormat),
		Output:  s.v.GetString(KeyLogOutput),
		NoColor: s.v.GetBool("log.no_color"),
	}
	cfg.ApplyDefaults()
	return cfg
}

// PluginsDir returns the configured plugins directory, falling back to the
// userdata default.
func (s *Settings) PluginsDir() (string, error) {
	if dir := s.v.GetString(KeyPluginsDir); dir != "" {
		return dir, nil
	}
	return userdata.GetPluginsRoot()
}

func (s *Settings) save() error {
	if err := userdata.EnsureDir(filepath.Dir(s.path)); err != nil {
		return err
	}

	// Create the file if it doesn't exist.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		f, err := os.Create(s.path)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", s.path, err)
		}
		f.Close()
	}

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
