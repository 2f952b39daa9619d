package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

const (
	EnvPrefix         = "CDX_"
	DefaultConfigPath = "~/.config/cdx/config.yml"
)

// Flags are the global flags shared by every command.
type Flags struct {
	LogLevel       string
	ConfigFilePath string
}

type ConfigFile struct {
	// Home is the home directory string, read from HomeEnv once when the
	// configuration is loaded.
	Home string `yaml:"-"`

	HomeEnv     string `yaml:"home_env"`
	DefaultHome string `yaml:"default_home"`
	Shell       string `yaml:"shell"`
	Abbreviate  *bool  `yaml:"abbreviate"`
	Check       Check  `yaml:"check"`
}

type Check struct {
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ConfigFile {
	abbreviate := true
	return ConfigFile{
		HomeEnv:     DefaultHomeEnv,
		DefaultHome: DefaultHome,
		Shell:       defaultShell(),
		Abbreviate:  &abbreviate,
		Check:       Check{Concurrency: 8},
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// Display formats a path for output, abbreviating the home directory when
// enabled.
func (c ConfigFile) Display(path string) string {
	if c.Abbreviate != nil && !*c.Abbreviate {
		return path
	}
	return Abbreviate(c.Home, path)
}

// LoadConfig reads the YAML configuration at cfgpath. The path itself may use
// '~' and is resolved against the default home lookup. A missing file is not
// an error and returns the defaults.
func LoadConfig(cfgpath string) (ConfigFile, error) {
	return loadConfig(cfgpath, os.LookupEnv)
}

func loadConfig(cfgpath string, lookup LookupFunc) (ConfigFile, error) {
	lookup = lookupOnce(lookup)
	cfg := DefaultConfig()

	path := Resolve(HomeDir(lookup, DefaultHomeEnv, DefaultHome), Some(cfgpath))

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("config file not found, using defaults")
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		cfg.applyDefaults()
	}

	cfg.Home = HomeDir(lookup, cfg.HomeEnv, cfg.DefaultHome)

	log.Debug().
		Str("path", path).
		Str("home_env", cfg.HomeEnv).
		Str("default_home", cfg.DefaultHome).
		Msg("loaded config")

	return cfg, nil
}

// applyDefaults restores defaults for keys present in the file but left empty.
func (c *ConfigFile) applyDefaults() {
	def := DefaultConfig()

	if c.HomeEnv == "" {
		c.HomeEnv = def.HomeEnv
	}
	if c.Shell == "" {
		c.Shell = def.Shell
	}
	if c.Abbreviate == nil {
		c.Abbreviate = def.Abbreviate
	}
	if c.Check.Concurrency <= 0 {
		c.Check.Concurrency = def.Check.Concurrency
	}
}
