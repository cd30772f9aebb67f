// Package config wraps the settings every crossfill command shares. Flags
// are bound through viper so each one can also come from a CROSSFILL_
// prefixed environment variable; command-specific flags stay in the
// commands themselves.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath       = "data-path"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigDebug          = "debug"
	ConfigSolveTimeout   = "solve-timeout"
	ConfigCPUProfile     = "cpu-profile"
)

type Config struct {
	vals *viper.Viper
}

// Load binds the shared flags and the environment. Pass the command line
// arguments after the program name, or nil to read only defaults and the
// environment.
func (c *Config) Load(args []string) error {
	c.vals = viper.New()
	fs := pflag.NewFlagSet("crossfill", pflag.ContinueOnError)

	fs.String(ConfigDataPath, "./data", "directory that word lists are searched in")
	fs.String(ConfigDefaultLexicon, "words.txt", "word list to fill with when none is given")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Duration(ConfigSolveTimeout, 0, "give up on a puzzle after this long; 0 means never")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.vals.BindPFlags(fs); err != nil {
		return err
	}
	c.vals.SetEnvPrefix("crossfill")
	c.vals.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.vals.AutomaticEnv()
	return nil
}

// DefaultConfig returns a config loaded from nothing but the defaults and
// the environment. Tests use it.
func DefaultConfig() Config {
	c := Config{}
	if err := c.Load(nil); err != nil {
		panic(err)
	}
	return c
}

func (c *Config) GetString(key string) string {
	return c.vals.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vals.GetBool(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.vals.GetDuration(key)
}

// Set overrides a single setting.
func (c *Config) Set(key string, value interface{}) {
	c.vals.Set(key, value)
}

// AllSettings dumps the resolved settings, for logging at startup.
func (c *Config) AllSettings() map[string]interface{} {
	return c.vals.AllSettings()
}

// AdjustRelativePaths anchors a relative data path at the executable's
// directory, so commands behave the same no matter where they are invoked
// from.
func (c *Config) AdjustRelativePaths(basepath string) {
	dataPath := c.GetString(ConfigDataPath)
	if !filepath.IsAbs(dataPath) {
		c.vals.Set(ConfigDataPath, filepath.Join(basepath, dataPath))
	}
}
