package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/zwoparse/internal/osutil"
)

const envPrefix = "ZWOPARSE"

// Keys in the config file. Each one can be overridden by an environment
// variable such as ZWOPARSE_FTP or ZWOPARSE_MIN_DURATION.
const (
	keyFTP         = "ftp"
	keyWeight      = "kg"
	keyFormat      = "type"
	keyMinDuration = "min_duration"
	keyVerbose     = "verbose"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file holding the current settings is created when none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := writeViperConfig(v, configPath); err != nil {
			return err
		}

		return loadViperConfig(v, c)
	}
}

// Save writes the persistent settings of c to configPath.
func (c *Config) Save(configPath string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	setViperValues(c, v.Set)

	return writeViperConfig(v, configPath)
}

func newViper(configPath string, c *Config) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	setViperValues(c, v.SetDefault)

	return v
}

func setViperValues(c *Config, set func(string, any)) {
	set(keyFTP, c.FTP)
	set(keyWeight, c.Weight)
	set(keyFormat, c.Format)
	set(keyMinDuration, c.MinDuration)
	set(keyVerbose, c.Verbose)
}

func writeViperConfig(v *viper.Viper, configPath string) error {
	err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
	if err != nil {
		return errWriteConfig.Wrap(err)
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.FTP = v.GetInt(keyFTP)
	c.Weight = v.GetFloat64(keyWeight)
	c.Format = strings.ToLower(v.GetString(keyFormat))
	c.MinDuration = v.GetInt(keyMinDuration)
	c.Verbose = v.GetBool(keyVerbose)

	return nil
}
