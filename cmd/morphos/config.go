package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/pedrohavay/morphos/russian"
)

// Config is the resolved CLI configuration.
type Config struct {
	Gender   string    `mapstructure:"gender"`
	Format   string    `mapstructure:"format"`
	Encoding string    `mapstructure:"encoding"`
	Rules    string    `mapstructure:"rules"`
	Log      LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"gender":   "gender",
	"format":   "format",
	"encoding": "encoding",
	"rules":    "rules",
}

var formats = map[string]bool{"text": true, "json": true, "jsonl": true, "csv": true, "msgpack": true}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gender", "")
	v.SetDefault("format", "text")
	v.SetDefault("encoding", "utf-8")
	v.SetDefault("rules", "")
	v.SetDefault("log.level", "info")
}

// loadConfig resolves configuration with the following precedence:
// 1. Command line flags
// 2. Environment variables (MORPHOS_FORMAT, MORPHOS_LOG_LEVEL, ...)
// 3. Config file
// 4. Default values
// It returns the config file used, if any.
func loadConfig(flags *pflag.FlagSet) (*Config, string, error) {
	v := viper.New()
	setDefaults(v)

	cfgPath, _ := flags.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("morphos")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/morphos/")
		v.AddConfigPath("$HOME/.morphos")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, "", fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("MORPHOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindChangedFlags(v, flags)
	if verbose, _ := flags.GetBool("verbose"); verbose {
		v.Set("log.level", "debug")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}

// bindChangedFlags copies only flags set on the command line, so unset flag
// defaults do not shadow the environment or the config file.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if !formats[c.Format] {
		return fmt.Errorf("invalid format %q (want text, json, jsonl, csv or msgpack)", c.Format)
	}
	if _, err := inputEncoding(c.Encoding); err != nil {
		return err
	}
	if _, err := russian.ParseGender(c.Gender); err != nil {
		return fmt.Errorf("invalid gender: %w", err)
	}
	return nil
}

// gender returns the configured default gender; validate has already checked it.
func (c *Config) gender() russian.Gender {
	g, _ := russian.ParseGender(c.Gender)
	return g
}

// inputEncoding resolves the encoding of stdin; nil means UTF-8.
func inputEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1251", "cp1251":
		return charmap.Windows1251, nil
	case "koi8-r", "koi8r":
		return charmap.KOI8R, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q (want utf-8, windows-1251 or koi8-r)", name)
}

// decodeInput wraps r so it yields UTF-8.
func decodeInput(r io.Reader, name string) (io.Reader, error) {
	enc, err := inputEncoding(name)
	if err != nil || enc == nil {
		return r, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
