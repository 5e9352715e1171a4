package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// config holds the settings merged from flags, LNKCTL_* environment
// variables and lnkctl.yaml.
type config struct {
	CodePage string `mapstructure:"codepage"`
	Output   string `mapstructure:"output"`
	Resolve  bool   `mapstructure:"resolve"`
	Mmap     bool   `mapstructure:"mmap"`
	LogFile  string `mapstructure:"log_file"`
}

func defaultConfig() *config {
	return &config{Output: outputText, Resolve: true}
}

// configFlags maps config keys to the persistent flags that override them.
var configFlags = map[string]string{
	"codepage": "codepage",
	"output":   "output",
	"resolve":  "resolve",
	"mmap":     "mmap",
	"log_file": "log-file",
}

// loadConfig reads lnkctl.yaml (or path, if set), applies LNKCTL_*
// environment variables, and lets explicitly set flags win.
func loadConfig(path string, flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lnkctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.lnkctl")
		v.AddConfigPath("/etc/lnkctl")
	}

	def := defaultConfig()
	v.SetDefault("codepage", def.CodePage)
	v.SetDefault("output", def.Output)
	v.SetDefault("resolve", def.Resolve)
	v.SetDefault("mmap", def.Mmap)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix("LNKCTL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range configFlags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	switch c.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", c.Output)
	}
	return &c, nil
}
