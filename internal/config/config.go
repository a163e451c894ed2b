// Package config loads ghud settings from an optional YAML file and GHUD_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/DMFirmy/GHud/internal/logging"
)

// Name is the config file searched for in the working directory.
const Name = "ghud"

type Config struct {
	Log      logging.Config
	Interval time.Duration // minimum time between rendered frames
	Mono     bool          // show the monochrome device
	QVGA     bool          // show the colour device
	Scale    int           // window pixels per device pixel
	Scenario string        // demo scenario JSON; empty uses the built-in one

	// File is the config file that was read, if any.
	File string
}

func defaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.dir", "")
	v.SetDefault("hud.interval", 200*time.Millisecond)
	v.SetDefault("devices.mono", true)
	v.SetDefault("devices.qvga", true)
	v.SetDefault("window.scale", 2)
	v.SetDefault("scenario.path", "")
}

// Load reads settings. With an empty path ghud.yaml is looked up in the
// working directory and may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix("GHUD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	c := &Config{
		Log: logging.Config{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Dir:    v.GetString("log.dir"),
		},
		Interval: v.GetDuration("hud.interval"),
		Mono:     v.GetBool("devices.mono"),
		QVGA:     v.GetBool("devices.qvga"),
		Scale:    v.GetInt("window.scale"),
		Scenario: v.GetString("scenario.path"),
		File:     v.ConfigFileUsed(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Interval < 0 {
		return fmt.Errorf("hud.interval %v is negative", c.Interval)
	}
	if c.Scale < 1 {
		return fmt.Errorf("window.scale %d must be at least 1", c.Scale)
	}
	if !c.Mono && !c.QVGA {
		return errors.New("no device enabled")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
