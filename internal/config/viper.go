package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDefaultDuration  = "journey.default_duration"
	keyDefaultOrigin    = "journey.default_origin"
	keyDefaultDest      = "journey.default_destination"
	keyNotifyEnabled    = "notifications.enabled"
	keyNotifySound      = "notifications.sound"
	keyCountInterrupted = "stats.count_interrupted"
	keyDarkTheme        = "display.dark_theme"
	keyTwentyFourHour   = "display.24hr_clock"
	keySessionCmd       = "settings.cmd"
)

// WithViperConfig returns an Option that loads configuration from the
// config file, writing one with defaults when it does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyDefaultDuration, "25m")
	v.SetDefault(keyDefaultOrigin, "tokyo")
	v.SetDefault(keyDefaultDest, "osaka")
	v.SetDefault(keyNotifyEnabled, true)
	v.SetDefault(keyNotifySound, "")
	v.SetDefault(keyCountInterrupted, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keySessionCmd, "")
}

func loadViperConfig(v *viper.Viper, c *Config) error {
	dur, err := ParseDuration(v.GetString(keyDefaultDuration))
	if err != nil {
		return err
	}

	c.Journey.DefaultDuration = dur
	c.Journey.DefaultOrigin = v.GetString(keyDefaultOrigin)
	c.Journey.DefaultDest = v.GetString(keyDefaultDest)
	c.Notification.Enabled = v.GetBool(keyNotifyEnabled)
	c.Notification.Sound = v.GetString(keyNotifySound)
	c.Stats.CountInterrupted = v.GetBool(keyCountInterrupted)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.System.SessionCmd = v.GetString(keySessionCmd)

	return nil
}

// ParseDuration accepts Go duration strings, treating a bare number as
// minutes.
func ParseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, errInvalidDuration.Fmt(s)
	}

	return mins, nil
}
