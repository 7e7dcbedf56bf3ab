package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viper keys for config.yml.
const (
	keyTimerWork             = "timer.work_minutes"
	keyTimerBreak            = "timer.break_minutes"
	keyTimerLongBreak        = "timer.long_break_minutes"
	keyTimerLongBreakCadence = "timer.sessions_before_long_break"
	keyWorkMessage           = "messages.work"
	keyBreakMessage          = "messages.break"
	keyLongBreakMessage      = "messages.long_break"
	keyNotificationsEnabled  = "notifications.enabled"
	keySessionCmd            = "settings.cmd"
	keyHistoryLimit          = "settings.history_limit"
	keyDarkTheme             = "display.dark_theme"
	keyTwentyFourHour        = "display.24hr_clock"
	keyLogLevel              = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath. A missing file is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()

	v.SetDefault(keyTimerWork, d.WorkMinutes)
	v.SetDefault(keyTimerBreak, d.BreakMinutes)
	v.SetDefault(keyTimerLongBreak, d.LongBreakMinutes)
	v.SetDefault(keyTimerLongBreakCadence, d.SessionsBeforeLongBreak)
	v.SetDefault(keyWorkMessage, "Great work! Time for a break!")
	v.SetDefault(keyBreakMessage, "Break time over! Ready to focus again?")
	v.SetDefault(keyLongBreakMessage, "Long break over! Ready to focus again?")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyHistoryLimit, 10)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
}
