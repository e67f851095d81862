// Package config reads application settings from environment variables and,
// optionally, a config file via Viper. Environment variables win.
package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups all application settings.
type Config struct {
	App     AppConfig
	Theme   ThemeConfig
	History HistoryConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env      string // development, production
	LogLevel string // debug, info, warn, error
}

// ThemeConfig selects the startup palette.
type ThemeConfig struct {
	Mode        string // dark, light, custom
	CustomPath  string // JSON palette file, required for custom mode
	WatchCustom bool   // reload the custom palette when its file changes
}

// HistoryConfig bounds the in-memory conversion history.
type HistoryConfig struct {
	Limit int
}

// Load reads configuration from env vars (GOMETRICS_*) and, if present, a
// gometrics.yaml file in the working directory or ~/.config/gometrics.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("gometrics")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/gometrics")
	_ = v.ReadInConfig() // config file is optional

	v.SetEnvPrefix("GOMETRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "app.env", "development"),
			LogLevel: getString(v, "app.log_level", "info"),
		},
		Theme: ThemeConfig{
			Mode:        getString(v, "theme.mode", "dark"),
			CustomPath:  getString(v, "theme.custom_path", ""),
			WatchCustom: getBool(v, "theme.watch_custom", true),
		},
		History: HistoryConfig{
			Limit: getInt(v, "history.limit", 100),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
