package config

import "github.com/spf13/viper"

// Config holds the runtime configuration. Values come from environment
// variables with the DENIMSTOK_ prefix (a .env file is loaded by main
// before this runs), falling back to the defaults below.
type Config struct {
	Addr          string `mapstructure:"addr"`
	DBPath        string `mapstructure:"db"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
	CORSOrigins   string `mapstructure:"cors_origins"`
	LogFile       string `mapstructure:"log_file"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DENIMSTOK")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db", "denimstok.sqlite3")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "admin123")
	v.SetDefault("cors_origins", "")
	v.SetDefault("log_file", "")

	cfg := &Config{
		Addr:          v.GetString("addr"),
		DBPath:        v.GetString("db"),
		AdminUsername: v.GetString("admin_username"),
		AdminPassword: v.GetString("admin_password"),
		CORSOrigins:   v.GetString("cors_origins"),
		LogFile:       v.GetString("log_file"),
	}
	return cfg, nil
}
