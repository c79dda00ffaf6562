package server

import (
	"github.com/spf13/viper"

	"github.com/lion-city/sgagents/pkg/sockpath"
)

// Config is the top-level daemon configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP/socket settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
	Socket string `mapstructure:"socket"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from file, env, and defaults.
func LoadConfig(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.listen", "127.0.0.1:8080")
	v.SetDefault("server.socket", sockpath.DefaultSocketPath())
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("sgagents")
		v.AddConfigPath("/etc/sgagents")
		v.AddConfigPath("$HOME/.config/sgagents")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SGAGENTS")
	v.AutomaticEnv()

	v.BindEnv("server.listen", "SGAGENTS_LISTEN")
	v.BindEnv("server.socket", "SGAGENTS_SOCKET")
	v.BindEnv("log.level", "SGAGENTS_LOG_LEVEL")

	// Config file is optional.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
