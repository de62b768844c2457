package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Bot    BotConfig    `mapstructure:"bot"`
	Table  TableConfig  `mapstructure:"table"`
}

type ServerConfig struct {
	TcpAddr string `mapstructure:"tcp_addr"`
	WsAddr  string `mapstructure:"ws_addr"`
}

type BotConfig struct {
	Policy string `mapstructure:"policy"`
	Name   string `mapstructure:"name"`
}

type TableConfig struct {
	Players int `mapstructure:"players"`
}

const envPrefix = "LANDLORD"

var defaults = map[string]interface{}{
	"server.tcp_addr": ":9999",
	"server.ws_addr":  ":9998",
	"bot.policy":      "good",
	"bot.name":        "ratel",
	"table.players":   3,
}

// Load reads flags from args, then an optional YAML file, then LANDLORD_* environment
// variables, on top of the defaults.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("landlord", pflag.ContinueOnError)
	path := flags.StringP("config", "c", "", "path of a YAML config file")
	flags.String("tcp", defaults["server.tcp_addr"].(string), "tcp listen address")
	flags.String("ws", defaults["server.ws_addr"].(string), "websocket listen address, empty to disable")
	flags.String("policy", defaults["bot.policy"].(string), "hint policy: good or naive")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	bindings := map[string]string{
		"server.tcp_addr": "tcp",
		"server.ws_addr":  "ws",
		"bot.policy":      "policy",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *path != "" {
		v.SetConfigFile(*path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
