package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	RedisUrl         string `mapstructure:"REDIS_URL"`
	IsLocalCors      bool   `mapstructure:"LOCAL_CORS"`
	DefaultBoardSize int    `mapstructure:"DEFAULT_BOARD_SIZE"`
	BonusBoardSize   int    `mapstructure:"BONUS_BOARD_SIZE"`
	GateCode         string `mapstructure:"GATE_CODE"`
	SessionTTLHours  int    `mapstructure:"SESSION_TTL_HOURS"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DEFAULT_BOARD_SIZE", 8)
	viper.SetDefault("BONUS_BOARD_SIZE", 6)
	viper.SetDefault("GATE_CODE", "1234")
	viper.SetDefault("SESSION_TTL_HOURS", 11)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
