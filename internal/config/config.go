package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	BaseURL  string `yaml:"base-url" env:"BASE_URL" env-default:""`
	Redis    Redis  `yaml:"redis"`
	Board    Board  `yaml:"board"`
}

type Redis struct {
	Host            string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port            string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	FinishedGameTTL time.Duration `yaml:"finished-game-ttl" env:"REDIS_FINISHED_GAME_TTL" env-default:"24h"`
}

type Board struct {
	SeatsPerPlayer int `yaml:"seats-per-player" env:"BOARD_SEATS_PER_PLAYER" env-default:"6"`
	InitialStones  int `yaml:"initial-stones" env:"BOARD_INITIAL_STONES" env-default:"6"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Board.BoardConfig().Validate(); err != nil {
		panic(fmt.Errorf("invalid board section: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Board) BoardConfig() entity.BoardConfig {
	return entity.BoardConfig{
		SeatsPerPlayer: that.SeatsPerPlayer,
		InitialStones:  that.InitialStones,
	}
}
