package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

var (
	ErrEmptySymbol     = errors.New("player symbol is empty")
	ErrSameSymbols     = errors.New("players share the same symbol")
	ErrInvalidGridSize = errors.New("grid size must be positive")
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	PublicURL  string `yaml:"public-url" env:"PUBLIC_URL" env-default:"http://localhost:9090"`
	Board      Board  `yaml:"board"`
	Redis      Redis  `yaml:"redis"`
}

type Board struct {
	Size      int    `yaml:"size" env:"BOARD_SIZE"`
	PlayerOne Player `yaml:"player-one" env-prefix:"PLAYER_ONE_"`
	PlayerTwo Player `yaml:"player-two" env-prefix:"PLAYER_TWO_"`
}

type Player struct {
	Name   string `yaml:"name" env:"NAME"`
	Symbol string `yaml:"symbol" env:"SYMBOL"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"tictactoe"`
}

// MustLoad - loads an optional .env file and then config.yml, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	// a missing .env file is fine, variables may come from the real environment
	_ = godotenv.Load()

	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks that a game can be built from the board settings.
func (that *Config) Validate() error {
	if that.Board.Size <= 0 {
		return fmt.Errorf("%w: %w: %d", apperror.ErrInvalidConfiguration, ErrInvalidGridSize, that.Board.Size)
	}

	one := strings.TrimSpace(that.Board.PlayerOne.Symbol)
	two := strings.TrimSpace(that.Board.PlayerTwo.Symbol)

	if one == "" || two == "" {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfiguration, ErrEmptySymbol)
	}

	if one == two {
		return fmt.Errorf("%w: %w: %q", apperror.ErrInvalidConfiguration, ErrSameSymbols, one)
	}

	return nil
}

func (that *Board) Players() (entity.Player, entity.Player) {
	return entity.NewPlayer(that.PlayerOne.Name, that.PlayerOne.Symbol),
		entity.NewPlayer(that.PlayerTwo.Name, that.PlayerTwo.Symbol)
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
