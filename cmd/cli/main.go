package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/transport/console"
	"github.com/rocketscienceinc/tictactoe-board/transport/redis"
)

var errFeedDisabled = errors.New("redis feed is disabled in config")

func main() {
	configPath := flag.String("config", "config.yml", "path to the config file")
	watch := flag.String("watch", "", "game ID to follow on the redis feed instead of playing")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	logger := config.NewLogger(os.Stderr, conf.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	if *watch != "" {
		err = runWatch(ctx, conf, *watch)
	} else {
		err = runGame(ctx, conf)
	}

	if err != nil {
		logger.Error("cli failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func runGame(ctx context.Context, conf *config.Config) error {
	presenter := console.NewPresenter(os.Stdout)
	playerOne, playerTwo := conf.Board.Players()

	game, err := tictactoe.NewGame(presenter, conf.Board.Size, playerOne, playerTwo)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	game.StartGame()

	return console.Play(ctx, os.Stdin, os.Stdout, game, presenter)
}

// runWatch prints the events a browser game publishes until interrupted.
func runWatch(ctx context.Context, conf *config.Config, gameID string) error {
	if !conf.Redis.Enabled {
		return errFeedDisabled
	}

	client, err := redis.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis: %w", err)
	}
	defer client.Close()

	events, unsubscribe, err := redis.Subscribe(ctx, client, conf.Redis.Channel, gameID)
	if err != nil {
		return err
	}
	defer func() { _ = unsubscribe() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			printEvent(event)
		}
	}
}

func printEvent(event redis.Event) {
	switch {
	case event.Text != nil:
		fmt.Printf("[%s] %s %q\n", event.GameID, event.Type, *event.Text)
	case event.Cell != nil:
		fmt.Printf("[%s] %s cell=%d marker=%q\n", event.GameID, event.Type, event.Cell.ID, event.Cell.Marker)
	default:
		fmt.Printf("[%s] %s\n", event.GameID, event.Type)
	}
}
