package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

// FeedFactory builds an extra presenter for a game, e.g. the Redis event feed.
type FeedFactory func(gameID string) tictactoe.Presenter

// session is one browser tab: one connection, one game.
type session struct {
	id   string
	conn *websocket.Conn
	game *tictactoe.Game
}

type Server struct {
	logger   *slog.Logger
	board    config.Board
	feed     FeedFactory
	upgrader websocket.Upgrader

	handlers map[string]func(s *session, message *Message) error
}

func New(logger *slog.Logger, board config.Board, feed FeedFactory) *Server {
	server := &Server{
		logger: logger.With("component", "ws-server"),
		board:  board,
		feed:   feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]func(*session, *Message) error),
	}

	server.handlers[ActionCellActivate] = server.handleCellActivate
	server.handlers[ActionGameReset] = server.handleGameReset

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	s, err := that.newSession(conn)
	if err != nil {
		log.Error("failed to create session", "error", err)
		return
	}

	log.Info("WebSocket connection established", "gameID", s.id)

	if err = that.handleMessages(s); err != nil {
		log.Info("WebSocket connection closed", "gameID", s.id, "reason", err)
	}
}

func (that *Server) newSession(conn *websocket.Conn) (*session, error) {
	gameID := pkg.GenerateGameID()

	var presenter tictactoe.Presenter = NewPresenter(that.logger, conn)
	if that.feed != nil {
		presenter = tictactoe.Presenters{presenter, that.feed(gameID)}
	}

	playerOne, playerTwo := that.board.Players()

	if err := writeMessage(conn, ActionSession, SessionPayload{
		GameID:  gameID,
		Players: [2]entity.Player{playerOne, playerTwo},
	}); err != nil {
		return nil, err
	}

	game, err := tictactoe.NewGame(presenter, that.board.Size, playerOne, playerTwo)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	game.StartGame()

	return &session{
		id:   gameID,
		conn: conn,
		game: game,
	}, nil
}

// handleMessages - processes messages from the client until the connection drops.
func (that *Server) handleMessages(s *session) error {
	log := that.logger.With("method", "handleMessages", "gameID", s.id)

	for {
		var message Message
		if err := s.conn.ReadJSON(&message); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Error("failed to unmarshal message", "error", err)
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.replyError(s, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action))
			continue
		}

		if err := handler(s, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			that.replyError(s, err)
		}
	}
}

func (that *Server) handleCellActivate(s *session, message *Message) error {
	var payload ActivatePayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	if payload.Cell == nil {
		return fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload)
	}

	s.game.Grid().Activate(*payload.Cell)

	that.logger.Debug("cell activated", "gameID", s.id, "cell", *payload.Cell, "state", s.game.State().String())

	return nil
}

func (that *Server) handleGameReset(s *session, _ *Message) error {
	s.game.StartGame()

	that.logger.Debug("game reset", "gameID", s.id)

	return nil
}

func (that *Server) replyError(s *session, err error) {
	if sendErr := writeMessage(s.conn, ActionError, ErrorPayload{Error: err.Error()}); sendErr != nil {
		that.logger.Error("failed to send error", "gameID", s.id, "error", sendErr)
	}
}
