package rest

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
)

const (
	qrSize          = 256
	shutdownTimeout = 5 * time.Second
)

//go:embed static/index.html
var static embed.FS

type pageData struct {
	SocketPort string
	Title      string
}

// Server serves the board page, the join QR code and the health check.
type Server struct {
	logger *slog.Logger
	conf   *config.Config
	page   *template.Template
}

func New(logger *slog.Logger, conf *config.Config) (*Server, error) {
	page, err := template.ParseFS(static, "static/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return &Server{
		logger: logger.With("component", "http-server"),
		conf:   conf,
		page:   page,
	}, nil
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/qr", that.qrHandler)
	mux.HandleFunc("/", that.pageHandler)

	logged := handlers.CustomLoggingHandler(io.Discard, mux, that.logRequest)
	cors := handlers.CORS(handlers.AllowedOrigins([]string{"*"}), handlers.AllowedMethods([]string{http.MethodGet}))

	return handlers.RecoveryHandler()(cors(logged))
}

func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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

func (that *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := pageData{
		SocketPort: that.conf.SocketPort,
		Title:      "Tic Tac Toe",
	}

	if err := that.page.Execute(w, data); err != nil {
		that.logger.Error("failed to render page", "error", err)
	}
}

// qrHandler - PNG QR code of the public page URL, so a second device can open the board.
func (that *Server) qrHandler(w http.ResponseWriter, _ *http.Request) {
	png, err := qrcode.Encode(that.conf.PublicURL, qrcode.Medium, qrSize)
	if err != nil {
		that.logger.Error("failed to encode qr code", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err = w.Write(png); err != nil {
		that.logger.Error("failed to write qr code", "error", err)
	}
}

func (that *Server) logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	that.logger.Info("http request",
		"method", params.Request.Method,
		"path", params.URL.Path,
		"status", params.StatusCode,
		"size", params.Size,
	)
}
