package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pressure-log/cliparse"
	"github.com/danielhkuo/pressure-log/db"
	"github.com/danielhkuo/pressure-log/notify"
	"github.com/danielhkuo/pressure-log/router"
	"github.com/danielhkuo/pressure-log/store"
)

func main() {
	var err error

	// .env is optional; deployment platforms inject env vars directly
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (driver name matches the database type)
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Shared store handle, constructed once and injected everywhere
	readingStore := store.NewSQLStore(dbConn)

	// Telegram alerts are optional
	var notifier notify.Notifier = notify.Nop{}
	if cfg.TelegramBotToken != "" {
		tg, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			slog.Error("telegram setup failed", "error", err)
			os.Exit(1)
		}
		notifier = tg
		slog.Info("Telegram notifications enabled", "chat_id", cfg.TelegramChatID)
	} else {
		slog.Info("Telegram notifications disabled")
	}

	// Create router
	mux := router.NewRouter(readingStore, notifier, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
