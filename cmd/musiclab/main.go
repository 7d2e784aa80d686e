package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/kTowkA/musiclab/internal/app"
	"github.com/kTowkA/musiclab/internal/config"
	"github.com/kTowkA/musiclab/internal/logger"
	"github.com/kTowkA/musiclab/internal/storage/memory"
)

var (
	flagA string
	flagL string
)

func init() {
	flag.StringVar(&flagA, "a", "localhost:8080", "address:host")
	flag.StringVar(&flagL, "l", "info", "log level")
}

func main() {
	flag.Parse()

	cfg, err := config.ParseConfig(slog.Default(), config.ConfigAddress(flagA), config.ConfigLogLevel(flagL))
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.NewLogger(logger.LevelFromString(cfg.LogLevel()))
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Close()

	store := memory.NewStorage()
	defer store.Close()

	srv, err := app.NewServer(cfg, lg.Logger)
	if err != nil {
		log.Fatal(err)
	}

	// работаем до сигнала остановки, плейлисты живут только в памяти процесса
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = srv.Run(ctx, store); err != nil {
		log.Fatal(err)
	}
}
