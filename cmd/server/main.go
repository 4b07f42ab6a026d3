package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sribet21/Cardistry/internal/app"
	"github.com/sribet21/Cardistry/internal/config"
	"github.com/sribet21/Cardistry/internal/ports/ws"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	registry := app.NewRegistry(app.Options{
		ChallengeWindow: cfg.ChallengeWindow,
		MaxPlayers:      cfg.MaxPlayers,
		MinPlayers:      cfg.MinPlayers,
	})
	gateway := ws.NewGateway(registry, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", gateway)

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
