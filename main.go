package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"commtrack/adapters/excel"
	"commtrack/app"
	"commtrack/internal/config"
	"commtrack/internal/logger"
	"commtrack/ui"
)

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	defer logger.Log.Sync()

	reader := excel.NewDataReader(cfg.Data.SheetFile)
	deals := app.NewDealService(reader, cfg.Data.TargetRep)
	server := ui.NewServer(deals, cfg.Server.GinMode)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("serving",
			zap.String("addr", httpServer.Addr),
			zap.String("sheet", cfg.Data.SheetFile),
			zap.String("rep", cfg.Data.TargetRep))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}
