package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/myauthapp/internal/client/cli"
	"github.com/dmitrijs2005/myauthapp/internal/client/client"
	"github.com/dmitrijs2005/myauthapp/internal/client/config"
	"github.com/dmitrijs2005/myauthapp/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/myauthapp/internal/client/services"
	"github.com/dmitrijs2005/myauthapp/internal/client/session"
	"github.com/dmitrijs2005/myauthapp/internal/logging"
	"github.com/google/uuid"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// a second interrupt kills the process, e.g. while a field prompt waits
		<-ctx.Done()
		stop()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	slogger, err := logging.NewLogger(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := slogger.With("run_id", uuid.NewString())

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	repo := metadata.NewSQLiteRepository(db)
	store := session.NewStore(repo, logger, cfg.StorageTimeout)
	auth := services.NewAuthService(store, logger, cfg.PersistQueueSize)

	app := cli.NewApp(auth, logger, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "shutdown", "err", err)
	}

}
