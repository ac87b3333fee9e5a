package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/indexer"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/utils"
)

const envFile = ".env"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log := utils.NewLogger()
	if err := utils.LoadEnvFile(log, envFile); err != nil {
		utils.WithFatalError(log, err).Fatal("could not load env file")
	}

	config, err := indexer.NewIndexerConfigFromEnv()
	if err != nil {
		utils.WithFatalError(log, err).Fatal("invalid configuration")
	}
	if err := config.ValidateService(); err != nil {
		utils.WithFatalError(log, err).Fatal("invalid configuration")
	}

	collectionIndexer, err := indexer.NewCollectionIndexerFromEnv(ctx, log, config)
	if err != nil {
		utils.WithFatalError(log, err).Fatal("could not initialize indexer")
	}
	defer collectionIndexer.Close(context.WithoutCancel(ctx))

	autoIndexer := indexer.NewAutoIndexer(log, collectionIndexer, config.Collections, config.Interval())
	if err := autoIndexer.Run(ctx); err != nil {
		utils.WithFatalError(log, err).Error("auto indexer stopped")
		collectionIndexer.Close(context.WithoutCancel(ctx))
		os.Exit(1)
	}
	log.Info("captured signal, shutting down")
}
