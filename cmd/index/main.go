package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/indexer"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log := utils.NewLogger()
	app := &cli.Command{
		Name:  "index",
		Usage: "Index new and updated documents of a mongodb collection into opensearch",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "Path to the env file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:     "collection-name",
				Usage:    "Name of the collection to index",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "recreate",
				Usage: "Delete and recreate the index before a full sync",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return indexAction(ctx, cmd, log)
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		utils.WithFatalError(log, err).Error("indexing failed")
		os.Exit(1)
	}
}

func indexAction(ctx context.Context, cmd *cli.Command, log *logrus.Logger) error {
	if err := utils.LoadEnvFile(log, cmd.String("env")); err != nil {
		return err
	}
	config, err := indexer.NewIndexerConfigFromEnv()
	if err != nil {
		return err
	}

	collectionIndexer, err := indexer.NewCollectionIndexerFromEnv(ctx, log, config)
	if err != nil {
		return fmt.Errorf("could not initialize indexer: %w", err)
	}
	defer collectionIndexer.Close(context.WithoutCancel(ctx))

	collectionName := cmd.String("collection-name")
	result, err := collectionIndexer.IndexCollection(ctx, collectionName, indexer.IndexOptions{
		Recreate: cmd.Bool("recreate"),
	})
	if err != nil {
		return fmt.Errorf("failed to index collection %s: %w", collectionName, err)
	}
	fmt.Println(result.Summary())
	return nil
}
