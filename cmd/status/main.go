package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/indexer"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log := utils.NewLogger()
	app := &cli.Command{
		Name:  "status",
		Usage: "Compare document counts of mongodb collections with their opensearch indices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "Path to the env file",
				Value: ".env",
			},
			&cli.StringSliceFlag{
				Name:  "collection-name",
				Usage: "Collection to report on, can be repeated (defaults to MONGO_COLLECTIONS_TO_INDEX)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return statusAction(ctx, cmd, log)
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		utils.WithFatalError(log, err).Error("status report failed")
		os.Exit(1)
	}
}

func statusAction(ctx context.Context, cmd *cli.Command, log *logrus.Logger) error {
	if err := utils.LoadEnvFile(log, cmd.String("env")); err != nil {
		return err
	}
	config, err := indexer.NewIndexerConfigFromEnv()
	if err != nil {
		return err
	}
	collectionNames := cmd.StringSlice("collection-name")
	if len(collectionNames) == 0 {
		collectionNames = config.Collections
	}
	if len(collectionNames) == 0 {
		return fmt.Errorf("no collection given: use --collection-name or MONGO_COLLECTIONS_TO_INDEX")
	}

	clients, err := indexer.NewClientsFromEnv(ctx, log)
	if err != nil {
		return fmt.Errorf("could not initialize clients: %w", err)
	}
	defer clients.Close(context.WithoutCancel(ctx), log)

	reporter := indexer.NewStatusReporterFromClients(log, config, clients)
	statuses, err := reporter.CollectionStatuses(ctx, collectionNames)
	for _, status := range statuses {
		fmt.Println(formatStatus(status))
	}
	return err
}

func formatStatus(status *types.CollectionStatus) string {
	line := fmt.Sprintf("%s: state=%s, source=%d, index=%s, indexed=%d",
		status.CollectionName, status.State, status.SourceCount, status.Index, status.DestinationCount)
	if !status.IndexExists {
		line += " (index missing)"
	}
	if status.LastRun != nil {
		line += fmt.Sprintf(", lastRun=%s", status.LastRun.StartedAt.UTC().Format("2006-01-02T15:04:05Z07:00"))
	}
	return line
}
