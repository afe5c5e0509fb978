package main

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/drivers/database"
	"carepulse-service/internal/app/drivers/logger"
	"carepulse-service/internal/app/drivers/storage"
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const commandTimeout = 30 * time.Second

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	rootCmd := &cobra.Command{
		Use:           "migration",
		Short:         "Prepare the document store and object store used by the service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return internalConfig.Validate()
		},
	}
	rootCmd.AddCommand(indexesCmd(driverConfig, internalConfig, log))
	rootCmd.AddCommand(bucketCmd(driverConfig, internalConfig, log))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("migration failed")
		os.Exit(1)
	}
}

func indexesCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the collection indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			client := database.NewMongoDB(driverConfig)
			defer func() {
				err := client.Disconnect(context.Background())
				if err != nil {
					log.WithError(err).Warn("failed to disconnect from mongodb")
				}
			}()

			db := client.Database(internalConfig.Store.DatabaseID)
			created, err := database.EnsureIndexes(ctx, db, database.IndexPlan(internalConfig.Store))
			for collection, names := range created {
				log.WithFields(logrus.Fields{
					"collection": collection,
					"indexes":    names,
				}).Info("indexes ensured")
			}
			return err
		},
	}
}

func bucketCmd(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "bucket",
		Short: "Create the object bucket when missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			bucketName := internalConfig.Store.BucketID
			created, err := storage.EnsureBucket(ctx, storage.NewMinio(driverConfig), bucketName)
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"bucket":  bucketName,
				"created": created,
			}).Info("bucket ensured")
			return nil
		},
	}
}
