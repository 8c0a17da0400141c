package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"bulk-editor/core/queue"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// workerCmd represents the worker command
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume queued bulk edit batches",
	Long:  `Connects to the batch queue and applies every received batch to the listings database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		conn, err := queue.Dial(env.cfg.Queue, env.logger)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		env.logger.Info("Starting worker",
			zap.Int("batch_size", env.cfg.Worker.BatchSize),
			zap.Int("concurrency", env.cfg.Worker.Concurrency),
		)
		err = conn.Consume(ctx, env.worker().Handle)
		if errors.Is(err, context.Canceled) {
			env.logger.Info("Shutting down worker...")
			return nil
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(workerCmd)
}
