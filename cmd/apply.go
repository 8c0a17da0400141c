package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"bulk-editor/feature/bulkedit"

	"github.com/spf13/cobra"
)

var applyDryRun bool

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply <batch.json>",
	Short: "Apply a bulk edit batch from a file",
	Long: `Reads a batch (shop_id and operations) from a JSON file and applies it
directly, without going through the queue. With --dry-run every product is
edited and validated but nothing is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read batch: %w", err)
		}
		var batch bulkedit.Batch
		if err := json.Unmarshal(data, &batch); err != nil {
			return fmt.Errorf("failed to decode batch: %w", err)
		}

		env, err := bootstrap()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		w := env.worker()
		if applyDryRun {
			w = w.DryRun()
		}
		summary, err := w.Process(cmd.Context(), batch)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "validate the batch without saving")
	RootCmd.AddCommand(applyCmd)
}
