package cmd

import (
	"fmt"
	"sort"

	"bulk-editor/feature/integrity"
	"bulk-editor/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var schemaMigrate bool

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema",
	Long:  `Compares the listings, progress and taxonomy tables with the models. With --migrate missing tables and columns are created first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := bootstrap()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		if schemaMigrate {
			if err := integrity.Migrate(env.db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			env.logger.Info("Schema migrated")
		}

		report, err := integrity.NewService(nil, "", "", env.logger, env.db).CheckSchema()
		if err != nil {
			return err
		}
		names := make([]string, 0, len(report.Tables))
		for name := range report.Tables {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			table := report.Tables[name]
			fields := []zap.Field{zap.String("table", name), zap.String("status", table.Status)}
			if len(table.MissingColumns) > 0 {
				fields = append(fields, zap.Strings("missing_columns", table.MissingColumns))
			}
			if len(table.TypeMismatches) > 0 {
				fields = append(fields, zap.Strings("type_mismatches", table.TypeMismatches))
			}
			if table.Status == checks.StatusOK {
				env.logger.Info("Table checked", fields...)
			} else {
				env.logger.Warn("Table checked", fields...)
			}
		}
		for _, msg := range report.Errors {
			env.logger.Error("Schema check error", zap.String("error", msg))
		}
		if !report.Matched {
			return fmt.Errorf("schema does not match the models")
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaMigrate, "migrate", false, "create or update tables before checking")
	RootCmd.AddCommand(schemaCmd)
}
