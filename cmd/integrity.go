package cmd

import (
	"fmt"

	"sync-gateway/feature/ingest"
	"sync-gateway/feature/integrity"
	"sync-gateway/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the payload archive",
	Long:  `Compares the live schema against the gateway models and checks that the archive bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := openDatabase(cfg.Database, logg, false)
		if err != nil {
			return err
		}
		client, _, err := openArchive(ctx, cfg, logg)
		if err != nil {
			return err
		}
		svc := integrity.NewService(db, ingest.Models(), client, cfg.Storage.Bucket, logg)

		logg.Info("Checking database schema...")
		report, err := svc.CheckSchema(ctx)
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Schema matches the gateway models.", zap.Int("tables", len(report.Tables)))
		} else {
			logg.Warn("Schema mismatches found")
			for table, tblReport := range report.Tables {
				switch tblReport.Status {
				case checks.StatusMissing:
					logg.Warn("Missing Table", zap.String("table", table))
				case checks.StatusError:
					if len(tblReport.MissingColumns) > 0 {
						logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
					}
					if len(tblReport.TypeMismatches) > 0 {
						logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
					}
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			logg.Info("Run migrate to create missing tables and columns.")
		}

		logg.Info("Checking payload archive...")
		archive, err := svc.CheckArchive(ctx)
		if err != nil {
			return fmt.Errorf("archive check failed: %w", err)
		}
		switch archive.Status {
		case checks.ArchiveDisabled:
			logg.Info("Archiving is disabled.")
		case checks.ArchiveMissing:
			logg.Warn("Archive bucket is missing", zap.String("bucket", archive.Bucket))
			if fixFlag {
				if err := svc.FixArchive(ctx); err != nil {
					return fmt.Errorf("failed to create bucket: %w", err)
				}
			} else {
				logg.Info("Run with --fix to create the bucket.")
			}
		default:
			logg.Info("Archive bucket is present.", zap.String("bucket", archive.Bucket))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing archive bucket")
}
