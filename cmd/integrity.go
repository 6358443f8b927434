package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"wardrobe/feature/integrity"
	"wardrobe/feature/integrity/checks"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

const (
	checkStructure = 1 << iota
	checkMirror
	checkUpstream
	checkRegistry

	checkAll = checkStructure | checkMirror | checkUpstream | checkRegistry
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the feed mirror, the live feeds and the registry schema",
	Long:  `Runs every integrity check. Use a subcommand to run a single check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkAll, false)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the mirror bucket and folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkStructure, fixFlag)
	},
}

// mirrorCheckCmd represents the integrity mirror command
var mirrorCheckCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Check the mirrored feed documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkMirror, fixFlag)
	},
}

// upstreamCmd represents the integrity upstream command
var upstreamCmd = &cobra.Command{
	Use:   "upstream",
	Short: "Fetch and parse the live feed documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkUpstream, false)
	},
}

// registryCmd represents the integrity registry command
var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Check the emulator catalog_clothing schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), checkRegistry, false)
	},
}

// coverageCmd represents the integrity coverage command
var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Reconcile clothing classnames across registry, furnidata and catalog",
	Long:  `Compares the emulator registry, the furnidata clothing records and the classnames the live catalog links to items. Outputs metrics by default or a detailed JSON file with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		d, err := bootstrap()
		if err != nil {
			return err
		}
		svc := integrity.NewService(d.store, d.cfg.Storage.Bucket, d.cfg.Feeds.MirrorPrefix, d.upstream(), d.logger, d.db, d.cfg.Server.Emulator)

		d.logger.Info("Checking clothing coverage...", zap.String("server", d.cfg.Server.Emulator))
		report, err := svc.CheckCoverage(cmd.Context())
		if err != nil {
			return fmt.Errorf("coverage check failed: %w", err)
		}
		issues := report.Issues()

		var filename string
		if jsonOutput {
			filename = fmt.Sprintf("integrity_coverage_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(issues, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
		}

		executionTime := time.Since(startTime)

		fmt.Println("\n=== Clothing Coverage Metrics ===")
		fmt.Printf("Total Classnames: %d\n", report.Summary.Total)
		fmt.Printf("Registry Missing: %d\n", report.Summary.MissingDB)
		fmt.Printf("Furnidata Missing: %d\n", report.Summary.MissingGamedata)
		fmt.Printf("Catalog Unlinked: %d\n", report.Summary.MissingFeed)
		fmt.Printf("Mismatch: %d\n", report.Summary.Mismatches)
		fmt.Printf("Execution Time: %s\n", executionTime.String())
		if jsonOutput {
			fmt.Printf("\nDetailed JSON saved to: %s (%d classnames with issues)\n", filename, len(issues))
		}

		d.logger.Info("Clothing coverage check completed",
			zap.Int("total", report.Summary.Total),
			zap.Int("issues", len(issues)),
			zap.Duration("execution_time", executionTime),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, mirrorCheckCmd, upstreamCmd, registryCmd, coverageCmd)

	coverageCmd.Flags().Bool("json", false, "Save the classnames with issues to a JSON file")

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and folder")
	mirrorCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Copy missing documents from the live feeds")
}

func runIntegrityChecks(ctx context.Context, which int, fix bool) error {
	d, err := bootstrap()
	if err != nil {
		return err
	}
	logg := d.logger

	svc := integrity.NewService(d.store, d.cfg.Storage.Bucket, d.cfg.Feeds.MirrorPrefix, d.upstream(), logg, d.db, d.cfg.Server.Emulator)

	if which&checkStructure != 0 {
		logg.Info("Checking mirror structure...")
		missing, err := svc.CheckStructure(ctx)
		if errors.Is(err, checks.ErrBucketMissing) && fix {
			missing = checks.RequiredFolders(d.cfg.Feeds.MirrorPrefix)
		} else if err != nil {
			return err
		}

		switch {
		case len(missing) == 0:
			logg.Info("Structure is intact.")
		case fix:
			logg.Info("Fixing missing folders...", zap.Strings("missing", missing))
			if err := svc.FixStructure(ctx, missing); err != nil {
				return err
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			logg.Info("Run with --fix to create missing folders.")
		}
	}

	if which&checkMirror != 0 {
		logg.Info("Checking mirrored feed documents...")
		report, err := svc.CheckMirror(ctx)
		if err != nil {
			logg.Error("Mirror check failed", zap.Error(err))
		} else if len(report.Missing) == 0 {
			logg.Info("Mirror is complete.", zap.Strings("present", report.Present))
		} else if fix {
			written, err := svc.FixMirror(ctx)
			if err != nil {
				return err
			}
			logg.Info("Mirror fixed successfully.", zap.Strings("written", written))
		} else {
			logg.Warn("Missing mirrored documents", zap.Strings("missing", report.Missing))
			if which == checkMirror {
				logg.Info("Run with --fix to copy them from the live feeds.")
			}
		}
	}

	if which&checkUpstream != 0 {
		logg.Info("Checking live feeds...")
		report, err := svc.CheckUpstream(ctx)
		if err != nil {
			return err
		}
		if report.Status == "ok" {
			logg.Info("Live feeds are healthy.", zap.String("base", report.Base))
		} else {
			logg.Warn("Live feeds unhealthy", zap.String("error", report.Error))
		}
		for doc, dr := range report.Documents {
			if dr.Status != "ok" {
				logg.Warn("Feed document failed", zap.String("document", doc), zap.String("error", dr.Error))
			}
		}
	}

	if which&checkRegistry != 0 {
		logg.Info("Checking registry schema...", zap.String("emulator", d.cfg.Server.Emulator))
		report, err := svc.CheckRegistry()
		if err != nil {
			logg.Error("Registry schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Registry schema matches expected definition.", zap.String("emulator", report.Emulator))
		} else {
			logg.Warn("Registry schema mismatches found", zap.String("emulator", report.Emulator))
			for table, tblReport := range report.Tables {
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	return nil
}
