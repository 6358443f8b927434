package cmd

import (
	"fmt"
	"os"

	"wardrobe/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wardrobe",
	Short: "Clothing figure-data resolution service",
	Long: `Wardrobe builds a classified catalog of Habbo clothing from the public
figure feeds and resolves avatar imaging URLs for every item.
It falls back to a built-in catalog when the feeds are unreachable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding at debug level gives readable ISO8601 timestamps for CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
