package cmd

import (
	"wardrobe/feature/clothing/feeds"
	"wardrobe/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mirrorCmd represents the mirror command
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copy the live feed documents into the storage bucket",
	Long: `Downloads figuredata, figuremap and furnidata from the hotel and stores them
under the mirror prefix, so the service can run with FEEDS_SOURCE=mirror.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		bucket := d.cfg.Storage.Bucket

		if err := checks.EnsureBucket(ctx, d.store, bucket, d.logger); err != nil {
			return err
		}

		written, err := feeds.Publish(ctx, d.upstream(), d.store, bucket, d.cfg.Feeds.MirrorPrefix, d.logger)
		if err != nil {
			return err
		}
		d.logger.Info("Feed mirror updated", zap.String("bucket", bucket), zap.Strings("objects", written))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mirrorCmd)
}
