package upload

import (
	"fmt"

	"github.com/heweile/MoviePilot-Plugins/logger"
	"github.com/heweile/MoviePilot-Plugins/manifest"
	"github.com/heweile/MoviePilot-Plugins/util"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "upload <manifest path> <s3+https://host/bucket/prefix>",
	Short: "Upload a written manifest to S3 storage",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		dstBase := args[1]

		if !util.Exists(src) || util.IsDir(src) {
			return fmt.Errorf("manifest not found: %s", src)
		}
		if _, err := manifest.Load(src); err != nil {
			return err
		}

		dstURL := util.GetS3URL(dstBase)
		if dstURL == nil {
			return fmt.Errorf("destination must be an s3+http:// or s3+https:// URL: %s", dstBase)
		}
		bucket, prefix, err := util.SplitBucket(dstURL)
		if err != nil {
			return err
		}
		mc, err := util.GetS3Client(dstURL)
		if err != nil {
			return err
		}

		logger.Debug("Uploading", "bucket", bucket, "prefix", prefix, "size", util.FileSize(src))
		key, err := util.UploadFile(cmd.Context(), mc, bucket, prefix, src)
		if err != nil {
			return err
		}
		logger.Info("Uploaded manifest", "bucket", bucket, "key", key)
		return nil
	},
}
