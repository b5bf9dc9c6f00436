package cmd

import (
	"github.com/spf13/cobra"

	"github.com/faizfusion/saharenau/bucket"
	"github.com/faizfusion/saharenau/constants"
)

var publishPrefix string

func init() {
	publishCmd.Flags().StringVarP(&publishPrefix, "prefix", "p", "", "key prefix inside the bucket")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Uploads rendered artifacts to S3",
	Long:  `Uploads rendered artifacts to S3`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bucket.PublishDir(constants.GetOutDir(), publishPrefix); err != nil {
			panic(err.Error())
		}
	},
}
