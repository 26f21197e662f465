package cmd

import (
	"github.com/cosmic-missions/services"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all records with the sample data set",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		conn, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer conn.Close()

		return services.NewSeedService(conn.DB, logger).Seed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
