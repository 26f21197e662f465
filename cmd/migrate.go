package cmd

import (
	"github.com/cosmic-missions/database"
	"github.com/spf13/cobra"
)

var (
	sourceURL string
	targetURL string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
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

		logger.Info("schema migrated", "database", conn.Name)
		return nil
	},
}

var copyDataCmd = &cobra.Command{
	Use:   "copy-data",
	Short: "Copy every record from one database into another",
	Long: `copy-data migrates the schema on the target database and copies all
scientists, planets and missions from the source, keeping their ids.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, logger, err := loadConfig()
		if err != nil {
			return err
		}

		source, err := database.Connect("source", sourceURL, logger)
		if err != nil {
			return err
		}
		defer source.Close()

		target, err := database.Connect("target", targetURL, logger)
		if err != nil {
			return err
		}
		defer target.Close()

		if err := target.Migrate(); err != nil {
			return err
		}
		return database.CopyData(source, target, logger)
	},
}

func init() {
	copyDataCmd.Flags().StringVar(&sourceURL, "source", "", "Source database URL")
	copyDataCmd.Flags().StringVar(&targetURL, "target", "", "Target database URL")
	_ = copyDataCmd.MarkFlagRequired("source")
	_ = copyDataCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(copyDataCmd)
}
