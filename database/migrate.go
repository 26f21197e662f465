package database

import (
	"fmt"
	"log/slog"

	"github.com/cosmic-missions/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model.
func (c *DBConnection) Migrate() error {
	if err := c.DB.AutoMigrate(c.Models...); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", c.Name, err)
	}
	return nil
}

// CopyData copies every row from source to target, parents first, inside a
// single target transaction. Primary keys are preserved so mission
// references stay valid.
func CopyData(source, target *DBConnection, logger *slog.Logger) error {
	var scientists []models.Scientist
	if err := source.DB.Order("id ASC").Find(&scientists).Error; err != nil {
		return fmt.Errorf("failed to fetch scientists: %w", err)
	}

	var planets []models.Planet
	if err := source.DB.Order("id ASC").Find(&planets).Error; err != nil {
		return fmt.Errorf("failed to fetch planets: %w", err)
	}

	var missions []models.Mission
	if err := source.DB.Order("id ASC").Find(&missions).Error; err != nil {
		return fmt.Errorf("failed to fetch missions: %w", err)
	}

	err := target.DB.Transaction(func(tx *gorm.DB) error {
		if len(scientists) > 0 {
			if err := tx.Create(&scientists).Error; err != nil {
				return fmt.Errorf("failed to copy scientists: %w", err)
			}
		}
		if len(planets) > 0 {
			if err := tx.Create(&planets).Error; err != nil {
				return fmt.Errorf("failed to copy planets: %w", err)
			}
		}
		if len(missions) > 0 {
			if err := tx.Omit("Scientist", "Planet").Create(&missions).Error; err != nil {
				return fmt.Errorf("failed to copy missions: %w", err)
			}
		}
		return resetSequences(tx)
	})
	if err != nil {
		return err
	}

	logger.Info("data copy completed",
		"source", source.Name,
		"target", target.Name,
		"scientists", len(scientists),
		"planets", len(planets),
		"missions", len(missions),
	)
	return nil
}

// resetSequences moves postgres id sequences past the copied rows. sqlite
// derives the next rowid from the table itself.
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"scientists", "planets", "missions"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s",
			table,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to reset %s sequence: %w", table, err)
		}
	}
	return nil
}
