package database

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cosmic-missions/logging"
	"github.com/cosmic-missions/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DBConnection represents a database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	Models []interface{}
}

// Models lists the tables in foreign key order: parents first.
func Models() []interface{} {
	return []interface{}{
		&models.Scientist{},
		&models.Planet{},
		&models.Mission{},
	}
}

// Dialector picks the gorm driver from the URL scheme. sqlite:// URLs are
// opened with foreign keys enforced; anything else is handed to postgres.
func Dialector(dbURL string) (gorm.Dialector, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	if path, ok := strings.CutPrefix(dbURL, "sqlite://"); ok {
		if path == "" {
			return nil, errors.New("sqlite URL has no path")
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return sqlite.Open(path + sep + "_pragma=foreign_keys(1)"), nil
	}

	return postgres.Open(dbURL), nil
}

// Connect opens a database connection and configures the pool.
func Connect(name, dbURL string, logger *slog.Logger) (*DBConnection, error) {
	dialector, err := Dialector(dbURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.GormLogger(logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %w", name, err)
	}

	if dialector.Name() == "sqlite" {
		// A single writer avoids SQLITE_BUSY under concurrent requests.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	logger.Info("connected to database", "name", name, "driver", dialector.Name())

	return &DBConnection{
		DB:     db,
		Name:   name,
		Models: Models(),
	}, nil
}

// Close releases the underlying connection pool.
func (c *DBConnection) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// MemoryURL returns a sqlite URL for a private in-memory database. The
// database lives as long as the connection pool that opened it.
func MemoryURL(name string) string {
	return "sqlite://file:" + name + "?mode=memory&cache=shared"
}
