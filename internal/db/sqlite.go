package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const MemoryPath = ":memory:"

// OpenSQLite opens the server store and applies embedded migrations. An empty
// path or ":memory:" keeps everything in process memory.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	inMemory := isMemoryPath(dbPath)

	dsn := MemoryPath + "?_pragma=foreign_keys(1)"
	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	}

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if inMemory {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := database.DB()
		if err != nil {
			return nil, fmt.Errorf("open sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

func isMemoryPath(dbPath string) bool {
	trimmed := strings.TrimSpace(dbPath)
	return trimmed == "" || trimmed == MemoryPath
}
