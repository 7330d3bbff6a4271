package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursehub/internal/config"
	"coursehub/internal/model"
)

// Open connects to the database selected by cfg.DBDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return NewMySQL(cfg.MySQLDSN, logLevel(cfg.DBLogLevel))
	case "sqlite":
		return NewSQLite(cfg.SQLitePath, logLevel(cfg.DBLogLevel))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// NewSQLite opens a SQLite database with foreign keys enforced.
// Use ":memory:" for a throwaway database.
func NewSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	dsn := "file:" + path + "?_foreign_keys=on"
	if path == ":memory:" {
		dsn = "file::memory:?_foreign_keys=on"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}

	// a second connection to :memory: would see an empty database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates or updates the users and courses tables.
// With reset set, both tables are dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		if err := db.Migrator().DropTable(&model.Course{}, &model.User{}); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.AutoMigrate(&model.User{}, &model.Course{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		// unique and foreign key violations come back as gorm.ErrDuplicatedKey / ErrForeignKeyViolated
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	}
}

func logLevel(name string) logger.LogLevel {
	switch name {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
