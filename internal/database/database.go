// Package database opens the SQLite database used by the SQL store backend.
package database

import (
	"fmt"
	"reflect"
	"time"

	"github.com/budgetplanner/backend/internal/models"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MemoryDSN is a private in-memory database. It lives as long as the
// connection pool of the *gorm.DB holding it.
const MemoryDSN = ":memory:"

// Open opens the SQLite database at dsn and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// A single connection prevents SQLITE_BUSY errors. It is also what
	// keeps an in-memory database alive, so the connection is never
	// recycled.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	for name, processor := range map[string]interface {
		Register(string, func(*gorm.DB)) error
	}{
		"query":  db.Callback().Query().After("*"),
		"create": db.Callback().Create().After("*"),
		"update": db.Callback().Update().After("*"),
		"delete": db.Callback().Delete().After("*"),
	} {
		err = processor.Register(fmt.Sprintf("budgetplanner:after_%s_general", name), generalCallback)
		if err != nil {
			return nil, err
		}
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = models.ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(models.User{}, models.Budget{}, models.MonthlyData{}, models.MonthlyActual{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
