package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/birdr/internal/entities"
)

// Database owns the connection to the on-disk sighting store.
type Database struct {
	DB     *gorm.DB
	path   string
	logger *zap.Logger
}

// Option configures a Database.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	sqlDebug bool
}

// WithLogger sets the logger used for database lifecycle messages.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSQLDebug makes gorm log every statement it executes.
func WithSQLDebug(enabled bool) Option {
	return func(o *options) { o.sqlDebug = enabled }
}

// NewDatabase opens the store at dbPath, creating its directory if needed.
// Call Create to lay out the schema.
func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	// The sqlite dialector queries the server version while opening, which
	// needs the directory to exist.
	if err := ensureParentDir(dbPath); err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if o.sqlDebug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:               logger.Default.LogMode(logLevel),
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer; one connection keeps every statement on
	// the same session.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &Database{
		DB:     db,
		path:   dbPath,
		logger: o.logger.With(zap.String("path", dbPath)),
	}, nil
}

// OpenExisting opens a store that must already have been created with Create.
// Returns ErrNotInitialized when the file does not exist.
func OpenExisting(dbPath string, opts ...Option) (*Database, error) {
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, dbPath)
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	return NewDatabase(dbPath, opts...)
}

// Path returns the file the database lives in.
func (d *Database) Path() string {
	return d.path
}

// Create ensures the parent directory exists and creates any missing tables.
// It only ever adds to the schema and is safe to call repeatedly.
func (d *Database) Create() error {
	if err := ensureParentDir(d.path); err != nil {
		return err
	}

	if err := d.DB.AutoMigrate(entities.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	d.logger.Debug("database schema ready")
	return nil
}

// Transaction runs fn inside a single database transaction. Everything fn
// writes is committed when it returns nil; an error or a panic discards all
// of it.
func (d *Database) Transaction(fn func(tx *Transaction) error) error {
	return d.DB.Transaction(func(gtx *gorm.DB) error {
		return fn(newTransaction(gtx, d.logger))
	})
}

func ensureParentDir(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
