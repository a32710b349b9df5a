// Command generate_demo creates a demo database with a small sample catalog,
// a couple of checklists and some sightings.
// Usage: go run ./cmd/generate_demo [-db path/to/demo.db]
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/mrlokans/birdr/internal/database"
	"github.com/mrlokans/birdr/internal/demo"
	"github.com/mrlokans/birdr/internal/logging"
)

const defaultDemoDatabasePath = "./demo/birds.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	logger, err := logging.New("info", "console")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("generating demo database", zap.String("path", *dbPath))

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		logger.Fatal("failed to remove existing demo database", zap.Error(err))
	}

	db, err := database.NewDatabase(*dbPath, database.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to create database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Create(); err != nil {
		logger.Fatal("failed to create schema", zap.Error(err))
	}

	if err := db.Transaction(demo.Populate); err != nil {
		logger.Fatal("failed to populate demo database", zap.Error(err))
	}

	logger.Info("demo database generated successfully",
		zap.Int("checklists", len(demo.Checklists)),
		zap.Int("sightings", len(demo.Sightings)))
}
