// Package cli implements the birdr command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mrlokans/birdr/internal/config"
	"github.com/mrlokans/birdr/internal/database"
	"github.com/mrlokans/birdr/internal/logging"
	"github.com/mrlokans/birdr/internal/services"
)

// app carries the state shared by every subcommand.
type app struct {
	viper  *viper.Viper
	cfg    *config.Config
	logger *zap.Logger

	stdin  io.Reader
	stdout io.Writer

	newPrompter func() (Prompter, error)
	newNotes    func(command string) NotesCapturer
}

func newApp() *app {
	return &app{
		viper:       config.NewViper(),
		logger:      zap.NewNop(),
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		newPrompter: NewTerminalPrompter,
		newNotes: func(command string) NotesCapturer {
			return NewNoteEditor(command)
		},
	}
}

// NewRootCommand creates the birdr command tree.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(newApp(), version)
}

func newRootCommand(a *app, version string) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "birdr",
		Short:         "Record and track bird sightings",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the sightings database (default $XDG_DATA_HOME/"+config.DefaultDatabaseSubpath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := a.viper.BindPFlag("birdr_database_path", rootCmd.PersistentFlags().Lookup("db")); err != nil {
			return fmt.Errorf("error binding flags: %w", err)
		}
		a.cfg = config.FromViper(a.viper)

		level := a.cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err := logging.New(level, a.cfg.Logging.Format)
		if err != nil {
			return err
		}
		a.logger = logger
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = a.logger.Sync()
	}

	rootCmd.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newChecklistCommand(a),
		newShowCommand(a),
		newSpeciesCommand(a),
	)
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)

	return rootCmd
}

func (a *app) dbOptions() []database.Option {
	return []database.Option{
		database.WithLogger(a.logger),
		database.WithSQLDebug(a.cfg.Database.SQLDebug),
	}
}

// withService opens the existing database, runs fn and closes it again.
func (a *app) withService(fn func(s *services.BirdService) error) error {
	db, err := database.OpenExisting(a.cfg.Database.Path, a.dbOptions()...)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(services.NewBirdService(db, a.logger))
}
