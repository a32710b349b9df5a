package config

const (
	// DefaultDatabaseSubpath is where the database lives relative to the data home.
	DefaultDatabaseSubpath = "birdr/birds.db"

	// DefaultEditor is used for sighting notes when $EDITOR is unset.
	DefaultEditor = "vi"
)
