package cmd

// Config carries the runtime settings resolved by the entrypoint.
// The store location is always decided here and passed in explicitly;
// the core never resolves paths on its own.
type Config struct {
	// DBDriver selects the store backend: "sqlite" (default) or "postgres".
	DBDriver string

	// DBPath is the sqlite database file when DBDriver is "sqlite".
	DBPath string

	// Postgres connection settings, used when DBDriver is "postgres".
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ExportPath is where the export subcommand and the watch job write
	// the JSON snapshot.
	ExportPath string

	// ExportSchedule is the cron expression (with seconds) for the watch job.
	ExportSchedule string
}
