package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tracker/cmd"
	"tracker/internal/adapters/in/cli"
	"tracker/internal/adapters/out/gormdb"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const usage = `Usage: tracker <command> [options]

Commands:
  add      Create a new shipment
  list     List shipments
  track    Show one shipment and its history
  update   Move a shipment to a new status
  status   Show aggregate statistics
  export   Write the full snapshot to a JSON file
  watch    Keep the snapshot export current on a schedule
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With("run_id", uuid.NewString())

	configs := getConfigs()

	db, err := gormdb.OpenDB(driverDSN(configs))
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	if err := gormdb.Migrate(db); err != nil {
		logger.Error("Failed to migrate schema", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, db)
	app := root.CreateApp(os.Stdout)

	if err := dispatch(&root, app, configs, logger, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "tracker: %v\n", err)
		os.Exit(1)
	}
}

func dispatch(
	root *cmd.CompositionRoot,
	app *cli.App,
	configs cmd.Config,
	logger *slog.Logger,
	command string,
	args []string,
) error {
	ctx := context.Background()

	switch command {
	case "add":
		return runAdd(ctx, app, args)
	case "list":
		return runList(ctx, app, args)
	case "track":
		return runTrack(ctx, app, args)
	case "update":
		return runUpdate(ctx, app, args)
	case "status":
		return app.Status(ctx)
	case "export":
		return runExport(ctx, app, configs, args)
	case "watch":
		return runWatch(root, logger)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runAdd(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	sender := fs.String("sender", "", "sender name (required)")
	recipient := fs.String("recipient", "", "recipient name (required)")
	destination := fs.String("destination", "", "delivery destination (required)")
	weight := fs.Float64("weight", 0, "package weight in kg")
	courier := fs.String("courier", "", "courier name")
	eta := fs.String("eta", "", "estimated delivery (RFC 3339 or YYYY-MM-DD)")
	notes := fs.String("notes", "", "free-text notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	estimatedDelivery, err := parseETA(*eta)
	if err != nil {
		return err
	}

	return app.Add(ctx, cli.AddRequest{
		Sender:            *sender,
		Recipient:         *recipient,
		Destination:       *destination,
		WeightKg:          *weight,
		Courier:           *courier,
		EstimatedDelivery: estimatedDelivery,
		Notes:             *notes,
	})
}

func runList(ctx context.Context, app *cli.App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	filterStatus := fs.String("filter-status", "", "only show shipments in this status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return app.List(ctx, *filterStatus)
}

func runTrack(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: tracker track <tracking-number>")
	}
	return app.Track(ctx, args[0])
}

func runUpdate(ctx context.Context, app *cli.App, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tracker update <tracking-number> <new-status> [options]")
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	location := fs.String("location", "", "location context for the event")
	message := fs.String("message", "", "message for the event")
	if err := fs.Parse(args[2:]); err != nil {
		return err
	}

	return app.Update(ctx, args[0], args[1], *location, *message)
}

func runExport(ctx context.Context, app *cli.App, configs cmd.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.String("o", configs.ExportPath, "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return app.Export(ctx, *output)
}

func runWatch(root *cmd.CompositionRoot, logger *slog.Logger) error {
	jobManager := root.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	return nil
}

func parseETA(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid eta %q: expected RFC 3339 or YYYY-MM-DD", value)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; every setting has a default.
	_ = godotenv.Load(".env")

	return cmd.Config{
		DBDriver:       envOr("DB_DRIVER", gormdb.DriverSQLite),
		DBPath:         envOr("DB_PATH", "deliveries.db"),
		DBHost:         envOr("DB_HOST", "localhost"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         envOr("DB_NAME", "tracker"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		ExportPath:     envOr("EXPORT_PATH", "deliveries_export.json"),
		ExportSchedule: envOr("EXPORT_SCHEDULE", "0 * * * * *"),
	}
}

func driverDSN(configs cmd.Config) (string, string) {
	if configs.DBDriver == gormdb.DriverPostgres {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			configs.DBHost, configs.DBPort, configs.DBUser,
			configs.DBPassword, configs.DBName, configs.DBSslMode)
		return gormdb.DriverPostgres, dsn
	}
	return gormdb.DriverSQLite, configs.DBPath
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
