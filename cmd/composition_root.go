package cmd

import (
	"io"
	"log/slog"

	"tracker/internal/adapters/in/cli"
	"tracker/internal/adapters/out/gormdb"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application's dependencies.
// All construction decisions live here; handlers receive their collaborators
// fully built.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory gormdb.GormUnitOfWorkFactory
	clock      kernel.Clock
	generator  kernel.TrackingNumberGenerator
}

// NewCompositionRoot creates the composition root over an open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *gormdb.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.NewSystemClock(),
		generator:  kernel.NewRandomTrackingNumberGenerator(),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.generator, c.clock)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportSnapshotQueryHandler() queries.ExportSnapshotQueryHandler {
	return queries.NewExportSnapshotQueryHandler(c.CreateListShipmentsQueryHandler())
}

// CreateApp builds the terminal adapter writing to out.
func (c *CompositionRoot) CreateApp(out io.Writer) *cli.App {
	return cli.NewApp(
		out,
		c.CreateCreateShipmentCommandHandler(),
		c.CreateUpdateStatusCommandHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.CreateGetHistoryQueryHandler(),
		c.CreateGetStatsQueryHandler(),
		c.CreateExportSnapshotQueryHandler(),
	)
}

// CreateJobManager builds the background job manager for watch mode.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExportSnapshotQueryHandler(),
		c.config.ExportPath,
		c.config.ExportSchedule,
		logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
