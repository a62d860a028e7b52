//go:build wireinject

package server

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/wire"

	"github.com/eslsoft/coursecatalog/internal/adapter/db"
	adaptertransport "github.com/eslsoft/coursecatalog/internal/adapter/transport"
	"github.com/eslsoft/coursecatalog/internal/core"
	"github.com/eslsoft/coursecatalog/internal/usecase"
)

var repositorySet = wire.NewSet(
	NewDriver,
	wire.Bind(new(dialect.Driver), new(*entsql.Driver)),
	wire.Bind(new(core.CourseRepository), new(*db.CourseRepository)),
	db.NewCourseRepository,
	wire.Bind(new(core.EngagementRepository), new(*db.EngagementRepository)),
	db.NewEngagementRepository,
	wire.Bind(new(core.DirectoryRepository), new(*db.DirectoryRepository)),
	db.NewDirectoryRepository,
	wire.Bind(new(core.ActivityRepository), new(*db.ActivityRepository)),
	db.NewActivityRepository,
)

// InitializeServer sets up the full HTTP server with all dependencies wired.
func InitializeServer(ctx context.Context) (*Server, func(), error) {
	wire.Build(
		NewConfig,
		NewLogger,
		repositorySet,
		NewRedisClient,
		NewTracerProvider,
		wire.Bind(new(core.CourseService), new(*usecase.CourseService)),
		usecase.NewCourseService,
		wire.Bind(new(core.LessonService), new(*usecase.LessonService)),
		usecase.NewLessonService,
		wire.Bind(new(core.EngagementService), new(*usecase.EngagementService)),
		usecase.NewEngagementService,
		wire.Bind(new(core.DirectoryService), new(*usecase.DirectoryService)),
		usecase.NewDirectoryService,
		wire.Bind(new(core.ActivityService), new(*usecase.ActivityService)),
		usecase.NewActivityService,
		wire.Bind(new(core.IdentityService), new(*usecase.IdentityService)),
		usecase.NewIdentityService,
		NewAuthenticator,
		adaptertransport.NewRateLimiter,
		adaptertransport.NewCourseHandler,
		adaptertransport.NewLessonHandler,
		adaptertransport.NewEngagementHandler,
		adaptertransport.NewDirectoryHandler,
		adaptertransport.NewActivityHandler,
		NewHTTPHandler,
		NewServer,
	)
	return nil, nil, nil
}

// InitializeSeeder wires the catalog seeder against the configured database.
func InitializeSeeder(ctx context.Context) (*usecase.CatalogSeeder, func(), error) {
	wire.Build(
		NewConfig,
		NewLogger,
		repositorySet,
		usecase.NewCatalogSeeder,
	)
	return nil, nil, nil
}
