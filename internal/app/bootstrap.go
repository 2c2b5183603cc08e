// Package app is the composition root: bootstrap stays orchestration-only,
// all construction is manual DI.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/api/handlers"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/infrastructure"
	"waterline.io/waterline/internal/jobs"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/operations"
	"waterline.io/waterline/internal/pkg/worker"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/runtime"
	"waterline.io/waterline/internal/service"
	"waterline.io/waterline/internal/store"
	"waterline.io/waterline/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Metrics *metrics.Metrics
}

// Bootstrap initializes all dependencies.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:  cfg.Worker.GeneralPoolSize,
		ProviderPoolSize: cfg.Worker.ProviderPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	m := metrics.New()

	// Entity state store and operation catalog.
	entities := store.NewEntityStore(db.EntClient, m)
	detector := store.NewChangeDetector(db.EntClient)

	schemas := adapter.NewSchemaSet()
	operations.RegisterSchemas(schemas)

	reg := registry.New()
	operations.RegisterAll(reg, operations.Deps{
		Client:   adapter.NewClient(cfg.Providers, m),
		Schemas:  schemas,
		Detector: detector,
	})

	// River is initialized in two steps: workers need the runner, the runner
	// needs a dispatcher, the dispatcher needs the client. The dispatcher is
	// created empty and bound after InitRiverClient.
	dispatcher := &lazyDispatcher{}
	runner := runtime.NewRunner(db.EntClient, reg, entities, dispatcher, pools, m, cfg.Pipeline)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewPipelineRunWorker(runner))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river: %w", err)
	}
	dispatcher.bind(jobs.NewRiverDispatcher(db.RiverClient))

	blueprintSvc := service.NewBlueprintService(db.EntClient, reg)

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:    db.EntClient,
		Registry:     reg,
		BlueprintSvc: blueprintSvc,
		SubmitUC:     usecase.NewSubmitBatchUseCase(db.EntClient, blueprintSvc, reg, dispatcher, cfg.Pipeline),
		StatusUC:     usecase.NewBatchStatusUseCase(db.EntClient),
		CancelUC:     usecase.NewCancelSubmissionUseCase(db.EntClient),
		EntitiesUC:   usecase.NewQueryEntitiesUseCase(entities, detector),
		SnapshotsUC:  usecase.NewQuerySnapshotsUseCase(entities),
	})

	return &Application{
		Config:  cfg,
		Router:  newRouter(server, m),
		DB:      db,
		Pools:   pools,
		Metrics: m,
	}, nil
}

// lazyDispatcher defers binding the queue client so the runner can be
// constructed before River is. Dispatching before bind is a programming
// error surfaced as an explicit failure.
type lazyDispatcher struct {
	inner runtime.Dispatcher
}

func (d *lazyDispatcher) bind(inner runtime.Dispatcher) { d.inner = inner }

func (d *lazyDispatcher) DispatchRun(ctx context.Context, runID string) error {
	if d.inner == nil {
		return fmt.Errorf("dispatcher used before river init")
	}
	return d.inner.DispatchRun(ctx, runID)
}
