// Package main seeds orgs and blueprints from a YAML fixture file.
//
// This command is development-environment only and is intentionally
// idempotent: existing orgs and blueprint names are left untouched.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	entorg "waterline.io/waterline/ent/org"
	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/infrastructure"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/operations"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/service"
)

type seedFile struct {
	Orgs []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"orgs"`
	Blueprints []struct {
		OrgID       string              `yaml:"org_id"`
		Name        string              `yaml:"name"`
		Description string              `yaml:"description"`
		Steps       []service.StepInput `yaml:"steps"`
	} `yaml:"blueprints"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := "seeds.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, "console"); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", path, err)
	}
	var seeds seedFile
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}

	ctx := context.Background()
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Blueprint validation needs the full operation catalog.
	m := metrics.New()
	schemas := adapter.NewSchemaSet()
	operations.RegisterSchemas(schemas)
	reg := registry.New()
	operations.RegisterAll(reg, operations.Deps{
		Client:  adapter.NewClient(cfg.Providers, m),
		Schemas: schemas,
	})
	blueprints := service.NewBlueprintService(db.EntClient, reg)

	for _, org := range seeds.Orgs {
		exists, err := db.EntClient.Org.Query().Where(entorg.ID(org.ID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check org %s: %w", org.ID, err)
		}
		if exists {
			logger.Info("Org exists, skipping", zap.String("org_id", org.ID))
			continue
		}
		if _, err := db.EntClient.Org.Create().
			SetID(org.ID).
			SetName(org.Name).
			Save(ctx); err != nil {
			return fmt.Errorf("create org %s: %w", org.ID, err)
		}
		logger.Info("Org created", zap.String("org_id", org.ID), zap.String("name", org.Name))
	}

	for _, bp := range seeds.Blueprints {
		created, err := blueprints.Create(ctx, bp.OrgID, bp.Name, bp.Description, bp.Steps)
		if err != nil {
			if appErr, ok := apperrors.IsAppError(err); ok && appErr.Code == apperrors.CodeBlueprintExists {
				logger.Info("Blueprint exists, skipping",
					zap.String("org_id", bp.OrgID),
					zap.String("name", bp.Name),
				)
				continue
			}
			return fmt.Errorf("create blueprint %q for org %s: %w", bp.Name, bp.OrgID, err)
		}
		logger.Info("Blueprint created",
			zap.String("blueprint_id", created.ID),
			zap.String("org_id", bp.OrgID),
			zap.String("name", bp.Name),
			zap.Int("steps", len(bp.Steps)),
		)
	}

	logger.Info("Seeding completed")
	return nil
}
