// Package service contains org-facing business logic above the Ent layer.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/blueprint"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/registry"
)

// StepInput is one step definition in a create or replace request.
type StepInput struct {
	Position    int                    `json:"position" yaml:"position" binding:"required,min=1"`
	OperationID string                 `json:"operation_id" yaml:"operation_id" binding:"required"`
	StepConfig  map[string]interface{} `json:"step_config" yaml:"step_config"`
	FanOut      bool                   `json:"fan_out" yaml:"fan_out"`
	IsEnabled   *bool                  `json:"is_enabled" yaml:"is_enabled"`
	SkipIfFresh map[string]interface{} `json:"skip_if_fresh" yaml:"skip_if_fresh"`
}

// BlueprintService handles blueprint CRUD and validation. Every step list is
// validated against the operation registry before it is persisted, so a
// submission never discovers a bad blueprint at run time.
type BlueprintService struct {
	client   *ent.Client
	registry *registry.Registry
}

// NewBlueprintService creates a BlueprintService.
func NewBlueprintService(client *ent.Client, reg *registry.Registry) *BlueprintService {
	return &BlueprintService{client: client, registry: reg}
}

// ValidateSteps checks a step list against the registry: positions unique
// and >= 1, operation ids registered, fan_out only on operations that yield
// a collection, skip_if_fresh well-formed.
func (s *BlueprintService) ValidateSteps(steps []StepInput) error {
	if len(steps) == 0 {
		return &errors.AppError{
			Code:       errors.CodeBlueprintInvalid,
			Message:    "blueprint needs at least one step",
			HTTPStatus: http.StatusUnprocessableEntity,
		}
	}

	positions := make(map[int]struct{}, len(steps))
	for _, step := range steps {
		if step.Position < 1 {
			return stepInvalid(step, "position must be >= 1")
		}
		if _, dup := positions[step.Position]; dup {
			return stepInvalid(step, "duplicate position")
		}
		positions[step.Position] = struct{}{}

		op, ok := s.registry.Lookup(step.OperationID)
		if !ok {
			return errors.ErrUnknownOperationf(step.OperationID)
		}
		if step.FanOut && op.Metadata.FanOutKey == "" {
			return stepInvalid(step, "operation does not yield a fan-out collection")
		}
		if step.SkipIfFresh != nil {
			if _, err := parseSkipIfFresh(step.SkipIfFresh); err != nil {
				return stepInvalid(step, err.Error())
			}
		}
	}
	return nil
}

func stepInvalid(step StepInput, reason string) *errors.AppError {
	return &errors.AppError{
		Code:       errors.CodeBlueprintInvalid,
		Message:    "invalid blueprint step",
		HTTPStatus: http.StatusUnprocessableEntity,
		Params: map[string]interface{}{
			"position":     step.Position,
			"operation_id": step.OperationID,
			"reason":       reason,
		},
	}
}

func parseSkipIfFresh(raw map[string]interface{}) (*domain.SkipIfFresh, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("skip_if_fresh is not JSON-shaped: %w", err)
	}
	var sif domain.SkipIfFresh
	if err := json.Unmarshal(data, &sif); err != nil {
		return nil, fmt.Errorf("skip_if_fresh has wrong shape: %w", err)
	}
	if sif.MaxAgeHours < 0 {
		return nil, fmt.Errorf("skip_if_fresh.max_age_hours must not be negative")
	}
	return &sif, nil
}

// Create persists a blueprint with its steps.
func (s *BlueprintService) Create(ctx context.Context, orgID, name, description string, steps []StepInput) (*ent.Blueprint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &errors.AppError{
			Code:       errors.CodeBlueprintInvalid,
			Message:    "blueprint name is required",
			HTTPStatus: http.StatusUnprocessableEntity,
		}
	}
	if err := s.ValidateSteps(steps); err != nil {
		return nil, err
	}

	exists, err := s.client.Blueprint.Query().
		Where(blueprint.OrgID(orgID), blueprint.Name(name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check blueprint name %q: %w", name, err)
	}
	if exists {
		return nil, &errors.AppError{
			Code:       errors.CodeBlueprintExists,
			Message:    "blueprint name already in use",
			HTTPStatus: http.StatusConflict,
			Params:     map[string]interface{}{"name": name},
		}
	}

	bp, err := s.client.Blueprint.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(orgID).
		SetName(name).
		SetDescription(strings.TrimSpace(description)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create blueprint %q: %w", name, err)
	}

	if err := s.createSteps(ctx, bp, steps); err != nil {
		return nil, err
	}
	return s.Get(ctx, orgID, bp.ID)
}

func (s *BlueprintService) createSteps(ctx context.Context, bp *ent.Blueprint, steps []StepInput) error {
	for _, step := range steps {
		enabled := true
		if step.IsEnabled != nil {
			enabled = *step.IsEnabled
		}
		create := s.client.BlueprintStep.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetBlueprint(bp).
			SetPosition(step.Position).
			SetOperationID(step.OperationID).
			SetFanOut(step.FanOut).
			SetIsEnabled(enabled)
		if len(step.StepConfig) > 0 {
			create.SetStepConfig(step.StepConfig)
		}
		if len(step.SkipIfFresh) > 0 {
			create.SetSkipIfFresh(step.SkipIfFresh)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create step %d of blueprint %s: %w", step.Position, bp.ID, err)
		}
	}
	return nil
}

// Get returns a blueprint with its steps eager-loaded, org-scoped.
func (s *BlueprintService) Get(ctx context.Context, orgID, id string) (*ent.Blueprint, error) {
	bp, err := s.client.Blueprint.Query().
		Where(blueprint.ID(id), blueprint.OrgID(orgID)).
		WithSteps().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errors.ErrBlueprintNotFoundf(id)
		}
		return nil, fmt.Errorf("get blueprint %s: %w", id, err)
	}
	return bp, nil
}

// List returns all blueprints of an org, newest first.
func (s *BlueprintService) List(ctx context.Context, orgID string) ([]*ent.Blueprint, error) {
	bps, err := s.client.Blueprint.Query().
		Where(blueprint.OrgID(orgID)).
		WithSteps().
		Order(ent.Desc(blueprint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blueprints for org %s: %w", orgID, err)
	}
	return bps, nil
}

// ReplaceSteps swaps the full step list of a blueprint. In-flight runs keep
// their value snapshot and are unaffected.
func (s *BlueprintService) ReplaceSteps(ctx context.Context, orgID, id string, steps []StepInput) (*ent.Blueprint, error) {
	if err := s.ValidateSteps(steps); err != nil {
		return nil, err
	}
	bp, err := s.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	// Delete existing steps through the edge to stay org-scoped.
	existing, err := bp.QuerySteps().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load steps of blueprint %s: %w", id, err)
	}
	for _, row := range existing {
		if err := s.client.BlueprintStep.DeleteOne(row).Exec(ctx); err != nil {
			return nil, fmt.Errorf("delete step %s: %w", row.ID, err)
		}
	}
	if err := s.createSteps(ctx, bp, steps); err != nil {
		return nil, err
	}
	return s.Get(ctx, orgID, id)
}

// SetActive toggles whether a blueprint accepts new submissions.
func (s *BlueprintService) SetActive(ctx context.Context, orgID, id string, active bool) (*ent.Blueprint, error) {
	bp, err := s.Get(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.client.Blueprint.UpdateOneID(bp.ID).
		SetIsActive(active).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("set blueprint %s active=%t: %w", id, active, err)
	}
	return s.Get(ctx, orgID, id)
}

// Snapshot renders the blueprint's enabled-order step list as the value copy
// embedded into pipeline runs.
func (s *BlueprintService) Snapshot(ctx context.Context, bp *ent.Blueprint) ([]domain.BlueprintStepSnapshot, error) {
	steps := bp.Edges.Steps
	if steps == nil {
		loaded, err := bp.QuerySteps().All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load steps of blueprint %s: %w", bp.ID, err)
		}
		steps = loaded
	}

	snapshots := make([]domain.BlueprintStepSnapshot, 0, len(steps))
	for _, row := range steps {
		snap := domain.BlueprintStepSnapshot{
			Position:    row.Position,
			OperationID: row.OperationID,
			StepConfig:  row.StepConfig,
			FanOut:      row.FanOut,
			IsEnabled:   row.IsEnabled,
		}
		if len(row.SkipIfFresh) > 0 {
			sif, err := parseSkipIfFresh(row.SkipIfFresh)
			if err != nil {
				return nil, fmt.Errorf("blueprint %s step %d: %w", bp.ID, row.Position, err)
			}
			snap.SkipIfFresh = sif
		}
		snapshots = append(snapshots, snap)
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Position < snapshots[j].Position })
	return snapshots, nil
}
