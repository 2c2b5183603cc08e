// Package usecase provides application use cases above the service layer.
// Transactions are managed here; HTTP handlers and CLI commands stay thin.
package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/runtime"
	"waterline.io/waterline/internal/service"
)

// SubmitBatchInput represents a batch submission request. EntityType is the
// batch-level default; a seed map may carry its own "entity_type" key to
// override it, so one batch can mix companies, persons, and job postings.
type SubmitBatchInput struct {
	OrgID       string
	BlueprintID string
	CompanyID   string
	EntityType  string
	Entities    []map[string]interface{}
	MaxDepth    *int
}

// seedEntity is one validated batch entry: its parsed type and its
// identifying fields with the entity_type key stripped.
type seedEntity struct {
	entityType domain.EntityType
	fields     map[string]interface{}
}

// SubmitBatchOutput reports the created submission.
type SubmitBatchOutput struct {
	SubmissionID string   `json:"submission_id"`
	RunIDs       []string `json:"run_ids"`
	SkippedSeeds []string `json:"skipped_seeds,omitempty"`
	Status       string   `json:"status"`
}

// SubmitBatchUseCase creates a submission with one queued pipeline run per
// distinct seed entity and hands the runs to the dispatcher.
//
// Two-phase execution: the submission and its runs are created in one
// transaction, dispatch happens after commit. A dispatch failure leaves
// queued rows behind; redispatch is idempotent by job uniqueness.
type SubmitBatchUseCase struct {
	entClient  *ent.Client
	blueprints *service.BlueprintService
	registry   *registry.Registry
	dispatcher runtime.Dispatcher
	cfg        config.PipelineConfig
}

// NewSubmitBatchUseCase creates a SubmitBatchUseCase.
func NewSubmitBatchUseCase(
	entClient *ent.Client,
	blueprints *service.BlueprintService,
	reg *registry.Registry,
	dispatcher runtime.Dispatcher,
	cfg config.PipelineConfig,
) *SubmitBatchUseCase {
	return &SubmitBatchUseCase{
		entClient:  entClient,
		blueprints: blueprints,
		registry:   reg,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// Execute runs the batch submission.
func (uc *SubmitBatchUseCase) Execute(ctx context.Context, input SubmitBatchInput) (*SubmitBatchOutput, error) {
	if len(input.Entities) == 0 {
		return nil, &apperrors.AppError{
			Code:       apperrors.CodeEmptyBatch,
			Message:    "batch contains no entities",
			HTTPStatus: http.StatusUnprocessableEntity,
		}
	}
	if len(input.Entities) > uc.cfg.MaxBatchEntities {
		return nil, &apperrors.AppError{
			Code:       apperrors.CodeSubmissionInvalid,
			Message:    "batch exceeds the entity limit",
			HTTPStatus: http.StatusUnprocessableEntity,
			Params: map[string]interface{}{
				"entities": len(input.Entities),
				"limit":    uc.cfg.MaxBatchEntities,
			},
		}
	}

	seeds, err := parseSeeds(input.EntityType, input.Entities)
	if err != nil {
		return nil, err
	}

	bp, err := uc.blueprints.Get(ctx, input.OrgID, input.BlueprintID)
	if err != nil {
		return nil, err
	}
	if !bp.IsActive {
		return nil, &apperrors.AppError{
			Code:       apperrors.CodeBlueprintInactive,
			Message:    "blueprint does not accept submissions",
			HTTPStatus: http.StatusConflict,
			Params:     map[string]interface{}{"blueprint_id": bp.ID},
		}
	}

	steps, err := uc.blueprints.Snapshot(ctx, bp)
	if err != nil {
		return nil, err
	}
	// The blueprint may predate registry changes; a stale operation fails
	// here instead of inside a worker.
	for _, step := range steps {
		if !uc.registry.Has(step.OperationID) {
			return nil, apperrors.ErrUnknownOperationf(step.OperationID)
		}
	}
	snapshot, err := domain.StepsToMaps(steps)
	if err != nil {
		return nil, fmt.Errorf("render blueprint snapshot: %w", err)
	}

	maxDepth := uc.cfg.MaxFanOutDepth
	if input.MaxDepth != nil && *input.MaxDepth >= 0 && *input.MaxDepth <= uc.cfg.MaxFanOutDepth {
		maxDepth = *input.MaxDepth
	}

	var (
		submissionID string
		runIDs       []string
		skippedSeeds []string
	)
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		create := tx.Submission.Create().
			SetID(generateID()).
			SetOrgID(input.OrgID).
			SetBlueprintID(bp.ID).
			SetEntities(input.Entities).
			SetMaxDepth(maxDepth)
		if input.CompanyID != "" {
			create.SetCompanyID(input.CompanyID)
		}
		sub, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create submission: %w", err)
		}
		submissionID = sub.ID

		seen := make(map[string]struct{}, len(seeds))
		for i, seed := range seeds {
			key := identity.DedupKey(seed.entityType, seed.fields)
			if _, dup := seen[key]; dup {
				skippedSeeds = append(skippedSeeds, key)
				continue
			}
			seen[key] = struct{}{}

			run, err := tx.PipelineRun.Create().
				SetID(generateID()).
				SetOrgID(input.OrgID).
				SetSubmission(sub).
				SetEntityType(pipelinerun.EntityType(seed.entityType)).
				SetEntityIndex(i).
				SetBlueprintSnapshot(snapshot).
				SetEntityInput(seed.fields).
				SetStatus(pipelinerun.StatusQUEUED).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create pipeline run for entity %d: %w", i, err)
			}
			runIDs = append(runIDs, run.ID)
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("submit batch: %w", txErr)
	}

	for _, runID := range runIDs {
		if err := uc.dispatcher.DispatchRun(ctx, runID); err != nil {
			logger.Error("failed to dispatch pipeline run, row stays queued",
				zap.String("submission_id", submissionID),
				zap.String("run_id", runID),
				zap.Error(err),
			)
		}
	}

	logger.Info("Batch submitted",
		zap.String("submission_id", submissionID),
		zap.String("blueprint_id", bp.ID),
		zap.Int("runs", len(runIDs)),
		zap.Int("duplicate_seeds", len(skippedSeeds)),
	)

	return &SubmitBatchOutput{
		SubmissionID: submissionID,
		RunIDs:       runIDs,
		SkippedSeeds: skippedSeeds,
		Status:       "PENDING",
	}, nil
}

// parseSeeds validates the batch entries and resolves each entry's entity
// type. An "entity_type" key inside a seed map wins over the batch default
// and is stripped from the fields handed to the run.
func parseSeeds(defaultType string, entities []map[string]interface{}) ([]seedEntity, error) {
	var batchDefault domain.EntityType
	if defaultType != "" {
		parsed, err := domain.ParseEntityType(defaultType)
		if err != nil {
			return nil, &apperrors.AppError{
				Code:       apperrors.CodeSubmissionInvalid,
				Message:    "unknown entity type",
				HTTPStatus: http.StatusUnprocessableEntity,
				Params:     map[string]interface{}{"entity_type": defaultType},
			}
		}
		batchDefault = parsed
	}

	seeds := make([]seedEntity, 0, len(entities))
	for i, raw := range entities {
		entityType := batchDefault
		fields := make(map[string]interface{}, len(raw))
		for k, v := range raw {
			if k == "entity_type" {
				s, ok := v.(string)
				if !ok {
					return nil, &apperrors.AppError{
						Code:       apperrors.CodeSubmissionInvalid,
						Message:    "entity_type must be a string",
						HTTPStatus: http.StatusUnprocessableEntity,
						Params:     map[string]interface{}{"entity_index": i},
					}
				}
				parsed, err := domain.ParseEntityType(s)
				if err != nil {
					return nil, &apperrors.AppError{
						Code:       apperrors.CodeSubmissionInvalid,
						Message:    "unknown entity type",
						HTTPStatus: http.StatusUnprocessableEntity,
						Params:     map[string]interface{}{"entity_index": i, "entity_type": s},
					}
				}
				entityType = parsed
				continue
			}
			fields[k] = v
		}
		if entityType == "" {
			return nil, &apperrors.AppError{
				Code:       apperrors.CodeSubmissionInvalid,
				Message:    "entity has no type and the batch declares no default",
				HTTPStatus: http.StatusUnprocessableEntity,
				Params:     map[string]interface{}{"entity_index": i},
			}
		}
		if len(fields) == 0 {
			return nil, &apperrors.AppError{
				Code:       apperrors.CodeSubmissionInvalid,
				Message:    "entity has no identifying fields",
				HTTPStatus: http.StatusUnprocessableEntity,
				Params:     map[string]interface{}{"entity_index": i},
			}
		}
		seeds = append(seeds, seedEntity{entityType: entityType, fields: fields})
	}
	return seeds, nil
}

// withTx executes a function within a transaction.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// generateID generates a unique UUID v7 (time-ordered, K-sortable).
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails (should never happen)
		return uuid.New().String()
	}
	return id.String()
}
