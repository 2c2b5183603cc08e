package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"waterline.io/waterline/ent"
)

// blueprintResponse renders a blueprint with its steps in position order.
func blueprintResponse(bp *ent.Blueprint) gin.H {
	steps := make([]gin.H, 0, len(bp.Edges.Steps))
	rows := append([]*ent.BlueprintStep(nil), bp.Edges.Steps...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	for _, row := range rows {
		step := gin.H{
			"position":     row.Position,
			"operation_id": row.OperationID,
			"fan_out":      row.FanOut,
			"is_enabled":   row.IsEnabled,
		}
		if len(row.StepConfig) > 0 {
			step["step_config"] = row.StepConfig
		}
		if len(row.SkipIfFresh) > 0 {
			step["skip_if_fresh"] = row.SkipIfFresh
		}
		steps = append(steps, step)
	}

	return gin.H{
		"blueprint_id": bp.ID,
		"name":         bp.Name,
		"description":  bp.Description,
		"is_active":    bp.IsActive,
		"created_at":   bp.CreatedAt,
		"updated_at":   bp.UpdatedAt,
		"steps":        steps,
	}
}
