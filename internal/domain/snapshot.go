package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// StepsToMaps renders blueprint step snapshots into the JSON-shaped form the
// pipeline_run row stores.
func StepsToMaps(steps []BlueprintStepSnapshot) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(steps))
	for _, step := range steps {
		raw, err := json.Marshal(step)
		if err != nil {
			return nil, fmt.Errorf("marshal step %d: %w", step.Position, err)
		}
		var m map[string]interface{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal step %d: %w", step.Position, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// StepsFromMaps parses the stored blueprint snapshot back into typed steps,
// sorted by ascending position.
func StepsFromMaps(rows []map[string]interface{}) ([]BlueprintStepSnapshot, error) {
	steps := make([]BlueprintStepSnapshot, 0, len(rows))
	for i, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("marshal snapshot row %d: %w", i, err)
		}
		var step BlueprintStepSnapshot
		if err := json.Unmarshal(raw, &step); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot row %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].Position < steps[j].Position })
	return steps, nil
}
