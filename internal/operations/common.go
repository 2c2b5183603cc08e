package operations

import (
	"strings"

	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/domain"
)

// finishCall folds a provider call outcome into the envelope. Returns true
// when the call produced a usable decoded body and the operation should map
// output; false when the envelope is already terminal.
func finishCall(r *domain.Result, res *adapter.CallResult, err error) bool {
	switch {
	case err != nil:
		code := "provider_error"
		if res.Attempt.Error == "timeout" {
			code = "timeout"
		}
		r.Failed(code, res.Attempt.Error, res.Attempt)
		return false
	case res.Attempt.Status == domain.StatusSkipped:
		r.Skipped(res.Attempt.SkipReason, res.Attempt)
		return false
	case res.Attempt.Status == domain.StatusNotFound:
		r.NotFound(res.Attempt)
		return false
	default:
		return true
	}
}

// validateOutput runs the registered schema (when any) and fails the
// envelope on violation. Returns true when the output is acceptable.
func validateOutput(deps Deps, r *domain.Result, output map[string]interface{}) bool {
	if deps.Schemas == nil {
		return true
	}
	if err := deps.Schemas.Validate(r.OperationID, output); err != nil {
		r.Failed("output_validation_failed", err.Error())
		return false
	}
	return true
}

// pickString pulls a trimmed string field out of a decoded provider body.
func pickString(decoded map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if raw, ok := decoded[key]; ok {
			if s, ok := raw.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

// pickNumber pulls a numeric field out of a decoded provider body.
func pickNumber(decoded map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		if raw, ok := decoded[key]; ok {
			switch v := raw.(type) {
			case float64:
				return v, true
			case int:
				return float64(v), true
			}
		}
	}
	return 0, false
}

// pickList pulls a collection out of a decoded provider body.
func pickList(decoded map[string]interface{}, keys ...string) []interface{} {
	for _, key := range keys {
		if raw, ok := decoded[key]; ok {
			if items, ok := raw.([]interface{}); ok {
				return items
			}
		}
	}
	return nil
}

// setIfPresent copies non-empty values into the mapped output.
func setIfPresent(output map[string]interface{}, key string, value interface{}) {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			output[key] = v
		}
	case nil:
	default:
		output[key] = value
	}
}
