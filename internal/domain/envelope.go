package domain

import "github.com/google/uuid"

// ResultStatus is the normalized outcome of one operation invocation.
type ResultStatus string

// Result statuses. "skipped" means the provider was never called (missing
// credentials or inputs); "failed" means the provider was called and errored
// or the output failed validation; "not_found" is a successful response with
// no records; "found" is a successful response with at least one record.
const (
	StatusFound    ResultStatus = "found"
	StatusNotFound ResultStatus = "not_found"
	StatusFailed   ResultStatus = "failed"
	StatusSkipped  ResultStatus = "skipped"
)

// ErrorInfo carries a machine-readable failure code with a human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Attempt records one call against one upstream provider. An operation that
// tries a primary and a fallback produces multiple attempts.
type Attempt struct {
	Provider    string       `json:"provider"`
	Action      string       `json:"action"`
	Status      ResultStatus `json:"status"`
	HTTPStatus  int          `json:"http_status,omitempty"`
	DurationMS  int64        `json:"duration_ms,omitempty"`
	Error       string       `json:"error,omitempty"`
	SkipReason  string       `json:"skip_reason,omitempty"`
	RawResponse interface{}  `json:"raw_response,omitempty"`
}

// Result is the uniform envelope every operation executor returns. The
// runtime never branches on operation identity, only on this shape.
type Result struct {
	RunID            string                 `json:"run_id"` // fresh per invocation
	OperationID      string                 `json:"operation_id"`
	Status           ResultStatus           `json:"status"`
	Output           map[string]interface{} `json:"output,omitempty"`
	MissingInputs    []string               `json:"missing_inputs,omitempty"`
	Error            *ErrorInfo             `json:"error,omitempty"`
	ProviderAttempts []Attempt              `json:"provider_attempts,omitempty"`
}

// NewResult creates an envelope shell with a fresh invocation id.
func NewResult(operationID string) *Result {
	return &Result{
		RunID:       uuid.NewString(),
		OperationID: operationID,
	}
}

// Found marks the envelope found with the mapped output.
func (r *Result) Found(output map[string]interface{}, attempts ...Attempt) *Result {
	r.Status = StatusFound
	r.Output = output
	r.ProviderAttempts = append(r.ProviderAttempts, attempts...)
	return r
}

// NotFound marks the envelope not_found. Output may carry partial mappings.
func (r *Result) NotFound(attempts ...Attempt) *Result {
	r.Status = StatusNotFound
	if r.Output == nil {
		r.Output = map[string]interface{}{}
	}
	r.ProviderAttempts = append(r.ProviderAttempts, attempts...)
	return r
}

// FailedMissingInputs marks the envelope failed because required parameters
// could not be resolved from input, context, or step config.
func (r *Result) FailedMissingInputs(missing []string) *Result {
	r.Status = StatusFailed
	r.MissingInputs = missing
	r.Error = &ErrorInfo{
		Code:    "missing_inputs",
		Message: "required inputs could not be resolved",
	}
	return r
}

// Failed marks the envelope failed with an error code.
func (r *Result) Failed(code, message string, attempts ...Attempt) *Result {
	r.Status = StatusFailed
	r.Error = &ErrorInfo{Code: code, Message: message}
	r.ProviderAttempts = append(r.ProviderAttempts, attempts...)
	return r
}

// Skipped marks the envelope skipped without calling any provider.
func (r *Result) Skipped(reason string, attempts ...Attempt) *Result {
	r.Status = StatusSkipped
	if len(attempts) == 0 {
		attempts = []Attempt{{
			Provider:   "none",
			Action:     r.OperationID,
			Status:     StatusSkipped,
			SkipReason: reason,
		}}
	}
	r.ProviderAttempts = append(r.ProviderAttempts, attempts...)
	return r
}

// Fatal reports whether this result terminates the pipeline run. Only
// failed is fatal; not_found and skipped let the run continue.
func (r *Result) Fatal() bool {
	return r.Status == StatusFailed
}

// AttemptMaps renders attempts as JSON-shaped maps for persistence.
func (r *Result) AttemptMaps() []map[string]interface{} {
	if len(r.ProviderAttempts) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(r.ProviderAttempts))
	for _, a := range r.ProviderAttempts {
		m := map[string]interface{}{
			"provider": a.Provider,
			"action":   a.Action,
			"status":   string(a.Status),
		}
		if a.HTTPStatus != 0 {
			m["http_status"] = a.HTTPStatus
		}
		if a.DurationMS != 0 {
			m["duration_ms"] = a.DurationMS
		}
		if a.Error != "" {
			m["error"] = a.Error
		}
		if a.SkipReason != "" {
			m["skip_reason"] = a.SkipReason
		}
		if a.RawResponse != nil {
			m["raw_response"] = a.RawResponse
		}
		out = append(out, m)
	}
	return out
}
