package errors

import "net/http"

// Error code constants. Errors carry code + params; messages stay short and
// English-only for logs, clients key off the code.

// Blueprint error codes.
const (
	CodeBlueprintNotFound = "BLUEPRINT_NOT_FOUND"
	CodeBlueprintInactive = "BLUEPRINT_INACTIVE"
	CodeBlueprintInvalid  = "BLUEPRINT_INVALID"
	CodeBlueprintExists   = "BLUEPRINT_ALREADY_EXISTS"
)

// Org error codes.
const (
	CodeOrgHeaderMissing = "ORG_HEADER_MISSING"
	CodeOrgNotFound      = "ORG_NOT_FOUND"
)

// Submission error codes.
const (
	CodeSubmissionNotFound = "SUBMISSION_NOT_FOUND"
	CodeSubmissionInvalid  = "SUBMISSION_INVALID"
	CodeEmptyBatch         = "EMPTY_BATCH"
)

// Pipeline error codes.
const (
	CodeRunNotFound      = "PIPELINE_RUN_NOT_FOUND"
	CodeUnknownOperation = "UNKNOWN_OPERATION"
	CodeMissingInputs    = "MISSING_INPUTS"
	CodeOutputValidation = "OUTPUT_VALIDATION_FAILED"
)

// Entity store error codes.
const (
	CodeEntityNotFound  = "ENTITY_NOT_FOUND"
	CodeVersionConflict = "VERSION_CONFLICT"
	CodeInvalidEntity   = "INVALID_ENTITY_TYPE"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
)

// Convenience constructors using predefined codes.

// ErrBlueprintNotFoundf creates a blueprint not found error.
func ErrBlueprintNotFoundf(blueprintID string) *AppError {
	return &AppError{
		Code:       CodeBlueprintNotFound,
		Message:    "blueprint not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"blueprint_id": blueprintID},
	}
}

// ErrSubmissionNotFoundf creates a submission not found error.
func ErrSubmissionNotFoundf(submissionID string) *AppError {
	return &AppError{
		Code:       CodeSubmissionNotFound,
		Message:    "submission not found",
		HTTPStatus: http.StatusNotFound,
		Params:     map[string]interface{}{"submission_id": submissionID},
	}
}

// ErrUnknownOperationf creates an unknown operation error.
func ErrUnknownOperationf(operationID string) *AppError {
	return &AppError{
		Code:       CodeUnknownOperation,
		Message:    "operation is not registered",
		HTTPStatus: http.StatusUnprocessableEntity,
		Params:     map[string]interface{}{"operation_id": operationID},
	}
}

// ErrVersionConflictf creates an optimistic concurrency conflict error.
func ErrVersionConflictf(entityID string, expectedVersion int) *AppError {
	return &AppError{
		Code:       CodeVersionConflict,
		Message:    "entity was modified by a concurrent writer",
		HTTPStatus: http.StatusConflict,
		Params: map[string]interface{}{
			"entity_id":        entityID,
			"expected_version": expectedVersion,
		},
	}
}
