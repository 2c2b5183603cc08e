package adapter

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "waterline.io/waterline/internal/pkg/errors"
)

// SchemaSet holds compiled JSON schemas keyed by operation id. Operations
// with a registered schema get their mapped output validated before the
// runtime merges it; violations surface as output_validation_failed.
type SchemaSet struct {
	schemas map[string]*gojsonschema.Schema
}

// NewSchemaSet creates an empty schema set.
func NewSchemaSet() *SchemaSet {
	return &SchemaSet{schemas: make(map[string]*gojsonschema.Schema)}
}

// Register compiles and stores a schema for an operation id.
func (s *SchemaSet) Register(operationID string, rawSchema string) error {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(rawSchema))
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", operationID, err)
	}
	s.schemas[operationID] = compiled
	return nil
}

// MustRegister is Register that panics; used from process-start wiring.
func (s *SchemaSet) MustRegister(operationID string, rawSchema string) {
	if err := s.Register(operationID, rawSchema); err != nil {
		panic(err)
	}
}

// Validate checks an operation's mapped output against its schema. Nil for
// operations without a registered schema.
func (s *SchemaSet) Validate(operationID string, output map[string]interface{}) error {
	schema, ok := s.schemas[operationID]
	if !ok {
		return nil
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(output))
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeOutputValidation,
			"output validation could not run", 0)
	}
	if result.Valid() {
		return nil
	}
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return apperrors.New(apperrors.CodeOutputValidation,
		"output violates contract: "+strings.Join(details, "; "), 0)
}
