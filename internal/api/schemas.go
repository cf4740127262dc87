// internal/api/schemas.go
package api

import (
	"creator-match/internal/common/errors"
	"creator-match/internal/common/validation"
)

const brandContextSchema = `{
	"type": "object",
	"properties": {
		"url":         {"type": "string", "maxLength": 2048},
		"description": {"type": "string", "maxLength": 20000}
	},
	"anyOf": [
		{"required": ["url"]},
		{"required": ["description"]}
	],
	"additionalProperties": false
}`

const strategySchema = `{
	"type": "object",
	"properties": {
		"budget": {"type": "number", "minimum": 0},
		"influencers": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"id":              {"type": "string"},
					"name":            {"type": "string"},
					"niche":           {"type": "string"},
					"followers":       {"type": "integer", "minimum": 0},
					"engagementRate":  {"type": "number", "minimum": 0},
					"email":           {"type": "string"},
					"phone":           {"type": "string"}
				},
				"required": ["followers"]
			}
		}
	},
	"required": ["influencers"],
	"additionalProperties": false
}`

type validatorWrapper struct {
	inner *validation.Validator
}

func newValidator(schemaJSON string) (*validatorWrapper, error) {
	v, err := validation.NewValidator(schemaJSON)
	if err != nil {
		return nil, err
	}
	return &validatorWrapper{inner: v}, nil
}

// check validates a raw request body and converts failures into the
// standard validation error shape.
func (v *validatorWrapper) check(body []byte) error {
	result, err := v.inner.ValidateBytes(body)
	if err != nil {
		return errors.NewValidationFailedError(err.Error())
	}
	if !result.Valid {
		return errors.NewValidationFailedError(validation.FormatErrors(result))
	}
	return nil
}
