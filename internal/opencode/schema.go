package opencode

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema constrains the shape of each section. Section presence is
// checked separately so every section gets its own finding.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"mcpServers": {
			"type": "object",
			"additionalProperties": {"type": "object"}
		},
		"agents": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {"name": {"type": "string"}}
			}
		},
		"commands": {"type": "object"},
		"environment": {"type": "object"}
	}
}`

// checkSchema validates the standardized document against the structural
// schema and returns one message per violation.
func checkSchema(std []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	docLoader := gojsonschema.NewBytesLoader(std)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("opencode: schema validation: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return issues, nil
}
