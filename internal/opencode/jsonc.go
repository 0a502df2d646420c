package opencode

import (
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"
)

// Standardize strips comments and trailing commas from a JSONC document,
// yielding standard JSON. It is comment-aware, so "//" inside string
// values (URLs and the like) is left alone, and it is idempotent: running
// it over already-standard JSON returns the document unchanged apart from
// whitespace it never touches.
func Standardize(data []byte) ([]byte, error) {
	out, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("opencode: invalid JSONC: %w", err)
	}
	return out, nil
}

// Parse standardizes and decodes an opencode document. It returns both the
// typed document and the raw top-level keys so callers can distinguish a
// missing section from an empty one.
func Parse(data []byte) (*Document, map[string]json.RawMessage, error) {
	std, err := Standardize(data)
	if err != nil {
		return nil, nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(std, &raw); err != nil {
		return nil, nil, fmt.Errorf("opencode: parsing config: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, nil, fmt.Errorf("opencode: decoding config: %w", err)
	}

	return &doc, raw, nil
}
