package source

import (
	"encoding/json"
	"fmt"

	"github.com/mzansijobs/careerhub/internal/types"
)

// registrySchema validates external source files before use. Selector keys
// are restricted to the fields the extractor understands; listing, title,
// company and link are mandatory because extraction cannot proceed without
// them.
const registrySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["name", "base_url", "search_path", "selectors", "request_delay_ms"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "base_url": {"type": "string", "pattern": "^https?://"},
      "search_path": {"type": "string", "minLength": 1},
      "selectors": {
        "type": "object",
        "additionalProperties": false,
        "required": ["listing", "title", "company", "link"],
        "properties": {
          "listing": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "company": {"type": "string", "minLength": 1},
          "location": {"type": "string"},
          "salary": {"type": "string"},
          "date": {"type": "string"},
          "link": {"type": "string", "minLength": 1},
          "description": {"type": "string"}
        }
      },
      "external_id_pattern": {"type": "string"},
      "request_delay_ms": {"type": "integer", "minimum": 0},
      "requires_browser": {"type": "boolean"}
    }
  }
}`

func unmarshalSources(data []byte, dst *[]types.SourceConfig) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse sources JSON: %w", err)
	}
	return nil
}
