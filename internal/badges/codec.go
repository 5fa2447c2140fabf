package badges

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const listSchemaURL = "schema://unlocked-badges.json"

// listSchema describes the persisted unlocked-badge list.
var listSchema = map[string]any{
	"type":        "array",
	"uniqueItems": true,
	"items": map[string]any{
		"type":    "string",
		"pattern": "^[a-z][a-z0-9_]*$",
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func listValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(listSchemaURL, listSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(listSchemaURL)
	})
	return compiled, compileErr
}

// EncodeList serializes an unlocked set as a JSON list of IDs.
func EncodeList(ids []ID) string {
	if ids == nil {
		ids = []ID{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

// DecodeList parses a persisted unlocked set. An empty string is an empty
// set. IDs missing from the catalog are dropped.
func DecodeList(raw string) ([]ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := listValidator()
	if err != nil {
		return nil, fmt.Errorf("compile badge list schema: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("badge list validation failed: %w", err)
	}

	var ids []ID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode badge list: %w", err)
	}

	known := ids[:0]
	for _, id := range ids {
		if _, ok := Lookup(id); ok {
			known = append(known, id)
		}
	}
	return known, nil
}
