package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed items.json
var seedJSON []byte

// itemsSchema constrains the seed file: every entry needs an ID, a
// condition, exactly three findings, and one of the ten categories.
var itemsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"condition": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"findings": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 3,
				"maxItems": 3,
			},
			"category": map[string]any{
				"type": "string",
				"enum": []any{
					"cardiology", "dermatology", "endocrinology",
					"gastroenterology", "hematology", "infectious",
					"neurology", "pulmonology", "renal", "rheumatology",
				},
			},
		},
		"required":             []any{"id", "condition", "findings", "category"},
		"additionalProperties": false,
	},
	"minItems": 1,
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

// Load parses and validates the embedded seed catalog. The result is
// cached; repeated calls return the same Catalog.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parseSeed(seedJSON)
	})
	return loaded, loadErr
}

// MustLoad is Load for callers that treat a bad seed as a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

func parseSeed(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("seed catalog failed validation: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	return New(items)
}

func compileSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(itemsSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog-items.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(schemaURL)
}
