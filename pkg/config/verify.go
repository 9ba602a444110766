package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON
// schema: the document must be representable under the schema's top-level
// properties and carry every field the runtime cannot start without
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(configData, &doc); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	// every top-level section of the document must exist in the schema
	if root, ok := schema.Defs["Config"]; ok {
		for section := range doc {
			if _, known := root.Properties[section]; !known {
				return fmt.Errorf("unknown config section %q", section)
			}
		}
	}

	return validateRequiredFields(cfg)
}

// validateRequiredFields checks the fields the runtime cannot start without
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.Snapshot.Interval == 0 {
		return fmt.Errorf("snapshot.interval is required")
	}
	if cfg.Snapshot.ReplayInterval == 0 {
		return fmt.Errorf("snapshot.replay_interval is required")
	}
	if err := cfg.Learning.Validate(); err != nil {
		return fmt.Errorf("learning parameters: %w", err)
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
