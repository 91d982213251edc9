// Package schema provides JSON schema validation for doccmp rules files.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/doccmp/schema"
)

// RulesSchemaName is the name of the embedded rules schema.
const RulesSchemaName = "rules.schema.json"

var (
	rulesSchema *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles the embedded schema once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		data, err := schemafs.FS.ReadFile(RulesSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("read rules schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal rules schema: %w", err)
			return
		}

		if err := compiler.AddResource(RulesSchemaName, doc); err != nil {
			compileErr = fmt.Errorf("add rules schema resource: %w", err)
			return
		}

		rulesSchema, err = compiler.Compile(RulesSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile rules schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateRules validates JSON data against the rules schema. YAML rules
// files are converted to JSON by the caller.
func ValidateRules(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := rulesSchema.Validate(v); err != nil {
		return fmt.Errorf("rules validation failed: %w", err)
	}

	return nil
}

// RulesSchema returns the raw embedded rules schema document.
func RulesSchema() ([]byte, error) {
	return schemafs.FS.ReadFile(RulesSchemaName)
}
