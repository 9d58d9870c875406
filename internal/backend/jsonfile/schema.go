package jsonfile

import (
	_ "embed"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaJSON string

// taskSchema validates the on-disk task array before it is decoded.
// Anything the schema rejects is reported as corrupt data.
var taskSchema = compileSchema()

func compileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("tasks.schema.json")
}
