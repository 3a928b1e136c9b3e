package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["jobs"],
  "properties": {
    "jobs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "job_type"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "job_type": {"type": "string", "enum": ["full-time", "part-time", "contract", "freelance"]}
        }
      }
    }
  }
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `{"jobs": [{"title": "Backend Engineer", "job_type": "full-time"}]}`

	assert.NoError(t, ValidateJSONString(catalogSchema, doc))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"jobs": [{"title": "Backend Engineer"}]}`

	err := ValidateJSONString(catalogSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "job_type")
}

func TestValidateJSONString_BadEnumValue(t *testing.T) {
	doc := `{"jobs": [{"title": "Backend Engineer", "job_type": "gig"}]}`

	err := ValidateJSONString(catalogSchema, doc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(catalogSchema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"jobs": []}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "JSON file not found")
}
