package json

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/imandefterim/qurandata"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Validate checks an encoded document against the resource schema the apps
// expect. Returns EINVALID listing every violation.
func Validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return qurandata.Errorf(qurandata.EINTERNAL, "load schema: %s", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return qurandata.Errorf(qurandata.EINVALID, "validate document: %s", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return qurandata.Errorf(qurandata.EINVALID, "schema validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}
