package apidocs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocs_RegisteredAndValidJSON(t *testing.T) {
	cases := map[string][]string{
		"menu":      {"/menu", "/order"},
		"selection": {"/log_selected_items/"},
	}
	for instance, paths := range cases {
		doc, err := swag.ReadDoc(instance)
		if err != nil {
			t.Fatalf("%s: read doc: %v", instance, err)
		}
		var parsed struct {
			Swagger string                     `json:"swagger"`
			Paths   map[string]json.RawMessage `json:"paths"`
		}
		if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
			t.Fatalf("%s: invalid JSON: %v", instance, err)
		}
		if parsed.Swagger != "2.0" {
			t.Fatalf("%s: swagger=%q", instance, parsed.Swagger)
		}
		for _, p := range paths {
			if _, ok := parsed.Paths[p]; !ok {
				t.Fatalf("%s: missing path %s", instance, p)
			}
		}
	}
}
