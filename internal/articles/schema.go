package articles

import (
	"encoding/json"
	"regexp"
	"strings"
)

// schemaOrgContext is the only @context accepted for embedded JSON-LD
// blocks; anything else is display content, not structured data.
const schemaOrgContext = "https://schema.org"

var jsonFencePattern = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// ExtractSchemas scans the body for fenced json blocks and returns the
// parsed schema.org objects in document order. Malformed JSON and blocks
// with a foreign @context are skipped silently; a bad block never fails the
// surrounding document.
func ExtractSchemas(content string) []map[string]any {
	var schemas []map[string]any

	for _, match := range jsonFencePattern.FindAllStringSubmatch(content, -1) {
		var schema map[string]any
		if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &schema); err != nil {
			continue
		}
		if ctx, _ := schema["@context"].(string); ctx != schemaOrgContext {
			continue
		}
		schemas = append(schemas, schema)
	}

	return schemas
}
