package planapi

import (
	"github.com/xeipuuv/gojsonschema"
)

// responseSchemaJSON documents the published response shape. Deviations are
// reported, never enforced: the dashboard renders partial data as pending.
const responseSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "plan": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["task", "start_time", "end_time"],
        "properties": {
          "task": { "type": "string" },
          "start_time": { "type": ["string", "null"] },
          "end_time": { "type": ["string", "null"] },
          "timebox_minutes": { "type": "integer", "minimum": 0 },
          "why": { "type": ["string", "null"] },
          "human_feasibility_flag": { "type": ["string", "null"] }
        }
      }
    },
    "validation": {
      "type": ["object", "null"],
      "required": ["status"],
      "properties": {
        "status": { "enum": ["pass", "fail"] },
        "metrics": {
          "type": ["object", "null"],
          "properties": {
            "constraint_violation_count": { "type": "integer", "minimum": 0 },
            "overlap_minutes": { "type": "number", "minimum": 0 },
            "hallucination_count": { "type": "integer", "minimum": 0 },
            "keyword_recall_score": { "type": "number", "minimum": 0, "maximum": 1 },
            "human_feasibility_flags": { "type": "integer", "minimum": 0 }
          }
        },
        "errors": { "type": ["array", "null"], "items": { "type": "string" } }
      }
    },
    "extracted_metadata": {
      "type": ["object", "null"],
      "properties": {
        "detected_constraints": { "type": ["array", "null"], "items": { "type": "string" } }
      }
    },
    "debug": {
      "type": ["object", "null"],
      "properties": {
        "repair_attempted": { "type": "boolean" },
        "repair_success": { "type": "boolean" },
        "variant": { "type": "string" }
      }
    },
    "assumptions": { "type": ["array", "null"], "items": { "type": "string" } },
    "questions": { "type": ["array", "null"], "items": { "type": "string" } },
    "confidence": { "enum": ["low", "medium", "high", null] }
  }
}`

var responseSchemaLoader = gojsonschema.NewStringLoader(responseSchemaJSON)

// SchemaIssues lists every way body deviates from the published response
// schema. An empty result means the body conforms.
func SchemaIssues(body []byte) []string {
	result, err := gojsonschema.Validate(responseSchemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}
	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return issues
}
