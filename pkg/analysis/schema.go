package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// The schema describes the expected types. Nothing is required. It is not
// used to reject answers: repair resets whatever it flags.
const analysisSchemaJSON = `{
  "type": "object",
  "definitions": {
    "text": {"type": ["string", "null"]},
    "list": {"type": ["array", "null"], "items": {"type": ["string", "null"]}},
    "score": {"anyOf": [
      {"type": ["number", "null"]},
      {"type": "string", "pattern": "^\\s*-?\\d+(\\.\\d+)?\\s*(%|/\\s*100)?\\s*$"}
    ]}
  },
  "properties": {
    "summary_of_profile": {"$ref": "#/definitions/text"},
    "overall_advice": {"$ref": "#/definitions/text"},
    "disclaimer": {"$ref": "#/definitions/text"},
    "flashcards": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "job_title": {"$ref": "#/definitions/text"},
          "demand_level": {"$ref": "#/definitions/text"},
          "match_score": {"$ref": "#/definitions/score"},
          "experience_target": {"$ref": "#/definitions/text"},
          "why_it_matches": {"$ref": "#/definitions/text"},
          "what_you_do_in_this_job": {"$ref": "#/definitions/list"},
          "skills_you_already_have": {"$ref": "#/definitions/list"},
          "skills_to_build_next": {"$ref": "#/definitions/list"},
          "first_steps_to_get_started": {"$ref": "#/definitions/list"},
          "estimated_salary_expectation": {"$ref": "#/definitions/text"},
          "recommended_certifications": {"$ref": "#/definitions/list"},
          "google_job_search_query": {"$ref": "#/definitions/text"},
          "google_job_search_url": {"$ref": "#/definitions/text"},
          "risk_or_caution_note": {"$ref": "#/definitions/text"}
        }
      }
    },
    "grounding_urls": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "uri": {"type": "string"},
          "title": {"$ref": "#/definitions/text"}
        }
      }
    },
    "resume_audit": {
      "type": ["object", "null"],
      "properties": {
        "ats_compatibility_score": {"$ref": "#/definitions/score"},
        "formatting_issues": {"$ref": "#/definitions/list"},
        "content_improvements": {"$ref": "#/definitions/list"},
        "key_strengths": {"$ref": "#/definitions/list"}
      }
    }
  }
}`

var analysisSchema = mustSchema(analysisSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("analysis: bad schema: %v", err))
	}
	return s
}

var (
	listFields = map[string]bool{
		"what_you_do_in_this_job":    true,
		"skills_you_already_have":    true,
		"skills_to_build_next":       true,
		"first_steps_to_get_started": true,
		"recommended_certifications": true,
		"formatting_issues":          true,
		"content_improvements":       true,
		"key_strengths":              true,
	}
	// Fields whose wrong-typed values are dropped rather than stringified.
	structuredFields = map[string]bool{
		"flashcards":              true,
		"grounding_urls":          true,
		"resume_audit":            true,
		"match_score":             true,
		"ats_compatibility_score": true,
	}
)

const pathSep = "\x00"

// repair resets every value of doc the schema flags. A scalar where a list
// belongs becomes a one-item list, a number or boolean where text belongs
// becomes text, anything else is removed so the sanitizer defaults it.
// Only a document that is not a JSON object is an error.
func repair(doc []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, errors.New("top level is not an object")
	}

	res, err := analysisSchema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return nil, err
	}
	if !res.Valid() {
		for _, e := range res.Errors() {
			path := strings.Split(e.Context().String(pathSep), pathSep)
			fix(obj, "", path[1:])
		}
		if res, err = analysisSchema.Validate(gojsonschema.NewGoLoader(obj)); err != nil {
			return nil, err
		}
		if !res.Valid() {
			return nil, errors.New(res.Errors()[0].String())
		}
	}
	return json.Marshal(dropNulls(obj))
}

// fix resets the value at path. Paths that no longer resolve, because an
// enclosing value was already reset, are ignored.
func fix(node any, parentKey string, path []string) {
	if len(path) == 0 {
		return
	}
	key, rest := path[0], path[1:]
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[key]
		if !ok {
			return
		}
		if len(rest) > 0 {
			fix(v, key, rest)
			return
		}
		switch {
		case listFields[key] && isScalar(v):
			n[key] = []any{scalarText(v)}
		case !structuredFields[key] && isScalar(v):
			n[key] = scalarText(v)
		default:
			delete(n, key)
		}
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(n) {
			return
		}
		if len(rest) > 0 {
			fix(n[i], parentKey, rest)
			return
		}
		if !structuredFields[parentKey] && isScalar(n[i]) {
			n[i] = scalarText(n[i])
		} else {
			n[i] = nil
		}
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, json.Number, bool:
		return true
	}
	return false
}

func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// dropNulls removes null entries from arrays.
func dropNulls(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = dropNulls(e)
		}
		return x
	case []any:
		out := x[:0]
		for _, e := range x {
			if e != nil {
				out = append(out, dropNulls(e))
			}
		}
		return out
	default:
		return v
	}
}
