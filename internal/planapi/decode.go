package planapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when a response body is valid JSON but not an object.
var ErrNotObject = errors.New("response body is not a JSON object")

// DecodeResponse parses a planning response. Only a body that is not a JSON
// object is an error; every field inside is probed explicitly and a field of
// the wrong type is treated as absent.
func DecodeResponse(data []byte) (*PlanResponse, error) {
	var resp PlanResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UnmarshalJSON implements json.Unmarshaler with lenient field handling.
func (r *PlanResponse) UnmarshalJSON(data []byte) error {
	obj, ok := parseObject(data)
	if !ok {
		if !json.Valid(data) {
			return fmt.Errorf("decode plan response: invalid JSON")
		}
		return ErrNotObject
	}

	*r = PlanResponse{
		Assumptions: obj.strings("assumptions"),
		Questions:   obj.strings("questions"),
		Confidence:  obj.str("confidence"),
	}

	if elems, ok := obj.array("plan"); ok {
		r.Plan = make([]PlanEntry, 0, len(elems))
		for _, raw := range elems {
			r.Plan = append(r.Plan, decodeEntry(raw))
		}
	}

	if v, ok := obj.object("validation"); ok {
		val := &Validation{Errors: v.strings("errors")}
		if s := v.str("status"); s != nil {
			val.Status = *s
		}
		if m, ok := v.object("metrics"); ok {
			val.Metrics = make(Metrics, len(m))
			for key := range m {
				if n := m.number(key); n != nil {
					val.Metrics[key] = *n
				}
			}
		}
		r.Validation = val
	}

	if meta, ok := obj.object("extracted_metadata"); ok {
		r.ExtractedMetadata = &ExtractedMetadata{
			DetectedConstraints: meta.strings("detected_constraints"),
		}
	}

	if d, ok := obj.object("debug"); ok {
		r.Debug = &RepairInfo{
			RepairAttempted: d.isTrue("repair_attempted"),
			RepairSuccess:   d.isTrue("repair_success"),
			Variant:         d.str("variant"),
		}
	}

	return nil
}

func decodeEntry(raw json.RawMessage) PlanEntry {
	entry := PlanEntry{Raw: raw}
	obj, ok := parseObject(raw)
	if !ok {
		return entry
	}
	entry.Item = &PlanItem{
		Task:            obj.str("task"),
		StartTime:       obj.str("start_time"),
		EndTime:         obj.str("end_time"),
		Why:             obj.str("why"),
		FeasibilityFlag: obj.str("human_feasibility_flag"),
		TimeboxMinutes:  obj.number("timebox_minutes"),
	}
	return entry
}

type object map[string]json.RawMessage

func leading(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

func parseObject(raw []byte) (object, bool) {
	if leading(raw) != '{' {
		return nil, false
	}
	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func (o object) object(key string) (object, bool) {
	raw, ok := o[key]
	if !ok {
		return nil, false
	}
	return parseObject(raw)
}

func (o object) array(key string) ([]json.RawMessage, bool) {
	raw, ok := o[key]
	if !ok || leading(raw) != '[' {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, false
	}
	return elems, true
}

func (o object) str(key string) *string {
	raw, ok := o[key]
	if !ok || leading(raw) != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func (o object) number(key string) *float64 {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	switch c := leading(raw); {
	case c == '-', c >= '0' && c <= '9':
	default:
		return nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	return &n
}

func (o object) isTrue(key string) bool {
	raw, ok := o[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("true"))
}

// strings returns the string elements of an array field. Non-string
// elements are skipped; a missing or non-array field yields nil.
func (o object) strings(key string) []string {
	elems, ok := o.array(key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, raw := range elems {
		if leading(raw) != '"' {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
