// FILE: logtint/src/internal/extract/extract.go
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"logtint/src/internal/config"
	"logtint/src/internal/core"
	"logtint/src/internal/timestamp"
)

// Extractor pulls the configured level, message and timestamp keys out of a
// JSON object line. The keys are fixed at construction.
type Extractor struct {
	levelKey     string
	messageKey   string
	timestampKey string
}

// New creates an extractor for the configured field names
func New(fields config.FieldsConfig) *Extractor {
	return &Extractor{
		levelKey:     fields.Level,
		messageKey:   fields.Message,
		timestampKey: fields.Timestamp,
	}
}

// Extract decodes line and converts the three known keys into a RawRecord.
//
// The level must be a JSON string. The timestamp may be a string or a number,
// numbers keep their literal decimal text, and an absent or null timestamp
// becomes timestamp.Placeholder. A missing or non-string message is empty.
func (e *Extractor) Extract(line string) (core.RawRecord, error) {
	obj, err := Decode(line)
	if err != nil {
		return core.RawRecord{}, err
	}

	var rec core.RawRecord

	switch v := obj[e.levelKey].(type) {
	case string:
		rec.Level = v
	case nil:
		return core.RawRecord{}, core.NewError(core.KindField, e.levelKey, errors.New("missing level"))
	default:
		return core.RawRecord{}, core.NewError(core.KindField, e.levelKey,
			fmt.Errorf("level must be a string, got %s", jsonType(v)))
	}

	switch v := obj[e.timestampKey].(type) {
	case string:
		rec.Timestamp = v
	case json.Number:
		rec.Timestamp = v.String()
	case nil:
		rec.Timestamp = timestamp.Placeholder
	default:
		return core.RawRecord{}, core.NewError(core.KindField, e.timestampKey,
			fmt.Errorf("timestamp must be a string or number, got %s", jsonType(v)))
	}

	if msg, ok := obj[e.messageKey].(string); ok {
		rec.Message = msg
	}

	return rec, nil
}

// Decode parses line as exactly one JSON object. Numbers are kept as json.Number.
func Decode(line string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, core.NewError(core.KindDecode, "", fmt.Errorf("invalid JSON: %w", err))
	}

	// Anything but whitespace after the value is an error
	if _, err := dec.Token(); err != io.EOF {
		return nil, core.NewError(core.KindDecode, "", errors.New("invalid JSON: trailing data after value"))
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, core.NewError(core.KindDecode, "", fmt.Errorf("expected a JSON object, got %s", jsonType(v)))
	}

	return obj, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
