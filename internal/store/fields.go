package store

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Field is one key/value pair of a decoded line. Value keeps the raw
// JSON text of the value so rendering matches the source bytes.
type Field struct {
	Name  string
	Value json.RawMessage
}

// Display returns the value as compact JSON text, suitable for the
// one-line "key:value" rendering.
func (f Field) Display() string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, f.Value); err != nil {
		return string(f.Value)
	}
	return buf.String()
}

// Text returns the value for the full-value screen: string values are
// unescaped so embedded newlines wrap naturally, everything else is
// shown as JSON.
func (f Field) Text() string {
	var s string
	if err := json.Unmarshal(f.Value, &s); err == nil {
		return s
	}
	return f.Display()
}

// DecodeObject decodes text as a JSON object, preserving the key
// order of the source. It reports ok=false for malformed JSON and for
// top-level non-objects; callers fall back to the raw text then.
func DecodeObject(text string) ([]Field, bool) {
	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, isDelim := tok.(json.Delim); !isDelim || delim != '{' {
		return nil, false
	}

	fields := []Field{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, isString := keyTok.(string)
		if !isString {
			return nil, false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, false
		}
		fields = append(fields, Field{Name: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, false
	}
	return fields, true
}
