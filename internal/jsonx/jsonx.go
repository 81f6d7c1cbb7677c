// Package jsonx serializes host values the way the generated language
// spells them.
package jsonx

import (
	"bytes"
	"encoding/json"
)

// Marshal returns the JSON spelling of v. HTML characters are not escaped.
// The boolean is false when v has no JSON form (functions, channels, ...).
func Marshal(v any) (string, bool) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", false
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), true
}

// Quote returns s as a double-quoted string literal.
func Quote(s string) string {
	out, _ := Marshal(s)
	return out
}
