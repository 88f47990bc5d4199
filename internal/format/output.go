package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write writes output in the requested format.
//
// Supported formats:
// - text (default; uses the value's Stringer when it has one)
// - json
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "text":
		return WriteText(w, v)
	case "json":
		return WriteJSON(w, v, pretty)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for scriptable use.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText writes the human rendering. Values without a Stringer fall back
// to compact JSON so nothing is silently dropped.
func WriteText(w io.Writer, v any) error {
	if s, ok := v.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(w, s.String())
		return err
	}
	return WriteJSON(w, v, false)
}
