// Package jsonfmt pretty-prints JSON documents such as game-state snapshots.
// Key order and non-ASCII text are preserved.
package jsonfmt

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// Indent is the number of spaces per nesting level.
const Indent = 4

var (
	// validator reports decode errors, including trailing bytes.
	validator = jsoniter.ConfigCompatibleWithStandardLibrary
	// printer writes indented output without HTML escaping.
	printer = jsoniter.Config{IndentionStep: Indent, EscapeHTML: false}.Froze()
)

// MalformedInputError reports a document that is not valid JSON.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "Invalid JSON: " + e.Reason
}

// Format returns data re-indented with Indent spaces per level. Number literals
// are copied as written: 2.50, -0 and 1e5 are not normalized.
//
// Postcondition: Returns the formatted document or a *MalformedInputError.
func Format(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &MalformedInputError{Reason: "empty document"}
	}
	var discard interface{}
	if err := validator.Unmarshal(data, &discard); err != nil {
		return nil, &MalformedInputError{Reason: err.Error()}
	}

	iter := jsoniter.ParseBytes(printer, data)
	stream := jsoniter.NewStream(printer, nil, len(data)*2)
	writeValue(stream, iter)
	if stream.Error != nil {
		return nil, fmt.Errorf("writing JSON: %w", stream.Error)
	}
	return stream.Buffer(), nil
}

func writeValue(stream *jsoniter.Stream, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		empty := true
		iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			if empty {
				stream.WriteObjectStart()
				empty = false
			} else {
				stream.WriteMore()
			}
			stream.WriteObjectField(field)
			writeValue(stream, it)
			return true
		})
		if empty {
			stream.WriteEmptyObject()
		} else {
			stream.WriteObjectEnd()
		}
	case jsoniter.ArrayValue:
		empty := true
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			if empty {
				stream.WriteArrayStart()
				empty = false
			} else {
				stream.WriteMore()
			}
			writeValue(stream, it)
			return true
		})
		if empty {
			stream.WriteEmptyArray()
		} else {
			stream.WriteArrayEnd()
		}
	case jsoniter.StringValue:
		stream.WriteString(iter.ReadString())
	case jsoniter.NumberValue:
		stream.WriteRaw(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		stream.WriteBool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		stream.WriteNil()
	default:
		iter.Skip()
	}
}

// FormatString formats a JSON string. Malformed input never fails the caller:
// the returned text is the "Invalid JSON: <reason>" message instead.
func FormatString(s string) string {
	out, err := Format([]byte(s))
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// FormatFile formats the JSON file at inputPath. When outputPath is non-empty the
// result is written there and a confirmation message is returned; otherwise the
// formatted document itself is returned.
func FormatFile(inputPath, outputPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", inputPath, err)
	}
	out, err := Format(data)
	if err != nil {
		return "", fmt.Errorf("formatting %s: %w", inputPath, err)
	}
	if outputPath == "" {
		return string(out), nil
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return fmt.Sprintf("Formatted JSON written to %s", outputPath), nil
}

// IsMalformed reports whether err was caused by invalid JSON input.
func IsMalformed(err error) bool {
	var m *MalformedInputError
	return errors.As(err, &m)
}
