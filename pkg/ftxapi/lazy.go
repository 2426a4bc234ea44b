package ftxapi

import (
	"bytes"
	"encoding/json"
)

// Json defers decoding of one field: the raw sub-document is captured
// during the outer decode and only parsed into T when Decode is called.
// Partial record types use it for fields whose format the exchange has
// been known to change.
type Json[T any] struct {
	raw json.RawMessage
}

func NewJson[T any](raw json.RawMessage) Json[T] {
	return Json[T]{raw: raw}
}

// Raw returns the captured sub-document.
func (j Json[T]) Raw() json.RawMessage {
	return j.raw
}

// Decode parses the captured sub-document into T.
func (j Json[T]) Decode() (T, error) {
	var data T
	if err := json.Unmarshal(j.raw, &data); err != nil {
		var zero T
		return zero, newError(ErrDeserializationFailed, err)
	}
	return data, nil
}

func (j *Json[T]) UnmarshalJSON(data []byte) error {
	j.raw = append(j.raw[:0], data...)
	return nil
}

func (j Json[T]) MarshalJSON() ([]byte, error) {
	if j.raw == nil {
		return nullJSON, nil
	}
	return j.raw, nil
}

// OptJson is the optional counterpart of Json: an absent or null field
// decodes to the zero value, and Decode then returns nil without
// parsing anything.
type OptJson[T any] struct {
	raw json.RawMessage
}

func NewOptJson[T any](raw json.RawMessage) OptJson[T] {
	if bytes.Equal(raw, nullJSON) {
		raw = nil
	}
	return OptJson[T]{raw: raw}
}

// IsNull reports whether the field was absent or null.
func (j OptJson[T]) IsNull() bool {
	return j.raw == nil
}

// Raw returns the captured sub-document, or nil for an absent field.
func (j OptJson[T]) Raw() json.RawMessage {
	return j.raw
}

// Decode parses the captured sub-document into *T, returning nil for an
// absent field.
func (j OptJson[T]) Decode() (*T, error) {
	if j.raw == nil {
		return nil, nil
	}

	var data T
	if err := json.Unmarshal(j.raw, &data); err != nil {
		return nil, newError(ErrDeserializationFailed, err)
	}
	return &data, nil
}

func (j *OptJson[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, nullJSON) {
		j.raw = nil
		return nil
	}
	j.raw = append(j.raw[:0], data...)
	return nil
}

func (j OptJson[T]) MarshalJSON() ([]byte, error) {
	if j.raw == nil {
		return nullJSON, nil
	}
	return j.raw, nil
}
