package ftxapi

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"go.uber.org/multierr"
)

var nullJSON = []byte("null")

// Response wraps the raw bytes of one HTTP response body. It is immutable
// and decoding is repeatable: the strict and partial decoders may both be
// run, any number of times, without re-fetching.
type Response struct {
	body []byte
}

func NewResponse(body []byte) *Response {
	return &Response{body: body}
}

// Bytes returns the raw response body.
func (r *Response) Bytes() []byte {
	return r.body
}

// Result returns the raw payload sub-document of a successful envelope.
// A failure envelope surfaces as ErrRejectedByExchange carrying the
// server-supplied message; a body matching neither shape surfaces as
// ErrDeserializationFailed retaining both parse errors.
func (r *Response) Result() (json.RawMessage, error) {
	payload, _, err := r.resolve()
	return payload, err
}

// HasMoreData reports the paging flag some history endpoints set on the
// envelope.
func (r *Response) HasMoreData() (bool, error) {
	_, hasMore, err := r.resolve()
	return hasMore, err
}

// envelope is the success rendering of the outer JSON wrapper. Shape
// resolution keys on the result and error fields alone, so the success
// flag is not carried.
type envelope struct {
	Result      json.RawMessage `json:"result"`
	Error       *string         `json:"error"`
	HasMoreData bool            `json:"hasMoreData"`
}

// failureShape is the error-only rendering of the envelope.
type failureShape struct {
	Error *string `json:"error"`
}

// resolve splits the body into the payload sub-document and paging flag,
// or a typed error. A fastjson probe classifies the envelope shape first;
// the typed decoder then runs over the matching shape only. Stateless:
// every call starts from the raw bytes.
func (r *Response) resolve() (json.RawMessage, bool, error) {
	var p fastjson.Parser

	v, err := p.ParseBytes(r.body)
	if err != nil || v.Type() != fastjson.TypeObject {
		return nil, false, r.failBothShapes()
	}

	res := v.Get("result")
	if res != nil && res.Type() != fastjson.TypeNull {
		var env envelope
		if err := json.Unmarshal(r.body, &env); err != nil {
			return nil, false, r.failBothShapes()
		}
		return env.Result, env.HasMoreData, nil
	}

	if errVal := v.Get("error"); errVal != nil && errVal.Type() != fastjson.TypeNull {
		var shape failureShape
		if err := json.Unmarshal(r.body, &shape); err != nil || shape.Error == nil {
			return nil, false, r.failBothShapes()
		}
		return nil, false, newError(ErrRejectedByExchange, errors.New(*shape.Error))
	}

	if res != nil {
		// An explicit null result with no error is an empty success
		// payload, used by endpoints that return no data.
		return nullJSON, false, nil
	}

	return nil, false, newError(ErrRejectedByExchange, errors.New("envelope carried neither a result nor an error"))
}

// failBothShapes runs both typed envelope decodes so the returned error
// retains each underlying cause. Both are diagnostic; neither is
// discarded.
func (r *Response) failBothShapes() error {
	var env envelope
	successErr := json.Unmarshal(r.body, &env)
	if successErr == nil {
		successErr = errors.New("envelope carries no result")
	}

	var shape failureShape
	failureErr := json.Unmarshal(r.body, &shape)
	if failureErr == nil {
		if shape.Error != nil {
			return newError(ErrRejectedByExchange, errors.New(*shape.Error))
		}
		failureErr = errors.New("envelope carries no error message")
	}

	return newError(ErrDeserializationFailed, multierr.Append(successErr, failureErr))
}

// Decode parses the envelope and decodes the whole payload into T in one
// pass. A single field mismatch fails the entire decode; use
// DecodePartial when per-field tolerance is needed.
func Decode[T any](r *Response) (T, error) {
	var data T

	payload, err := r.Result()
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal(payload, &data); err != nil {
		var zero T
		return zero, newError(ErrDeserializationFailed, err)
	}

	return data, nil
}

// DecodeStrictFields behaves like Decode but additionally rejects payload
// fields the target type does not declare.
func DecodeStrictFields[T any](r *Response) (T, error) {
	var data T

	payload, err := r.Result()
	if err != nil {
		return data, err
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&data); err != nil {
		var zero T
		return zero, newError(ErrDeserializationFailed, err)
	}

	return data, nil
}

// DecodePartial decodes the payload into the endpoint's partial record
// type P, whose deferred fields stay as unparsed JSON sub-documents. A
// malformed field only surfaces when that field is decoded, so the
// remaining fields stay readable. Converting a fully valid partial
// record to its strict counterpart yields the same value Decode would
// have produced.
func DecodePartial[P any](r *Response) (P, error) {
	var data P

	payload, err := r.Result()
	if err != nil {
		return data, err
	}

	if err := json.Unmarshal(payload, &data); err != nil {
		var zero P
		return zero, newError(ErrDeserializationFailed, err)
	}

	return data, nil
}
