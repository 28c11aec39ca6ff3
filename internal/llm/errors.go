package llm

import (
	"fmt"
	"strings"
)

// TransportError wraps a network-level failure reaching the backend.
// The request is never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("llm: network error calling backend: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError is a non-2xx reply from the backend. Body is the raw
// error body verbatim so backend diagnostics reach the user unchanged.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	msg := fmt.Sprintf("llm: backend error %d: %s", e.Status, e.Body)
	if e.Status == 400 && strings.Contains(e.Body, "model_not_supported") {
		msg += "\nthe model is not available on this endpoint; try HF_MODEL_NAME set to one of:" +
			"\n  - meta-llama/Llama-3.1-8B-Instruct" +
			"\n  - mistralai/Mistral-7B-Instruct-v0.2" +
			"\n  - google/gemma-7b-it"
	}
	return msg
}

// MalformedResponseError is a success reply whose envelope lacks the
// expected choices[0].message.content field.
type MalformedResponseError struct {
	Body string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("llm: unexpected response format: %s", e.Body)
}

// NoJSONError means the reply text contains no delimiter pair for the
// expected kind.
type NoJSONError struct {
	Kind Kind
	Text string
}

func (e *NoJSONError) Error() string {
	return fmt.Sprintf("llm: no JSON %s found in response: %s", e.Kind, e.Text)
}

// ParseError means a delimiter span was found but is not valid JSON.
// Extracted carries the exact substring attempted, for debugging a bad
// model reply without re-running.
type ParseError struct {
	Err       error
	Extracted string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm: JSON parsing failed: %v\nextracted text:\n%s", e.Err, e.Extracted)
}

func (e *ParseError) Unwrap() error { return e.Err }
