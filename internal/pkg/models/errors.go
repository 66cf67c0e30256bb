package models

import "fmt"

// UpstreamError reports a failed provider call: network failure, non-2xx
// status or a malformed body. Status is zero when no HTTP status applies.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream: %s (status=%d)", e.Message, e.Status)
	}
	return "upstream: " + e.Message
}

// NormalizationError marks a single provider event whose competitor data is
// structurally absent. Callers skip the event, never the batch.
type NormalizationError struct {
	Reason string
}

func (e *NormalizationError) Error() string {
	return "normalize: " + e.Reason
}

// LookupError reports an identifier that is absent from the current session
// state, typically a stale button referencing a superseded match list.
type LookupError struct {
	Kind string
	ID   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup: %s %q not in current state", e.Kind, e.ID)
}
