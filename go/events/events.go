// Package events defines the telemetry records accepted by the ingestion
// gateway and carried through the broker to the persister. The JSON field
// names are the public wire format, so changes here are breaking changes
// for browser clients.
package events

import (
	"encoding/json"
	"fmt"
)

// Kind identifies one of the five telemetry record types. The string value
// doubles as the broker queue name for that kind.
type Kind string

const (
	PageViews    Kind = "page_views"
	Clicks       Kind = "clicks"
	Performances Kind = "performance_events"
	Errors       Kind = "error_events"
	Customs      Kind = "custom_events"
)

// AllKinds lists every Kind, and so every queue the pipeline declares.
var AllKinds = []Kind{PageViews, Clicks, Performances, Errors, Customs}

// QueueName returns the broker queue this kind of event travels on.
func (k Kind) QueueName() string {
	return string(k)
}

// Severity classifies an Error event. The zero value means the client did
// not supply one; decoding an Error defaults it to SeverityError.
type Severity int

const (
	SeverityUnspecified Severity = 0
	SeverityWarning     Severity = 1
	SeverityError       Severity = 2
	SeverityCritical    Severity = 3
)

// SeverityFromString maps the wire strings to Severity values. Anything
// unrecognized maps to SeverityError.
func SeverityFromString(s string) Severity {
	switch s {
	case "warning":
		return SeverityWarning
	case "critical":
		return SeverityCritical
	default:
		return SeverityError
	}
}

// String returns the wire form of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "error"
	}
}

// MarshalJSON implements json.Marshaler, emitting the string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler. Both the string form and the
// numeric form are accepted; unknown values decode as SeverityError.
func (s *Severity) UnmarshalJSON(b []byte) error {
	var num int
	if err := json.Unmarshal(b, &num); err == nil {
		switch Severity(num) {
		case SeverityWarning, SeverityError, SeverityCritical:
			*s = Severity(num)
		default:
			*s = SeverityError
		}
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s = SeverityFromString(str)
	return nil
}

// Reasons reported in ValidationError details.
const (
	ReasonRequired       = "required"
	ReasonMustBePositive = "must_be_positive"
)

// ValidationError describes why an event was rejected, in the shape the
// gateway reports to clients.
type ValidationError struct {
	Field   string
	Reason  string
	Message string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	return v.Message
}

// Details returns the machine-readable half of the error for inclusion in
// an HTTP error response body.
func (v *ValidationError) Details() map[string]string {
	return map[string]string{
		"field":  v.Field,
		"reason": v.Reason,
	}
}

func required(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Reason:  ReasonRequired,
		Message: fmt.Sprintf("Field '%s' must not be empty", field),
	}
}

func nonNegative(field string, v *float64) *ValidationError {
	if v != nil && *v < 0 {
		return &ValidationError{
			Field:   field,
			Reason:  ReasonMustBePositive,
			Message: "Timing fields must be non-negative",
		}
	}
	return nil
}

// Event is implemented by all five telemetry record types.
type Event interface {
	// Kind returns which queue the event belongs on.
	Kind() Kind

	// Validate returns nil if the event is well formed.
	Validate() *ValidationError
}

// PageView records a single page load. Timestamp is milliseconds since the
// UNIX epoch as reported by the client, here and on every other kind.
// ProjectID scopes the event to a reporting project; consumers substitute a
// default when it is absent, again on every kind.
type PageView struct {
	Page      string  `json:"page"`
	Timestamp int64   `json:"timestamp"`
	ProjectID *string `json:"project_id,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
	SessionID *string `json:"session_id,omitempty"`
	Referrer  *string `json:"referrer,omitempty"`
}

// Kind implements Event.
func (PageView) Kind() Kind { return PageViews }

// Validate implements Event.
func (e PageView) Validate() *ValidationError {
	if e.Page == "" {
		return required("page")
	}
	if e.Timestamp == 0 {
		return required("timestamp")
	}
	return nil
}

// Click records a user interaction with a single page element.
type Click struct {
	Page      string  `json:"page"`
	ElementID string  `json:"element_id"`
	Timestamp int64   `json:"timestamp"`
	ProjectID *string `json:"project_id,omitempty"`
	Action    *string `json:"action,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
	SessionID *string `json:"session_id,omitempty"`
}

// Kind implements Event.
func (Click) Kind() Kind { return Clicks }

// Validate implements Event.
func (e Click) Validate() *ValidationError {
	if e.Page == "" {
		return required("page")
	}
	if e.ElementID == "" {
		return required("element_id")
	}
	if e.Timestamp == 0 {
		return required("timestamp")
	}
	return nil
}

// Performance records page timing measurements, all in milliseconds. Each
// timing is optional since clients report whichever ones the browser
// produced.
type Performance struct {
	Page            string   `json:"page"`
	Timestamp       int64    `json:"timestamp"`
	ProjectID       *string  `json:"project_id,omitempty"`
	TTFBMs          *float64 `json:"ttfb_ms,omitempty"`
	FCPMs           *float64 `json:"fcp_ms,omitempty"`
	LCPMs           *float64 `json:"lcp_ms,omitempty"`
	TotalPageLoadMs *float64 `json:"total_page_load_ms,omitempty"`
	UserID          *string  `json:"user_id,omitempty"`
	SessionID       *string  `json:"session_id,omitempty"`
}

// Kind implements Event.
func (Performance) Kind() Kind { return Performances }

// Validate implements Event.
func (e Performance) Validate() *ValidationError {
	if e.Page == "" {
		return required("page")
	}
	if e.Timestamp == 0 {
		return required("timestamp")
	}
	if err := nonNegative("ttfb_ms", e.TTFBMs); err != nil {
		return err
	}
	if err := nonNegative("fcp_ms", e.FCPMs); err != nil {
		return err
	}
	if err := nonNegative("lcp_ms", e.LCPMs); err != nil {
		return err
	}
	if err := nonNegative("total_page_load_ms", e.TotalPageLoadMs); err != nil {
		return err
	}
	return nil
}

// Error records a client-side error or exception.
type Error struct {
	Page      string   `json:"page"`
	ErrorType string   `json:"error_type"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
	Timestamp int64    `json:"timestamp"`
	ProjectID *string  `json:"project_id,omitempty"`
	Stack     *string  `json:"stack,omitempty"`
	UserID    *string  `json:"user_id,omitempty"`
	SessionID *string  `json:"session_id,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler, defaulting an absent severity
// to SeverityError.
func (e *Error) UnmarshalJSON(b []byte) error {
	type alias Error
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Severity == SeverityUnspecified {
		a.Severity = SeverityError
	}
	*e = Error(a)
	return nil
}

// Kind implements Event.
func (Error) Kind() Kind { return Errors }

// Validate implements Event.
func (e Error) Validate() *ValidationError {
	if e.Page == "" {
		return required("page")
	}
	if e.ErrorType == "" {
		return required("error_type")
	}
	if e.Message == "" {
		return required("message")
	}
	if e.Timestamp == 0 {
		return required("timestamp")
	}
	return nil
}

// Custom records an application-defined event. Page is optional for this
// kind only.
type Custom struct {
	Name       string            `json:"name"`
	Timestamp  int64             `json:"timestamp"`
	ProjectID  *string           `json:"project_id,omitempty"`
	Page       *string           `json:"page,omitempty"`
	UserID     *string           `json:"user_id,omitempty"`
	SessionID  *string           `json:"session_id,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Kind implements Event.
func (Custom) Kind() Kind { return Customs }

// Validate implements Event.
func (e Custom) Validate() *ValidationError {
	if e.Name == "" {
		return required("name")
	}
	if e.Timestamp == 0 {
		return required("timestamp")
	}
	return nil
}

// Assert that all five types implement Event.
var _ Event = PageView{}
var _ Event = Click{}
var _ Event = Performance{}
var _ Event = Error{}
var _ Event = Custom{}
