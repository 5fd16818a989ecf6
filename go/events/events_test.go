package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeverity_UnmarshalJSON(t *testing.T) {
	test := func(name, input string, expected Severity) {
		t.Run(name, func(t *testing.T) {
			var s Severity
			require.NoError(t, json.Unmarshal([]byte(input), &s))
			require.Equal(t, expected, s)
		})
	}
	test("warning string", `"warning"`, SeverityWarning)
	test("error string", `"error"`, SeverityError)
	test("critical string", `"critical"`, SeverityCritical)
	test("unknown string maps to error", `"fatal"`, SeverityError)
	test("capitalized maps to error", `"Warning"`, SeverityError)
	test("numeric warning", `1`, SeverityWarning)
	test("numeric critical", `3`, SeverityCritical)
	test("numeric out of range maps to error", `7`, SeverityError)
	test("null maps to error", `null`, SeverityError)
}

func TestSeverity_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(SeverityCritical)
	require.NoError(t, err)
	require.Equal(t, `"critical"`, string(b))
}

func TestError_UnmarshalJSON_SeverityDefaultsToError(t *testing.T) {
	var e Error
	require.NoError(t, json.Unmarshal([]byte(`{"page":"/checkout","error_type":"TypeError","message":"x is undefined","timestamp":1700000000000}`), &e))
	require.Equal(t, SeverityError, e.Severity)
	require.Equal(t, "/checkout", e.Page)

	require.NoError(t, json.Unmarshal([]byte(`{"page":"/checkout","error_type":"TypeError","message":"x is undefined","severity":"warning","timestamp":1700000000000}`), &e))
	require.Equal(t, SeverityWarning, e.Severity)
}

func TestPageView_JSONRoundTrip(t *testing.T) {
	ref := "https://example.com"
	e := PageView{
		Page:      "/home",
		Timestamp: 1700000000000,
		Referrer:  &ref,
	}
	b, err := json.Marshal(e)
	require.NoError(t, err)
	// Optional fields that are unset must not appear on the wire.
	require.NotContains(t, string(b), "user_id")
	require.NotContains(t, string(b), "session_id")

	var got PageView
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, e, got)
}

func TestValidate_RequiredFields(t *testing.T) {
	test := func(name string, e Event, field string) {
		t.Run(name, func(t *testing.T) {
			err := e.Validate()
			require.NotNil(t, err)
			require.Equal(t, field, err.Field)
			require.Equal(t, ReasonRequired, err.Reason)
			require.Equal(t, "Field '"+field+"' must not be empty", err.Message)
		})
	}
	test("page view needs page", PageView{Timestamp: 1}, "page")
	test("click needs page", Click{ElementID: "btn", Timestamp: 1}, "page")
	test("click needs element_id", Click{Page: "/home", Timestamp: 1}, "element_id")
	test("performance needs page", Performance{Timestamp: 1}, "page")
	test("error needs page", Error{ErrorType: "E", Message: "m", Timestamp: 1}, "page")
	test("error needs error_type", Error{Page: "/home", Message: "m", Timestamp: 1}, "error_type")
	test("error needs message", Error{Page: "/home", ErrorType: "E", Timestamp: 1}, "message")
	test("custom needs name", Custom{Timestamp: 1}, "name")
	test("page view needs timestamp", PageView{Page: "/home"}, "timestamp")
	test("click needs timestamp", Click{Page: "/home", ElementID: "btn"}, "timestamp")
	test("performance needs timestamp", Performance{Page: "/home"}, "timestamp")
	test("error needs timestamp", Error{Page: "/home", ErrorType: "E", Message: "m"}, "timestamp")
	test("custom needs timestamp", Custom{Name: "signup"}, "timestamp")
}

func TestValidate_PerformanceTimings(t *testing.T) {
	neg := -1.0
	ok := 12.5
	test := func(field string, e Performance) {
		t.Run(field, func(t *testing.T) {
			err := e.Validate()
			require.NotNil(t, err)
			require.Equal(t, field, err.Field)
			require.Equal(t, ReasonMustBePositive, err.Reason)
			require.Equal(t, "Timing fields must be non-negative", err.Message)
		})
	}
	test("ttfb_ms", Performance{Page: "/home", Timestamp: 1, TTFBMs: &neg})
	test("fcp_ms", Performance{Page: "/home", Timestamp: 1, FCPMs: &neg})
	test("lcp_ms", Performance{Page: "/home", Timestamp: 1, TTFBMs: &ok, LCPMs: &neg})
	test("total_page_load_ms", Performance{Page: "/home", Timestamp: 1, TotalPageLoadMs: &neg})

	// Zero is a legal timing, and unset timings are skipped entirely.
	zero := 0.0
	require.Nil(t, Performance{Page: "/home", Timestamp: 1, TTFBMs: &zero, LCPMs: &ok}.Validate())
}

func TestValidate_CustomPageOptional(t *testing.T) {
	require.Nil(t, Custom{Name: "signup", Timestamp: 1}.Validate())
}

func TestKind_QueueName(t *testing.T) {
	require.Equal(t, "performance_events", Performances.QueueName())
	require.Len(t, AllKinds, 5)
}
