// Package aggregate computes per-bucket rollups of raw telemetry events.
// Events are grouped into fixed-width UTC time buckets and reduced to the
// counts, distinct-user tallies, and latency statistics served by the
// aggregation API. The functions here are pure; callers fetch the raw
// events and store the resulting rows.
package aggregate

import (
	"sort"
	"time"

	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
)

// DefaultBucketSize is the bucket width used when none is configured.
const DefaultBucketSize = 5 * time.Minute

// Bucket returns the UTC bucket containing the given event time, where sec
// is seconds since the UNIX epoch. Buckets are aligned to multiples of size
// from the epoch.
func Bucket(sec int64, size time.Duration) time.Time {
	return time.Unix(sec, 0).UTC().Truncate(size)
}

// PageViewsRow is one aggregated page-view bucket, keyed by
// (TimeBucket, ProjectID, Page).
type PageViewsRow struct {
	TimeBucket     time.Time
	ProjectID      string
	Page           string
	ViewsCount     int64
	UniqueUsers    int64
	UniqueSessions int64
}

// ClicksRow is one aggregated click bucket, keyed by
// (TimeBucket, ProjectID, Page, ElementID).
type ClicksRow struct {
	TimeBucket     time.Time
	ProjectID      string
	Page           string
	ElementID      string
	ClicksCount    int64
	UniqueUsers    int64
	UniqueSessions int64
}

// PerformanceRow is one aggregated performance bucket, keyed by
// (TimeBucket, ProjectID, Page). Averages and p95s cover only the events
// that reported the given timing.
type PerformanceRow struct {
	TimeBucket     time.Time
	ProjectID      string
	Page           string
	SamplesCount   int64
	AvgTTFBMs      float64
	P95TTFBMs      float64
	AvgFCPMs       float64
	P95FCPMs       float64
	AvgLCPMs       float64
	P95LCPMs       float64
	AvgTotalLoadMs float64
	P95TotalLoadMs float64
}

// ErrorsRow is one aggregated error bucket, keyed by
// (TimeBucket, ProjectID, Page, ErrorType). ErrorsCount counts every event
// in the group regardless of severity.
type ErrorsRow struct {
	TimeBucket    time.Time
	ProjectID     string
	Page          string
	ErrorType     string
	ErrorsCount   int64
	WarningCount  int64
	CriticalCount int64
	UniqueUsers   int64
}

// CustomEventsRow is one aggregated custom-event bucket, keyed by
// (TimeBucket, ProjectID, EventName, Page).
type CustomEventsRow struct {
	TimeBucket     time.Time
	ProjectID      string
	EventName      string
	Page           string
	EventsCount    int64
	UniqueUsers    int64
	UniqueSessions int64
}

// countedGroup accumulates an event count plus the distinct non-empty user
// and session ids seen in the group.
type countedGroup struct {
	count    int64
	users    map[string]struct{}
	sessions map[string]struct{}
}

func newCountedGroup() *countedGroup {
	return &countedGroup{
		users:    map[string]struct{}{},
		sessions: map[string]struct{}{},
	}
}

func (g *countedGroup) add(userID, sessionID string) {
	g.count++
	if userID != "" {
		g.users[userID] = struct{}{}
	}
	if sessionID != "" {
		g.sessions[sessionID] = struct{}{}
	}
}

// mean returns the arithmetic mean of values, or 0 when values is empty.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// p95 returns the value at index floor(0.95 * (n-1)) of the sorted values,
// or 0 when values is empty.
func p95(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return sorted[int(0.95*float64(len(sorted)-1))]
}

// PageViews rolls raw page views up into per-bucket rows. Rows are returned
// in (bucket, page) order.
func PageViews(projectID string, size time.Duration, events []*metricspb.PageViewEvent) []PageViewsRow {
	type key struct {
		bucket int64
		page   string
	}
	groups := map[key]*countedGroup{}
	for _, e := range events {
		k := key{bucket: Bucket(e.Timestamp, size).Unix(), page: e.Page}
		g := groups[k]
		if g == nil {
			g = newCountedGroup()
			groups[k] = g
		}
		g.add(e.UserId, e.SessionId)
	}
	rows := make([]PageViewsRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, PageViewsRow{
			TimeBucket:     time.Unix(k.bucket, 0).UTC(),
			ProjectID:      projectID,
			Page:           k.page,
			ViewsCount:     g.count,
			UniqueUsers:    int64(len(g.users)),
			UniqueSessions: int64(len(g.sessions)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TimeBucket.Equal(rows[j].TimeBucket) {
			return rows[i].TimeBucket.Before(rows[j].TimeBucket)
		}
		return rows[i].Page < rows[j].Page
	})
	return rows
}

// Clicks rolls raw clicks up into per-bucket rows. Rows are returned in
// (bucket, page, element) order.
func Clicks(projectID string, size time.Duration, events []*metricspb.ClickEvent) []ClicksRow {
	type key struct {
		bucket  int64
		page    string
		element string
	}
	groups := map[key]*countedGroup{}
	for _, e := range events {
		k := key{bucket: Bucket(e.Timestamp, size).Unix(), page: e.Page, element: e.ElementId}
		g := groups[k]
		if g == nil {
			g = newCountedGroup()
			groups[k] = g
		}
		g.add(e.UserId, e.SessionId)
	}
	rows := make([]ClicksRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, ClicksRow{
			TimeBucket:     time.Unix(k.bucket, 0).UTC(),
			ProjectID:      projectID,
			Page:           k.page,
			ElementID:      k.element,
			ClicksCount:    g.count,
			UniqueUsers:    int64(len(g.users)),
			UniqueSessions: int64(len(g.sessions)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TimeBucket.Equal(rows[j].TimeBucket) {
			return rows[i].TimeBucket.Before(rows[j].TimeBucket)
		}
		if rows[i].Page != rows[j].Page {
			return rows[i].Page < rows[j].Page
		}
		return rows[i].ElementID < rows[j].ElementID
	})
	return rows
}

// perfGroup accumulates a sample count and the reported values of each
// timing. A timing of zero means the client never reported it, so zeroes
// are excluded from the statistics.
type perfGroup struct {
	count int64
	ttfb  []float64
	fcp   []float64
	lcp   []float64
	total []float64
}

func (g *perfGroup) add(e *metricspb.PerformanceEvent) {
	g.count++
	if e.TtfbMs > 0 {
		g.ttfb = append(g.ttfb, e.TtfbMs)
	}
	if e.FcpMs > 0 {
		g.fcp = append(g.fcp, e.FcpMs)
	}
	if e.LcpMs > 0 {
		g.lcp = append(g.lcp, e.LcpMs)
	}
	if e.TotalPageLoadMs > 0 {
		g.total = append(g.total, e.TotalPageLoadMs)
	}
}

// Performance rolls raw performance events up into per-bucket rows. Rows
// are returned in (bucket, page) order.
func Performance(projectID string, size time.Duration, events []*metricspb.PerformanceEvent) []PerformanceRow {
	type key struct {
		bucket int64
		page   string
	}
	groups := map[key]*perfGroup{}
	for _, e := range events {
		k := key{bucket: Bucket(e.Timestamp, size).Unix(), page: e.Page}
		g := groups[k]
		if g == nil {
			g = &perfGroup{}
			groups[k] = g
		}
		g.add(e)
	}
	rows := make([]PerformanceRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, PerformanceRow{
			TimeBucket:     time.Unix(k.bucket, 0).UTC(),
			ProjectID:      projectID,
			Page:           k.page,
			SamplesCount:   g.count,
			AvgTTFBMs:      mean(g.ttfb),
			P95TTFBMs:      p95(g.ttfb),
			AvgFCPMs:       mean(g.fcp),
			P95FCPMs:       p95(g.fcp),
			AvgLCPMs:       mean(g.lcp),
			P95LCPMs:       p95(g.lcp),
			AvgTotalLoadMs: mean(g.total),
			P95TotalLoadMs: p95(g.total),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TimeBucket.Equal(rows[j].TimeBucket) {
			return rows[i].TimeBucket.Before(rows[j].TimeBucket)
		}
		return rows[i].Page < rows[j].Page
	})
	return rows
}

// errorGroup accumulates severity counts plus the distinct non-empty user
// ids seen in the group.
type errorGroup struct {
	total     int64
	warnings  int64
	criticals int64
	users     map[string]struct{}
}

// Errors rolls raw error events up into per-bucket rows. Rows are returned
// in (bucket, page, error type) order.
func Errors(projectID string, size time.Duration, events []*metricspb.ErrorEvent) []ErrorsRow {
	type key struct {
		bucket    int64
		page      string
		errorType string
	}
	groups := map[key]*errorGroup{}
	for _, e := range events {
		k := key{bucket: Bucket(e.Timestamp, size).Unix(), page: e.Page, errorType: e.ErrorType}
		g := groups[k]
		if g == nil {
			g = &errorGroup{users: map[string]struct{}{}}
			groups[k] = g
		}
		g.total++
		switch e.Severity {
		case metricspb.Severity_SEVERITY_WARNING:
			g.warnings++
		case metricspb.Severity_SEVERITY_CRITICAL:
			g.criticals++
		}
		if e.UserId != "" {
			g.users[e.UserId] = struct{}{}
		}
	}
	rows := make([]ErrorsRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, ErrorsRow{
			TimeBucket:    time.Unix(k.bucket, 0).UTC(),
			ProjectID:     projectID,
			Page:          k.page,
			ErrorType:     k.errorType,
			ErrorsCount:   g.total,
			WarningCount:  g.warnings,
			CriticalCount: g.criticals,
			UniqueUsers:   int64(len(g.users)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TimeBucket.Equal(rows[j].TimeBucket) {
			return rows[i].TimeBucket.Before(rows[j].TimeBucket)
		}
		if rows[i].Page != rows[j].Page {
			return rows[i].Page < rows[j].Page
		}
		return rows[i].ErrorType < rows[j].ErrorType
	})
	return rows
}

// CustomEvents rolls raw custom events up into per-bucket rows. Rows are
// returned in (bucket, event name, page) order.
func CustomEvents(projectID string, size time.Duration, events []*metricspb.CustomEvent) []CustomEventsRow {
	type key struct {
		bucket int64
		name   string
		page   string
	}
	groups := map[key]*countedGroup{}
	for _, e := range events {
		k := key{bucket: Bucket(e.Timestamp, size).Unix(), name: e.Name, page: e.Page}
		g := groups[k]
		if g == nil {
			g = newCountedGroup()
			groups[k] = g
		}
		g.add(e.UserId, e.SessionId)
	}
	rows := make([]CustomEventsRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, CustomEventsRow{
			TimeBucket:     time.Unix(k.bucket, 0).UTC(),
			ProjectID:      projectID,
			EventName:      k.name,
			Page:           k.page,
			EventsCount:    g.count,
			UniqueUsers:    int64(len(g.users)),
			UniqueSessions: int64(len(g.sessions)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TimeBucket.Equal(rows[j].TimeBucket) {
			return rows[i].TimeBucket.Before(rows[j].TimeBucket)
		}
		if rows[i].EventName != rows[j].EventName {
			return rows[i].EventName < rows[j].EventName
		}
		return rows[i].Page < rows[j].Page
	})
	return rows
}
