package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
)

var bucketA = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
var bucketB = time.Date(2025, 7, 1, 12, 5, 0, 0, time.UTC)

// sec returns an event timestamp in seconds, offset from the given bucket
// start.
func sec(bucket time.Time, offset time.Duration) int64 {
	return bucket.Add(offset).Unix()
}

func TestBucket_TruncatesToBucketStart(t *testing.T) {
	require.Equal(t, bucketA, Bucket(sec(bucketA, 0), DefaultBucketSize))
	require.Equal(t, bucketA, Bucket(sec(bucketA, 4*time.Minute+59*time.Second), DefaultBucketSize))
	require.Equal(t, bucketB, Bucket(sec(bucketA, 5*time.Minute), DefaultBucketSize))
}

func TestPageViews_GroupsByBucketAndPage(t *testing.T) {
	events := []*metricspb.PageViewEvent{
		{Page: "/home", UserId: "u1", SessionId: "s1", Timestamp: sec(bucketA, time.Minute)},
		{Page: "/home", UserId: "u1", SessionId: "s2", Timestamp: sec(bucketA, 2*time.Minute)},
		{Page: "/home", UserId: "u2", Timestamp: sec(bucketA, 3*time.Minute)},
		// Anonymous view, still counted but not a unique user or session.
		{Page: "/home", Timestamp: sec(bucketA, 4*time.Minute)},
		{Page: "/pricing", UserId: "u1", SessionId: "s1", Timestamp: sec(bucketA, time.Minute)},
		{Page: "/home", UserId: "u3", SessionId: "s3", Timestamp: sec(bucketB, time.Minute)},
	}
	rows := PageViews("default-project", DefaultBucketSize, events)
	require.Equal(t, []PageViewsRow{
		{
			TimeBucket:     bucketA,
			ProjectID:      "default-project",
			Page:           "/home",
			ViewsCount:     4,
			UniqueUsers:    2,
			UniqueSessions: 2,
		},
		{
			TimeBucket:     bucketA,
			ProjectID:      "default-project",
			Page:           "/pricing",
			ViewsCount:     1,
			UniqueUsers:    1,
			UniqueSessions: 1,
		},
		{
			TimeBucket:     bucketB,
			ProjectID:      "default-project",
			Page:           "/home",
			ViewsCount:     1,
			UniqueUsers:    1,
			UniqueSessions: 1,
		},
	}, rows)
}

func TestPageViews_UniquesCountDistinctIDs(t *testing.T) {
	// Five views by three users over five sessions.
	users := []string{"u0", "u1", "u2", "u0", "u1"}
	events := make([]*metricspb.PageViewEvent, 0, len(users))
	for i, u := range users {
		events = append(events, &metricspb.PageViewEvent{
			Page:      "/home",
			UserId:    u,
			SessionId: fmt.Sprintf("s%d", i),
			Timestamp: sec(bucketA, time.Duration(i)*time.Minute),
		})
	}
	rows := PageViews("default-project", DefaultBucketSize, events)
	require.Equal(t, []PageViewsRow{
		{
			TimeBucket:     bucketA,
			ProjectID:      "default-project",
			Page:           "/home",
			ViewsCount:     5,
			UniqueUsers:    3,
			UniqueSessions: 5,
		},
	}, rows)
}

func TestPageViews_NoEvents(t *testing.T) {
	require.Empty(t, PageViews("default-project", DefaultBucketSize, nil))
}

func TestClicks_GroupsByElement(t *testing.T) {
	events := []*metricspb.ClickEvent{
		{Page: "/home", ElementId: "cta", UserId: "u1", SessionId: "s1", Timestamp: sec(bucketA, time.Minute)},
		{Page: "/home", ElementId: "cta", UserId: "u2", SessionId: "s2", Timestamp: sec(bucketA, 2*time.Minute)},
		{Page: "/home", ElementId: "nav", UserId: "u1", SessionId: "s1", Timestamp: sec(bucketA, time.Minute)},
	}
	rows := Clicks("default-project", DefaultBucketSize, events)
	require.Equal(t, []ClicksRow{
		{
			TimeBucket:     bucketA,
			ProjectID:      "default-project",
			Page:           "/home",
			ElementID:      "cta",
			ClicksCount:    2,
			UniqueUsers:    2,
			UniqueSessions: 2,
		},
		{
			TimeBucket:     bucketA,
			ProjectID:      "default-project",
			Page:           "/home",
			ElementID:      "nav",
			ClicksCount:    1,
			UniqueUsers:    1,
			UniqueSessions: 1,
		},
	}, rows)
}

func TestPerformance_Statistics(t *testing.T) {
	// Four samples; one never reported LCP, so the LCP stats cover three
	// values while the sample count still covers all four.
	events := []*metricspb.PerformanceEvent{
		{Page: "/home", TtfbMs: 100, LcpMs: 1000, Timestamp: sec(bucketA, time.Minute)},
		{Page: "/home", TtfbMs: 200, LcpMs: 2000, Timestamp: sec(bucketA, time.Minute)},
		{Page: "/home", TtfbMs: 300, LcpMs: 3000, Timestamp: sec(bucketA, 2*time.Minute)},
		{Page: "/home", TtfbMs: 400, Timestamp: sec(bucketA, 3*time.Minute)},
	}
	rows := Performance("default-project", DefaultBucketSize, events)
	require.Len(t, rows, 1)
	row := rows[0]
	require.Equal(t, bucketA, row.TimeBucket)
	require.Equal(t, int64(4), row.SamplesCount)
	require.Equal(t, 250.0, row.AvgTTFBMs)
	// p95 index is floor(0.95 * 3) = 2 of the sorted values.
	require.Equal(t, 300.0, row.P95TTFBMs)
	require.Equal(t, 2000.0, row.AvgLCPMs)
	require.Equal(t, 2000.0, row.P95LCPMs)
	// No event reported FCP or total load.
	require.Equal(t, 0.0, row.AvgFCPMs)
	require.Equal(t, 0.0, row.P95FCPMs)
	require.Equal(t, 0.0, row.AvgTotalLoadMs)
	require.Equal(t, 0.0, row.P95TotalLoadMs)
}

func TestPerformance_P95PicksHighSample(t *testing.T) {
	// Total page load times 10, 20, ..., 100.
	var events []*metricspb.PerformanceEvent
	for i := 1; i <= 10; i++ {
		events = append(events, &metricspb.PerformanceEvent{
			Page:            "/home",
			TotalPageLoadMs: float64(i * 10),
			Timestamp:       sec(bucketA, time.Duration(i)*time.Second),
		})
	}
	rows := Performance("default-project", DefaultBucketSize, events)
	require.Len(t, rows, 1)
	require.Equal(t, 55.0, rows[0].AvgTotalLoadMs)
	// Index floor(0.95 * 9) = 8 of the 10 sorted values.
	require.Equal(t, 90.0, rows[0].P95TotalLoadMs)
}

func TestP95(t *testing.T) {
	require.Equal(t, 0.0, p95(nil))
	require.Equal(t, 42.0, p95([]float64{42}))

	values := make([]float64, 0, 100)
	for i := 100; i >= 1; i-- {
		values = append(values, float64(i))
	}
	require.Equal(t, 95.0, p95(values))
	// The input slice is left unsorted.
	require.Equal(t, 100.0, values[0])
}

func TestMean(t *testing.T) {
	require.Equal(t, 0.0, mean(nil))
	require.Equal(t, 25.0, mean([]float64{10, 20, 30, 40}))
}

func TestErrors_SeverityTallies(t *testing.T) {
	events := []*metricspb.ErrorEvent{
		{Page: "/checkout", ErrorType: "TypeError", Severity: metricspb.Severity_SEVERITY_WARNING, UserId: "u1", Timestamp: sec(bucketA, time.Minute)},
		{Page: "/checkout", ErrorType: "TypeError", Severity: metricspb.Severity_SEVERITY_WARNING, UserId: "u2", Timestamp: sec(bucketA, time.Minute)},
		{Page: "/checkout", ErrorType: "TypeError", Severity: metricspb.Severity_SEVERITY_ERROR, UserId: "u1", Timestamp: sec(bucketA, 2*time.Minute)},
		{Page: "/checkout", ErrorType: "TypeError", Severity: metricspb.Severity_SEVERITY_ERROR, UserId: "u3", Timestamp: sec(bucketA, 2*time.Minute)},
		{Page: "/checkout", ErrorType: "TypeError", Severity: metricspb.Severity_SEVERITY_ERROR, Timestamp: sec(bucketA, 3*time.Minute)},
		{Page: "/checkout", ErrorType: "TypeError", Severity: metricspb.Severity_SEVERITY_CRITICAL, UserId: "u1", Timestamp: sec(bucketA, 4*time.Minute)},
	}
	rows := Errors("default-project", DefaultBucketSize, events)
	require.Equal(t, []ErrorsRow{
		{
			TimeBucket:    bucketA,
			ProjectID:     "default-project",
			Page:          "/checkout",
			ErrorType:     "TypeError",
			ErrorsCount:   6,
			WarningCount:  2,
			CriticalCount: 1,
			UniqueUsers:   3,
		},
	}, rows)
}

func TestErrors_SplitsByErrorType(t *testing.T) {
	events := []*metricspb.ErrorEvent{
		{Page: "/home", ErrorType: "TypeError", Severity: metricspb.Severity_SEVERITY_ERROR, Timestamp: sec(bucketA, time.Minute)},
		{Page: "/home", ErrorType: "NetworkError", Severity: metricspb.Severity_SEVERITY_ERROR, Timestamp: sec(bucketA, time.Minute)},
	}
	rows := Errors("default-project", DefaultBucketSize, events)
	require.Len(t, rows, 2)
	require.Equal(t, "NetworkError", rows[0].ErrorType)
	require.Equal(t, "TypeError", rows[1].ErrorType)
}

func TestCustomEvents_MissingPageGroupsAsEmpty(t *testing.T) {
	events := []*metricspb.CustomEvent{
		{Name: "signup", Page: "/landing", UserId: "u1", SessionId: "s1", Timestamp: sec(bucketA, time.Minute)},
		{Name: "signup", UserId: "u2", SessionId: "s2", Timestamp: sec(bucketA, time.Minute)},
		{Name: "signup", UserId: "u2", SessionId: "s2", Timestamp: sec(bucketA, 2*time.Minute)},
	}
	rows := CustomEvents("default-project", DefaultBucketSize, events)
	require.Equal(t, []CustomEventsRow{
		{
			TimeBucket:     bucketA,
			ProjectID:      "default-project",
			EventName:      "signup",
			Page:           "",
			EventsCount:    2,
			UniqueUsers:    1,
			UniqueSessions: 1,
		},
		{
			TimeBucket:     bucketA,
			ProjectID:      "default-project",
			EventName:      "signup",
			Page:           "/landing",
			EventsCount:    1,
			UniqueUsers:    1,
			UniqueSessions: 1,
		},
	}, rows)
}
