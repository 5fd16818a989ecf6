// Package sqlaggstore implements aggstore.Store using an SQL database.
package sqlaggstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregate"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggstore"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/sql"
	"github.com/OlegKovalenko00/webmetrics/go/sql/pool"
	"github.com/OlegKovalenko00/webmetrics/go/sql/sqlutil"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
)

// defaultReadLimit caps reads that arrive without pagination.
const defaultReadLimit = 1000

// statement is an SQL statement identifier.
type statement int

const (
	// The identifiers for all the SQL statements used.
	getWatermark statement = iota
	setWatermark
	upsertPageViews
	upsertClicks
	upsertPerformance
	upsertErrors
	upsertCustomEvents
	selectPageViews
	selectClicks
	selectPerformance
	selectErrors
	selectCustomEvents
)

// statements holds the fixed SQL statements. The select statements are
// bases that get a WHERE clause and pagination appended per request.
var statements = map[statement]string{
	getWatermark: `
		SELECT
			last_aggregated_at
		FROM
			aggregation_watermark
		WHERE
			id = 1`,
	setWatermark: `
		UPDATE
			aggregation_watermark
		SET
			last_aggregated_at = $1
		WHERE
			id = 1`,
	selectPageViews: `
		SELECT
			time_bucket,
			project_id,
			page,
			views_count,
			unique_users,
			unique_sessions
		FROM
			agg_page_views`,
	selectClicks: `
		SELECT
			time_bucket,
			project_id,
			page,
			element_id,
			clicks_count,
			unique_users,
			unique_sessions
		FROM
			agg_clicks`,
	selectPerformance: `
		SELECT
			time_bucket,
			project_id,
			page,
			samples_count,
			avg_ttfb_ms,
			p95_ttfb_ms,
			avg_fcp_ms,
			p95_fcp_ms,
			avg_lcp_ms,
			p95_lcp_ms,
			avg_total_load_ms,
			p95_total_load_ms
		FROM
			agg_performance`,
	selectErrors: `
		SELECT
			time_bucket,
			project_id,
			page,
			error_type,
			errors_count,
			warning_count,
			critical_count,
			unique_users
		FROM
			agg_errors`,
	selectCustomEvents: `
		SELECT
			time_bucket,
			project_id,
			event_name,
			page,
			events_count,
			unique_users,
			unique_sessions
		FROM
			agg_custom_events`,
}

// upsert describes one batched INSERT ... ON CONFLICT statement. The VALUES
// placeholders are generated per batch since the row count varies. Counts
// accumulate into the existing row; the remaining columns are replaced with
// the freshly computed values.
type upsert struct {
	columns  int
	insert   string
	conflict string
}

var upserts = map[statement]upsert{
	upsertPageViews: {
		columns: 6,
		insert: `
			INSERT INTO
				agg_page_views (time_bucket, project_id, page, views_count, unique_users, unique_sessions)
			VALUES `,
		conflict: `
			ON CONFLICT (time_bucket, project_id, page) DO UPDATE SET
				views_count = agg_page_views.views_count + EXCLUDED.views_count,
				unique_users = EXCLUDED.unique_users,
				unique_sessions = EXCLUDED.unique_sessions`,
	},
	upsertClicks: {
		columns: 7,
		insert: `
			INSERT INTO
				agg_clicks (time_bucket, project_id, page, element_id, clicks_count, unique_users, unique_sessions)
			VALUES `,
		conflict: `
			ON CONFLICT (time_bucket, project_id, page, element_id) DO UPDATE SET
				clicks_count = agg_clicks.clicks_count + EXCLUDED.clicks_count,
				unique_users = EXCLUDED.unique_users,
				unique_sessions = EXCLUDED.unique_sessions`,
	},
	upsertPerformance: {
		columns: 12,
		insert: `
			INSERT INTO
				agg_performance (time_bucket, project_id, page, samples_count, avg_ttfb_ms, p95_ttfb_ms, avg_fcp_ms, p95_fcp_ms, avg_lcp_ms, p95_lcp_ms, avg_total_load_ms, p95_total_load_ms)
			VALUES `,
		conflict: `
			ON CONFLICT (time_bucket, project_id, page) DO UPDATE SET
				samples_count = agg_performance.samples_count + EXCLUDED.samples_count,
				avg_ttfb_ms = EXCLUDED.avg_ttfb_ms,
				p95_ttfb_ms = EXCLUDED.p95_ttfb_ms,
				avg_fcp_ms = EXCLUDED.avg_fcp_ms,
				p95_fcp_ms = EXCLUDED.p95_fcp_ms,
				avg_lcp_ms = EXCLUDED.avg_lcp_ms,
				p95_lcp_ms = EXCLUDED.p95_lcp_ms,
				avg_total_load_ms = EXCLUDED.avg_total_load_ms,
				p95_total_load_ms = EXCLUDED.p95_total_load_ms`,
	},
	upsertErrors: {
		columns: 8,
		insert: `
			INSERT INTO
				agg_errors (time_bucket, project_id, page, error_type, errors_count, warning_count, critical_count, unique_users)
			VALUES `,
		conflict: `
			ON CONFLICT (time_bucket, project_id, page, error_type) DO UPDATE SET
				errors_count = agg_errors.errors_count + EXCLUDED.errors_count,
				warning_count = agg_errors.warning_count + EXCLUDED.warning_count,
				critical_count = agg_errors.critical_count + EXCLUDED.critical_count,
				unique_users = EXCLUDED.unique_users`,
	},
	upsertCustomEvents: {
		columns: 7,
		insert: `
			INSERT INTO
				agg_custom_events (time_bucket, project_id, event_name, page, events_count, unique_users, unique_sessions)
			VALUES `,
		conflict: `
			ON CONFLICT (time_bucket, project_id, event_name, page) DO UPDATE SET
				events_count = agg_custom_events.events_count + EXCLUDED.events_count,
				unique_users = EXCLUDED.unique_users,
				unique_sessions = EXCLUDED.unique_sessions`,
	},
}

// queryBuilder accumulates WHERE conditions with numbered placeholders.
type queryBuilder struct {
	conditions []string
	args       []interface{}
}

// add appends one condition. expr must contain a single %d verb that
// receives the placeholder number for value.
func (b *queryBuilder) add(expr string, value interface{}) {
	b.args = append(b.args, value)
	b.conditions = append(b.conditions, fmt.Sprintf(expr, len(b.args)))
}

// newBuilder seeds a queryBuilder with the conditions every kind supports.
// The bucket range is half-open, [From, To), and each bound is optional.
func newBuilder(f aggstore.ReadFilter) *queryBuilder {
	b := &queryBuilder{}
	b.add("project_id = $%d", f.ProjectID)
	if !f.From.IsZero() {
		b.add("time_bucket >= $%d", f.From)
	}
	if !f.To.IsZero() {
		b.add("time_bucket < $%d", f.To)
	}
	if f.Page != "" {
		b.add("page = $%d", f.Page)
	}
	return b
}

// sql renders the final statement for the given base select. Newest buckets
// come first.
func (b *queryBuilder) sql(base string, f aggstore.ReadFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(b.conditions, " AND "))
	sb.WriteString(" ORDER BY time_bucket DESC")
	limit := f.Limit
	if limit <= 0 {
		limit = defaultReadLimit
	}
	b.args = append(b.args, limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(b.args))
	if f.Offset > 0 {
		b.args = append(b.args, f.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(b.args))
	}
	return sb.String(), b.args
}

// AggStore implements the aggstore.Store interface using an SQL database.
type AggStore struct {
	db pool.Pool
}

// New returns a new *AggStore.
func New(db pool.Pool) *AggStore {
	return &AggStore{
		db: db,
	}
}

// EnsureSchema creates the aggregation tables if they do not already exist
// and seeds the watermark at the epoch.
func (s *AggStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, sql.Schema); err != nil {
		return wmerr.Wrapf(err, "creating aggregation tables")
	}
	return nil
}

// GetWatermark implements the aggstore.Store interface.
func (s *AggStore) GetWatermark(ctx context.Context) (time.Time, error) {
	var t time.Time
	if err := s.db.QueryRow(ctx, statements[getWatermark]).Scan(&t); err != nil {
		return time.Time{}, wmerr.Wrapf(err, "reading aggregation watermark")
	}
	return t.UTC(), nil
}

// SetWatermark implements the aggstore.Store interface.
func (s *AggStore) SetWatermark(ctx context.Context, t time.Time) error {
	if _, err := s.db.Exec(ctx, statements[setWatermark], t.UTC()); err != nil {
		return wmerr.Wrapf(err, "advancing aggregation watermark")
	}
	return nil
}

// upsertBatch executes one batched upsert with the given flattened args.
func (s *AggStore) upsertBatch(ctx context.Context, st statement, numRows int, args []interface{}, what string) error {
	u := upserts[st]
	q := u.insert + sqlutil.ValuesPlaceholders(u.columns, numRows) + u.conflict
	if _, err := s.db.Exec(ctx, q, args...); err != nil {
		return wmerr.Wrapf(err, "upserting %s", what)
	}
	return nil
}

// UpsertPageViews implements the aggstore.Store interface.
func (s *AggStore) UpsertPageViews(ctx context.Context, rows []aggregate.PageViewsRow) error {
	if len(rows) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(rows)*upserts[upsertPageViews].columns)
	for _, r := range rows {
		args = append(args, r.TimeBucket, r.ProjectID, r.Page, r.ViewsCount, r.UniqueUsers, r.UniqueSessions)
	}
	return s.upsertBatch(ctx, upsertPageViews, len(rows), args, "page view rollups")
}

// UpsertClicks implements the aggstore.Store interface.
func (s *AggStore) UpsertClicks(ctx context.Context, rows []aggregate.ClicksRow) error {
	if len(rows) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(rows)*upserts[upsertClicks].columns)
	for _, r := range rows {
		args = append(args, r.TimeBucket, r.ProjectID, r.Page, r.ElementID, r.ClicksCount, r.UniqueUsers, r.UniqueSessions)
	}
	return s.upsertBatch(ctx, upsertClicks, len(rows), args, "click rollups")
}

// UpsertPerformance implements the aggstore.Store interface.
func (s *AggStore) UpsertPerformance(ctx context.Context, rows []aggregate.PerformanceRow) error {
	if len(rows) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(rows)*upserts[upsertPerformance].columns)
	for _, r := range rows {
		args = append(args,
			r.TimeBucket, r.ProjectID, r.Page, r.SamplesCount,
			r.AvgTTFBMs, r.P95TTFBMs, r.AvgFCPMs, r.P95FCPMs,
			r.AvgLCPMs, r.P95LCPMs, r.AvgTotalLoadMs, r.P95TotalLoadMs)
	}
	return s.upsertBatch(ctx, upsertPerformance, len(rows), args, "performance rollups")
}

// UpsertErrors implements the aggstore.Store interface.
func (s *AggStore) UpsertErrors(ctx context.Context, rows []aggregate.ErrorsRow) error {
	if len(rows) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(rows)*upserts[upsertErrors].columns)
	for _, r := range rows {
		args = append(args, r.TimeBucket, r.ProjectID, r.Page, r.ErrorType, r.ErrorsCount, r.WarningCount, r.CriticalCount, r.UniqueUsers)
	}
	return s.upsertBatch(ctx, upsertErrors, len(rows), args, "error rollups")
}

// UpsertCustomEvents implements the aggstore.Store interface.
func (s *AggStore) UpsertCustomEvents(ctx context.Context, rows []aggregate.CustomEventsRow) error {
	if len(rows) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(rows)*upserts[upsertCustomEvents].columns)
	for _, r := range rows {
		args = append(args, r.TimeBucket, r.ProjectID, r.EventName, r.Page, r.EventsCount, r.UniqueUsers, r.UniqueSessions)
	}
	return s.upsertBatch(ctx, upsertCustomEvents, len(rows), args, "custom event rollups")
}

// ReadPageViews implements the aggstore.Store interface.
func (s *AggStore) ReadPageViews(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.PageViewsRow, error) {
	q, args := newBuilder(f).sql(statements[selectPageViews], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying page view rollups")
	}
	defer rows.Close()
	ret := []aggregate.PageViewsRow{}
	for rows.Next() {
		var r aggregate.PageViewsRow
		if err := rows.Scan(&r.TimeBucket, &r.ProjectID, &r.Page, &r.ViewsCount, &r.UniqueUsers, &r.UniqueSessions); err != nil {
			return nil, wmerr.Wrapf(err, "scanning page view rollup")
		}
		r.TimeBucket = r.TimeBucket.UTC()
		ret = append(ret, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// ReadClicks implements the aggstore.Store interface.
func (s *AggStore) ReadClicks(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.ClicksRow, error) {
	b := newBuilder(f)
	if f.ElementID != "" {
		b.add("element_id = $%d", f.ElementID)
	}
	q, args := b.sql(statements[selectClicks], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying click rollups")
	}
	defer rows.Close()
	ret := []aggregate.ClicksRow{}
	for rows.Next() {
		var r aggregate.ClicksRow
		if err := rows.Scan(&r.TimeBucket, &r.ProjectID, &r.Page, &r.ElementID, &r.ClicksCount, &r.UniqueUsers, &r.UniqueSessions); err != nil {
			return nil, wmerr.Wrapf(err, "scanning click rollup")
		}
		r.TimeBucket = r.TimeBucket.UTC()
		ret = append(ret, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// ReadPerformance implements the aggstore.Store interface.
func (s *AggStore) ReadPerformance(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.PerformanceRow, error) {
	q, args := newBuilder(f).sql(statements[selectPerformance], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying performance rollups")
	}
	defer rows.Close()
	ret := []aggregate.PerformanceRow{}
	for rows.Next() {
		var r aggregate.PerformanceRow
		if err := rows.Scan(
			&r.TimeBucket, &r.ProjectID, &r.Page, &r.SamplesCount,
			&r.AvgTTFBMs, &r.P95TTFBMs, &r.AvgFCPMs, &r.P95FCPMs,
			&r.AvgLCPMs, &r.P95LCPMs, &r.AvgTotalLoadMs, &r.P95TotalLoadMs); err != nil {
			return nil, wmerr.Wrapf(err, "scanning performance rollup")
		}
		r.TimeBucket = r.TimeBucket.UTC()
		ret = append(ret, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// ReadErrors implements the aggstore.Store interface.
func (s *AggStore) ReadErrors(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.ErrorsRow, error) {
	b := newBuilder(f)
	if f.ErrorType != "" {
		b.add("error_type = $%d", f.ErrorType)
	}
	q, args := b.sql(statements[selectErrors], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying error rollups")
	}
	defer rows.Close()
	ret := []aggregate.ErrorsRow{}
	for rows.Next() {
		var r aggregate.ErrorsRow
		if err := rows.Scan(&r.TimeBucket, &r.ProjectID, &r.Page, &r.ErrorType, &r.ErrorsCount, &r.WarningCount, &r.CriticalCount, &r.UniqueUsers); err != nil {
			return nil, wmerr.Wrapf(err, "scanning error rollup")
		}
		r.TimeBucket = r.TimeBucket.UTC()
		ret = append(ret, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// ReadCustomEvents implements the aggstore.Store interface.
func (s *AggStore) ReadCustomEvents(ctx context.Context, f aggstore.ReadFilter) ([]aggregate.CustomEventsRow, error) {
	b := newBuilder(f)
	if f.EventName != "" {
		b.add("event_name = $%d", f.EventName)
	}
	q, args := b.sql(statements[selectCustomEvents], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying custom event rollups")
	}
	defer rows.Close()
	ret := []aggregate.CustomEventsRow{}
	for rows.Next() {
		var r aggregate.CustomEventsRow
		if err := rows.Scan(&r.TimeBucket, &r.ProjectID, &r.EventName, &r.Page, &r.EventsCount, &r.UniqueUsers, &r.UniqueSessions); err != nil {
			return nil, wmerr.Wrapf(err, "scanning custom event rollup")
		}
		r.TimeBucket = r.TimeBucket.UTC()
		ret = append(ret, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// Confirm *AggStore implements aggstore.Store.
var _ aggstore.Store = (*AggStore)(nil)
