// Package sqlrawstore implements rawstore.Store using an SQL database.
package sqlrawstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/go/sql/pool"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
	"github.com/OlegKovalenko00/webmetrics/persister/go/rawstore"
	"github.com/OlegKovalenko00/webmetrics/persister/go/sql"
)

// defaultReadLimit caps reads that arrive without pagination.
const defaultReadLimit = 100

// statement is an SQL statement identifier.
type statement int

const (
	// The identifiers for all the SQL statements used.
	insertPageView statement = iota
	insertClick
	insertPerformance
	insertError
	insertCustom
	selectPageViews
	selectClicks
	selectPerformance
	selectErrors
	selectCustomEvents
)

// statements holds all the raw SQL statements. The select statements are
// bases that get a WHERE clause and pagination appended per request.
var statements = map[statement]string{
	insertPageView: `
		INSERT INTO
			page_views (page, user_id, session_id, referrer, timestamp)
		VALUES
			($1, $2, $3, $4, COALESCE(to_timestamp($5::double precision / 1000), now()))`,
	insertClick: `
		INSERT INTO
			click_events (page, element_id, action, user_id, session_id, timestamp)
		VALUES
			($1, $2, $3, $4, $5, COALESCE(to_timestamp($6::double precision / 1000), now()))`,
	insertPerformance: `
		INSERT INTO
			performance_events (page, ttfb_ms, fcp_ms, lcp_ms, total_page_load_ms, user_id, session_id, timestamp)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, COALESCE(to_timestamp($8::double precision / 1000), now()))`,
	insertError: `
		INSERT INTO
			error_events (page, error_type, message, stack, severity, user_id, session_id, timestamp)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, COALESCE(to_timestamp($8::double precision / 1000), now()))`,
	insertCustom: `
		INSERT INTO
			custom_events (name, page, user_id, session_id, timestamp)
		VALUES
			($1, $2, $3, $4, COALESCE(to_timestamp($5::double precision / 1000), now()))`,
	selectPageViews: `
		SELECT
			id::text,
			page,
			COALESCE(user_id, ''),
			COALESCE(session_id, ''),
			COALESCE(referrer, ''),
			EXTRACT(EPOCH FROM timestamp)::bigint
		FROM
			page_views`,
	selectClicks: `
		SELECT
			id::text,
			page,
			element_id,
			COALESCE(action, ''),
			COALESCE(user_id, ''),
			COALESCE(session_id, ''),
			EXTRACT(EPOCH FROM timestamp)::bigint
		FROM
			click_events`,
	selectPerformance: `
		SELECT
			id::text,
			page,
			COALESCE(ttfb_ms, 0),
			COALESCE(fcp_ms, 0),
			COALESCE(lcp_ms, 0),
			COALESCE(total_page_load_ms, 0),
			COALESCE(user_id, ''),
			COALESCE(session_id, ''),
			EXTRACT(EPOCH FROM timestamp)::bigint
		FROM
			performance_events`,
	selectErrors: `
		SELECT
			id::text,
			page,
			error_type,
			message,
			COALESCE(stack, ''),
			severity,
			COALESCE(user_id, ''),
			COALESCE(session_id, ''),
			EXTRACT(EPOCH FROM timestamp)::bigint
		FROM
			error_events`,
	selectCustomEvents: `
		SELECT
			id::text,
			name,
			COALESCE(page, ''),
			COALESCE(user_id, ''),
			COALESCE(session_id, ''),
			EXTRACT(EPOCH FROM timestamp)::bigint
		FROM
			custom_events`,
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
// The time range is half-open, [Start, End).
func newBuilder(f rawstore.Filter) *queryBuilder {
	b := &queryBuilder{}
	if tr := f.TimeRange; tr != nil {
		b.add("timestamp >= to_timestamp($%d)", tr.Start)
		b.add("timestamp < to_timestamp($%d)", tr.End)
	}
	if f.Page != "" {
		b.add("page LIKE $%d", "%"+f.Page+"%")
	}
	if f.UserID != "" {
		b.add("user_id = $%d", f.UserID)
	}
	return b
}

// sql renders the final statement for the given base select. Rows are
// ordered by time then id so that paging through a fixed time range is
// stable.
func (b *queryBuilder) sql(base string, f rawstore.Filter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(base)
	if len(b.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conditions, " AND "))
	}
	sb.WriteString(" ORDER BY timestamp, id")
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

// tsArg converts a client millisecond timestamp into an insert argument. A
// zero means the client did not send one, which becomes NULL so that the
// column default applies.
func tsArg(ms int64) interface{} {
	if ms == 0 {
		return nil
	}
	return ms
}

// RawStore implements the rawstore.Store interface using an SQL database.
type RawStore struct {
	db pool.Pool
}

// New returns a new *RawStore.
func New(db pool.Pool) *RawStore {
	return &RawStore{
		db: db,
	}
}

// EnsureSchema creates the event tables if they do not already exist.
func (s *RawStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, sql.Schema); err != nil {
		return wmerr.Wrapf(err, "creating raw event tables")
	}
	return nil
}

// InsertPageView implements the rawstore.Store interface.
func (s *RawStore) InsertPageView(ctx context.Context, e events.PageView) error {
	if _, err := s.db.Exec(ctx, statements[insertPageView], e.Page, e.UserID, e.SessionID, e.Referrer, tsArg(e.Timestamp)); err != nil {
		return wmerr.Wrapf(err, "inserting page view")
	}
	return nil
}

// InsertClick implements the rawstore.Store interface.
func (s *RawStore) InsertClick(ctx context.Context, e events.Click) error {
	if _, err := s.db.Exec(ctx, statements[insertClick], e.Page, e.ElementID, e.Action, e.UserID, e.SessionID, tsArg(e.Timestamp)); err != nil {
		return wmerr.Wrapf(err, "inserting click")
	}
	return nil
}

// InsertPerformance implements the rawstore.Store interface.
func (s *RawStore) InsertPerformance(ctx context.Context, e events.Performance) error {
	if _, err := s.db.Exec(ctx, statements[insertPerformance], e.Page, e.TTFBMs, e.FCPMs, e.LCPMs, e.TotalPageLoadMs, e.UserID, e.SessionID, tsArg(e.Timestamp)); err != nil {
		return wmerr.Wrapf(err, "inserting performance event")
	}
	return nil
}

// InsertError implements the rawstore.Store interface.
func (s *RawStore) InsertError(ctx context.Context, e events.Error) error {
	if _, err := s.db.Exec(ctx, statements[insertError], e.Page, e.ErrorType, e.Message, e.Stack, int(e.Severity), e.UserID, e.SessionID, tsArg(e.Timestamp)); err != nil {
		return wmerr.Wrapf(err, "inserting error event")
	}
	return nil
}

// InsertCustom implements the rawstore.Store interface.
func (s *RawStore) InsertCustom(ctx context.Context, e events.Custom) error {
	if _, err := s.db.Exec(ctx, statements[insertCustom], e.Name, e.Page, e.UserID, e.SessionID, tsArg(e.Timestamp)); err != nil {
		return wmerr.Wrapf(err, "inserting custom event")
	}
	return nil
}

// GetPageViews implements the rawstore.Store interface.
func (s *RawStore) GetPageViews(ctx context.Context, f rawstore.Filter) ([]*metricspb.PageViewEvent, error) {
	q, args := newBuilder(f).sql(statements[selectPageViews], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying page views")
	}
	defer rows.Close()
	ret := []*metricspb.PageViewEvent{}
	for rows.Next() {
		e := &metricspb.PageViewEvent{}
		if err := rows.Scan(&e.Id, &e.Page, &e.UserId, &e.SessionId, &e.Referrer, &e.Timestamp); err != nil {
			return nil, wmerr.Wrapf(err, "scanning page view row")
		}
		ret = append(ret, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// GetClicks implements the rawstore.Store interface.
func (s *RawStore) GetClicks(ctx context.Context, f rawstore.Filter) ([]*metricspb.ClickEvent, error) {
	b := newBuilder(f)
	if f.ElementID != "" {
		b.add("element_id LIKE $%d", "%"+f.ElementID+"%")
	}
	q, args := b.sql(statements[selectClicks], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying clicks")
	}
	defer rows.Close()
	ret := []*metricspb.ClickEvent{}
	for rows.Next() {
		e := &metricspb.ClickEvent{}
		if err := rows.Scan(&e.Id, &e.Page, &e.ElementId, &e.Action, &e.UserId, &e.SessionId, &e.Timestamp); err != nil {
			return nil, wmerr.Wrapf(err, "scanning click row")
		}
		ret = append(ret, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// GetPerformance implements the rawstore.Store interface.
func (s *RawStore) GetPerformance(ctx context.Context, f rawstore.Filter) ([]*metricspb.PerformanceEvent, error) {
	q, args := newBuilder(f).sql(statements[selectPerformance], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying performance events")
	}
	defer rows.Close()
	ret := []*metricspb.PerformanceEvent{}
	for rows.Next() {
		e := &metricspb.PerformanceEvent{}
		if err := rows.Scan(&e.Id, &e.Page, &e.TtfbMs, &e.FcpMs, &e.LcpMs, &e.TotalPageLoadMs, &e.UserId, &e.SessionId, &e.Timestamp); err != nil {
			return nil, wmerr.Wrapf(err, "scanning performance row")
		}
		ret = append(ret, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// GetErrors implements the rawstore.Store interface.
func (s *RawStore) GetErrors(ctx context.Context, f rawstore.Filter) ([]*metricspb.ErrorEvent, error) {
	b := newBuilder(f)
	if f.ErrorType != "" {
		b.add("error_type = $%d", f.ErrorType)
	}
	if f.MinSeverity > events.SeverityUnspecified {
		b.add("severity >= $%d", int(f.MinSeverity))
	}
	q, args := b.sql(statements[selectErrors], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying error events")
	}
	defer rows.Close()
	ret := []*metricspb.ErrorEvent{}
	for rows.Next() {
		e := &metricspb.ErrorEvent{}
		var severity int32
		if err := rows.Scan(&e.Id, &e.Page, &e.ErrorType, &e.Message, &e.Stack, &severity, &e.UserId, &e.SessionId, &e.Timestamp); err != nil {
			return nil, wmerr.Wrapf(err, "scanning error row")
		}
		e.Severity = metricspb.Severity(severity)
		ret = append(ret, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// GetCustomEvents implements the rawstore.Store interface.
func (s *RawStore) GetCustomEvents(ctx context.Context, f rawstore.Filter) ([]*metricspb.CustomEvent, error) {
	b := newBuilder(f)
	if f.Name != "" {
		b.add("name = $%d", f.Name)
	}
	q, args := b.sql(statements[selectCustomEvents], f)
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, wmerr.Wrapf(err, "querying custom events")
	}
	defer rows.Close()
	ret := []*metricspb.CustomEvent{}
	for rows.Next() {
		e := &metricspb.CustomEvent{}
		if err := rows.Scan(&e.Id, &e.Name, &e.Page, &e.UserId, &e.SessionId, &e.Timestamp); err != nil {
			return nil, wmerr.Wrapf(err, "scanning custom event row")
		}
		ret = append(ret, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wmerr.Wrap(err)
	}
	return ret, nil
}

// Confirm *RawStore implements rawstore.Store.
var _ rawstore.Store = (*RawStore)(nil)
