// Package sqllogstore implements logstore.Store using an SQL database.
package sqllogstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/OlegKovalenko00/webmetrics/go/sql/pool"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/logstore"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/sql"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/uptime"
)

// The log_message values written for each probe outcome.
const (
	messageOK   = "OK"
	messageFail = "FAIL"
)

// statement is an SQL statement identifier.
type statement int

const (
	// The identifiers for all the SQL statements used.
	insertSample statement = iota
	selectUptime
)

// intervals maps each reporting window to the SQL interval it covers.
var intervals = map[string]string{
	uptime.Day:   "1 day",
	uptime.Week:  "1 week",
	uptime.Month: "1 month",
	uptime.Year:  "1 year",
}

// statements holds the fixed SQL statements.
var statements = map[statement]string{
	insertSample: `
		INSERT INTO
			logs (service_name, log_message, timestamp)
		VALUES
			($1, $2, now())`,
	selectUptime: uptimeSelect(),
}

// uptimeSelect builds the single SELECT that tallies every reporting window
// at once. Each window contributes an ok count and a total count, in
// uptime.Periods order, so the scan in UptimeStats walks the same slice.
func uptimeSelect() string {
	var sb strings.Builder
	sb.WriteString("SELECT")
	for i, period := range uptime.Periods {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `
			COUNT(*) FILTER (WHERE timestamp >= now() - INTERVAL '%s' AND log_message = '%s') AS %s_ok,
			COUNT(*) FILTER (WHERE timestamp >= now() - INTERVAL '%s') AS %s_total`,
			intervals[period], messageOK, period, intervals[period], period)
	}
	sb.WriteString(`
		FROM
			logs
		WHERE
			service_name = $1`)
	return sb.String()
}

// LogStore implements the logstore.Store interface using an SQL database.
type LogStore struct {
	db pool.Pool
}

// New returns a new *LogStore.
func New(db pool.Pool) *LogStore {
	return &LogStore{
		db: db,
	}
}

// EnsureSchema creates the probe log table if it does not already exist.
func (s *LogStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, sql.Schema); err != nil {
		return wmerr.Wrapf(err, "creating probe log table")
	}
	return nil
}

// WriteSample implements the logstore.Store interface.
func (s *LogStore) WriteSample(ctx context.Context, service string, ok bool) error {
	if _, err := s.db.Exec(ctx, statements[insertSample], service, messageFor(ok)); err != nil {
		return wmerr.Wrapf(err, "recording %s probe for %s", messageFor(ok), service)
	}
	return nil
}

// UptimeStats implements the logstore.Store interface.
func (s *LogStore) UptimeStats(ctx context.Context, service string) (map[string]uptime.Stats, error) {
	counts := make([]int64, 2*len(uptime.Periods))
	scans := make([]interface{}, len(counts))
	for i := range counts {
		scans[i] = &counts[i]
	}
	if err := s.db.QueryRow(ctx, statements[selectUptime], service).Scan(scans...); err != nil {
		return nil, wmerr.Wrapf(err, "tallying uptime for %s", service)
	}
	ret := make(map[string]uptime.Stats, len(uptime.Periods))
	for i, period := range uptime.Periods {
		ok, total := counts[2*i], counts[2*i+1]
		ret[period] = uptime.Stats{
			OK:      ok,
			Total:   total,
			Percent: uptime.Percent(ok, total),
		}
	}
	return ret, nil
}

// messageFor returns the log_message written for a probe outcome.
func messageFor(ok bool) string {
	if ok {
		return messageOK
	}
	return messageFail
}

// Confirm *LogStore implements logstore.Store.
var _ logstore.Store = (*LogStore)(nil)
