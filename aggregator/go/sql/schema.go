// Package sql defines the schema for the aggregation database. There is
// one rollup table per raw event kind, keyed by the bucket plus that kind's
// grouping attributes, and a single-row watermark table recording how far
// aggregation has progressed.
package sql

// Schema is the SQL schema for the aggregation tables.
const Schema = `
CREATE TABLE IF NOT EXISTS agg_page_views (
	time_bucket TIMESTAMPTZ NOT NULL,
	project_id TEXT NOT NULL,
	page TEXT NOT NULL,
	views_count BIGINT NOT NULL DEFAULT 0,
	unique_users BIGINT NOT NULL DEFAULT 0,
	unique_sessions BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (time_bucket, project_id, page)
);
CREATE INDEX IF NOT EXISTS agg_page_views_by_project ON agg_page_views (project_id, time_bucket DESC);

CREATE TABLE IF NOT EXISTS agg_clicks (
	time_bucket TIMESTAMPTZ NOT NULL,
	project_id TEXT NOT NULL,
	page TEXT NOT NULL,
	element_id TEXT NOT NULL,
	clicks_count BIGINT NOT NULL DEFAULT 0,
	unique_users BIGINT NOT NULL DEFAULT 0,
	unique_sessions BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (time_bucket, project_id, page, element_id)
);
CREATE INDEX IF NOT EXISTS agg_clicks_by_project ON agg_clicks (project_id, time_bucket DESC);

CREATE TABLE IF NOT EXISTS agg_performance (
	time_bucket TIMESTAMPTZ NOT NULL,
	project_id TEXT NOT NULL,
	page TEXT NOT NULL,
	samples_count BIGINT NOT NULL DEFAULT 0,
	avg_ttfb_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	p95_ttfb_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	avg_fcp_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	p95_fcp_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	avg_lcp_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	p95_lcp_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	avg_total_load_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	p95_total_load_ms DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (time_bucket, project_id, page)
);
CREATE INDEX IF NOT EXISTS agg_performance_by_project ON agg_performance (project_id, time_bucket DESC);

CREATE TABLE IF NOT EXISTS agg_errors (
	time_bucket TIMESTAMPTZ NOT NULL,
	project_id TEXT NOT NULL,
	page TEXT NOT NULL,
	error_type TEXT NOT NULL,
	errors_count BIGINT NOT NULL DEFAULT 0,
	warning_count BIGINT NOT NULL DEFAULT 0,
	critical_count BIGINT NOT NULL DEFAULT 0,
	unique_users BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (time_bucket, project_id, page, error_type)
);
CREATE INDEX IF NOT EXISTS agg_errors_by_project ON agg_errors (project_id, time_bucket DESC);

CREATE TABLE IF NOT EXISTS agg_custom_events (
	time_bucket TIMESTAMPTZ NOT NULL,
	project_id TEXT NOT NULL,
	event_name TEXT NOT NULL,
	page TEXT NOT NULL,
	events_count BIGINT NOT NULL DEFAULT 0,
	unique_users BIGINT NOT NULL DEFAULT 0,
	unique_sessions BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (time_bucket, project_id, event_name, page)
);
CREATE INDEX IF NOT EXISTS agg_custom_events_by_project ON agg_custom_events (project_id, time_bucket DESC);

CREATE TABLE IF NOT EXISTS aggregation_watermark (
	id INTEGER PRIMARY KEY,
	last_aggregated_at TIMESTAMPTZ NOT NULL
);

INSERT INTO aggregation_watermark (id, last_aggregated_at)
	VALUES (1, '1970-01-01T00:00:00Z')
	ON CONFLICT (id) DO NOTHING;
`
