// Package sql defines the schema for the raw event database. There is one
// table per broker queue and the table names match the queue names.
package sql

// Schema is the SQL schema for the raw event tables.
const Schema = `
CREATE TABLE IF NOT EXISTS page_views (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	page TEXT NOT NULL,
	user_id TEXT,
	session_id TEXT,
	referrer TEXT,
	-- Client event time, or the arrival time when the client sent none.
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS page_views_by_timestamp ON page_views (timestamp);

CREATE TABLE IF NOT EXISTS click_events (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	page TEXT NOT NULL,
	element_id TEXT NOT NULL,
	action TEXT,
	user_id TEXT,
	session_id TEXT,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS click_events_by_timestamp ON click_events (timestamp);

CREATE TABLE IF NOT EXISTS performance_events (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	page TEXT NOT NULL,
	-- Timings are NULL when the client's browser did not report them.
	ttfb_ms DOUBLE PRECISION,
	fcp_ms DOUBLE PRECISION,
	lcp_ms DOUBLE PRECISION,
	total_page_load_ms DOUBLE PRECISION,
	user_id TEXT,
	session_id TEXT,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS performance_events_by_timestamp ON performance_events (timestamp);

CREATE TABLE IF NOT EXISTS error_events (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	page TEXT NOT NULL,
	error_type TEXT NOT NULL,
	message TEXT NOT NULL,
	stack TEXT,
	-- 1 = warning, 2 = error, 3 = critical.
	severity INT NOT NULL DEFAULT 2,
	user_id TEXT,
	session_id TEXT,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS error_events_by_timestamp ON error_events (timestamp);

CREATE TABLE IF NOT EXISTS custom_events (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	page TEXT,
	user_id TEXT,
	session_id TEXT,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS custom_events_by_timestamp ON custom_events (timestamp);
CREATE INDEX IF NOT EXISTS custom_events_by_name ON custom_events (name);
`
