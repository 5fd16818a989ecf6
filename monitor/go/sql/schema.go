// Package sql defines the schema for the monitoring database: one
// append-only table of probe results that the uptime reports are computed
// from.
package sql

// Schema is the SQL schema for the probe log.
const Schema = `
CREATE TABLE IF NOT EXISTS logs (
	id BIGSERIAL PRIMARY KEY,
	service_name TEXT NOT NULL,
	-- "OK" or "FAIL".
	log_message TEXT NOT NULL,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS logs_by_service_and_timestamp ON logs (service_name, timestamp);
`
