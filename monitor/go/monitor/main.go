// The monitoring-service probes the liveness and readiness of every other
// pipeline service, appends each result to the probe log, and serves the
// rolling uptime reports computed from it.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/OlegKovalenko00/webmetrics/go/cleanup"
	"github.com/OlegKovalenko00/webmetrics/go/common"
	"github.com/OlegKovalenko00/webmetrics/go/health"
	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/sql/pool"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/logstore/sqllogstore"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/prober"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/server"
)

// appName is the service name reported on the monitor's own health
// endpoints.
const appName = "monitoring-service"

// flags
var (
	promPort = flag.String("prom_port", ":20003", "Metrics service address (e.g., ':20003')")
)

// databaseURL builds the connection string from the POSTGRES_* environment
// variables.
func databaseURL() string {
	auth := url.UserPassword(
		util.EnvOr("POSTGRES_USER", "postgres"),
		util.EnvOr("POSTGRES_PASSWORD", "postgres"),
	)
	addr := net.JoinHostPort(
		util.EnvOr("POSTGRES_HOST", "localhost"),
		util.EnvOr("POSTGRES_PORT", "5432"),
	)
	return fmt.Sprintf("postgresql://%s@%s/%s?sslmode=disable", auth.String(), addr, util.EnvOr("POSTGRES_DB", "postgres"))
}

func main() {
	common.InitWithMust(
		appName,
		common.PrometheusOpt(promPort),
	)
	ctx, cancel := context.WithCancel(context.Background())
	cleanup.AtExit(cancel)

	db, err := pool.New(ctx, databaseURL())
	if err != nil {
		wmlog.Fatalf("Failed to connect to the monitoring database: %s", err)
	}
	store := sqllogstore.New(db)
	if err := store.EnsureSchema(ctx); err != nil {
		wmlog.Fatalf("Failed to create the probe log table: %s", err)
	}

	prober.New(store, prober.TargetsFromEnv(), nil).Start()

	r := chi.NewRouter()
	health.New(appName, func(ctx context.Context) bool {
		return db.Ping(ctx) == nil
	}).Register(r)
	server.New(store).Register(r)
	httpPort := ":" + util.EnvOr("HTTP_PORT", "8083")
	wmlog.Infof("Uptime endpoints on %s", httpPort)
	wmlog.Fatal(http.ListenAndServe(httpPort, httputils.LoggingGzipRequestResponse(r)))
}
