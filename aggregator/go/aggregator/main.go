// The aggregation-service periodically rolls the raw telemetry events up
// into bucketed statistics, stores them in Postgres, and serves them over
// the AggregationService gRPC API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggstore/sqlaggstore"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/rawclient"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/readapi"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/runner"
	"github.com/OlegKovalenko00/webmetrics/go/cleanup"
	"github.com/OlegKovalenko00/webmetrics/go/common"
	"github.com/OlegKovalenko00/webmetrics/go/health"
	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/sql/pool"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
)

// appName is the service name reported on the health endpoints and probed
// by the monitoring service.
const appName = "aggregation-service"

// flags
var (
	promPort = flag.String("prom_port", ":20002", "Metrics service address (e.g., ':20002')")
)

// databaseURL builds the connection string from the AGG_DB_* environment
// variables.
func databaseURL() string {
	auth := url.UserPassword(
		util.EnvOr("AGG_DB_USER", "agguser"),
		util.EnvOr("AGG_DB_PASSWORD", "aggpassword"),
	)
	addr := net.JoinHostPort(
		util.EnvOr("AGG_DB_HOST", "localhost"),
		util.EnvOr("AGG_DB_PORT", "5434"),
	)
	return fmt.Sprintf("postgresql://%s@%s/%s?sslmode=disable", auth.String(), addr, util.EnvOr("AGG_DB_NAME", "aggregation_db"))
}

// envDuration reads a positive integer environment variable and returns it
// in the given unit, or the fallback when unset.
func envDuration(key string, unit time.Duration, fallback time.Duration) time.Duration {
	s := util.EnvOr(key, "")
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		wmlog.Fatalf("Invalid %s: %q", key, s)
	}
	return time.Duration(n) * unit
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
		wmlog.Fatalf("Failed to connect to the aggregation database: %s", err)
	}
	store := sqlaggstore.New(db)
	if err := store.EnsureSchema(ctx); err != nil {
		wmlog.Fatalf("Failed to create the aggregation tables: %s", err)
	}

	// Health endpoints, probed by the monitoring service.
	r := chi.NewRouter()
	health.New(appName, func(ctx context.Context) bool {
		return db.Ping(ctx) == nil
	}).Register(r)
	httpAddr := net.JoinHostPort(
		util.EnvOr("AGG_HTTP_HOST", ""),
		util.EnvOr("AGG_HTTP_PORT", "8082"),
	)
	go func() {
		wmlog.Infof("Health endpoints on %s", httpAddr)
		wmlog.Fatal(http.ListenAndServe(httpAddr, httputils.LoggingGzipRequestResponse(r)))
	}()

	metricsAddr := net.JoinHostPort(
		util.EnvOr("METRICS_GRPC_HOST", "localhost"),
		util.EnvOr("METRICS_GRPC_PORT", "50051"),
	)
	conn, err := grpc.Dial(metricsAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		wmlog.Fatalf("Failed to dial the metrics service at %s: %s", metricsAddr, err)
	}
	interval := envDuration("AGGREGATION_INTERVAL_SEC", time.Second, runner.DefaultInterval)
	bucketSize := envDuration("AGGREGATION_BUCKET_MINUTES", time.Minute, 0)
	runner.New(store, rawclient.New(metricspb.NewMetricsServiceClient(conn)), "", bucketSize).Start(interval)

	grpcPort := ":" + util.EnvOr("AGG_GRPC_PORT", "50052")
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		wmlog.Fatalf("Failed to listen on %s: %s", grpcPort, err)
	}
	s := grpc.NewServer()
	readapi.New(store).Register(s)
	wmlog.Infof("AggregationService gRPC server listening on %s", lis.Addr())
	wmlog.Fatalf("Failure while serving: %s", s.Serve(lis))
}
