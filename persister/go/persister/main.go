// The metrics-service consumes telemetry events from the broker, persists
// them to Postgres, and serves them back over the MetricsService gRPC API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc"

	"github.com/OlegKovalenko00/webmetrics/go/amqputils"
	"github.com/OlegKovalenko00/webmetrics/go/cleanup"
	"github.com/OlegKovalenko00/webmetrics/go/common"
	"github.com/OlegKovalenko00/webmetrics/go/health"
	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/sql/pool"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
	"github.com/OlegKovalenko00/webmetrics/persister/go/consumer"
	"github.com/OlegKovalenko00/webmetrics/persister/go/rawstore/sqlrawstore"
	"github.com/OlegKovalenko00/webmetrics/persister/go/readapi"
)

// appName is the service name reported on the health endpoints and probed
// by the monitoring service.
const appName = "metrics-service"

// flags
var (
	promPort = flag.String("prom_port", ":20001", "Metrics service address (e.g., ':20001')")
)

// databaseURL builds the connection string from the POSTGRES_* environment
// variables.
func databaseURL() string {
	auth := url.UserPassword(
		util.EnvOr("POSTGRES_USER", "metrics_user"),
		util.EnvOr("POSTGRES_PASSWORD", "metrics_password"),
	)
	addr := net.JoinHostPort(
		util.EnvOr("POSTGRES_HOST", "localhost"),
		util.EnvOr("POSTGRES_PORT", "5432"),
	)
	return fmt.Sprintf("postgresql://%s@%s/%s?sslmode=disable", auth.String(), addr, util.EnvOr("POSTGRES_DB", "metrics_db"))
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
		wmlog.Fatalf("Failed to connect to the events database: %s", err)
	}
	store := sqlrawstore.New(db)
	if err := store.EnsureSchema(ctx); err != nil {
		wmlog.Fatalf("Failed to create the event tables: %s", err)
	}

	// Health endpoints, probed by the monitoring service.
	r := chi.NewRouter()
	health.New(appName, func(ctx context.Context) bool {
		return db.Ping(ctx) == nil
	}).Register(r)
	httpPort := ":" + util.EnvOr("HTTP_PORT", "8081")
	go func() {
		wmlog.Infof("Health endpoints on %s", httpPort)
		wmlog.Fatal(http.ListenAndServe(httpPort, httputils.LoggingGzipRequestResponse(r)))
	}()

	// The broker must be reachable at startup; outages after that are
	// handled by the consumer's reconnect loop.
	brokerCfg := amqputils.ConfigFromEnv()
	brokerConn, brokerCh, err := amqputils.Dial(brokerCfg)
	if err != nil {
		wmlog.Fatalf("Broker unreachable at startup: %s", err)
	}
	util.LogErr(amqputils.Close(brokerCh, brokerConn))
	go consumer.New(brokerCfg, store).Run(ctx)

	grpcPort := ":" + util.EnvOr("GRPC_PORT", "50051")
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		wmlog.Fatalf("Failed to listen on %s: %s", grpcPort, err)
	}
	s := grpc.NewServer()
	readapi.New(store).Register(s)
	wmlog.Infof("MetricsService gRPC server listening on %s", lis.Addr())
	wmlog.Fatalf("Failure while serving: %s", s.Serve(lis))
}
