// The api-service is the public edge of the pipeline. It accepts telemetry
// events over HTTP and hands them to the broker, and it proxies read-only
// aggregate and uptime queries to the backing services.
package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregationpb"
	"github.com/OlegKovalenko00/webmetrics/gateway/go/handlers"
	"github.com/OlegKovalenko00/webmetrics/gateway/go/monitorclient"
	"github.com/OlegKovalenko00/webmetrics/gateway/go/publisher"
	"github.com/OlegKovalenko00/webmetrics/go/amqputils"
	"github.com/OlegKovalenko00/webmetrics/go/cleanup"
	"github.com/OlegKovalenko00/webmetrics/go/common"
	"github.com/OlegKovalenko00/webmetrics/go/health"
	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// appName is the service name reported on the health endpoints and probed
// by the monitoring service.
const appName = "api-service"

// flags
var (
	promPort = flag.String("prom_port", ":20000", "Metrics service address (e.g., ':20000')")
)

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

	// The broker must be reachable at startup; outages after that are
	// absorbed by the publish queue and the publisher's reconnect loop.
	brokerCfg := amqputils.ConfigFromEnv()
	brokerConn, brokerCh, err := amqputils.Dial(brokerCfg)
	if err != nil {
		wmlog.Fatalf("Broker unreachable at startup: %s", err)
	}
	util.LogErr(amqputils.Close(brokerCh, brokerConn))

	// Accepted events are buffered in-process and drained to the broker by a
	// single goroutine, so request handling never waits on broker I/O.
	pub := publisher.New(brokerCfg, 0)
	go pub.Run(ctx)

	aggAddr := net.JoinHostPort(
		util.EnvOr("AGG_GRPC_HOST", "localhost"),
		util.EnvOr("AGG_GRPC_PORT", "50052"),
	)
	conn, err := grpc.Dial(aggAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		wmlog.Fatalf("Failed to dial the aggregation service at %s: %s", aggAddr, err)
	}
	aggTimeout := envDuration("AGGREGATION_GRPC_TIMEOUT_MS", time.Millisecond, handlers.DefaultProxyTimeout)

	monitorBase := "http://" + net.JoinHostPort(
		util.EnvOr("MONITORING_HTTP_HOST", "localhost"),
		util.EnvOr("MONITORING_HTTP_PORT", "8083"),
	)
	monitorTimeout := envDuration("MONITORING_HTTP_TIMEOUT_MS", time.Millisecond, monitorclient.DefaultTimeout)

	h := handlers.New(
		pub,
		aggregationpb.NewAggregationServiceClient(conn),
		aggTimeout,
		monitorclient.New(monitorBase, monitorTimeout),
	)

	r := chi.NewRouter()
	health.New(appName, h.Ready).Register(r)
	h.Register(r)

	httpPort := ":" + util.EnvOr("HTTP_PORT", "8080")
	wmlog.Infof("Gateway listening on %s", httpPort)
	wmlog.Fatal(http.ListenAndServe(httpPort, httputils.LoggingGzipRequestResponse(r)))
}
