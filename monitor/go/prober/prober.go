// Package prober periodically checks the liveness and readiness of every
// pipeline service and appends each result to the probe log that the uptime
// reports are computed from.
package prober

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/OlegKovalenko00/webmetrics/go/cleanup"
	"github.com/OlegKovalenko00/webmetrics/go/httputils"
	"github.com/OlegKovalenko00/webmetrics/go/now"
	"github.com/OlegKovalenko00/webmetrics/go/stats"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
	"github.com/OlegKovalenko00/webmetrics/monitor/go/logstore"
)

const (
	// pingInterval is how often each target's liveness endpoint is probed.
	pingInterval = 15 * time.Second

	// readyInterval is how often each target's readiness endpoint is probed.
	readyInterval = 45 * time.Second

	// schedulerInterval is how often the scheduler wakes to look for due
	// probes.
	schedulerInterval = time.Second

	// probeTimeout bounds both connecting to a target and reading its
	// response.
	probeTimeout = 5 * time.Second
)

// Target is one probed service.
type Target struct {
	Name string
	Host string
	Port string
}

// URL returns the probe URL for path on this target.
func (t Target) URL(path string) string {
	return "http://" + net.JoinHostPort(t.Host, t.Port) + path
}

// TargetsFromEnv returns the pipeline services to probe, with hosts and
// ports taken from the environment.
func TargetsFromEnv() []Target {
	return []Target{
		{Name: "api-service", Host: util.EnvOr("API_SERVICE_HOST", "api-service"), Port: util.EnvOr("API_SERVICE_PORT", "8080")},
		{Name: "metrics-service", Host: util.EnvOr("METRICS_SERVICE_HOST", "metrics-service"), Port: util.EnvOr("METRICS_SERVICE_PORT", "8081")},
		{Name: "aggregation-service", Host: util.EnvOr("AGGREGATION_SERVICE_HOST", "aggregation-service"), Port: util.EnvOr("AGGREGATION_SERVICE_PORT", "8082")},
	}
}

// schedule tracks when a target's probes are next due. The zero due times
// make both probes fire on the first round.
type schedule struct {
	target    Target
	nextPing  time.Time
	nextReady time.Time
}

// Prober probes every target on its schedule and records each outcome.
type Prober struct {
	store     logstore.Store
	client    *http.Client
	schedules []*schedule

	ok       map[string]stats.Counter
	failed   map[string]stats.Counter
	liveness stats.Liveness
}

// New returns a new *Prober. A nil client falls back to the standard probe
// client with its connect and read timeouts.
func New(store logstore.Store, targets []Target, client *http.Client) *Prober {
	if client == nil {
		client = httputils.NewConfiguredTimeoutClient(probeTimeout, probeTimeout)
	}
	schedules := make([]*schedule, 0, len(targets))
	ok := map[string]stats.Counter{}
	failed := map[string]stats.Counter{}
	for _, t := range targets {
		schedules = append(schedules, &schedule{target: t})
		tags := map[string]string{"service": t.Name}
		ok[t.Name] = stats.GetCounter("monitor_probes_ok", tags)
		failed[t.Name] = stats.GetCounter("monitor_probes_failed", tags)
	}
	return &Prober{
		store:     store,
		client:    client,
		schedules: schedules,
		ok:        ok,
		failed:    failed,
		liveness:  stats.NewLiveness("probe_round"),
	}
}

// Start keeps probing on schedule until the process shuts down.
func (p *Prober) Start() {
	cleanup.Repeat(schedulerInterval, p.ProbeDue, nil)
}

// ProbeDue runs every probe whose due time has passed and reschedules it.
func (p *Prober) ProbeDue(ctx context.Context) {
	round := now.Now(ctx)
	for _, s := range p.schedules {
		if !round.Before(s.nextPing) {
			s.nextPing = round.Add(pingInterval)
			p.record(ctx, s.target, "liveness", p.checkPing(ctx, s.target))
		}
		if !round.Before(s.nextReady) {
			s.nextReady = round.Add(readyInterval)
			p.record(ctx, s.target, "readiness", p.checkReady(ctx, s.target))
		}
	}
	p.liveness.Reset()
}

// checkPing reports whether the target answers its liveness endpoint.
func (p *Prober) checkPing(ctx context.Context, t Target) bool {
	resp, err := httputils.GetWithContext(ctx, p.client, t.URL("/health/ping"))
	if err != nil {
		wmlog.Errorf("%s is unreachable: %s", t.Name, err)
		return false
	}
	defer util.Close(resp.Body)
	if resp.StatusCode != http.StatusOK {
		wmlog.Errorf("%s liveness returned status %d", t.Name, resp.StatusCode)
		return false
	}
	return true
}

// checkReady reports whether the target and its backing store can serve. The
// only passing answer is a 200 whose body says database_connected is true;
// transport errors, non-200 statuses, and unparseable bodies all fail.
func (p *Prober) checkReady(ctx context.Context, t Target) bool {
	resp, err := httputils.GetWithContext(ctx, p.client, t.URL("/health/ready"))
	if err != nil {
		wmlog.Errorf("%s readiness check failed: %s", t.Name, err)
		return false
	}
	defer util.Close(resp.Body)
	if resp.StatusCode != http.StatusOK {
		wmlog.Warningf("%s is not ready, status %d", t.Name, resp.StatusCode)
		return false
	}
	var body struct {
		DatabaseConnected bool `json:"database_connected"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		wmlog.Errorf("%s readiness body unreadable: %s", t.Name, err)
		return false
	}
	if !body.DatabaseConnected {
		wmlog.Warningf("%s reports its database is disconnected", t.Name)
		return false
	}
	return true
}

// record appends one probe outcome to the store. A failed write is logged
// and dropped so the probe loop keeps running through database outages.
func (p *Prober) record(ctx context.Context, t Target, probe string, ok bool) {
	if ok {
		p.ok[t.Name].Inc(1)
	} else {
		p.failed[t.Name].Inc(1)
	}
	if err := p.store.WriteSample(ctx, t.Name, ok); err != nil {
		wmlog.Errorf("Failed to record %s probe of %s: %s", probe, t.Name, err)
	}
}
