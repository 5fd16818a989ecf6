// Package common provides the shared initialization used by every service
// main: flag parsing, metrics, and clean shutdown wiring.
package common

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/OlegKovalenko00/webmetrics/go/cleanup"
	"github.com/OlegKovalenko00/webmetrics/go/stats"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// Opt represents the initialization parameters for a single init service,
// where services are Prometheus, etc.
//
// Initializing flags, metrics, and logging, with options for each, is
// complicated by the fact that some initializations are order dependent, and
// each app may want a different subset of options. The solution is to
// encapsulate each optional piece into its own Opt, and then initialize each
// Opt in the right order.
//
// Not only are the Opts order dependent but initialization needs to be broken
// into two phases, preinit() and init().
//
// The desired order for all Opts is:
//
//	0 - base
//	3 - prometheus
//
// Construct the Opts that are desired and pass them to common.InitWith(), i.e.:
//
//	common.InitWith(
//		"api-service",
//		common.PrometheusOpt(promPort),
//	)
type Opt interface {
	// order is the sort order that Opts are executed in.
	order() int
	preinit(appName string) error
	init(appName string) error
}

// optSlice is a utility type for sorting Opts by order().
type optSlice []Opt

func (p optSlice) Len() int           { return len(p) }
func (p optSlice) Less(i, j int) bool { return p[i].order() < p[j].order() }
func (p optSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// baseInitOpt is an Opt that is always constructed internally, added to any
// Opts passed into InitWith() and always runs first.
//
// Implements Opt.
type baseInitOpt struct{}

func (b *baseInitOpt) preinit(appName string) error {
	flag.Parse()
	wmlog.Info("base preinit")
	return nil
}

func (b *baseInitOpt) init(appName string) error {
	wmlog.Info("base init")
	flag.VisitAll(func(f *flag.Flag) {
		wmlog.Infof("Flags: --%s=%v", f.Name, f.Value)
	})

	// Use all cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Enable signal handling for the cleanup package.
	cleanup.Enable()

	// Record UID and GID.
	wmlog.Infof("Running as %d:%d", os.Getuid(), os.Getgid())

	return nil
}

func (b *baseInitOpt) order() int {
	return 0
}

// promInitOpt implements Opt for Prometheus.
type promInitOpt struct {
	port *string
}

// PrometheusOpt creates an Opt to initialize Prometheus metrics when passed to InitWith().
func PrometheusOpt(port *string) Opt {
	return &promInitOpt{
		port: port,
	}
}

func (o *promInitOpt) preinit(appName string) error {
	wmlog.Info("prom preinit")
	stats.InitPrometheus(*o.port)
	return nil
}

func (o *promInitOpt) init(appName string) error {
	wmlog.Info("prom init")

	// App uptime.
	_ = stats.NewLiveness("uptime", nil)
	return nil
}

func (o *promInitOpt) order() int {
	return 3
}

// InitWith takes Opt's and initializes each service, where services are Prometheus, etc.
func InitWith(appName string, opts ...Opt) error {

	// Add baseInitOpt.
	opts = append(opts, &baseInitOpt{})

	// Sort by order().
	sort.Sort(optSlice(opts))

	// Check for duplicate Opts.
	for i := 0; i < len(opts)-1; i++ {
		if opts[i].order() == opts[i+1].order() {
			return fmt.Errorf("Only one of each type of Opt can be used.")
		}
	}

	// Run all preinit's.
	for _, o := range opts {
		if err := o.preinit(appName); err != nil {
			return err
		}
	}

	// Run all init's.
	for _, o := range opts {
		if err := o.init(appName); err != nil {
			return err
		}
	}
	wmlog.Flush()
	return nil
}

// InitWithMust calls InitWith and fails fatally if an error is encountered.
func InitWithMust(appName string, opts ...Opt) {
	if err := InitWith(appName, opts...); err != nil {
		wmlog.Fatalf("Failed to initialize: %s", err)
	}
}
