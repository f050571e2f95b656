// Package observability starts the optional tracing and profiling backends
// and tears them down together.
package observability

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/grafana/pyroscope-go"
	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/config"
	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
)

type stopFunc func(context.Context) error

// Runtime holds whatever Setup started.
type Runtime struct {
	stops []namedStop
	// PprofAddr is the bound debug listener address, empty when disabled.
	PprofAddr string
}

type namedStop struct {
	name string
	stop stopFunc
}

// Setup starts Uptrace tracing, the Pyroscope profiler and the pprof
// listener as configured. On error everything already started is stopped.
func Setup(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{}

	steps := []struct {
		name  string
		start func(config.Config, *logging.Logger, *Runtime) (stopFunc, error)
	}{
		{name: "uptrace", start: startTracing},
		{name: "pyroscope", start: startProfiler},
		{name: "pprof", start: startPprof},
	}
	for _, step := range steps {
		stop, err := step.start(cfg, logger.Named(step.name), rt)
		if err != nil {
			_ = rt.Shutdown(ctx)
			return nil, errors.Wrapf(err, "start %s", step.name)
		}
		if stop != nil {
			rt.stops = append(rt.stops, namedStop{name: step.name, stop: stop})
		}
	}
	return rt, nil
}

// Shutdown stops the backends in reverse start order and reports every
// failure.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var combined error
	for i := len(r.stops) - 1; i >= 0; i-- {
		s := r.stops[i]
		if err := s.stop(ctx); err != nil {
			combined = errors.CombineErrors(combined, errors.Wrapf(err, "stop %s", s.name))
		}
	}
	r.stops = nil
	return combined
}

func startTracing(cfg config.Config, logger *logging.Logger, _ *Runtime) (stopFunc, error) {
	if !cfg.UptraceEnabled {
		logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return nil, nil
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Info("tracing disabled", "reason", "UPTRACE_DSN empty")
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("tracing enabled", "service_name", cfg.ServiceName, "environment", cfg.AppEnv)
	return uptrace.Shutdown, nil
}

func startProfiler(cfg config.Config, logger *logging.Logger, _ *Runtime) (stopFunc, error) {
	if !cfg.PyroscopeEnabled {
		logger.Info("profiler disabled", "reason", "PYROSCOPE_ENABLED=false")
		return nil, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Logger:            logger.Zap().Sugar(),
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"store":   cfg.StoreDriver,
		},
		// Snapshot building is allocation heavy; goroutine and lock profiles
		// cover the generator worker pool.
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexDuration,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Info("profiler enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	return func(context.Context) error { return profiler.Stop() }, nil
}

func startPprof(cfg config.Config, logger *logging.Logger, rt *Runtime) (stopFunc, error) {
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil, nil
	}

	ln, err := net.Listen("tcp", cfg.PprofAddr)
	if err != nil {
		return nil, err
	}
	rt.PprofAddr = ln.Addr().String()

	srv := &http.Server{
		Handler:           pprofMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()
	logger.Info("pprof listening", "addr", rt.PprofAddr)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("POST /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}
