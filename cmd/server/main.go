package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apphttp "github.com/InternetUnexplorer/CSCI-389-HW6/internal/api/http"
	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/cache"
	ilog "github.com/InternetUnexplorer/CSCI-389-HW6/internal/log"
	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/metrics"
)

// readTimeout bounds how long a connection may sit idle between
// requests before the server closes it.
const readTimeout = 10 * time.Second

func main() {
	var (
		maxmem      = flag.Uint64("maxmem", 0, "cache memory limit in bytes (required)")
		host        = flag.String("server", "localhost", "address to listen on")
		port        = flag.Uint("port", 4022, "port to listen on")
		threads     = flag.Int("threads", 1, "number of OS threads to run on")
		evictorName = flag.String("evictor", "none", "eviction policy: none, fifo, or lru")
		metricsAddr = flag.String("metrics-addr", "", "admin listen address for /health and /metrics (disabled if empty)")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn, or error")
	)
	flag.Parse()

	if *maxmem == 0 {
		fmt.Fprintln(os.Stderr, "error: the option '-maxmem' is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := ilog.New(*logLevel)

	var evictor cache.Evictor
	switch *evictorName {
	case "none":
	case "fifo":
		evictor = cache.NewFIFOEvictor()
	case "lru":
		evictor = cache.NewLRUEvictor()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown evictor %q\n", *evictorName)
		os.Exit(1)
	}

	if *threads > 0 {
		runtime.GOMAXPROCS(*threads)
	}

	var sink metrics.Interface = metrics.Noop{}
	reg := prometheus.NewRegistry()
	if *metricsAddr != "" {
		sink = metrics.NewProm("cache", reg)
	}

	c := cache.New(*maxmem,
		cache.WithEvictor(evictor),
		cache.WithLogger(logger),
		cache.WithMetrics(sink),
	)

	addr := net.JoinHostPort(*host, strconv.FormatUint(uint64(*port), 10))
	srv := &http.Server{
		Addr:        addr,
		Handler:     apphttp.NewRouter(c, logger),
		ReadTimeout: readTimeout,
		IdleTimeout: readTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.start", "addr", addr, "maxmem", *maxmem, "evictor", *evictorName, "threads", *threads)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	var adminSrv *http.Server
	if *metricsAddr != "" {
		adminSrv = &http.Server{
			Addr:              *metricsAddr,
			Handler:           apphttp.NewAdminRouter(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("admin.start", "addr", *metricsAddr)
			if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("admin.error", "err", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("server.shutdown.signal")
	case err := <-errCh:
		logger.Error("server.error", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if adminSrv != nil {
		_ = adminSrv.Shutdown(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server.shutdown.error", "err", err)
		os.Exit(1)
	}
	logger.Info("server.stopped")
}
