package cache

import (
	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/metrics"
)

type logLike interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config carries the tunables of a Cache.
type Config struct {
	Evictor  Evictor           // nil disables eviction: writes that do not fit are dropped
	Logger   logLike           // nil disables logging
	Metrics  metrics.Interface // defaults to metrics.Noop
	SizeHint int               // initial capacity hint for the entry map, 0 for none
}

// Option configures a Cache at construction time.
type Option func(*Config)

// WithEvictor sets the eviction policy. The policy is fixed for the
// lifetime of the cache.
func WithEvictor(ev Evictor) Option {
	return func(c *Config) { c.Evictor = ev }
}

// WithLogger sets the cache logger.
func WithLogger(l logLike) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.Interface) Option {
	return func(c *Config) { c.Metrics = m }
}

// WithSizeHint pre-sizes the entry map for roughly n entries. Purely a
// performance hint; it has no observable effect on behavior.
func WithSizeHint(n int) Option {
	return func(c *Config) { c.SizeHint = n }
}
