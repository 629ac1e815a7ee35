//go:build (unix && !hurd) || baremetal

package sigext

import (
	"context"
	"fmt"

	"github.com/tsarna/sigext/internal/sigtype"
	"github.com/tsarna/sigext/pkg/sigext/o11y"
	"github.com/tsarna/sigext/pkg/sigext/platform"
	"github.com/tsarna/sigext/pkg/signal"
	"go.uber.org/zap"
)

// HasRealtime reports whether RTMin, RTMax and RT exist on this target.
const HasRealtime = platform.Current&(platform.LinuxLike|platform.Solarish) != 0

// Outcome labels used for the lookup counter.
const (
	OutcomeNamed    = "named"
	OutcomeRealtime = "realtime"
	OutcomeNone     = "none"
)

// LookupCounterName is the name of the counter incremented per conversion.
const LookupCounterName = "sigext.lookups"

// Ext is the conversion capability offered for signal.Signal. *Mapper is
// its only implementation.
type Ext interface {
	rtExt

	FromRaw(raw int32) (signal.Signal, bool)
	FromRawNonZero(v signal.NonZero) (signal.Signal, bool)
	RealtimeWindow() (Window, bool)

	sealed()
}

var _ Ext = (*Mapper)(nil)

// Mapper converts raw signal numbers to signals. It holds no mutable state
// and is safe for concurrent use.
type Mapper struct {
	logger  *zap.Logger
	lookups o11y.Counter
	window  func() (Window, bool)
}

func (m *Mapper) sealed() {}

// MapperBuilder provides a fluent interface for creating a Mapper
type MapperBuilder struct {
	logger          *zap.Logger
	metricsProvider o11y.MetricsProvider
	cacheWindow     bool
}

// NewMapper creates a new MapperBuilder
func NewMapper() *MapperBuilder {
	return &MapperBuilder{}
}

// WithLogger sets the logger used for debug output on failed conversions
func (b *MapperBuilder) WithLogger(logger *zap.Logger) *MapperBuilder {
	b.logger = logger
	return b
}

// WithMetrics sets the metrics provider; conversions are counted by outcome
func (b *MapperBuilder) WithMetrics(provider o11y.MetricsProvider) *MapperBuilder {
	b.metricsProvider = provider
	return b
}

// WithCachedWindow makes the mapper query the real-time window once, at
// Build, instead of on every conversion. Only use it when the C library
// cannot change its window for the life of the process.
func (b *MapperBuilder) WithCachedWindow(cache bool) *MapperBuilder {
	b.cacheWindow = cache
	return b
}

// Build creates the Mapper. It fails only when a cached window is requested
// and the C library reports a window that cannot be trusted.
func (b *MapperBuilder) Build() (*Mapper, error) {
	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Mapper{
		logger: logger,
		window: libcWindow,
	}

	if b.metricsProvider != nil {
		m.lookups = b.metricsProvider.Counter(LookupCounterName)
	}

	if b.cacheWindow {
		w, ok := libcWindow()
		if ok {
			if err := w.validate(); err != nil {
				return nil, fmt.Errorf("cannot cache real-time window: %w", err)
			}
			logger.Debug("Caching real-time window", zap.Int32("min", w.Min), zap.Int32("max", w.Max))
		}
		m.window = func() (Window, bool) {
			return w, ok
		}
	}

	return m, nil
}

var defaultMapper = &Mapper{
	logger: zap.NewNop(),
	window: libcWindow,
}

// Default returns the mapper behind the package-level functions. It queries
// the window live and neither logs nor counts.
func Default() *Mapper {
	return defaultMapper
}

// FromRaw converts a raw signal number. Zero is never a signal.
func FromRaw(raw int32) (signal.Signal, bool) {
	return defaultMapper.FromRaw(raw)
}

// FromRawNonZero converts a non-zero raw signal number.
func FromRawNonZero(v signal.NonZero) (signal.Signal, bool) {
	return defaultMapper.FromRawNonZero(v)
}

// Describe names sig using the default mapper.
func Describe(sig signal.Signal) string {
	return defaultMapper.Describe(sig)
}

// FromRaw converts a raw signal number. It returns false for zero, for
// negative numbers, and for numbers that are neither a named signal of the
// target nor inside the real-time window.
func (m *Mapper) FromRaw(raw int32) (signal.Signal, bool) {
	v, ok := signal.NewNonZero(raw)
	if !ok {
		m.record(OutcomeNone)
		return signal.Signal{}, false
	}
	return m.FromRawNonZero(v)
}

// FromRawNonZero converts a non-zero raw signal number. The named table is
// consulted before the real-time window.
func (m *Mapper) FromRawNonZero(v signal.NonZero) (signal.Signal, bool) {
	raw := v.Get()

	if sig, ok := lookupNamed(raw); ok {
		m.record(OutcomeNamed)
		return sig, true
	}

	if raw > 0 {
		if w, ok := m.window(); ok && w.Contains(raw) {
			m.record(OutcomeRealtime)
			return sigtype.FromRawUnchecked(raw), true
		}
	}

	m.logger.Debug("No such signal", zap.Int32("raw", raw))
	m.record(OutcomeNone)
	return signal.Signal{}, false
}

// Describe names sig the way C code spells it: "SIGTERM" for named signals
// and "SIGRTMIN+3" for real-time ones.
func (m *Mapper) Describe(sig signal.Signal) string {
	if sig.Name() != "" {
		return sig.String()
	}
	if w, ok := m.window(); ok && w.Contains(sig.AsRaw()) {
		if sig.AsRaw() == w.Min {
			return "SIGRTMIN"
		}
		return fmt.Sprintf("SIGRTMIN+%d", sig.AsRaw()-w.Min)
	}
	return sig.String()
}

// RealtimeWindow returns the current real-time window, or false on targets
// without one.
func (m *Mapper) RealtimeWindow() (Window, bool) {
	return m.window()
}

func (m *Mapper) record(outcome string) {
	if m.lookups == nil {
		return
	}
	m.lookups.Add(context.Background(), 1, o11y.Label{Key: "outcome", Value: outcome})
}
