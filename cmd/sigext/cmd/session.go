//go:build (unix && !hurd) || baremetal

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/spf13/cobra"
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/sigext/o11y"
	"github.com/tsarna/sigext/pkg/sigext/otel"
	"github.com/tsarna/sigext/pkg/sigext/profile"
	"github.com/tsarna/sigext/pkg/sigext/report"
	"github.com/tsarna/sigext/pkg/signal"
	"go.uber.org/zap"
)

// Version is reported to OpenTelemetry as the instrumentation version.
var Version = "dev"

// telemetry is what a session needs from an observability backend.
type telemetry interface {
	o11y.MetricsProvider
	o11y.TracingProvider
}

var newTelemetry = func() telemetry {
	return otel.NewProvider("sigext", Version)
}

// session holds what every command needs: a logger, the mapper, the
// printer for its output and, with --profile, the loaded profile.
type session struct {
	ctx     context.Context
	out     io.Writer
	logger  *zap.Logger
	mapper  *sigext.Mapper
	profile *profile.Profile
	printer *report.Printer
	span    o11y.Span
}

// withSession wraps a command body so that it runs inside a session and a
// trace span named after the command.
func withSession(fn func(s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.logger.Sync()

		err = fn(s, args)
		s.end(err)
		return err
	}
}

func newSession(cmd *cobra.Command) (*session, error) {
	logger, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	provider := newTelemetry()

	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}

	printer, err := report.NewPrinter().WithFormat(format).WithQuery(jqQuery).Build()
	if err != nil {
		return nil, err
	}

	mapper, err := sigext.NewMapper().
		WithLogger(logger.Named("mapper")).
		WithMetrics(provider).
		WithCachedWindow(cacheWindow).
		Build()
	if err != nil {
		return nil, err
	}

	// The span covers the command from here on; every return below ends it.
	ctx, span := provider.StartSpan(cmd.Context(), "sigext."+cmd.Name())

	s := &session{
		ctx:     ctx,
		out:     cmd.OutOrStdout(),
		logger:  logger,
		mapper:  mapper,
		printer: printer,
		span:    span,
	}

	if len(profilePaths) > 0 {
		if err := s.loadProfile(profilePaths); err != nil {
			s.end(err)
			return nil, err
		}
	}

	logger.Debug("Session ready",
		zap.String("command", cmd.Name()),
		zap.String("output", string(format)),
		zap.Bool("cache-window", cacheWindow),
		zap.Strings("profiles", profilePaths),
	)

	return s, nil
}

func (s *session) loadProfile(paths []string) error {
	p, diags := profile.New().
		WithLogger(s.logger.Named("profile")).
		WithMapper(s.mapper).
		WithSources(stringSliceToAnySlice(paths)...).
		Build()

	if diags.HasErrors() {
		s.logger.Error("Failed to build profile", zap.Any("diags", diags))
		return diags
	}

	for _, diag := range diags {
		if diag.Severity == hcl.DiagWarning {
			s.logger.Warn(diag.Summary, zap.String("detail", diag.Detail))
		}
	}

	s.profile = p
	return nil
}

func (s *session) print(doc report.Document) error {
	return s.printer.Print(s.ctx, s.out, doc)
}

// annotate fills in the alias of an entry from the loaded profile.
func (s *session) annotate(e report.Entry) report.Entry {
	if s.profile == nil || e.Kind == report.KindNone || e.Alias != "" {
		return e
	}
	for _, name := range s.profile.AliasNames() {
		a := s.profile.Aliases[name]
		if a.Signal.AsRaw() == e.Raw {
			e.Alias = a.Name
			e.Description = a.Description
			break
		}
	}
	return e
}

// resolve finds a signal by alias, when a profile is loaded, or by name.
func (s *session) resolve(name string) (signal.Signal, bool) {
	if s.profile != nil {
		return s.profile.Resolve(name)
	}
	return signal.ByName(name)
}

func (s *session) end(err error) {
	if err != nil {
		s.span.SetStatus(o11y.SpanStatusError, err.Error())
	} else {
		s.span.SetStatus(o11y.SpanStatusOK, "")
	}
	s.span.End()
}

// Helper to convert []string to []any
func stringSliceToAnySlice(strs []string) []any {
	anys := make([]any, len(strs))
	for i, s := range strs {
		anys[i] = s
	}
	return anys
}
