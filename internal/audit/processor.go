package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/nao1215/passmeter/internal/meter"
	"github.com/nao1215/passmeter/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of passwords analyzed in parallel when
// WithConcurrency is not given.
const DefaultConcurrency = 10

// ErrNoCandidates is returned when the list to audit is empty.
var ErrNoCandidates = errors.New("no passwords to audit")

// Processor runs a Meter over many passwords with bounded concurrency.
type Processor struct {
	meter       *meter.Meter
	concurrency int
	logger      *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger for audit progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewProcessor creates a Processor. A nil meter uses the default tables.
func NewProcessor(m *meter.Meter, opts ...Option) *Processor {
	p := &Processor{
		meter:       m,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.meter == nil {
		p.meter = meter.New(meter.WithLogger(p.logger))
	}
	return p
}

// Concurrency returns the configured concurrency limit.
func (p *Processor) Concurrency() int {
	return p.concurrency
}

// Process analyzes every candidate and returns the summary of the list.
// source labels the summary, usually with the list's file name.
func (p *Processor) Process(ctx context.Context, source string, candidates []string) (*model.AuditSummary, error) {
	summary := model.NewAuditSummary(source, Digest(candidates))

	p.logger.Info("starting audit",
		"source", source,
		"total", len(candidates),
		"concurrency", p.concurrency,
	)

	var mu sync.Mutex
	err := p.ProcessWithCallback(ctx, candidates, func(a model.Assessment, _ int) {
		mu.Lock()
		defer mu.Unlock()
		summary.Add(a)
	})
	if err != nil {
		return nil, err
	}

	summary.Finish()
	p.logger.Info("audit complete",
		"source", source,
		"total", summary.Total,
		"average_score", summary.AverageScore,
		"elapsed", summary.Duration,
	)
	return summary, nil
}

// ProcessWithCallback analyzes every candidate and passes each assessment
// with its index to callback. The callback runs on worker goroutines and
// must be safe for concurrent use.
func (p *Processor) ProcessWithCallback(
	ctx context.Context,
	candidates []string,
	callback func(a model.Assessment, index int),
) error {
	if len(candidates) == 0 {
		return ErrNoCandidates
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, candidate := range candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			a := p.meter.Analyze(candidate)
			p.logger.Debug("candidate analyzed",
				"index", i+1,
				"tier", a.Strength.Tier.String(),
			)
			callback(a, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.Warn("audit cancelled", "error", err)
		return err
	}
	return ctx.Err()
}
