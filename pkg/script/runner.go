package script

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-typedqueue/pkg/settings"
	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
)

// ErrStepFailed is returned in fail-fast mode when a step recorded an error.
var ErrStepFailed = errors.New("script step failed")

// Runner executes independent scripts concurrently. Each script owns its
// queue, so no queue is ever shared between goroutines.
type Runner struct {
	reg *typespec.Registry
	log *zap.Logger
	cfg settings.Runner
}

// NewRunner creates a Runner. reg must not be modified while RunAll runs.
func NewRunner(reg *typespec.Registry, log *zap.Logger, cfg settings.Runner) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{reg: reg, log: log, cfg: cfg}
}

// RunAll runs every script and returns the results in input order.
func (r *Runner) RunAll(ctx context.Context, scripts []*Script) ([]*Result, error) {
	results := make([]*Result, len(scripts))

	g, ctx := errgroup.WithContext(ctx)
	if r.cfg.Parallelism > 0 {
		g.SetLimit(r.cfg.Parallelism)
	}
	for i, s := range scripts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(s, r.reg)
			if err != nil {
				r.log.Error("script aborted", zap.String("script", s.Name), zap.Error(err))
				return err
			}
			results[i] = res

			failures := res.Failures()
			r.log.Info("script finished",
				zap.String("script", res.Name),
				zap.String("type", res.Type),
				zap.Int("steps", len(res.Steps)),
				zap.Int("failures", failures),
				zap.Int("remaining", len(res.Final)),
			)
			if failures > 0 && r.cfg.FailFast {
				return errors.Wrapf(ErrStepFailed, "%s: %d failing steps", res.Name, failures)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
