package worker

import (
	"context"
	"sync/atomic"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker long running job
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker repeats a job on a cron cadence until the context ends.
// Overlapping ticks are skipped while the previous one is still working.
type TickWorker struct {
	// Spec cron spec, "@every 10s" if unset
	Spec string

	running int32
}

func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	spec := w.Spec
	if spec == "" {
		spec = "@every 10s"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if !atomic.CompareAndSwapInt32(&w.running, 0, 1) {
			return
		}
		defer atomic.StoreInt32(&w.running, 0)

		if err := onWork(ctx); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("tick work failed")
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()

	return ctx.Err()
}
