package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	cartMaxIdle   = 24 * time.Hour
	cartSweepSpec = "@every 30m"
)

// initJob wires the periodic jobs. Abandoned session carts are swept so the
// store does not grow without bound.
func (a *Application) initJob() {
	a.sched = cron.New()
	_, err := a.sched.AddFunc(cartSweepSpec, func() {
		if n := a.cartStore.Prune(cartMaxIdle); n > 0 {
			zap.L().Info("pruned idle session carts", zap.Int("count", n))
		}
	})
	if err != nil {
		zap.L().Error("failed to register cart sweep job", zap.Error(err))
		return
	}
	a.sched.Start()
}
