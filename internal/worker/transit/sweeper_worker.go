package transit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navigation-microservice/internal/worker"
)

// StaleTransitCanceler - отмена поездок, застрявших в search
type StaleTransitCanceler interface {
	CancelStale(ctx context.Context, staleAfter time.Duration) ([]uuid.UUID, error)
}

// SweeperWorker периодически закрывает поездки, для которых маршрут так и не был получен
type SweeperWorker struct {
	*worker.BaseWorker
	transits   StaleTransitCanceler
	staleAfter time.Duration
}

// NewSweeperWorker создает новый SweeperWorker
func NewSweeperWorker(
	transits StaleTransitCanceler,
	interval time.Duration,
	staleAfter time.Duration,
	logger *zap.Logger,
) *SweeperWorker {
	return &SweeperWorker{
		BaseWorker: worker.NewBaseWorker("transit-sweeper", interval, logger),
		transits:   transits,
		staleAfter: staleAfter,
	}
}

// Start выполняет проход сразу и затем раз в интервал
func (w *SweeperWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting transit sweeper",
		zap.Duration("interval", w.Interval()),
		zap.Duration("stale_after", w.staleAfter))

	return w.RunPeriodic(ctx, func(ctx context.Context) error {
		_, err := w.Sweep(ctx)
		return err
	})
}

// Sweep - один проход, возвращает число отмененных поездок
func (w *SweeperWorker) Sweep(ctx context.Context) (int, error) {
	ids, err := w.transits.CancelStale(ctx, w.staleAfter)
	if err != nil {
		return 0, err
	}

	if len(ids) > 0 {
		w.Logger().Info("Stale transits canceled", zap.Int("count", len(ids)))
	}
	return len(ids), nil
}
