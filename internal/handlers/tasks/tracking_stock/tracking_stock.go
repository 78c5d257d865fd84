package tracking_stock

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

var trackingUnusedGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "tracking_pool_unused",
		Help: "Unused tracking numbers left per courier",
	},
	[]string{"courier"},
)

type CourierRegistry interface {
	GetCouriers(ctx context.Context) ([]entities.Courier, error)
}

type PoolCounter interface {
	CountAvailable(ctx context.Context, courierID int64) (int64, error)
}

// TrackingStock периодически снимает остатки пула трек-номеров по каждому
// курьеру с локальным пулом. Предупреждает заранее, до того как диспетчеризация
// начнёт отказывать из-за пустого пула.
type TrackingStock struct {
	log          logger.Logger
	registry     CourierRegistry
	pool         PoolCounter
	interval     time.Duration
	lowThreshold int64
}

func NewTrackingStock(log logger.Logger, registry CourierRegistry, pool PoolCounter, interval time.Duration, lowThreshold int64) *TrackingStock {
	return &TrackingStock{
		log:          log,
		registry:     registry,
		pool:         pool,
		interval:     interval,
		lowThreshold: lowThreshold,
	}
}

func (t *TrackingStock) TTL() time.Duration {
	return t.interval
}

func (t *TrackingStock) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	couriers, err := t.registry.GetCouriers(ctxWithTimeout)
	if err != nil {
		return err
	}

	for _, courier := range couriers {
		if courier.Status != entities.CourierActive || !courier.Mode.PoolBacked() {
			continue
		}

		available, err := t.pool.CountAvailable(ctxWithTimeout, courier.ID)
		if err != nil {
			return err
		}

		trackingUnusedGauge.WithLabelValues(courier.Name).Set(float64(available))

		if available < t.lowThreshold {
			t.log.With(
				logger.NewField("courier", courier.Name),
				logger.NewField("available", available),
				logger.NewField("threshold", t.lowThreshold),
			).Warn("tracking pool running low")
		}
	}

	return nil
}

func (t *TrackingStock) Info() string {
	return "tracking stock"
}
