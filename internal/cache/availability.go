package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

const availabilityTTL = 60 * time.Second

// AvailabilityCache guarda o resultado do cálculo de disponibilidade por
// (filial, barbeiro, dia, duração) com TTL curto. Mutações de agendamento
// invalidam o dia inteiro do barbeiro. Com rdb nil o cache vira no-op,
// então o serviço roda sem redis.
type AvailabilityCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewAvailabilityCache(rdb *redis.Client, log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, log: log}
}

func dayPrefix(branchID, barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%d:%s", branchID, barberID, date)
}

func slotKey(branchID, barberID uint, date string, durationMin int) string {
	return fmt.Sprintf("%s:%d", dayPrefix(branchID, barberID, date), durationMin)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	branchID, barberID uint,
	date string,
	durationMin int,
) ([]schedule.TimeSlot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(branchID, barberID, date, durationMin)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("availability cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []schedule.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	branchID, barberID uint,
	date string,
	durationMin int,
	slots []schedule.TimeSlot,
) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(branchID, barberID, date, durationMin), raw, availabilityTTL).Err(); err != nil {
		c.log.Warn("availability cache set failed", zap.Error(err))
	}
}

// InvalidateDay derruba todas as durações cacheadas do barbeiro no dia.
// O keyspace por dia é minúsculo (uma entrada por duração de serviço),
// então KEYS com prefixo resolve.
func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	branchID, barberID uint,
	date string,
) {
	if c == nil || c.rdb == nil {
		return
	}

	keys, err := c.rdb.Keys(ctx, dayPrefix(branchID, barberID, date)+":*").Result()
	if err != nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("availability cache invalidation failed", zap.Error(err))
	}
}
