package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

func TestRetryable(t *testing.T) {
	// erros de negócio e not-found não tentam de novo
	assert.False(t, retryable(schedule.ConflictError{}))
	assert.False(t, retryable(schedule.NotFoundError{Entity: "barber"}))
	assert.False(t, retryable(schedule.ValidationError{Code: "invalid_date"}))
	assert.False(t, retryable(schedule.InvalidTransitionError{}))
	assert.False(t, retryable(gorm.ErrRecordNotFound))
	assert.False(t, retryable(context.Canceled))
	assert.False(t, retryable(context.DeadlineExceeded))

	// falha genérica de infra tenta
	assert.True(t, retryable(errors.New("connection reset by peer")))
}

func TestWithRetry_ExhaustsAndWraps(t *testing.T) {
	calls := 0
	cause := errors.New("connection refused")

	err := withRetry(zap.NewNop(), "query_day_appointments", func() error {
		calls++
		return cause
	})

	assert.Equal(t, retryAttempts, calls)

	var pErr schedule.PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "query_day_appointments", pErr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestWithRetry_BusinessErrorReturnsImmediately(t *testing.T) {
	calls := 0

	err := withRetry(zap.NewNop(), "insert_appointment", func() error {
		calls++
		return schedule.ConflictError{}
	})

	assert.Equal(t, 1, calls)

	var cErr schedule.ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestWithRetry_RecoversOnSecondAttempt(t *testing.T) {
	calls := 0

	err := withRetry(zap.NewNop(), "save_appointment", func() error {
		calls++
		if calls == 1 {
			return errors.New("deadlock detected")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDecodeClockRange(t *testing.T) {
	rng, err := decodeClockRange("09:00", "18:00")
	require.NoError(t, err)
	assert.Equal(t, schedule.ClockRange{Start: 9 * 60, End: 18 * 60}, rng)

	_, err = decodeClockRange("18:00", "09:00")
	var vErr schedule.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "invalid_time_range", vErr.Code)

	_, err = decodeClockRange("9h", "18:00")
	assert.Error(t, err)
}
