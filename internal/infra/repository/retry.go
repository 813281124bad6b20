package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

const (
	retryAttempts = 3
	retryDelay    = 200 * time.Millisecond
)

// retryable separa falha de infra (retry) de resultado determinístico
// (erro de negócio ou registro inexistente — devolve direto).
func retryable(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var (
		vErr  schedule.ValidationError
		nfErr schedule.NotFoundError
		cErr  schedule.ConflictError
		tErr  schedule.InvalidTransitionError
	)
	if errors.As(err, &vErr) || errors.As(err, &nfErr) || errors.As(err, &cErr) || errors.As(err, &tErr) {
		return false
	}

	return true
}

// withRetry tenta a operação até retryAttempts vezes com delay fixo e,
// esgotadas as tentativas, embrulha a causa em PersistenceError.
func withRetry(log *zap.Logger, op string, fn func() error) error {
	var err error

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		err = fn()
		if err == nil || !retryable(err) {
			return err
		}

		if attempt < retryAttempts {
			log.Warn("store operation failed, retrying",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
		}
	}

	return schedule.PersistenceError{Op: op, Err: err}
}
