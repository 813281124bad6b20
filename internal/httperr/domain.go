package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

// FromDomain traduz os erros do core de agenda para HTTP. Conflito (409) e
// falha de infra (500) são respostas distintas de propósito: a UI trata
// "horário ocupado, escolha outro" diferente de "deu erro, tente de novo".
func FromDomain(c *gin.Context, err error) {
	var (
		vErr  schedule.ValidationError
		nfErr schedule.NotFoundError
		cErr  schedule.ConflictError
		tErr  schedule.InvalidTransitionError
		pErr  schedule.PersistenceError
	)

	switch {
	case errors.As(err, &vErr):
		BadRequest(c, vErr.Code, vErr.Message)

	case errors.As(err, &nfErr):
		NotFound(c, nfErr.Entity+"_not_found", "Registro não encontrado.")

	case errors.As(err, &cErr):
		c.JSON(409, gin.H{
			"error_code": "time_conflict",
			"message":    "Horário indisponível, escolha outro.",
			"conflicts":  len(cErr.Conflicts),
		})

	case errors.As(err, &tErr):
		Unprocessable(c, "invalid_transition", tErr.Error())

	case errors.As(err, &pErr):
		Internal(c, "persistence_error", "Algo deu errado, tente novamente.")

	default:
		Internal(c, "internal_error", "Algo deu errado, tente novamente.")
	}
}
