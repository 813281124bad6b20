package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type ShiftConfig struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingDayConfig struct {
	Weekday int  `json:"weekday" binding:"min=0,max=6"`
	Active  bool `json:"active"`

	// turno dividido: mais de uma faixa por dia
	Shifts []ShiftConfig `json:"shifts"`
	// pausas como pares explícitos, contidas numa faixa
	Breaks []ShiftConfig `json:"breaks"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) barberInBranch(c *gin.Context) (*models.Barber, bool) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	barberID, err := strconv.ParseUint(c.Param("barberId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND branch_id = ?", barberID, branchID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return nil, false
	}

	return &barber, true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barber, ok := h.barberInBranch(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barber.ID).
		Order("weekday ASC, start_time ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	var breaks []models.BreakPeriod
	if err := h.db.
		Where("barber_id = ?", barber.ID).
		Order("weekday ASC, start_time ASC").
		Find(&breaks).Error; err != nil {
		httperr.Internal(c, "failed_to_get_breaks", "Erro ao buscar pausas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"working_hours": hours,
		"breaks":        breaks,
	})
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barber, ok := h.barberInBranch(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if err := tx.Where("barber_id = ?", barber.ID).Delete(&models.BreakPeriod{}).Error; err != nil {
			return err
		}

		var hours []models.WorkingHours
		var breaks []models.BreakPeriod

		for _, d := range req.Days {
			for _, s := range d.Shifts {
				hours = append(hours, models.WorkingHours{
					BarberID:  barber.ID,
					Weekday:   d.Weekday,
					StartTime: s.StartTime,
					EndTime:   s.EndTime,
					Active:    d.Active,
				})
			}
			for _, b := range d.Breaks {
				breaks = append(breaks, models.BreakPeriod{
					BarberID:  barber.ID,
					Weekday:   d.Weekday,
					StartTime: b.StartTime,
					EndTime:   b.EndTime,
				})
			}
		}

		if len(hours) > 0 {
			if err := tx.Create(&hours).Error; err != nil {
				return err
			}
		}
		if len(breaks) > 0 {
			if err := tx.Create(&breaks).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
