package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER (staff)
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	updateUC     *booking.UpdateStatus
	listByDateUC *booking.ListAppointmentsByDate
}

func NewAppointmentHandler(
	db *gorm.DB,
	updateUC *booking.UpdateStatus,
	listByDateUC *booking.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		updateUC:     updateUC,
		listByDateUC: listByDateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	publicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// não opera agendamento de outra filial
	var existing models.Appointment
	if err := h.db.
		Where("public_id = ? AND branch_id = ?", publicID, branchID).
		First(&existing).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), &userID, publicID, req.Status)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	branchID := c.MustGet(middleware.ContextBranchID).(uint)

	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")
	if dateStr == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e barbeiro obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var branch models.Branch
	if err := h.db.First(&branch, branchID).Error; err != nil {
		httperr.Internal(c, "branch_not_found", "Filial não encontrada.")
		return
	}

	date, err := parseDateInBranch(&branch, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), branchID, uint(barberID), date)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.List(c, out)
}
