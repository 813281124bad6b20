package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *booking.GetAvailability
	createUC       *booking.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *booking.GetAvailability,
	createUC *booking.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

func (h *PublicHandler) branchBySlug(c *gin.Context) (*models.Branch, bool) {
	slug := c.Param("slug")

	var branch models.Branch
	if err := h.db.Where("slug = ?", slug).First(&branch).Error; err != nil {
		httperr.NotFound(c, "branch_not_found", "Filial não encontrada.")
		return nil, false
	}
	return &branch, true
}

////////////////////////////////////////////////////////
// SERVICES / BARBERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	branch, ok := h.branchBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("branch_id = ? AND active = true", branch.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":   branch,
		"services": services,
	})
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	branch, ok := h.branchBySlug(c)
	if !ok {
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("branch_id = ? AND is_active = true", branch.ID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":  branch,
		"barbers": barbers,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	branch, ok := h.branchBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || barberIDStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, barbeiro e serviço obrigatórios.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		booking.GetAvailabilityInput{
			BranchID:  branch.ID,
			BarberID:  uint(barberID),
			ServiceID: uint(serviceID),
			Date:      dateStr,
		},
	)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	branch, ok := h.branchBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		booking.CreateAppointmentInput{
			BranchID:    branch.ID,
			BarberID:    req.BarberID,
			ServiceID:   req.ServiceID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}
