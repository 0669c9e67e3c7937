package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
	"github.com/BruksfildServices01/barbershop-site/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barbershop-site/internal/usecase/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/validators"
)

// ======================================================
// PUBLIC HANDLER: booking, availability, listings
// ======================================================

type PublicHandler struct {
	store          *sheetstore.Store
	bookUC         *ucAppointment.Book
	availabilityUC *ucAppointment.GetAvailability
	tz             string
}

func NewPublicHandler(
	store *sheetstore.Store,
	bookUC *ucAppointment.Book,
	availabilityUC *ucAppointment.GetAvailability,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		store:          store,
		bookUC:         bookUC,
		availabilityUC: availabilityUC,
		tz:             tz,
	}
}

type BookRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

// Book accepts a booking. Success is reported as soon as validation
// passes; persistence and the confirmation email happen downstream.
func (h *PublicHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookingInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
		Notes:   req.Notes,
	})
	if err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}
		httperr.Internal(c, "Error booking appointment. Please try again.")
		return
	}

	httpresp.Msg(c, "Appointment booked successfully!")
}

// AvailableTimes lists free slots for a date. Slots already in the
// past are cut for today, using shop wall-clock time.
func (h *PublicHandler) AvailableTimes(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "Date is required")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "Valid date is required")
			return
		}
		httperr.Internal(c, "Error fetching available times")
		return
	}

	slots = domain.CutoffPast(slots, date, timezone.NowIn(h.tz))
	httpresp.OK(c, gin.H{"availableTimes": slots})
}

// ListServices returns the active service catalog.
func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch services")
		return
	}

	active := []models.Service{}
	for _, svc := range services {
		if svc.Active {
			active = append(active, svc)
		}
	}
	httpresp.OK(c, gin.H{"services": active})
}

// ListWork returns the active portfolio, ordered items first.
func (h *PublicHandler) ListWork(c *gin.Context) {
	items, err := h.store.ListWork(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch work")
		return
	}

	active := []models.WorkItem{}
	for _, item := range items {
		if item.Active {
			active = append(active, item)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i].Order, active[j].Order
		if a == 0 {
			return false
		}
		if b == 0 {
			return true
		}
		return a < b
	})
	httpresp.OK(c, gin.H{"work": active})
}
