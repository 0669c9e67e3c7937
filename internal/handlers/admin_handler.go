package handlers

import (
	"context"
	"crypto/subtle"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
	"github.com/BruksfildServices01/barbershop-site/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barbershop-site/internal/usecase/appointment"
)

// ======================================================
// ADMIN HANDLER: login, appointments, messages
// ======================================================

type AdminHandler struct {
	cfg         *config.Config
	store       *sheetstore.Store
	setStatusUC *ucAppointment.SetStatus
	deleteUC    *ucAppointment.Delete
	reconcileUC *ucAppointment.ReconcilePast
	repairUC    *ucAppointment.RepairIDs
}

func NewAdminHandler(
	cfg *config.Config,
	store *sheetstore.Store,
	setStatusUC *ucAppointment.SetStatus,
	deleteUC *ucAppointment.Delete,
	reconcileUC *ucAppointment.ReconcilePast,
	repairUC *ucAppointment.RepairIDs,
) *AdminHandler {
	return &AdminHandler{
		cfg:         cfg,
		store:       store,
		setStatusUC: setStatusUC,
		deleteUC:    deleteUC,
		reconcileUC: reconcileUC,
		repairUC:    repairUC,
	}
}

// --------- Login ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.Username != h.cfg.AdminEmail || h.cfg.AdminEmail == "" {
		httperr.Unauthorized(c, "Invalid credentials")
		return
	}
	if !h.passwordMatches(req.Password) {
		httperr.Unauthorized(c, "Invalid credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": req.Username,
		"role":  "admin",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "Login failed")
		return
	}

	// An admin session starting is one of the two reconcile triggers.
	h.sweepAsync()

	httpresp.OK(c, gin.H{
		"token":   signed,
		"message": "Login successful",
	})
}

func (h *AdminHandler) passwordMatches(password string) bool {
	if h.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	if h.cfg.AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(h.cfg.AdminPassword), []byte(password)) == 1
}

// --------- Appointments ---------

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch appointments")
		return
	}

	// Refreshing the list is the other reconcile trigger. The sweep
	// runs detached; its updates show up on the next refresh.
	h.sweepAsync()

	httpresp.OK(c, gin.H{"appointments": appointments})
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	found, err := h.setStatusUC.Execute(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "Invalid status value")
			return
		}
		if httperr.IsBusiness(err, "invalid_transition") {
			httperr.BadRequest(c, "Appointment status cannot change that way")
			return
		}
		httperr.Internal(c, "Failed to update appointment")
		return
	}
	if !found {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	httpresp.Msg(c, "Appointment status updated")
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")

	found, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Failed to delete appointment")
		return
	}
	if !found {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	httpresp.Msg(c, "Appointment deleted")
}

func (h *AdminHandler) MigrateIDs(c *gin.Context) {
	updated, err := h.repairUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to migrate appointment IDs")
		return
	}
	httpresp.OK(c, gin.H{"updated": updated})
}

// Reconcile runs the past-due sweep synchronously and reports which
// appointments were completed.
func (h *AdminHandler) Reconcile(c *gin.Context) {
	updated, err := h.reconcileUC.Execute(c.Request.Context(), timezone.NowIn(h.cfg.Timezone))
	if err != nil {
		httperr.Internal(c, "Failed to reconcile appointments")
		return
	}
	if updated == nil {
		updated = []string{}
	}
	httpresp.OK(c, gin.H{"updated": updated})
}

func (h *AdminHandler) sweepAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := h.reconcileUC.Execute(ctx, timezone.NowIn(h.cfg.Timezone)); err != nil {
			log.Printf("admin: reconcile sweep failed: %v", err)
		}
	}()
}

// --------- Messages ---------

func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.store.ListMessages(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch messages")
		return
	}
	httpresp.OK(c, gin.H{"messages": messages})
}
