package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/notify"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
	"github.com/BruksfildServices01/barbershop-site/internal/validators"
)

type ContactHandler struct {
	store  *sheetstore.Store
	mailer *notify.Service
}

func NewContactHandler(store *sheetstore.Store, mailer *notify.Service) *ContactHandler {
	return &ContactHandler{store: store, mailer: mailer}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactRequest) validate() validators.FieldErrors {
	var errs validators.FieldErrors

	if !validators.MinLen(r.Name, 2) {
		errs = append(errs, validators.FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if !validators.IsEmail(r.Email) {
		errs = append(errs, validators.FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if !validators.MinLen(r.Phone, 10) {
		errs = append(errs, validators.FieldError{Field: "phone", Message: "Phone number must be at least 10 characters"})
	}
	if !validators.NotEmpty(r.Subject) {
		errs = append(errs, validators.FieldError{Field: "subject", Message: "Subject is required"})
	}
	if !validators.MinLen(r.Message, 10) {
		errs = append(errs, validators.FieldError{Field: "message", Message: "Message must be at least 10 characters"})
	}

	return errs
}

// Send handles a contact submission. Past validation it always
// succeeds: the admin email is best-effort and a sheet failure lands
// the message in the local fallback list.
func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.mailer.SendContactNotification(c.Request.Context(), notify.ContactData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		log.Printf("contact: notification email failed: %v", err)
	}

	msg := &models.Message{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		// The sheet has no subject column; fold it into the body.
		Message: "Subject: " + req.Subject + "\n\n" + req.Message,
	}
	if err := h.store.AddMessage(c.Request.Context(), msg); err != nil {
		log.Printf("contact: store message failed: %v", err)
	}

	httpresp.Msg(c, "Message sent successfully! We will get back to you soon.")
}
