package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
	"github.com/BruksfildServices01/barbershop-site/internal/uploader"
	"github.com/BruksfildServices01/barbershop-site/internal/validators"
)

// ======================================================
// CONTENT HANDLER: services and portfolio management
// ======================================================

type ContentHandler struct {
	store    *sheetstore.Store
	uploader *uploader.Uploader
}

func NewContentHandler(store *sheetstore.Store, uploader *uploader.Uploader) *ContentHandler {
	return &ContentHandler{store: store, uploader: uploader}
}

// --------- Services ---------

type ServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

func (r ServiceRequest) validate() validators.FieldErrors {
	var errs validators.FieldErrors

	if !validators.NotEmpty(r.Name) {
		errs = append(errs, validators.FieldError{Field: "name", Message: "Name is required"})
	}
	if r.Duration <= 0 {
		errs = append(errs, validators.FieldError{Field: "duration_min", Message: "Duration must be positive"})
	}
	if r.Price < 0 {
		errs = append(errs, validators.FieldError{Field: "price", Message: "Price cannot be negative"})
	}

	return errs
}

func (r ServiceRequest) toModel() models.Service {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return models.Service{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Duration:    r.Duration,
		Price:       r.Price,
		Category:    strings.TrimSpace(r.Category),
		Active:      active,
	}
}

// ListServices returns the whole catalog, inactive rows included. The
// public endpoint filters; the admin panel needs everything.
func (h *ContentHandler) ListServices(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch services")
		return
	}
	httpresp.OK(c, gin.H{"services": services})
}

func (h *ContentHandler) AddService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	svc := req.toModel()
	if err := h.store.AddService(c.Request.Context(), &svc); err != nil {
		httperr.Internal(c, "Failed to add service")
		return
	}
	httpresp.OK(c, gin.H{"service": svc})
}

func (h *ContentHandler) UpdateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	svc := req.toModel()
	ok, err := h.store.UpdateService(c.Request.Context(), c.Param("id"), &svc)
	if err != nil {
		httperr.Internal(c, "Failed to update service")
		return
	}
	httpresp.OK(c, gin.H{"success": ok})
}

func (h *ContentHandler) DeleteService(c *gin.Context) {
	ok, err := h.store.DeleteService(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "Failed to delete service")
		return
	}
	httpresp.OK(c, gin.H{"success": ok})
}

// --------- Work ---------

type WorkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Order       int    `json:"order"`
	Active      *bool  `json:"active"`
}

func (r WorkRequest) validate() validators.FieldErrors {
	var errs validators.FieldErrors

	if !validators.NotEmpty(r.Title) {
		errs = append(errs, validators.FieldError{Field: "title", Message: "Title is required"})
	}
	if !validators.NotEmpty(r.ImageURL) {
		errs = append(errs, validators.FieldError{Field: "image_url", Message: "Image URL is required"})
	}

	return errs
}

func (r WorkRequest) toModel() models.WorkItem {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return models.WorkItem{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Order:       r.Order,
		Active:      active,
	}
}

func (h *ContentHandler) ListWork(c *gin.Context) {
	items, err := h.store.ListWork(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch work")
		return
	}
	httpresp.OK(c, gin.H{"work": items})
}

func (h *ContentHandler) AddWork(c *gin.Context) {
	var req WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	item := req.toModel()
	if err := h.store.AddWork(c.Request.Context(), &item); err != nil {
		httperr.Internal(c, "Failed to add work item")
		return
	}
	httpresp.OK(c, gin.H{"work": item})
}

func (h *ContentHandler) UpdateWork(c *gin.Context) {
	var req WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	item := req.toModel()
	ok, err := h.store.UpdateWork(c.Request.Context(), c.Param("id"), &item)
	if err != nil {
		httperr.Internal(c, "Failed to update work item")
		return
	}
	httpresp.OK(c, gin.H{"success": ok})
}

func (h *ContentHandler) DeleteWork(c *gin.Context) {
	ok, err := h.store.DeleteWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "Failed to delete work item")
		return
	}
	httpresp.OK(c, gin.H{"success": ok})
}

// --------- Upload ---------

type UploadRequest struct {
	FileBase64 string `json:"fileBase64"`
	Filename   string `json:"filename"`
}

// UploadWork stores a portfolio image and returns where it landed.
// Local storage yields only a relative path; the absolute URL is
// completed from the request so the admin panel can preview it.
func (h *ContentHandler) UploadWork(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}
	if req.FileBase64 == "" {
		httperr.BadRequest(c, "fileBase64 is required")
		return
	}

	res, err := h.uploader.Upload(c.Request.Context(), req.FileBase64, req.Filename)
	if err != nil {
		httperr.BadRequest(c, "Invalid image upload")
		return
	}

	url := res.URL
	if url == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		url = scheme + "://" + c.Request.Host + res.Relative
	}

	httpresp.OK(c, gin.H{
		"url":      url,
		"relative": res.Relative,
	})
}
