package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
	ucAppointment "github.com/BruksfildServices01/barbershop-site/internal/usecase/appointment"
)

func adminTestConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@example.com",
		AdminPassword: "hunter2-long",
		JWTSecret:     "test-secret",
	}
}

func adminRouter(cfg *config.Config, store *sheetstore.Store) *gin.Engine {
	h := NewAdminHandler(
		cfg,
		store,
		ucAppointment.NewSetStatus(store),
		ucAppointment.NewDelete(store),
		ucAppointment.NewReconcilePast(store, 0),
		ucAppointment.NewRepairIDs(store),
	)

	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	r.GET("/api/admin/appointments", h.ListAppointments)
	r.PUT("/api/admin/appointments/:id/status", h.UpdateAppointmentStatus)
	r.DELETE("/api/admin/appointments/:id", h.DeleteAppointment)
	r.POST("/api/admin/appointments/migrate-ids", h.MigrateIDs)
	r.POST("/api/admin/appointments/reconcile", h.Reconcile)
	r.GET("/api/admin/messages", h.ListMessages)
	return r
}

func seedLocalAppointment(t *testing.T, store *sheetstore.Store, date, tm, status string) string {
	t.Helper()
	ap := &models.Appointment{
		Name: "Ana", Email: "ana@example.com", Phone: "5551234567",
		Service: "Haircut", Date: date, Time: tm, Status: status,
	}
	require.NoError(t, store.AppendAppointment(context.Background(), ap))
	return ap.ID
}

func TestLoginSuccess(t *testing.T) {
	r := adminRouter(adminTestConfig(), newLocalStore(t))

	w := postJSON(r, "/api/admin/login", gin.H{
		"username": "admin@example.com",
		"password": "hunter2-long",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, "Login successful", body["message"])
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	r := adminRouter(adminTestConfig(), newLocalStore(t))

	w := postJSON(r, "/api/admin/login", gin.H{
		"username": "admin@example.com",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid credentials", decodeBody(t, w)["message"])
}

func TestLoginWrongUsername(t *testing.T) {
	r := adminRouter(adminTestConfig(), newLocalStore(t))

	w := postJSON(r, "/api/admin/login", gin.H{
		"username": "intruder@example.com",
		"password": "hunter2-long",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBcryptHashPreferred(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("real-password"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := adminTestConfig()
	cfg.AdminPasswordHash = string(hash)
	r := adminRouter(cfg, newLocalStore(t))

	// The plaintext fallback is ignored once a hash is configured.
	w := postJSON(r, "/api/admin/login", gin.H{
		"username": "admin@example.com",
		"password": "hunter2-long",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/api/admin/login", gin.H{
		"username": "admin@example.com",
		"password": "real-password",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	store := newLocalStore(t)
	id := seedLocalAppointment(t, store, "2099-01-01", "10:00", "confirmed")
	r := adminRouter(adminTestConfig(), store)

	w := putJSON(r, "/api/admin/appointments/"+id+"/status", gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Appointment status updated", decodeBody(t, w)["message"])

	list, _ := store.ListAppointments(context.Background())
	require.Equal(t, "completed", list[0].Status)
}

func TestUpdateAppointmentStatusInvalidValue(t *testing.T) {
	store := newLocalStore(t)
	id := seedLocalAppointment(t, store, "2099-01-01", "10:00", "confirmed")
	r := adminRouter(adminTestConfig(), store)

	w := putJSON(r, "/api/admin/appointments/"+id+"/status", gin.H{"status": "done"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid status value", decodeBody(t, w)["message"])
}

func TestUpdateAppointmentStatusBlockedTransition(t *testing.T) {
	store := newLocalStore(t)
	id := seedLocalAppointment(t, store, "2099-01-01", "10:00", "cancelled")
	r := adminRouter(adminTestConfig(), store)

	w := putJSON(r, "/api/admin/appointments/"+id+"/status", gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	list, _ := store.ListAppointments(context.Background())
	require.Equal(t, "cancelled", list[0].Status)
}

func TestUpdateAppointmentStatusNotFound(t *testing.T) {
	r := adminRouter(adminTestConfig(), newLocalStore(t))

	w := putJSON(r, "/api/admin/appointments/nope/status", gin.H{"status": "completed"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Appointment not found", decodeBody(t, w)["message"])
}

func TestDeleteAppointment(t *testing.T) {
	store := newLocalStore(t)
	id := seedLocalAppointment(t, store, "2099-01-01", "10:00", "confirmed")
	r := adminRouter(adminTestConfig(), store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/appointments/"+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Appointment deleted", decodeBody(t, w)["message"])

	list, _ := store.ListAppointments(context.Background())
	require.Empty(t, list)
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	r := adminRouter(adminTestConfig(), newLocalStore(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/appointments/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReconcileEndpoint(t *testing.T) {
	store := newLocalStore(t)
	pastID := seedLocalAppointment(t, store, "2020-01-01", "10:00", "confirmed")
	futureID := seedLocalAppointment(t, store, "2099-01-01", "10:00", "confirmed")
	r := adminRouter(adminTestConfig(), store)

	w := postJSON(r, "/api/admin/appointments/reconcile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	updated, ok := body["updated"].([]any)
	require.True(t, ok)
	require.Equal(t, []any{pastID}, updated)

	list, _ := store.ListAppointments(context.Background())
	for _, ap := range list {
		switch ap.ID {
		case pastID:
			require.Equal(t, "completed", ap.Status)
		case futureID:
			require.Equal(t, "confirmed", ap.Status)
		}
	}
}

func TestMigrateIDsLocalNoop(t *testing.T) {
	r := adminRouter(adminTestConfig(), newLocalStore(t))

	w := postJSON(r, "/api/admin/appointments/migrate-ids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(0), decodeBody(t, w)["updated"])
}

func TestListMessagesIncludesLocal(t *testing.T) {
	store := newLocalStore(t)
	require.NoError(t, store.AddMessage(context.Background(), &models.Message{
		Name: "Ana", Email: "ana@example.com", Message: "Subject: hi\n\nhello",
	}))
	r := adminRouter(adminTestConfig(), store)

	w := getPath(r, "/api/admin/messages")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
}
