package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventora_backend/internal/config"
	"eventora_backend/internal/email"
	"eventora_backend/internal/models"
	"eventora_backend/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubGateway struct{}

func (stubGateway) CreateCheckoutSession(_ context.Context, params payment.CheckoutParams) (*payment.CheckoutSession, error) {
	return &payment.CheckoutSession{
		ID:            "cs_stub",
		URL:           "https://checkout.example.com/cs_stub",
		PaymentStatus: "unpaid",
		AmountTotal:   int64(params.Amount) * 100,
		Currency:      params.Currency,
		ClientRef:     params.Reference,
	}, nil
}

func (stubGateway) RetrieveSession(_ context.Context, sessionID string) (*payment.CheckoutSession, error) {
	return &payment.CheckoutSession{ID: sessionID, PaymentStatus: "unpaid"}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Payment.Currency = "usd"
	cfg.Payment.ClientURL = "http://localhost:5173"
	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	router := SetupRouterWith(cfg, db, stubGateway{}, email.NoopProvider{})
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *gin.Engine, emailAddr, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    emailAddr,
		"password": password,
		"name":     "Test Person",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    emailAddr,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestAuthRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	token := registerAndLogin(t, router, "roundtrip@example.com", "supersecret1")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "roundtrip@example.com", me.Email)
	assert.Equal(t, "user", me.Role)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRouteGatedByDatabaseRole(t *testing.T) {
	router, db := newTestRouter(t)

	token := registerAndLogin(t, router, "plain@example.com", "supersecret1")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	// Promote the account directly; the gate re-reads the role from the
	// users table, so the same token now passes.
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "plain@example.com").
		Update("role", models.UserRoleAdmin).Error)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestPublicCatalogFilters(t *testing.T) {
	router, db := newTestRouter(t)

	costs := map[string]int{"Arch": 800, "Stage": 1800, "Corner": 300}
	for name, cost := range costs {
		require.NoError(t, db.Create(&models.Service{
			Name:     name,
			Category: "Wedding",
			Location: "Berlin",
			Cost:     cost,
		}).Error)
	}

	rec := doJSON(t, router, http.MethodGet,
		"/api/v1/services?category=Wedding&min_price=500&max_price=2000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestBookingFlowOverHTTP(t *testing.T) {
	router, db := newTestRouter(t)

	token := registerAndLogin(t, router, "client@example.com", "supersecret1")

	catalogEntry := &models.Service{Name: "Garden Wedding Package", Category: "Wedding", Cost: 1000}
	require.NoError(t, db.Create(catalogEntry).Error)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/bookings", token, gin.H{
		"service_id":  catalogEntry.ID,
		"date":        "2026-10-01T15:00:00Z",
		"address":     "12 Garden Street, Berlin",
		"addons":      []string{"Drone Photography"},
		"coupon_code": "SAVE10",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking struct {
		ID    string `json:"id"`
		Price int    `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, 1080, booking.Price) // (1000+200) minus 10%

	// Pending bookings can be cancelled by their owner.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/bookings/"+booking.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSeedFirstAdmin(t *testing.T) {
	_, db := newTestRouter(t)

	cfg := config.GetConfig()
	cfg.FirstAdminEmail = "root@example.com"
	cfg.FirstAdminPassword = "bootstrap-secret"

	require.NoError(t, seedFirstAdmin(db, cfg))

	var admin models.User
	require.NoError(t, db.First(&admin, "email = ?", "root@example.com").Error)
	assert.Equal(t, models.UserRoleAdmin, admin.Role)

	// Seeding again is a no-op.
	require.NoError(t, seedFirstAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "root@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
