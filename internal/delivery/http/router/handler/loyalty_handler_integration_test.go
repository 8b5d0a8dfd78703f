package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pepperoni/config"
	"pepperoni/internal/delivery/http/middleware"
	"pepperoni/internal/delivery/http/validator"
	"pepperoni/internal/infra/persistence/model"
	"pepperoni/internal/infra/persistence/mysql"
	"pepperoni/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo/v4"
)

// newLoyaltyTestServer wires the real loyalty stack against an in-memory
// database so the redeem and adjust endpoints run with their production
// binding, validation and error mapping.
func newLoyaltyTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.LoyaltyAccountModel{},
		&model.RedeemableModel{},
	))

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Loyalty.CardPrefix = "PEPPER"

	service := impl.NewLoyaltyService(
		mysql.NewLoyaltyRepository(db),
		mysql.NewRedeemableRepository(db),
		cfg,
		discard,
	)
	loyaltyHandler := &LoyaltyHandler{uc: service, logger: discard}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discard).HandleHTTPError

	e.POST("/api/pepperpoints/canjear", loyaltyHandler.Redeem)
	e.PATCH("/api/pepperpoints/:id_usuario", loyaltyHandler.Adjust)

	return e, db
}

func seedLoyaltyAccount(t *testing.T, db *gorm.DB, userID int64, balance int) {
	t.Helper()

	require.NoError(t, db.Create(&model.LoyaltyAccountModel{
		UserID:     userID,
		CardNumber: "PEPPER000001",
		Balance:    balance,
	}).Error)
}

func TestLoyaltyHandler_Redeem_Integration(t *testing.T) {
	e, db := newLoyaltyTestServer(t)
	seedLoyaltyAccount(t, db, 1, 120)
	require.NoError(t, db.Create(&model.RedeemableModel{
		ProductID:  2,
		Name:       "Pizza Margarita",
		PointsCost: 100,
	}).Error)

	// The redeem body speaks the cart vocabulary: idusuario/idproducto.
	body := `{"idusuario":1,"idproducto":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/pepperpoints/canjear", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Canje realizado")

	var account model.LoyaltyAccountModel
	require.NoError(t, db.Where("id_usuario = ?", 1).First(&account).Error)
	assert.Equal(t, 20, account.Balance)
	assert.Equal(t, 100, account.LifetimeSpent)
}

func TestLoyaltyHandler_Redeem_InsufficientBalance_Integration(t *testing.T) {
	e, db := newLoyaltyTestServer(t)
	seedLoyaltyAccount(t, db, 1, 99)
	require.NoError(t, db.Create(&model.RedeemableModel{
		ProductID:  2,
		Name:       "Pizza Margarita",
		PointsCost: 100,
	}).Error)

	body := `{"idusuario":1,"idproducto":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/pepperpoints/canjear", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Puntos insuficientes")

	var account model.LoyaltyAccountModel
	require.NoError(t, db.Where("id_usuario = ?", 1).First(&account).Error)
	assert.Equal(t, 99, account.Balance)
}

func TestLoyaltyHandler_Adjust_Integration(t *testing.T) {
	e, db := newLoyaltyTestServer(t)
	seedLoyaltyAccount(t, db, 1, 10)

	body := `{"puntos":50}`
	req := httptest.NewRequest(http.MethodPatch, "/api/pepperpoints/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Puntos ajustados")

	var account model.LoyaltyAccountModel
	require.NoError(t, db.Where("id_usuario = ?", 1).First(&account).Error)
	assert.Equal(t, 60, account.Balance)
	assert.Equal(t, 50, account.LifetimeEarned)
}

func TestLoyaltyHandler_Adjust_AccountMissing_Integration(t *testing.T) {
	e, _ := newLoyaltyTestServer(t)

	body := `{"puntos":50}`
	req := httptest.NewRequest(http.MethodPatch, "/api/pepperpoints/9", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
