package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

// newCartTestServer wires the real cart stack against an in-memory database
// so requests exercise binding, validation, business rules and error mapping
// together.
func newCartTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.CartLineModel{},
	))

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := impl.NewCartService(
		mysql.NewCartRepository(db),
		mysql.NewUserRepository(db),
		discard,
	)
	cartHandler := NewCartHandler(service, discard)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discard).HandleHTTPError

	e.POST("/api/carrito/agregar", cartHandler.Add)
	e.GET("/api/carrito/:idusuario", cartHandler.Get)
	e.DELETE("/api/carrito/:idproducto", cartHandler.RemoveLine)
	e.DELETE("/api/carrito/vaciar/:idusuario", cartHandler.Clear)

	return e, db
}

func seedCartUser(t *testing.T, db *gorm.DB, id int64) {
	t.Helper()

	require.NoError(t, db.Create(&model.UserModel{
		ID:       id,
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret",
		RoleID:   1,
	}).Error)
}

func TestCartHandler_AddMergesQuantity_Integration(t *testing.T) {
	e, db := newCartTestServer(t)
	seedCartUser(t, db, 1)

	body := `{"idproducto":10,"idusuario":1,"nombre":"Pizza Pepperoni","cantidad":2,"total":"30.00"}`

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/api/carrito/agregar", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Producto agregado al carrito")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/carrito/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Two identical adds fold into one line with the summed quantity.
	assert.Contains(t, rec.Body.String(), `"cantidad":4`)

	var count int64
	require.NoError(t, db.Model(&model.CartLineModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCartHandler_AddUnknownUser_Integration(t *testing.T) {
	e, _ := newCartTestServer(t)

	body := `{"idproducto":10,"idusuario":99,"nombre":"Pizza Pepperoni","cantidad":1,"total":"15.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/carrito/agregar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuario no encontrado")
}

func TestCartHandler_AddRejectsZeroQuantity_Integration(t *testing.T) {
	e, db := newCartTestServer(t)
	seedCartUser(t, db, 1)

	body := `{"idproducto":10,"idusuario":1,"nombre":"Pizza Pepperoni","cantidad":0,"total":"0.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/carrito/agregar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_RemoveLineUserInBody_Integration(t *testing.T) {
	e, db := newCartTestServer(t)
	seedCartUser(t, db, 1)

	add := `{"idproducto":10,"idusuario":1,"nombre":"Pizza Pepperoni","cantidad":2,"total":"30.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/carrito/agregar", strings.NewReader(add))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/carrito/10", strings.NewReader(`{"idusuario":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Producto eliminado del carrito")

	var count int64
	require.NoError(t, db.Model(&model.CartLineModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCartHandler_ClearIsIdempotent_Integration(t *testing.T) {
	e, db := newCartTestServer(t)
	seedCartUser(t, db, 1)

	for range 2 {
		req := httptest.NewRequest(http.MethodDelete, "/api/carrito/vaciar/1", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Carrito vaciado")
	}
}
