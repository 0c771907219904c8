package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"craveconnect/internal/domain/model"
	"craveconnect/internal/infra/db"
	infraRepo "craveconnect/internal/infra/repository"
	"craveconnect/internal/middleware"
	"craveconnect/internal/usecase"
	auth "craveconnect/internal/usecase/auth_usecase"
	"craveconnect/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	e *echo.Echo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()
	gdb, err := db.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	users := infraRepo.NewUserGormRepository(gdb)
	vendors := infraRepo.NewVendorGormRepository(gdb)
	admins := infraRepo.NewAdminGormRepository(gdb)
	foods := infraRepo.NewFoodGormRepository(gdb)
	orders := infraRepo.NewOrderGormRepository(gdb)
	txm := infraRepo.NewTxManagerGorm(gdb)

	// F1=5, F2=10
	for _, price := range []int64{5, 10} {
		require.NoError(t, foods.Create(ctx, &model.Food{Name: "food", Description: "d", Recipes: "r", Price: price, VendorID: 1}))
	}

	issuer := auth.NewJWTIssuer("handler-test", time.Hour)
	v := validator.NewAccountValidator()
	registerUC := auth.NewRegisterUsecase(users, vendors, admins, auth.NewBcryptPasswordHasher(4), v)
	loginUC := auth.NewLoginUsecase(users, vendors, admins, auth.NewBcryptPasswordVerifier(), issuer, v, auth.SystemClock{})
	orderUC := usecase.NewOrderUsecase(txm, orders, usecase.NewCatalogLookup(foods, time.Second), nil)

	guards := Guards{
		Auth:    middleware.AuthJWT(issuer),
		Account: middleware.AccountGuard(usecase.NewAccountChecker(users, vendors, admins)),
	}

	e := echo.New()
	api := e.Group("/api/v1")
	NewAuthHandler(registerUC, loginUC).RegisterRoutes(api)
	NewOrderHandler(orderUC).RegisterRoutes(api, guards)
	NewHealthHandler(func(ctx context.Context) error { return db.Ping(ctx, gdb) }).RegisterRoutes(e)
	return &testApp{e: e}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func (a *testApp) signUp(t *testing.T, email string) string {
	t.Helper()
	code, _ := a.do(t, http.MethodPost, "/api/v1/auth/user", "", map[string]string{
		"firstname":        "Ada",
		"lastname":         "Obi",
		"email":            email,
		"stateOfResidence": "Lagos",
		"password":         "password123",
	})
	require.Equal(t, http.StatusCreated, code)

	code, env := a.do(t, http.MethodPost, "/api/v1/auth/user-login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, code)
	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

type orderBody struct {
	ID         int64 `json:"id"`
	TotalPrice int64 `json:"totalPrice"`
	FoodItems  []struct {
		FoodID   int64 `json:"foodId"`
		Quantity int64 `json:"quantity"`
	} `json:"foodItems"`
}

func decodeOrder(t *testing.T, env envelope) orderBody {
	t.Helper()
	var o orderBody
	require.NoError(t, json.Unmarshal(env.Data, &o))
	return o
}

func line(foodID, qty int64) map[string]int64 {
	return map[string]int64{"foodId": foodID, "quantity": qty}
}

func TestOrderRoutes_Flow(t *testing.T) {
	app := newTestApp(t)
	token := app.signUp(t, "ada@example.com")

	code, env := app.do(t, http.MethodPost, "/api/v1/order/make-order", token,
		map[string]any{"foodItems": []any{line(1, 3), line(2, 1)}})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "success", env.Status)
	o := decodeOrder(t, env)
	assert.Equal(t, int64(25), o.TotalPrice)

	code, env = app.do(t, http.MethodPost, "/api/v1/order/make-order", token,
		map[string]any{"foodItems": []any{line(1, 2)}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(35), decodeOrder(t, env).TotalPrice)

	code, env = app.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/order/remove-orderItem/%d", o.ID), token,
		map[string]int64{"foodId": 2})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(25), decodeOrder(t, env).TotalPrice)

	code, env = app.do(t, http.MethodPut, fmt.Sprintf("/api/v1/order/update-order/%d", o.ID), token,
		map[string]any{"foodItems": []any{line(1, 1)}})
	require.Equal(t, http.StatusOK, code)
	replaced := decodeOrder(t, env)
	assert.Equal(t, int64(5), replaced.TotalPrice)
	require.Len(t, replaced.FoodItems, 1)

	code, env = app.do(t, http.MethodGet, "/api/v1/order/list-orders", token, nil)
	require.Equal(t, http.StatusOK, code)
	var list []orderBody
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	code, _ = app.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/order/%d", o.ID), token, nil)
	require.Equal(t, http.StatusOK, code)
	code, env = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/order/get-order/%d", o.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", env.Status)
}

func TestOrderRoutes_Errors(t *testing.T) {
	app := newTestApp(t)
	ada := app.signUp(t, "ada@example.com")
	ben := app.signUp(t, "ben@example.com")

	code, _ := app.do(t, http.MethodPost, "/api/v1/order/make-order", "", map[string]any{"foodItems": []any{line(1, 1)}})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, env := app.do(t, http.MethodPost, "/api/v1/order/make-order", ada, map[string]any{"foodItems": []any{line(9, 1)}})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "food 9 not found", env.Error)

	code, _ = app.do(t, http.MethodPost, "/api/v1/order/make-order", ada, map[string]any{"foodItems": []any{}})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = app.do(t, http.MethodPost, "/api/v1/order/make-order", ada, map[string]any{"foodItems": []any{line(1, 1)}})
	require.Equal(t, http.StatusCreated, code)
	o := decodeOrder(t, env)

	code, _ = app.do(t, http.MethodGet, fmt.Sprintf("/api/v1/order/get-order/%d", o.ID), ben, nil)
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = app.do(t, http.MethodGet, "/api/v1/order/get-order/abc", ada, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = app.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/order/remove-orderItem/%d?foodId=2", o.ID), ada, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "item not in order", env.Error)

	code, _ = app.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/order/update-status/%d", o.ID), ada, map[string]string{"status": "delivered"})
	require.Equal(t, http.StatusOK, code)
	code, _ = app.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/order/update-status/%d", o.ID), ada, map[string]string{"status": "canceled"})
	assert.Equal(t, http.StatusConflict, code)
}

func TestAuthRoutes_Errors(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "ada@example.com")

	code, env := app.do(t, http.MethodPost, "/api/v1/auth/user", "", map[string]string{
		"firstname": "A", "lastname": "B", "email": "ADA@example.com", "stateOfResidence": "Lagos", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "email already exists", env.Error)

	code, _ = app.do(t, http.MethodPost, "/api/v1/auth/user-login", "", map[string]string{"email": "ada@example.com", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = app.do(t, http.MethodPost, "/api/v1/auth/vendor-login", "", map[string]string{"email": "ada@example.com", "password": "password123"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	code, _ := app.do(t, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, code)

	e := echo.New()
	NewHealthHandler(func(context.Context) error { return errors.New("down") }).RegisterRoutes(e)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
