package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rostershop/internal/api"
	"rostershop/internal/api/apierr"
	"rostershop/internal/api/response"
	"rostershop/internal/factory"
	"rostershop/internal/services/account"
	"rostershop/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use the production factory
	app, err := factory.New(factory.Config{
		AccountConfig: account.Config{InitialBalance: 1000},
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		Metrics:          app.Metrics,
		RosterController: app.RosterController,
		ShopService:      app.ShopService,
		AccountService:   app.AccountService,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func playerBody(firstname, country string) map[string]any {
	return map[string]any{
		"coachId":     1,
		"firstname":   firstname,
		"lastname":    "Kowalski",
		"country":     country,
		"dateOfBirth": "2000-10-10",
		"height":      180,
		"weight":      100,
	}
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	// Generate some traffic first
	ts.request(http.MethodGet, "/api/v1/health", nil)

	rr := ts.request(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "rostershop_http_requests_total")
}

func TestCreateAndGetPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", playerBody("Jan", "Polska"))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Jan", created.Firstname)
	assert.Equal(t, "2000-10-10", created.DateOfBirth)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/players/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var fetched response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/42", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rr))
}

func TestGetPlayerInvalidID(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestCreatePlayerBadDate(t *testing.T) {
	ts := newTestServer(t)

	body := playerBody("Jan", "Polska")
	body["dateOfBirth"] = "10/10/2000"

	rr := ts.request(http.MethodPost, "/api/v1/players", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFilterPlayersByCountry(t *testing.T) {
	ts := newTestServer(t)

	ts.request(http.MethodPost, "/api/v1/players", playerBody("Jan", "Polska"))
	ts.request(http.MethodPost, "/api/v1/players", playerBody("Hans", "Niemcy"))
	ts.request(http.MethodPost, "/api/v1/players", playerBody("Piotr", "Polska"))

	rr := ts.request(http.MethodGet, "/api/v1/players/filter/Polska", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 2)
	assert.Equal(t, "Jan", players[0].Firstname)
	assert.Equal(t, "Piotr", players[1].Firstname)
}

func TestFilterPlayersNoMatches(t *testing.T) {
	ts := newTestServer(t)

	ts.request(http.MethodPost, "/api/v1/players", playerBody("Jan", "Polska"))

	rr := ts.request(http.MethodGet, "/api/v1/players/filter/Hiszpania", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestUpdatePlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", playerBody("Jan", "Polska"))
	var created response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	update := playerBody("Hans", "Niemcy")
	update["id"] = created.ID
	rr = ts.request(http.MethodPut, "/api/v1/players", update)
	assert.Equal(t, http.StatusOK, rr.Code)

	var updated response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Hans", updated.Firstname)
	assert.Equal(t, "Niemcy", updated.Country)
}

func TestUpdatePlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	update := playerBody("Hans", "Niemcy")
	update["id"] = 42
	rr := ts.request(http.MethodPut, "/api/v1/players", update)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", playerBody("Jan", "Polska"))
	var created response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/players/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/players/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Deleting again is still a 204
	rr = ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/players/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAddAndGetProduct(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"id": "1", "name": "Home Jersey", "price": 900, "available": true}
	rr := ts.request(http.MethodPost, "/api/v1/products", body)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/products/1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var product response.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &product))
	assert.Equal(t, "Home Jersey", product.Name)
	assert.Equal(t, 900.0, product.Price)
	assert.True(t, product.Available)
}

func TestAddProductDuplicate(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"id": "1", "name": "Home Jersey", "price": 900, "available": true}
	rr := ts.request(http.MethodPost, "/api/v1/products", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/products", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeProductExists, errorCode(t, rr))
}

func TestGetProductPrice(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"id": "1", "name": "Home Jersey", "price": 900, "available": true}
	ts.request(http.MethodPost, "/api/v1/products", body)

	rr := ts.request(http.MethodGet, "/api/v1/products/1/price", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var price response.Price
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &price))
	assert.Equal(t, 900.0, price.Price)
}

func TestGetProductNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeProductNotFound, errorCode(t, rr))
}

func registerUser(t *testing.T, ts *testServer, login string) {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{
		"login":    login,
		"password": "hunter2",
		"email":    login + "@example.com",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestOrderProduct(t *testing.T) {
	ts := newTestServer(t)

	registerUser(t, ts, "alice")
	ts.request(http.MethodPost, "/api/v1/products", map[string]any{
		"id": "1", "name": "Home Jersey", "price": 900, "available": true,
	})

	rr := ts.request(http.MethodPost, "/api/v1/orders", map[string]string{
		"account_id": "alice", "product_id": "1",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var order response.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.True(t, order.Ordered)

	// The product is now sold
	rr = ts.request(http.MethodGet, "/api/v1/products/1", nil)
	var product response.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &product))
	assert.False(t, product.Available)

	// A second order comes back unfulfilled, not an error
	rr = ts.request(http.MethodPost, "/api/v1/orders", map[string]string{
		"account_id": "alice", "product_id": "1",
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.False(t, order.Ordered)
}

func TestOrderProductInsufficientFunds(t *testing.T) {
	ts := newTestServer(t)

	registerUser(t, ts, "alice")
	ts.request(http.MethodPost, "/api/v1/products", map[string]any{
		"id": "1", "name": "Signed Ball", "price": 5000, "available": true,
	})

	rr := ts.request(http.MethodPost, "/api/v1/orders", map[string]string{
		"account_id": "alice", "product_id": "1",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeInsufficientFunds, errorCode(t, rr))

	// The failed order left the product purchasable
	rr = ts.request(http.MethodGet, "/api/v1/products/1", nil)
	var product response.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &product))
	assert.True(t, product.Available)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{
		"login":    "alice",
		"password": "hunter2",
		"email":    "alice@example.com",
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var user response.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, 1000.0, user.Balance)
	assert.NotContains(t, rr.Body.String(), "hunter2")

	rr = ts.request(http.MethodPost, "/api/v1/users/login", map[string]string{
		"login": "alice", "password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var login response.Login
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
	assert.True(t, login.Authenticated)
}

func TestRegisterDuplicateLogin(t *testing.T) {
	ts := newTestServer(t)

	registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{
		"login":    "alice",
		"password": "other",
		"email":    "alice2@example.com",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeUserExists, errorCode(t, rr))
}

func TestRegisterInvalidEmail(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/users/register", map[string]string{
		"login":    "alice",
		"password": "hunter2",
		"email":    "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	registerUser(t, ts, "alice")

	rr := ts.request(http.MethodPost, "/api/v1/users/login", map[string]string{
		"login": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeInvalidCredentials, errorCode(t, rr))

	// Unknown logins look identical to wrong passwords
	rr = ts.request(http.MethodPost, "/api/v1/users/login", map[string]string{
		"login": "nobody", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeInvalidCredentials, errorCode(t, rr))
}
