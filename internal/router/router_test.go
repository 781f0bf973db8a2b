package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"chaibisket/internal/handler"
	"chaibisket/internal/repositories"
	"chaibisket/internal/service"
	"chaibisket/pkg/envconfig"
	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage/filestore"
)

// newTestServer stands up the full stack on a file store in a temp dir.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
	store, err := filestore.New(t.TempDir(), log)
	require.NoError(t, err)

	menuRepo := repositories.NewMenuRepository(log)
	cartRepo := repositories.NewCartRepository(store, log)
	accountRepo := repositories.NewAccountRepository(store, log)
	orderRepo := repositories.NewOrderRepository(store, log)
	checkoutRepo := repositories.NewCheckoutRepository(store, log)

	menuService := service.NewMenuService(menuRepo, log)
	cartService := service.NewCartService(cartRepo, menuRepo, log)
	accountService := service.NewAccountService(accountRepo, log)
	orderService := service.NewOrderService(orderRepo, accountRepo, log)
	checkoutService := service.NewCheckoutService(cartRepo, menuRepo, orderRepo, accountRepo, checkoutRepo, log)
	contactService := service.NewContactService(envconfig.ContactConfig{}, nil, log)

	handlers := Handlers{
		Menu:     handler.NewMenuHandler(menuService, log),
		Cart:     handler.NewCartHandler(cartService, log),
		Checkout: handler.NewCheckoutHandler(checkoutService, log),
		Account:  handler.NewAccountHandler(accountService, orderService, log),
		Order:    handler.NewOrderHandler(orderService, log),
		Contact:  handler.NewContactHandler(contactService, log),
		Health:   handler.NewHealthHandler(log),
	}

	server := httptest.NewServer(New(handlers, log))
	t.Cleanup(server.Close)
	return server
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func postJSON(t *testing.T, url, payload string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "healthy", body["status"])
}

func TestMenuEndpointFiltersByWindow(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/menu?window=breakfast")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "breakfast", body["window"])
	items := body["items"].([]interface{})
	require.Len(t, items, 3)
}

func TestMenuEndpointRejectsUnknownWindow(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/menu?window=brunch")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCartFlowOverHTTP(t *testing.T) {
	server := newTestServer(t)
	client := server.Client()

	resp := postJSON(t, server.URL+"/api/v1/cart/items", `{"product_id":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/v1/cart/items", `{"product_id":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, float64(2), body["item_count"])

	req, err := http.NewRequest(http.MethodPut, server.URL+"/api/v1/cart/items/1", strings.NewReader(`{"quantity":5}`))
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(5), body["item_count"])

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/v1/cart/items/1", nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	body = decodeBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(0), body["item_count"])
}

func TestCartRejectsUnknownItemOverHTTP(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/cart/items", `{"product_id":42}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckoutGuardsCarryRedirects(t *testing.T) {
	server := newTestServer(t)

	// Not signed in: login redirect with the return URL.
	resp := postJSON(t, server.URL+"/api/v1/checkout", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, "/login?returnUrl=/checkout", body["redirect"])

	// Signed in but with an empty cart: back to the cart page.
	resp = postJSON(t, server.URL+"/api/v1/auth/signup", `{
		"name":"Priya Sharma","email":"priya@example.com",
		"password":"secret1","confirm_password":"secret1"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/v1/checkout", "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body = decodeBody(t, resp)
	require.Equal(t, "/cart", body["redirect"])
}

func TestSignupValidationOverHTTP(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/auth/signup", `{
		"name":"","email":"bad","password":"x","confirm_password":"y"
	}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, "validation failed", body["error"])
	fields := body["fields"].(map[string]interface{})
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "password")
}

func TestProfileRequiresSessionOverHTTP(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/profile")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestContactEndpointValidation(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/contact", `{"name":"A"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, server.URL+"/api/v1/contact", `{
		"name":"A","email":"a@example.com","message":"hello"
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, true, body["ok"])
}
