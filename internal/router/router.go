package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"chaibisket/internal/handler"
	"chaibisket/pkg/logger"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Account  *handler.AccountHandler
	Order    *handler.OrderHandler
	Contact  *handler.ContactHandler
	Health   *handler.HealthHandler
}

// New wires every route under /api/v1 and wraps the tree in the
// request-logging middleware.
func New(h Handlers, log *logger.Logger) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api.HandleFunc("/menu", h.Menu.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/menu/windows", h.Menu.Windows).Methods(http.MethodGet)
	api.HandleFunc("/menu/categories", h.Menu.Categories).Methods(http.MethodGet)

	api.HandleFunc("/cart", h.Cart.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.Cart.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/cart/total", h.Cart.Totals).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", h.Cart.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", h.Cart.SetQuantity).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{id}", h.Cart.RemoveItem).Methods(http.MethodDelete)

	api.HandleFunc("/checkout", h.Checkout.Start).Methods(http.MethodPost)
	api.HandleFunc("/checkout", h.Checkout.Get).Methods(http.MethodGet)
	api.HandleFunc("/checkout/delivery", h.Checkout.SetDeliveryInfo).Methods(http.MethodPut)
	api.HandleFunc("/checkout/advance", h.Checkout.Advance).Methods(http.MethodPost)
	api.HandleFunc("/checkout/back", h.Checkout.Back).Methods(http.MethodPost)
	api.HandleFunc("/checkout/place", h.Checkout.PlaceOrder).Methods(http.MethodPost)

	api.HandleFunc("/auth/signup", h.Account.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Account.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Account.Logout).Methods(http.MethodPost)

	api.HandleFunc("/profile", h.Account.Profile).Methods(http.MethodGet)
	api.HandleFunc("/profile", h.Account.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/profile/password", h.Account.ChangePassword).Methods(http.MethodPut)
	api.HandleFunc("/profile/summary", h.Account.Summary).Methods(http.MethodGet)

	api.HandleFunc("/orders", h.Order.History).Methods(http.MethodGet)

	api.HandleFunc("/contact", h.Contact.Submit).Methods(http.MethodPost)

	return log.HTTPMiddleware(r)
}
