// Package httpapi exposes the buyer and farmer apps over HTTP.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"cropconnect-backend/internal/catalog"
	"cropconnect-backend/internal/farmer"
	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/registration"
	"cropconnect-backend/internal/session"
)

// SellerOrders is the read side of the order projections.
type SellerOrders interface {
	SellerOrders(ctx context.Context, seller string) ([]model.OrderPlaced, error)
}

// Server bundles the collaborators the handlers need.
type Server struct {
	Catalog      *catalog.Catalog
	Session      *session.Session
	Accounts     *farmer.Accounts
	Listings     *farmer.Listings
	SellerOrders SellerOrders // optional
	Registration registration.Options
}

// RegisterRoutes wires HTTP routes.
// gorilla/mux: Router provides method-based routing and URL pattern matching.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Buyer side
	api.HandleFunc("/crops", s.listCrops).Methods(http.MethodGet)
	api.HandleFunc("/crops/suggest", s.suggestCrops).Methods(http.MethodGet)
	api.HandleFunc("/crops/{id}", s.getCrop).Methods(http.MethodGet)
	api.HandleFunc("/register", s.registerBuyer).Methods(http.MethodPost)
	api.HandleFunc("/me", s.getBuyer).Methods(http.MethodGet)
	api.HandleFunc("/orders/quote", s.quoteOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders", s.placeOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders", s.listOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/review", s.reviewOrder).Methods(http.MethodPost)
	api.HandleFunc("/wallet", s.getWallet).Methods(http.MethodGet)
	api.HandleFunc("/wallet/topup", s.topUpWallet).Methods(http.MethodPost)

	// Farmer side
	api.HandleFunc("/farmers", s.registerFarmer).Methods(http.MethodPost)
	api.HandleFunc("/farmers/login", s.loginFarmer).Methods(http.MethodPost)
	api.HandleFunc("/farmers/{farmId}/password", s.changePassword).Methods(http.MethodPost)
	api.HandleFunc("/farmers/{farmId}/profile-pic", s.updateProfilePic).Methods(http.MethodPut)
	api.HandleFunc("/farmers/{farmId}/crops", s.listListings).Methods(http.MethodGet)
	api.HandleFunc("/farmers/{farmId}/crops", s.addListing).Methods(http.MethodPost)
	api.HandleFunc("/farmers/{farmId}/crops/{id}", s.updateListing).Methods(http.MethodPut)
	api.HandleFunc("/farmers/{farmId}/crops/{id}", s.deleteListing).Methods(http.MethodDelete)
	api.HandleFunc("/sellers/{seller}/orders", s.sellerOrders).Methods(http.MethodGet)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
