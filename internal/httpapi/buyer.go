package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"cropconnect-backend/internal/catalog"
	"cropconnect-backend/internal/checkout"
	"cropconnect-backend/internal/model"
	"cropconnect-backend/internal/pricing"
	"cropconnect-backend/internal/registration"
	"cropconnect-backend/internal/session"
	"cropconnect-backend/internal/validation"
)

// criteriaFromQuery reads dashboard filters. Unparseable numbers are
// ignored, the same as leaving the filter untouched.
func criteriaFromQuery(r *http.Request, ceiling float64) catalog.Criteria {
	q := r.URL.Query()
	c := catalog.Criteria{
		SearchTerm:     q.Get("q"),
		MaxPrice:       &ceiling,
		Organic:        q.Get("organic") == "true",
		Seasonal:       q.Get("seasonal") == "true",
		SellerCategory: model.SellerCategory(q.Get("category")),
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil && v >= 0 {
		c.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("minRating"), 64); err == nil && v >= 0 {
		c.MinRating = v
	}
	return c
}

func (s *Server) listCrops(w http.ResponseWriter, r *http.Request) {
	ceiling := s.Catalog.MaxPossiblePrice()
	c := criteriaFromQuery(r, ceiling)
	if c.SellerCategory != "" && !c.SellerCategory.Valid() {
		writeError(w, r, &validation.Error{Kind: validation.MalformedField, Field: "category", Message: "Seller category must be one of " + model.SellerCategoryNames() + "."})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"crops":              s.Catalog.Search(c),
		"max_possible_price": ceiling,
		"active_filters":     catalog.ActiveFilterCount(c, ceiling),
	})
}

func (s *Server) suggestCrops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"suggestions": s.Catalog.Suggest(r.URL.Query().Get("q")),
	})
}

func (s *Server) getCrop(w http.ResponseWriter, r *http.Request) {
	crop, ok := s.Catalog.ByID(mux.Vars(r)["id"])
	if !ok {
		writeError(w, r, errNotFound)
		return
	}
	writeJSON(w, r, http.StatusOK, crop)
}

type registerRequest struct {
	Name              string `json:"name"`
	ContactNumber     string `json:"contact_number"`
	OTP               string `json:"otp"`
	GSTID             string `json:"gst_id"`
	BankAccountNumber string `json:"bank_account_number"`
	IFSC              string `json:"ifsc"`
	UPIID             string `json:"upi_id"`
}

// registerBuyer runs the whole wizard for one submitted form.
func (s *Server) registerBuyer(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	wiz := registration.New(s.Registration)
	steps := []func() error{
		wiz.Start,
		func() error { return wiz.SubmitPersonal(req.Name, req.ContactNumber) },
		func() error { return wiz.VerifyOTP(r.Context(), req.OTP) },
		func() error { return wiz.SubmitGST(req.GSTID) },
		func() error { return wiz.SubmitBank(req.BankAccountNumber, req.IFSC, req.UPIID) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			writeError(w, r, err)
			return
		}
	}
	user, _ := wiz.User()
	if err := s.Session.SetUser(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, user)
}

func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	u, ok := s.Session.User()
	if !ok {
		writeError(w, r, session.ErrNoUser)
	}
	return u, ok
}

func (s *Server) getBuyer(w http.ResponseWriter, r *http.Request) {
	if u, ok := s.currentUser(w, r); ok {
		writeJSON(w, r, http.StatusOK, u)
	}
}

type orderRequest struct {
	CropID    string `json:"crop_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	UseWallet bool   `json:"use_wallet"`
	PIN       string `json:"pin,omitempty"`
}

func (s *Server) quoteOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	crop, ok := s.Catalog.ByID(req.CropID)
	if !ok {
		writeError(w, r, errNotFound)
		return
	}
	b, err := pricing.Quote(crop, req.Quantity, user.WalletBalance, req.UseWallet)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"breakdown":    b,
		"decision":     b.Decision(),
		"installments": pricing.Installments(b, time.Now()),
	})
}

// placeOrder drives the payment flow from order summary to success in one
// request and applies the result to the session.
func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	crop, ok := s.Catalog.ByID(req.CropID)
	if !ok {
		writeError(w, r, errNotFound)
		return
	}

	flow := checkout.NewPayment(crop, user.WalletBalance)
	if err := flow.SetUseWallet(req.UseWallet); err != nil {
		writeError(w, r, err)
		return
	}
	if err := flow.SetQuantity(req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	if err := flow.Proceed(); err != nil {
		writeError(w, r, err)
		return
	}
	if flow.State() == checkout.AuthorizeMandate {
		if err := flow.Authorize(); err != nil {
			writeError(w, r, err)
			return
		}
		if err := flow.SubmitPIN(req.PIN); err != nil {
			writeError(w, r, err)
			return
		}
	}
	res, _ := flow.Result()

	order, err := s.Session.Apply(r.Context(), res.Finalization)
	if err != nil {
		writeError(w, r, err)
		return
	}
	balance := 0.0
	if u, ok := s.Session.User(); ok {
		balance = u.WalletBalance
	}
	writeJSON(w, r, http.StatusCreated, map[string]any{
		"order":          order,
		"breakdown":      res.Breakdown,
		"installments":   res.Installments,
		"wallet_balance": balance,
	})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{"orders": s.Session.Orders()})
}

func (s *Server) reviewOrder(w http.ResponseWriter, r *http.Request) {
	var req model.OrderReview
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	order, err := s.Session.AttachReview(r.Context(), mux.Vars(r)["id"], req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, order)
}

func (s *Server) getWallet(w http.ResponseWriter, r *http.Request) {
	if u, ok := s.currentUser(w, r); ok {
		writeJSON(w, r, http.StatusOK, map[string]float64{"balance": u.WalletBalance})
	}
}

type topUpRequest struct {
	Amount float64 `json:"amount"`
	PIN    string  `json:"pin"`
}

func (s *Server) topUpWallet(w http.ResponseWriter, r *http.Request) {
	var req topUpRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if _, ok := s.currentUser(w, r); !ok {
		return
	}
	flow := checkout.NewTopUp(req.Amount)
	for _, step := range []func() error{
		flow.Proceed,
		flow.Authorize,
		func() error { return flow.SubmitPIN(req.PIN) },
	} {
		if err := step(); err != nil {
			writeError(w, r, err)
			return
		}
	}
	delta, _ := flow.Delta()
	balance, err := s.Session.ApplyWalletDelta(r.Context(), delta, "topup")
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]float64{"added": delta, "balance": balance})
}
