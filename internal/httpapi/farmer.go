package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"cropconnect-backend/internal/farmer"
	"cropconnect-backend/internal/model"
)

func (s *Server) registerFarmer(w http.ResponseWriter, r *http.Request) {
	var req farmer.Registration
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	farmID, err := s.Accounts.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"farm_id": farmID})
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	FarmID   string `json:"farm_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) loginFarmer(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	f, err := s.Accounts.Login(r.Context(), req.Name, req.FarmID, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, f)
}

type passwordRequest struct {
	Current string `json:"current_password" validate:"required"`
	New     string `json:"new_password" validate:"required"`
}

func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.Accounts.ChangePassword(r.Context(), mux.Vars(r)["farmId"], req.Current, req.New); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Password updated successfully!"})
}

type profilePicRequest struct {
	ProfilePic string `json:"profile_pic" validate:"required"`
}

func (s *Server) updateProfilePic(w http.ResponseWriter, r *http.Request) {
	var req profilePicRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	f, err := s.Accounts.UpdateProfilePic(r.Context(), mux.Vars(r)["farmId"], req.ProfilePic)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, f)
}

// farm resolves {farmId} and rejects unregistered farms.
func (s *Server) farm(w http.ResponseWriter, r *http.Request) (string, bool) {
	farmID := mux.Vars(r)["farmId"]
	ok, err := s.Accounts.Exists(r.Context(), farmID)
	if err != nil {
		writeError(w, r, err)
		return "", false
	}
	if !ok {
		writeError(w, r, farmer.ErrUnknownFarm)
		return "", false
	}
	return farmID, true
}

func (s *Server) listListings(w http.ResponseWriter, r *http.Request) {
	farmID, ok := s.farm(w, r)
	if !ok {
		return
	}
	all, err := s.Listings.List(r.Context(), farmID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"crops": all})
}

func (s *Server) addListing(w http.ResponseWriter, r *http.Request) {
	farmID, ok := s.farm(w, r)
	if !ok {
		return
	}
	var in model.Listing
	if err := decode(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	added, err := s.Listings.Add(r.Context(), farmID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, added)
}

func (s *Server) updateListing(w http.ResponseWriter, r *http.Request) {
	farmID, ok := s.farm(w, r)
	if !ok {
		return
	}
	var in model.Listing
	if err := decode(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	in.ID = mux.Vars(r)["id"]
	updated, err := s.Listings.Update(r.Context(), farmID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteListing(w http.ResponseWriter, r *http.Request) {
	farmID, ok := s.farm(w, r)
	if !ok {
		return
	}
	if err := s.Listings.Delete(r.Context(), farmID, mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) sellerOrders(w http.ResponseWriter, r *http.Request) {
	if s.SellerOrders == nil {
		writeJSON(w, r, http.StatusOK, map[string]any{"orders": []model.OrderPlaced{}})
		return
	}
	orders, err := s.SellerOrders.SellerOrders(r.Context(), mux.Vars(r)["seller"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"orders": orders})
}
