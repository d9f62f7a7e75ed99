package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"usermgmt-backend/internal/auth"
	"usermgmt-backend/internal/storage"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and returns a session token
// @Summary User login
// @Description Authenticates user with email and password, returns a signed bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} models.Response "Token and user data"
// @Failure 400 {object} models.Response "Validation failed"
// @Failure 401 {object} models.Response "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = normalizeEmail(req.Email)
	if errs := validateCredentials(req.Email, req.Password); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Same message as a wrong password so callers cannot probe
			// which emails have accounts.
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondInternal(w, "login: lookup user", err)
		return
	}

	if user.IsDeleted {
		respondError(w, http.StatusUnauthorized, "Account has been deleted")
		return
	}
	if !user.IsActive {
		respondError(w, http.StatusUnauthorized, "Account is inactive")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.CompanyID, user.RoleID, user.Email)
	if err != nil {
		respondInternal(w, "login: issue token", err)
		return
	}

	respondOK(w, http.StatusOK, "Login successful", map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":           user.ID,
			"email":        user.Email,
			"first_name":   user.FirstName,
			"last_name":    user.LastName,
			"company_id":   user.CompanyID,
			"company_name": user.CompanyName,
			"role_id":      user.RoleID,
			"role_name":    user.RoleName,
		},
	})
}
