package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"usermgmt-backend/internal/auth"
	"usermgmt-backend/internal/models"
	"usermgmt-backend/internal/storage"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// CreateUser registers a new account
// @Summary Create user
// @Description Creates a user in the given company with the given role
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserInput true "New user"
// @Success 201 {object} models.Response "Created user"
// @Failure 400 {object} models.Response "Validation failed, duplicate email, or unknown role/company"
// @Security BearerAuth
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input models.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input.Email = normalizeEmail(input.Email)
	if errs := validateCreateUser(input); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	exists, err := h.store.EmailExists(r.Context(), input.Email)
	if err != nil {
		respondInternal(w, "create user: check email", err)
		return
	}
	if exists {
		respondError(w, http.StatusBadRequest, "Email already exists")
		return
	}

	roleOK, err := h.store.RoleExists(r.Context(), input.RoleID)
	if err != nil {
		respondInternal(w, "create user: check role", err)
		return
	}
	if !roleOK {
		respondError(w, http.StatusBadRequest, "Invalid role ID")
		return
	}

	companyOK, err := h.store.CompanyExists(r.Context(), input.CompanyID)
	if err != nil {
		respondInternal(w, "create user: check company", err)
		return
	}
	if !companyOK {
		respondError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		respondInternal(w, "create user: hash password", err)
		return
	}

	var createdBy *int
	if caller, ok := auth.UserFromContext(r.Context()); ok {
		createdBy = &caller.ID
	}

	profile, err := h.store.CreateUser(r.Context(), input, hash, createdBy)
	if err != nil {
		// The unique constraint catches the race the pre-check cannot.
		if errors.Is(err, storage.ErrEmailTaken) {
			respondError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		respondInternal(w, "create user: insert", err)
		return
	}

	respondOK(w, http.StatusCreated, "User created successfully", profile)
}

// GetUsers lists users in the caller's company
// @Summary List users
// @Description Lists non-deleted users of the caller's company with pagination
// @Tags users
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size 1-100 (default 10)"
// @Success 200 {object} models.Response "Users and pagination"
// @Failure 400 {object} models.Response "Invalid pagination or user context"
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok || caller.CompanyID == 0 {
		respondError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	page, limit, errs := parsePagination(r)
	if len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	total, err := h.store.CountUsers(r.Context(), caller.CompanyID)
	if err != nil {
		respondInternal(w, "list users: count", err)
		return
	}

	offset := (page - 1) * limit
	users, err := h.store.ListUsers(r.Context(), caller.CompanyID, limit, offset)
	if err != nil {
		respondInternal(w, "list users: select", err)
		return
	}

	totalPages := (total + limit - 1) / limit

	respondOK(w, http.StatusOK, "Users retrieved successfully", map[string]interface{}{
		"users": users,
		"pagination": models.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalUsers:  total,
			Limit:       limit,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	})
}

// GetCurrentUser returns the caller's own profile
// @Summary Get current user
// @Description Returns the authenticated caller's profile
// @Tags users
// @Produce json
// @Success 200 {object} models.Response "User profile"
// @Failure 404 {object} models.Response "User not found"
// @Security BearerAuth
// @Router /users/me [get]
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.store.GetUserProfile(r.Context(), caller.ID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondInternal(w, "get current user", err)
		return
	}

	respondOK(w, http.StatusOK, "User profile retrieved successfully", profile)
}

func parsePagination(r *http.Request) (page, limit int, errs []models.FieldError) {
	page, limit = defaultPage, defaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			errs = append(errs, models.FieldError{Field: "page", Message: "Page must be a positive integer"})
		} else {
			page = value
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 || value > maxLimit {
			errs = append(errs, models.FieldError{Field: "limit", Message: "Limit must be between 1 and 100"})
		} else {
			limit = value
		}
	}

	return page, limit, errs
}
