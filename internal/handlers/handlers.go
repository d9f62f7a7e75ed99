package handlers

import (
	"github.com/go-chi/chi/v5"

	"usermgmt-backend/internal/auth"
	"usermgmt-backend/internal/storage"
)

type Handler struct {
	store  storage.Store
	tokens *auth.TokenManager
}

func New(store storage.Store, tokens *auth.TokenManager) *Handler {
	return &Handler{store: store, tokens: tokens}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Get("/roles", h.GetRoles)

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.RequireAuth(h.tokens, h.store))
		r.Post("/", h.CreateUser)
		r.Get("/", h.GetUsers)
		r.Get("/me", h.GetCurrentUser)
	})
}
