package handlers

import (
	"net/http"
)

// GetRoles lists all role definitions
// @Summary List roles
// @Description Returns every role ordered by id; roles are global, not per-tenant
// @Tags roles
// @Produce json
// @Success 200 {object} models.Response "Roles and total"
// @Router /roles [get]
func (h *Handler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.store.ListRoles(r.Context())
	if err != nil {
		respondInternal(w, "list roles", err)
		return
	}

	respondOK(w, http.StatusOK, "Roles retrieved successfully", map[string]interface{}{
		"roles": roles,
		"total": len(roles),
	})
}
