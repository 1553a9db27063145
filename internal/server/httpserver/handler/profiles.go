// Package handler provides HTTP request handlers for idmint.
package handler

import "net/http"

// handleListProfiles handles GET /v1/profiles.
func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := h.mintSvc.Profiles()

	out := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = ProfileResponse{
			Name:      p.Name,
			Length:    p.Length,
			Algorithm: p.Algorithm,
		}
	}

	h.writeJSON(w, r, http.StatusOK, ListProfilesResponse{Profiles: out})
}

// handleGetProfile handles GET /v1/profiles/{name}.
func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.mintSvc.Describe(r.PathValue("name"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, ProfileResponse{
		Name:      p.Name,
		Length:    p.Length,
		Algorithm: p.Algorithm,
	})
}
