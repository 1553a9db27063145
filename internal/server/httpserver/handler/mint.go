// Package handler provides HTTP request handlers for idmint.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sylvite/idmint-go/internal/core/service"
)

// handleMintKeys handles POST /v1/keys.
func (h *Handler) handleMintKeys(w http.ResponseWriter, r *http.Request) {
	var req MintKeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, http.StatusBadRequest, "IM-SYS-4000", "invalid request body")
		return
	}

	resp, err := h.mintSvc.Mint(r.Context(), &service.MintRequest{
		Profile: req.Profile,
		Count:   req.Count,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, MintKeysResponse{
		Profile: resp.Profile,
		Keys:    resp.Keys,
	})
}
