// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/atomic/get-tentor/internal/utils"
)

const msgFavoriteAdded = "Favorite berhasil ditambahkan"

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	menteeID, err := pathID(r, "menteeId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	tentors, err := h.services.FavoriteService.List(r.Context(), menteeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tentors, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	menteeID, tentorID, err := favoritePair(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FavoriteService.Add(r.Context(), menteeID, tentorID); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, msgFavoriteAdded, http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	menteeID, tentorID, err := favoritePair(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FavoriteService.Remove(r.Context(), menteeID, tentorID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// favoritePair reads the ?menteeId=&tentorId= query pair.
func favoritePair(r *http.Request) (int64, int64, error) {
	menteeID, err := queryID(r, "menteeId")
	if err != nil {
		return 0, 0, err
	}
	tentorID, err := queryID(r, "tentorId")
	if err != nil {
		return 0, 0, err
	}
	return menteeID, tentorID, nil
}
