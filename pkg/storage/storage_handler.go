package storage

import (
	"net/http"
)

type StorageHandler struct {
	service StorageService
}

func NewStorageHandler(service StorageService) *StorageHandler {
	return &StorageHandler{service: service}
}

// ClearAll wipes all stored data and responds with no content.
func (h *StorageHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAll(r.Context()); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
