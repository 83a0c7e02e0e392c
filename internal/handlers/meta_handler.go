package handlers

import (
	"net/http"

	"github.com/SR3DR3/planncomm-v2/internal/models"
)

// MetaHandler serves the fixed enumerations the planning UI builds its
// selectors from.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) GetTaskTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.TaskTypes)
}

func (h *MetaHandler) GetTaskStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.TaskStatuses)
}
