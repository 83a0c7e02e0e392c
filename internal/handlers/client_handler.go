package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/services"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(s *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: s}
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.ListClients(context.Background())
	if err != nil {
		serviceError(w, err, "Client not found", "Failed to fetch clients")
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	client, err := h.Service.GetClient(context.Background(), id)
	if err != nil {
		serviceError(w, err, "Client not found", "Failed to fetch client")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.Service.CreateClient(context.Background(), &req)
	if err != nil {
		serviceError(w, err, "Client not found", "Failed to create client")
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.Service.UpdateClient(context.Background(), id, &req)
	if err != nil {
		serviceError(w, err, "Client not found", "Failed to update client")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteClient(context.Background(), id); err != nil {
		serviceError(w, err, "Client not found", "Failed to delete client")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}
