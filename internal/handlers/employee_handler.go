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

type EmployeeHandler struct {
	Service *services.EmployeeService
}

func NewEmployeeHandler(s *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Service: s}
}

func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.ListEmployees(context.Background())
	if err != nil {
		serviceError(w, err, "Employee not found", "Failed to fetch employees")
		return
	}
	if employees == nil {
		employees = []*models.Employee{}
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	employee, err := h.Service.GetEmployee(context.Background(), id)
	if err != nil {
		serviceError(w, err, "Employee not found", "Failed to fetch employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employee, err := h.Service.CreateEmployee(context.Background(), &req)
	if err != nil {
		serviceError(w, err, "Employee not found", "Failed to create employee")
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	employee, err := h.Service.UpdateEmployee(context.Background(), id, &req)
	if err != nil {
		serviceError(w, err, "Employee not found", "Failed to update employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteEmployee(context.Background(), id); err != nil {
		serviceError(w, err, "Employee not found", "Failed to delete employee")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}

// GetWorkload returns the capacity view for one employee.
func (h *EmployeeHandler) GetWorkload(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	workload, err := h.Service.GetWorkload(context.Background(), id)
	if err != nil {
		serviceError(w, err, "Employee not found", "Failed to fetch employee workload")
		return
	}
	writeJSON(w, http.StatusOK, workload)
}
