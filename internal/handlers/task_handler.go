package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/services"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	Service *services.TaskService
}

func NewTaskHandler(s *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: s}
}

// taskFilterFromQuery reads the optional list criteria. Malformed month or
// year values are treated as absent rather than rejected.
func taskFilterFromQuery(q url.Values) models.TaskFilter {
	f := models.TaskFilter{
		ClientID:   q.Get("client_id"),
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
		TaskType:   q.Get("task_type"),
	}
	if month, err := strconv.Atoi(q.Get("month")); err == nil {
		f.Month = month
	}
	if year, err := strconv.Atoi(q.Get("year")); err == nil {
		f.Year = year
	}
	return f
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter := taskFilterFromQuery(r.URL.Query())

	tasks, err := h.Service.ListTasks(context.Background(), filter)
	if err != nil {
		serviceError(w, err, "Task not found", "Failed to fetch tasks")
		return
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	task, err := h.Service.GetTask(context.Background(), id)
	if err != nil {
		serviceError(w, err, "Task not found", "Failed to fetch task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.Service.CreateTask(context.Background(), &req)
	if err != nil {
		serviceError(w, err, "Task not found", "Failed to create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.Service.UpdateTask(context.Background(), id, &req)
	if err != nil {
		serviceError(w, err, "Task not found", "Failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.DeleteTask(context.Background(), id); err != nil {
		serviceError(w, err, "Task not found", "Failed to delete task")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}

// AssignEmployee books hours for an employee on the task.
func (h *TaskHandler) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.AssignEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.Service.AssignEmployee(context.Background(), id, &req)
	if err != nil {
		serviceError(w, err, "Task not found", "Failed to assign employee")
		return
	}
	writeJSON(w, http.StatusOK, task)
}
