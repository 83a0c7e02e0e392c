package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SR3DR3/planncomm-v2/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	Service *services.ExportService
}

func NewExportHandler(s *services.ExportService) *ExportHandler {
	return &ExportHandler{Service: s}
}

// sendFile writes the export with an attachment disposition. Filenames carry
// the current date, matching the spreadsheet downloads the UI produces.
func sendFile(w http.ResponseWriter, contentType, baseName, ext string, data []byte) {
	filename := fmt.Sprintf("%s_%s.%s", baseName, time.Now().Format("2006-01-02"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}

func (h *ExportHandler) TasksXLSX(w http.ResponseWriter, r *http.Request) {
	filter := taskFilterFromQuery(r.URL.Query())

	data, err := h.Service.TasksXLSX(context.Background(), filter)
	if err != nil {
		serviceError(w, err, "Task not found", "Failed to export tasks")
		return
	}
	sendFile(w, xlsxContentType, "tasks_export", "xlsx", data)
}

func (h *ExportHandler) ClientsXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.ClientsXLSX(context.Background())
	if err != nil {
		serviceError(w, err, "Client not found", "Failed to export clients")
		return
	}
	sendFile(w, xlsxContentType, "clients_export", "xlsx", data)
}

func (h *ExportHandler) EmployeesXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.EmployeesXLSX(context.Background())
	if err != nil {
		serviceError(w, err, "Employee not found", "Failed to export employees")
		return
	}
	sendFile(w, xlsxContentType, "employees_export", "xlsx", data)
}

func (h *ExportHandler) TasksCSV(w http.ResponseWriter, r *http.Request) {
	filter := taskFilterFromQuery(r.URL.Query())

	data, err := h.Service.TasksCSV(context.Background(), filter)
	if err != nil {
		serviceError(w, err, "Task not found", "Failed to export tasks")
		return
	}
	sendFile(w, "text/csv", "tasks_export", "csv", data)
}

func (h *ExportHandler) WorkloadPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.WorkloadPDF(context.Background())
	if err != nil {
		serviceError(w, err, "Employee not found", "Failed to export workload report")
		return
	}
	sendFile(w, "application/pdf", "workload_report", "pdf", data)
}
