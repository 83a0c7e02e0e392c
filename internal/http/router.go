package http

import (
	"github.com/SR3DR3/planncomm-v2/internal/handlers"
	"github.com/SR3DR3/planncomm-v2/internal/realtime"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	employeeHandler *handlers.EmployeeHandler,
	taskHandler *handlers.TaskHandler,
	metaHandler *handlers.MetaHandler,
	exportHandler *handlers.ExportHandler,
	healthHandler *handlers.HealthHandler,
	monitoringHandler *handlers.MonitoringHandler,
	hub *realtime.Hub,
) *mux.Router {
	r := mux.NewRouter()

	// Health probes
	r.HandleFunc("/api/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/api/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Authentication (optional; no resource route requires a token)
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Employees
	employeesAPI := r.PathPrefix("/api/employees").Subrouter()
	employeesAPI.HandleFunc("", employeeHandler.ListEmployees).Methods("GET")
	employeesAPI.HandleFunc("", employeeHandler.CreateEmployee).Methods("POST")
	employeesAPI.HandleFunc("/{id}", employeeHandler.GetEmployee).Methods("GET")
	employeesAPI.HandleFunc("/{id}", employeeHandler.UpdateEmployee).Methods("PUT")
	employeesAPI.HandleFunc("/{id}", employeeHandler.DeleteEmployee).Methods("DELETE")
	employeesAPI.HandleFunc("/{id}/workload", employeeHandler.GetWorkload).Methods("GET")

	// Tasks. The meta routes must be registered before /{id} so "meta" is
	// not swallowed as an id.
	tasksAPI := r.PathPrefix("/api/tasks").Subrouter()
	tasksAPI.HandleFunc("/meta/task-types", metaHandler.GetTaskTypes).Methods("GET")
	tasksAPI.HandleFunc("/meta/statuses", metaHandler.GetTaskStatuses).Methods("GET")
	tasksAPI.HandleFunc("", taskHandler.ListTasks).Methods("GET")
	tasksAPI.HandleFunc("", taskHandler.CreateTask).Methods("POST")
	tasksAPI.HandleFunc("/{id}", taskHandler.GetTask).Methods("GET")
	tasksAPI.HandleFunc("/{id}", taskHandler.UpdateTask).Methods("PUT")
	tasksAPI.HandleFunc("/{id}", taskHandler.DeleteTask).Methods("DELETE")
	tasksAPI.HandleFunc("/{id}/assign", taskHandler.AssignEmployee).Methods("POST")

	// Exports
	exportsAPI := r.PathPrefix("/api/exports").Subrouter()
	exportsAPI.HandleFunc("/tasks.xlsx", exportHandler.TasksXLSX).Methods("GET")
	exportsAPI.HandleFunc("/tasks.csv", exportHandler.TasksCSV).Methods("GET")
	exportsAPI.HandleFunc("/clients.xlsx", exportHandler.ClientsXLSX).Methods("GET")
	exportsAPI.HandleFunc("/employees.xlsx", exportHandler.EmployeesXLSX).Methods("GET")
	exportsAPI.HandleFunc("/workload.pdf", exportHandler.WorkloadPDF).Methods("GET")

	// Monitoring
	r.HandleFunc("/api/monitoring/stats", monitoringHandler.GetStats).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Realtime update relay
	r.HandleFunc("/ws", hub.HandleWebSocket)

	return r
}
