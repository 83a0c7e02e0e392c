package services

import (
	"context"
	"testing"

	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"
)

func newWorkloadFixture(t *testing.T) (*EmployeeService, *TaskService, *models.Client, *models.Employee) {
	t.Helper()
	db := newTestDB(t)

	taskService, client := newTaskFixture(t, db)
	employee := createTestEmployee(t, db, "EMP600")
	employeeService := NewEmployeeService(
		repositories.NewEmployeeRepository(db),
		repositories.NewTaskRepository(db),
	)
	return employeeService, taskService, client, employee
}

func createAssignedTask(t *testing.T, tasks *TaskService, clientID, employeeID, hours int) *models.TaskDetail {
	t.Helper()
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, &models.CreateTaskRequest{
		ClientID: clientID, Name: "Workload item", TaskType: "quarterly_admin", PlannedHours: 99,
		StartDate: "2025-01-01", EndDate: "2025-01-31",
	})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	detail, err := tasks.AssignEmployee(ctx, task.ID, &models.AssignEmployeeRequest{
		EmployeeID: employeeID, AssignedHours: hours,
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	return detail
}

func TestWorkloadSumsAssignmentHours(t *testing.T) {
	employees, tasks, client, employee := newWorkloadFixture(t)

	createAssignedTask(t, tasks, client.ID, employee.ID, 50)
	createAssignedTask(t, tasks, client.ID, employee.ID, 30)

	workload, err := employees.GetWorkload(context.Background(), employee.ID)
	if err != nil {
		t.Fatalf("workload failed: %v", err)
	}

	if workload.TotalAssignedHours != 80 {
		t.Errorf("expected 80 assigned hours, got %d", workload.TotalAssignedHours)
	}
	if workload.AvailableCapacity != 80 {
		t.Errorf("expected 80 available, got %d", workload.AvailableCapacity)
	}
	if len(workload.Tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(workload.Tasks))
	}
}

func TestWorkloadIgnoresPlannedHoursWithoutBooking(t *testing.T) {
	employees, tasks, client, employee := newWorkloadFixture(t)
	ctx := context.Background()

	// Primary assignee set at creation, but no assignment-table booking.
	_, err := tasks.CreateTask(ctx, &models.CreateTaskRequest{
		ClientID: client.ID, Name: "Unbooked", TaskType: "annual_accounts", PlannedHours: 120,
		StartDate: "2025-02-01", EndDate: "2025-02-28",
		AssignedEmployeeID: &employee.ID,
	})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	workload, err := employees.GetWorkload(ctx, employee.ID)
	if err != nil {
		t.Fatalf("workload failed: %v", err)
	}
	if workload.TotalAssignedHours != 0 {
		t.Errorf("expected 0 assigned hours, got %d", workload.TotalAssignedHours)
	}
	if workload.AvailableCapacity != 160 {
		t.Errorf("expected full capacity available, got %d", workload.AvailableCapacity)
	}
	if len(workload.Tasks) != 1 {
		t.Fatalf("expected the task to be listed, got %d", len(workload.Tasks))
	}
	if workload.Tasks[0].AssignedHours != nil {
		t.Errorf("expected nil assigned hours, got %d", *workload.Tasks[0].AssignedHours)
	}
}

func TestWorkloadAllowsOverallocation(t *testing.T) {
	employees, tasks, client, employee := newWorkloadFixture(t)

	createAssignedTask(t, tasks, client.ID, employee.ID, 200)

	workload, err := employees.GetWorkload(context.Background(), employee.ID)
	if err != nil {
		t.Fatalf("workload failed: %v", err)
	}
	if workload.AvailableCapacity != -40 {
		t.Errorf("expected -40 available, got %d", workload.AvailableCapacity)
	}
}

func TestWorkloadExcludesFinishedTasks(t *testing.T) {
	employees, tasks, client, employee := newWorkloadFixture(t)
	ctx := context.Background()

	detail := createAssignedTask(t, tasks, client.ID, employee.ID, 40)

	_, err := tasks.UpdateTask(ctx, detail.ID, &models.UpdateTaskRequest{
		TaskID: detail.TaskID, Name: detail.Name, TaskType: detail.TaskType,
		Status: "completed", PlannedHours: detail.PlannedHours, ActualHours: 38,
		StartDate: detail.StartDate, EndDate: detail.EndDate,
		AssignedEmployeeID: detail.AssignedEmployeeID, Priority: detail.Priority,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	workload, err := employees.GetWorkload(ctx, employee.ID)
	if err != nil {
		t.Fatalf("workload failed: %v", err)
	}
	if len(workload.Tasks) != 0 {
		t.Errorf("expected completed task to be excluded, got %d tasks", len(workload.Tasks))
	}
	if workload.TotalAssignedHours != 0 {
		t.Errorf("expected 0 assigned hours, got %d", workload.TotalAssignedHours)
	}
}

func TestCreateEmployeeDefaultCapacity(t *testing.T) {
	db := newTestDB(t)
	service := NewEmployeeService(
		repositories.NewEmployeeRepository(db),
		repositories.NewTaskRepository(db),
	)

	employee, err := service.CreateEmployee(context.Background(), &models.CreateEmployeeRequest{
		EmployeeNumber: "EMP601", Name: "Default Capacity",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if employee.CapacityHours != 160 {
		t.Errorf("expected default capacity 160, got %d", employee.CapacityHours)
	}
}
