package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/SR3DR3/planncomm-v2/internal/database"
	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.NewMigrator(db).RunMigrations(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func newTaskFixture(t *testing.T, db *sql.DB) (*TaskService, *models.Client) {
	t.Helper()

	clients := repositories.NewClientRepository(db)
	client := &models.Client{ClientID: "CL500", CompanyName: "Fixture BV"}
	if err := clients.Create(context.Background(), client); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	service := NewTaskService(
		repositories.NewTaskRepository(db),
		repositories.NewAssignmentRepository(db),
	)
	return service, client
}

func createTestEmployee(t *testing.T, db *sql.DB, number string) *models.Employee {
	t.Helper()

	repo := repositories.NewEmployeeRepository(db)
	e := &models.Employee{EmployeeNumber: number, Name: "Test " + number, CapacityHours: 160}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}
	return e
}

func TestCreateTaskAllocatesSequentialIDs(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)
	ctx := context.Background()

	for i, want := range []string{"TASK001", "TASK002", "TASK003"} {
		task, err := service.CreateTask(ctx, &models.CreateTaskRequest{
			ClientID: client.ID, Name: "Filing", TaskType: "btw_icp", PlannedHours: 4,
			StartDate: "2025-01-01", EndDate: "2025-01-31",
		})
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if task.TaskID != want {
			t.Errorf("create %d: expected %s, got %s", i, want, task.TaskID)
		}
	}
}

func TestCreateTaskReallocatesTakenID(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)
	ctx := context.Background()

	first, err := service.CreateTask(ctx, &models.CreateTaskRequest{
		ClientID: client.ID, Name: "First", TaskType: "advisory", PlannedHours: 2,
		StartDate: "2025-01-01", EndDate: "2025-01-10",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second, err := service.CreateTask(ctx, &models.CreateTaskRequest{
		TaskID:   first.TaskID, // deliberately taken
		ClientID: client.ID, Name: "Second", TaskType: "advisory", PlannedHours: 2,
		StartDate: "2025-01-01", EndDate: "2025-01-10",
	})
	if err != nil {
		t.Fatalf("create with taken id failed: %v", err)
	}
	if second.TaskID == first.TaskID {
		t.Fatalf("duplicate task id %s allocated", second.TaskID)
	}
	if second.TaskID != "TASK002" {
		t.Errorf("expected TASK002, got %s", second.TaskID)
	}
}

func TestCreateTaskKeepsFreeCustomID(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)

	task, err := service.CreateTask(context.Background(), &models.CreateTaskRequest{
		TaskID:   "TASK042",
		ClientID: client.ID, Name: "Custom", TaskType: "audit", PlannedHours: 10,
		StartDate: "2025-05-01", EndDate: "2025-05-31",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.TaskID != "TASK042" {
		t.Errorf("expected supplied id to be kept, got %s", task.TaskID)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)

	task, err := service.CreateTask(context.Background(), &models.CreateTaskRequest{
		ClientID: client.ID, Name: "Defaults", TaskType: "salaries", PlannedHours: 6,
		StartDate: "2025-02-01", EndDate: "2025-02-28",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Status != "planned" {
		t.Errorf("expected status planned, got %s", task.Status)
	}
	if task.Priority != "medium" {
		t.Errorf("expected priority medium, got %s", task.Priority)
	}
	if task.ActualHours != 0 {
		t.Errorf("expected 0 actual hours, got %d", task.ActualHours)
	}
	if task.CompanyName != "Fixture BV" {
		t.Errorf("expected joined company name, got %q", task.CompanyName)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)

	_, err := service.CreateTask(context.Background(), &models.CreateTaskRequest{
		ClientID: client.ID, TaskType: "audit", PlannedHours: 5,
	})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAssignEmployeeSyncsBothViews(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)
	employee := createTestEmployee(t, db, "EMP500")
	ctx := context.Background()

	task, err := service.CreateTask(ctx, &models.CreateTaskRequest{
		ClientID: client.ID, Name: "Assignable", TaskType: "payroll", PlannedHours: 12,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	detail, err := service.AssignEmployee(ctx, task.ID, &models.AssignEmployeeRequest{
		EmployeeID: employee.ID, AssignedHours: 40,
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if detail.AssignedEmployeeID == nil || *detail.AssignedEmployeeID != employee.ID {
		t.Fatal("task row not pointing at assigned employee")
	}
	if len(detail.Assignments) != 1 {
		t.Fatalf("expected 1 assignment row, got %d", len(detail.Assignments))
	}
	if detail.Assignments[0].AssignedHours != 40 {
		t.Errorf("expected 40 assigned hours, got %d", detail.Assignments[0].AssignedHours)
	}

	// Re-assigning the same employee replaces the booking instead of adding.
	detail, err = service.AssignEmployee(ctx, task.ID, &models.AssignEmployeeRequest{
		EmployeeID: employee.ID, AssignedHours: 60,
	})
	if err != nil {
		t.Fatalf("re-assign failed: %v", err)
	}
	if len(detail.Assignments) != 1 {
		t.Fatalf("expected booking to be replaced, got %d rows", len(detail.Assignments))
	}
	if detail.Assignments[0].AssignedHours != 60 {
		t.Errorf("expected 60 assigned hours, got %d", detail.Assignments[0].AssignedHours)
	}
}

func TestAssignEmployeeValidation(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, &models.CreateTaskRequest{
		ClientID: client.ID, Name: "Unassigned", TaskType: "audit", PlannedHours: 3,
		StartDate: "2025-04-01", EndDate: "2025-04-30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = service.AssignEmployee(ctx, task.ID, &models.AssignEmployeeRequest{AssignedHours: 10})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteTaskRemovesAssignments(t *testing.T) {
	db := newTestDB(t)
	service, client := newTaskFixture(t, db)
	employee := createTestEmployee(t, db, "EMP501")
	ctx := context.Background()

	task, err := service.CreateTask(ctx, &models.CreateTaskRequest{
		ClientID: client.ID, Name: "Doomed", TaskType: "secretarial", PlannedHours: 2,
		StartDate: "2025-06-01", EndDate: "2025-06-30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := service.AssignEmployee(ctx, task.ID, &models.AssignEmployeeRequest{
		EmployeeID: employee.ID, AssignedHours: 8,
	}); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	if err := service.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := service.GetTask(ctx, task.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected ErrNoRows after delete, got %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM task_assignments WHERE task_id = ?", task.ID).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no assignment rows after delete, got %d", count)
	}
}
