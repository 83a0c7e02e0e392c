package repositories

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/SR3DR3/planncomm-v2/internal/database"
	"github.com/SR3DR3/planncomm-v2/internal/models"
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

func createTestClient(t *testing.T, repo *ClientRepository, clientID, company string) *models.Client {
	t.Helper()

	c := &models.Client{ClientID: clientID, CompanyName: company}
	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestTaskFilterSQLNoCriteria(t *testing.T) {
	clause, args := taskFilterSQL(models.TaskFilter{})
	if clause != " WHERE 1=1" {
		t.Fatalf("expected bare clause, got %q", clause)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestTaskFilterSQLMonthWindow(t *testing.T) {
	clause, args := taskFilterSQL(models.TaskFilter{Month: 2, Year: 2025})

	if !strings.Contains(clause, "t.start_date <= ? AND t.end_date >= ?") {
		t.Fatalf("expected overlap predicate in clause, got %q", clause)
	}

	want := []string{"2025-02-31", "2025-02-01", "2025-02-01", "2025-02-31"}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i, w := range want {
		if args[i] != w {
			t.Errorf("arg %d: expected %q, got %v", i, w, args[i])
		}
	}
}

func TestTaskFilterSQLYearWindow(t *testing.T) {
	_, args := taskFilterSQL(models.TaskFilter{Year: 2025})

	want := []string{"2025-12-31", "2025-01-01", "2025-01-01", "2025-12-31"}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), args)
	}
	for i, w := range want {
		if args[i] != w {
			t.Errorf("arg %d: expected %q, got %v", i, w, args[i])
		}
	}
}

func TestTaskFilterSQLCombined(t *testing.T) {
	clause, args := taskFilterSQL(models.TaskFilter{ClientID: "3", Status: "planned", Month: 1, Year: 2025})

	if !strings.Contains(clause, "t.client_id = ?") || !strings.Contains(clause, "t.status = ?") {
		t.Fatalf("expected client and status criteria, got %q", clause)
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %v", args)
	}
	if args[0] != "3" || args[1] != "planned" {
		t.Fatalf("expected criteria args before window args, got %v", args)
	}
}

func TestListMonthOverlap(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clients := NewClientRepository(db)
	tasks := NewTaskRepository(db)

	client := createTestClient(t, clients, "CL900", "Overlap BV")

	spanning := &models.Task{
		TaskID: "TASK801", ClientID: client.ID, Name: "Month-spanning filing",
		TaskType: "btw_icp", PlannedHours: 8, Priority: "medium",
		StartDate: "2025-01-28", EndDate: "2025-02-03",
	}
	if err := tasks.Create(ctx, spanning); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	for _, tc := range []struct {
		month int
		want  bool
	}{
		{1, true},
		{2, true},
		{3, false},
	} {
		list, err := tasks.List(ctx, models.TaskFilter{Month: tc.month, Year: 2025})
		if err != nil {
			t.Fatalf("list failed for month %d: %v", tc.month, err)
		}
		found := false
		for _, task := range list {
			if task.TaskID == "TASK801" {
				found = true
			}
		}
		if found != tc.want {
			t.Errorf("month %d: expected found=%v, got %v", tc.month, tc.want, found)
		}
	}
}

func TestListOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clients := NewClientRepository(db)
	tasks := NewTaskRepository(db)

	client := createTestClient(t, clients, "CL901", "Ordering BV")

	later := &models.Task{
		TaskID: "TASK810", ClientID: client.ID, Name: "Later start",
		TaskType: "salaries", PlannedHours: 4, Priority: "medium",
		StartDate: "2025-03-10", EndDate: "2025-03-20",
	}
	earlier := &models.Task{
		TaskID: "TASK811", ClientID: client.ID, Name: "Earlier start",
		TaskType: "salaries", PlannedHours: 4, Priority: "medium",
		StartDate: "2025-03-01", EndDate: "2025-03-05",
	}
	for _, task := range []*models.Task{later, earlier} {
		if err := tasks.Create(ctx, task); err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
	}

	list, err := tasks.List(ctx, models.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(list))
	}
	if list[0].TaskID != "TASK811" {
		t.Errorf("expected earliest start date first, got %s", list[0].TaskID)
	}
}

func TestSoftDeletedClientHiddenFromList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clients := NewClientRepository(db)

	client := createTestClient(t, clients, "CL902", "Departed BV")
	if err := clients.SoftDelete(ctx, client.ID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	list, err := clients.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, c := range list {
		if c.ID == client.ID {
			t.Fatal("soft-deleted client still listed")
		}
	}

	// Direct fetch keeps working for historical references.
	got, err := clients.Get(ctx, client.ID)
	if err != nil {
		t.Fatalf("get after soft delete failed: %v", err)
	}
	if got.Status != "inactive" {
		t.Errorf("expected status inactive, got %s", got.Status)
	}
}

func TestMaxTaskNumberIgnoresForeignFormats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	clients := NewClientRepository(db)
	tasks := NewTaskRepository(db)

	client := createTestClient(t, clients, "CL903", "Numbering BV")

	for _, id := range []string{"TASK007", "LEGACY-1", "TASK012"} {
		task := &models.Task{
			TaskID: id, ClientID: client.ID, Name: "n",
			TaskType: "advisory", PlannedHours: 1, Priority: "low",
			StartDate: "2025-01-01", EndDate: "2025-01-02",
		}
		if err := tasks.Create(ctx, task); err != nil {
			t.Fatalf("failed to create task %s: %v", id, err)
		}
	}

	max, err := tasks.MaxTaskNumber(ctx)
	if err != nil {
		t.Fatalf("max task number failed: %v", err)
	}
	if max != 12 {
		t.Errorf("expected max 12, got %d", max)
	}
}
