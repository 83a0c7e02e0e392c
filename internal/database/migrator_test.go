package database

import (
	"context"
	"database/sql"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrationsCreatesSchema(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := NewMigrator(db).RunMigrations(ctx); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	for _, table := range []string{"users", "clients", "employees", "tasks", "task_assignments", "planning_periods"} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	m := NewMigrator(db)
	if err := m.RunMigrations(ctx); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := m.RunMigrations(ctx); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 recorded migration, got %d", count)
	}
}

func TestIsUniqueConstraint(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := NewMigrator(db).RunMigrations(ctx); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	insert := func() error {
		_, err := db.ExecContext(ctx,
			"INSERT INTO clients (client_id, company_name) VALUES ('CL001', 'Dup BV')")
		return err
	}
	if err := insert(); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := insert()
	if err == nil {
		t.Fatal("expected unique constraint violation")
	}
	if !IsUniqueConstraint(err) {
		t.Errorf("expected IsUniqueConstraint to match, got %v", err)
	}
	if IsUniqueConstraint(sql.ErrNoRows) {
		t.Error("unrelated error matched as unique constraint")
	}
}
