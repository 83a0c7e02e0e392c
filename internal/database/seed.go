package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// SeedIfEmpty fills the database with illustrative fixture data the first
// time it starts on an empty store. Any existing tasks suppress seeding.
func SeedIfEmpty(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return fmt.Errorf("failed to count tasks: %w", err)
	}
	if count > 0 {
		log.Printf("[Seed] database already contains %d tasks, skipping seed", count)
		return nil
	}

	log.Println("[Seed] database is empty, seeding with sample data...")
	return seed(ctx, db)
}

type seedTask struct {
	taskID   string
	client   string
	name     string
	desc     string
	taskType string
	status   string
	planned  int
	actual   int
	start    string
	end      string
	emp      string
	priority string
}

func seed(ctx context.Context, db *sql.DB) error {
	// Clear in reverse dependency order so a partial previous seed cannot
	// leave orphans behind.
	for _, table := range []string{"task_assignments", "tasks", "employees", "clients"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	clients := [][]string{
		{"CL001", "TechCorp BV", "Jan Jansen", "+31 20 123 4567", "jan@techcorp.nl", "Technology"},
		{"CL002", "RetailPlus", "Marie Dubois", "+31 20 987 6543", "marie@retailplus.nl", "Retail"},
		{"CL003", "FinanceGroup", "Peter de Vries", "+31 20 555 1234", "peter@financegroup.nl", "Financial Services"},
		{"CL004", "Manufacturing Inc", "Anna Schmidt", "+31 20 777 8888", "anna@manufacturing.nl", "Manufacturing"},
		{"CL005", "Consulting Partners", "Mark Johnson", "+31 20 333 4444", "mark@consulting.nl", "Consulting"},
		{"CL006", "Healthcare Solutions", "Dr. Elena Martinez", "+31 20 111 2222", "elena@healthcare.nl", "Healthcare"},
		{"CL007", "Green Energy BV", "Thomas Green", "+31 20 444 5555", "thomas@greenenergy.nl", "Energy"},
		{"CL008", "Logistics Express", "Sophie van Berg", "+31 20 666 7777", "sophie@logistics.nl", "Logistics"},
		{"CL009", "Real Estate Holdings", "Robert Brown", "+31 20 888 9999", "robert@realestate.nl", "Real Estate"},
		{"CL010", "Digital Marketing Pro", "Lisa Anderson", "+31 20 222 3333", "lisa@digitalmarketing.nl", "Marketing"},
		{"CL011", "Construction Masters", "Paul de Groot", "+31 20 555 6666", "paul@construction.nl", "Construction"},
		{"CL012", "Food & Beverage Co", "Maria Rodriguez", "+31 20 777 1111", "maria@foodbev.nl", "Food Industry"},
	}
	for _, c := range clients {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO clients (client_id, company_name, contact_person, phone, email, industry)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c[0], c[1], c[2], c[3], c[4], c[5]); err != nil {
			return fmt.Errorf("failed to insert client %s: %w", c[0], err)
		}
	}

	employees := [][]string{
		{"EMP001", "Sarah van der Berg", "sarah@accountancy.nl", "Audit"},
		{"EMP002", "Michael Rossi", "michael@accountancy.nl", "Tax"},
		{"EMP003", "Lisa Chen", "lisa@accountancy.nl", "Audit"},
		{"EMP004", "David Thompson", "david@accountancy.nl", "Financial Reporting"},
		{"EMP005", "Emma Wilson", "emma@accountancy.nl", "Tax"},
		{"EMP006", "Johan Bakker", "johan@accountancy.nl", "Advisory"},
		{"EMP007", "Natalie van Dijk", "natalie@accountancy.nl", "Payroll"},
		{"EMP008", "Carlos Mendez", "carlos@accountancy.nl", "Audit"},
		{"EMP009", "Sophie Janssen", "sophie@accountancy.nl", "Tax"},
		{"EMP010", "Tim de Boer", "tim@accountancy.nl", "Financial Reporting"},
	}
	for _, e := range employees {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO employees (employee_number, name, email, department, capacity_hours)
			 VALUES (?, ?, ?, ?, 160)`,
			e[0], e[1], e[2], e[3]); err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e[0], err)
		}
	}

	clientIDs, err := lookupIDs(ctx, db, "SELECT client_id, id FROM clients")
	if err != nil {
		return err
	}
	employeeIDs, err := lookupIDs(ctx, db, "SELECT employee_number, id FROM employees")
	if err != nil {
		return err
	}

	tasks := []seedTask{
		{"TASK001", "CL001", "January Payroll Processing", "Monthly payroll for TechCorp", "salaries", "completed", 8, 8, "2025-01-01", "2025-01-31", "EMP007", "high"},
		{"TASK002", "CL002", "Q4 2024 BTW Filing", "Quarterly VAT return", "btw_icp", "completed", 6, 7, "2025-01-10", "2025-01-20", "EMP002", "high"},
		{"TASK003", "CL003", "Annual Accounts 2024 Prep", "Start preparation annual statements", "annual_accounts", "completed", 20, 22, "2025-01-15", "2025-01-31", "EMP001", "high"},
		{"TASK004", "CL004", "February Payroll", "Monthly payroll processing", "salaries", "completed", 8, 8, "2025-02-01", "2025-02-28", "EMP007", "high"},
		{"TASK005", "CL005", "Tax Advisory Consultation", "Quarterly tax planning", "advisory", "completed", 12, 10, "2025-02-10", "2025-02-20", "EMP006", "medium"},
		{"TASK006", "CL006", "Healthcare Compliance Audit", "Annual compliance review", "audit", "completed", 40, 42, "2025-02-01", "2025-02-28", "EMP003", "high"},
		{"TASK007", "CL007", "Q1 BTW/ICP Filing", "Quarterly VAT and ICP declaration", "btw_icp", "completed", 6, 6, "2025-03-25", "2025-04-20", "EMP002", "high"},
		{"TASK008", "CL008", "Quarterly Administration Q1", "Bookkeeping and reconciliation", "quarterly_admin", "completed", 16, 15, "2025-03-01", "2025-03-31", "EMP004", "medium"},
		{"TASK009", "CL001", "Annual Accounts 2024", "Finalize annual statements", "annual_accounts", "completed", 30, 28, "2025-03-15", "2025-04-30", "EMP001", "high"},
		{"TASK010", "CL009", "April Payroll", "Monthly payroll processing", "salaries", "completed", 8, 8, "2025-04-01", "2025-04-30", "EMP007", "high"},
		{"TASK011", "CL010", "Marketing Budget Review", "Advisory on cost structure", "advisory", "completed", 10, 12, "2025-04-10", "2025-04-25", "EMP006", "low"},
		{"TASK012", "CL011", "Secretarial Filings", "Chamber of commerce updates", "secretarial", "completed", 4, 4, "2025-05-05", "2025-05-12", "EMP009", "low"},
		{"TASK013", "CL012", "May Payroll", "Monthly payroll processing", "salaries", "completed", 8, 8, "2025-05-01", "2025-05-31", "EMP007", "high"},
		{"TASK014", "CL003", "Mid-year Review", "Interim financial review", "audit", "completed", 24, 25, "2025-06-01", "2025-06-30", "EMP008", "medium"},
		{"TASK015", "CL002", "Q2 BTW Filing", "Quarterly VAT return", "btw_icp", "completed", 6, 6, "2025-06-25", "2025-07-20", "EMP005", "high"},
		{"TASK016", "CL004", "Quarterly Administration Q2", "Bookkeeping and reconciliation", "quarterly_admin", "completed", 16, 17, "2025-06-01", "2025-06-30", "EMP010", "medium"},
		{"TASK017", "CL005", "July Payroll", "Monthly payroll processing", "salaries", "completed", 8, 8, "2025-07-01", "2025-07-31", "EMP007", "high"},
		{"TASK018", "CL006", "Subsidy Application Support", "Healthcare innovation subsidy", "advisory", "in_progress", 14, 6, "2025-07-15", "2025-08-15", "EMP006", "medium"},
		{"TASK019", "CL007", "August Payroll", "Monthly payroll processing", "salaries", "in_progress", 8, 4, "2025-08-01", "2025-08-31", "EMP007", "high"},
		{"TASK020", "CL008", "Quarterly Administration Q3", "Bookkeeping and reconciliation", "quarterly_admin", "in_progress", 16, 5, "2025-08-01", "2025-09-30", "EMP004", "medium"},
		{"TASK021", "CL009", "Q3 BTW/ICP Filing", "Quarterly VAT and ICP declaration", "btw_icp", "planned", 6, 0, "2025-09-25", "2025-10-20", "EMP002", "high"},
		{"TASK022", "CL010", "October Payroll", "Monthly payroll processing", "salaries", "planned", 8, 0, "2025-10-01", "2025-10-31", "EMP007", "high"},
		{"TASK023", "CL011", "Year-end Planning Session", "Tax position optimization", "advisory", "planned", 12, 0, "2025-11-10", "2025-11-21", "EMP006", "medium"},
		{"TASK024", "CL012", "Annual Accounts 2025 Kickoff", "Collect year-end documentation", "annual_accounts", "planned", 20, 0, "2025-12-01", "2026-01-31", "EMP001", "medium"},
	}
	for _, t := range tasks {
		clientID, ok := clientIDs[t.client]
		if !ok {
			return fmt.Errorf("seed task %s references unknown client %s", t.taskID, t.client)
		}
		employeeID, ok := employeeIDs[t.emp]
		if !ok {
			return fmt.Errorf("seed task %s references unknown employee %s", t.taskID, t.emp)
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO tasks (task_id, client_id, name, description, task_type, status, priority,
			                    planned_hours, actual_hours, start_date, end_date, assigned_employee_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.taskID, clientID, t.name, t.desc, t.taskType, t.status, t.priority,
			t.planned, t.actual, t.start, t.end, employeeID); err != nil {
			return fmt.Errorf("failed to insert task %s: %w", t.taskID, err)
		}

		// Mirror the primary assignment into the assignment table so the
		// workload view has hours to sum for active tasks.
		if t.status == "planned" || t.status == "in_progress" {
			if _, err := db.ExecContext(ctx,
				`INSERT OR REPLACE INTO task_assignments (task_id, employee_id, assigned_hours, assigned_date)
				 SELECT id, ?, ?, CURRENT_DATE FROM tasks WHERE task_id = ?`,
				employeeID, t.planned, t.taskID); err != nil {
				return fmt.Errorf("failed to insert assignment for %s: %w", t.taskID, err)
			}
		}
	}

	log.Printf("[Seed] inserted %d clients, %d employees, %d tasks", len(clients), len(employees), len(tasks))
	return nil
}

func lookupIDs(ctx context.Context, db *sql.DB, query string) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]int)
	for rows.Next() {
		var key string
		var id int
		if err := rows.Scan(&key, &id); err != nil {
			return nil, err
		}
		ids[key] = id
	}
	return ids, rows.Err()
}
