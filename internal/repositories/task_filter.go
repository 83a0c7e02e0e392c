package repositories

import (
	"fmt"

	"github.com/SR3DR3/planncomm-v2/internal/models"
)

// taskFilterSQL turns a TaskFilter into the WHERE fragment and arguments for
// the task list query. Kept separate from the repository so the predicate
// construction is testable without a database.
//
// The month/year window is matched with the overlap predicate
//
//	(start <= winEnd AND end >= winStart) OR (start >= winStart AND start <= winEnd)
//
// where the month window end is always day 31. Dates are YYYY-MM-DD strings
// compared lexicographically, so the literal 31 covers every real month end
// without overshooting into the next month.
func taskFilterSQL(f models.TaskFilter) (string, []any) {
	clause := " WHERE 1=1"
	var args []any

	if f.ClientID != "" {
		clause += " AND t.client_id = ?"
		args = append(args, f.ClientID)
	}
	if f.EmployeeID != "" {
		clause += " AND t.assigned_employee_id = ?"
		args = append(args, f.EmployeeID)
	}
	if f.Status != "" {
		clause += " AND t.status = ?"
		args = append(args, f.Status)
	}
	if f.TaskType != "" {
		clause += " AND t.task_type = ?"
		args = append(args, f.TaskType)
	}

	const overlap = " AND ((t.start_date <= ? AND t.end_date >= ?) OR (t.start_date >= ? AND t.start_date <= ?))"
	if f.Month != 0 && f.Year != 0 {
		winStart := fmt.Sprintf("%04d-%02d-01", f.Year, f.Month)
		winEnd := fmt.Sprintf("%04d-%02d-31", f.Year, f.Month)
		clause += overlap
		args = append(args, winEnd, winStart, winStart, winEnd)
	} else if f.Year != 0 {
		winStart := fmt.Sprintf("%04d-01-01", f.Year)
		winEnd := fmt.Sprintf("%04d-12-31", f.Year)
		clause += overlap
		args = append(args, winEnd, winStart, winStart, winEnd)
	}

	return clause, args
}
