package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

// exportColumn pairs a header with its sheet width, mirroring the column
// layout the planning UI uses for its own spreadsheet downloads.
type exportColumn struct {
	header string
	width  float64
}

type ExportService struct {
	Tasks     *repositories.TaskRepository
	Clients   *repositories.ClientRepository
	Employees *repositories.EmployeeRepository
	Workload  *EmployeeService
}

func NewExportService(
	tasks *repositories.TaskRepository,
	clients *repositories.ClientRepository,
	employees *repositories.EmployeeRepository,
	workload *EmployeeService,
) *ExportService {
	return &ExportService{
		Tasks:     tasks,
		Clients:   clients,
		Employees: employees,
		Workload:  workload,
	}
}

// writeSheet fills a single-sheet workbook with the given columns and rows.
func writeSheet(sheetName string, columns []exportColumn, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return nil, err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TasksXLSX exports the filtered task list as a spreadsheet.
func (s *ExportService) TasksXLSX(ctx context.Context, filter models.TaskFilter) ([]byte, error) {
	tasks, err := s.Tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	columns := []exportColumn{
		{"Task ID", 10}, {"Task Name", 30}, {"Company", 25}, {"Type", 15},
		{"Status", 12}, {"Priority", 10}, {"Assigned To", 20},
		{"Planned Hours", 12}, {"Actual Hours", 12},
		{"Start Date", 12}, {"End Date", 12}, {"Description", 40},
	}

	rows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []any{
			t.TaskID, t.Name, t.CompanyName, t.TaskType,
			t.Status, t.Priority, t.AssignedEmployeeName,
			t.PlannedHours, t.ActualHours,
			t.StartDate, t.EndDate, t.Description,
		})
	}
	return writeSheet("Tasks", columns, rows)
}

// ClientsXLSX exports the active client list as a spreadsheet.
func (s *ExportService) ClientsXLSX(ctx context.Context) ([]byte, error) {
	clients, err := s.Clients.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := []exportColumn{
		{"Client ID", 12}, {"Company Name", 30}, {"Contact Person", 20},
		{"Phone", 15}, {"Email", 25}, {"Industry", 20},
		{"Status", 10}, {"Address", 35},
	}

	rows := make([][]any, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []any{
			c.ClientID, c.CompanyName, c.ContactPerson,
			c.Phone, c.Email, c.Industry, c.Status, c.Address,
		})
	}
	return writeSheet("Clients", columns, rows)
}

// EmployeesXLSX exports the active employee list as a spreadsheet.
func (s *ExportService) EmployeesXLSX(ctx context.Context) ([]byte, error) {
	employees, err := s.Employees.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := []exportColumn{
		{"Employee Number", 15}, {"Name", 25}, {"Email", 25},
		{"Department", 20}, {"Capacity Hours", 15}, {"Active", 10},
	}

	rows := make([][]any, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []any{
			e.EmployeeNumber, e.Name, e.Email,
			e.Department, e.CapacityHours, e.IsActive,
		})
	}
	return writeSheet("Employees", columns, rows)
}

// TasksCSV exports the filtered task list as CSV with the same columns as
// the spreadsheet export.
func (s *ExportService) TasksCSV(ctx context.Context, filter models.TaskFilter) ([]byte, error) {
	tasks, err := s.Tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"Task ID", "Task Name", "Company", "Type", "Status", "Priority",
		"Assigned To", "Planned Hours", "Actual Hours", "Start Date", "End Date", "Description",
	})
	for _, t := range tasks {
		w.Write([]string{
			t.TaskID, t.Name, t.CompanyName, t.TaskType, t.Status, t.Priority,
			t.AssignedEmployeeName,
			fmt.Sprintf("%d", t.PlannedHours),
			fmt.Sprintf("%d", t.ActualHours),
			t.StartDate, t.EndDate, t.Description,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WorkloadPDF renders a capacity overview with one table row per active
// employee showing booked hours and remaining capacity.
func (s *ExportService) WorkloadPDF(ctx context.Context) ([]byte, error) {
	employees, err := s.Employees.List(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "PlannComm - Team Workload Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(30, 7, "Number", "1", 0, "C", true, 0, "")
	pdf.CellFormat(55, 7, "Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Capacity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Assigned", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Available", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, e := range employees {
		workload, err := s.Workload.GetWorkload(ctx, e.ID)
		if err != nil {
			return nil, err
		}

		if workload.AvailableCapacity < 0 {
			pdf.SetFillColor(255, 200, 200) // Light red for overallocated
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		name := e.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		pdf.CellFormat(30, 6, e.EmployeeNumber, "1", 0, "C", true, 0, "")
		pdf.CellFormat(55, 6, name, "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d h", e.CapacityHours), "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d h", workload.TotalAssignedHours), "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d h", workload.AvailableCapacity), "1", 1, "C", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
