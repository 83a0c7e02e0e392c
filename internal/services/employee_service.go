package services

import (
	"context"

	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"
)

const defaultCapacityHours = 160

type EmployeeService struct {
	Repo  *repositories.EmployeeRepository
	Tasks *repositories.TaskRepository
}

func NewEmployeeService(repo *repositories.EmployeeRepository, tasks *repositories.TaskRepository) *EmployeeService {
	return &EmployeeService{Repo: repo, Tasks: tasks}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.Repo.List(ctx)
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id int) (*models.Employee, error) {
	return s.Repo.Get(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error) {
	if req.EmployeeNumber == "" || req.Name == "" {
		return nil, ValidationError("Employee number and name are required")
	}

	capacity := req.CapacityHours
	if capacity == 0 {
		capacity = defaultCapacityHours
	}

	employee := &models.Employee{
		EmployeeNumber: req.EmployeeNumber,
		Name:           req.Name,
		Email:          req.Email,
		Department:     req.Department,
		CapacityHours:  capacity,
	}
	if err := s.Repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, employee.ID)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int, req *models.UpdateEmployeeRequest) (*models.Employee, error) {
	if req.EmployeeNumber == "" || req.Name == "" {
		return nil, ValidationError("Employee number and name are required")
	}

	employee, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.EmployeeNumber = req.EmployeeNumber
	employee.Name = req.Name
	employee.Email = req.Email
	employee.Department = req.Department
	if req.CapacityHours != 0 {
		employee.CapacityHours = req.CapacityHours
	}

	if err := s.Repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

// DeleteEmployee deactivates the employee. Tasks that reference them keep
// their assigned_employee_id.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int) error {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.SoftDelete(ctx, id)
}

// GetWorkload builds the capacity view for one employee. Only hours booked in
// the assignment table count toward the total; a task without an assignment
// row contributes zero regardless of its planned hours. Available capacity is
// allowed to go negative to expose overallocation.
func (s *EmployeeService) GetWorkload(ctx context.Context, id int) (*models.EmployeeWorkload, error) {
	employee, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.Tasks.ListForWorkload(ctx, id)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*models.WorkloadTask{}
	}

	total := 0
	for _, t := range tasks {
		if t.AssignedHours != nil {
			total += *t.AssignedHours
		}
	}

	return &models.EmployeeWorkload{
		Employee:           employee,
		Tasks:              tasks,
		TotalAssignedHours: total,
		AvailableCapacity:  employee.CapacityHours - total,
	}, nil
}
