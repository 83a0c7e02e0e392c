package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SR3DR3/planncomm-v2/internal/database"
	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"
)

// createRetries bounds the identifier reallocation loop when two concurrent
// creates race for the same TASK### value.
const createRetries = 3

type TaskService struct {
	Repo        *repositories.TaskRepository
	Assignments *repositories.AssignmentRepository
}

func NewTaskService(repo *repositories.TaskRepository, assignments *repositories.AssignmentRepository) *TaskService {
	return &TaskService{Repo: repo, Assignments: assignments}
}

func (s *TaskService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	return s.Repo.List(ctx, filter)
}

// GetTask returns the task with its assignment rows.
func (s *TaskService) GetTask(ctx context.Context, id int) (*models.TaskDetail, error) {
	task, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := s.Assignments.ListByTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []*models.TaskAssignment{}
	}

	return &models.TaskDetail{Task: *task, Assignments: assignments}, nil
}

// allocateTaskID returns the next free TASK### identifier, one past the
// highest numeric suffix in use.
func (s *TaskService) allocateTaskID(ctx context.Context) (string, error) {
	max, err := s.Repo.MaxTaskNumber(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TASK%03d", max+1), nil
}

// CreateTask inserts a new task. A missing or already-taken task_id is
// replaced with a freshly allocated one. The task_id column carries a unique
// constraint, so when two creates race for the same number the loser gets a
// constraint error and retries with the next value.
func (s *TaskService) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (*models.Task, error) {
	if req.ClientID == 0 || req.Name == "" || req.TaskType == "" || req.PlannedHours == 0 {
		return nil, ValidationError("Client ID, name, task type, and planned hours are required")
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	taskID := strings.TrimSpace(req.TaskID)
	if taskID != "" {
		taken, err := s.Repo.TaskIDExists(ctx, taskID)
		if err != nil {
			return nil, err
		}
		if taken {
			taskID = ""
		}
	}

	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		if taskID == "" {
			allocated, err := s.allocateTaskID(ctx)
			if err != nil {
				return nil, err
			}
			taskID = allocated
		}

		task := &models.Task{
			TaskID:             taskID,
			ClientID:           req.ClientID,
			Name:               req.Name,
			Description:        req.Description,
			TaskType:           req.TaskType,
			PlannedHours:       req.PlannedHours,
			StartDate:          req.StartDate,
			EndDate:            req.EndDate,
			AssignedEmployeeID: req.AssignedEmployeeID,
			Priority:           priority,
		}
		err := s.Repo.Create(ctx, task)
		if err == nil {
			return s.Repo.Get(ctx, task.ID)
		}
		if !database.IsUniqueConstraint(err) {
			return nil, err
		}
		lastErr = err
		taskID = ""
	}
	return nil, lastErr
}

// UpdateTask replaces the full record.
func (s *TaskService) UpdateTask(ctx context.Context, id int, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TaskID != "" {
		task.TaskID = req.TaskID
	}
	task.Name = req.Name
	task.Description = req.Description
	task.TaskType = req.TaskType
	task.Status = req.Status
	task.PlannedHours = req.PlannedHours
	task.ActualHours = req.ActualHours
	task.StartDate = req.StartDate
	task.EndDate = req.EndDate
	task.AssignedEmployeeID = req.AssignedEmployeeID
	task.Priority = req.Priority

	if err := s.Repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

// DeleteTask removes the task and its assignment rows. Hard delete, unlike
// clients and employees.
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.Assignments.DeleteByTask(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}

// AssignEmployee books hours for an employee on a task. The assignment table
// row is upserted and the task's primary assignee is pointed at the same
// employee so both views stay in step.
func (s *TaskService) AssignEmployee(ctx context.Context, taskID int, req *models.AssignEmployeeRequest) (*models.TaskDetail, error) {
	if req.EmployeeID == 0 || req.AssignedHours == 0 {
		return nil, ValidationError("Employee ID and assigned hours are required")
	}

	if _, err := s.Repo.Get(ctx, taskID); err != nil {
		return nil, err
	}

	if err := s.Assignments.Upsert(ctx, taskID, req.EmployeeID, req.AssignedHours); err != nil {
		return nil, err
	}
	if err := s.Repo.SetAssignedEmployee(ctx, taskID, req.EmployeeID); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, taskID)
}
