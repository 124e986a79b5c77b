package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/qrmesai/qrmesai-backend-go/internal/domain/department"
	"github.com/qrmesai/qrmesai-backend-go/internal/domain/employee"
	"github.com/qrmesai/qrmesai-backend-go/internal/pkg/database"
	"github.com/qrmesai/qrmesai-backend-go/internal/repository/postgresql"
	"github.com/qrmesai/qrmesai-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	department.DepartmentRepository
	fileService file.FileService
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository, departmentRepository department.DepartmentRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		DepartmentRepository: departmentRepository,
		fileService:          fileService,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := employee.RoleUser
	if req.Role != "" {
		role = employee.Role(req.Role)
	}

	emp := employee.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		DepartmentID: req.DepartmentID,
		Role:         role,
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.EmployeeRepository.Create(txCtx, emp)
		if txErr != nil {
			return txErr
		}

		if req.File != nil && req.FileHeader != nil {
			avatarPath, uploadErr := s.fileService.UploadAvatar(txCtx, created.ID, req.File, req.FileHeader.Filename)
			if uploadErr != nil {
				return uploadErr
			}
			created.AvatarURL = &avatarPath
			return s.EmployeeRepository.Update(txCtx, created)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, s.toResponse(ctx, emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.DepartmentID != nil {
		if *req.DepartmentID == "" {
			emp.DepartmentID = nil
		} else {
			if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
				return employee.EmployeeResponse{}, err
			}
			emp.DepartmentID = req.DepartmentID
		}
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}

	if req.File != nil && req.FileHeader != nil {
		avatarPath, uploadErr := s.fileService.UploadAvatar(ctx, emp.ID, req.File, req.FileHeader.Filename)
		if uploadErr != nil {
			return employee.EmployeeResponse{}, uploadErr
		}
		emp.AvatarURL = &avatarPath
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}

	if emp.AvatarURL != nil {
		// The row is already gone; a stale file on disk is not worth
		// failing the request over.
		if delErr := s.fileService.DeleteFile(ctx, *emp.AvatarURL); delErr != nil {
			slog.Warn("failed to delete avatar file", "path", *emp.AvatarURL, "error", delErr)
		}
	}
	return nil
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		Name:           emp.Name,
		Email:          emp.Email,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Role:           string(emp.Role),
		AvatarURL:      emp.AvatarURL,
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
	}
	if emp.AvatarURL != nil {
		if url, err := s.fileService.GetFileURL(ctx, *emp.AvatarURL); err == nil {
			resp.AvatarURL = &url
		}
	}
	return resp
}
