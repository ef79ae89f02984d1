package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
)

type DepartmentService struct {
	Repo *repo.GormRepo
}

func (s *DepartmentService) Create(ctx context.Context, t Tenant, req transport.CreateDepartmentRequest) (*models.Department, error) {
	name, err := text("name", req.Name)
	if err != nil {
		return nil, err
	}
	dep := &models.Department{
		Name:      name,
		Year:      req.Year,
		CollegeID: t.CollegeID,
	}
	if err := s.Repo.CreateDepartment(ctx, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

func (s *DepartmentService) Get(ctx context.Context, t Tenant, id uint) (*models.Department, error) {
	return departmentIn(ctx, s.Repo, t, id)
}

func (s *DepartmentService) List(ctx context.Context, t Tenant, name string) ([]models.Department, error) {
	return s.Repo.ListDepartments(ctx, t.CollegeID, name)
}

func (s *DepartmentService) Update(ctx context.Context, t Tenant, id uint, req transport.UpdateDepartmentRequest) (*models.Department, error) {
	dep, err := departmentIn(ctx, s.Repo, t, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		v, err := text("name", *req.Name)
		if err != nil {
			return nil, err
		}
		dep.Name = v
	}
	if req.Year != nil {
		dep.Year = *req.Year
	}
	if err := s.Repo.SaveDepartment(ctx, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

// Delete cascades to the department's faculty, subjects, classrooms and timetables.
func (s *DepartmentService) Delete(ctx context.Context, t Tenant, id uint) (*transport.DeleteResponse, error) {
	dep, err := departmentIn(ctx, s.Repo, t, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteDepartment(ctx, t.CollegeID, id); err != nil {
		switch {
		case repo.IsNotFound(err):
			return nil, notFound(msgDepartmentNotFound)
		case errors.Is(err, repo.ErrReferenced):
			return nil, conflict("Department has faculty coordinating timetables of other departments")
		}
		return nil, err
	}
	return &transport.DeleteResponse{Message: deleted("Department"), Data: dep}, nil
}
