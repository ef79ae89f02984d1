package service

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
)

type SubjectService struct {
	Repo *repo.GormRepo
}

func (s *SubjectService) Create(ctx context.Context, t Tenant, req transport.CreateSubjectRequest) (*models.Subject, error) {
	name, err := text("name", req.Name)
	if err != nil {
		return nil, err
	}
	if _, err := departmentIn(ctx, s.Repo, t, req.DepartmentID); err != nil {
		return nil, err
	}
	f, err := facultyIn(ctx, s.Repo, t, req.FacultyID, msgFacultyNotFound)
	if err != nil {
		return nil, err
	}
	if f.DepartmentID != req.DepartmentID {
		return nil, invalid(msgFacultyElsewhere)
	}
	sub := &models.Subject{
		Name:         name,
		FacultyID:    req.FacultyID,
		DepartmentID: req.DepartmentID,
		CollegeID:    t.CollegeID,
	}
	if err := s.Repo.CreateSubject(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubjectService) Get(ctx context.Context, t Tenant, id uint) (*models.Subject, error) {
	sub, err := s.Repo.GetSubject(ctx, t.CollegeID, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgSubjectNotFound)
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubjectService) List(ctx context.Context, t Tenant, name string) ([]models.Subject, error) {
	return s.Repo.ListSubjects(ctx, t.CollegeID, name)
}

func (s *SubjectService) Update(ctx context.Context, t Tenant, id uint, req transport.UpdateSubjectRequest) (*models.Subject, error) {
	sub, err := s.Get(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if req.DepartmentID != nil {
		if _, err := departmentIn(ctx, s.Repo, t, *req.DepartmentID); err != nil {
			return nil, err
		}
		sub.DepartmentID = *req.DepartmentID
	}
	if req.FacultyID != nil {
		sub.FacultyID = *req.FacultyID
	}
	if req.DepartmentID != nil || req.FacultyID != nil {
		f, err := facultyIn(ctx, s.Repo, t, sub.FacultyID, msgFacultyNotFound)
		if err != nil {
			return nil, err
		}
		if f.DepartmentID != sub.DepartmentID {
			return nil, invalid(msgFacultyElsewhere)
		}
	}
	if req.Name != nil {
		v, err := text("name", *req.Name)
		if err != nil {
			return nil, err
		}
		sub.Name = v
	}
	if err := s.Repo.SaveSubject(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubjectService) Delete(ctx context.Context, t Tenant, id uint) (*transport.DeleteResponse, error) {
	sub, err := s.Get(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteSubject(ctx, t.CollegeID, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgSubjectNotFound)
		}
		return nil, err
	}
	return &transport.DeleteResponse{Message: deleted("Subject"), Data: sub}, nil
}
