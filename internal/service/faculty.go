package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
)

type FacultyService struct {
	Repo *repo.GormRepo
}

func (s *FacultyService) Create(ctx context.Context, t Tenant, req transport.CreateFacultyRequest) (*models.Faculty, error) {
	name, err := text("name", req.Name)
	if err != nil {
		return nil, err
	}
	if _, err := departmentIn(ctx, s.Repo, t, req.DepartmentID); err != nil {
		return nil, err
	}
	f := &models.Faculty{
		Name:         name,
		DepartmentID: req.DepartmentID,
		CollegeID:    t.CollegeID,
	}
	if err := s.Repo.CreateFaculty(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FacultyService) Get(ctx context.Context, t Tenant, id uint) (*models.Faculty, error) {
	return facultyIn(ctx, s.Repo, t, id, msgFacultyNotFound)
}

func (s *FacultyService) List(ctx context.Context, t Tenant, name string) ([]models.Faculty, error) {
	return s.Repo.ListFaculties(ctx, t.CollegeID, name)
}

func (s *FacultyService) Update(ctx context.Context, t Tenant, id uint, req transport.UpdateFacultyRequest) (*models.Faculty, error) {
	f, err := facultyIn(ctx, s.Repo, t, id, msgFacultyNotFound)
	if err != nil {
		return nil, err
	}
	moved := false
	if req.DepartmentID != nil {
		if _, err := departmentIn(ctx, s.Repo, t, *req.DepartmentID); err != nil {
			return nil, err
		}
		moved = *req.DepartmentID != f.DepartmentID
		f.DepartmentID = *req.DepartmentID
	}
	if req.Name != nil {
		v, err := text("name", *req.Name)
		if err != nil {
			return nil, err
		}
		f.Name = v
	}
	err = s.Repo.InTx(ctx, func(tx *repo.GormRepo) error {
		if err := tx.SaveFaculty(ctx, f); err != nil {
			return err
		}
		if moved {
			return tx.ReassignSubjects(ctx, f.ID, f.DepartmentID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete refuses while the faculty coordinates any timetable.
func (s *FacultyService) Delete(ctx context.Context, t Tenant, id uint) (*transport.DeleteResponse, error) {
	f, err := facultyIn(ctx, s.Repo, t, id, msgFacultyNotFound)
	if err != nil {
		return nil, err
	}
	coordinates, err := s.Repo.FacultyCoordinates(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	if coordinates {
		return nil, conflict(msgFacultyCoordinates)
	}
	if err := s.Repo.DeleteFaculty(ctx, t.CollegeID, id); err != nil {
		switch {
		case repo.IsNotFound(err):
			return nil, notFound(msgFacultyNotFound)
		case errors.Is(err, repo.ErrReferenced):
			return nil, conflict(msgFacultyCoordinates)
		}
		return nil, err
	}
	return &transport.DeleteResponse{Message: deleted("Faculty"), Data: f}, nil
}
