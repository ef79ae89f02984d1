package service

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
)

// Referenced rows must live in the caller's college; a row in another college reads as missing.

func departmentIn(ctx context.Context, r *repo.GormRepo, t Tenant, id uint) (*models.Department, error) {
	dep, err := r.GetDepartment(ctx, t.CollegeID, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgDepartmentNotFound)
		}
		return nil, err
	}
	return dep, nil
}

func facultyIn(ctx context.Context, r *repo.GormRepo, t Tenant, id uint, msg string) (*models.Faculty, error) {
	f, err := r.GetFaculty(ctx, t.CollegeID, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msg)
		}
		return nil, err
	}
	return f, nil
}
