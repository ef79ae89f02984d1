package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/campus_admin/internal/events"
	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

// TimetableService keeps (department, academic year, semester) unique and every reference
// inside the caller's college. Checks and the write share one transaction; the unique index
// decides races, and its violation is reported exactly like the explicit check.
type TimetableService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
}

func (s *TimetableService) Create(ctx context.Context, t Tenant, req transport.CreateTimetableRequest) (*models.Timetable, error) {
	l := logging.FromContext(ctx).With("svc", "timetable.create")

	year, err := text("academic_year", req.AcademicYear)
	if err != nil {
		return nil, err
	}
	tt := &models.Timetable{
		CollegeID:          t.CollegeID,
		DepartmentID:       req.DepartmentID,
		ClassCoordinatorID: req.ClassCoordinatorID,
		AcademicYear:       year,
		Semester:           models.Semester(req.Semester),
	}
	if !tt.Semester.Valid() {
		return nil, invalid("Semester must be between 1 and 8")
	}

	err = s.Repo.InTx(ctx, func(tx *repo.GormRepo) error {
		if _, err := departmentIn(ctx, tx, t, tt.DepartmentID); err != nil {
			return err
		}
		if _, err := facultyIn(ctx, tx, t, tt.ClassCoordinatorID, msgCoordinatorNotFound); err != nil {
			return err
		}
		taken, err := tx.TimetableTaken(ctx, tt.DepartmentID, tt.AcademicYear, tt.Semester, 0)
		if err != nil {
			return err
		}
		if taken {
			return conflict(msgTimetableExists)
		}
		return tx.CreateTimetable(ctx, tt)
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			l.Warn("timetable_create_conflict", "reason", "unique index", "error", err)
			return nil, conflict(msgTimetableExists)
		}
		return nil, err
	}

	created, err := s.Get(ctx, t, tt.ID)
	if err != nil {
		return nil, err
	}
	events.Emit(ctx, s.Events, events.TopicTimetables, events.New("timetable_created", created.ID, created.CollegeID, created.AcademicYear))
	return created, nil
}

func (s *TimetableService) Get(ctx context.Context, t Tenant, id uint) (*models.Timetable, error) {
	tt, err := s.Repo.GetTimetable(ctx, t.CollegeID, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgTimetableNotFound)
		}
		return nil, err
	}
	return tt, nil
}

func (s *TimetableService) List(ctx context.Context, t Tenant) ([]models.Timetable, error) {
	return s.Repo.ListTimetables(ctx, t.CollegeID)
}

// Update applies only the fields present. When any part of the unique triple changes,
// the merged triple is checked against every other timetable.
func (s *TimetableService) Update(ctx context.Context, t Tenant, id uint, req transport.UpdateTimetableRequest) (*models.Timetable, error) {
	l := logging.FromContext(ctx).With("svc", "timetable.update")

	err := s.Repo.InTx(ctx, func(tx *repo.GormRepo) error {
		tt, err := tx.GetTimetable(ctx, t.CollegeID, id)
		if err != nil {
			if repo.IsNotFound(err) {
				return notFound(msgTimetableNotFound)
			}
			return err
		}

		if req.DepartmentID != nil {
			if _, err := departmentIn(ctx, tx, t, *req.DepartmentID); err != nil {
				return err
			}
			tt.DepartmentID = *req.DepartmentID
		}
		if req.ClassCoordinatorID != nil {
			if _, err := facultyIn(ctx, tx, t, *req.ClassCoordinatorID, msgCoordinatorNotFound); err != nil {
				return err
			}
			tt.ClassCoordinatorID = *req.ClassCoordinatorID
		}
		if req.AcademicYear != nil {
			year, err := text("academic_year", *req.AcademicYear)
			if err != nil {
				return err
			}
			tt.AcademicYear = year
		}
		if req.Semester != nil {
			tt.Semester = models.Semester(*req.Semester)
			if !tt.Semester.Valid() {
				return invalid("Semester must be between 1 and 8")
			}
		}

		if req.DepartmentID != nil || req.AcademicYear != nil || req.Semester != nil {
			taken, err := tx.TimetableTaken(ctx, tt.DepartmentID, tt.AcademicYear, tt.Semester, tt.ID)
			if err != nil {
				return err
			}
			if taken {
				return conflict(msgTimetableExists)
			}
		}

		tt.Department, tt.ClassCoordinator = nil, nil
		return tx.SaveTimetable(ctx, tt)
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			l.Warn("timetable_update_conflict", "reason", "unique index", "error", err)
			return nil, conflict(msgTimetableExists)
		}
		return nil, err
	}

	updated, err := s.Get(ctx, t, id)
	if err != nil {
		return nil, err
	}
	events.Emit(ctx, s.Events, events.TopicTimetables, events.New("timetable_updated", updated.ID, updated.CollegeID, updated.AcademicYear))
	return updated, nil
}

func (s *TimetableService) Delete(ctx context.Context, t Tenant, id uint) (*transport.DeleteResponse, error) {
	tt, err := s.Get(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteTimetable(ctx, t.CollegeID, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgTimetableNotFound)
		}
		return nil, err
	}
	events.Emit(ctx, s.Events, events.TopicTimetables, events.New("timetable_deleted", tt.ID, tt.CollegeID, tt.AcademicYear))
	return &transport.DeleteResponse{Message: deleted("Timetable"), Data: tt}, nil
}
