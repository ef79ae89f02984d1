package service

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
)

type ClassroomService struct {
	Repo *repo.GormRepo
}

func (s *ClassroomService) Create(ctx context.Context, t Tenant, req transport.CreateClassroomRequest) (*models.Classroom, error) {
	building, err := text("building_name", req.BuildingName)
	if err != nil {
		return nil, err
	}
	roomNo, err := text("room_no", req.RoomNo)
	if err != nil {
		return nil, err
	}
	if _, err := departmentIn(ctx, s.Repo, t, req.DepartmentID); err != nil {
		return nil, err
	}
	room := &models.Classroom{
		BuildingName: building,
		RoomNo:       roomNo,
		Capacity:     req.Capacity,
		DepartmentID: req.DepartmentID,
		CollegeID:    t.CollegeID,
	}
	if err := s.Repo.CreateClassroom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *ClassroomService) Get(ctx context.Context, t Tenant, id uint) (*models.Classroom, error) {
	room, err := s.Repo.GetClassroom(ctx, t.CollegeID, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgClassroomNotFound)
		}
		return nil, err
	}
	return room, nil
}

func (s *ClassroomService) List(ctx context.Context, t Tenant, building string) ([]models.Classroom, error) {
	return s.Repo.ListClassrooms(ctx, t.CollegeID, building)
}

func (s *ClassroomService) Update(ctx context.Context, t Tenant, id uint, req transport.UpdateClassroomRequest) (*models.Classroom, error) {
	room, err := s.Get(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if req.DepartmentID != nil {
		if _, err := departmentIn(ctx, s.Repo, t, *req.DepartmentID); err != nil {
			return nil, err
		}
		room.DepartmentID = *req.DepartmentID
	}
	if req.BuildingName != nil {
		v, err := text("building_name", *req.BuildingName)
		if err != nil {
			return nil, err
		}
		room.BuildingName = v
	}
	if req.RoomNo != nil {
		v, err := text("room_no", *req.RoomNo)
		if err != nil {
			return nil, err
		}
		room.RoomNo = v
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if err := s.Repo.SaveClassroom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *ClassroomService) Delete(ctx context.Context, t Tenant, id uint) (*transport.DeleteResponse, error) {
	room, err := s.Get(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteClassroom(ctx, t.CollegeID, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgClassroomNotFound)
		}
		return nil, err
	}
	return &transport.DeleteResponse{Message: deleted("Classroom"), Data: room}, nil
}
