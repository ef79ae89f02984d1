package service

import (
	"context"

	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
)

// RoleService manages the global role catalogue. Role names are not unique.
type RoleService struct {
	Repo *repo.GormRepo
}

func (s *RoleService) Create(ctx context.Context, req transport.CreateRoleRequest) (*models.Role, error) {
	name, err := text("role_name", req.RoleName)
	if err != nil {
		return nil, err
	}
	role := &models.Role{RoleName: name}
	if err := s.Repo.CreateRole(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Get(ctx context.Context, id uint) (*models.Role, error) {
	role, err := s.Repo.GetRole(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgRoleNotFound)
		}
		return nil, err
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context, name string) ([]models.Role, error) {
	return s.Repo.ListRoles(ctx, name)
}

func (s *RoleService) Delete(ctx context.Context, id uint) (*transport.DeleteResponse, error) {
	role, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteRole(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgRoleNotFound)
		}
		return nil, err
	}
	return &transport.DeleteResponse{Message: deleted("Role"), Data: role}, nil
}
