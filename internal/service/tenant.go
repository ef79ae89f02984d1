package service

import "github.com/Skotchmaster/campus_admin/internal/models"

// Tenant identifies the college whose data a request may touch.
// Tenant-scoped service methods take it as a required argument.
type Tenant struct {
	CollegeID uint
}

func TenantOf(u *models.User) (Tenant, error) {
	if u == nil || u.CollegeID == nil {
		return Tenant{}, &Error{Kind: ErrNoTenant, Msg: "User is not assigned to a college"}
	}
	return Tenant{CollegeID: *u.CollegeID}, nil
}
