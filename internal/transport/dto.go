package transport

// Update requests use pointer fields: nil means "leave unchanged".

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Username    string `json:"username"     validate:"required,notblank,min=3,max=50"`
	Email       string `json:"email"        validate:"required,email,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
	Password    string `json:"password"     validate:"required,min=8,max=72"`
	RoleID      *uint  `json:"role_id"      validate:"omitempty,gt=0"`
	CollegeID   *uint  `json:"college_id"   validate:"omitempty,gt=0"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

type CreateCollegeRequest struct {
	Name    string `json:"name"    validate:"required,notblank,max=255"`
	Address string `json:"address" validate:"max=500"`
	Contact string `json:"contact" validate:"max=255"`
}

type UpdateCollegeRequest struct {
	Name    *string `json:"name"    validate:"omitempty,notblank,max=255"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	Contact *string `json:"contact" validate:"omitempty,max=255"`
}

type CreateRoleRequest struct {
	RoleName string `json:"role_name" validate:"required,notblank,max=100"`
}

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
	Year int    `json:"year" validate:"required,gte=1"`
}

type UpdateDepartmentRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank,max=255"`
	Year *int    `json:"year" validate:"omitempty,gte=1"`
}

type CreateFacultyRequest struct {
	Name         string `json:"name"          validate:"required,notblank,max=255"`
	DepartmentID uint   `json:"department_id" validate:"required"`
}

type UpdateFacultyRequest struct {
	Name         *string `json:"name"          validate:"omitempty,notblank,max=255"`
	DepartmentID *uint   `json:"department_id" validate:"omitempty,gt=0"`
}

type CreateSubjectRequest struct {
	Name         string `json:"name"          validate:"required,notblank,max=255"`
	FacultyID    uint   `json:"faculty_id"    validate:"required"`
	DepartmentID uint   `json:"department_id" validate:"required"`
}

type UpdateSubjectRequest struct {
	Name         *string `json:"name"          validate:"omitempty,notblank,max=255"`
	FacultyID    *uint   `json:"faculty_id"    validate:"omitempty,gt=0"`
	DepartmentID *uint   `json:"department_id" validate:"omitempty,gt=0"`
}

type CreateClassroomRequest struct {
	BuildingName string `json:"building_name" validate:"required,notblank,max=255"`
	RoomNo       string `json:"room_no"       validate:"required,notblank,max=50"`
	Capacity     int    `json:"capacity"      validate:"gte=0"`
	DepartmentID uint   `json:"department_id" validate:"required"`
}

type UpdateClassroomRequest struct {
	BuildingName *string `json:"building_name" validate:"omitempty,notblank,max=255"`
	RoomNo       *string `json:"room_no"       validate:"omitempty,notblank,max=50"`
	Capacity     *int    `json:"capacity"      validate:"omitempty,gte=0"`
	DepartmentID *uint   `json:"department_id" validate:"omitempty,gt=0"`
}

type CreateTimetableRequest struct {
	DepartmentID       uint   `json:"department_id"        validate:"required"`
	ClassCoordinatorID uint   `json:"class_coordinator_id" validate:"required"`
	AcademicYear       string `json:"academic_year"        validate:"required,notblank,max=20"`
	Semester           int    `json:"semester"             validate:"required,min=1,max=8"`
}

type UpdateTimetableRequest struct {
	DepartmentID       *uint   `json:"department_id"        validate:"omitempty,gt=0"`
	ClassCoordinatorID *uint   `json:"class_coordinator_id" validate:"omitempty,gt=0"`
	AcademicYear       *string `json:"academic_year"        validate:"omitempty,notblank,max=20"`
	Semester           *int    `json:"semester"             validate:"omitempty,min=1,max=8"`
}

// DeleteResponse echoes the removed row back to the caller.
type DeleteResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func NewPage[T any](items []T, page, offset, limit int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Data: items,
		Meta: PageMeta{
			Page:       page,
			Size:       limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
			HasPrev:    page > 1,
			HasNext:    int64(offset+limit) < total,
		},
	}
}
