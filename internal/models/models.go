package models

import (
	"time"

	"gorm.io/gorm"
)

type Role struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName string `gorm:"not null"                 json:"role_name"`
}

// College is the tenant root. Every tenant-owned row carries a college_id.
type College struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"uniqueIndex;not null"     json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"     json:"id"`
	Username     string    `gorm:"uniqueIndex;not null"         json:"username"`
	Email        string    `gorm:"uniqueIndex;not null"         json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `gorm:"not null"                     json:"-"`
	TokenVersion int       `gorm:"not null;default:0"           json:"-"`
	RoleID       *uint     `gorm:"index"                        json:"role_id"`
	Role         *Role     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CollegeID    *uint     `gorm:"index"                        json:"college_id"`
	College      *College  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Department struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name      string   `gorm:"not null"                     json:"name"`
	Year      int      `gorm:"not null"                     json:"year"`
	CollegeID uint     `gorm:"index;not null"               json:"college_id"`
	College   *College `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
}

type Faculty struct {
	ID           uint        `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name         string      `gorm:"not null"                     json:"name"`
	DepartmentID uint        `gorm:"index;not null"               json:"department_id"`
	Department   *Department `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
	CollegeID    uint        `gorm:"index;not null"               json:"college_id"`
	College      *College    `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
}

type Subject struct {
	ID           uint        `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name         string      `gorm:"not null"                     json:"name"`
	FacultyID    uint        `gorm:"index;not null"               json:"faculty_id"`
	Faculty      *Faculty    `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
	DepartmentID uint        `gorm:"index;not null"               json:"department_id"`
	Department   *Department `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
	CollegeID    uint        `gorm:"index;not null"               json:"college_id"`
	College      *College    `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
}

type Classroom struct {
	ID           uint        `gorm:"primaryKey;autoIncrement"     json:"id"`
	BuildingName string      `gorm:"not null"                     json:"building_name"`
	RoomNo       string      `gorm:"not null"                     json:"room_no"`
	Capacity     int         `gorm:"not null;default:0"           json:"capacity"`
	DepartmentID uint        `gorm:"index;not null"               json:"department_id"`
	Department   *Department `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
	CollegeID    uint        `gorm:"index;not null"               json:"college_id"`
	College      *College    `gorm:"constraint:OnDelete:CASCADE"  json:"-"`
}

type Semester int

const (
	MinSemester Semester = 1
	MaxSemester Semester = 8
)

func (s Semester) Valid() bool {
	return s >= MinSemester && s <= MaxSemester
}

// Timetable is unique per (department_id, academic_year, semester).
// The coordinator reference has no ON DELETE action, so a faculty row cannot be
// removed on its own while a timetable still points at it.
type Timetable struct {
	ID                 uint        `gorm:"primaryKey;autoIncrement"                                    json:"id"`
	CollegeID          uint        `gorm:"index;not null"                                              json:"college_id"`
	College            *College    `gorm:"constraint:OnDelete:CASCADE"                                 json:"-"`
	DepartmentID       uint        `gorm:"not null;uniqueIndex:uq_department_academic_year_semester"   json:"department_id"`
	Department         *Department `gorm:"constraint:OnDelete:CASCADE"                                 json:"department,omitempty"`
	ClassCoordinatorID uint        `gorm:"index;not null"                                              json:"class_coordinator_id"`
	ClassCoordinator   *Faculty    `gorm:"foreignKey:ClassCoordinatorID"                               json:"class_coordinator,omitempty"`
	AcademicYear       string      `gorm:"not null;uniqueIndex:uq_department_academic_year_semester"   json:"academic_year"`
	Semester           Semester    `gorm:"not null;uniqueIndex:uq_department_academic_year_semester"   json:"semester"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func All() []any {
	return []any{
		&Role{},
		&College{},
		&User{},
		&Department{},
		&Faculty{},
		&Subject{},
		&Classroom{},
		&Timetable{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
