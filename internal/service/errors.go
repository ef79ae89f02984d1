package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserGone           = errors.New("user no longer exists")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrNoTenant           = errors.New("no tenant")
	ErrValidation         = errors.New("validation")
)

// Error pairs a sentinel kind with the message shown to the client.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

func conflict(msg string) error {
	return &Error{Kind: ErrConflict, Msg: msg}
}

func invalid(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

// text trims v and rejects it when nothing is left.
func text(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", invalid(field + " must not be blank")
	}
	return v, nil
}

const (
	msgCollegeNotFound     = "College not found"
	msgCollegeExists       = "College with this name already exists"
	msgRoleNotFound        = "Role not found"
	msgDepartmentNotFound  = "Department not found"
	msgFacultyNotFound     = "Faculty not found"
	msgSubjectNotFound     = "Subject not found"
	msgClassroomNotFound   = "Classroom not found"
	msgCoordinatorNotFound = "Class coordinator not found"
	msgTimetableNotFound   = "Timetable not found"
	msgTimetableExists     = "Timetable for this department, academic year and semester already exists"
	msgFacultyCoordinates  = "Faculty is assigned as class coordinator of a timetable"
	msgUsernameTaken       = "Username already registered"
	msgEmailTaken          = "Email already registered"
	msgFacultyElsewhere    = "Faculty does not belong to this department"
)

func deleted(entity string) string {
	return fmt.Sprintf("%s deleted successfully", entity)
}
