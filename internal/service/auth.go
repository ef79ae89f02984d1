package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Skotchmaster/campus_admin/internal/events"
	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	pkghash "github.com/Skotchmaster/campus_admin/pkg/hash"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
	"github.com/Skotchmaster/campus_admin/pkg/tokens"
)

type AuthService struct {
	Repo   *repo.GormRepo
	Tokens *tokens.Issuer
	Events events.Publisher
}

type LoginResult struct {
	AccessToken string
	AccessExp   time.Time
}

// dummyHash keeps the unknown-user path as slow as a real password check.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z6FQv2yjx6Qz7bVJ7W5Vd6xK"

func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.UserByLogin(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if repo.IsNotFound(err) {
			pkghash.CheckPassword(dummyHash, password)
			l.Warn("login_failed", "reason", "unknown user")
			return nil, &Error{Kind: ErrInvalidCredentials, Msg: "Invalid credentials"}
		}
		return nil, err
	}
	if !pkghash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password", "user_id", user.ID)
		return nil, &Error{Kind: ErrInvalidCredentials, Msg: "Invalid credentials"}
	}

	token, exp, err := s.Tokens.Issue(user.Email, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return &LoginResult{AccessToken: token, AccessExp: exp}, nil
}

// Authenticate resolves a bearer token to its user. The token is rejected when it does not
// verify, when the user was deleted, or when the user's token_version moved past the claim.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*models.User, error) {
	claims, err := s.Tokens.Parse(raw)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidToken, Msg: "Invalid token"}
	}
	if claims.Subject == "" || claims.TokenVersion == nil {
		return nil, &Error{Kind: ErrInvalidToken, Msg: "Invalid token"}
	}

	user, err := s.Repo.UserByEmail(ctx, claims.Subject)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, &Error{Kind: ErrUserGone, Msg: "User no longer exists"}
		}
		return nil, err
	}
	if user.TokenVersion != *claims.TokenVersion {
		return nil, &Error{Kind: ErrTokenRevoked, Msg: "Token revoked"}
	}
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	username, err := text("username", req.Username)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if taken, err := s.Repo.UsernameTaken(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, conflict(msgUsernameTaken)
	}
	if taken, err := s.Repo.EmailTaken(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, conflict(msgEmailTaken)
	}

	if req.CollegeID != nil {
		if _, err := s.Repo.GetCollege(ctx, *req.CollegeID); err != nil {
			if repo.IsNotFound(err) {
				return nil, notFound(msgCollegeNotFound)
			}
			return nil, err
		}
	}
	if req.RoleID != nil {
		if _, err := s.Repo.GetRole(ctx, *req.RoleID); err != nil {
			if repo.IsNotFound(err) {
				return nil, notFound(msgRoleNotFound)
			}
			return nil, err
		}
	}

	pwHash, err := pkghash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		PasswordHash: pwHash,
		RoleID:       req.RoleID,
		CollegeID:    req.CollegeID,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, conflict("Username or email already registered")
		}
		return nil, err
	}

	l.Info("register_success", "user_id", user.ID)
	events.Emit(ctx, s.Events, events.TopicUsers, events.New("user_registered", user.ID, collegeOf(user), user.Username))
	return user, nil
}

// ChangePassword swaps the hash and revokes every token issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, current, next string) error {
	if !pkghash.CheckPassword(user.PasswordHash, current) {
		return &Error{Kind: ErrInvalidCredentials, Msg: "Invalid credentials"}
	}
	pwHash, err := pkghash.HashPassword(next)
	if err != nil {
		return err
	}
	if err := s.Repo.SetPassword(ctx, user.ID, pwHash); err != nil {
		if repo.IsNotFound(err) {
			return &Error{Kind: ErrUserGone, Msg: "User no longer exists"}
		}
		return err
	}
	events.Emit(ctx, s.Events, events.TopicUsers, events.New("user_password_changed", user.ID, collegeOf(user), user.Username))
	return nil
}

// Logout revokes all outstanding tokens of the user.
func (s *AuthService) Logout(ctx context.Context, user *models.User) error {
	if err := s.Repo.BumpTokenVersion(ctx, user.ID); err != nil {
		if repo.IsNotFound(err) {
			return &Error{Kind: ErrUserGone, Msg: "User no longer exists"}
		}
		return err
	}
	logging.FromContext(ctx).Info("logout_success", "svc", "auth.logout", "user_id", user.ID)
	return nil
}

// collegeOf is 0 for users without a college.
func collegeOf(u *models.User) uint {
	if u.CollegeID == nil {
		return 0
	}
	return *u.CollegeID
}
