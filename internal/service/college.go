package service

import (
	"context"
	"errors"
	"time"

	"github.com/Skotchmaster/campus_admin/internal/events"
	"github.com/Skotchmaster/campus_admin/internal/models"
	"github.com/Skotchmaster/campus_admin/internal/repo"
	"github.com/Skotchmaster/campus_admin/internal/transport"
	"github.com/Skotchmaster/campus_admin/pkg/logging"
)

const indexTimeout = 5 * time.Second

// CollegeIndex is the optional full-text index kept alongside the colleges table.
type CollegeIndex interface {
	Put(ctx context.Context, c models.College) error
	Remove(ctx context.Context, id uint) error
	Search(ctx context.Context, q string, from, size int) (int64, []models.College, error)
}

type CollegeService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	Index  CollegeIndex
}

func (s *CollegeService) Create(ctx context.Context, req transport.CreateCollegeRequest) (*models.College, error) {
	name, err := text("name", req.Name)
	if err != nil {
		return nil, err
	}
	college := &models.College{
		Name:    name,
		Address: req.Address,
		Contact: req.Contact,
	}

	err = s.Repo.InTx(ctx, func(tx *repo.GormRepo) error {
		taken, err := tx.CollegeNameTaken(ctx, college.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return conflict(msgCollegeExists)
		}
		return tx.CreateCollege(ctx, college)
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, conflict(msgCollegeExists)
		}
		return nil, err
	}

	s.afterWrite(ctx, "college_created", college)
	return college, nil
}

func (s *CollegeService) Get(ctx context.Context, id uint) (*models.College, error) {
	college, err := s.Repo.GetCollege(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgCollegeNotFound)
		}
		return nil, err
	}
	return college, nil
}

func (s *CollegeService) List(ctx context.Context, name string) ([]models.College, error) {
	return s.Repo.ListColleges(ctx, name)
}

// Search uses the full-text index when one is configured and falls back to a substring match.
func (s *CollegeService) Search(ctx context.Context, q string, offset, limit int) (int64, []models.College, error) {
	if s.Index != nil {
		total, items, err := s.Index.Search(ctx, q, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("college_search_index_failed", "svc", "college.search", "error", err)
	}
	return s.Repo.SearchColleges(ctx, q, offset, limit)
}

func (s *CollegeService) Update(ctx context.Context, id uint, req transport.UpdateCollegeRequest) (*models.College, error) {
	var college *models.College
	err := s.Repo.InTx(ctx, func(tx *repo.GormRepo) error {
		c, err := tx.GetCollege(ctx, id)
		if err != nil {
			if repo.IsNotFound(err) {
				return notFound(msgCollegeNotFound)
			}
			return err
		}

		if req.Name != nil {
			name, err := text("name", *req.Name)
			if err != nil {
				return err
			}
			if name != c.Name {
				taken, err := tx.CollegeNameTaken(ctx, name, c.ID)
				if err != nil {
					return err
				}
				if taken {
					return conflict(msgCollegeExists)
				}
			}
			c.Name = name
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.Contact != nil {
			c.Contact = *req.Contact
		}

		college = c
		return tx.SaveCollege(ctx, c)
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, conflict(msgCollegeExists)
		}
		return nil, err
	}

	s.afterWrite(ctx, "college_updated", college)
	return college, nil
}

// Delete removes the college and, through the schema, everything it owns.
func (s *CollegeService) Delete(ctx context.Context, id uint) (*transport.DeleteResponse, error) {
	college, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteCollege(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return nil, notFound(msgCollegeNotFound)
		}
		return nil, err
	}

	if s.Index != nil {
		ictx, cancel := indexContext(ctx)
		defer cancel()
		if err := s.Index.Remove(ictx, id); err != nil {
			logging.FromContext(ctx).Warn("college_unindex_failed", "college_id", id, "error", err)
		}
	}
	events.Emit(ctx, s.Events, events.TopicColleges, events.New("college_deleted", college.ID, college.ID, college.Name))
	return &transport.DeleteResponse{Message: deleted("College"), Data: college}, nil
}

func (s *CollegeService) afterWrite(ctx context.Context, typ string, c *models.College) {
	if s.Index != nil {
		ictx, cancel := indexContext(ctx)
		defer cancel()
		if err := s.Index.Put(ictx, *c); err != nil {
			logging.FromContext(ctx).Warn("college_index_failed", "college_id", c.ID, "error", err)
		}
	}
	events.Emit(ctx, s.Events, events.TopicColleges, events.New(typ, c.ID, c.ID, c.Name))
}

// indexContext runs index writes after commit, detached from the client and bounded.
func indexContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), indexTimeout)
}
