package service

import (
	"context"

	"github.com/finch/networth/internal/apperr"
	"github.com/finch/networth/internal/domain"
)

// ListRecurrings returns the user's ad hoc recurrings.
func (s *Service) ListRecurrings(ctx context.Context) ([]domain.Recurring, error) {
	user, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return user.Recurrings, nil
}

// GetRecurring returns the ad hoc recurring with id.
func (s *Service) GetRecurring(ctx context.Context, id string) (domain.Recurring, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Recurring{}, err
	}
	user, err := s.load(ctx)
	if err != nil {
		return domain.Recurring{}, err
	}
	i, err := findRecurring(user, id)
	if err != nil {
		return domain.Recurring{}, err
	}
	return user.Recurrings[i], nil
}

// NewRecurring validates r, gives it a fresh id and stores it.
func (s *Service) NewRecurring(ctx context.Context, r domain.Recurring) (domain.Recurring, error) {
	if err := r.Validate(); err != nil {
		return domain.Recurring{}, apperr.BadRequest("invalid recurring: %v", err)
	}
	user, err := s.load(ctx)
	if err != nil {
		return domain.Recurring{}, err
	}

	r.ID = newID()
	user.Recurrings = append(user.Recurrings, r)
	if err := s.save(ctx, user); err != nil {
		return domain.Recurring{}, err
	}
	s.logger.Infof("added recurring %q (%s)", r.Name, r.ID)
	return r, nil
}

// UpdateRecurring replaces the recurring with id by r.
func (s *Service) UpdateRecurring(ctx context.Context, id string, r domain.Recurring) (domain.Recurring, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Recurring{}, err
	}
	if err := r.Validate(); err != nil {
		return domain.Recurring{}, apperr.BadRequest("invalid recurring: %v", err)
	}
	user, err := s.load(ctx)
	if err != nil {
		return domain.Recurring{}, err
	}
	i, err := findRecurring(user, id)
	if err != nil {
		return domain.Recurring{}, err
	}

	r.ID = id
	user.Recurrings[i] = r
	if err := s.save(ctx, user); err != nil {
		return domain.Recurring{}, err
	}
	s.logger.Infof("updated recurring %q (%s)", r.Name, r.ID)
	return r, nil
}

// DeleteRecurring removes the recurring with id and returns it. The order of the
// remaining recurrings is kept.
func (s *Service) DeleteRecurring(ctx context.Context, id string) (domain.Recurring, error) {
	id, err := parseID(id)
	if err != nil {
		return domain.Recurring{}, err
	}
	user, err := s.load(ctx)
	if err != nil {
		return domain.Recurring{}, err
	}
	i, err := findRecurring(user, id)
	if err != nil {
		return domain.Recurring{}, err
	}

	removed := user.Recurrings[i]
	user.Recurrings = append(user.Recurrings[:i:i], user.Recurrings[i+1:]...)
	if err := s.save(ctx, user); err != nil {
		return domain.Recurring{}, err
	}
	s.logger.Infof("deleted recurring %q (%s)", removed.Name, removed.ID)
	return removed, nil
}

func findRecurring(user *domain.User, id string) (int, error) {
	for i, r := range user.Recurrings {
		if r.ID == id {
			return i, nil
		}
	}
	return -1, apperr.NotFound("no recurring with id %s found for user %q", id, user.Name)
}
