package memdb

import (
	"context"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/feed"
	"foodshare-api/internal/repo/repo_errors"
)

func (s *Store) CreateUser(ctx context.Context, input *entity.CreateUserInput) error {
	s.mu.Lock()
	if _, ok := s.users[input.Uid]; ok {
		s.mu.Unlock()
		return repo_errors.ErrConflict
	}

	s.users[input.Uid] = entity.User{
		Uid:       input.Uid,
		Role:      input.Role,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: s.now(),
	}
	s.mu.Unlock()

	s.publish(feed.Change{Collection: feed.Users, Kind: feed.Added, Id: input.Uid})

	return nil
}

func (s *Store) GetUserById(ctx context.Context, uid string) (*entity.User, error) {
	s.mu.RLock()
	u, ok := s.users[uid]
	s.mu.RUnlock()
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return &u, nil
}

func (s *Store) UpdateUserById(ctx context.Context, uid string, input *entity.UpdateUserInput) error {
	s.mu.Lock()
	u, ok := s.users[uid]
	if !ok {
		s.mu.Unlock()
		return repo_errors.ErrNotFound
	}

	if input.Name != "" {
		u.Name = input.Name
	}
	if input.Phone != "" {
		u.Phone = input.Phone
	}
	if input.Role != "" {
		u.Role = input.Role
	}
	s.users[uid] = u
	s.mu.Unlock()

	s.publish(feed.Change{Collection: feed.Users, Kind: feed.Modified, Id: uid})

	return nil
}
