package service

import (
	"context"
	"errors"
	"strings"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/repo"
	"foodshare-api/internal/repo/repo_errors"
)

type UserService struct {
	userRepo repo.User
}

func NewUserService(repos *repo.Repositories) *UserService {
	return &UserService{repos.User}
}

// ResolveViewer turns a verified uid into a viewer. An empty uid is an anonymous visitor, a uid
// without a profile is still onboarding.
func (s *UserService) ResolveViewer(ctx context.Context, uid string) (*entity.Viewer, error) {
	if uid == "" {
		return &entity.Viewer{Role: common.Anonymous}, nil
	}

	u, err := s.userRepo.GetUserById(ctx, uid)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return &entity.Viewer{Uid: uid, Role: common.Unassigned}, nil
		}

		return nil, storeError(err)
	}

	role := u.Role
	if role == common.Anonymous {
		role = common.Unassigned
	}

	return &entity.Viewer{Uid: u.Uid, Role: role, Name: u.Name}, nil
}

func parseSettableRole(raw common.Role) (common.Role, error) {
	if raw == "" {
		return "", nil
	}
	role := common.ParseRole(string(raw))
	if role == common.Unassigned {
		return "", ErrInvalidRole
	}

	return role, nil
}

func (s *UserService) CreateProfile(ctx context.Context, input *entity.CreateUserInput) (*entity.UserOutputModel, error) {
	if input.Uid == "" {
		return nil, ErrSignInRequired
	}

	role, err := parseSettableRole(input.Role)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = common.Unassigned
	}
	input.Role = role
	input.Name = strings.TrimSpace(input.Name)

	if err = s.userRepo.CreateUser(ctx, input); err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrProfileExists
		}

		return nil, storeError(err)
	}

	return s.GetProfile(ctx, input.Uid)
}

func (s *UserService) GetProfile(ctx context.Context, uid string) (*entity.UserOutputModel, error) {
	if uid == "" {
		return nil, ErrSignInRequired
	}

	u, err := s.userRepo.GetUserById(ctx, uid)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, storeError(err)
	}

	return mapUser(u), nil
}

// UpdateProfile changes name and phone at any time. The role may only be chosen while unassigned.
func (s *UserService) UpdateProfile(ctx context.Context, uid string, input *entity.UpdateUserInput) (*entity.UserOutputModel, error) {
	if uid == "" {
		return nil, ErrSignInRequired
	}

	role, err := parseSettableRole(input.Role)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetUserById(ctx, uid)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, storeError(err)
	}

	if role != "" && role != u.Role && u.Role != common.Unassigned && u.Role != common.Anonymous {
		return nil, ErrRoleAlreadySet
	}

	err = s.userRepo.UpdateUserById(ctx, uid, &entity.UpdateUserInput{
		Name:  strings.TrimSpace(input.Name),
		Phone: strings.TrimSpace(input.Phone),
		Role:  role,
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, storeError(err)
	}

	return s.GetProfile(ctx, uid)
}
