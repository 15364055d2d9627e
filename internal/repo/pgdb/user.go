package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodshare-api/internal/entity"
	"foodshare-api/internal/repo/repo_errors"
	"foodshare-api/pkg/postgres"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) error {
	createUserSql, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("uid", "role", "name", "email", "phone", "created_at").
		Values(input.Uid, string(input.Role), input.Name, input.Email, input.Phone, time.Now().UTC()).
		ToSql()

	if _, err := r.Database.ExecContext(ctx, createUserSql, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return repo_errors.ErrConflict
		}

		return err
	}

	return nil
}

func (r *UserRepo) GetUserById(ctx context.Context, uid string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select("uid", "role", "name", "email", "phone", "created_at").
		From("users").
		Where("uid = ?", uid).
		ToSql()

	var user entity.User
	err := r.Database.QueryRowContext(ctx, getUserSql, args...).
		Scan(&user.Uid, &user.Role, &user.Name, &user.Email, &user.Phone, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) UpdateUserById(ctx context.Context, uid string, input *entity.UpdateUserInput) error {
	values := map[string]interface{}{}
	if input.Name != "" {
		values["name"] = input.Name
	}
	if input.Phone != "" {
		values["phone"] = input.Phone
	}
	if input.Role != "" {
		values["role"] = string(input.Role)
	}

	if len(values) == 0 {
		_, err := r.GetUserById(ctx, uid)
		return err
	}

	updateUserSql, args, _ := r.SqlBuilder.
		Update("users").
		SetMap(values).
		Where("uid = ?", uid).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateUserSql, args...)
	if err != nil {
		return err
	}

	return expectOneRow(result)
}
