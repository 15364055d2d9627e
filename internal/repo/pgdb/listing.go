package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodshare-api/internal/common"
	"foodshare-api/internal/entity"
	"foodshare-api/internal/repo/repo_errors"
	"foodshare-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const listingColumns = "id, title, description, quantity, category, location_text, latitude, longitude, " +
	"expiry_date, status, donor_id, donor_name, image_url, created_at, updated_at"

type ListingRepo struct {
	*postgres.Postgres
}

func NewListingRepo(pgdb *postgres.Postgres) *ListingRepo {
	return &ListingRepo{pgdb}
}

func scanListing(row rowScanner) (*entity.Listing, error) {
	var l entity.Listing
	err := row.Scan(&l.Id, &l.Title, &l.Description, &l.Quantity, &l.Category, &l.LocationText,
		&l.Latitude, &l.Longitude, &l.ExpiryDate, &l.Status, &l.DonorId, &l.DonorName, &l.ImageUrl,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (r *ListingRepo) CreateListing(ctx context.Context, input *entity.CreateListingInput) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now().UTC()

	createListingSql, args, _ := r.SqlBuilder.
		Insert("listings").
		Columns("id", "title", "description", "quantity", "category", "location_text", "latitude", "longitude",
			"expiry_date", "status", "donor_id", "donor_name", "image_url", "created_at", "updated_at").
		Values(id, input.Title, input.Description, input.Quantity, input.Category, input.LocationText,
			input.Latitude, input.Longitude, input.ExpiryDate, common.Available, input.DonorId, input.DonorName,
			input.ImageUrl, now, now).
		ToSql()

	if _, err := r.Database.ExecContext(ctx, createListingSql, args...); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *ListingRepo) GetListingById(ctx context.Context, id string) (*entity.Listing, error) {
	uuidForm, err := parseId(id)
	if err != nil {
		return nil, err
	}

	getListingSql, args, _ := r.SqlBuilder.
		Select(listingColumns).
		From("listings").
		Where("id = ?", uuidForm).
		ToSql()

	l, err := scanListing(r.Database.QueryRowContext(ctx, getListingSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return l, nil
}

func (r *ListingRepo) EditListingById(ctx context.Context, id string, input *entity.EditListingInput) error {
	uuidForm, err := parseId(id)
	if err != nil {
		return err
	}

	editListingSql, args, _ := r.SqlBuilder.
		Update("listings").
		SetMap(map[string]interface{}{
			"title":         input.Title,
			"description":   input.Description,
			"quantity":      input.Quantity,
			"category":      input.Category,
			"location_text": input.LocationText,
			"latitude":      input.Latitude,
			"longitude":     input.Longitude,
			"expiry_date":   input.ExpiryDate,
			"image_url":     input.ImageUrl,
			"updated_at":    time.Now().UTC(),
		}).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, editListingSql, args...)
	if err != nil {
		return err
	}

	return expectOneRow(result)
}

func (r *ListingRepo) UpdateListingStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := parseId(id)
	if err != nil {
		return err
	}

	updateStatusSql, args, _ := r.SqlBuilder.
		Update("listings").
		Set("status", newStatus).
		Set("updated_at", time.Now().UTC()).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, updateStatusSql, args...)
	if err != nil {
		return err
	}

	return expectOneRow(result)
}

func (r *ListingRepo) DeleteListingById(ctx context.Context, id string) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	deleteListingSql, args, _ := r.SqlBuilder.
		Delete("listings").
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteListingSql, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *ListingRepo) DeleteExpiredListingById(ctx context.Context, id string, now time.Time) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	// a NULL expiry_date never compares as expired
	deleteExpiredSql, args, _ := r.SqlBuilder.
		Delete("listings").
		Where(squirrel.Eq{"id": uuidForm, "status": common.Available}).
		Where(squirrel.Lt{"expiry_date": now}).
		ToSql()

	result, err := r.Database.ExecContext(ctx, deleteExpiredSql, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *ListingRepo) GetListings(ctx context.Context, filter *entity.ListingFilter) ([]entity.Listing, error) {
	builder := r.SqlBuilder.
		Select(listingColumns).
		From("listings")

	if filter != nil {
		eq := squirrel.Eq{}
		if filter.Status != "" {
			eq["status"] = filter.Status
		}
		if filter.DonorId != "" {
			eq["donor_id"] = filter.DonorId
		}
		if filter.Category != "" {
			eq["category"] = filter.Category
		}
		if len(eq) > 0 {
			builder = builder.Where(eq)
		}
	}

	getListingsSql, args, _ := builder.
		OrderBy("created_at DESC", "id ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getListingsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]entity.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return listings, err
		}
		listings = append(listings, *l)
	}
	if err = rows.Err(); err != nil {
		return listings, err
	}

	return listings, nil
}

func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
