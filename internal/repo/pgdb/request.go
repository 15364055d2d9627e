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

const requestColumns = "id, listing_id, listing_donor_id, receiver_id, receiver_name, status, requested_at, " +
	"accepted_at, decided_at, listing_title, listing_description, listing_quantity, listing_category, " +
	"listing_location_text, listing_latitude, listing_longitude, listing_image_url, listing_expiry_date"

type RequestRepo struct {
	*postgres.Postgres
}

func NewRequestRepo(pgdb *postgres.Postgres) *RequestRepo {
	return &RequestRepo{pgdb}
}

func scanRequest(row rowScanner) (*entity.Request, error) {
	var (
		r                                      entity.Request
		title, description, quantity, category *string
		locationText, imageUrl                 *string
		latitude, longitude                    *float64
		expiryDate                             *time.Time
	)

	err := row.Scan(&r.Id, &r.ListingId, &r.ListingDonorId, &r.ReceiverId, &r.ReceiverName, &r.Status,
		&r.RequestedAt, &r.AcceptedAt, &r.DecidedAt, &title, &description, &quantity, &category,
		&locationText, &latitude, &longitude, &imageUrl, &expiryDate)
	if err != nil {
		return nil, err
	}

	// the title column is only written together with the rest of the snapshot
	if title != nil {
		r.Snapshot = &entity.ListingSnapshot{
			Title:        *title,
			Description:  deref(description),
			Quantity:     deref(quantity),
			Category:     deref(category),
			LocationText: deref(locationText),
			Latitude:     latitude,
			Longitude:    longitude,
			ImageUrl:     imageUrl,
			ExpiryDate:   expiryDate,
		}
	}

	return &r, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func (r *RequestRepo) CreateRequest(ctx context.Context, input *entity.CreateRequestInput) (uuid.UUID, error) {
	listingId, err := parseId(input.ListingId)
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	lockListingSql, args, _ := r.SqlBuilder.
		Select("status", "expiry_date", "donor_id").
		From("listings").
		Where("id = ?", listingId).
		Suffix("FOR UPDATE").
		ToSql()

	var (
		status     string
		expiryDate *time.Time
		donorId    string
	)
	err = tx.QueryRowContext(ctx, lockListingSql, args...).Scan(&status, &expiryDate, &donorId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, rollback(tx, repo_errors.ErrNotFound)
		}

		return uuid.Nil, rollback(tx, err)
	}

	if status != common.Available || (expiryDate != nil && expiryDate.Before(input.RequestedAt)) {
		return uuid.Nil, rollback(tx, repo_errors.ErrListingUnavailable)
	}

	id := uuid.New()
	createRequestSql, args, _ := r.SqlBuilder.
		Insert("requests").
		Columns("id", "listing_id", "listing_donor_id", "receiver_id", "receiver_name", "status", "requested_at").
		Values(id, listingId, donorId, input.ReceiverId, input.ReceiverName, common.Pending, input.RequestedAt).
		ToSql()

	if _, err = tx.ExecContext(ctx, createRequestSql, args...); err != nil {
		if postgres.IsUniqueViolation(err) {
			return uuid.Nil, rollback(tx, repo_errors.ErrConflict)
		}

		return uuid.Nil, rollback(tx, err)
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *RequestRepo) GetRequestById(ctx context.Context, id string) (*entity.Request, error) {
	uuidForm, err := parseId(id)
	if err != nil {
		return nil, err
	}

	getRequestSql, args, _ := r.SqlBuilder.
		Select(requestColumns).
		From("requests").
		Where("id = ?", uuidForm).
		ToSql()

	req, err := scanRequest(r.Database.QueryRowContext(ctx, getRequestSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return req, nil
}

func (r *RequestRepo) GetRequests(ctx context.Context, filter *entity.RequestFilter) ([]entity.Request, error) {
	builder := r.SqlBuilder.
		Select(requestColumns).
		From("requests")

	if filter != nil {
		eq := squirrel.Eq{}
		if filter.ListingId != "" {
			listingId, err := uuid.Parse(filter.ListingId)
			if err != nil {
				return make([]entity.Request, 0), nil
			}
			eq["listing_id"] = listingId
		}
		if filter.ListingIds != nil {
			listingIds := make([]uuid.UUID, 0, len(filter.ListingIds))
			for _, id := range filter.ListingIds {
				if listingId, err := uuid.Parse(id); err == nil {
					listingIds = append(listingIds, listingId)
				}
			}
			if len(listingIds) == 0 {
				return make([]entity.Request, 0), nil
			}
			builder = builder.Where(squirrel.Eq{"listing_id": listingIds})
		}
		if filter.ReceiverId != "" {
			eq["receiver_id"] = filter.ReceiverId
		}
		if filter.ListingDonorId != "" {
			eq["listing_donor_id"] = filter.ListingDonorId
		}
		if filter.Status != "" {
			eq["status"] = filter.Status
		}
		if len(eq) > 0 {
			builder = builder.Where(eq)
		}
	}

	getRequestsSql, args, _ := builder.
		OrderBy("requested_at DESC", "id ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getRequestsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entity.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return requests, err
		}
		requests = append(requests, *req)
	}
	if err = rows.Err(); err != nil {
		return requests, err
	}

	return requests, nil
}

// AcceptRequest marks the request accepted, freezes the listing onto it and deletes the
// listing in a single transaction.
func (r *RequestRepo) AcceptRequest(ctx context.Context, requestId string, acceptedAt time.Time) (*entity.Request, error) {
	uuidForm, err := parseId(requestId)
	if err != nil {
		return nil, err
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	lockRequestSql, args, _ := r.SqlBuilder.
		Select(requestColumns).
		From("requests").
		Where("id = ?", uuidForm).
		Suffix("FOR UPDATE").
		ToSql()

	req, err := scanRequest(tx.QueryRowContext(ctx, lockRequestSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rollback(tx, repo_errors.ErrNotFound)
		}

		return nil, rollback(tx, err)
	}
	if req.Status != common.Pending {
		return nil, rollback(tx, repo_errors.ErrRequestNotPending)
	}

	lockListingSql, args, _ := r.SqlBuilder.
		Select(listingColumns).
		From("listings").
		Where("id = ?", req.ListingId).
		Suffix("FOR UPDATE").
		ToSql()

	listing, err := scanListing(tx.QueryRowContext(ctx, lockListingSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rollback(tx, repo_errors.ErrNotFound)
		}

		return nil, rollback(tx, err)
	}

	snapshot := entity.SnapshotOf(listing)
	acceptSql, args, _ := r.SqlBuilder.
		Update("requests").
		SetMap(map[string]interface{}{
			"status":                common.Accepted,
			"accepted_at":           acceptedAt,
			"decided_at":            acceptedAt,
			"listing_title":         snapshot.Title,
			"listing_description":   snapshot.Description,
			"listing_quantity":      snapshot.Quantity,
			"listing_category":      snapshot.Category,
			"listing_location_text": snapshot.LocationText,
			"listing_latitude":      snapshot.Latitude,
			"listing_longitude":     snapshot.Longitude,
			"listing_image_url":     snapshot.ImageUrl,
			"listing_expiry_date":   snapshot.ExpiryDate,
		}).
		Where(squirrel.Eq{"id": uuidForm, "status": common.Pending}).
		ToSql()

	result, err := tx.ExecContext(ctx, acceptSql, args...)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if affected, err := result.RowsAffected(); err != nil || affected == 0 {
		if err == nil {
			err = repo_errors.ErrRequestNotPending
		}

		return nil, rollback(tx, err)
	}

	deleteListingSql, args, _ := r.SqlBuilder.
		Delete("listings").
		Where("id = ?", listing.Id).
		ToSql()

	if _, err = tx.ExecContext(ctx, deleteListingSql, args...); err != nil {
		return nil, rollback(tx, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	at := acceptedAt
	req.Status = common.Accepted
	req.AcceptedAt = &at
	req.DecidedAt = &at
	req.Snapshot = snapshot

	return req, nil
}

func (r *RequestRepo) RejectRequest(ctx context.Context, requestId string, decidedAt time.Time) error {
	uuidForm, err := parseId(requestId)
	if err != nil {
		return err
	}

	rejectSql, args, _ := r.SqlBuilder.
		Update("requests").
		Set("status", common.Rejected).
		Set("decided_at", decidedAt).
		Where(squirrel.Eq{"id": uuidForm, "status": common.Pending}).
		ToSql()

	result, err := r.Database.ExecContext(ctx, rejectSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// nothing changed: tell a missing request from a decided one
	if _, err = r.GetRequestById(ctx, requestId); err != nil {
		return err
	}

	return repo_errors.ErrRequestNotPending
}
