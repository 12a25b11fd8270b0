package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// tagRepository is the SQL-backed implementation of [TagRepository].
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] backed by the provided
// database connection and logger.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new tag and returns it with its assigned identifier.
func (r *tagRepository) Create(ctx context.Context, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	row := r.db.QueryRowContext(ctx, createTag, name)
	if err := row.Scan(&tag.TagID, &tag.Name); err != nil {
		log.Err(err).Str("func", "tagRepository.Create").Str("name", name).Msg("error: inserting tag failed")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}

// GetByID retrieves the tag with the given identifier.
// Returns [ErrNotFound] when no row matches.
func (r *tagRepository) GetByID(ctx context.Context, tagID int64) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	row := r.db.QueryRowContext(ctx, findTagByID, tagID)
	if err := row.Scan(&tag.TagID, &tag.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrNotFound
		}

		log.Err(err).Str("func", "tagRepository.GetByID").Int64("tag_id", tagID).Msg("error: scanning tag row")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return tag, nil
}

// Update applies the non-nil fields of update to the targeted tag.
// Returns [ErrNotFound] when no row matches.
func (r *tagRepository) Update(ctx context.Context, update models.TagUpdate) (models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTagUpdateQuery(update)
	if err != nil {
		log.Err(err).Str("func", "tagRepository.Update").Int64("tag_id", update.TagID).Msg("failed to build update query")
		return models.Tag{}, err
	}

	var tag models.Tag
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&tag.TagID, &tag.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrNotFound
		}

		log.Err(err).Str("func", "tagRepository.Update").Int64("tag_id", update.TagID).Msg("error: updating tag failed")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}

// Delete removes the tag row and returns the removed snapshot. Link rows
// referencing the tag are left in place (allow-orphan policy).
//
// Returns [ErrNotFound] when no row matches.
func (r *tagRepository) Delete(ctx context.Context, tagID int64) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var tag models.Tag
	row := r.db.QueryRowContext(ctx, deleteTag, tagID)
	if err := row.Scan(&tag.TagID, &tag.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tag{}, ErrNotFound
		}

		log.Err(err).Str("func", "tagRepository.Delete").Int64("tag_id", tagID).Msg("error: deleting tag failed")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}
