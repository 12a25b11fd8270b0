package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// tagLinkRepository is the SQL-backed implementation of [TagLinkRepository].
// Referential validation of the credential and tag ids happens at the
// service layer; this repository inserts and deletes rows unconditionally.
type tagLinkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagLinkRepository constructs a [TagLinkRepository] backed by the
// provided database connection and logger.
func NewTagLinkRepository(db *DB, logger *logger.Logger) TagLinkRepository {
	logger.Debug().Msg("creating tag link repository")
	return &tagLinkRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a link row between the given credential and tag.
// Duplicate (credential, tag) pairs are permitted.
func (r *tagLinkRepository) Create(ctx context.Context, credentialID, tagID int64) (models.CredentialTagLink, error) {
	log := logger.FromContext(ctx)

	var link models.CredentialTagLink
	row := r.db.QueryRowContext(ctx, createTagLink, credentialID, tagID)
	if err := row.Scan(&link.LinkID, &link.CredentialID, &link.TagID); err != nil {
		log.Err(err).
			Str("func", "tagLinkRepository.Create").
			Int64("credential_id", credentialID).
			Int64("tag_id", tagID).
			Msg("error: inserting tag link failed")
		return models.CredentialTagLink{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return link, nil
}

// Delete removes the link row and returns the removed snapshot.
// Returns [ErrNotFound] when no row matches.
func (r *tagLinkRepository) Delete(ctx context.Context, linkID int64) (models.CredentialTagLink, error) {
	log := logger.FromContext(ctx)

	var link models.CredentialTagLink
	row := r.db.QueryRowContext(ctx, deleteTagLink, linkID)
	if err := row.Scan(&link.LinkID, &link.CredentialID, &link.TagID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CredentialTagLink{}, ErrNotFound
		}

		log.Err(err).Str("func", "tagLinkRepository.Delete").Int64("link_id", linkID).Msg("error: deleting tag link failed")
		return models.CredentialTagLink{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return link, nil
}
