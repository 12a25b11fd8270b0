package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type tagLinkService struct {
	tagLinkRepository    store.TagLinkRepository
	credentialRepository store.CredentialRepository
	tagRepository        store.TagRepository

	logger *logger.Logger
}

func NewTagLinkService(tagLinkRepository store.TagLinkRepository, credentialRepository store.CredentialRepository, tagRepository store.TagRepository, logger *logger.Logger) TagLinkService {
	return &tagLinkService{
		tagLinkRepository:    tagLinkRepository,
		credentialRepository: credentialRepository,
		tagRepository:        tagRepository,
		logger:               logger,
	}
}

// Link associates a credential with a tag. Both ends must exist; the link
// table itself carries no constraints, so this is the only gate. Linking
// the same pair twice produces two distinct link rows.
//
// Returns ErrInvalidReference naming the missing end.
func (l *tagLinkService) Link(ctx context.Context, credentialID, tagID int64) (models.CredentialTagLink, error) {
	log := logger.FromContext(ctx)

	if _, err := l.credentialRepository.GetByID(ctx, credentialID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.CredentialTagLink{}, fmt.Errorf("%w: credential %d", ErrInvalidReference, credentialID)
		}
		log.Err(err).Int64("credential_id", credentialID).Msg("credential lookup before linking failed")
		return models.CredentialTagLink{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	if _, err := l.tagRepository.GetByID(ctx, tagID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.CredentialTagLink{}, fmt.Errorf("%w: tag %d", ErrInvalidReference, tagID)
		}
		log.Err(err).Int64("tag_id", tagID).Msg("tag lookup before linking failed")
		return models.CredentialTagLink{}, fmt.Errorf("tag lookup failed: %w", err)
	}

	link, err := l.tagLinkRepository.Create(ctx, credentialID, tagID)
	if err != nil {
		log.Err(err).Int64("credential_id", credentialID).Int64("tag_id", tagID).Msg("linking tag ended with error")
		return models.CredentialTagLink{}, fmt.Errorf("linking tag ended with error: %w", err)
	}

	return link, nil
}

// Unlink removes the association row and returns the removed snapshot.
// Returns (nil, nil) when no such link exists; removing an absent link is
// not a failure.
func (l *tagLinkService) Unlink(ctx context.Context, linkID int64) (*models.CredentialTagLink, error) {
	log := logger.FromContext(ctx)

	link, err := l.tagLinkRepository.Delete(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		log.Err(err).Int64("link_id", linkID).Msg("unlinking tag ended with error")
		return nil, fmt.Errorf("unlinking tag ended with error: %w", err)
	}

	return &link, nil
}
