package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type tagService struct {
	tagRepository store.TagRepository

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

// Create persists a new tag. Names are not unique: two tags may carry the
// same label and remain distinct by id.
//
// Returns ErrInvalidDataProvided when name is empty.
func (t *tagService) Create(ctx context.Context, name string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("empty tag name provided")
		return models.Tag{}, ErrInvalidDataProvided
	}

	tag, err := t.tagRepository.Create(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("tag creation ended with error")
		return models.Tag{}, fmt.Errorf("tag creation ended with error: %w", err)
	}

	return tag, nil
}

// GetByID retrieves the tag with the given identifier.
// Returns [store.ErrNotFound] when no such tag exists.
func (t *tagService) GetByID(ctx context.Context, tagID int64) (models.Tag, error) {
	tag, err := t.tagRepository.GetByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Tag{}, err
		}
		return models.Tag{}, fmt.Errorf("tag search by id failed: %w", err)
	}

	return tag, nil
}

// Rename changes the tag's label.
//
// Returns ErrInvalidDataProvided when update carries no name, and
// [store.ErrNotFound] when no such tag exists.
func (t *tagService) Rename(ctx context.Context, update models.TagUpdate) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if update.Name == nil || *update.Name == "" {
		return models.Tag{}, ErrInvalidDataProvided
	}

	tag, err := t.tagRepository.Update(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Tag{}, err
		}
		log.Err(err).Int64("tag_id", update.TagID).Msg("tag rename ended with error")
		return models.Tag{}, fmt.Errorf("tag rename ended with error: %w", err)
	}

	return tag, nil
}

// Delete removes the tag and returns the removed snapshot. Link rows
// referencing the tag are left in place.
// Returns [store.ErrNotFound] when no such tag exists.
func (t *tagService) Delete(ctx context.Context, tagID int64) (models.Tag, error) {
	log := logger.FromContext(ctx)

	tag, err := t.tagRepository.Delete(ctx, tagID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Tag{}, err
		}
		log.Err(err).Int64("tag_id", tagID).Msg("tag deletion ended with error")
		return models.Tag{}, fmt.Errorf("tag deletion ended with error: %w", err)
	}

	return tag, nil
}
