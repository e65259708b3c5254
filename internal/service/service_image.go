package service

import (
	"context"
	"fmt"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/objstore"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/models"
)

// imageService is the concrete implementation of ImageService. Object bytes
// go to the object store, metadata rows to the image repository; cleanup
// removes both, counting rather than resuming partial failures.
type imageService struct {
	imageRepository store.ImageRepository
	pageRepository  store.PageRepository
	objectStore     objstore.ObjectStore
	logger          *logger.Logger
}

// NewImageService constructs an ImageService wired to the image and page
// repositories and the object store.
func NewImageService(imageRepository store.ImageRepository, pageRepository store.PageRepository, objectStore objstore.ObjectStore, logger *logger.Logger) ImageService {
	return &imageService{
		imageRepository: imageRepository,
		pageRepository:  pageRepository,
		objectStore:     objectStore,
		logger:          logger,
	}
}

// UploadImage stores the image bytes under a fresh key, records the upload,
// and returns the key together with a presigned read URL.
//
// The target page must exist and belong to (or be shared with) the uploading
// user; the page check keeps strangers from attaching objects to foreign
// pages.
func (s *imageService) UploadImage(ctx context.Context, req models.UploadImageRequest) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if req.PageID == 0 || req.OwnerID == 0 || len(req.Data) == 0 {
		log.Error().Int64("pageID", req.PageID).Msg("invalid upload request provided")
		return models.UploadResult{}, ErrInvalidDataProvided
	}

	page, err := s.pageRepository.GetPage(ctx, req.PageID)
	if err != nil {
		log.Err(err).Int64("pageID", req.PageID).Msg("upload target page lookup ended with error")
		return models.UploadResult{}, fmt.Errorf("upload target page lookup ended with error: %w", err)
	}
	if page.OwnerID != req.OwnerID {
		sharedIDs, err := s.pageRepository.GetSharedUserIDs(ctx, req.PageID)
		if err != nil {
			return models.UploadResult{}, fmt.Errorf("shared user lookup ended with error: %w", err)
		}
		shared := false
		for _, id := range sharedIDs {
			if id == req.OwnerID {
				shared = true
				break
			}
		}
		if !shared {
			log.Warn().Int64("pageID", req.PageID).Int64("userID", req.OwnerID).Msg("image upload access denied")
			return models.UploadResult{}, ErrAccessDenied
		}
	}

	key := objstore.NewStorageKey(req.OwnerID)

	if err := s.objectStore.Put(ctx, key, req.Data, req.ContentType); err != nil {
		log.Err(err).Str("key", key).Msg("image upload to object store failed")
		return models.UploadResult{}, fmt.Errorf("image upload to object store failed: %w", err)
	}

	image := models.Image{Key: key, PageID: req.PageID, OwnerID: req.OwnerID}
	if err := s.imageRepository.CreateImage(ctx, image); err != nil {
		log.Err(err).Str("key", key).Msg("image record creation ended with error")
		// the object stays behind; the orphan cleanup pass picks it up later
		return models.UploadResult{}, fmt.Errorf("image record creation ended with error: %w", err)
	}

	url, err := s.objectStore.PresignGet(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("presigning uploaded image failed")
		// the upload itself succeeded; return the key without a URL
		return models.UploadResult{Key: key}, nil
	}

	return models.UploadResult{Key: key, URL: url}, nil
}

// MarkImage flags an uploaded image for removal by the next marked-cleanup
// run.
func (s *imageService) MarkImage(ctx context.Context, key string, ownerID int64) error {
	log := logger.FromContext(ctx)

	if key == "" || ownerID == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.imageRepository.MarkImage(ctx, key, ownerID); err != nil {
		log.Err(err).Str("key", key).Msg("image marking ended with error")
		return fmt.Errorf("image marking ended with error: %w", err)
	}

	return nil
}

// Cleanup runs one cleanup pass of the requested type over at most BatchSize
// images: candidates are listed, their objects deleted from the object store,
// and only the records of confirmed-deleted objects dropped. A key whose
// object survives keeps its row, so the next run lists it again; a partially
// failed batch simply reports smaller numbers.
func (s *imageService) Cleanup(ctx context.Context, req models.CleanupRequest) (models.CleanupResult, error) {
	log := logger.FromContext(ctx)

	if req.BatchSize <= 0 {
		return models.CleanupResult{}, ErrInvalidDataProvided
	}

	var (
		keys []string
		err  error
	)
	switch req.CleanupType {
	case models.CleanupMarked:
		keys, err = s.imageRepository.ListMarked(ctx, req.BatchSize)
	case models.CleanupOrphaned:
		keys, err = s.imageRepository.ListOrphaned(ctx, req.BatchSize)
	default:
		return models.CleanupResult{}, ErrInvalidDataProvided
	}
	if err != nil {
		log.Err(err).Str("cleanupType", string(req.CleanupType)).Msg("cleanup candidate listing ended with error")
		return models.CleanupResult{}, fmt.Errorf("cleanup candidate listing ended with error: %w", err)
	}

	result := models.CleanupResult{CleanupType: req.CleanupType, Scanned: len(keys)}
	if len(keys) == 0 {
		return result, nil
	}

	deletedKeys, err := s.objectStore.Delete(ctx, keys)
	if err != nil {
		log.Err(err).Int("keys", len(keys)).Msg("object store deletion ended with error")
		return result, fmt.Errorf("object store deletion ended with error: %w", err)
	}
	if len(deletedKeys) < len(keys) {
		log.Warn().Int("kept", len(keys)-len(deletedKeys)).Msg("some objects survived deletion, their records stay for the next run")
	}
	if len(deletedKeys) == 0 {
		return result, nil
	}

	deleted, err := s.imageRepository.DeleteImages(ctx, deletedKeys)
	if err != nil {
		log.Err(err).Int("keys", len(deletedKeys)).Msg("image record deletion ended with error")
		return result, fmt.Errorf("image record deletion ended with error: %w", err)
	}
	result.Deleted = deleted

	log.Info().
		Str("cleanupType", string(req.CleanupType)).
		Int("scanned", result.Scanned).
		Int("deleted", result.Deleted).
		Msg("image cleanup pass finished")

	return result, nil
}
