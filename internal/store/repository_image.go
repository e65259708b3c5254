package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
)

// imageRepository is the PostgreSQL-backed implementation of
// [ImageRepository]. Rows in the "images" table track which object-store keys
// exist, who uploaded them, and whether they are marked for deletion; the
// bytes themselves never touch the database.
type imageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewImageRepository constructs an [ImageRepository] backed by the provided
// database connection and logger.
func NewImageRepository(db *DB, logger *logger.Logger) ImageRepository {
	logger.Debug().Msg("creating image repository")
	return &imageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateImage records a freshly uploaded object-store key.
func (r *imageRepository) CreateImage(ctx context.Context, image models.Image) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createImage, image.Key, image.PageID, image.OwnerID); err != nil {
		log.Err(err).Str("func", "*imageRepository.CreateImage").Msg("error executing statement")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrPageNotFound
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// MarkImage flags an image for removal by the next marked-cleanup run. Only
// the uploading user may mark their image.
func (r *imageRepository) MarkImage(ctx context.Context, key string, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markImage, key, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.MarkImage").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.MarkImage").Msg("error getting affected rows")
		return err
	}
	if affected == 0 {
		return ErrImageNotFound
	}

	return nil
}

// ListMarked returns up to limit keys of images flagged for deletion, oldest
// first.
func (r *imageRepository) ListMarked(ctx context.Context, limit int) ([]string, error) {
	return r.listKeys(ctx, listMarkedImages, limit)
}

// ListOrphaned returns up to limit keys of images no live page content
// references any more, oldest first.
func (r *imageRepository) ListOrphaned(ctx context.Context, limit int) ([]string, error) {
	return r.listKeys(ctx, listOrphanedImages, limit)
}

func (r *imageRepository) listKeys(ctx context.Context, query string, limit int) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.listKeys").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "*imageRepository.listKeys").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*imageRepository.listKeys").Msg("error: rows iteration error")
		return nil, err
	}

	return keys, nil
}

// DeleteImages removes the given keys and returns how many rows were
// actually deleted. Keys with no matching row are silently skipped, so the
// cleanup run can report scanned vs deleted counts honestly.
func (r *imageRepository) DeleteImages(ctx context.Context, keys []string) (int, error) {
	log := logger.FromContext(ctx)

	if len(keys) == 0 {
		return 0, nil
	}

	result, err := r.db.ExecContext(ctx, deleteImages, keys)
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.DeleteImages").Msg("error executing statement")
		return 0, errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*imageRepository.DeleteImages").Msg("error getting affected rows")
		return 0, err
	}

	return int(affected), nil
}
