package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/models"
)

// pageRepository is the PostgreSQL-backed implementation of [PageRepository].
// Pages live in the "pages" table; the shared-user list lives in the
// "page_shares" join table and is loaded separately via [GetSharedUserIDs].
type pageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPageRepository constructs a [PageRepository] backed by the provided
// database connection and logger.
func NewPageRepository(db *DB, logger *logger.Logger) PageRepository {
	logger.Debug().Msg("creating page repository")
	return &pageRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePage persists a new page and returns it with server-assigned fields.
func (r *pageRepository) CreatePage(ctx context.Context, page models.Page) (models.Page, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPage, page.OwnerID, page.Name, page.Content)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*pageRepository.CreatePage").Msg("error: row is nil")
		return models.Page{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&page.PageID, &page.OwnerID, &page.Name, &page.Content, &page.PublicShareID, &page.DownloadAllowed, &page.CreatedAt, &page.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*pageRepository.CreatePage").Msg("error: scanning error")
		return models.Page{}, err
	}

	return page, nil
}

// GetPage retrieves a single page by id, without its shared-user list.
func (r *pageRepository) GetPage(ctx context.Context, pageID int64) (models.Page, error) {
	return r.getPageBy(ctx, getPage, pageID)
}

// GetPageByShareID retrieves the page published under the given public share
// id. Returns [ErrPageNotFound] when no page carries that share id.
func (r *pageRepository) GetPageByShareID(ctx context.Context, shareID string) (models.Page, error) {
	return r.getPageBy(ctx, getPageByShareID, shareID)
}

func (r *pageRepository) getPageBy(ctx context.Context, query string, arg any) (models.Page, error) {
	log := logger.FromContext(ctx)

	var page models.Page
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*pageRepository.getPageBy").Msg("error: row is nil")
		return models.Page{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&page.PageID, &page.OwnerID, &page.Name, &page.Content, &page.PublicShareID, &page.DownloadAllowed, &page.CreatedAt, &page.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Page{}, ErrPageNotFound
		}
		log.Err(err).Str("func", "*pageRepository.getPageBy").Msg("error: scanning error")
		return models.Page{}, err
	}

	return page, nil
}

// ListPagesByUser returns all pages the user owns plus all pages shared with
// them, ordered by id.
func (r *pageRepository) ListPagesByUser(ctx context.Context, userID int64) ([]models.Page, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPagesByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.ListPagesByUser").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pages []models.Page
	for rows.Next() {
		var p models.Page
		if err := rows.Scan(&p.PageID, &p.OwnerID, &p.Name, &p.Content, &p.PublicShareID, &p.DownloadAllowed, &p.CreatedAt, &p.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*pageRepository.ListPagesByUser").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*pageRepository.ListPagesByUser").Msg("error: rows iteration error")
		return nil, err
	}

	return pages, nil
}

// UpdatePage applies a partial update built from the non-nil fields of
// update, scoped to the page's owner. Returns [ErrPageNotFound] when the
// page does not exist or belongs to someone else.
func (r *pageRepository) UpdatePage(ctx context.Context, update models.PageUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildPageUpdateQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.UpdatePage").Msg("error building update query")
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "*pageRepository.UpdatePage").Msg("transient DB error")
		} else {
			log.Err(err).Str("func", "*pageRepository.UpdatePage").Msg("error executing statement")
		}
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.UpdatePage").Msg("error getting affected rows")
		return err
	}
	if affected == 0 {
		return ErrPageNotFound
	}

	return nil
}

// UpsertPage writes a full page snapshot keyed by page id. Re-running the
// same save overwrites the row with identical data, which keeps the async
// save path idempotent.
func (r *pageRepository) UpsertPage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	var saved models.SaveResult
	row := r.db.QueryRowContext(ctx, upsertPage, req.PageID, req.OwnerID, req.Name, req.Content)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*pageRepository.UpsertPage").Msg("error: row is nil")
		return models.SaveResult{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&saved.PageID, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*pageRepository.UpsertPage").Msg("error: scanning error")
		return models.SaveResult{}, err
	}

	// the explicit-id insert bypasses the serial sequence
	if _, err := r.db.ExecContext(ctx, syncPageIDSequence); err != nil {
		log.Err(err).Str("func", "*pageRepository.UpsertPage").Msg("error syncing page id sequence")
		return models.SaveResult{}, errors.Join(ErrExecutingStatement, err)
	}

	return saved, nil
}

// DeletePage removes a page owned by the given user. Shares and image records
// attached to the page are removed by ON DELETE CASCADE.
func (r *pageRepository) DeletePage(ctx context.Context, pageID, ownerID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePage, pageID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.DeletePage").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.DeletePage").Msg("error getting affected rows")
		return err
	}
	if affected == 0 {
		return ErrPageNotFound
	}

	return nil
}

// SharePage adds a user to the page's shared list. Sharing twice with the
// same user is a no-op.
func (r *pageRepository) SharePage(ctx context.Context, pageID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, sharePage, pageID, userID); err != nil {
		log.Err(err).Str("func", "*pageRepository.SharePage").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// UnsharePage removes a user from the page's shared list.
func (r *pageRepository) UnsharePage(ctx context.Context, pageID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, unsharePage, pageID, userID); err != nil {
		log.Err(err).Str("func", "*pageRepository.UnsharePage").Msg("error executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// GetSharedUserIDs returns the ids of all users the page is shared with.
func (r *pageRepository) GetSharedUserIDs(ctx context.Context, pageID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getSharedUserIDs, pageID)
	if err != nil {
		log.Err(err).Str("func", "*pageRepository.GetSharedUserIDs").Msg("error executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Err(err).Str("func", "*pageRepository.GetSharedUserIDs").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*pageRepository.GetSharedUserIDs").Msg("error: rows iteration error")
		return nil, err
	}

	return ids, nil
}
