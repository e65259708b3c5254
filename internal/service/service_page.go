package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/internal/utils"
	"github.com/pagemark/pagemark/models"
)

// pageService is the concrete implementation of PageService.
//
// Ownership rules: the owner may do everything; a shared user may read and
// save; an anonymous visitor may read published pages only. Rename, share,
// publish, and delete stay owner-only because the repository scopes those
// statements by owner id.
type pageService struct {
	pageRepository store.PageRepository
	uuidGenerator  *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewPageService constructs a PageService wired to the given PageRepository.
func NewPageService(pageRepository store.PageRepository, logger *logger.Logger) PageService {
	return &pageService{
		pageRepository: pageRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreatePage persists a new page for its owner.
func (p *pageService) CreatePage(ctx context.Context, page models.Page) (models.Page, error) {
	log := logger.FromContext(ctx)

	if page.OwnerID == 0 || page.Name == "" {
		log.Error().Int64("ownerID", page.OwnerID).Msg("invalid page data provided")
		return models.Page{}, ErrInvalidDataProvided
	}

	createdPage, err := p.pageRepository.CreatePage(ctx, page)
	if err != nil {
		log.Err(err).Int64("ownerID", page.OwnerID).Msg("page creation ended with error")
		return models.Page{}, fmt.Errorf("page creation ended with error: %w", err)
	}

	return createdPage, nil
}

// GetPage returns a page with its shared-user list, provided the requesting
// user owns it or has it shared with them.
func (p *pageService) GetPage(ctx context.Context, pageID, userID int64) (models.Page, error) {
	log := logger.FromContext(ctx)

	page, err := p.loadPageWithShares(ctx, pageID)
	if err != nil {
		return models.Page{}, err
	}

	if page.OwnerID != userID && !slices.Contains(page.SharedUserIDs, userID) {
		log.Warn().Int64("pageID", pageID).Int64("userID", userID).Msg("page access denied")
		return models.Page{}, ErrAccessDenied
	}

	return page, nil
}

// ListPages returns every page the user owns or has shared with them.
func (p *pageService) ListPages(ctx context.Context, userID int64) ([]models.Page, error) {
	log := logger.FromContext(ctx)

	pages, err := p.pageRepository.ListPagesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("page listing ended with error")
		return nil, fmt.Errorf("page listing ended with error: %w", err)
	}

	return pages, nil
}

// UpdatePage applies a partial update. The repository scopes the statement by
// owner id, so a non-owner gets store.ErrPageNotFound back.
func (p *pageService) UpdatePage(ctx context.Context, update models.PageUpdate) error {
	log := logger.FromContext(ctx)

	if update.PageID == 0 || update.OwnerID == 0 {
		log.Error().Int64("pageID", update.PageID).Msg("invalid page update provided")
		return ErrInvalidDataProvided
	}
	if update.Name == nil && update.Content == nil && update.DownloadAllowed == nil && update.PublicShareID == nil {
		return ErrInvalidDataProvided
	}

	if err := p.pageRepository.UpdatePage(ctx, update); err != nil {
		log.Err(err).Int64("pageID", update.PageID).Msg("page update ended with error")
		return fmt.Errorf("page update ended with error: %w", err)
	}

	return nil
}

// DeletePage removes a page owned by the given user.
func (p *pageService) DeletePage(ctx context.Context, pageID, ownerID int64) error {
	log := logger.FromContext(ctx)

	if err := p.pageRepository.DeletePage(ctx, pageID, ownerID); err != nil {
		log.Err(err).Int64("pageID", pageID).Msg("page deletion ended with error")
		return fmt.Errorf("page deletion ended with error: %w", err)
	}

	return nil
}

// SharePage grants another user read/save access to the page. Only the owner
// may share, and sharing with yourself is rejected.
func (p *pageService) SharePage(ctx context.Context, pageID, ownerID, targetUserID int64) error {
	log := logger.FromContext(ctx)

	if targetUserID == 0 || targetUserID == ownerID {
		return ErrInvalidDataProvided
	}

	if err := p.requireOwner(ctx, pageID, ownerID); err != nil {
		return err
	}

	if err := p.pageRepository.SharePage(ctx, pageID, targetUserID); err != nil {
		log.Err(err).Int64("pageID", pageID).Int64("targetUserID", targetUserID).Msg("page sharing ended with error")
		return fmt.Errorf("page sharing ended with error: %w", err)
	}

	return nil
}

// UnsharePage revokes a user's access to the page.
func (p *pageService) UnsharePage(ctx context.Context, pageID, ownerID, targetUserID int64) error {
	log := logger.FromContext(ctx)

	if err := p.requireOwner(ctx, pageID, ownerID); err != nil {
		return err
	}

	if err := p.pageRepository.UnsharePage(ctx, pageID, targetUserID); err != nil {
		log.Err(err).Int64("pageID", pageID).Int64("targetUserID", targetUserID).Msg("page unsharing ended with error")
		return fmt.Errorf("page unsharing ended with error: %w", err)
	}

	return nil
}

// PublishPage assigns the page a public share id and returns it. Re-publishing
// an already published page rotates the share id, invalidating old links.
func (p *pageService) PublishPage(ctx context.Context, pageID, ownerID int64, downloadAllowed bool) (string, error) {
	log := logger.FromContext(ctx)

	shareID := p.uuidGenerator.Generate()
	update := models.PageUpdate{
		PageID:          pageID,
		OwnerID:         ownerID,
		PublicShareID:   &shareID,
		DownloadAllowed: &downloadAllowed,
	}

	if err := p.pageRepository.UpdatePage(ctx, update); err != nil {
		log.Err(err).Int64("pageID", pageID).Msg("page publishing ended with error")
		return "", fmt.Errorf("page publishing ended with error: %w", err)
	}

	return shareID, nil
}

// UnpublishPage clears the page's public share id.
func (p *pageService) UnpublishPage(ctx context.Context, pageID, ownerID int64) error {
	log := logger.FromContext(ctx)

	cleared := ""
	update := models.PageUpdate{
		PageID:        pageID,
		OwnerID:       ownerID,
		PublicShareID: &cleared,
	}

	if err := p.pageRepository.UpdatePage(ctx, update); err != nil {
		log.Err(err).Int64("pageID", pageID).Msg("page unpublishing ended with error")
		return fmt.Errorf("page unpublishing ended with error: %w", err)
	}

	return nil
}

// GetPublicPage resolves a public share id to its page. No authentication is
// required; the caller gets the page only if the share id still resolves.
func (p *pageService) GetPublicPage(ctx context.Context, shareID string) (models.Page, error) {
	log := logger.FromContext(ctx)

	if shareID == "" {
		return models.Page{}, ErrInvalidDataProvided
	}

	page, err := p.pageRepository.GetPageByShareID(ctx, shareID)
	if err != nil {
		log.Err(err).Str("shareID", shareID).Msg("public page lookup ended with error")
		return models.Page{}, fmt.Errorf("public page lookup ended with error: %w", err)
	}

	return page, nil
}

// SavePage upserts a full page snapshot. The saving user must own the page or
// have it shared with them; a save of a page id that does not exist yet
// creates it for the saving user.
func (p *pageService) SavePage(ctx context.Context, req models.SavePageRequest) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if req.PageID == 0 || req.OwnerID == 0 {
		log.Error().Int64("pageID", req.PageID).Msg("invalid save request provided")
		return models.SaveResult{}, ErrInvalidDataProvided
	}

	existing, err := p.loadPageWithShares(ctx, req.PageID)
	switch {
	case err == nil:
		if existing.OwnerID != req.OwnerID && !slices.Contains(existing.SharedUserIDs, req.OwnerID) {
			log.Warn().Int64("pageID", req.PageID).Int64("userID", req.OwnerID).Msg("page save access denied")
			return models.SaveResult{}, ErrAccessDenied
		}
		// keep the original owner; a shared user saving must not steal the page
		req.OwnerID = existing.OwnerID
	case isNotFound(err):
		// fresh page, saved under the requesting user
	default:
		return models.SaveResult{}, err
	}

	saved, err := p.pageRepository.UpsertPage(ctx, req)
	if err != nil {
		log.Err(err).Int64("pageID", req.PageID).Msg("page save ended with error")
		return models.SaveResult{}, fmt.Errorf("page save ended with error: %w", err)
	}

	return saved, nil
}

func (p *pageService) loadPageWithShares(ctx context.Context, pageID int64) (models.Page, error) {
	log := logger.FromContext(ctx)

	page, err := p.pageRepository.GetPage(ctx, pageID)
	if err != nil {
		log.Err(err).Int64("pageID", pageID).Msg("page lookup ended with error")
		return models.Page{}, fmt.Errorf("page lookup ended with error: %w", err)
	}

	sharedIDs, err := p.pageRepository.GetSharedUserIDs(ctx, pageID)
	if err != nil {
		log.Err(err).Int64("pageID", pageID).Msg("shared user lookup ended with error")
		return models.Page{}, fmt.Errorf("shared user lookup ended with error: %w", err)
	}
	page.SharedUserIDs = sharedIDs

	return page, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrPageNotFound)
}

func (p *pageService) requireOwner(ctx context.Context, pageID, ownerID int64) error {
	page, err := p.pageRepository.GetPage(ctx, pageID)
	if err != nil {
		return fmt.Errorf("page lookup ended with error: %w", err)
	}
	if page.OwnerID != ownerID {
		return ErrAccessDenied
	}

	return nil
}
