package service

import (
	"context"
	"fmt"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/models"
)

// adminService is the concrete implementation of AdminService. The admin is
// identified by the configured admin email; an empty configuration disables
// the whole surface.
type adminService struct {
	userRepository store.UserRepository
	adminEmail     string
	logger         *logger.Logger
}

// NewAdminService constructs an AdminService wired to the UserRepository.
func NewAdminService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		adminEmail:     cfg.AdminEmail,
		logger:         logger,
	}
}

// ListUsers returns every account. Admin only.
func (a *adminService) ListUsers(ctx context.Context, actorID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// SetUserBanned flips the ban flag on an account. Admin only; the admin
// cannot ban themselves.
func (a *adminService) SetUserBanned(ctx context.Context, actorID, userID int64, banned bool) error {
	log := logger.FromContext(ctx)

	if err := a.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.SetUserBanned(ctx, userID, banned); err != nil {
		log.Err(err).Int64("userID", userID).Msg("ban update ended with error")
		return fmt.Errorf("ban update ended with error: %w", err)
	}

	log.Info().Int64("userID", userID).Bool("banned", banned).Msg("user ban flag updated")
	return nil
}

// DeleteUser removes an account and everything it owns. Admin only; the
// admin cannot delete themselves.
func (a *adminService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return ErrInvalidDataProvided
	}

	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Int64("userID", userID).Msg("user account deleted")
	return nil
}

func (a *adminService) requireAdmin(ctx context.Context, actorID int64) error {
	log := logger.FromContext(ctx)

	if a.adminEmail == "" {
		return ErrNotAdmin
	}

	actor, err := a.userRepository.FindUserByID(ctx, actorID)
	if err != nil {
		log.Err(err).Int64("actorID", actorID).Msg("admin lookup ended with error")
		return fmt.Errorf("admin lookup ended with error: %w", err)
	}
	if actor.Email != a.adminEmail {
		log.Warn().Int64("actorID", actorID).Msg("admin access denied")
		return ErrNotAdmin
	}

	return nil
}
