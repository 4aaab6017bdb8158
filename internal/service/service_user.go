package service

import (
	"context"
	"fmt"

	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/store"
	"github.com/jobify-dev/jobify/models"
)

// userService implements UserService on top of the UserRepository.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetProfile returns the account identified by userID.
//
// Returns a wrapped storage error if the lookup fails (e.g. account removed
// after the token was issued — see store.ErrNoUserWasFound).
func (u *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateInterests replaces the caller's interest tags.
//
// Only accounts with the user role carry interests; any other role is
// rejected with ErrWrongRole. An empty interest list is valid and clears the
// tags, which opts the account out of job announcements.
func (u *userService) UpdateInterests(ctx context.Context, userID int64, role string, interests []string) (models.User, error) {
	log := logger.FromContext(ctx)

	if role != models.RoleUser {
		log.Error().Int64("id", userID).Str("role", role).Msg("interests are only kept for the user role")
		return models.User{}, ErrWrongRole
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if interests == nil {
		interests = []string{}
	}
	user.Interests = interests

	saved, err := u.userRepository.SaveUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("saving interests ended with error")
		return models.User{}, fmt.Errorf("saving interests ended with error: %w", err)
	}

	return saved, nil
}

// UpdateLinkedIn replaces the caller's LinkedIn profile URL. An empty value
// clears it.
func (u *userService) UpdateLinkedIn(ctx context.Context, userID int64, linkedin string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	user.LinkedIn = linkedin

	saved, err := u.userRepository.SaveUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("saving linkedin profile ended with error")
		return models.User{}, fmt.Errorf("saving linkedin profile ended with error: %w", err)
	}

	return saved, nil
}
