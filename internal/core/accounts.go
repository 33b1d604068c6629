package core

import (
	"context"
	"errors"
	"feedback/internal/repository"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Accounts is the credential store: it registers users, checks their
// credentials and owns their profile data.
type Accounts struct {
	logs       *zap.SugaredLogger
	users      UserRepository
	feedback   FeedbackRepository
	bcryptCost int
	// compared against when the username is unknown, so a miss costs the same as a wrong password
	dummyHash []byte
}

// NewAccounts is a constructor function for the Accounts type.
func NewAccounts(logger *zap.SugaredLogger, users UserRepository, feedback FeedbackRepository, bcryptCost int) *Accounts {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	if err != nil {
		logger.Warnw("failed to prepare dummy password hash", "error", err)
	}

	return &Accounts{
		logs:       logger,
		users:      users,
		feedback:   feedback,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

// Register hashes the password and stores the new user with a single insert.
// A username collision surfaces as ErrUsernameTaken.
func (a *Accounts) Register(ctx context.Context, msg RegisterMessage) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), a.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	record := repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
		Email:        msg.Email,
		FirstName:    msg.FirstName,
		LastName:     msg.LastName,
	}

	if err := a.users.CreateUser(ctx, record); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("%w: create user: %w", ErrStorage, err)
	}

	a.logs.Infow("user registered", "username", record.Username)

	return toUser(record), nil
}

// Authenticate reports whether password matches the stored hash for username.
// Unknown users and wrong passwords both yield (User{}, false, nil); an error
// is returned only when the store itself fails.
func (a *Accounts) Authenticate(ctx context.Context, username, password string) (User, bool, error) {
	record, err := a.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
			return User{}, false, nil
		}
		return User{}, false, fmt.Errorf("%w: get user: %w", ErrStorage, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)); err != nil {
		return User{}, false, nil
	}

	return toUser(record), true, nil
}

// Profile returns the user and the feedback they own. Only the user may see it.
func (a *Accounts) Profile(ctx context.Context, who Identity, username string) (Profile, error) {
	if err := Authorize(who, username); err != nil {
		return Profile{}, err
	}

	record, err := a.users.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("%w: get user: %w", ErrStorage, err)
	}

	feedbacks, err := a.feedback.ListFeedback(ctx, username)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: list feedback: %w", ErrStorage, err)
	}

	profile := Profile{
		User:     toUser(record),
		Feedback: make([]Feedback, 0, len(feedbacks)),
	}
	for _, fb := range feedbacks {
		profile.Feedback = append(profile.Feedback, toFeedback(fb))
	}

	return profile, nil
}

// DeleteAccount removes the user and everything they own. Ending the caller's
// session is left to the caller.
func (a *Accounts) DeleteAccount(ctx context.Context, who Identity, username string) error {
	if err := Authorize(who, username); err != nil {
		return err
	}

	if err := a.users.DeleteUser(ctx, username); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: delete user: %w", ErrStorage, err)
	}

	a.logs.Infow("user deleted", "username", username)

	return nil
}

func toUser(u repository.User) User {
	return User{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
