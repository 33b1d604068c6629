package repository

import (
	"context"
	"errors"
	"feedback/internal/db"
	"fmt"
	"time"
)

var (
	ErrUserNotFound     error = errors.New("user not found")
	ErrUsernameTaken    error = errors.New("username already taken")
	ErrFeedbackNotFound error = errors.New("feedback not found")
	ErrSessionNotFound  error = errors.New("session not found")
)

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Feedback{}, &Session{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser performs exactly one insert. A username collision is reported by
// the primary key constraint at commit time, there is no pre-check.
func (r *Repository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *Repository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user together with every feedback and session they
// own, in one transaction.
func (r *Repository) DeleteUser(ctx context.Context, username string) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		if _, err := r.db.DeleteBy(ctx, "owner_username", username, &Feedback{}); err != nil {
			return fmt.Errorf("delete user feedback: %w", err)
		}

		if _, err := r.db.DeleteBy(ctx, "username", username, &Session{}); err != nil {
			return fmt.Errorf("delete user sessions: %w", err)
		}

		deleted, err := r.db.DeleteBy(ctx, "username", username, &User{})
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if deleted == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}

func (r *Repository) CreateFeedback(ctx context.Context, feedback Feedback) (Feedback, error) {
	err := r.db.Insert(ctx, &feedback)
	if err != nil {
		return Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}

	return feedback, nil
}

func (r *Repository) GetFeedback(ctx context.Context, id uint) (Feedback, error) {
	var feedback Feedback

	err := r.db.GetOneBy(ctx, "id", id, &feedback)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Feedback{}, ErrFeedbackNotFound
		}
		return Feedback{}, fmt.Errorf("get feedback by id: %w", err)
	}

	return feedback, nil
}

func (r *Repository) ListFeedback(ctx context.Context, owner string) ([]Feedback, error) {
	feedbacks := []Feedback{}

	err := r.db.GetAllBy(ctx, "owner_username", owner, &feedbacks)
	if err != nil {
		return nil, fmt.Errorf("list feedback by owner: %w", err)
	}

	return feedbacks, nil
}

func (r *Repository) UpdateFeedback(ctx context.Context, id uint, title, content string) error {
	err := r.db.UpdateBy(ctx, "id", id, &Feedback{}, map[string]any{
		"title":   title,
		"content": content,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrFeedbackNotFound
		}
		return fmt.Errorf("update feedback: %w", err)
	}

	return nil
}

func (r *Repository) DeleteFeedback(ctx context.Context, id uint) error {
	deleted, err := r.db.DeleteBy(ctx, "id", id, &Feedback{})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if deleted == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

func (r *Repository) CreateSession(ctx context.Context, session Session) error {
	err := r.db.Insert(ctx, &session)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *Repository) GetSession(ctx context.Context, id string) (Session, error) {
	var session Session

	err := r.db.GetOneBy(ctx, "id", id, &session)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("get session by id: %w", err)
	}

	return session, nil
}

// DeleteSession is idempotent: deleting a session that is already gone is not
// an error.
func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.DeleteBy(ctx, "id", id, &Session{}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	deleted, err := r.db.DeleteOlderThan(ctx, "expires_at", now, &Session{})
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return deleted, nil
}
