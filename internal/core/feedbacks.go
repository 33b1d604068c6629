package core

import (
	"context"
	"errors"
	"feedback/internal/repository"
	"fmt"

	"go.uber.org/zap"
)

// Feedbacks manages feedback records on behalf of their owners.
type Feedbacks struct {
	logs *zap.SugaredLogger
	repo FeedbackRepository
}

func NewFeedbacks(logger *zap.SugaredLogger, repo FeedbackRepository) *Feedbacks {
	return &Feedbacks{
		logs: logger,
		repo: repo,
	}
}

func (f *Feedbacks) Add(ctx context.Context, who Identity, owner string, msg FeedbackMessage) (Feedback, error) {
	if err := Authorize(who, owner); err != nil {
		return Feedback{}, err
	}

	created, err := f.repo.CreateFeedback(ctx, repository.Feedback{
		Title:         msg.Title,
		Content:       msg.Content,
		OwnerUsername: owner,
	})
	if err != nil {
		return Feedback{}, fmt.Errorf("%w: create feedback: %w", ErrStorage, err)
	}

	f.logs.Infow("feedback added", "id", created.ID, "owner", owner)

	return toFeedback(created), nil
}

func (f *Feedbacks) Get(ctx context.Context, who Identity, id uint) (Feedback, error) {
	fb, err := f.loadOwned(ctx, who, id)
	if err != nil {
		return Feedback{}, err
	}

	return toFeedback(fb), nil
}

func (f *Feedbacks) Update(ctx context.Context, who Identity, id uint, msg FeedbackMessage) (Feedback, error) {
	fb, err := f.loadOwned(ctx, who, id)
	if err != nil {
		return Feedback{}, err
	}

	if err := f.repo.UpdateFeedback(ctx, id, msg.Title, msg.Content); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return Feedback{}, ErrUnauthorized
		}
		return Feedback{}, fmt.Errorf("%w: update feedback: %w", ErrStorage, err)
	}

	fb.Title = msg.Title
	fb.Content = msg.Content

	return toFeedback(fb), nil
}

// Delete removes the feedback and returns its owner's username.
func (f *Feedbacks) Delete(ctx context.Context, who Identity, id uint) (string, error) {
	fb, err := f.loadOwned(ctx, who, id)
	if err != nil {
		return "", err
	}

	if err := f.repo.DeleteFeedback(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("%w: delete feedback: %w", ErrStorage, err)
	}

	f.logs.Infow("feedback deleted", "id", id, "owner", fb.OwnerUsername)

	return fb.OwnerUsername, nil
}

// loadOwned fetches the feedback and checks who owns it. A missing record is
// reported as ErrUnauthorized so callers cannot probe which ids exist.
func (f *Feedbacks) loadOwned(ctx context.Context, who Identity, id uint) (repository.Feedback, error) {
	if !who.Authenticated() {
		return repository.Feedback{}, ErrUnauthenticated
	}

	fb, err := f.repo.GetFeedback(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return repository.Feedback{}, ErrUnauthorized
		}
		return repository.Feedback{}, fmt.Errorf("%w: get feedback: %w", ErrStorage, err)
	}

	if err := Authorize(who, fb.OwnerUsername); err != nil {
		return repository.Feedback{}, err
	}

	return fb, nil
}

func toFeedback(fb repository.Feedback) Feedback {
	return Feedback{
		ID:            fb.ID,
		Title:         fb.Title,
		Content:       fb.Content,
		OwnerUsername: fb.OwnerUsername,
	}
}
