package core_test

import (
	"context"
	"errors"
	"feedback/internal/core"
	"feedback/internal/core/fake"
	"feedback/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Feedbacks", func() {
	var (
		fakeRepo   *fake.FeedbackRepository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		feedbacks *core.Feedbacks

		alice   core.Identity
		stored  repository.Feedback
		msg     core.FeedbackMessage
		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.FeedbackRepository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		feedbacks = core.NewFeedbacks(fakeLogger, fakeRepo)

		alice = core.Identity{Username: "alice"}
		stored = repository.Feedback{ID: 7, Title: "old", Content: "old content", OwnerUsername: "alice"}
		msg = core.FeedbackMessage{Title: "new", Content: "new content"}
		fakeErr = errors.New("fake error")

		fakeRepo.GetFeedbackReturns(stored, nil)
	})

	Describe("Add", func() {
		var (
			who   core.Identity
			owner string
			fb    core.Feedback
			err   error
		)

		BeforeEach(func() {
			who = alice
			owner = "alice"
			fakeRepo.CreateFeedbackReturns(repository.Feedback{ID: 3, Title: "new", Content: "new content", OwnerUsername: "alice"}, nil)
		})

		JustBeforeEach(func() {
			fb, err = feedbacks.Add(ctx, who, owner, msg)
		})

		It("should create feedback owned by the path user", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fb.ID).To(Equal(uint(3)))

			_, created := fakeRepo.CreateFeedbackArgsForCall(0)
			Expect(created.OwnerUsername).To(Equal("alice"))
			Expect(created.Title).To(Equal("new"))
		})

		When("adding to someone else's account", func() {
			BeforeEach(func() {
				owner = "bob"
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.CreateFeedbackCallCount()).To(Equal(0))
			})
		})

		When("anonymous", func() {
			BeforeEach(func() {
				who = core.Identity{}
			})

			It("should return ErrUnauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateFeedbackReturns(repository.Feedback{}, fakeErr)
			})

			It("should return a storage failure", func() {
				Expect(err).To(MatchError(core.ErrStorage))
			})
		})
	})

	Describe("Get", func() {
		It("should return feedback the caller owns", func() {
			fb, err := feedbacks.Get(ctx, alice, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(fb.Title).To(Equal("old"))
		})

		It("should refuse feedback owned by someone else", func() {
			_, err := feedbacks.Get(ctx, core.Identity{Username: "bob"}, 7)
			Expect(err).To(MatchError(core.ErrUnauthorized))
		})

		It("should report a missing id as unauthorized", func() {
			fakeRepo.GetFeedbackReturns(repository.Feedback{}, repository.ErrFeedbackNotFound)

			_, err := feedbacks.Get(ctx, alice, 99)
			Expect(err).To(MatchError(core.ErrUnauthorized))
		})

		It("should not touch the store for anonymous callers", func() {
			_, err := feedbacks.Get(ctx, core.Identity{}, 7)
			Expect(err).To(MatchError(core.ErrUnauthenticated))
			Expect(fakeRepo.GetFeedbackCallCount()).To(Equal(0))
		})
	})

	Describe("Update", func() {
		var (
			who core.Identity
			fb  core.Feedback
			err error
		)

		BeforeEach(func() {
			who = alice
		})

		JustBeforeEach(func() {
			fb, err = feedbacks.Update(ctx, who, 7, msg)
		})

		It("should update title and content", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fb).To(Equal(core.Feedback{ID: 7, Title: "new", Content: "new content", OwnerUsername: "alice"}))

			_, id, title, content := fakeRepo.UpdateFeedbackArgsForCall(0)
			Expect(id).To(Equal(uint(7)))
			Expect(title).To(Equal("new"))
			Expect(content).To(Equal("new content"))
		})

		When("the caller does not own the feedback", func() {
			BeforeEach(func() {
				who = core.Identity{Username: "bob"}
			})

			It("should leave it unchanged", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.UpdateFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the feedback disappears before the update", func() {
			BeforeEach(func() {
				fakeRepo.UpdateFeedbackReturns(repository.ErrFeedbackNotFound)
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateFeedbackReturns(fakeErr)
			})

			It("should return a storage failure", func() {
				Expect(err).To(MatchError(core.ErrStorage))
			})
		})
	})

	Describe("Delete", func() {
		var (
			who   core.Identity
			owner string
			err   error
		)

		BeforeEach(func() {
			who = alice
		})

		JustBeforeEach(func() {
			owner, err = feedbacks.Delete(ctx, who, 7)
		})

		It("should delete and return the owner", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(owner).To(Equal("alice"))
			Expect(fakeRepo.DeleteFeedbackCallCount()).To(Equal(1))
		})

		When("the caller does not own the feedback", func() {
			BeforeEach(func() {
				who = core.Identity{Username: "bob"}
			})

			It("should not delete it", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.DeleteFeedbackCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteFeedbackReturns(fakeErr)
			})

			It("should return a storage failure", func() {
				Expect(err).To(MatchError(core.ErrStorage))
			})
		})
	})
})
