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
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Accounts", func() {
	var (
		fakeUsers    *fake.UserRepository
		fakeFeedback *fake.FeedbackRepository
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		accounts *core.Accounts

		fakeErr error
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserRepository)
		fakeFeedback = new(fake.FeedbackRepository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		accounts = core.NewAccounts(fakeLogger, fakeUsers, fakeFeedback, bcrypt.MinCost)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg  core.RegisterMessage
			user core.User
			err  error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username:  "alice",
				Password:  "s3cret",
				Email:     "alice@example.com",
				FirstName: "Alice",
				LastName:  "Liddell",
			}
		})

		JustBeforeEach(func() {
			user, err = accounts.Register(ctx, msg)
		})

		It("should store a bcrypt hash instead of the password", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeUsers.CreateUserCallCount()).To(Equal(1))

			_, stored := fakeUsers.CreateUserArgsForCall(0)
			Expect(stored.Username).To(Equal("alice"))
			Expect(stored.PasswordHash).NotTo(Equal(msg.Password))
			Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(msg.Password))).To(Succeed())
		})

		It("should return the public user fields", func() {
			Expect(user).To(Equal(core.User{
				Username:  "alice",
				Email:     "alice@example.com",
				FirstName: "Alice",
				LastName:  "Liddell",
			}))
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserReturns(repository.ErrUsernameTaken)
			})

			It("should return ErrUsernameTaken", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserReturns(fakeErr)
			})

			It("should wrap the error as a storage failure", func() {
				Expect(err).To(MatchError(core.ErrStorage))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			username string
			password string
			user     core.User
			ok       bool
			err      error
		)

		BeforeEach(func() {
			username = "alice"
			password = "s3cret"

			hash, hashErr := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			fakeUsers.GetUserReturns(repository.User{
				Username:     "alice",
				PasswordHash: string(hash),
				Email:        "alice@example.com",
			}, nil)
		})

		JustBeforeEach(func() {
			user, ok, err = accounts.Authenticate(ctx, username, password)
		})

		It("should accept the correct password", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(user.Username).To(Equal("alice"))
			Expect(user.Email).To(Equal("alice@example.com"))
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				password = "wrong"
			})

			It("should reject without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
				Expect(user).To(BeZero())
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should reject without an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserReturns(repository.User{}, fakeErr)
			})

			It("should return a storage failure", func() {
				Expect(ok).To(BeFalse())
				Expect(err).To(MatchError(core.ErrStorage))
			})
		})
	})

	Describe("Profile", func() {
		var (
			who     core.Identity
			profile core.Profile
			err     error
		)

		BeforeEach(func() {
			who = core.Identity{Username: "alice"}
			fakeUsers.GetUserReturns(repository.User{Username: "alice", Email: "alice@example.com"}, nil)
			fakeFeedback.ListFeedbackReturns([]repository.Feedback{
				{ID: 1, Title: "first", Content: "one", OwnerUsername: "alice"},
				{ID: 2, Title: "second", Content: "two", OwnerUsername: "alice"},
			}, nil)
		})

		JustBeforeEach(func() {
			profile, err = accounts.Profile(ctx, who, "alice")
		})

		It("should return the user and their feedback", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.User.Username).To(Equal("alice"))
			Expect(profile.Feedback).To(HaveLen(2))
			Expect(profile.Feedback[0].Title).To(Equal("first"))

			_, owner := fakeFeedback.ListFeedbackArgsForCall(0)
			Expect(owner).To(Equal("alice"))
		})

		When("the caller is anonymous", func() {
			BeforeEach(func() {
				who = core.Identity{}
			})

			It("should return ErrUnauthenticated without reading the store", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeUsers.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the caller is someone else", func() {
			BeforeEach(func() {
				who = core.Identity{Username: "bob"}
			})

			It("should return ErrUnauthorized without reading the store", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeUsers.GetUserCallCount()).To(Equal(0))
			})
		})

		When("the user row is gone", func() {
			BeforeEach(func() {
				fakeUsers.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrNotFound", func() {
				Expect(err).To(MatchError(core.ErrNotFound))
			})
		})

		When("listing feedback fails", func() {
			BeforeEach(func() {
				fakeFeedback.ListFeedbackReturns(nil, fakeErr)
			})

			It("should return a storage failure", func() {
				Expect(err).To(MatchError(core.ErrStorage))
			})
		})
	})

	Describe("DeleteAccount", func() {
		var (
			who core.Identity
			err error
		)

		BeforeEach(func() {
			who = core.Identity{Username: "alice"}
		})

		JustBeforeEach(func() {
			err = accounts.DeleteAccount(ctx, who, "alice")
		})

		It("should delete the user", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeUsers.DeleteUserCallCount()).To(Equal(1))
			_, username := fakeUsers.DeleteUserArgsForCall(0)
			Expect(username).To(Equal("alice"))
		})

		When("the caller is someone else", func() {
			BeforeEach(func() {
				who = core.Identity{Username: "mallory"}
			})

			It("should not delete anything", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeUsers.DeleteUserCallCount()).To(Equal(0))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.DeleteUserReturns(repository.ErrUserNotFound)
			})

			It("should return ErrNotFound", func() {
				Expect(err).To(MatchError(core.ErrNotFound))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeUsers.DeleteUserReturns(fakeErr)
			})

			It("should return a storage failure", func() {
				Expect(err).To(MatchError(core.ErrStorage))
			})
		})
	})
})
