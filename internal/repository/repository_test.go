package repository_test

import (
	"context"
	"errors"
	"time"

	"feedback/internal/db"
	"feedback/internal/repository"
	"feedback/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		fakeStorage.TransactionStub = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate users, feedbacks and sessions", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Feedback{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Session{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				Username:     "alice",
				PasswordHash: "$2a$04$hash",
				Email:        "a@x.com",
				FirstName:    "Alice",
				LastName:     "A",
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the insert succeeds", func() {
			It("should insert the user once", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				Expect(record).To(Equal(&user))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicateKey)
			})

			It("should return ErrUsernameTaken after a single attempt", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				Expect(fakeStorage.GetOneByCallCount()).To(BeZero())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUsernameTaken))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			user     repository.User
			err      error
			testUser repository.User
		)

		BeforeEach(func() {
			testUser = repository.User{Username: "alice", PasswordHash: "hashed_password"}
		})

		JustBeforeEach(func() {
			user, err = repo.GetUser(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					*dest.(*repository.User) = testUser
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(testUser))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteUser", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteUser(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(1, nil)
			})

			It("should delete feedback, sessions and the user in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.TransactionCallCount()).To(Equal(1))
				Expect(fakeStorage.DeleteByCallCount()).To(Equal(3))

				_, column, value, model := fakeStorage.DeleteByArgsForCall(0)
				Expect(column).To(Equal("owner_username"))
				Expect(value).To(Equal("alice"))
				Expect(model).To(BeAssignableToTypeOf(&repository.Feedback{}))

				_, column, _, model = fakeStorage.DeleteByArgsForCall(1)
				Expect(column).To(Equal("username"))
				Expect(model).To(BeAssignableToTypeOf(&repository.Session{}))

				_, column, _, model = fakeStorage.DeleteByArgsForCall(2)
				Expect(column).To(Equal("username"))
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, nil)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("deleting feedback fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturnsOnCall(0, 0, fakeErr)
			})

			It("should stop and return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
			})
		})

		When("the transaction cannot commit", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(1, nil)
				fakeStorage.TransactionStub = func(ctx context.Context, fn func(ctx context.Context) error) error {
					if err := fn(ctx); err != nil {
						return err
					}
					return fakeErr
				}
			})

			It("should return the commit error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateFeedback", func() {
		var (
			feedback repository.Feedback
			err      error
		)

		JustBeforeEach(func() {
			feedback, err = repo.CreateFeedback(ctx, repository.Feedback{
				Title:         "Hi",
				Content:       "Hello",
				OwnerUsername: "alice",
			})
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					record.(*repository.Feedback).ID = 1
					return nil
				}
			})

			It("should return the feedback with its id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(feedback.ID).To(Equal(uint(1)))
				Expect(feedback.OwnerUsername).To(Equal("alice"))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetFeedback", func() {
		It("should map a missing row to ErrFeedbackNotFound", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)

			_, err := repo.GetFeedback(ctx, 42)
			Expect(err).To(MatchError(repository.ErrFeedbackNotFound))
			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal(uint(42)))
		})
	})

	Describe("ListFeedback", func() {
		It("should query by owner", func() {
			fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
				*dest.(*[]repository.Feedback) = []repository.Feedback{{ID: 1}, {ID: 2}}
				return nil
			}

			feedbacks, err := repo.ListFeedback(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(feedbacks).To(HaveLen(2))
			_, column, value, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("owner_username"))
			Expect(value).To(Equal("alice"))
		})

		It("should return an empty list when the owner has none", func() {
			feedbacks, err := repo.ListFeedback(ctx, "bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(feedbacks).NotTo(BeNil())
			Expect(feedbacks).To(BeEmpty())
		})
	})

	Describe("UpdateFeedback", func() {
		It("should update title and content", func() {
			err := repo.UpdateFeedback(ctx, 3, "New", "Body")
			Expect(err).NotTo(HaveOccurred())
			_, column, value, _, fields := fakeStorage.UpdateByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal(uint(3)))
			Expect(fields).To(Equal(map[string]any{"title": "New", "content": "Body"}))
		})

		It("should map a missing row to ErrFeedbackNotFound", func() {
			fakeStorage.UpdateByReturns(db.ErrNotFound)
			err := repo.UpdateFeedback(ctx, 3, "New", "Body")
			Expect(err).To(MatchError(repository.ErrFeedbackNotFound))
		})
	})

	Describe("DeleteFeedback", func() {
		It("should delete by id", func() {
			fakeStorage.DeleteByReturns(1, nil)
			Expect(repo.DeleteFeedback(ctx, 3)).To(Succeed())
		})

		It("should report a missing row", func() {
			fakeStorage.DeleteByReturns(0, nil)
			Expect(repo.DeleteFeedback(ctx, 3)).To(MatchError(repository.ErrFeedbackNotFound))
		})
	})

	Describe("sessions", func() {
		It("should map a missing session to ErrSessionNotFound", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetSession(ctx, "sid")
			Expect(err).To(MatchError(repository.ErrSessionNotFound))
		})

		It("should not fail deleting a session that is already gone", func() {
			fakeStorage.DeleteByReturns(0, nil)
			Expect(repo.DeleteSession(ctx, "sid")).To(Succeed())
		})

		It("should delete sessions expiring at or before now", func() {
			now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			fakeStorage.DeleteOlderThanReturns(4, nil)

			n, err := repo.DeleteExpiredSessions(ctx, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(4)))
			_, column, cutoff, model := fakeStorage.DeleteOlderThanArgsForCall(0)
			Expect(column).To(Equal("expires_at"))
			Expect(cutoff).To(Equal(now))
			Expect(model).To(BeAssignableToTypeOf(&repository.Session{}))
		})
	})
})
