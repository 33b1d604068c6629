package core_test

import (
	"context"
	"errors"
	"feedback/internal/core"
	"feedback/internal/core/fake"
	"feedback/internal/repository"
	tokenIssuer "feedback/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Sessions", func() {
	var (
		fakeRepo   *fake.SessionRepository
		fakeJWT    *fake.TokenIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		now        time.Time
		ttl        time.Duration

		sessions *core.Sessions

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.SessionRepository)
		fakeJWT = new(fake.TokenIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		ttl = 24 * time.Hour

		now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }
		DeferCleanup(func() {
			core.TimeNow = time.Now
		})

		sessions = core.NewSessions(fakeLogger, fakeRepo, fakeJWT, ttl)

		fakeErr = errors.New("fake error")
	})

	Describe("Start", func() {
		var (
			token    string
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			genToken = jwt.New(jwt.SigningMethodHS512)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed-token", nil)
		})

		JustBeforeEach(func() {
			token, err = sessions.Start(ctx, "alice")
		})

		It("should persist a session and sign a reference to it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("signed-token"))

			_, session := fakeRepo.CreateSessionArgsForCall(0)
			Expect(session.Username).To(Equal("alice"))
			Expect(session.ID).NotTo(BeEmpty())
			Expect(session.ExpiresAt).To(Equal(now.Add(ttl)))

			Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
				UserName:   "alice",
				Subject:    session.ID,
				Expiration: ttl,
				Data:       map[string]string{"typ": "session"},
			}))
			Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
		})

		It("should use a fresh id each time", func() {
			_, err := sessions.Start(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			_, first := fakeRepo.CreateSessionArgsForCall(0)
			_, second := fakeRepo.CreateSessionArgsForCall(1)
			Expect(first.ID).NotTo(Equal(second.ID))
		})

		When("the session cannot be stored", func() {
			BeforeEach(func() {
				fakeRepo.CreateSessionReturns(fakeErr)
			})

			It("should not issue a token", func() {
				Expect(err).To(MatchError(core.ErrStorage))
				Expect(token).To(BeEmpty())
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})

			It("should not leave a session row behind", func() {
				Expect(fakeRepo.CreateSessionCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Current", func() {
		var (
			token    string
			identity core.Identity
			err      error
		)

		BeforeEach(func() {
			token = "signed-token"
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "sid-1", "typ": "session"}, nil)
			fakeRepo.GetSessionReturns(repository.Session{
				ID:        "sid-1",
				Username:  "alice",
				ExpiresAt: now.Add(time.Hour),
			}, nil)
		})

		JustBeforeEach(func() {
			identity, err = sessions.Current(ctx, token)
		})

		It("should resolve a live session to its user", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(identity).To(Equal(core.Identity{Username: "alice"}))

			_, id := fakeRepo.GetSessionArgsForCall(0)
			Expect(id).To(Equal("sid-1"))
		})

		It("should not modify anything", func() {
			Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(0))
			Expect(fakeRepo.CreateSessionCallCount()).To(Equal(0))
		})

		When("no token is present", func() {
			BeforeEach(func() {
				token = ""
			})

			It("should be anonymous", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.Authenticated()).To(BeFalse())
				Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the token is forged", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should be anonymous", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.Authenticated()).To(BeFalse())
				Expect(fakeRepo.GetSessionCallCount()).To(Equal(0))
			})
		})

		When("the token was minted for something else", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "flash", "typ": "flash"}, nil)
			})

			It("should be anonymous without a lookup", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.Authenticated()).To(BeFalse())
				Expect(fakeRepo.GetSessionCallCount()).To(Equal(0))
			})
		})

		When("the token carries no type", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "sid-1"}, nil)
			})

			It("should be anonymous", func() {
				Expect(identity.Authenticated()).To(BeFalse())
				Expect(fakeRepo.GetSessionCallCount()).To(Equal(0))
			})
		})

		When("the token carries no session id", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice", "typ": "session"}, nil)
			})

			It("should be anonymous", func() {
				Expect(identity.Authenticated()).To(BeFalse())
			})
		})

		When("the session has ended", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{}, repository.ErrSessionNotFound)
			})

			It("should be anonymous", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.Authenticated()).To(BeFalse())
			})
		})

		When("the session has expired", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{
					ID:        "sid-1",
					Username:  "alice",
					ExpiresAt: now,
				}, nil)
			})

			It("should be anonymous", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.Authenticated()).To(BeFalse())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetSessionReturns(repository.Session{}, fakeErr)
			})

			It("should return a storage failure", func() {
				Expect(err).To(MatchError(core.ErrStorage))
			})
		})
	})

	Describe("End", func() {
		BeforeEach(func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "sid-1", "typ": "session"}, nil)
		})

		It("should delete the session row", func() {
			Expect(sessions.End(ctx, "signed-token")).To(Succeed())

			_, id := fakeRepo.DeleteSessionArgsForCall(0)
			Expect(id).To(Equal("sid-1"))
		})

		It("should be idempotent", func() {
			Expect(sessions.End(ctx, "signed-token")).To(Succeed())
			Expect(sessions.End(ctx, "signed-token")).To(Succeed())
		})

		It("should ignore an empty token", func() {
			Expect(sessions.End(ctx, "")).To(Succeed())
			Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(0))
		})

		It("should ignore an invalid token", func() {
			fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)

			Expect(sessions.End(ctx, "garbage")).To(Succeed())
			Expect(fakeRepo.DeleteSessionCallCount()).To(Equal(0))
		})

		It("should surface storage failures", func() {
			fakeRepo.DeleteSessionReturns(fakeErr)

			Expect(sessions.End(ctx, "signed-token")).To(MatchError(core.ErrStorage))
		})
	})

	Describe("Sweep", func() {
		It("should delete sessions expired as of now", func() {
			fakeRepo.DeleteExpiredSessionsReturns(3, nil)

			deleted, err := sessions.Sweep(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(3)))

			_, cutoff := fakeRepo.DeleteExpiredSessionsArgsForCall(0)
			Expect(cutoff).To(Equal(now))
		})

		It("should surface storage failures", func() {
			fakeRepo.DeleteExpiredSessionsReturns(0, fakeErr)

			_, err := sessions.Sweep(ctx)
			Expect(err).To(MatchError(core.ErrStorage))
		})
	})
})
