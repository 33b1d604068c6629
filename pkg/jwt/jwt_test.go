package jwt_test

import (
	"time"

	tokenIssuer "feedback/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		now     time.Time
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		tokenIssuer.TimeNow = func() time.Time { return now }
		DeferCleanup(func() {
			tokenIssuer.TimeNow = time.Now
		})

		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "session-id",
			Expiration: time.Hour,
			Data:       map[string]string{"flash": "hello", "sub": "ignored"},
		}
	})

	sign := func(s *tokenIssuer.JWTService, info tokenIssuer.TokenInfo) string {
		signed, err := s.Sign(s.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	It("should round trip claims", func() {
		claims, err := service.Validate(sign(service, info))
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("session-id"))
		Expect(claims["username"]).To(Equal("alice"))
		Expect(claims["flash"]).To(Equal("hello"))
	})

	It("should not let data overwrite reserved claims", func() {
		claims, err := service.Validate(sign(service, info))
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("session-id"))
	})

	It("should reject tokens signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		_, err := service.Validate(sign(other, info))
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject expired tokens", func() {
		signed := sign(service, info)
		now = now.Add(2 * time.Hour)

		_, err := service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})
})
