package config_test

import (
	"os"
	"time"

	"feedback/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
				return
			}
			os.Unsetenv(key)
		})
	}

	unsetEnv := func(key string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
			}
		})
	}

	BeforeEach(func() {
		setEnv("API_PORT", "8080")
		setEnv("DB_CONNECTION_URL", "postgres://localhost/feedback_db")
		setEnv("SESSION_SECRET", "s3cr3t")
		unsetEnv("SESSION_TTL")
		unsetEnv("SECURE_COOKIES")
		unsetEnv("BCRYPT_COST")
		unsetEnv("LOG_LEVEL")
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("only required variables are set", func() {
		It("should apply defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.DBConnectionURL).To(Equal("postgres://localhost/feedback_db"))
			Expect(app.SessionSecret).To(Equal("s3cr3t"))
			Expect(app.SessionTTL).To(Equal(24 * time.Hour))
			Expect(app.SecureCookies).To(BeFalse())
			Expect(app.BcryptCost).To(Equal(bcrypt.DefaultCost))
			Expect(app.LogLevel).To(Equal(zapcore.InfoLevel))
		})
	})

	When("optional variables are set", func() {
		BeforeEach(func() {
			setEnv("SESSION_TTL", "30m")
			setEnv("SECURE_COOKIES", "true")
			setEnv("BCRYPT_COST", "12")
			setEnv("LOG_LEVEL", "debug")
		})

		It("should use them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.SessionTTL).To(Equal(30 * time.Minute))
			Expect(app.SecureCookies).To(BeTrue())
			Expect(app.BcryptCost).To(Equal(12))
			Expect(app.LogLevel).To(Equal(zapcore.DebugLevel))
		})
	})

	When("the session secret is missing", func() {
		BeforeEach(func() {
			unsetEnv("SESSION_SECRET")
		})

		It("should return an error naming the variable", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_SECRET")))
		})
	})

	When("the database url is missing", func() {
		BeforeEach(func() {
			unsetEnv("DB_CONNECTION_URL")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("environment variable not found")))
		})
	})

	When("the session ttl is malformed", func() {
		BeforeEach(func() {
			setEnv("SESSION_TTL", "forever")
		})

		It("should return a parse error", func() {
			Expect(err).To(MatchError(ContainSubstring("parse SESSION_TTL")))
		})
	})

	When("the bcrypt cost is out of range", func() {
		BeforeEach(func() {
			setEnv("BCRYPT_COST", "99")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("BCRYPT_COST out of range")))
		})
	})
})
