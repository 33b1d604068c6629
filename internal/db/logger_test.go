package db_test

import (
	"context"
	"errors"
	"time"

	"feedback/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("ZapGormLogger", func() {
	var (
		logs    *observer.ObservedLogs
		gormLog logger.Interface
		sql     func() (string, int64)
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		gormLog = db.NewZapGormLogger(zap.New(core).Sugar(), 50*time.Millisecond).LogMode(logger.Warn)
		sql = func() (string, int64) { return `SELECT 1`, 1 }
	})

	It("should log failed queries as errors", func() {
		gormLog.Trace(context.Background(), time.Now(), sql, errors.New("boom"))

		Expect(logs.FilterMessage("query failed").Len()).To(Equal(1))
		entry := logs.All()[0]
		Expect(entry.Level).To(Equal(zapcore.ErrorLevel))
		Expect(entry.ContextMap()).To(HaveKeyWithValue("sql", "SELECT 1"))
	})

	It("should not log missing records", func() {
		gormLog.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)

		Expect(logs.Len()).To(BeZero())
	})

	It("should warn about slow queries", func() {
		gormLog.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)

		Expect(logs.FilterMessage("slow query").Len()).To(Equal(1))
	})

	It("should stay quiet when silenced", func() {
		silent := gormLog.LogMode(logger.Silent)
		silent.Trace(context.Background(), time.Now(), sql, errors.New("boom"))

		Expect(logs.Len()).To(BeZero())
	})
})
