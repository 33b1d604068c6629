package cmd

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) Sweep(context.Context) (int64, error) {
	s.calls.Add(1)
	return 1, s.err
}

var _ = Describe("startSweeper", func() {
	It("should sweep on every tick until cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		sweeper := &countingSweeper{}

		done := startSweeper(ctx, zap.NewNop().Sugar(), sweeper, 5*time.Millisecond)

		Eventually(sweeper.calls.Load).Should(BeNumerically(">=", 2))
		cancel()
		Eventually(done).Should(BeClosed())
	})

	It("should keep running after a failed sweep", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sweeper := &countingSweeper{err: errors.New("db down")}

		startSweeper(ctx, zap.NewNop().Sugar(), sweeper, 5*time.Millisecond)

		Eventually(sweeper.calls.Load).Should(BeNumerically(">=", 2))
	})
})
