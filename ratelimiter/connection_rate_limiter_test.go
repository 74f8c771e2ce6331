package ratelimiter_test

import (
	"context"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/ratelimiter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ConnectionRateLimiter", func() {

	Describe("RateLimit", func() {
		Context("success", func() {
			It("rate limits", func(ctx context.Context) {
				rateLimiter, err := ratelimiter.NewConnectionRateLimiter(5, time.Second)
				Expect(err).NotTo(HaveOccurred())

				completion := make(chan struct{}, 10)

				for i := 0; i < 10; i++ {
					go func() {
						defer GinkgoRecover()
						Expect(rateLimiter.RateLimit(context.Background())).To(Succeed())
						completion <- struct{}{}
					}()
				}

				time.Sleep(100 * time.Millisecond)
				Expect(completion).To(HaveLen(5))

				Eventually(completion, 2*time.Second).Should(HaveLen(10))
			}, SpecTimeout(3*time.Second))

			It("stops waiting when the context is cancelled", func() {
				rateLimiter, err := ratelimiter.NewConnectionRateLimiter(1, time.Minute)
				Expect(err).NotTo(HaveOccurred())
				Expect(rateLimiter.RateLimit(context.Background())).To(Succeed())

				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				err = rateLimiter.RateLimit(ctx)
				Expect(err).To(MatchError(ContainSubstring("waiting for an upload connection slot")))
			})
		})

		Context("failure", func() {
			It("returns an error if the connection limit is less than 1", func() {
				_, err := ratelimiter.NewConnectionRateLimiter(0, time.Second)
				Expect(err).To(MatchError(ContainSubstring("less than 1")))
			})

			It("returns an error if the connection limit is greater than 100", func() {
				_, err := ratelimiter.NewConnectionRateLimiter(101, time.Second)
				Expect(err).To(MatchError(ContainSubstring("greater than 100")))
			})

			It("returns an error if the window is 0", func() {
				_, err := ratelimiter.NewConnectionRateLimiter(5, 0)
				Expect(err).To(MatchError(ContainSubstring("cannot be 0")))
			})

			It("returns an error if the window is longer than an hour", func() {
				_, err := ratelimiter.NewConnectionRateLimiter(5, 3601*time.Second)
				Expect(err).To(MatchError(ContainSubstring("greater than 3600")))
			})
		})
	})

	Describe("NoopRateLimiter", func() {
		It("never blocks", func() {
			rateLimiter := ratelimiter.NewNoopRateLimiter()
			for i := 0; i < 1000; i++ {
				Expect(rateLimiter.RateLimit(context.Background())).To(Succeed())
			}
		})
	})
})
