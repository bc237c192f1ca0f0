package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kata/patterns/middleware"
)

const maxAttempts = 3

// RateAmbassador is an out-of-process proxy co-located with the client. It
// offloads the connectivity chores around the remote service: latency
// logging and retry with give-up.
type RateAmbassador struct {
	invoke middleware.Handler[string, int64]
}

func NewRateAmbassador(remote RateService) *RateAmbassador {
	handler := middleware.Apply(
		func(ctx context.Context, currency string) (int64, error) {
			return remote.Rate(ctx, currency)
		},
		latencyLogging, retrying,
	)
	return &RateAmbassador{invoke: handler}
}

func (a *RateAmbassador) Rate(ctx context.Context, currency string) (int64, error) {
	return a.invoke(ctx, currency)
}

func latencyLogging(ctx context.Context, currency string, next middleware.Handler[string, int64]) (int64, error) {
	start := time.Now()
	rate, err := next(ctx, currency)
	fmt.Println("Time taken (ms):", time.Since(start).Milliseconds())
	return rate, err
}

func retrying(ctx context.Context, currency string, next middleware.Handler[string, int64]) (int64, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rate, err := next(ctx, currency)
		if err == nil {
			return rate, nil
		}
		lastErr = err
		fmt.Printf("Ambassador: attempt %d failed: %v\n", attempt, err)
	}
	fmt.Println("Ambassador: giving up.")
	return 0, lastErr
}
