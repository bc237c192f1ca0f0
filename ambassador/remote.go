package main

import (
	"context"
	"errors"
	"time"

	"github.com/go-leo/gox/mathx/randx"
)

// ErrRemoteUnavailable simulates the remote side dropping a request.
var ErrRemoteUnavailable = errors.New("remote rate service unavailable")

// RateService is shared by the remote implementation and its ambassador.
type RateService interface {
	Rate(ctx context.Context, currency string) (int64, error)
}

// remoteRateService stands in for a legacy application on the other side of
// the network: slow and occasionally unavailable.
type remoteRateService struct{}

func (remoteRateService) Rate(_ context.Context, currency string) (int64, error) {
	latency := randx.Int63n(300)
	time.Sleep(time.Duration(latency) * time.Millisecond)
	if randx.Int63n(10) == 0 {
		return 0, ErrRemoteUnavailable
	}
	// A toy quote derived from the currency code.
	var rate int64
	for _, r := range currency {
		rate += int64(r)
	}
	return rate, nil
}
