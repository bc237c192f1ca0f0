package main

import (
	"context"
	"fmt"
)

// The ambassador pattern creates a helper service that sends network
// requests on behalf of a client. It is an out-of-process proxy co-located
// with the client, useful with legacy remote applications whose codebase is
// hard to modify: monitoring, logging and retries move into the ambassador
// instead.
func main() {
	ambassador := NewRateAmbassador(remoteRateService{})

	ctx := context.Background()
	for _, currency := range []string{"EUR", "JPY"} {
		rate, err := ambassador.Rate(ctx, currency)
		if err != nil {
			fmt.Printf("Client: no rate for %s: %v\n", currency, err)
			continue
		}
		fmt.Printf("Client: rate for %s is %d\n", currency, rate)
	}
}
