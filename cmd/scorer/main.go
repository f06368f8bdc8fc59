// Command scorer scores company domains from the terminal using the same
// lookup client and scoring service as the API server.
//
//	scorer domain stripe.com
//	scorer batch --input domains.csv --output startup_scores.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(buildSession).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
