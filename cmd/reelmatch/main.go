package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCommand().Execute(); err != nil {
		// An interrupt already reported itself through the signal; only
		// genuine failures get a message.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "reelmatch: %v\n", err)
		}
		return 1
	}
	return 0
}
