package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/netai-lab/timetravel-eval/internal/apperr"
	"github.com/netai-lab/timetravel-eval/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
