package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dixieflatline76/partition/config"
	"github.com/dixieflatline76/partition/util/log"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, config.ErrUsage) {
			// Flag errors are usage errors: report them and exit normally.
			fmt.Fprintln(cmd.OutOrStdout(), err)
			fmt.Fprintln(cmd.OutOrStdout(), config.UsageLine)
			return
		}
		log.Printf("%s failed: %v", config.AppName, err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
