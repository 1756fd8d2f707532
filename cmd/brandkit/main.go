// Command brandkit generates the app icon, launch screen, tvOS and top shelf
// image assets and the color sets of a brand's asset catalog.
//
// Usage:
//
//	brandkit nexuspvr
//	brandkit dispatcherpvr
//	brandkit all
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
