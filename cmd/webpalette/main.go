// WebPalette - A website colour palette extractor
//
// WebPalette fetches a web page and ranks the colours used by its styles
// and images, writing the palette as JSON and as an HTML visualization.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmylchreest/webpalette/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
