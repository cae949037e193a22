// Command lvlmath is the command-line front end of the lvlmath packages.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvlmath/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
