package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/steprepeat/internal/cli"
	"github.com/matzehuels/steprepeat/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, cli.StyleError.Render(message(err)))
		os.Exit(1)
	}
}

// message formats err for the terminal with its code, if any.
func message(err error) string {
	msg := "error: " + errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		msg += " [" + string(code) + "]"
	}
	return msg
}
