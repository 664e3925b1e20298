package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/esimov/svg2png/utils"
)

// Version indicates the current build version.
var Version string

func main() {
	log.SetFlags(0)
	utils.SetColors(utils.IsTerminal(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Getenv).ExecuteContext(ctx)
	stop()

	if err != nil {
		log.Print(utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(exitCode(err))
	}
}

// exitCode returns the exit status of the failing tool, if there is one.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
