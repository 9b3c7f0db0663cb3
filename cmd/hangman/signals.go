package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jwebster45206/hangman/internal/console"
)

func signalExitCode(sig os.Signal) int {
	if sig == syscall.SIGTERM {
		return 143
	}
	return 130
}

// handleSignals ends the process on SIGINT or SIGTERM. Line prompts block on
// stdin without a context, so the exit happens here. Story progress is saved
// after every change; only the round in progress is lost.
func handleSignals(c *console.Console, cleanup func(), exit func(int)) (stop func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-quit:
			c.Println()
			c.Info("Interrupted. Bye! 👋")
			cleanup()
			exit(signalExitCode(sig))
		case <-done:
		}
	}()

	return func() {
		signal.Stop(quit)
		close(done)
	}
}
