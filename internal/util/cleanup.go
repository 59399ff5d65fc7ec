package util

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler runs cleanup and exits when the process is
// interrupted. The returned func stops listening.
func SetupInterruptHandler(cleanup func()) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
		case <-done:
			return
		}

		fmt.Fprintln(os.Stderr, "\nInterrupt received. Cleaning up...")
		if cleanup != nil {
			cleanup()
		}
		fmt.Fprintln(os.Stderr, "Exiting due to interrupt.")

		os.Exit(1)
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
