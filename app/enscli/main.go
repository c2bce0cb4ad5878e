package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// ctrl-c stops a waiting commit
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd(defaultBuild).ExecuteContext(c); err != nil {
		stop()
		os.Exit(1)
	}
}
