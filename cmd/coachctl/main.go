// coachctl drives the remote coaching api and a running coach companion from
// a terminal.
//
//	coachctl [-api URL] [-companion URL] presets
//	coachctl [-api URL] schedule-check
//	coachctl [-api URL] wellness <provider> [fetch|import]
//	coachctl [-api URL] users [list|show <id>|rename <id> <name>|delete <id>]
//	coachctl [-companion URL] status
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
