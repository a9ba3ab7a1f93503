package shell

import (
	"bufio"
	"context"
	"io"
	"log"
)

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

// RunCli feeds every line of r to handler until "quit" or end of input.
func RunCli(ctx context.Context, logger *log.Logger, r io.Reader, handler CommandHandler) error {
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return nil
		}
		var err = handler.Handle(ctx, commandLine)
		if err != nil {
			logger.Println(err)
		}
	}
	return scanner.Err()
}
