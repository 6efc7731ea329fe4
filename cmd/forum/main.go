package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"forum/internal"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
)

const usage = `usage: forum <command> [flags]

commands:
  register -email E -name N -password P   create an account and print its token
  login    -email E -password P           print a session token
  post     [-token T] text...             post a message (token defaults to FORUM_TOKEN)
  feed                                    print the whole feed, oldest first
  watch                                   print the feed and every update until interrupted`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.OpBold).Render("error: ")+err.Error())
		os.Exit(1)
	}
}

// run loads the configuration, opens the store and dispatches the
// command. Every resource is released through defer before returning.
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n%s", usage)
	}

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(config)
	if err != nil {
		return err
	}
	defer a.close()

	command, rest := args[0], args[1:]
	switch command {
	case "register":
		return a.register(rest, out)
	case "login":
		return a.login(rest, out)
	case "post":
		return a.post(ctx, rest, out)
	case "feed":
		return a.feed(ctx, out)
	case "watch":
		return a.watch(ctx, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}
