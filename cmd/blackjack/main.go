package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"HCL config file" default:"blackjack.hcl" env:"BLACKJACK_CONFIG"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)" env:"BLACKJACK_LOG_LEVEL"`
	LogFile  string `help:"Write logs to this file instead of stderr (overrides config)" env:"BLACKJACK_LOG_FILE"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a round at the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Play many rounds with bots and report statistics"`
}

func main() {
	// .env is optional; anything it sets is picked up by the env tags below
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "blackjack: loading .env: %v\n", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Console blackjack against an automatic dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
