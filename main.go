package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Drolfothesgnir/tagmark/cli"
	"github.com/Drolfothesgnir/tagmark/util"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file, the environment overrides it
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	// an interrupt cancels a running batch
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	if err := cli.NewRootCmd(config).ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
