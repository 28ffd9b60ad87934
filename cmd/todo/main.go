// Package main is the entry point for the todo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The container is created by the root command once --file and --config are parsed
	var container *app.Container
	factory := func(cfg app.Config) (*app.Container, error) {
		c, err := app.New(cfg)
		container = c
		return c, err
	}
	defer func() {
		if container != nil {
			_ = container.Close()
		}
	}()

	rootCmd := cli.NewRootCommand(factory, version)
	return rootCmd.Execute()
}
