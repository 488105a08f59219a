package main

import (
	"fmt"
	"io"
	"os"

	md2page "github.com/alnah/go-md2page"
	"github.com/alnah/go-md2page/internal/config"
	"golang.org/x/term"
)

// Environment holds injectable dependencies for testability.
// Includes I/O streams, terminal detection, asset loading, and configuration.
type Environment struct {
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	StdinIsTerminal func() bool
	AssetLoader     md2page.AssetLoader
	Config          *config.Config // Baseline config, replaced when a file is loaded
}

// DefaultEnv returns the production environment with embedded assets.
func DefaultEnv() *Environment {
	loader, err := md2page.NewAssetLoader("")
	if err != nil {
		// An empty base path resolves to the embedded assets and cannot fail.
		panic(fmt.Sprintf("md2page: embedded assets unavailable: %v", err))
	}

	return &Environment{
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		StdinIsTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		AssetLoader:     loader,
		Config:          config.DefaultConfig(),
	}
}
