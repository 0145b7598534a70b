package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quirklo/storefront/config"
	"github.com/quirklo/storefront/internal/app"
	"github.com/quirklo/storefront/pkg/sigctx"
)

func main() {
	os.Exit(run())
}

func run() int {
	sigCtx, stop := sigctx.NotifyContext()
	defer stop()

	cfg := config.Load()

	a := app.New(sigCtx, cfg)
	if err := a.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && sigCtx.Err() != nil {
			return 0
		}
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		return 1
	}
	return 0
}
