package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/console"
	"github.com/mesh-intelligence/stockroom/internal/inventory"
	"github.com/mesh-intelligence/stockroom/internal/menu"
	"github.com/mesh-intelligence/stockroom/internal/session"
)

// runInteractive loads the inventory, runs the menu until the user exits or
// input ends, and saves once on the way out. SIGINT and SIGTERM also save.
func runInteractive(cmd *cobra.Command, args []string) error {
	log := newLogger()
	out := cmd.OutOrStdout()

	storage, err := openStorage(resolved.storage)
	if err != nil {
		return err
	}
	defer storage.Close()

	store := inventory.New(log)
	if _, err := store.Load(storage); err != nil {
		log.Error().Err(err).Msg("load failed, starting with an empty inventory")
		fmt.Fprintln(out, "Failed to load data! Starting with an empty inventory.")
	}
	if flags.seed && store.TotalProducts() == 0 {
		n := store.Seed()
		log.Info().Int("products", n).Msg("seeded demo catalog")
	}

	con := console.New(cmd.InOrStdin(), out, clearOptions(out)...)
	sess, err := session.New(store, storage, con, log)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	sess.Log.Info().Str("path", resolved.storage.Path()).Msg("session started")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- menu.New(sess).Run(ctx) }()

	select {
	case err := <-done:
		// The menu saves on its own way out; only a loop stopped by the
		// signal before reaching a handler leaves the save to us.
		if !errors.Is(err, context.Canceled) || ctx.Err() == nil {
			return err
		}
	case <-ctx.Done():
	}

	sess.Log.Warn().Msg("shutdown signal received")
	fmt.Fprintln(out, "\nSaving data...")
	if err := sess.Persist(); err != nil {
		fmt.Fprintln(out, "Failed to save data!")
		return nil
	}
	fmt.Fprintln(out, "Data saved successfully!")
	return nil
}

// clearOptions enables screen clearing only when out is a terminal.
func clearOptions(out io.Writer) []console.Option {
	f, ok := out.(*os.File)
	if !ok {
		return nil
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) {
		return []console.Option{console.WithClear(runtime.GOOS != "windows")}
	}
	if isatty.IsCygwinTerminal(fd) {
		return []console.Option{console.WithClear(true)}
	}
	return nil
}
