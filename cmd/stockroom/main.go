// Package main provides the stockroom CLI: an interactive inventory session
// plus non-interactive listing and summary commands.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
