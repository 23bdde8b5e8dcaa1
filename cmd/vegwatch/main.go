// main is the entry point for the vegwatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/vegwatch/cmd"
	"github.com/huangsam/vegwatch/internal/contract"
	"github.com/huangsam/vegwatch/internal/store"
)

func main() {
	// Wire the global store manager into the command layer before any
	// command runs; commands initialize it lazily via their setup hooks.
	cmd.SetStoreManager(store.Manager)

	err := cmd.Execute()

	// Shutdown happens here rather than in a defer so that the exit code
	// path below still runs store cleanup.
	store.CloseStores()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
