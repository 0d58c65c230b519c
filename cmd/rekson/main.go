// Command rekson reads "almost-JSON" bytes from standard input and writes
// valid JSON to standard output. It takes no flags and no subcommands; it
// exits 0 unconditionally once the read/write completes, and non-zero
// only if writing to standard output fails.
package main

import (
	"log"
	"os"

	"github.com/gibsn/rekson"
)

func main() {
	logger := log.New(os.Stderr, "rekson: ", 0)

	if err := rekson.ProcessStreams(os.Stdin, os.Stdout, 0); err != nil {
		logger.Print(err)
		os.Exit(1)
	}
}
