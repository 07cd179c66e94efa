// Command notesctl runs maintenance tasks against the notes database.
//
//	notesctl schema   create the notes table if it does not exist
//	notesctl purge    delete every note (requires -yes)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"notes-api/config"
	"notes-api/config/setup"
	"notes-api/database"
	"notes-api/services"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("notesctl", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "confirm destructive commands")
	timeout := fs.Duration("timeout", 30*time.Second, "overall timeout")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: notesctl [-yes] [-timeout d] schema|purge")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cmd := fs.Arg(0)
	switch cmd {
	case "schema", "purge":
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}

	// Refuse before touching the database.
	if cmd == "purge" && !*yes {
		fmt.Fprintln(os.Stderr, "refusing to delete all notes without -yes")
		return 2
	}

	cfg := config.Load()
	logger := setup.NewLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := setup.InitDatabase(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		return 1
	}
	defer db.Disconnect()

	if cmd == "schema" {
		// InitDatabase already ran EnsureSchema.
		fmt.Println("schema ok")
		return 0
	}

	notes := services.NewNoteService(database.NewRepository(db))
	removed, err := notes.DeleteAll(ctx)
	if err != nil {
		logger.Error("purge failed", "error", err)
		return 1
	}
	fmt.Printf("deleted %d notes\n", removed)
	return 0
}
