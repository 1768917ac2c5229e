// cmd/flowlist-restore/main.go
//
// Entry point for the flowlist-restore CLI.
// Running it with no flags rebuilds the default FlowList workspace archive.
//
// Flow:
// 1. Resolve the table (built-in, or a -manifest file)
// 2. Optionally preview it in the TUI and wait for confirmation
// 3. Write the archive, optionally verify it, and report "Created <path>"

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kingrea/flowlist-restore/internal/archive"
	"github.com/kingrea/flowlist-restore/internal/logbook"
	"github.com/kingrea/flowlist-restore/internal/tierlist"
	"github.com/kingrea/flowlist-restore/internal/tui"
)

const defaultOutputPath = "restored_flowlist.zip"

func main() {
	output := flag.String("output", defaultOutputPath, "destination archive path (created or truncated)")
	manifestPath := flag.String("manifest", "", "path to a YAML manifest with a custom tier table")
	dumpManifest := flag.Bool("dump-manifest", false, "print the built-in table as manifest YAML and exit")
	preview := flag.Bool("preview", false, "review the table in the TUI before writing")
	verify := flag.Bool("verify", false, "re-open the archive after writing and check every entry")
	logbookPath := flag.String("logbook", "", "append run records to this journey log file")
	flag.Parse()

	if *dumpManifest {
		data, err := tierlist.EncodeManifest(tierlist.Default())
		if err != nil {
			die("encode manifest: %v", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			die("write manifest: %v", err)
		}
		return
	}

	table := tierlist.Default()
	if *manifestPath != "" {
		loaded, err := tierlist.LoadManifestFile(*manifestPath)
		if err != nil {
			die("load manifest: %v", err)
		}
		table = loaded
	}

	var journey *logbook.Logbook
	if *logbookPath != "" {
		book, err := logbook.New(*logbookPath)
		if err != nil {
			die("open logbook: %v", err)
		}
		journey = book
	}

	if *preview {
		confirmed, err := tui.Run(table, *output)
		if err != nil {
			die("preview: %v", err)
		}
		if !confirmed {
			journey.RecordCancelled(*output)
			fmt.Println("Restore cancelled.")
			return
		}
	}

	builder := archive.New(table)
	result, err := builder.Build(*output)
	if err != nil {
		journey.RecordFailure(*output, err)
		die("build archive: %v", err)
	}

	if *verify {
		report, err := builder.Verify(result.Path)
		if err != nil {
			journey.RecordFailure(result.Path, err)
			die("verify archive: %v", err)
		}
		if !report.IsValid() {
			journey.RecordFailure(result.Path, fmt.Errorf("%d verification finding(s)", len(report.Errors)))
			fmt.Fprintf(os.Stderr, "Archive %s failed verification:\n", report.Path)
			for _, finding := range report.Errors {
				fmt.Fprintf(os.Stderr, "  - %v\n", finding)
			}
			os.Exit(1)
		}
	}

	journey.RecordRestore(result.Path, result.Entries)
	fmt.Printf("Created %s\n", result.Path)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
