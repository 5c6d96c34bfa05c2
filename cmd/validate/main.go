// Command validate parses a file of raw quake messages, one per line, and
// reports which ones the parser accepts. Useful for checking message samples
// before feeding a topic.
//
// Usage:
//
//	validate -file messages.txt [-preview]
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/quake-alert-etl/internal/alert"
	"github.com/couchcryptid/quake-alert-etl/internal/domain"
	"github.com/couchcryptid/quake-alert-etl/internal/translate"
)

func main() {
	file := flag.String("file", "", "path to a file with one raw message per line")
	preview := flag.Bool("preview", false, "print the alert bulletin for each accepted message")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: validate -file messages.txt [-preview]")
		os.Exit(2)
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", *file, err)
		os.Exit(1)
	}
	defer f.Close()

	ok, failed := run(f, *preview)
	fmt.Printf("\n%d accepted, %d rejected\n", ok, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func run(f *os.File, preview bool) (ok, failed int) {
	formatter := alert.NewFormatter()
	translator := translate.Indonesian{}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		event, err := domain.ParseRawMessage(domain.RawEvent{Value: []byte(line)}, translator)
		if err != nil {
			failed++
			fmt.Printf("line %d: REJECTED: %s\n", lineNo, describeError(err))
			continue
		}

		ok++
		event = domain.EnrichQuakeEvent(event)
		fmt.Printf("line %d: OK: M%g %s depth %dkm (%s, %s)\n",
			lineNo, event.Magnitude, event.PlaceName, event.DepthKm, event.OriginDate, event.TimeString)

		if preview {
			bulletin, err := formatter.Format(event)
			if err != nil {
				fmt.Printf("  bulletin error: %v\n", err)
				continue
			}
			fmt.Println(indent(bulletin))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}
	return ok, failed
}

func describeError(err error) string {
	var extractionErr *domain.ExtractionError
	if errors.As(err, &extractionErr) {
		return fmt.Sprintf("%s/%s: %v", extractionErr.Kind, extractionErr.Field, err)
	}
	return err.Error()
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = "  | " + lines[i]
	}
	return strings.Join(lines, "\n")
}
