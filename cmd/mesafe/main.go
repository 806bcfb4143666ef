package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/mesafe/internal/config"
	"github.com/UnknownOlympus/mesafe/internal/distance"
	"github.com/UnknownOlympus/mesafe/internal/logger"
	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/UnknownOlympus/mesafe/internal/places"
)

// mesafe reads "from,to" pairs from stdin and prints the distance between them.
// With a positive -delay every answer is held back for that long, and a pair typed
// before the previous answer appeared replaces it.
func main() {
	cfg := config.MustLoad()

	source := flag.String("source", cfg.Places.Source, "places source: provinces, major, file or xlsx (postgres is served by the API only)")
	path := flag.String("path", cfg.Places.Path, "file or workbook path for the file and xlsx sources")
	sheet := flag.String("sheet", cfg.Places.Sheet, "workbook sheet, first sheet when empty")
	match := flag.String("match", cfg.Places.MatchMode, "name matching: exact or folded")
	delay := flag.Duration("delay", cfg.Places.ResultDelay, "delay before an answer is shown")
	list := flag.Bool("list", false, "print the known place names and exit")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, cfg.Env, options{
		source: places.SourceConfig{Type: places.SourceType(*source), Path: *path, Sheet: *sheet},
		match:  *match,
		delay:  *delay,
		list:   *list,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "mesafe:", err)
		os.Exit(1)
	}
}

// errDatabaseSource is returned for the postgres source, which needs the database
// connection and enrichment worker of the API server.
var errDatabaseSource = errors.New("the postgres places source is only available in the API server")

type options struct {
	source places.SourceConfig
	match  string
	delay  time.Duration
	list   bool
}

func run(in io.Reader, out io.Writer, env string, opts options) error {
	log := logger.New(os.Stderr, env)

	matchMode, err := distance.ParseMatchMode(opts.match)
	if err != nil {
		return err
	}

	if opts.source.Type == places.SourcePostgres {
		return errDatabaseSource
	}

	source, err := places.NewSource(opts.source)
	if err != nil {
		return err
	}
	table, err := source.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load places: %w", err)
	}

	if opts.list {
		for _, name := range table.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	calc := distance.NewCalculator(table, distance.Options{Match: matchMode, Logger: log})

	var (
		outMu   sync.Mutex
		printed uint64
	)
	printResult := func(result models.DistanceResult) {
		outMu.Lock()
		defer outMu.Unlock()

		printed = result.Query.Seq
		if result.OK() {
			fmt.Fprintf(out, "%s - %s: %s\n", result.From, result.To, result)
			return
		}
		fmt.Fprintf(out, "%s - %s: %s\n", result.Query.From, result.Query.To, result)
	}

	resolver := distance.NewResolver(calc, opts.delay, printResult)
	defer resolver.Close()

	var lastSeq uint64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		from, to, ok := strings.Cut(line, ",")
		if !ok {
			outMu.Lock()
			fmt.Fprintf(out, "expected \"from,to\", got %q\n", line)
			outMu.Unlock()
			continue
		}
		lastSeq = resolver.Submit(strings.TrimSpace(from), strings.TrimSpace(to))
	}
	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	waitUntil(opts.delay+time.Second, func() bool {
		outMu.Lock()
		defer outMu.Unlock()
		return printed >= lastSeq
	})

	return nil
}

// waitUntil polls done until it reports true or the timeout elapses.
func waitUntil(timeout time.Duration, done func() bool) {
	const poll = 10 * time.Millisecond

	deadline := time.Now().Add(timeout)
	for !done() && time.Now().Before(deadline) {
		time.Sleep(poll)
	}
}
