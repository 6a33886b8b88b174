// Command lbsolve solves NYT-style Letter Boxed puzzles from the
// command line.
//
//	lbsolve -box "aob crn deu ily" -dict /usr/share/dict/words
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/vyevs/ansi"

	"github.com/2pair/lbsolve"
	"github.com/2pair/lbsolve/dict"
	"github.com/2pair/lbsolve/dict/sources"
	"github.com/2pair/lbsolve/dict/sources/file"
	"github.com/2pair/lbsolve/dict/sources/redis"
)

// pollInterval is how often the progress display refreshes while the
// search runs.
const pollInterval = 250 * time.Millisecond

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var boxSpec, dictPath, sourceName, redisAddr, redisKey string
	var maxDepth int
	var depthFirst bool

	flag.StringVar(&boxSpec, "box", "", "the four letter groups, given as 'abc def ghi jkl'")
	flag.StringVar(&dictPath, "dict", "/usr/share/dict/words", "path to a dictionary file, one word per line")
	flag.StringVar(&sourceName, "source", "file", "word source: file or redis")
	flag.StringVar(&redisAddr, "redis-addr", "localhost:6379", "redis address when -source=redis")
	flag.StringVar(&redisKey, "redis-key", "", "redis set holding the word list when -source=redis")
	flag.IntVar(&maxDepth, "max-depth", 0, "max consecutive words in a solution, 0 for any")
	flag.BoolVar(&depthFirst, "depth-first", false, "use the depth-first search strategy")
	flag.Parse()

	if boxSpec == "" {
		return fmt.Errorf("provide the letter groups using the -box switch")
	}

	box, err := dict.ParseBox(boxSpec)
	if err != nil {
		return fmt.Errorf("invalid box: %w", err)
	}

	src, err := openSource(sourceName, dictPath, redisAddr, redisKey)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx := context.Background()
	start := time.Now()
	catalog := dict.NewCatalog(box)
	if err := catalog.Load(ctx, src); err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	fmt.Printf("catalog built in %v: %d playable words, %d skipped\n",
		time.Since(start).Round(time.Millisecond), catalog.WordCount(), catalog.SkippedCount())

	opts := lbsolve.DefaultOptions()
	opts.MaxDepth = maxDepth
	if depthFirst {
		opts.Strategy = lbsolve.DepthFirst
	}

	solver := lbsolve.New(catalog, opts)
	if err := solver.Start(); err != nil {
		return err
	}

	watchSolver(solver)

	solutions := solver.Solutions()
	if solutions.Len() == 0 {
		fmt.Println("No solutions found!")
		if closest, ok := solver.ClosestAttempt(); ok {
			fmt.Printf("closest attempt: %s (%d of %d letters)\n",
				closest, closest.UniqueCount(), catalog.LetterCount())
		}
		return nil
	}

	fmt.Printf("found %d solutions:\n", solutions.Len())
	for _, solution := range solutions.Flatten() {
		fmt.Println(colorize(solution))
	}
	return nil
}

// openSource builds the configured word source through the registry.
func openSource(name, dictPath, redisAddr, redisKey string) (sources.Source, error) {
	switch name {
	case "file":
		return sources.Open(name, file.Config{Path: dictPath})
	case "redis":
		return sources.Open(name, redis.Config{Addr: redisAddr, Key: redisKey})
	default:
		return nil, fmt.Errorf("unknown word source %q", name)
	}
}

// watchSolver polls search progress until the solver finishes or the
// user interrupts, then joins the search goroutine.
func watchSolver(solver *lbsolve.Solver) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	bar := progressbar.Default(-1, "searching")
	for solver.Running() {
		select {
		case <-interrupt:
			fmt.Println("\nuser requested stop")
			solver.Stop(true)
			return
		case <-time.After(pollInterval):
		}
		stats := solver.Stats()
		bar.Describe(fmt.Sprintf("generation %d: %d candidates, %d solutions",
			stats.Generation, stats.Candidates, stats.Solutions))
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()
	solver.Stop(true)
}

// colorize renders a solution with one color per word.
func colorize(solution lbsolve.Solution) string {
	colors := [...]string{"green", "cyan", "yellow", "orange", "pink", "purple", "red", "light gray", "chartreuse"}

	var b strings.Builder
	for i, word := range solution.Words() {
		if i > 0 {
			b.WriteString(ansi.Clear)
			b.WriteByte('-')
		}
		b.WriteString(ansi.FGColorName(colors[i%len(colors)]))
		b.WriteString(word.String())
	}
	b.WriteString(ansi.Clear)
	return b.String()
}
