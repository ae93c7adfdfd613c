package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/hupe1980/fasthash"
	"github.com/hupe1980/fasthash/checksum"
	"github.com/hupe1980/fasthash/registry"
	"github.com/hupe1980/fasthash/source"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type cli struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	resolver       *resolver
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, resolver: newResolver()}
	if len(args) == 0 {
		c.usage()
		return exitUsage
	}

	switch args[0] {
	case "sum":
		return c.sum(ctx, args[1:])
	case "verify", "check":
		return c.verify(ctx, args[1:])
	case "list":
		return c.list()
	case "help", "-h", "-help", "--help":
		c.usage()
		return exitOK
	}
	fmt.Fprintf(stderr, "fasthash: unknown command %q\n", args[0])
	c.usage()
	return exitUsage
}

func (c *cli) usage() {
	fmt.Fprint(c.stderr, `usage:
  fasthash sum [flags] [path|s3://bucket/key|minio://bucket/key|-]...
  fasthash verify [flags] [listfile|-]
  fasthash list
`)
}

// engineFlags are shared by sum and verify.
type engineFlags struct {
	algorithm   string
	seed        string
	keys        string
	random      bool
	codec       string
	jobs        int
	memoryLimit int64
	ioLimit     int64
	dedup       bool
	json        bool
	verbose     bool
}

func (f *engineFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.algorithm, "a", registry.Selected().String(), "hash algorithm (see 'fasthash list')")
	fs.StringVar(&f.seed, "seed", "", "seed lanes, comma separated, decimal or 0x hex")
	fs.StringVar(&f.keys, "keys", "", "key pair k0,k1 mapped onto the seed")
	fs.BoolVar(&f.random, "random", false, "use a random per-process key pair")
	fs.StringVar(&f.codec, "codec", "none", "input codec: none, auto, zstd, gzip, lz4")
	fs.IntVar(&f.jobs, "j", runtime.NumCPU(), "sources hashed concurrently")
	fs.Int64Var(&f.memoryLimit, "mem", 0, "max bytes of remote objects buffered at once (0 = unlimited)")
	fs.Int64Var(&f.ioLimit, "rate", 0, "max bytes per second read from sources (0 = unlimited)")
	fs.BoolVar(&f.dedup, "dedup", false, "mark sources whose digest was seen before")
	fs.BoolVar(&f.json, "json", false, "log as JSON")
	fs.BoolVar(&f.verbose, "v", false, "log every source")
}

func (f *engineFlags) logger(w io.Writer) *fasthash.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if f.json {
		return fasthash.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return fasthash.NewLogger(slog.NewTextHandler(w, opts))
}

func (f *engineFlags) engine(logger *fasthash.Logger) (*checksum.Engine, error) {
	alg, err := registry.Lookup(f.algorithm)
	if err != nil {
		return nil, err
	}

	opts := []checksum.Option{
		checksum.WithAlgorithm(alg),
		checksum.WithConcurrency(f.jobs),
		checksum.WithMemoryLimit(f.memoryLimit),
		checksum.WithIOLimit(f.ioLimit),
		checksum.WithLogger(logger),
	}

	switch {
	case f.random:
		opts = append(opts, checksum.WithRandomKeys())
	case f.keys != "":
		lanes, err := registry.ParseSeed(f.keys)
		if err != nil {
			return nil, err
		}
		if len(lanes) != 2 {
			return nil, fmt.Errorf("-keys needs two values, got %d", len(lanes))
		}
		opts = append(opts, checksum.WithKeys(lanes[0], lanes[1]))
	case f.seed != "":
		lanes, err := registry.ParseSeed(f.seed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, checksum.WithSeed(lanes...))
	}

	if strings.EqualFold(f.codec, "auto") {
		opts = append(opts, checksum.WithAutoDecompress())
	} else {
		codec, err := source.ParseCodec(f.codec)
		if err != nil {
			return nil, err
		}
		opts = append(opts, checksum.WithCodec(codec))
	}

	if f.dedup {
		opts = append(opts, checksum.WithDedup())
	}
	return checksum.New(opts...)
}

func (c *cli) setup(f *engineFlags) (*checksum.Engine, bool) {
	logger := f.logger(c.stderr)
	fasthash.SetLogger(logger)

	eng, err := f.engine(logger)
	if err != nil {
		fmt.Fprintf(c.stderr, "fasthash: %v\n", err)
		return nil, false
	}
	return eng, true
}

func (c *cli) sum(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("sum", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var f engineFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	eng, ok := c.setup(&f)
	if !ok {
		return exitUsage
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	code := exitOK
	var results []checksum.Result
	var remote []string
	flush := func() error {
		if len(remote) == 0 {
			return nil
		}
		names, err := c.resolver.expand(ctx, remote)
		remote = remote[:0]
		if err != nil {
			return err
		}
		rs, err := eng.Run(ctx, c.resolver, names)
		results = append(results, rs...)
		return err
	}

	for _, in := range inputs {
		if in != "-" {
			remote = append(remote, in)
			continue
		}
		if err := flush(); err != nil {
			fmt.Fprintf(c.stderr, "fasthash: %v\n", err)
			return exitFailure
		}
		results = append(results, eng.Sum(ctx, "-", c.stdin))
	}
	if err := flush(); err != nil {
		fmt.Fprintf(c.stderr, "fasthash: %v\n", err)
		return exitFailure
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(c.stderr, "fasthash: %s: %v\n", r.Name, r.Err)
			code = exitFailure
			continue
		}
		if r.Duplicate {
			fmt.Fprintf(c.stdout, "%s  %s (duplicate)\n", r.Digest, r.Name)
			continue
		}
		fmt.Fprintf(c.stdout, "%s  %s\n", r.Digest, r.Name)
	}
	return code
}

func (c *cli) verify(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var f engineFlags
	f.register(fs)
	quiet := fs.Bool("q", false, "only report failures")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	eng, ok := c.setup(&f)
	if !ok {
		return exitUsage
	}

	lists := fs.Args()
	if len(lists) == 0 {
		lists = []string{"-"}
	}

	var entries []checksum.Entry
	for _, name := range lists {
		es, err := c.readList(name)
		if err != nil {
			fmt.Fprintf(c.stderr, "fasthash: %v\n", err)
			return exitFailure
		}
		entries = append(entries, es...)
	}

	checks, err := eng.Verify(ctx, c.resolver, entries)
	if err != nil {
		fmt.Fprintf(c.stderr, "fasthash: %v\n", err)
		return exitFailure
	}

	failed := 0
	for _, chk := range checks {
		switch {
		case chk.Err != nil:
			failed++
			fmt.Fprintf(c.stdout, "%s: FAILED (%v)\n", chk.Name, chk.Err)
		case !chk.OK:
			failed++
			fmt.Fprintf(c.stdout, "%s: FAILED\n", chk.Name)
		case !*quiet:
			fmt.Fprintf(c.stdout, "%s: OK\n", chk.Name)
		}
	}
	if failed > 0 {
		fmt.Fprintf(c.stderr, "fasthash: %d of %d computed checksums did NOT match\n", failed, len(checks))
		return exitFailure
	}
	return exitOK
}

func (c *cli) readList(name string) ([]checksum.Entry, error) {
	if name == "-" {
		return checksum.ParseList(c.stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := checksum.ParseList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

func streamingMode(native bool) string {
	if native {
		return "native"
	}
	return "buffered"
}

func (c *cli) list() int {
	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWIDTH\tSEED LANES\tSTREAMING\tSEEDED STREAMING")
	for _, id := range registry.All() {
		alg := id.Algorithm()
		seeded := "-"
		if alg.SeedLanes() > 0 {
			seeded = streamingMode(alg.IncrementalSeeded())
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
			alg.Name(), int(alg.Width()), alg.SeedLanes(), streamingMode(alg.Incremental()), seeded)
	}
	if err := tw.Flush(); err != nil {
		return exitFailure
	}
	return exitOK
}
