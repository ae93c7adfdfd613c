package checksum

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/fasthash"
	"github.com/hupe1980/fasthash/source"
)

// Entry is one line of a checksum list: a hex digest and a source name,
// separated by whitespace, in the layout of sha256sum and friends.
type Entry struct {
	Digest string
	Name   string
}

// ParseList reads entries from r. Blank lines and lines starting with '#'
// are skipped.
func ParseList(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		i := strings.IndexAny(text, " \t")
		if i < 0 {
			return nil, fmt.Errorf("checksum list line %d: missing name", line)
		}
		digest, name := text[:i], strings.TrimLeft(text[i:], " \t*")
		if name == "" {
			return nil, fmt.Errorf("checksum list line %d: missing name", line)
		}
		entries = append(entries, Entry{Digest: strings.ToLower(digest), Name: name})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// WriteList writes successful results as list entries. Failed results are
// skipped.
func WriteList(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s  %s\n", r.Digest, r.Name); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Check is the outcome of verifying one entry.
type Check struct {
	Result
	Expected fasthash.Digest
	OK       bool
}

// Verify hashes every entry and compares it against the listed digest.
// Entries whose digest does not parse at the engine's width fail with the
// parse error.
func (e *Engine) Verify(ctx context.Context, store source.Store, entries []Entry) ([]Check, error) {
	names := make([]string, len(entries))
	for i, ent := range entries {
		names[i] = ent.Name
	}

	results, err := e.Run(ctx, store, names)
	checks := make([]Check, len(results))
	for i, r := range results {
		checks[i].Result = r
		if r.Err != nil {
			continue
		}
		want, perr := fasthash.ParseDigest(e.alg.Width(), entries[i].Digest)
		if perr != nil {
			checks[i].Err = perr
			continue
		}
		checks[i].Expected = want
		checks[i].OK = want.String() == r.Digest.String()
	}
	return checks, err
}
