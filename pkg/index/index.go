// Package index acquires and parses an Alpine-style APKINDEX into a
// dependency lookup.
//
// The index is a line-based text format: a "P:" line opens a package
// record and a following "D:" line lists its direct dependencies,
// space-separated. [Parse] reads the whole index once into an in-memory
// name to dependency-list mapping, so each lookup during graph
// construction is a map access instead of a rescan of the index.
//
// [Open] selects the backing source from the configured repository mode:
// a local repository directory, a remote APKINDEX.tar.gz URL, or a plain
// fixture file for tests. Acquisition failures carry LOOKUP_* codes from
// [apkerrors].
package index

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/apkgraph/apkgraph/pkg/apkerrors"
)

// Index is a parsed APKINDEX: an immutable mapping from package name to
// its direct dependencies, verbatim as listed. It implements the
// dependency lookup consumed by graph construction. Safe for concurrent
// reads.
type Index struct {
	deps map[string][]string
}

// Parse reads an APKINDEX stream into an Index.
//
// A "P:" line opens a package record; a "D:" line inside that record
// lists its direct dependencies split on spaces with empty fields
// dropped. Entries stay verbatim otherwise: version constraints
// ("musl>=1.2") and shared-object references ("so:libssl.so.3") are
// not interpreted. The first record wins when a name repeats. Unknown
// line prefixes are ignored; only a read failure is an error.
func Parse(r io.Reader) (*Index, error) {
	deps := make(map[string][]string)
	current := ""

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "P:"):
			current = line[2:]
			if current == "" {
				continue
			}
			if _, seen := deps[current]; seen {
				current = ""
				continue
			}
			deps[current] = []string{}
		case strings.HasPrefix(line, "D:") && current != "":
			list := deps[current]
			for _, field := range strings.Split(line[2:], " ") {
				if field != "" {
					list = append(list, field)
				}
			}
			deps[current] = list
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeLookupMalformed, err, "scan index")
	}

	return &Index{deps: deps}, nil
}

// Lookup returns the direct dependencies recorded for a package. An
// unknown package yields an empty list and no error; "package unknown"
// is never distinguished from "no dependencies found". Lookup never
// fails after a successful parse.
func (idx *Index) Lookup(_ context.Context, name string) ([]string, error) {
	return idx.deps[name], nil
}

// Len returns the number of packages in the index.
func (idx *Index) Len() int { return len(idx.deps) }
