package index

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/apkgraph/apkgraph/pkg/apkerrors"
)

// httpTimeout bounds the whole remote fetch; there are no retries.
const httpTimeout = 30 * time.Second

// indexMember is the archive member holding the index in APKINDEX.tar.gz.
const indexMember = "APKINDEX"

// Repository modes, mirroring the config surface.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
	ModeTest   = "test"
)

// Open acquires and parses the APKINDEX selected by mode:
//
//   - local: read <path>/APKINDEX from disk
//   - remote: HTTP GET path (an APKINDEX.tar.gz URL) and extract the
//     APKINDEX member in memory
//   - test: read path itself as a plain APKINDEX-format fixture
//
// All acquisition failures carry LOOKUP_* codes.
func Open(ctx context.Context, mode, path string) (*Index, error) {
	switch mode {
	case ModeLocal:
		return openFile(filepath.Join(path, indexMember))
	case ModeRemote:
		return openRemote(ctx, path)
	case ModeTest:
		return openFile(path)
	default:
		return nil, apkerrors.New(apkerrors.ErrCodeInvalidInput, "unknown repository mode %q", mode)
	}
}

func openFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeLookupUnreadable, err, "open index %q", path)
	}
	defer f.Close()
	return Parse(f)
}

func openRemote(ctx context.Context, url string) (*Index, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeLookupUnreachable, err, "build request for %q", url)
	}

	client := &http.Client{Timeout: httpTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeLookupUnreachable, err, "fetch %q", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apkerrors.New(apkerrors.ErrCodeLookupUnreachable, "fetch %q: HTTP %d", url, resp.StatusCode)
	}

	r, err := extractMember(resp.Body, indexMember)
	if err != nil {
		return nil, err
	}
	return Parse(r)
}

// extractMember streams through a gzipped tarball and returns a reader
// positioned at the named member.
func extractMember(r io.Reader, name string) (io.Reader, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeLookupMalformed, err, "decompress index archive")
	}

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, apkerrors.New(apkerrors.ErrCodeLookupMalformed, "archive has no %q member", name)
		}
		if err != nil {
			return nil, apkerrors.Wrap(apkerrors.ErrCodeLookupMalformed, err, "read index archive")
		}
		if filepath.Clean(hdr.Name) == name {
			return tr, nil
		}
	}
}

// Describe returns a short human-readable description of the source for
// log and status lines.
func Describe(mode, path string) string {
	switch mode {
	case ModeLocal:
		return fmt.Sprintf("local repository %s", path)
	case ModeRemote:
		return fmt.Sprintf("remote index %s", path)
	default:
		return fmt.Sprintf("index file %s", path)
	}
}
