package index

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/apkgraph/apkgraph/pkg/apkerrors"
)

const fixtureIndex = "P:alpine-base\nD:musl busybox\nP:musl\nP:busybox\nD:musl\n"

// tarGz builds a gzipped tarball with the given members in order.
func tarGz(t *testing.T, members map[string]string, order ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for _, name := range order {
		body := members[name]
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(body))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header: %v", err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatalf("write tar body: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func TestOpenLocal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "APKINDEX"), []byte(fixtureIndex), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	idx, err := Open(context.Background(), ModeLocal, dir)
	if err != nil {
		t.Fatalf("Open(local) error: %v", err)
	}
	deps, _ := idx.Lookup(context.Background(), "alpine-base")
	if want := []string{"musl", "busybox"}; !slices.Equal(deps, want) {
		t.Errorf("Lookup(alpine-base) = %v, want %v", deps, want)
	}
}

func TestOpenLocalMissing(t *testing.T) {
	_, err := Open(context.Background(), ModeLocal, t.TempDir())
	if err == nil {
		t.Fatal("Open(local) succeeded, want error")
	}
	if !apkerrors.Is(err, apkerrors.ErrCodeLookupUnreadable) {
		t.Errorf("error code = %q, want LOOKUP_UNREADABLE", apkerrors.GetCode(err))
	}
}

func TestOpenTest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture")
	if err := os.WriteFile(path, []byte(fixtureIndex), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	idx, err := Open(context.Background(), ModeTest, path)
	if err != nil {
		t.Fatalf("Open(test) error: %v", err)
	}
	if idx.Len() != 3 {
		t.Errorf("Len() = %d, want 3", idx.Len())
	}
}

func TestOpenRemote(t *testing.T) {
	archive := tarGz(t, map[string]string{
		"DESCRIPTION": "fake signature",
		"APKINDEX":    fixtureIndex,
	}, "DESCRIPTION", "APKINDEX")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	defer srv.Close()

	idx, err := Open(context.Background(), ModeRemote, srv.URL+"/APKINDEX.tar.gz")
	if err != nil {
		t.Fatalf("Open(remote) error: %v", err)
	}
	deps, _ := idx.Lookup(context.Background(), "busybox")
	if want := []string{"musl"}; !slices.Equal(deps, want) {
		t.Errorf("Lookup(busybox) = %v, want %v", deps, want)
	}
}

func TestOpenRemoteFailures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := Open(context.Background(), ModeRemote, srv.URL)
		if !apkerrors.Is(err, apkerrors.ErrCodeLookupUnreachable) {
			t.Errorf("error = %v, want LOOKUP_UNREACHABLE", err)
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := Open(context.Background(), ModeRemote, url)
		if !apkerrors.Is(err, apkerrors.ErrCodeLookupUnreachable) {
			t.Errorf("error = %v, want LOOKUP_UNREACHABLE", err)
		}
	})

	t.Run("not a gzip archive", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("plain text, not an archive"))
		}))
		defer srv.Close()

		_, err := Open(context.Background(), ModeRemote, srv.URL)
		if !apkerrors.Is(err, apkerrors.ErrCodeLookupMalformed) {
			t.Errorf("error = %v, want LOOKUP_MALFORMED", err)
		}
	})

	t.Run("archive without APKINDEX member", func(t *testing.T) {
		archive := tarGz(t, map[string]string{"DESCRIPTION": "nothing else"}, "DESCRIPTION")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(archive)
		}))
		defer srv.Close()

		_, err := Open(context.Background(), ModeRemote, srv.URL)
		if !apkerrors.Is(err, apkerrors.ErrCodeLookupMalformed) {
			t.Errorf("error = %v, want LOOKUP_MALFORMED", err)
		}
	})
}

func TestOpenUnknownMode(t *testing.T) {
	_, err := Open(context.Background(), "ftp", "somewhere")
	if !apkerrors.Is(err, apkerrors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
