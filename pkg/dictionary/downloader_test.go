package dictionary

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureLexicon_LocalCache(t *testing.T) {
	path := writeTemp(t, "words.json", `["sasso"]`)

	// An unreachable url proves nothing is downloaded when the file exists.
	err := EnsureLexicon(context.Background(), path, "http://127.0.0.1:0/words.json")
	require.NoError(t, err)
}

func TestEnsureLexicon_MissingWithoutURL(t *testing.T) {
	err := EnsureLexicon(context.Background(), filepath.Join(t.TempDir(), "words.json"), "")
	require.Error(t, err)
}

func gzipped(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func tarGzipped(t *testing.T, name string, data []byte) []byte {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "README", Mode: 0644, Size: 2, Typeflag: tar.TypeReg}))
	_, err := tw.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Mode: 0644, Size: int64(len(data)), Typeflag: tar.TypeReg}))
	_, err = tw.Write(data)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	return gzipped(t, buf.Bytes())
}

func TestEnsureLexicon_Download(t *testing.T) {
	payload := []byte(`["pranzo","azzurro"]`)
	files := map[string][]byte{
		"/words.json":    payload,
		"/words.json.gz": gzipped(t, payload),
		"/lexicon.tgz":   tarGzipped(t, "lexicon/words.json", payload),
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	}))
	defer srv.Close()

	for name := range files {
		t.Run(name, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "words.json")
			var calls int
			d := NewDownloader()
			d.OnProgress = func(received, total int64) { calls++ }

			require.NoError(t, d.EnsureLexicon(context.Background(), dest, srv.URL+name))
			require.Positive(t, calls)

			words, err := LoadWordList(dest)
			require.NoError(t, err)
			require.Equal(t, []string{"pranzo", "azzurro"}, words)
		})
	}
}

func TestEnsureLexicon_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "words.json")
	require.Error(t, EnsureLexicon(context.Background(), dest, srv.URL+"/words.json"))
	_, err := os.Stat(dest)
	require.True(t, os.IsNotExist(err), "no partial cache expected")
}

func TestEnsureLexicon_TooLarge(t *testing.T) {
	// Highly compressible, so the gzip form is small on the wire.
	payload := []byte(`["` + strings.Repeat("a", 4000) + `"]`)
	gz := gzipped(t, payload)
	require.Less(t, len(gz), 100)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/words.json":
			w.Write(payload)
		case "/chunked.json":
			// Flushing first drops the Content-Length header.
			w.(http.Flusher).Flush()
			w.Write(payload)
		case "/words.json.gz":
			w.Write(gz)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	for _, name := range []string{"/words.json", "/chunked.json", "/words.json.gz"} {
		t.Run(name, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "words.json")
			d := NewDownloader()
			d.MaxSize = 100

			err := d.EnsureLexicon(context.Background(), dest, srv.URL+name)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrLexiconTooLarge), "got %v", err)

			_, err = os.Stat(dest)
			require.True(t, os.IsNotExist(err), "oversized download must not be cached")
		})
	}
}

func TestEnsureLexicon_ExactLimit(t *testing.T) {
	payload := []byte(`["pranzo","azzurro"]`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.(http.Flusher).Flush()
		w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "words.json")
	d := NewDownloader()
	d.MaxSize = int64(len(payload))
	require.NoError(t, d.EnsureLexicon(context.Background(), dest, srv.URL+"/words.json"))

	words, err := LoadWordList(dest)
	require.NoError(t, err)
	require.Equal(t, []string{"pranzo", "azzurro"}, words)
}
