package dictionary

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxLexiconSize bounds a downloaded lexicon, both as transferred and
// after decompression.
const maxLexiconSize = 64 * 1024 * 1024

// ErrLexiconTooLarge is returned when a download exceeds the size limit.
var ErrLexiconTooLarge = errors.New("lexicon exceeds size limit")

// Downloader fetches the lexicon into a local cache file.
type Downloader struct {
	Client *http.Client
	// Logger is used for informational messages. nil means no logging.
	Logger *log.Logger
	// OnProgress is called with the bytes received so far and the expected
	// total, which is -1 when the server does not send a length.
	OnProgress func(received, total int64)
	// MaxSize overrides the download size limit when positive.
	MaxSize int64
}

// NewDownloader returns a Downloader with a bounded HTTP client.
func NewDownloader() *Downloader {
	return &Downloader{Client: &http.Client{Timeout: 60 * time.Second}}
}

// EnsureLexicon checks if the lexicon exists at path. If not, it downloads
// it from url. Plain JSON, gzip (.gz) and tar.gz (.tgz, .tar.gz) archives
// holding a .json file are accepted.
func (d *Downloader) EnsureLexicon(ctx context.Context, path, url string) error {
	if _, err := os.Stat(path); err == nil {
		// File exists
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if url == "" {
		return fmt.Errorf("lexicon not found at %s and no download url given", path)
	}

	d.logf("Lexicon not found at %s. Downloading from %s...", path, url)
	if err := d.download(ctx, url, path); err != nil {
		return fmt.Errorf("download lexicon: %w", err)
	}
	d.logf("Lexicon cached at %s", path)
	return nil
}

// EnsureLexicon is Downloader.EnsureLexicon with default settings.
func EnsureLexicon(ctx context.Context, path, url string) error {
	return NewDownloader().EnsureLexicon(ctx, path, url)
}

func (d *Downloader) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

func (d *Downloader) download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "alveare-cli")

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	limit := d.MaxSize
	if limit <= 0 {
		limit = maxLexiconSize
	}
	if resp.ContentLength > limit {
		return fmt.Errorf("%w: content length %d, limit %d", ErrLexiconTooLarge, resp.ContentLength, limit)
	}

	var body io.Reader = &cappedReader{r: resp.Body, left: limit}
	if d.OnProgress != nil {
		body = &progressReader{r: body, total: resp.ContentLength, fn: d.OnProgress}
	}

	src, closeSrc, err := unpack(body, url)
	if err != nil {
		return err
	}
	defer closeSrc()

	// Write next to the destination and rename, so an interrupted download
	// never leaves a truncated cache behind.
	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".lexicon-*.json")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, &cappedReader{r: src, left: limit}); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), destPath)
}

// unpack returns the JSON payload inside body according to the url suffix.
func unpack(body io.Reader, url string) (io.Reader, func(), error) {
	noop := func() {}
	lower := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lower, ".tgz"), strings.HasSuffix(lower, ".tar.gz"):
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		tr := tar.NewReader(gz)
		for {
			header, err := tr.Next()
			if err == io.EOF {
				gz.Close()
				return nil, noop, fmt.Errorf("no json file found in downloaded archive")
			}
			if err != nil {
				gz.Close()
				return nil, noop, fmt.Errorf("error reading tar archive: %w", err)
			}
			if header.Typeflag == tar.TypeReg && strings.HasSuffix(header.Name, ".json") {
				return tr, func() { gz.Close() }, nil
			}
		}
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return gz, func() { gz.Close() }, nil
	default:
		return body, noop, nil
	}
}

// cappedReader fails with ErrLexiconTooLarge once more than left bytes
// are read, instead of silently stopping like io.LimitReader.
type cappedReader struct {
	r    io.Reader
	left int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.left <= 0 {
		// One more byte tells an exact fit from an overflow.
		var one [1]byte
		n, err := c.r.Read(one[:])
		if n > 0 {
			return 0, ErrLexiconTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > c.left {
		p = p[:c.left]
	}
	n, err := c.r.Read(p)
	c.left -= int64(n)
	return n, err
}

type progressReader struct {
	r        io.Reader
	received int64
	total    int64
	fn       func(received, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.received += int64(n)
		p.fn(p.received, p.total)
	}
	return n, err
}
