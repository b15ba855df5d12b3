// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/desertthunder/sounds-of-canada/internal/models"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// FetchCall records one call made to a [RecordingFetcher].
type FetchCall struct {
	Kind      string // "albums" or "artist"
	Year      string
	Genres    []string
	Page      int
	ReleaseID int64
}

// RecordingFetcher is a test double for services.AlbumFetcher that records every call.
type RecordingFetcher struct {
	mu          sync.Mutex
	calls       []FetchCall
	SearchAlbum []models.Album
	ArtistAlbum []models.Album
	Err         error
}

func (f *RecordingFetcher) Albums(ctx context.Context, year string, genres []string, page int) ([]models.Album, error) {
	f.record(FetchCall{Kind: "albums", Year: year, Genres: append([]string(nil), genres...), Page: page})
	if f.Err != nil {
		return nil, f.Err
	}
	return f.SearchAlbum, nil
}

func (f *RecordingFetcher) ArtistAlbums(ctx context.Context, releaseID int64) ([]models.Album, error) {
	f.record(FetchCall{Kind: "artist", ReleaseID: releaseID})
	if f.Err != nil {
		return nil, f.Err
	}
	return f.ArtistAlbum, nil
}

func (f *RecordingFetcher) record(c FetchCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

// Calls returns a copy of the recorded calls.
func (f *RecordingFetcher) Calls() []FetchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FetchCall(nil), f.calls...)
}

// FixedClock returns a now func pinned to t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func MustContext(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

// AssertFileExists fails the test if path does not exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

// MustReadFile returns the contents of path as a string or fails the test.
func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
