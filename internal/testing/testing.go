// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/wayfarer/internal/models"
	"golang.org/x/oauth2"
)

// MockTripService is a configurable test double for [services.TripService].
//
// Zero value succeeds with an empty snapshot; set the fields to script
// responses and inspect the counters to assert call ordering.
type MockTripService struct {
	Snapshot *models.Snapshot
	FetchErr error
	StartErr error
	BlockErr error
	DayErr   error

	FetchCalls int
	StartCalls int
	BlockCalls int
	DayCalls   int

	LastTripID   string
	LastDayIndex int
	LastBlock    models.BlockName
	LastMoods    []string
	LastJournal  string
}

func (m *MockTripService) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	if m.Snapshot == nil {
		return &models.Snapshot{}, nil
	}
	return m.Snapshot, nil
}

func (m *MockTripService) StartTrip(ctx context.Context, tripID string) error {
	m.StartCalls++
	m.LastTripID = tripID
	return m.StartErr
}

func (m *MockTripService) CompleteBlock(ctx context.Context, tripID string, dayIndex int, block models.BlockName) error {
	m.BlockCalls++
	m.LastTripID = tripID
	m.LastDayIndex = dayIndex
	m.LastBlock = block
	return m.BlockErr
}

func (m *MockTripService) CompleteDay(ctx context.Context, tripID string, dayIndex int, moods []string, journal string) error {
	m.DayCalls++
	m.LastTripID = tripID
	m.LastDayIndex = dayIndex
	m.LastMoods = moods
	m.LastJournal = journal
	return m.DayErr
}

func (m *MockTripService) Name() string { return "mock" }

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

// StaticTokenSource yields a fixed bearer token, or an error if Err is set.
// Implements [oauth2.TokenSource].
type StaticTokenSource struct {
	AccessToken string
	Err         error
}

func (s *StaticTokenSource) Token() (*oauth2.Token, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return &oauth2.Token{AccessToken: s.AccessToken}, nil
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
