package dispatch

//go:generate moq -out saved_search_store_mock_test.go -pkg dispatch . savedSearchStore
//go:generate moq -out match_engine_mock_test.go -pkg dispatch . matchEngine
//go:generate moq -out user_directory_mock_test.go -pkg dispatch . userDirectory
//go:generate moq -out email_sender_mock_test.go -pkg dispatch . emailSender

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recruitment-backend/internal/config"
	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

var testNow = time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(workers int) config.DispatchConfig {
	return config.DispatchConfig{
		Workers:           workers,
		SearchTimeout:     5 * time.Second,
		RunTimeout:        time.Minute,
		HeartbeatInterval: defaultHeartbeatInterval,
		AppBaseURL:        "https://jobs.example.com/",
	}
}

// memSearches keeps saved searches in memory and applies stamps so that
// consecutive runs observe each other.
type memSearches struct {
	mu       sync.Mutex
	searches []domain.SavedSearch
	stamps   map[uuid.UUID][]domain.DispatchStamps
	failFor  map[uuid.UUID]error
}

func newMemSearches(searches ...domain.SavedSearch) *memSearches {
	return &memSearches{
		searches: searches,
		stamps:   make(map[uuid.UUID][]domain.DispatchStamps),
		failFor:  make(map[uuid.UUID]error),
	}
}

func (m *memSearches) ListActive(_ context.Context) ([]domain.SavedSearch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.SavedSearch
	for _, s := range m.searches {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSearches) UpdateTimestamps(_ context.Context, id uuid.UUID, stamps domain.DispatchStamps) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failFor[id]; err != nil {
		return err
	}
	for i := range m.searches {
		if m.searches[i].ID != id {
			continue
		}
		if stamps.LastSent != nil {
			t := *stamps.LastSent
			m.searches[i].LastSent = &t
		}
		if stamps.LastHeartbeatSent != nil {
			t := *stamps.LastHeartbeatSent
			m.searches[i].LastHeartbeatSent = &t
		}
		m.stamps[id] = append(m.stamps[id], stamps)
		return nil
	}
	return domain.ErrNotFound
}

func (m *memSearches) stampsFor(id uuid.UUID) []domain.DispatchStamps {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stamps[id]
}

// recordingSender accepts every message and remembers it.
type recordingSender struct {
	mu   sync.Mutex
	sent []domain.EmailMessage
}

func (r *recordingSender) Send(_ context.Context, msg domain.EmailMessage) domain.SendResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return domain.SendResult{Success: true}
}

func (r *recordingSender) messages() []domain.EmailMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.EmailMessage(nil), r.sent...)
}

func (r *recordingSender) countTagged(tag string) int {
	n := 0
	for _, m := range r.messages() {
		for _, t := range m.Tags {
			if t == tag {
				n++
			}
		}
	}
	return n
}

func knownUsers() *userDirectoryMock {
	return &userDirectoryMock{
		GetNameAndEmailFunc: func(_ context.Context, userID uuid.UUID) (string, string, error) {
			return "Sam", fmt.Sprintf("%s@example.com", userID.String()[:8]), nil
		},
	}
}

// matchAll returns one job for every criteria.
func matchAll() *matchEngineMock {
	return &matchEngineMock{
		MatchFunc: func(_ context.Context, c domain.SearchCriteria, _ time.Time) ([]domain.JobSummary, error) {
			return []domain.JobSummary{{
				ID:       uuid.New(),
				Title:    c.Keyword + " engineer",
				Company:  "Acme",
				Location: "Berlin",
				PostedAt: testNow.Add(-2 * time.Hour),
			}}, nil
		},
	}
}

func matchNone() *matchEngineMock {
	return &matchEngineMock{
		MatchFunc: func(context.Context, domain.SearchCriteria, time.Time) ([]domain.JobSummary, error) {
			return nil, nil
		},
	}
}

func newSearch(user uuid.UUID, freq domain.AlertFrequency, lastSent *time.Time) domain.SavedSearch {
	return domain.SavedSearch{
		ID:        uuid.New(),
		UserID:    user,
		Criteria:  domain.SearchCriteria{Keyword: "go"},
		Frequency: freq,
		Active:    true,
		LastSent:  lastSent,
		CreatedAt: testNow.Add(-90 * 24 * time.Hour),
	}
}

func ago(d time.Duration) *time.Time {
	t := testNow.Add(-d)
	return &t
}
