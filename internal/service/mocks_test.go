package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydration-tracker/internal/domain"
	"github.com/hydrolog/hydration-tracker/internal/langfuse"
	"github.com/hydrolog/hydration-tracker/internal/llm"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockDrinkEventRepository is a mock implementation of DrinkEventRepository
type MockDrinkEventRepository struct {
	events          map[uuid.UUID]*domain.DrinkEvent
	clientRequestID map[string]*domain.DrinkEvent
	err             error
}

func NewMockDrinkEventRepository() *MockDrinkEventRepository {
	return &MockDrinkEventRepository{
		events:          make(map[uuid.UUID]*domain.DrinkEvent),
		clientRequestID: make(map[string]*domain.DrinkEvent),
	}
}

func (m *MockDrinkEventRepository) add(event *domain.DrinkEvent) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	m.events[event.ID] = event
	if event.ClientRequestID != nil {
		m.clientRequestID[event.UserID.String()+":"+*event.ClientRequestID] = event
	}
}

func (m *MockDrinkEventRepository) Create(ctx context.Context, event *domain.DrinkEvent) error {
	if m.err != nil {
		return m.err
	}
	event.CreatedAt = time.Now()
	m.add(event)
	return nil
}

func (m *MockDrinkEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DrinkEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	event, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (m *MockDrinkEventRepository) Update(ctx context.Context, event *domain.DrinkEvent) error {
	if m.err != nil {
		return m.err
	}
	m.events[event.ID] = event
	return nil
}

func (m *MockDrinkEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *MockDrinkEventRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DrinkFilter) ([]domain.DrinkEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DrinkEvent
	for _, event := range m.events {
		if event.UserID == userID {
			result = append(result, *event)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OccurredAt.After(result[j].OccurredAt)
	})
	return result, nil
}

func (m *MockDrinkEventRepository) ListByOccurredRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DrinkEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DrinkEvent
	for _, event := range m.events {
		if event.UserID != userID {
			continue
		}
		if event.OccurredAt.Before(from) || !event.OccurredAt.Before(to) {
			continue
		}
		result = append(result, *event)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OccurredAt.Before(result[j].OccurredAt)
	})
	return result, nil
}

func (m *MockDrinkEventRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.DrinkEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	event, ok := m.clientRequestID[userID.String()+":"+clientRequestID]
	if !ok {
		return nil, nil
	}
	return event, nil
}

func (m *MockDrinkEventRepository) CountLoggedDays(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	days := make(map[string]struct{})
	for _, event := range m.events {
		if event.UserID != userID {
			continue
		}
		if event.OccurredAt.Before(from) || !event.OccurredAt.Before(to) {
			continue
		}
		days[event.OccurredAt.UTC().Format("2006-01-02")] = struct{}{}
	}
	return len(days), nil
}

// MockSleepSummaryRepository is a mock implementation of SleepSummaryRepository
type MockSleepSummaryRepository struct {
	summaries map[string]*domain.SleepSummary // keyed by userID:day
	err       error
}

func NewMockSleepSummaryRepository() *MockSleepSummaryRepository {
	return &MockSleepSummaryRepository{summaries: make(map[string]*domain.SleepSummary)}
}

func sleepKey(userID uuid.UUID, day time.Time) string {
	return userID.String() + ":" + day.UTC().Format("2006-01-02")
}

func (m *MockSleepSummaryRepository) Upsert(ctx context.Context, summary *domain.SleepSummary) error {
	if m.err != nil {
		return m.err
	}
	m.summaries[sleepKey(summary.UserID, summary.Day)] = summary
	return nil
}

func (m *MockSleepSummaryRepository) FindForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*domain.SleepSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	if summary, ok := m.summaries[sleepKey(userID, day)]; ok {
		return summary, nil
	}
	// Fall back to the freshest summary within the lookback window.
	var best *domain.SleepSummary
	for _, summary := range m.summaries {
		if summary.UserID != userID || !summary.Day.Before(day) {
			continue
		}
		if summary.Day.Before(day.AddDate(0, 0, -7)) {
			continue
		}
		if best == nil || summary.Day.After(best.Day) {
			best = summary
		}
	}
	return best, nil
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository
type MockSnapshotRepository struct {
	snapshots []*domain.AnalysisSnapshot
	err       error
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{}
}

func (m *MockSnapshotRepository) ReplaceForDay(ctx context.Context, snapshot *domain.AnalysisSnapshot) error {
	if m.err != nil {
		return m.err
	}
	kept := m.snapshots[:0]
	for _, s := range m.snapshots {
		if s.UserID == snapshot.UserID && s.Kind == snapshot.Kind {
			continue
		}
		kept = append(kept, s)
	}
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	snapshot.CreatedAt = time.Now()
	m.snapshots = append(kept, snapshot)
	return nil
}

func (m *MockSnapshotRepository) GetByDay(ctx context.Context, userID uuid.UUID, kind domain.AnalysisKind, day time.Time) (*domain.AnalysisSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, s := range m.snapshots {
		if s.UserID == userID && s.Kind == kind && s.Day.Equal(day) {
			return s, nil
		}
	}
	return nil, domain.ErrNoSnapshot
}

func (m *MockSnapshotRepository) countFor(userID uuid.UUID, kind domain.AnalysisKind) int {
	n := 0
	for _, s := range m.snapshots {
		if s.UserID == userID && s.Kind == kind {
			n++
		}
	}
	return n
}

// MockCommentLLM is a mock implementation of llm.CommentLLM
type MockCommentLLM struct {
	comment string
	err     error
	calls   int
}

func (m *MockCommentLLM) GenerateComment(ctx context.Context, commentCtx *llm.CommentContext) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.comment, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	return fmt.Sprintf("trace-%d", len(m.traces)), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

var errRepoDown = errors.New("repository unavailable")

func strPtr(s string) *string {
	return &s
}
