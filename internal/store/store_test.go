package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestCredentialSetGetDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.CredentialRepo()
	ctx := context.Background()

	// Missing credential reads as empty.
	v, err := repo.Get(ctx, "gemini_api_key")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, repo.Set(ctx, "gemini_api_key", "key-1"))
	v, err = repo.Get(ctx, "gemini_api_key")
	require.NoError(t, err)
	assert.Equal(t, "key-1", v)

	// Set again replaces rather than duplicating.
	require.NoError(t, repo.Set(ctx, "gemini_api_key", "key-2"))
	v, err = repo.Get(ctx, "gemini_api_key")
	require.NoError(t, err)
	assert.Equal(t, "key-2", v)

	require.NoError(t, repo.Delete(ctx, "gemini_api_key"))
	v, err = repo.Get(ctx, "gemini_api_key")
	require.NoError(t, err)
	assert.Empty(t, v)

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete(ctx, "gemini_api_key"))
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "classification", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "narrative", InputTokens: 200, OutputTokens: 150, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "narrative", InputTokens: 180, OutputTokens: 0, LatencyMs: 50, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}

	// Limit applies.
	got, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}

	// Lookup by ID round-trips the bodies.
	e, err := repo.GetLLMEvent(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}

	// Missing ID returns nil without error.
	e, err = repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil for missing event, got %+v", e)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "classification", InputTokens: 100, OutputTokens: 20, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "classification", InputTokens: 100, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-pro", Purpose: "narrative", InputTokens: 500, OutputTokens: 300, LatencyMs: 1000, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	// Sorted by purpose: classification first.
	if byPurpose[0].Purpose != "classification" || byPurpose[0].Calls != 2 {
		t.Errorf("classification usage = %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 200 || byPurpose[0].OutputTokens != 50 {
		t.Errorf("classification tokens = %d/%d, want 200/50",
			byPurpose[0].InputTokens, byPurpose[0].OutputTokens)
	}
	if byPurpose[0].AvgLatencyMs != 300 {
		t.Errorf("classification avg latency = %d, want 300", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
}

func TestExamEventsAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendExamEvent(ctx, ExamEventData{
		ExamID: "exam-1", Action: "started", PatientName: "Ada",
	}); err != nil {
		t.Fatalf("append started: %v", err)
	}
	if err := repo.AppendExamEvent(ctx, ExamEventData{
		ExamID: "exam-1", Action: "completed", PatientName: "Ada",
		TotalScore: 11, MaxScore: 13, Percentage: 84.6, Severity: "No cognitive impairment",
		DurationSecs: 240,
	}); err != nil {
		t.Fatalf("append completed: %v", err)
	}
	if err := repo.AppendExamEvent(ctx, ExamEventData{
		ExamID: "exam-2", Action: "completed", PatientName: "Bo",
		TotalScore: 5, MaxScore: 13, Percentage: 38.5, Severity: "Severe cognitive impairment",
		DurationSecs: 500,
	}); err != nil {
		t.Fatalf("append completed 2: %v", err)
	}

	recent, err := repo.RecentExams(ctx, 10)
	if err != nil {
		t.Fatalf("recent exams: %v", err)
	}
	// Only completed exams count.
	if len(recent) != 2 {
		t.Fatalf("expected 2 completed exams, got %d", len(recent))
	}

	stats, err := repo.ExamStats(ctx)
	if err != nil {
		t.Fatalf("exam stats: %v", err)
	}
	if stats.Completed != 2 {
		t.Errorf("completed = %d, want 2", stats.Completed)
	}
	wantAvg := (84.6 + 38.5) / 2
	if diff := stats.AvgPercentage - wantAvg; diff > 0.001 || diff < -0.001 {
		t.Errorf("avg percentage = %f, want %f", stats.AvgPercentage, wantAvg)
	}
	if stats.SeverityCounts["Severe cognitive impairment"] != 1 {
		t.Errorf("severity counts = %v", stats.SeverityCounts)
	}
}

func TestAppendAnswerEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		ExamID:       "exam-1",
		QuestionID:   4,
		Category:     "Calculation",
		QuestionText: "What is 100 minus 7?",
		RawAnswer:    "93",
		Score:        1,
		MaxScore:     1,
		ResolvedBy:   "predicate",
		TimeMs:       4200,
	})
	if err != nil {
		t.Fatalf("append answer event: %v", err)
	}

	count, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 answer event, got %d", count)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"exam_events", "answer_events", "llm_request_events", "credentials"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
