package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ExamEventData captures an examination lifecycle event.
type ExamEventData struct {
	ExamID        string
	Action        string // started, completed, reset
	PatientName   string
	PatientAge    string
	PatientGender string
	TotalScore    int
	MaxScore      int
	Percentage    float64
	Severity      string
	DurationSecs  int64
}

// AnswerEventData captures a single scored answer.
type AnswerEventData struct {
	ExamID       string
	QuestionID   int
	Category     string
	QuestionText string
	RawAnswer    string
	Score        int
	MaxScore     int
	ResolvedBy   string
	TimeMs       int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event read back from the log.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates LLM usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ExamRecord summarizes one completed examination.
type ExamRecord struct {
	ExamID       string
	Timestamp    time.Time
	PatientName  string
	TotalScore   int
	MaxScore     int
	Percentage   float64
	Severity     string
	DurationSecs int64
}

// ExamStats aggregates completed examinations.
type ExamStats struct {
	Completed      int
	AvgPercentage  float64
	SeverityCounts map[string]int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendExamEvent records an examination lifecycle event.
	AppendExamEvent(ctx context.Context, data ExamEventData) error

	// AppendAnswerEvent records one scored answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil when not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// RecentExams returns the most recently completed examinations.
	RecentExams(ctx context.Context, limit int) ([]ExamRecord, error)

	// ExamStats aggregates all completed examinations.
	ExamStats(ctx context.Context) (*ExamStats, error)
}

// CredentialRepo stores named secrets such as API keys.
type CredentialRepo interface {
	// Set saves or replaces a credential.
	Set(ctx context.Context, name, value string) error

	// Get returns the credential value, or "" when absent.
	Get(ctx context.Context, name string) (string, error)

	// Delete removes a credential. Deleting a missing credential is a no-op.
	Delete(ctx context.Context, name string) error
}
