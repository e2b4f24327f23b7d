package store

import (
	"context"
	"fmt"

	"github.com/asmit/mentis/ent"
	"github.com/asmit/mentis/ent/examevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendExamEvent(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetExamID(data.ExamID).
		SetAction(data.Action).
		SetPatientName(data.PatientName).
		SetPatientAge(data.PatientAge).
		SetPatientGender(data.PatientGender).
		SetTotalScore(data.TotalScore).
		SetMaxScore(data.MaxScore).
		SetPercentage(data.Percentage).
		SetSeverity(data.Severity).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetExamID(data.ExamID).
		SetQuestionID(data.QuestionID).
		SetCategory(data.Category).
		SetQuestionText(data.QuestionText).
		SetRawAnswer(data.RawAnswer).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetResolvedBy(data.ResolvedBy).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentExams(ctx context.Context, limit int) ([]ExamRecord, error) {
	q := r.client.ExamEvent.Query().
		Where(examevent.Action("completed")).
		Order(ent.Desc(examevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent exams: %w", err)
	}

	out := make([]ExamRecord, len(events))
	for i, e := range events {
		out[i] = ExamRecord{
			ExamID:       e.ExamID,
			Timestamp:    e.Timestamp,
			PatientName:  e.PatientName,
			TotalScore:   e.TotalScore,
			MaxScore:     e.MaxScore,
			Percentage:   e.Percentage,
			Severity:     e.Severity,
			DurationSecs: e.DurationSecs,
		}
	}
	return out, nil
}

func (r *eventRepo) ExamStats(ctx context.Context) (*ExamStats, error) {
	events, err := r.client.ExamEvent.Query().
		Where(examevent.Action("completed")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam stats: %w", err)
	}

	stats := &ExamStats{SeverityCounts: map[string]int{}}
	if len(events) == 0 {
		return stats, nil
	}

	var pctSum float64
	for _, e := range events {
		stats.Completed++
		pctSum += e.Percentage
		if e.Severity != "" {
			stats.SeverityCounts[e.Severity]++
		}
	}
	stats.AvgPercentage = pctSum / float64(stats.Completed)
	return stats, nil
}
