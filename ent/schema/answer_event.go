package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single scored answer within an examination.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("Links to ExamEvent"),
		field.Int("question_id").
			Comment("Catalog question this answer is for"),
		field.String("category").
			NotEmpty().
			Comment("Cognitive category, e.g. Orientation to Time"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("raw_answer").
			Default("").
			Comment("What the examiner entered or selected"),
		field.Int("score").
			Comment("Points awarded after resolution"),
		field.Int("max_score").
			Comment("Maximum points for this question"),
		field.String("resolved_by").
			NotEmpty().
			Comment("direct, predicate, classifier, or default"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds spent on the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("question_id"),
		index.Fields("resolved_by"),
	}
}
