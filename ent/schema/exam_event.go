package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records the lifecycle of an examination: one event when it
// starts and one when it completes or is reset.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("UUID assigned when the examination started"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or reset"),
		field.String("patient_name").
			Default("").
			Comment("Patient name as entered on the landing form"),
		field.String("patient_age").
			Default("").
			Comment("Patient age as entered"),
		field.String("patient_gender").
			Default("").
			Comment("Patient gender as entered"),
		field.Int("total_score").
			Default(0).
			Comment("Sum of per-question scores at completion"),
		field.Int("max_score").
			Default(0).
			Comment("Maximum attainable score for the catalog"),
		field.Float("percentage").
			Default(0).
			Comment("total_score / max_score * 100"),
		field.String("severity").
			Default("").
			Comment("Severity label shown to the examiner"),
		field.Int64("duration_secs").
			Default(0).
			Comment("Seconds from start to completion"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam_id"),
		index.Fields("action"),
	}
}
