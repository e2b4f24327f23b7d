// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/asmit/mentis/ent/answerevent"
	"github.com/asmit/mentis/ent/credential"
	"github.com/asmit/mentis/ent/examevent"
	"github.com/asmit/mentis/ent/llmrequestevent"
	"github.com/asmit/mentis/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescExamID is the schema descriptor for exam_id field.
	answereventDescExamID := answereventFields[0].Descriptor()
	// answerevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	answerevent.ExamIDValidator = answereventDescExamID.Validators[0].(func(string) error)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[2].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescRawAnswer is the schema descriptor for raw_answer field.
	answereventDescRawAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultRawAnswer holds the default value on creation for the raw_answer field.
	answerevent.DefaultRawAnswer = answereventDescRawAnswer.Default.(string)
	// answereventDescResolvedBy is the schema descriptor for resolved_by field.
	answereventDescResolvedBy := answereventFields[7].Descriptor()
	// answerevent.ResolvedByValidator is a validator for the "resolved_by" field. It is called by the builders before save.
	answerevent.ResolvedByValidator = answereventDescResolvedBy.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[8].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int64)
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescName is the schema descriptor for name field.
	credentialDescName := credentialFields[0].Descriptor()
	// credential.NameValidator is a validator for the "name" field. It is called by the builders before save.
	credential.NameValidator = credentialDescName.Validators[0].(func(string) error)
	// credentialDescCreatedAt is the schema descriptor for created_at field.
	credentialDescCreatedAt := credentialFields[2].Descriptor()
	// credential.DefaultCreatedAt holds the default value on creation for the created_at field.
	credential.DefaultCreatedAt = credentialDescCreatedAt.Default.(func() time.Time)
	// credentialDescUpdatedAt is the schema descriptor for updated_at field.
	credentialDescUpdatedAt := credentialFields[3].Descriptor()
	// credential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	credential.DefaultUpdatedAt = credentialDescUpdatedAt.Default.(func() time.Time)
	// credential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	credential.UpdateDefaultUpdatedAt = credentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescExamID is the schema descriptor for exam_id field.
	exameventDescExamID := exameventFields[0].Descriptor()
	// examevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	examevent.ExamIDValidator = exameventDescExamID.Validators[0].(func(string) error)
	// exameventDescAction is the schema descriptor for action field.
	exameventDescAction := exameventFields[1].Descriptor()
	// examevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	examevent.ActionValidator = exameventDescAction.Validators[0].(func(string) error)
	// exameventDescPatientName is the schema descriptor for patient_name field.
	exameventDescPatientName := exameventFields[2].Descriptor()
	// examevent.DefaultPatientName holds the default value on creation for the patient_name field.
	examevent.DefaultPatientName = exameventDescPatientName.Default.(string)
	// exameventDescPatientAge is the schema descriptor for patient_age field.
	exameventDescPatientAge := exameventFields[3].Descriptor()
	// examevent.DefaultPatientAge holds the default value on creation for the patient_age field.
	examevent.DefaultPatientAge = exameventDescPatientAge.Default.(string)
	// exameventDescPatientGender is the schema descriptor for patient_gender field.
	exameventDescPatientGender := exameventFields[4].Descriptor()
	// examevent.DefaultPatientGender holds the default value on creation for the patient_gender field.
	examevent.DefaultPatientGender = exameventDescPatientGender.Default.(string)
	// exameventDescTotalScore is the schema descriptor for total_score field.
	exameventDescTotalScore := exameventFields[5].Descriptor()
	// examevent.DefaultTotalScore holds the default value on creation for the total_score field.
	examevent.DefaultTotalScore = exameventDescTotalScore.Default.(int)
	// exameventDescMaxScore is the schema descriptor for max_score field.
	exameventDescMaxScore := exameventFields[6].Descriptor()
	// examevent.DefaultMaxScore holds the default value on creation for the max_score field.
	examevent.DefaultMaxScore = exameventDescMaxScore.Default.(int)
	// exameventDescPercentage is the schema descriptor for percentage field.
	exameventDescPercentage := exameventFields[7].Descriptor()
	// examevent.DefaultPercentage holds the default value on creation for the percentage field.
	examevent.DefaultPercentage = exameventDescPercentage.Default.(float64)
	// exameventDescSeverity is the schema descriptor for severity field.
	exameventDescSeverity := exameventFields[8].Descriptor()
	// examevent.DefaultSeverity holds the default value on creation for the severity field.
	examevent.DefaultSeverity = exameventDescSeverity.Default.(string)
	// exameventDescDurationSecs is the schema descriptor for duration_secs field.
	exameventDescDurationSecs := exameventFields[9].Descriptor()
	// examevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	examevent.DefaultDurationSecs = exameventDescDurationSecs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
