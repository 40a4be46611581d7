// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/coursegen/ent/article"
	"github.com/abhisek/coursegen/ent/chapter"
	"github.com/abhisek/coursegen/ent/coursegeneration"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/generationlog"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/llmrequestevent"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/quizattempt"
	"github.com/abhisek/coursegen/ent/schema"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
	"github.com/abhisek/coursegen/ent/textresponsesubmission"
	"github.com/abhisek/coursegen/ent/video"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articleMixin := schema.Article{}.Mixin()
	articleMixinFields0 := articleMixin[0].Fields()
	_ = articleMixinFields0
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescCreateTime is the schema descriptor for create_time field.
	articleDescCreateTime := articleMixinFields0[0].Descriptor()
	// article.DefaultCreateTime holds the default value on creation for the create_time field.
	article.DefaultCreateTime = articleDescCreateTime.Default.(func() time.Time)
	// articleDescUpdateTime is the schema descriptor for update_time field.
	articleDescUpdateTime := articleMixinFields0[1].Descriptor()
	// article.DefaultUpdateTime holds the default value on creation for the update_time field.
	article.DefaultUpdateTime = articleDescUpdateTime.Default.(func() time.Time)
	// article.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	article.UpdateDefaultUpdateTime = articleDescUpdateTime.UpdateDefault.(func() time.Time)
	chapterFields := schema.Chapter{}.Fields()
	_ = chapterFields
	// chapterDescNumber is the schema descriptor for number field.
	chapterDescNumber := chapterFields[1].Descriptor()
	// chapter.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	chapter.NumberValidator = chapterDescNumber.Validators[0].(func(int) error)
	// chapterDescDescription is the schema descriptor for description field.
	chapterDescDescription := chapterFields[3].Descriptor()
	// chapter.DefaultDescription holds the default value on creation for the description field.
	chapter.DefaultDescription = chapterDescDescription.Default.(string)
	// chapterDescDifficulty is the schema descriptor for difficulty field.
	chapterDescDifficulty := chapterFields[4].Descriptor()
	// chapter.DefaultDifficulty holds the default value on creation for the difficulty field.
	chapter.DefaultDifficulty = chapterDescDifficulty.Default.(int)
	coursegenerationMixin := schema.CourseGeneration{}.Mixin()
	coursegenerationMixinFields0 := coursegenerationMixin[0].Fields()
	_ = coursegenerationMixinFields0
	coursegenerationFields := schema.CourseGeneration{}.Fields()
	_ = coursegenerationFields
	// coursegenerationDescCreateTime is the schema descriptor for create_time field.
	coursegenerationDescCreateTime := coursegenerationMixinFields0[0].Descriptor()
	// coursegeneration.DefaultCreateTime holds the default value on creation for the create_time field.
	coursegeneration.DefaultCreateTime = coursegenerationDescCreateTime.Default.(func() time.Time)
	// coursegenerationDescUpdateTime is the schema descriptor for update_time field.
	coursegenerationDescUpdateTime := coursegenerationMixinFields0[1].Descriptor()
	// coursegeneration.DefaultUpdateTime holds the default value on creation for the update_time field.
	coursegeneration.DefaultUpdateTime = coursegenerationDescUpdateTime.Default.(func() time.Time)
	// coursegeneration.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	coursegeneration.UpdateDefaultUpdateTime = coursegenerationDescUpdateTime.UpdateDefault.(func() time.Time)
	// coursegenerationDescExperienceLevel is the schema descriptor for experience_level field.
	coursegenerationDescExperienceLevel := coursegenerationFields[1].Descriptor()
	// coursegeneration.DefaultExperienceLevel holds the default value on creation for the experience_level field.
	coursegeneration.DefaultExperienceLevel = coursegenerationDescExperienceLevel.Default.(string)
	// coursegenerationDescTotalChapters is the schema descriptor for total_chapters field.
	coursegenerationDescTotalChapters := coursegenerationFields[3].Descriptor()
	// coursegeneration.DefaultTotalChapters holds the default value on creation for the total_chapters field.
	coursegeneration.DefaultTotalChapters = coursegenerationDescTotalChapters.Default.(int)
	// coursegenerationDescTotalLessons is the schema descriptor for total_lessons field.
	coursegenerationDescTotalLessons := coursegenerationFields[4].Descriptor()
	// coursegeneration.DefaultTotalLessons holds the default value on creation for the total_lessons field.
	coursegeneration.DefaultTotalLessons = coursegenerationDescTotalLessons.Default.(int)
	externalarticleMixin := schema.ExternalArticle{}.Mixin()
	externalarticleMixinFields0 := externalarticleMixin[0].Fields()
	_ = externalarticleMixinFields0
	externalarticleFields := schema.ExternalArticle{}.Fields()
	_ = externalarticleFields
	// externalarticleDescCreateTime is the schema descriptor for create_time field.
	externalarticleDescCreateTime := externalarticleMixinFields0[0].Descriptor()
	// externalarticle.DefaultCreateTime holds the default value on creation for the create_time field.
	externalarticle.DefaultCreateTime = externalarticleDescCreateTime.Default.(func() time.Time)
	// externalarticleDescUpdateTime is the schema descriptor for update_time field.
	externalarticleDescUpdateTime := externalarticleMixinFields0[1].Descriptor()
	// externalarticle.DefaultUpdateTime holds the default value on creation for the update_time field.
	externalarticle.DefaultUpdateTime = externalarticleDescUpdateTime.Default.(func() time.Time)
	// externalarticle.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	externalarticle.UpdateDefaultUpdateTime = externalarticleDescUpdateTime.UpdateDefault.(func() time.Time)
	// externalarticleDescURL is the schema descriptor for url field.
	externalarticleDescURL := externalarticleFields[1].Descriptor()
	// externalarticle.URLValidator is a validator for the "url" field. It is called by the builders before save.
	externalarticle.URLValidator = externalarticleDescURL.Validators[0].(func(string) error)
	// externalarticleDescTitle is the schema descriptor for title field.
	externalarticleDescTitle := externalarticleFields[2].Descriptor()
	// externalarticle.DefaultTitle holds the default value on creation for the title field.
	externalarticle.DefaultTitle = externalarticleDescTitle.Default.(string)
	// externalarticleDescScore is the schema descriptor for score field.
	externalarticleDescScore := externalarticleFields[3].Descriptor()
	// externalarticle.DefaultScore holds the default value on creation for the score field.
	externalarticle.DefaultScore = externalarticleDescScore.Default.(float64)
	generationlogMixin := schema.GenerationLog{}.Mixin()
	generationlogMixinFields0 := generationlogMixin[0].Fields()
	_ = generationlogMixinFields0
	generationlogFields := schema.GenerationLog{}.Fields()
	_ = generationlogFields
	// generationlogDescTimestamp is the schema descriptor for timestamp field.
	generationlogDescTimestamp := generationlogMixinFields0[0].Descriptor()
	// generationlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationlog.DefaultTimestamp = generationlogDescTimestamp.Default.(func() time.Time)
	// generationlogDescMessage is the schema descriptor for message field.
	generationlogDescMessage := generationlogFields[4].Descriptor()
	// generationlog.DefaultMessage holds the default value on creation for the message field.
	generationlog.DefaultMessage = generationlogDescMessage.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[0].Descriptor()
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
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescNumber is the schema descriptor for number field.
	lessonDescNumber := lessonFields[1].Descriptor()
	// lesson.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	lesson.NumberValidator = lessonDescNumber.Validators[0].(func(int) error)
	// lessonDescLessonTypeID is the schema descriptor for lesson_type_id field.
	lessonDescLessonTypeID := lessonFields[3].Descriptor()
	// lesson.DefaultLessonTypeID holds the default value on creation for the lesson_type_id field.
	lesson.DefaultLessonTypeID = lessonDescLessonTypeID.Default.(int)
	// lessonDescDescription is the schema descriptor for description field.
	lessonDescDescription := lessonFields[5].Descriptor()
	// lesson.DefaultDescription holds the default value on creation for the description field.
	lesson.DefaultDescription = lessonDescDescription.Default.(string)
	// lessonDescDetails is the schema descriptor for details field.
	lessonDescDetails := lessonFields[6].Descriptor()
	// lesson.DefaultDetails holds the default value on creation for the details field.
	lesson.DefaultDetails = lessonDescDetails.Default.(string)
	// lessonDescGoals is the schema descriptor for goals field.
	lessonDescGoals := lessonFields[7].Descriptor()
	// lesson.DefaultGoals holds the default value on creation for the goals field.
	lesson.DefaultGoals = lessonDescGoals.Default.(string)
	// lessonDescGuidelines is the schema descriptor for guidelines field.
	lessonDescGuidelines := lessonFields[8].Descriptor()
	// lesson.DefaultGuidelines holds the default value on creation for the guidelines field.
	lesson.DefaultGuidelines = lessonDescGuidelines.Default.(string)
	// lessonDescIsComplete is the schema descriptor for is_complete field.
	lessonDescIsComplete := lessonFields[9].Descriptor()
	// lesson.DefaultIsComplete holds the default value on creation for the is_complete field.
	lesson.DefaultIsComplete = lessonDescIsComplete.Default.(bool)
	projectMixin := schema.Project{}.Mixin()
	projectMixinFields0 := projectMixin[0].Fields()
	_ = projectMixinFields0
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreateTime is the schema descriptor for create_time field.
	projectDescCreateTime := projectMixinFields0[0].Descriptor()
	// project.DefaultCreateTime holds the default value on creation for the create_time field.
	project.DefaultCreateTime = projectDescCreateTime.Default.(func() time.Time)
	// projectDescUpdateTime is the schema descriptor for update_time field.
	projectDescUpdateTime := projectMixinFields0[1].Descriptor()
	// project.DefaultUpdateTime holds the default value on creation for the update_time field.
	project.DefaultUpdateTime = projectDescUpdateTime.Default.(func() time.Time)
	// project.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	project.UpdateDefaultUpdateTime = projectDescUpdateTime.UpdateDefault.(func() time.Time)
	// projectDescDescription is the schema descriptor for description field.
	projectDescDescription := projectFields[2].Descriptor()
	// project.DefaultDescription holds the default value on creation for the description field.
	project.DefaultDescription = projectDescDescription.Default.(string)
	// projectDescExpectedOutput is the schema descriptor for expected_output field.
	projectDescExpectedOutput := projectFields[4].Descriptor()
	// project.DefaultExpectedOutput holds the default value on creation for the expected_output field.
	project.DefaultExpectedOutput = projectDescExpectedOutput.Default.(string)
	// projectDescIsFinalProject is the schema descriptor for is_final_project field.
	projectDescIsFinalProject := projectFields[5].Descriptor()
	// project.DefaultIsFinalProject holds the default value on creation for the is_final_project field.
	project.DefaultIsFinalProject = projectDescIsFinalProject.Default.(bool)
	projectfileFields := schema.ProjectFile{}.Fields()
	_ = projectfileFields
	// projectfileDescPath is the schema descriptor for path field.
	projectfileDescPath := projectfileFields[1].Descriptor()
	// projectfile.PathValidator is a validator for the "path" field. It is called by the builders before save.
	projectfile.PathValidator = projectfileDescPath.Validators[0].(func(string) error)
	// projectfileDescContent is the schema descriptor for content field.
	projectfileDescContent := projectfileFields[2].Descriptor()
	// projectfile.DefaultContent holds the default value on creation for the content field.
	projectfile.DefaultContent = projectfileDescContent.Default.(string)
	quizMixin := schema.Quiz{}.Mixin()
	quizMixinFields0 := quizMixin[0].Fields()
	_ = quizMixinFields0
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescCreateTime is the schema descriptor for create_time field.
	quizDescCreateTime := quizMixinFields0[0].Descriptor()
	// quiz.DefaultCreateTime holds the default value on creation for the create_time field.
	quiz.DefaultCreateTime = quizDescCreateTime.Default.(func() time.Time)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescCreateTime is the schema descriptor for create_time field.
	quizattemptDescCreateTime := quizattemptMixinFields0[0].Descriptor()
	// quizattempt.DefaultCreateTime holds the default value on creation for the create_time field.
	quizattempt.DefaultCreateTime = quizattemptDescCreateTime.Default.(func() time.Time)
	// quizattemptDescScore is the schema descriptor for score field.
	quizattemptDescScore := quizattemptFields[3].Descriptor()
	// quizattempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizattempt.ScoreValidator = quizattemptDescScore.Validators[0].(func(int) error)
	// quizattemptDescTotal is the schema descriptor for total field.
	quizattemptDescTotal := quizattemptFields[4].Descriptor()
	// quizattempt.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	quizattempt.TotalValidator = quizattemptDescTotal.Validators[0].(func(int) error)
	textresponsequestionMixin := schema.TextResponseQuestion{}.Mixin()
	textresponsequestionMixinFields0 := textresponsequestionMixin[0].Fields()
	_ = textresponsequestionMixinFields0
	textresponsequestionFields := schema.TextResponseQuestion{}.Fields()
	_ = textresponsequestionFields
	// textresponsequestionDescCreateTime is the schema descriptor for create_time field.
	textresponsequestionDescCreateTime := textresponsequestionMixinFields0[0].Descriptor()
	// textresponsequestion.DefaultCreateTime holds the default value on creation for the create_time field.
	textresponsequestion.DefaultCreateTime = textresponsequestionDescCreateTime.Default.(func() time.Time)
	// textresponsequestionDescNumber is the schema descriptor for number field.
	textresponsequestionDescNumber := textresponsequestionFields[1].Descriptor()
	// textresponsequestion.NumberValidator is a validator for the "number" field. It is called by the builders before save.
	textresponsequestion.NumberValidator = textresponsequestionDescNumber.Validators[0].(func(int) error)
	// textresponsequestionDescReferenceAnswer is the schema descriptor for reference_answer field.
	textresponsequestionDescReferenceAnswer := textresponsequestionFields[3].Descriptor()
	// textresponsequestion.DefaultReferenceAnswer holds the default value on creation for the reference_answer field.
	textresponsequestion.DefaultReferenceAnswer = textresponsequestionDescReferenceAnswer.Default.(string)
	textresponsesubmissionMixin := schema.TextResponseSubmission{}.Mixin()
	textresponsesubmissionMixinFields0 := textresponsesubmissionMixin[0].Fields()
	_ = textresponsesubmissionMixinFields0
	textresponsesubmissionFields := schema.TextResponseSubmission{}.Fields()
	_ = textresponsesubmissionFields
	// textresponsesubmissionDescCreateTime is the schema descriptor for create_time field.
	textresponsesubmissionDescCreateTime := textresponsesubmissionMixinFields0[0].Descriptor()
	// textresponsesubmission.DefaultCreateTime holds the default value on creation for the create_time field.
	textresponsesubmission.DefaultCreateTime = textresponsesubmissionDescCreateTime.Default.(func() time.Time)
	// textresponsesubmissionDescFallback is the schema descriptor for fallback field.
	textresponsesubmissionDescFallback := textresponsesubmissionFields[5].Descriptor()
	// textresponsesubmission.DefaultFallback holds the default value on creation for the fallback field.
	textresponsesubmission.DefaultFallback = textresponsesubmissionDescFallback.Default.(bool)
	videoMixin := schema.Video{}.Mixin()
	videoMixinFields0 := videoMixin[0].Fields()
	_ = videoMixinFields0
	videoFields := schema.Video{}.Fields()
	_ = videoFields
	// videoDescCreateTime is the schema descriptor for create_time field.
	videoDescCreateTime := videoMixinFields0[0].Descriptor()
	// video.DefaultCreateTime holds the default value on creation for the create_time field.
	video.DefaultCreateTime = videoDescCreateTime.Default.(func() time.Time)
	// videoDescUpdateTime is the schema descriptor for update_time field.
	videoDescUpdateTime := videoMixinFields0[1].Descriptor()
	// video.DefaultUpdateTime holds the default value on creation for the update_time field.
	video.DefaultUpdateTime = videoDescUpdateTime.Default.(func() time.Time)
	// video.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	video.UpdateDefaultUpdateTime = videoDescUpdateTime.UpdateDefault.(func() time.Time)
	// videoDescVideoID is the schema descriptor for video_id field.
	videoDescVideoID := videoFields[1].Descriptor()
	// video.VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	video.VideoIDValidator = videoDescVideoID.Validators[0].(func(string) error)
	// videoDescDescription is the schema descriptor for description field.
	videoDescDescription := videoFields[3].Descriptor()
	// video.DefaultDescription holds the default value on creation for the description field.
	video.DefaultDescription = videoDescDescription.Default.(string)
	// videoDescThumbnailURL is the schema descriptor for thumbnail_url field.
	videoDescThumbnailURL := videoFields[4].Descriptor()
	// video.DefaultThumbnailURL holds the default value on creation for the thumbnail_url field.
	video.DefaultThumbnailURL = videoDescThumbnailURL.Default.(string)
	// videoDescChannelTitle is the schema descriptor for channel_title field.
	videoDescChannelTitle := videoFields[5].Descriptor()
	// video.DefaultChannelTitle holds the default value on creation for the channel_title field.
	video.DefaultChannelTitle = videoDescChannelTitle.Default.(string)
	// videoDescLikeCount is the schema descriptor for like_count field.
	videoDescLikeCount := videoFields[8].Descriptor()
	// video.DefaultLikeCount holds the default value on creation for the like_count field.
	video.DefaultLikeCount = videoDescLikeCount.Default.(uint64)
	// videoDescViewCount is the schema descriptor for view_count field.
	videoDescViewCount := videoFields[9].Descriptor()
	// video.DefaultViewCount holds the default value on creation for the view_count field.
	video.DefaultViewCount = videoDescViewCount.Default.(uint64)
}
