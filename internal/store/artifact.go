package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/article"
	"github.com/abhisek/coursegen/ent/externalarticle"
	"github.com/abhisek/coursegen/ent/lesson"
	"github.com/abhisek/coursegen/ent/project"
	"github.com/abhisek/coursegen/ent/projectfile"
	"github.com/abhisek/coursegen/ent/quiz"
	"github.com/abhisek/coursegen/ent/textresponsequestion"
	"github.com/abhisek/coursegen/ent/video"
	"github.com/abhisek/coursegen/internal/course"
)

type artifactRepo struct {
	client *ent.Client
}

func (r *artifactRepo) SaveArtifact(ctx context.Context, lessonID int, a course.Artifact) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		l, err := tx.Lesson.Get(ctx, lessonID)
		if ent.IsNotFound(err) {
			return fmt.Errorf("lesson %d: %w", lessonID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get lesson %d: %w", lessonID, err)
		}
		if !course.Accepts(course.LessonType(l.LessonType), a) {
			return fmt.Errorf("lesson %d (%s): %w", lessonID, l.LessonType, ErrArtifactMismatch)
		}

		switch v := a.(type) {
		case *course.Quiz:
			return saveQuiz(ctx, tx, lessonID, v)
		case *course.Article:
			return saveArticle(ctx, tx, lessonID, v)
		case *course.ExternalArticle:
			return saveExternalArticle(ctx, tx, lessonID, v)
		case *course.Video:
			return saveVideo(ctx, tx, lessonID, v)
		case *course.Project:
			return saveProject(ctx, tx, lessonID, v)
		case *course.TextQuestionSet:
			return saveTextQuestions(ctx, tx, lessonID, v)
		default:
			return fmt.Errorf("unsupported artifact %T: %w", a, ErrArtifactMismatch)
		}
	})
}

func saveQuiz(ctx context.Context, tx *ent.Tx, lessonID int, q *course.Quiz) error {
	if _, err := tx.Quiz.Delete().Where(quiz.LessonID(lessonID)).Exec(ctx); err != nil {
		return fmt.Errorf("replace quiz: %w", err)
	}
	row, err := tx.Quiz.Create().
		SetLessonID(lessonID).
		SetQuestions(q.Questions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}
	q.ID, q.LessonID = row.ID, lessonID
	return nil
}

func saveArticle(ctx context.Context, tx *ent.Tx, lessonID int, a *course.Article) error {
	if _, err := tx.Article.Delete().Where(article.LessonID(lessonID)).Exec(ctx); err != nil {
		return fmt.Errorf("replace article: %w", err)
	}
	row, err := tx.Article.Create().
		SetLessonID(lessonID).
		SetContent(a.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save article: %w", err)
	}
	a.ID, a.LessonID = row.ID, lessonID
	return nil
}

func saveExternalArticle(ctx context.Context, tx *ent.Tx, lessonID int, a *course.ExternalArticle) error {
	if _, err := tx.ExternalArticle.Delete().Where(externalarticle.LessonID(lessonID)).Exec(ctx); err != nil {
		return fmt.Errorf("replace external article: %w", err)
	}
	row, err := tx.ExternalArticle.Create().
		SetLessonID(lessonID).
		SetURL(a.URL).
		SetTitle(a.Title).
		SetScore(a.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save external article: %w", err)
	}
	a.ID, a.LessonID = row.ID, lessonID
	return nil
}

func saveVideo(ctx context.Context, tx *ent.Tx, lessonID int, v *course.Video) error {
	existing, err := tx.Video.Query().
		Where(video.LessonID(lessonID), video.VideoID(v.VideoID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("find video: %w", err)
	}

	if existing != nil {
		row, err := tx.Video.UpdateOne(existing).
			SetTitle(v.Title).
			SetDescription(v.Description).
			SetThumbnailURL(v.ThumbnailURL).
			SetChannelTitle(v.ChannelTitle).
			SetNillablePublishedAt(v.PublishedAt).
			SetVideoURL(v.URL).
			SetLikeCount(v.LikeCount).
			SetViewCount(v.ViewCount).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update video: %w", err)
		}
		v.ID, v.LessonID = row.ID, lessonID
		return nil
	}

	row, err := tx.Video.Create().
		SetLessonID(lessonID).
		SetVideoID(v.VideoID).
		SetTitle(v.Title).
		SetDescription(v.Description).
		SetThumbnailURL(v.ThumbnailURL).
		SetChannelTitle(v.ChannelTitle).
		SetNillablePublishedAt(v.PublishedAt).
		SetVideoURL(v.URL).
		SetLikeCount(v.LikeCount).
		SetViewCount(v.ViewCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save video: %w", err)
	}
	v.ID, v.LessonID = row.ID, lessonID
	return nil
}

func saveProject(ctx context.Context, tx *ent.Tx, lessonID int, p *course.Project) error {
	if _, err := tx.Project.Delete().Where(project.LessonID(lessonID)).Exec(ctx); err != nil {
		return fmt.Errorf("replace project: %w", err)
	}
	method := p.GradingMethod
	if method == "" {
		method = course.GradingAIReview
	}
	row, err := tx.Project.Create().
		SetLessonID(lessonID).
		SetName(p.Name).
		SetDescription(p.Description).
		SetGradingMethod(project.GradingMethod(method)).
		SetExpectedOutput(p.ExpectedOutput).
		SetIsFinalProject(p.IsFinalProject).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	if len(p.Files) > 0 {
		builders := make([]*ent.ProjectFileCreate, 0, len(p.Files))
		for _, f := range p.Files {
			builders = append(builders, tx.ProjectFile.Create().
				SetProjectID(row.ID).
				SetPath(f.Path).
				SetContent(f.Content))
		}
		if _, err := tx.ProjectFile.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("save project files: %w", err)
		}
	}

	p.ID, p.LessonID, p.GradingMethod = row.ID, lessonID, method
	return nil
}

func saveTextQuestions(ctx context.Context, tx *ent.Tx, lessonID int, set *course.TextQuestionSet) error {
	if _, err := tx.TextResponseQuestion.Delete().
		Where(textresponsequestion.LessonID(lessonID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("replace text questions: %w", err)
	}
	if len(set.Questions) == 0 {
		set.LessonID = lessonID
		return nil
	}

	builders := make([]*ent.TextResponseQuestionCreate, 0, len(set.Questions))
	for _, q := range set.Questions {
		builders = append(builders, tx.TextResponseQuestion.Create().
			SetLessonID(lessonID).
			SetNumber(q.Number).
			SetQuestion(q.Question).
			SetReferenceAnswer(q.ReferenceAnswer))
	}
	rows, err := tx.TextResponseQuestion.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return fmt.Errorf("save text questions: %w", err)
	}
	for i, row := range rows {
		set.Questions[i].ID = row.ID
	}
	set.LessonID = lessonID
	return nil
}

func (r *artifactRepo) LessonContent(ctx context.Context, lessonID int) (*course.LessonContent, error) {
	l, err := r.client.Lesson.Query().
		Where(lesson.ID(lessonID)).
		WithQuiz().
		WithArticle().
		WithExternalArticle().
		WithVideos().
		WithProject(func(q *ent.ProjectQuery) {
			q.WithFiles(func(fq *ent.ProjectFileQuery) {
				fq.Order(ent.Asc(projectfile.FieldPath))
			})
		}).
		WithTextQuestions(func(q *ent.TextResponseQuestionQuery) {
			q.Order(ent.Asc(textresponsequestion.FieldNumber))
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("lesson %d: %w", lessonID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson content %d: %w", lessonID, err)
	}

	out := &course.LessonContent{Lesson: toLesson(l)}
	if q := l.Edges.Quiz; q != nil {
		out.Quiz = toQuiz(q)
	}
	if a := l.Edges.Article; a != nil {
		out.Article = &course.Article{ID: a.ID, LessonID: a.LessonID, Content: a.Content}
	}
	if e := l.Edges.ExternalArticle; e != nil {
		out.External = &course.ExternalArticle{ID: e.ID, LessonID: e.LessonID, URL: e.URL, Title: e.Title, Score: e.Score}
	}
	for _, v := range l.Edges.Videos {
		out.Videos = append(out.Videos, toVideo(v))
	}
	sort.SliceStable(out.Videos, func(i, j int) bool {
		a, b := out.Videos[i], out.Videos[j]
		if a.LikeCount != b.LikeCount {
			return a.LikeCount > b.LikeCount
		}
		return a.ViewCount > b.ViewCount
	})
	if p := l.Edges.Project; p != nil {
		out.Project = toProject(p)
	}
	for _, q := range l.Edges.TextQuestions {
		out.TextQuestions = append(out.TextQuestions, toTextQuestion(q))
	}
	return out, nil
}

func (r *artifactRepo) Quiz(ctx context.Context, quizID int) (*course.Quiz, error) {
	q, err := r.client.Quiz.Get(ctx, quizID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz %d: %w", quizID, err)
	}
	return toQuiz(q), nil
}

func (r *artifactRepo) TextQuestions(ctx context.Context, lessonID int) ([]course.TextQuestion, error) {
	rows, err := r.client.TextResponseQuestion.Query().
		Where(textresponsequestion.LessonID(lessonID)).
		Order(ent.Asc(textresponsequestion.FieldNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("text questions for lesson %d: %w", lessonID, err)
	}
	out := make([]course.TextQuestion, 0, len(rows))
	for _, q := range rows {
		out = append(out, toTextQuestion(q))
	}
	return out, nil
}

func toQuiz(q *ent.Quiz) *course.Quiz {
	return &course.Quiz{ID: q.ID, LessonID: q.LessonID, Questions: q.Questions}
}

func toVideo(v *ent.Video) course.Video {
	return course.Video{
		ID:           v.ID,
		LessonID:     v.LessonID,
		VideoID:      v.VideoID,
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		ChannelTitle: v.ChannelTitle,
		PublishedAt:  v.PublishedAt,
		URL:          v.VideoURL,
		LikeCount:    v.LikeCount,
		ViewCount:    v.ViewCount,
	}
}

func toProject(p *ent.Project) *course.Project {
	out := &course.Project{
		ID:             p.ID,
		LessonID:       p.LessonID,
		Name:           p.Name,
		Description:    p.Description,
		GradingMethod:  course.GradingMethod(p.GradingMethod),
		ExpectedOutput: p.ExpectedOutput,
		IsFinalProject: p.IsFinalProject,
	}
	for _, f := range p.Edges.Files {
		out.Files = append(out.Files, course.ProjectFile{Path: f.Path, Content: f.Content})
	}
	return out
}

func toTextQuestion(q *ent.TextResponseQuestion) course.TextQuestion {
	return course.TextQuestion{
		ID:              q.ID,
		Number:          q.Number,
		Question:        q.Question,
		ReferenceAnswer: q.ReferenceAnswer,
	}
}
