package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"sixfactors/internal/cache"
	"sixfactors/internal/catalog"
	"sixfactors/internal/model"
	"sixfactors/internal/repository"
)

// ErrInvalidQuestionID is returned when a save request carries a question id
// that does not parse as an integer.
var ErrInvalidQuestionID = errors.New("question id is not a number")

// QuizService orchestrates the questionnaire flow: serving the next question
// and recording answers against the progress store.
type QuizService struct {
	catalog *catalog.Catalog
	repo    repository.ProgressRepo
	cache   cache.ProgressCache
}

// NewQuizService creates a new quiz service.
func NewQuizService(cat *catalog.Catalog, repo repository.ProgressRepo, progressCache cache.ProgressCache) *QuizService {
	return &QuizService{
		catalog: cat,
		repo:    repo,
		cache:   progressCache,
	}
}

// NextQuestion determines the question following the user's last answered
// one. The pipeline is: resolve the last question id, increment it, fetch
// the catalog entry. An index outside the catalog folds into the end-of-test
// marker rather than an error. Read-only: stored progress only advances when
// an answer is saved.
func (s *QuizService) NextQuestion(ctx context.Context, userID, locale, lastQuestionID string) (*model.NextQuestion, error) {
	lang := s.catalog.ResolveLang(locale)

	lastID, err := s.resolveLastQuestionID(ctx, userID, lastQuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve last question id: %w", err)
	}

	nextID := lastID + 1

	question := s.catalog.Question(nextID)
	if question == nil {
		slog.InfoContext(ctx, "end of test", slog.Int("question_id", nextID))
		return model.EndOfTest(), nil
	}

	return &model.NextQuestion{
		IsComplete:   false,
		QuestionID:   nextID,
		QuestionText: question.Label(lang, catalog.DefaultLang),
	}, nil
}

// resolveLastQuestionID picks the starting index: an integer-parseable
// request parameter wins, then the cache, then the progress store. A user
// with no record resolves to model.NoProgress.
func (s *QuizService) resolveLastQuestionID(ctx context.Context, userID, raw string) (int, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return id, nil
	}

	id, ok, err := s.cache.GetLastQuestionID(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "progress cache read failed", slog.Any("error", err))
	} else if ok {
		return id, nil
	}

	return s.repo.LastQuestionID(ctx, userID)
}

// SaveAnswer translates the localized answer text to its numeric code and
// merges it into the user's progress record. An unrecognized phrase is
// persisted as model.AnswerCodeUnknown, never rejected.
func (s *QuizService) SaveAnswer(ctx context.Context, userID, locale, questionID, userAnswer string) error {
	qid, err := strconv.Atoi(strings.TrimSpace(questionID))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidQuestionID, questionID)
	}

	lang := s.catalog.ResolveLang(locale)

	code, ok := s.catalog.AnswerCode(lang, userAnswer)
	if !ok {
		slog.WarnContext(ctx, "unknown answer phrase",
			slog.String("lang", lang),
			slog.String("answer", userAnswer),
		)

		code = model.AnswerCodeUnknown
	}

	if err := s.repo.SaveAnswer(ctx, userID, qid, code); err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}

	// Best effort: the store stays the source of truth on a cache failure.
	if err := s.cache.SetLastQuestionID(ctx, userID, qid); err != nil {
		slog.WarnContext(ctx, "progress cache write failed", slog.Any("error", err))
	}

	return nil
}

// Progress returns the user's full progress record, or nil when the user has
// not answered anything yet.
func (s *QuizService) Progress(ctx context.Context, userID string) (*model.UserProgress, error) {
	progress, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return progress, nil
}
