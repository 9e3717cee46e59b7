package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"sixfactors/internal/model"
	"sixfactors/internal/service"
)

// Parameter names are dictated by the chat platform and carry spaces.
const (
	paramUserID     = "chatfuel user id"
	paramLocale     = "locale"
	paramQuestionID = "questionId"
	paramUserAnswer = "userAnswer"
)

// QuizService is the part of the quiz service the handlers depend on.
type QuizService interface {
	NextQuestion(ctx context.Context, userID, locale, lastQuestionID string) (*model.NextQuestion, error)
	SaveAnswer(ctx context.Context, userID, locale, questionID, userAnswer string) error
	Progress(ctx context.Context, userID string) (*model.UserProgress, error)
}

// QuizHandler handles the questionnaire webhook endpoints.
type QuizHandler struct {
	quizSvc QuizService
}

// NewQuizHandler creates a new quiz handler.
func NewQuizHandler(quizSvc QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// setAttributes is the chat platform's attribute-update envelope.
type setAttributes struct {
	IsComplete   bool   `json:"isComplete"`
	QuestionID   int    `json:"questionId"`
	QuestionText string `json:"questionText"`
}

type nextQuestionResponse struct {
	SetAttributes setAttributes `json:"set_attributes"`
}

// NextQuestion handles GET /sixfactors/question/next
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID := query.Get(paramUserID)
	locale := query.Get(paramLocale)
	lastQuestionID := query.Get(paramQuestionID)

	if userID == "" {
		writeError(w, http.StatusBadRequest, "Unable to find the user id.")
		return
	}

	if locale == "" {
		writeError(w, http.StatusBadRequest, "Unable to find the user locale.")
		return
	}

	next, err := h.quizSvc.NextQuestion(r.Context(), userID, locale, lastQuestionID)
	if err != nil {
		slog.ErrorContext(r.Context(), "next question failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Unable to get the next question.")

		return
	}

	writeJSON(w, http.StatusOK, nextQuestionResponse{
		SetAttributes: setAttributes{
			IsComplete:   next.IsComplete,
			QuestionID:   next.QuestionID,
			QuestionText: next.QuestionText,
		},
	})
}

// saveAnswerRequest is the save-answer body. The platform posts JSON by
// default but falls back to form encoding for older flows.
type saveAnswerRequest struct {
	UserID     string `json:"chatfuel user id"`
	Locale     string `json:"locale"`
	QuestionID string `json:"questionId"`
	UserAnswer string `json:"userAnswer"`
}

func decodeSaveAnswer(r *http.Request) (*saveAnswerRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}

		return &saveAnswerRequest{
			UserID:     r.PostFormValue(paramUserID),
			Locale:     r.PostFormValue(paramLocale),
			QuestionID: r.PostFormValue(paramQuestionID),
			UserAnswer: r.PostFormValue(paramUserAnswer),
		}, nil
	}

	var req saveAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return &req, nil
}

// SaveAnswer handles POST /sixfactors/answers
func (h *QuizHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSaveAnswer(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unable to read the request body.")
		return
	}

	switch {
	case req.UserID == "":
		writeError(w, http.StatusBadRequest, "Unable to find the user id.")
		return
	case req.Locale == "":
		writeError(w, http.StatusBadRequest, "Unable to find the user locale.")
		return
	case req.QuestionID == "":
		writeError(w, http.StatusBadRequest, "Unable to find the question ID.")
		return
	case req.UserAnswer == "":
		writeError(w, http.StatusBadRequest, "Unable to find the user answer.")
		return
	}

	err = h.quizSvc.SaveAnswer(r.Context(), req.UserID, req.Locale, req.QuestionID, req.UserAnswer)

	switch {
	case errors.Is(err, service.ErrInvalidQuestionID):
		writeError(w, http.StatusBadRequest, "The question ID is not a number.")
	case err != nil:
		slog.ErrorContext(r.Context(), "save answer failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Unable to save the answer.")
	default:
		// The platform expects an empty body on success.
		w.WriteHeader(http.StatusOK)
	}
}

// Progress handles GET /sixfactors/progress/{userId}
func (h *QuizHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	progress, err := h.quizSvc.Progress(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "get progress failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Unable to get the user progress.")

		return
	}

	if progress == nil {
		writeError(w, http.StatusNotFound, "No progress recorded for this user.")
		return
	}

	writeJSON(w, http.StatusOK, progress)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

type message struct {
	Text string `json:"text"`
}

type messagesResponse struct {
	Messages []message `json:"messages"`
}

// writeError responds with the chat platform's messages envelope so the bot
// can surface the text to the user.
func writeError(w http.ResponseWriter, status int, text string) {
	writeJSON(w, status, messagesResponse{Messages: []message{{Text: text}}})
}
