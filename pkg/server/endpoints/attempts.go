package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tomasbusse/avalingo/pkg/audit"
	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/metrics"
	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/placement"
	"github.com/tomasbusse/avalingo/pkg/rbac"
	"github.com/tomasbusse/avalingo/pkg/server"
	"github.com/tomasbusse/avalingo/pkg/server/middleware"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

type attemptResponse struct {
	AttemptID   string                                   `json:"attempt_id"`
	UserID      string                                   `json:"user_id"`
	Questions   []questionResponse                       `json:"questions,omitempty"`
	Level       *string                                  `json:"level,omitempty"`
	Score       int                                      `json:"score"`
	TotalPoints int                                      `json:"total_points"`
	Breakdown   map[placement.Level]placement.LevelStats `json:"breakdown,omitempty"`
	StartedAt   time.Time                                `json:"started_at"`
	CompletedAt *time.Time                               `json:"completed_at,omitempty"`
}

func newAttemptResponse(attempt *model.TestAttempt) (attemptResponse, error) {
	response := attemptResponse{
		AttemptID:   attempt.AttemptID,
		UserID:      attempt.UserID,
		Level:       attempt.Level,
		Score:       attempt.Score,
		TotalPoints: attempt.TotalPoints,
		Breakdown:   attempt.Breakdown,
		StartedAt:   attempt.StartedAt,
		CompletedAt: attempt.CompletedAt,
	}
	for _, question := range attempt.Questions {
		rendered, err := newQuestionResponse(question, false)
		if err != nil {
			return attemptResponse{}, err
		}
		response.Questions = append(response.Questions, rendered)
	}
	return response, nil
}

type submitAnswersRequest struct {
	Answers map[string]placement.Answer `json:"answers"`
}

func handleAttemptStart(questions store.QuestionsStore, attempts store.AttemptsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())

		// Snapshot the question set onto the attempt so bank edits never
		// change what a submission is scored against.
		var snapshot []placement.Question
		for _, level := range placement.LevelValues() {
			records, err := questions.SampleActiveQuestions(level.String(), cfg.QuestionsPerLevel)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to draw questions")
				return
			}
			for _, record := range records {
				question, err := record.Placement()
				if err != nil {
					respondWithError(w, http.StatusInternalServerError, "failed to decode question")
					return
				}
				snapshot = append(snapshot, question)
			}
		}
		if len(snapshot) == 0 {
			respondWithError(w, http.StatusServiceUnavailable, "question bank is empty")
			return
		}

		attemptID, err := generateAttemptID()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to create attempt")
			return
		}
		attempt := model.TestAttempt{
			AttemptID: attemptID,
			UserID:    userID,
			Questions: model.QuestionSet(snapshot),
		}
		if err := attempts.CreateAttempt(&attempt); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to create attempt")
			return
		}

		metrics.AttemptsStarted.Inc()

		response, err := newAttemptResponse(&attempt)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to render attempt")
			return
		}
		respondWithJSON(w, http.StatusCreated, response)
	}
}

func handleAttemptShow(roles store.RolesStore, assignments store.AssignmentsStore, attempts store.AttemptsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := middleware.GetUserID(r.Context())

		attempt := attempts.AttemptByID(mux.Vars(r)["attemptID"])
		if attempt == nil {
			respondWithError(w, http.StatusNotFound, "attempt not found")
			return
		}

		if attempt.UserID != callerID {
			allowed, err := userCan(roles, assignments, cfg, callerID, PermAttemptsRead, rbac.ScopeGlobal, "")
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
				return
			}
			if !allowed {
				respondWithError(w, http.StatusForbidden, "forbidden")
				return
			}
		}

		response, err := newAttemptResponse(attempt)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to render attempt")
			return
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleAttemptSubmit(attempts store.AttemptsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := middleware.GetUserID(r.Context())

		attempt := attempts.AttemptByID(mux.Vars(r)["attemptID"])
		if attempt == nil {
			respondWithError(w, http.StatusNotFound, "attempt not found")
			return
		}
		if attempt.UserID != callerID {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}
		if attempt.Completed() {
			respondWithError(w, http.StatusConflict, "attempt already completed")
			return
		}

		var request submitAnswersRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if request.Answers == nil {
			request.Answers = map[string]placement.Answer{}
		}

		result := placement.ScoreAttempt(request.Answers, attempt.Questions)

		now := time.Now()
		level := result.Level.String()
		attempt.Answers = model.AnswerSet(request.Answers)
		attempt.Level = &level
		attempt.Score = result.Score
		attempt.TotalPoints = result.TotalPoints
		attempt.Breakdown = model.LevelBreakdown(result.Breakdown)
		attempt.CompletedAt = &now

		if err := attempts.SaveResult(attempt); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to save result")
			return
		}

		metrics.AttemptsScored.WithLabelValues(level).Inc()
		audit.Log(audit.AttemptScoredEvent{
			UserID:      callerID,
			AttemptID:   attempt.AttemptID,
			Level:       level,
			Score:       result.Score,
			TotalPoints: result.TotalPoints,
			ClientIP:    clientIP(r, cfg),
		})

		respondWithJSON(w, http.StatusOK, result)
	}
}

// RegisterAttemptsEndpoints wires placement attempt endpoints.
func RegisterAttemptsEndpoints(s *server.Server) {
	protect := func(name string, h http.HandlerFunc) http.Handler {
		return instrument(name, s.Auth.Middleware(h))
	}
	s.Router.Handle("/attempts", protect("attempt_start", handleAttemptStart(s.QuestionsStore, s.AttemptsStore, s.Config))).Methods("POST")
	s.Router.Handle("/attempts/{attemptID}", protect("attempt_show", handleAttemptShow(s.RolesStore, s.AssignmentsStore, s.AttemptsStore, s.Config))).Methods("GET")
	s.Router.Handle("/attempts/{attemptID}/answers", protect("attempt_submit", handleAttemptSubmit(s.AttemptsStore, s.Config))).Methods("POST")
}
