package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tomasbusse/avalingo/pkg/bank"
	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/placement"
	"github.com/tomasbusse/avalingo/pkg/rbac"
	"github.com/tomasbusse/avalingo/pkg/server"
	"github.com/tomasbusse/avalingo/pkg/server/middleware"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

type readingItemResponse struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct *int     `json:"correct,omitempty"`
}

// questionResponse is the API shape of a question. The answer key fields
// stay empty unless the response is built with the key included.
type questionResponse struct {
	QuestionID  string                `json:"question_id"`
	Type        string                `json:"type"`
	Level       string                `json:"level"`
	Topic       string                `json:"topic,omitempty"`
	Difficulty  float64               `json:"difficulty"`
	Tags        []string              `json:"tags,omitempty"`
	Prompt      string                `json:"prompt,omitempty"`
	Options     []string              `json:"options,omitempty"`
	PassageHTML string                `json:"passage_html,omitempty"`
	Items       []readingItemResponse `json:"items,omitempty"`
	Correct     *int                  `json:"correct,omitempty"`
	Accepted    []string              `json:"accepted,omitempty"`
}

// newQuestionResponse renders a question for API consumers. Reading
// passages are Markdown in the bank and HTML on the wire. Only callers
// allowed to manage content get the answer key.
func newQuestionResponse(q placement.Question, includeKey bool) (questionResponse, error) {
	response := questionResponse{
		QuestionID: q.ID,
		Type:       q.Type.String(),
		Level:      q.Level.String(),
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Tags:       q.Tags,
	}

	switch content := q.Content.(type) {
	case placement.ChoiceContent:
		response.Prompt = content.Prompt
		response.Options = content.Options
		if includeKey {
			correct := content.Correct
			response.Correct = &correct
		}
	case placement.TextContent:
		response.Prompt = content.Prompt
		if includeKey {
			response.Accepted = content.Accepted
		}
	case placement.ReadingContent:
		html, err := bank.RenderPassage(content.Passage)
		if err != nil {
			return questionResponse{}, err
		}
		response.PassageHTML = html
		for _, item := range content.Items {
			itemResponse := readingItemResponse{
				Prompt:  item.Prompt,
				Options: item.Options,
			}
			if includeKey {
				correct := item.Correct
				itemResponse.Correct = &correct
			}
			response.Items = append(response.Items, itemResponse)
		}
	}
	return response, nil
}

func handleQuestionsList(roles store.RolesStore, assignments store.AssignmentsStore, questions store.QuestionsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermContentRead, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}
		includeKey, err := userCan(roles, assignments, cfg, userID, PermContentManage, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}

		level := r.URL.Query().Get("level")
		if level != "" {
			if _, err := placement.LevelString(level); err != nil {
				respondWithError(w, http.StatusBadRequest, "unknown level")
				return
			}
		}

		limit, offset := listParams(r, cfg.APIListLimitMax)
		records, err := questions.ListQuestions(level, limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list questions")
			return
		}

		response := make([]questionResponse, 0, len(records))
		for _, record := range records {
			question, err := record.Placement()
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to decode question")
				return
			}
			item, err := newQuestionResponse(question, includeKey)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to render question")
				return
			}
			response = append(response, item)
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleQuestionShow(roles store.RolesStore, assignments store.AssignmentsStore, questions store.QuestionsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermContentRead, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}
		includeKey, err := userCan(roles, assignments, cfg, userID, PermContentManage, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}

		record := questions.QuestionByID(mux.Vars(r)["questionID"])
		if record == nil {
			respondWithError(w, http.StatusNotFound, "question not found")
			return
		}
		question, err := record.Placement()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to decode question")
			return
		}
		response, err := newQuestionResponse(question, includeKey)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to render question")
			return
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

// handleQuestionUpsert creates or replaces one question. The body uses the
// bank document entry shape, so the same validation applies to API writes
// and bulk loads.
func handleQuestionUpsert(roles store.RolesStore, assignments store.AssignmentsStore, questions store.QuestionsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermContentManage, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}

		var entry bank.Entry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		entry.ID = mux.Vars(r)["questionID"]

		document := bank.Document{Questions: []bank.Entry{entry}}
		if err := document.Validate(); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		record := entry.Model()
		if err := questions.UpsertQuestion(&record); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to save question")
			return
		}

		response, err := newQuestionResponse(entry.Question(), true)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to render question")
			return
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

// RegisterQuestionsEndpoints wires question bank endpoints. Bulk writes go
// through the bank loader; the API covers single-question edits.
func RegisterQuestionsEndpoints(s *server.Server) {
	protect := func(name string, h http.HandlerFunc) http.Handler {
		return instrument(name, s.Auth.Middleware(h))
	}
	s.Router.Handle("/questions", protect("questions_list", handleQuestionsList(s.RolesStore, s.AssignmentsStore, s.QuestionsStore, s.Config))).Methods("GET")
	s.Router.Handle("/questions/{questionID}", protect("question_show", handleQuestionShow(s.RolesStore, s.AssignmentsStore, s.QuestionsStore, s.Config))).Methods("GET")
	s.Router.Handle("/questions/{questionID}", protect("question_upsert", handleQuestionUpsert(s.RolesStore, s.AssignmentsStore, s.QuestionsStore, s.Config))).Methods("PUT")
}
