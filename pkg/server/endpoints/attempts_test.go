package endpoints

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/placement"
)

func choiceRecord(id, level string) model.Question {
	return model.Question{
		QuestionID: id,
		Type:       "grammar_mcq",
		Level:      level,
		Tags:       model.StringList{},
		Content: model.QuestionContent{Content: placement.ChoiceContent{
			Prompt:  "Pick one",
			Options: []string{"a", "b", "c"},
			Correct: 1,
		}},
		Active: true,
	}
}

func snapshotQuestion(id string, level placement.Level) placement.Question {
	return placement.Question{
		ID:    id,
		Type:  placement.QuestionTypeGrammarMcq,
		Level: level,
		Content: placement.ChoiceContent{
			Prompt:  "Pick one",
			Options: []string{"a", "b", "c"},
			Correct: 1,
		},
	}
}

func TestAttemptStart(t *testing.T) {
	questions := new(mockQuestionsStore)
	attempts := new(mockAttemptsStore)
	for i, level := range placement.LevelStrings() {
		questions.On("SampleActiveQuestions", level, mock.AnythingOfType("int")).
			Return([]model.Question{choiceRecord("q-"+level, placement.LevelValues()[i].String())}, nil)
	}
	attempts.On("CreateAttempt", mock.AnythingOfType("*model.TestAttempt")).Return(nil)

	req := requestWithUser("POST", "/attempts", nil, "alice")
	recorder := httptest.NewRecorder()

	handleAttemptStart(questions, attempts, testConfig())(recorder, req)

	require.Equal(t, 201, recorder.Code)
	var response attemptResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "alice", response.UserID)
	assert.NotEmpty(t, response.AttemptID)
	assert.Len(t, response.Questions, 5)
	assert.Nil(t, response.CompletedAt)

	// The answer key must never leak to the candidate.
	assert.NotContains(t, recorder.Body.String(), `"correct"`)
	assert.NotContains(t, recorder.Body.String(), `"accepted"`)
}

func TestAttemptStartEmptyBank(t *testing.T) {
	questions := new(mockQuestionsStore)
	attempts := new(mockAttemptsStore)
	questions.On("SampleActiveQuestions", mock.AnythingOfType("string"), mock.AnythingOfType("int")).
		Return([]model.Question{}, nil)

	req := requestWithUser("POST", "/attempts", nil, "alice")
	recorder := httptest.NewRecorder()

	handleAttemptStart(questions, attempts, testConfig())(recorder, req)

	assert.Equal(t, 503, recorder.Code)
	attempts.AssertNotCalled(t, "CreateAttempt", mock.Anything)
}

func TestAttemptSubmit(t *testing.T) {
	attempts := new(mockAttemptsStore)
	attempt := &model.TestAttempt{
		AttemptID: "att-1",
		UserID:    "alice",
		Questions: model.QuestionSet{
			snapshotQuestion("q1", placement.LevelA1),
			snapshotQuestion("q2", placement.LevelA2),
		},
		StartedAt: time.Now(),
	}
	attempts.On("AttemptByID", "att-1").Return(attempt)
	attempts.On("SaveResult", attempt).Return(nil)

	body := `{"answers": {"q1": 1, "q2": 1}}`
	req := requestWithUser("POST", "/attempts/att-1/answers", strings.NewReader(body), "alice")
	req = withMuxVars(req, map[string]string{"attemptID": "att-1"})
	recorder := httptest.NewRecorder()

	handleAttemptSubmit(attempts, testConfig())(recorder, req)

	require.Equal(t, 200, recorder.Code)
	var result placement.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, placement.LevelA2, result.Level)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 2, result.TotalPoints)

	require.NotNil(t, attempt.CompletedAt)
	require.NotNil(t, attempt.Level)
	assert.Equal(t, "A2", *attempt.Level)
	attempts.AssertCalled(t, "SaveResult", attempt)
}

func TestAttemptSubmitConflict(t *testing.T) {
	attempts := new(mockAttemptsStore)
	completedAt := time.Now()
	attempts.On("AttemptByID", "att-1").Return(&model.TestAttempt{
		AttemptID:   "att-1",
		UserID:      "alice",
		CompletedAt: &completedAt,
	})

	body := `{"answers": {}}`
	req := requestWithUser("POST", "/attempts/att-1/answers", strings.NewReader(body), "alice")
	req = withMuxVars(req, map[string]string{"attemptID": "att-1"})
	recorder := httptest.NewRecorder()

	handleAttemptSubmit(attempts, testConfig())(recorder, req)

	assert.Equal(t, 409, recorder.Code)
	attempts.AssertNotCalled(t, "SaveResult", mock.Anything)
}

func TestAttemptSubmitWrongUser(t *testing.T) {
	attempts := new(mockAttemptsStore)
	attempts.On("AttemptByID", "att-1").Return(&model.TestAttempt{
		AttemptID: "att-1",
		UserID:    "alice",
	})

	body := `{"answers": {}}`
	req := requestWithUser("POST", "/attempts/att-1/answers", strings.NewReader(body), "bob")
	req = withMuxVars(req, map[string]string{"attemptID": "att-1"})
	recorder := httptest.NewRecorder()

	handleAttemptSubmit(attempts, testConfig())(recorder, req)

	assert.Equal(t, 403, recorder.Code)
}

func TestAttemptSubmitNotFound(t *testing.T) {
	attempts := new(mockAttemptsStore)
	attempts.On("AttemptByID", "ghost").Return(nil)

	body := `{"answers": {}}`
	req := requestWithUser("POST", "/attempts/ghost/answers", strings.NewReader(body), "alice")
	req = withMuxVars(req, map[string]string{"attemptID": "ghost"})
	recorder := httptest.NewRecorder()

	handleAttemptSubmit(attempts, testConfig())(recorder, req)

	assert.Equal(t, 404, recorder.Code)
}

func TestAttemptShowOwner(t *testing.T) {
	attempts := new(mockAttemptsStore)
	attempts.On("AttemptByID", "att-1").Return(&model.TestAttempt{
		AttemptID: "att-1",
		UserID:    "alice",
		Questions: model.QuestionSet{snapshotQuestion("q1", placement.LevelA1)},
	})

	req := requestWithUser("GET", "/attempts/att-1", nil, "alice")
	req = withMuxVars(req, map[string]string{"attemptID": "att-1"})
	recorder := httptest.NewRecorder()

	handleAttemptShow(new(mockRolesStore), new(mockAssignmentsStore), attempts, testConfig())(recorder, req)

	assert.Equal(t, 200, recorder.Code)
}

func TestAttemptShowOtherUserRequiresPermission(t *testing.T) {
	roles := new(mockRolesStore)
	assignments := new(mockAssignmentsStore)
	roles.On("RoleByID", "student").Return(studentRole())
	assignments.On("ActiveAssignmentsForUser", "bob").Return([]model.RoleAssignment{}, nil)

	attempts := new(mockAttemptsStore)
	attempts.On("AttemptByID", "att-1").Return(&model.TestAttempt{
		AttemptID: "att-1",
		UserID:    "alice",
	})

	req := requestWithUser("GET", "/attempts/att-1", nil, "bob")
	req = withMuxVars(req, map[string]string{"attemptID": "att-1"})
	recorder := httptest.NewRecorder()

	handleAttemptShow(roles, assignments, attempts, testConfig())(recorder, req)

	assert.Equal(t, 403, recorder.Code)
}
