package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cucumber/godog"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/placement"
)

// StepsContext carries state between steps of one scenario.
type StepsContext struct {
	tc *TestContext

	tokens           map[string]string
	lastStatus       int
	lastBody         []byte
	lastAssignmentID int64
	lastAttemptID    string

	attemptQuestions []attemptQuestion
	pendingAnswers   map[string]placement.Answer
}

// attemptQuestion is the slice of the attempt payload the steps care about.
type attemptQuestion struct {
	QuestionID string `json:"question_id"`
	Level      string `json:"level"`
}

func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:     tc,
		tokens: map[string]string{},
	}
}

// Register wires the step definitions into the scenario context.
func (s *StepsContext) Register(sc *godog.ScenarioContext) {
	sc.Step(`^a running server$`, s.aRunningServer)
	sc.Step(`^a user "([^"]*)" with the "([^"]*)" role granted globally$`, s.aUserWithGlobalRole)

	sc.Step(`^user "([^"]*)" checks permission "([^"]*)" at global scope$`, s.checksPermissionGlobal)
	sc.Step(`^user "([^"]*)" checks permission "([^"]*)" in organization "([^"]*)"$`, s.checksPermissionInOrganization)
	sc.Step(`^the check is allowed$`, s.theCheckIsAllowed)
	sc.Step(`^the check is denied$`, s.theCheckIsDenied)

	sc.Step(`^user "([^"]*)" grants role "([^"]*)" to "([^"]*)" in organization "([^"]*)"$`, s.grantsRoleInOrganization)
	sc.Step(`^the grant succeeds$`, s.theGrantSucceeds)
	sc.Step(`^user "([^"]*)" revokes that assignment from "([^"]*)"$`, s.revokesThatAssignment)

	sc.Step(`^a question bank with one question per level$`, s.aQuestionBankWithOneQuestionPerLevel)
	sc.Step(`^user "([^"]*)" starts a placement attempt$`, s.startsAttempt)
	sc.Step(`^the attempt contains (\d+) questions$`, s.theAttemptContainsQuestions)
	sc.Step(`^user "([^"]*)" answers correctly up to level "([^"]*)"$`, s.answersCorrectlyUpTo)
	sc.Step(`^user "([^"]*)" submits the attempt$`, s.submitsTheAttempt)
	sc.Step(`^user "([^"]*)" submits the attempt again$`, s.submitsTheAttempt)
	sc.Step(`^the recommended level is "([^"]*)"$`, s.theRecommendedLevelIs)
	sc.Step(`^the response status is (\d+)$`, s.theResponseStatusIs)
}

func (s *StepsContext) tokenFor(userID string) (string, error) {
	if token, ok := s.tokens[userID]; ok {
		return token, nil
	}
	token, err := s.tc.Auth.IssueToken(userID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token for %s: %w", userID, err)
	}
	s.tokens[userID] = token
	return token, nil
}

func (s *StepsContext) request(userID, method, path string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	token, err := s.tokenFor(userID)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.lastStatus = resp.StatusCode
	s.lastBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) aRunningServer() error {
	resp, err := s.tc.HTTPClient.Get(s.tc.ServerURL + "/health")
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server is not healthy: status %d", resp.StatusCode)
	}
	return nil
}

// aUserWithGlobalRole seeds an assignment directly, bypassing the API. This is
// the bootstrap grant; everything else in the scenarios goes through HTTP.
func (s *StepsContext) aUserWithGlobalRole(userID, roleID string) error {
	var count int64
	err := s.tc.DB.Model(&model.RoleAssignment{}).
		Where("user_id = ? AND role_id = ? AND scope = 'global' AND active", userID, roleID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.tc.DB.Create(&model.RoleAssignment{
		UserID: userID,
		RoleID: roleID,
		Scope:  "global",
		Active: true,
	}).Error
}

func (s *StepsContext) checkPermission(userID, permission, scope, scopeID string) error {
	query := url.Values{"permission": {permission}}
	if scope != "" {
		query.Set("scope", scope)
		query.Set("scopeId", scopeID)
	}
	return s.request(userID, http.MethodGet,
		fmt.Sprintf("/users/%s/permissions/check?%s", userID, query.Encode()), nil)
}

func (s *StepsContext) checksPermissionGlobal(userID, permission string) error {
	return s.checkPermission(userID, permission, "", "")
}

func (s *StepsContext) checksPermissionInOrganization(userID, permission, orgID string) error {
	return s.checkPermission(userID, permission, "organization", orgID)
}

func (s *StepsContext) checkResult() (bool, error) {
	if s.lastStatus != http.StatusOK {
		return false, fmt.Errorf("check returned status %d: %s", s.lastStatus, s.lastBody)
	}
	var response struct {
		Allowed bool `json:"allowed"`
	}
	if err := json.Unmarshal(s.lastBody, &response); err != nil {
		return false, err
	}
	return response.Allowed, nil
}

func (s *StepsContext) theCheckIsAllowed() error {
	allowed, err := s.checkResult()
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("expected check to be allowed, got denied")
	}
	return nil
}

func (s *StepsContext) theCheckIsDenied() error {
	allowed, err := s.checkResult()
	if err != nil {
		return err
	}
	if allowed {
		return fmt.Errorf("expected check to be denied, got allowed")
	}
	return nil
}

func (s *StepsContext) grantsRoleInOrganization(granterID, roleID, subjectID, orgID string) error {
	err := s.request(granterID, http.MethodPost,
		fmt.Sprintf("/users/%s/assignments", subjectID),
		map[string]string{
			"role_id":  roleID,
			"scope":    "organization",
			"scope_id": orgID,
		})
	if err != nil {
		return err
	}
	if s.lastStatus == http.StatusCreated {
		var response struct {
			ID int64 `json:"id"`
		}
		if err := json.Unmarshal(s.lastBody, &response); err != nil {
			return err
		}
		s.lastAssignmentID = response.ID
	}
	return nil
}

func (s *StepsContext) theGrantSucceeds() error {
	if s.lastStatus != http.StatusCreated {
		return fmt.Errorf("expected grant to succeed, got status %d: %s", s.lastStatus, s.lastBody)
	}
	return nil
}

func (s *StepsContext) revokesThatAssignment(revokerID, subjectID string) error {
	if s.lastAssignmentID == 0 {
		return fmt.Errorf("no assignment has been granted in this scenario")
	}
	err := s.request(revokerID, http.MethodDelete,
		fmt.Sprintf("/users/%s/assignments/%d", subjectID, s.lastAssignmentID), nil)
	if err != nil {
		return err
	}
	if s.lastStatus != http.StatusNoContent {
		return fmt.Errorf("expected revoke to succeed, got status %d: %s", s.lastStatus, s.lastBody)
	}
	return nil
}

// aQuestionBankWithOneQuestionPerLevel replaces the bank with one choice
// question per level, all keyed to option 0.
func (s *StepsContext) aQuestionBankWithOneQuestionPerLevel() error {
	if err := s.tc.DB.Exec("DELETE FROM questions").Error; err != nil {
		return err
	}
	for _, level := range placement.LevelValues() {
		question := model.Question{
			QuestionID: fmt.Sprintf("it-%s", level.String()),
			Type:       placement.QuestionTypeGrammarMcq.String(),
			Level:      level.String(),
			Topic:      "integration",
			Tags:       model.StringList{"integration"},
			Content: model.QuestionContent{Content: placement.ChoiceContent{
				Prompt:  fmt.Sprintf("%s checkpoint", level.String()),
				Options: []string{"right", "wrong", "also wrong"},
				Correct: 0,
			}},
			Active: true,
		}
		if err := s.tc.DB.Create(&question).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *StepsContext) startsAttempt(userID string) error {
	if err := s.request(userID, http.MethodPost, "/attempts", nil); err != nil {
		return err
	}
	if s.lastStatus != http.StatusCreated {
		return fmt.Errorf("expected attempt to start, got status %d: %s", s.lastStatus, s.lastBody)
	}
	var response struct {
		AttemptID string            `json:"attempt_id"`
		Questions []attemptQuestion `json:"questions"`
	}
	if err := json.Unmarshal(s.lastBody, &response); err != nil {
		return err
	}
	s.lastAttemptID = response.AttemptID
	s.attemptQuestions = response.Questions
	s.pendingAnswers = map[string]placement.Answer{}
	return nil
}

func (s *StepsContext) theAttemptContainsQuestions(count int) error {
	if len(s.attemptQuestions) != count {
		return fmt.Errorf("expected %d questions, got %d", count, len(s.attemptQuestions))
	}
	return nil
}

// answersCorrectlyUpTo picks the keyed option for every question at or below
// the named level and a wrong option above it.
func (s *StepsContext) answersCorrectlyUpTo(userID, levelName string) error {
	ceiling, err := placement.LevelString(levelName)
	if err != nil {
		return err
	}
	correct, wrong := 0, 1
	for _, question := range s.attemptQuestions {
		level, err := placement.LevelString(question.Level)
		if err != nil {
			return err
		}
		index := wrong
		if level <= ceiling {
			index = correct
		}
		choice := index
		s.pendingAnswers[question.QuestionID] = placement.Answer{Index: &choice}
	}
	return nil
}

func (s *StepsContext) submitsTheAttempt(userID string) error {
	return s.request(userID, http.MethodPost,
		fmt.Sprintf("/attempts/%s/answers", s.lastAttemptID),
		map[string]interface{}{"answers": s.pendingAnswers})
}

func (s *StepsContext) theRecommendedLevelIs(levelName string) error {
	if s.lastStatus != http.StatusOK {
		return fmt.Errorf("expected scoring to succeed, got status %d: %s", s.lastStatus, s.lastBody)
	}
	var result struct {
		Level string `json:"level"`
	}
	if err := json.Unmarshal(s.lastBody, &result); err != nil {
		return err
	}
	if result.Level != levelName {
		return fmt.Errorf("expected level %s, got %s (body: %s)", levelName, result.Level, s.lastBody)
	}
	return nil
}

func (s *StepsContext) theResponseStatusIs(status int) error {
	if s.lastStatus != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, s.lastStatus, s.lastBody)
	}
	return nil
}
