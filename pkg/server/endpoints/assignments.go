package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tomasbusse/avalingo/pkg/audit"
	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/rbac"
	"github.com/tomasbusse/avalingo/pkg/server"
	"github.com/tomasbusse/avalingo/pkg/server/middleware"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

type assignmentResponse struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"user_id"`
	RoleID    string     `json:"role_id"`
	Scope     string     `json:"scope"`
	ScopeID   string     `json:"scope_id,omitempty"`
	GrantedBy string     `json:"granted_by,omitempty"`
	Note      string     `json:"note,omitempty"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func newAssignmentResponse(assignment model.RoleAssignment) assignmentResponse {
	return assignmentResponse{
		ID:        assignment.ID,
		UserID:    assignment.UserID,
		RoleID:    assignment.RoleID,
		Scope:     assignment.Scope,
		ScopeID:   assignment.ScopeID,
		GrantedBy: assignment.GrantedBy,
		Note:      assignment.Note,
		Active:    assignment.Active,
		ExpiresAt: assignment.ExpiresAt,
		CreatedAt: assignment.CreatedAt,
	}
}

type grantRequest struct {
	RoleID    string     `json:"role_id"`
	Scope     string     `json:"scope"`
	ScopeID   string     `json:"scope_id"`
	Note      string     `json:"note"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func handleAssignmentsList(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := middleware.GetUserID(r.Context())
		subjectID := mux.Vars(r)["userID"]

		if callerID != subjectID {
			allowed, err := userCan(roles, assignments, cfg, callerID, PermUsersRead, rbac.ScopeGlobal, "")
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
				return
			}
			if !allowed {
				respondWithError(w, http.StatusForbidden, "forbidden")
				return
			}
		}

		records, err := assignments.AssignmentsForUser(subjectID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list assignments")
			return
		}
		response := make([]assignmentResponse, 0, len(records))
		for _, record := range records {
			response = append(response, newAssignmentResponse(record))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleAssignmentGrant(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := middleware.GetUserID(r.Context())
		subjectID := mux.Vars(r)["userID"]

		var request grantRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if request.Scope == "" {
			request.Scope = rbac.ScopeGlobal.String()
		}

		fail := func(code int, message string) {
			audit.Log(audit.GrantEvent{
				GrantedBy: callerID, UserID: subjectID, RoleID: request.RoleID,
				Scope: request.Scope, ScopeID: request.ScopeID,
				ClientIP: clientIP(r, cfg), Success: false, ErrorMessage: message,
			})
			respondWithError(w, code, message)
		}

		scope, err := rbac.ScopeString(request.Scope)
		if err != nil {
			fail(http.StatusBadRequest, "unknown scope")
			return
		}
		if scope == rbac.ScopeGlobal && request.ScopeID != "" {
			fail(http.StatusBadRequest, "scope_id is not allowed for global assignments")
			return
		}
		if scope != rbac.ScopeGlobal && request.ScopeID == "" {
			fail(http.StatusBadRequest, "scope_id is required for scoped assignments")
			return
		}
		if request.RoleID == "" {
			fail(http.StatusBadRequest, "role_id is required")
			return
		}

		// Granting inside an organization or group requires the assign
		// permission there; global grants require it globally.
		allowed, err := userCan(roles, assignments, cfg, callerID, PermRolesAssign, scope, request.ScopeID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			fail(http.StatusForbidden, "forbidden")
			return
		}

		if !roles.RoleExists(request.RoleID) {
			fail(http.StatusBadRequest, "role does not exist")
			return
		}
		if request.ExpiresAt != nil && !request.ExpiresAt.After(time.Now()) {
			fail(http.StatusBadRequest, "expires_at must be in the future")
			return
		}

		assignment := model.RoleAssignment{
			UserID:    subjectID,
			RoleID:    request.RoleID,
			Scope:     scope.String(),
			ScopeID:   request.ScopeID,
			GrantedBy: callerID,
			Note:      request.Note,
			Active:    true,
			ExpiresAt: request.ExpiresAt,
		}
		if err := assignments.GrantRole(&assignment); err != nil {
			fail(http.StatusInternalServerError, "failed to grant role")
			return
		}

		audit.Log(audit.GrantEvent{
			GrantedBy: callerID, UserID: subjectID, RoleID: request.RoleID,
			Scope: assignment.Scope, ScopeID: assignment.ScopeID,
			ClientIP: clientIP(r, cfg), Success: true,
		})
		respondWithJSON(w, http.StatusCreated, newAssignmentResponse(assignment))
	}
}

func handleAssignmentRevoke(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := middleware.GetUserID(r.Context())
		subjectID := mux.Vars(r)["userID"]

		assignmentID, err := strconv.ParseInt(mux.Vars(r)["assignmentID"], 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid assignment id")
			return
		}

		assignment := assignments.AssignmentByID(assignmentID)
		if assignment == nil || assignment.UserID != subjectID {
			respondWithError(w, http.StatusNotFound, "assignment not found")
			return
		}

		fail := func(code int, message string) {
			audit.Log(audit.RevokeEvent{
				RevokedBy: callerID, UserID: subjectID, RoleID: assignment.RoleID,
				ClientIP: clientIP(r, cfg), Success: false, ErrorMessage: message,
			})
			respondWithError(w, code, message)
		}

		scope, err := rbac.ScopeString(assignment.Scope)
		if err != nil {
			scope = rbac.ScopeGlobal
		}
		allowed, err := userCan(roles, assignments, cfg, callerID, PermRolesAssign, scope, assignment.ScopeID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			fail(http.StatusForbidden, "forbidden")
			return
		}

		if err := assignments.RevokeAssignment(assignmentID); err != nil {
			fail(http.StatusInternalServerError, "failed to revoke assignment")
			return
		}

		audit.Log(audit.RevokeEvent{
			RevokedBy: callerID, UserID: subjectID, RoleID: assignment.RoleID,
			ClientIP: clientIP(r, cfg), Success: true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterAssignmentsEndpoints wires role assignment endpoints.
func RegisterAssignmentsEndpoints(s *server.Server) {
	protect := func(name string, h http.HandlerFunc) http.Handler {
		return instrument(name, s.Auth.Middleware(h))
	}
	s.Router.Handle("/users/{userID}/assignments", protect("assignments_list", handleAssignmentsList(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("GET")
	s.Router.Handle("/users/{userID}/assignments", protect("assignment_grant", handleAssignmentGrant(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("POST")
	s.Router.Handle("/users/{userID}/assignments/{assignmentID}", protect("assignment_revoke", handleAssignmentRevoke(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("DELETE")
}
