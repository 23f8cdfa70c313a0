package endpoints

import (
	"encoding/json"
	"net/http"
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

type roleResponse struct {
	RoleID       string    `json:"role_id"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	Permissions  []string  `json:"permissions"`
	InheritsFrom string    `json:"inherits_from,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newRoleResponse(role model.Role) roleResponse {
	permissions := role.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return roleResponse{
		RoleID:       role.RoleID,
		Type:         role.Type,
		Description:  role.Description,
		Permissions:  permissions,
		InheritsFrom: role.InheritsFrom,
		Active:       role.Active,
		CreatedAt:    role.CreatedAt,
		UpdatedAt:    role.UpdatedAt,
	}
}

type roleRequest struct {
	RoleID       string   `json:"role_id"`
	Description  string   `json:"description"`
	Permissions  []string `json:"permissions"`
	InheritsFrom string   `json:"inherits_from"`
	Active       *bool    `json:"active"`
}

func handleRolesList(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermRolesRead, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}

		limit, offset := listParams(r, cfg.APIListLimitMax)
		records, err := roles.ListRoles(limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list roles")
			return
		}

		response := make([]roleResponse, 0, len(records))
		for _, record := range records {
			response = append(response, newRoleResponse(record))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleRoleShow(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermRolesRead, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}

		roleID := mux.Vars(r)["roleID"]
		role := roles.RoleByID(roleID)
		if role == nil {
			respondWithError(w, http.StatusNotFound, "role not found")
			return
		}
		respondWithJSON(w, http.StatusOK, newRoleResponse(*role))
	}
}

func handleRoleCreate(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermRolesManage, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}

		var request roleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		fail := func(code int, message string) {
			audit.Log(audit.RoleChangeEvent{
				UserID: userID, RoleID: request.RoleID, Operation: "create",
				ClientIP: clientIP(r, cfg), Success: false, ErrorMessage: message,
			})
			respondWithError(w, code, message)
		}

		if request.RoleID == "" {
			fail(http.StatusBadRequest, "role_id is required")
			return
		}
		if request.InheritsFrom == request.RoleID && request.InheritsFrom != "" {
			fail(http.StatusBadRequest, "a role cannot inherit from itself")
			return
		}
		if request.InheritsFrom != "" && !roles.RoleExists(request.InheritsFrom) {
			fail(http.StatusBadRequest, "inherited role does not exist")
			return
		}
		if roles.RoleExists(request.RoleID) {
			fail(http.StatusConflict, "role already exists")
			return
		}

		// Roles created over the API are always custom; only the seeder
		// creates system roles.
		role := model.Role{
			RoleID:       request.RoleID,
			Type:         model.RoleTypeCustom,
			Description:  request.Description,
			Permissions:  request.Permissions,
			InheritsFrom: request.InheritsFrom,
			Active:       true,
		}
		if role.Permissions == nil {
			role.Permissions = []string{}
		}
		if err := roles.CreateRole(&role); err != nil {
			fail(http.StatusInternalServerError, "failed to create role")
			return
		}

		audit.Log(audit.RoleChangeEvent{
			UserID: userID, RoleID: role.RoleID, Operation: "create",
			ClientIP: clientIP(r, cfg), Success: true,
		})
		respondWithJSON(w, http.StatusCreated, newRoleResponse(role))
	}
}

func handleRoleUpdate(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermRolesManage, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}

		roleID := mux.Vars(r)["roleID"]
		role := roles.RoleByID(roleID)
		if role == nil {
			respondWithError(w, http.StatusNotFound, "role not found")
			return
		}

		var request roleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		fail := func(code int, message string) {
			audit.Log(audit.RoleChangeEvent{
				UserID: userID, RoleID: roleID, Operation: "update",
				ClientIP: clientIP(r, cfg), Success: false, ErrorMessage: message,
			})
			respondWithError(w, code, message)
		}

		if request.InheritsFrom == roleID && request.InheritsFrom != "" {
			fail(http.StatusBadRequest, "a role cannot inherit from itself")
			return
		}
		if request.InheritsFrom != "" && !roles.RoleExists(request.InheritsFrom) {
			fail(http.StatusBadRequest, "inherited role does not exist")
			return
		}

		role.Description = request.Description
		role.InheritsFrom = request.InheritsFrom
		if request.Permissions != nil {
			role.Permissions = request.Permissions
		}
		if request.Active != nil {
			role.Active = *request.Active
		}
		if err := roles.UpdateRole(role); err != nil {
			fail(http.StatusInternalServerError, "failed to update role")
			return
		}

		audit.Log(audit.RoleChangeEvent{
			UserID: userID, RoleID: roleID, Operation: "update",
			ClientIP: clientIP(r, cfg), Success: true,
		})
		respondWithJSON(w, http.StatusOK, newRoleResponse(*role))
	}
}

func handleRoleDeactivate(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.GetUserID(r.Context())
		allowed, err := userCan(roles, assignments, cfg, userID, PermRolesManage, rbac.ScopeGlobal, "")
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		if !allowed {
			respondWithError(w, http.StatusForbidden, "forbidden")
			return
		}

		roleID := mux.Vars(r)["roleID"]
		if err := roles.DeactivateRole(roleID); err != nil {
			audit.Log(audit.RoleChangeEvent{
				UserID: userID, RoleID: roleID, Operation: "deactivate",
				ClientIP: clientIP(r, cfg), Success: false, ErrorMessage: err.Error(),
			})
			respondWithError(w, http.StatusNotFound, "role not found")
			return
		}

		audit.Log(audit.RoleChangeEvent{
			UserID: userID, RoleID: roleID, Operation: "deactivate",
			ClientIP: clientIP(r, cfg), Success: true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterRolesEndpoints wires role management endpoints.
func RegisterRolesEndpoints(s *server.Server) {
	protect := func(name string, h http.HandlerFunc) http.Handler {
		return instrument(name, s.Auth.Middleware(h))
	}
	s.Router.Handle("/roles", protect("roles_list", handleRolesList(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("GET")
	s.Router.Handle("/roles", protect("role_create", handleRoleCreate(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("POST")
	s.Router.Handle("/roles/{roleID}", protect("role_show", handleRoleShow(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("GET")
	s.Router.Handle("/roles/{roleID}", protect("role_update", handleRoleUpdate(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("PUT")
	s.Router.Handle("/roles/{roleID}", protect("role_deactivate", handleRoleDeactivate(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("DELETE")
}
