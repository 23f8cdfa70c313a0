package endpoints

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"

	"github.com/tomasbusse/avalingo/pkg/audit"
	"github.com/tomasbusse/avalingo/pkg/config"
	"github.com/tomasbusse/avalingo/pkg/metrics"
	"github.com/tomasbusse/avalingo/pkg/rbac"
	"github.com/tomasbusse/avalingo/pkg/server"
	"github.com/tomasbusse/avalingo/pkg/server/middleware"
	"github.com/tomasbusse/avalingo/pkg/server/store"
)

type permissionDefinitionResponse struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	DefaultRoles []string `json:"default_roles"`
}

func handlePermissionsCatalog(permissions store.PermissionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs, err := permissions.ListPermissions()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list permissions")
			return
		}
		response := make([]permissionDefinitionResponse, 0, len(defs))
		for _, def := range defs {
			defaultRoles := def.DefaultRoles
			if defaultRoles == nil {
				defaultRoles = []string{}
			}
			response = append(response, permissionDefinitionResponse{
				Name:         def.Name,
				Description:  def.Description,
				Category:     def.Category,
				DefaultRoles: defaultRoles,
			})
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleUserPermissions(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
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

		perms, err := userPermissions(roles, assignments, cfg, subjectID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}
		permissionList := perms.Slice()
		sort.Strings(permissionList)

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"user_id":     subjectID,
			"permissions": permissionList,
		})
	}
}

func handlePermissionCheck(roles store.RolesStore, assignments store.AssignmentsStore, cfg *config.AvalingoConfig) http.HandlerFunc {
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

		query := r.URL.Query()
		permission := query.Get("permission")
		scopeName := query.Get("scope")
		scopeID := query.Get("scopeId")

		if permission == "" {
			respondWithError(w, http.StatusBadRequest, "permission is required")
			return
		}

		scope := rbac.ScopeGlobal
		if scopeName != "" {
			parsed, err := rbac.ScopeString(scopeName)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "unknown scope")
				return
			}
			scope = parsed
		}
		// A scoped check needs both halves of the scope reference.
		if scope != rbac.ScopeGlobal && scopeID == "" {
			respondWithError(w, http.StatusBadRequest, "scopeId is required for scoped checks")
			return
		}
		if scope == rbac.ScopeGlobal && scopeID != "" {
			respondWithError(w, http.StatusBadRequest, "scope is required when scopeId is given")
			return
		}

		allowed, err := userCan(roles, assignments, cfg, subjectID, permission, scope, scopeID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to resolve permissions")
			return
		}

		metrics.ObserveCheck(allowed)
		audit.Log(audit.CheckEvent{
			UserID:     subjectID,
			ClientIP:   clientIP(r, cfg),
			Permission: permission,
			Scope:      scope.String(),
			ScopeID:    scopeID,
			Allowed:    allowed,
		})

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"user_id":    subjectID,
			"permission": permission,
			"scope":      scope.String(),
			"scope_id":   scopeID,
			"allowed":    allowed,
		})
	}
}

// RegisterPermissionsEndpoints wires the permission catalog and resolution
// endpoints.
func RegisterPermissionsEndpoints(s *server.Server) {
	protect := func(name string, h http.HandlerFunc) http.Handler {
		return instrument(name, s.Auth.Middleware(h))
	}
	s.Router.Handle("/permissions", protect("permissions_catalog", handlePermissionsCatalog(s.PermissionsStore))).Methods("GET")
	s.Router.Handle("/users/{userID}/permissions", protect("user_permissions", handleUserPermissions(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("GET")
	s.Router.Handle("/users/{userID}/permissions/check", protect("permission_check", handlePermissionCheck(s.RolesStore, s.AssignmentsStore, s.Config))).Methods("GET")
}
