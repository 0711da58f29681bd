package role_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"rolegate/authority"
	"rolegate/bizerror"
	"rolegate/domain/role"
	"rolegate/domain/scope"
	"rolegate/session"
	"rolegate/testinfra"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func buildRolesRestRouter() *gin.Engine {
	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	role.RegisterRolesRestAPI(router)
	return router
}

func TestQueryRolesAPI(t *testing.T) {
	RegisterTestingT(t)
	router := buildRolesRestRouter()

	t.Run("should be able to handle error", func(t *testing.T) {
		role.QueryRolesFunc = func(s *session.Context) ([]role.RoleDetail, error) {
			return nil, errors.New("some error")
		}
		req := httptest.NewRequest(http.MethodGet, role.PathRoles, nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusInternalServerError))
		Expect(body).To(MatchJSON(`{"code":"common.internal_server_error", "message":"some error", "data":null}`))
	})

	t.Run("should be able to handle query request successfully", func(t *testing.T) {
		role.QueryRolesFunc = func(s *session.Context) ([]role.RoleDetail, error) {
			return []role.RoleDetail{{
				Role: role.Role{Slug: "project:reporter", DisplayName: "Reporter",
					RoleType: authority.RoleTypeProject, SystemRole: false},
				Scopes:   []scope.Scope{{Slug: "workflow:read", DisplayName: "Workflow Read"}},
				Licensed: true,
			}}, nil
		}
		req := httptest.NewRequest(http.MethodGet, role.PathRoles, nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[{"slug": "project:reporter", "displayName": "Reporter",
			"roleType": "project", "systemRole": false,
			"scopes": [{"slug": "workflow:read", "displayName": "Workflow Read"}],
			"licensed": true}]`))
	})
}

func TestDetailRoleAPI(t *testing.T) {
	RegisterTestingT(t)
	router := buildRolesRestRouter()

	t.Run("should be able to handle not found", func(t *testing.T) {
		role.DetailRoleFunc = func(slug string, s *session.Context) (*role.RoleDetail, error) {
			return nil, bizerror.ErrNotFound
		}
		req := httptest.NewRequest(http.MethodGet, role.PathRoles+"/project:missing", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNotFound))
		Expect(body).To(MatchJSON(`{"code":"common.record_not_found", "message":"record not found", "data":null}`))
	})

	t.Run("should pass the slug through", func(t *testing.T) {
		var slug1 string
		role.DetailRoleFunc = func(slug string, s *session.Context) (*role.RoleDetail, error) {
			slug1 = slug
			return &role.RoleDetail{
				Role: role.Role{Slug: slug, DisplayName: slug, RoleType: authority.RoleTypeGlobal,
					SystemRole: true, Description: "Built-in global role with global:owner permissions."},
				Scopes:   []scope.Scope{},
				Licensed: true,
			}, nil
		}
		req := httptest.NewRequest(http.MethodGet, role.PathRoles+"/global:owner", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(slug1).To(Equal("global:owner"))
		Expect(body).To(MatchJSON(`{"slug": "global:owner", "displayName": "global:owner",
			"description": "Built-in global role with global:owner permissions.",
			"roleType": "global", "systemRole": true, "scopes": [], "licensed": true}`))
	})
}

func TestCreateRoleAPI(t *testing.T) {
	RegisterTestingT(t)
	router := buildRolesRestRouter()

	t.Run("should be able to validate parameters", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, role.PathRoles, strings.NewReader("{}"))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param",
			"message": "Key: 'RoleCreation.DisplayName' Error:Field validation for 'DisplayName' failed on the 'required' tag\n` +
			`Key: 'RoleCreation.RoleType' Error:Field validation for 'RoleType' failed on the 'required' tag",
			"data": null}`))
	})

	t.Run("should map missing scopes and conflicts to dedicated statuses", func(t *testing.T) {
		role.CreateCustomRoleFunc = func(c role.RoleCreation, s *session.Context) (*role.RoleDetail, error) {
			return nil, bizerror.ErrScopesRequired
		}
		req := httptest.NewRequest(http.MethodPut, role.PathRoles,
			strings.NewReader(`{"displayName": "Reporter", "roleType": "project"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"role.scopes_required", "message":"scopes are required", "data":null}`))

		role.CreateCustomRoleFunc = func(c role.RoleCreation, s *session.Context) (*role.RoleDetail, error) {
			return nil, bizerror.ErrRoleExisted
		}
		req = httptest.NewRequest(http.MethodPut, role.PathRoles,
			strings.NewReader(`{"displayName": "Reporter", "roleType": "project", "scopes": []}`))
		status, body, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusConflict))
		Expect(body).To(MatchJSON(`{"code":"role.role_existed", "message":"role existed", "data":null}`))
	})

	t.Run("should report every invalid scope", func(t *testing.T) {
		role.CreateCustomRoleFunc = func(c role.RoleCreation, s *session.Context) (*role.RoleDetail, error) {
			return nil, &bizerror.ErrInvalidScopes{Slugs: []string{"bogus:slug", "junk:x"}}
		}
		req := httptest.NewRequest(http.MethodPut, role.PathRoles,
			strings.NewReader(`{"displayName": "Reporter", "roleType": "project", "scopes": ["bogus:slug", "junk:x"]}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"role.invalid_scopes",
			"message":"The following scopes are invalid: bogus:slug, junk:x",
			"data":["bogus:slug", "junk:x"]}`))
	})

	t.Run("should be able to handle create request successfully", func(t *testing.T) {
		var creation1 role.RoleCreation
		role.CreateCustomRoleFunc = func(c role.RoleCreation, s *session.Context) (*role.RoleDetail, error) {
			creation1 = c
			return &role.RoleDetail{
				Role: role.Role{Slug: "project:reporter", DisplayName: c.DisplayName,
					RoleType: c.RoleType, SystemRole: false},
				Scopes:   []scope.Scope{{Slug: "workflow:read", DisplayName: "Workflow Read"}},
				Licensed: true,
			}, nil
		}
		req := httptest.NewRequest(http.MethodPut, role.PathRoles,
			strings.NewReader(`{"displayName": "Reporter", "roleType": "project", "scopes": ["workflow:read"]}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(creation1).To(Equal(role.RoleCreation{DisplayName: "Reporter",
			RoleType: authority.RoleTypeProject, Scopes: []string{"workflow:read"}}))
		Expect(body).To(MatchJSON(`{"slug": "project:reporter", "displayName": "Reporter",
			"roleType": "project", "systemRole": false,
			"scopes": [{"slug": "workflow:read", "displayName": "Workflow Read"}],
			"licensed": true}`))
	})
}

func TestUpdateRoleAPI(t *testing.T) {
	RegisterTestingT(t)
	router := buildRolesRestRouter()

	t.Run("should map built-in mutation to forbidden", func(t *testing.T) {
		role.UpdateCustomRoleFunc = func(slug string, u role.RoleUpdating, s *session.Context) (*role.RoleDetail, error) {
			return nil, bizerror.ErrForbidden
		}
		req := httptest.NewRequest(http.MethodPatch, role.PathRoles+"/global:owner",
			strings.NewReader(`{"displayName": "Renamed"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusForbidden))
		Expect(body).To(MatchJSON(`{"code":"security.forbidden", "message":"access forbidden", "data":null}`))
	})

	t.Run("should be able to handle update request successfully", func(t *testing.T) {
		var slug1 string
		var updating1 role.RoleUpdating
		role.UpdateCustomRoleFunc = func(slug string, u role.RoleUpdating, s *session.Context) (*role.RoleDetail, error) {
			slug1 = slug
			updating1 = u
			return &role.RoleDetail{
				Role:     role.Role{Slug: slug, DisplayName: *u.DisplayName, RoleType: authority.RoleTypeProject},
				Scopes:   []scope.Scope{},
				Licensed: true,
			}, nil
		}
		req := httptest.NewRequest(http.MethodPatch, role.PathRoles+"/project:reporter",
			strings.NewReader(`{"displayName": "Auditor", "scopes": []}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(slug1).To(Equal("project:reporter"))
		Expect(*updating1.DisplayName).To(Equal("Auditor"))
		Expect(updating1.Scopes).To(Equal([]string{}))
		Expect(body).To(MatchJSON(`{"slug": "project:reporter", "displayName": "Auditor",
			"roleType": "project", "systemRole": false, "scopes": [], "licensed": true}`))
	})
}

func TestDeleteRoleAPI(t *testing.T) {
	RegisterTestingT(t)
	router := buildRolesRestRouter()

	t.Run("should map built-in deletion to forbidden", func(t *testing.T) {
		role.DeleteCustomRoleFunc = func(slug string, s *session.Context) error {
			return bizerror.ErrForbidden
		}
		req := httptest.NewRequest(http.MethodDelete, role.PathRoles+"/project:admin", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusForbidden))
		Expect(body).To(MatchJSON(`{"code":"security.forbidden", "message":"access forbidden", "data":null}`))
	})

	t.Run("should respond no content on success", func(t *testing.T) {
		var slug1 string
		role.DeleteCustomRoleFunc = func(slug string, s *session.Context) error {
			slug1 = slug
			return nil
		}
		req := httptest.NewRequest(http.MethodDelete, role.PathRoles+"/project:reporter", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNoContent))
		Expect(slug1).To(Equal("project:reporter"))
		Expect(body).To(BeEmpty())
	})
}

func TestQueryAssignableRolesAPI(t *testing.T) {
	RegisterTestingT(t)
	router := buildRolesRestRouter()

	t.Run("should serve assignable built-in roles", func(t *testing.T) {
		role.QueryAssignableRolesFunc = func(s *session.Context) ([]role.RoleDetail, error) {
			return []role.RoleDetail{{
				Role: role.Role{Slug: "global:admin", DisplayName: "global:admin",
					RoleType: authority.RoleTypeGlobal, SystemRole: true,
					Description: "Built-in global role with global:admin permissions."},
				Scopes:   []scope.Scope{},
				Licensed: true,
			}}, nil
		}
		req := httptest.NewRequest(http.MethodGet, role.PathAssignableRoles, nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[{"slug": "global:admin", "displayName": "global:admin",
			"description": "Built-in global role with global:admin permissions.",
			"roleType": "global", "systemRole": true, "scopes": [], "licensed": true}]`))
	})
}
