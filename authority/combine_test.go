package authority_test

import (
	"rolegate/authority"
	"rolegate/domain"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("CombineResourceScopes", func() {
	AfterEach(func() {
		authority.RoleScopesFunc = authority.BuiltinRoleScopes
	})

	Describe("without shared grants", func() {
		It("should return exactly the namespace-filtered global scopes", func() {
			result := authority.CombineResourceScopes(authority.RoleTypeWorkflow,
				authority.RoleGlobalOwner, nil, nil)
			Expect(result).To(Equal([]string{
				"workflow:create", "workflow:delete", "workflow:execute", "workflow:list",
				"workflow:move", "workflow:read", "workflow:share", "workflow:update",
			}))
		})

		It("should return the empty set when the global role grants nothing for the namespace", func() {
			result := authority.CombineResourceScopes(authority.RoleTypeWorkflow,
				authority.RoleGlobalMember, nil, nil)
			Expect(result).To(Equal([]string{}))

			result = authority.CombineResourceScopes(authority.RoleTypeCredential,
				"global:not-a-role", []authority.SharedGrant{}, nil)
			Expect(result).To(Equal([]string{}))
		})
	})

	Describe("with shared grants", func() {
		BeforeEach(func() {
			authority.RoleScopesFunc = func(roleSlug string) []string {
				switch roleSlug {
				case "global:demo":
					return []string{"workflow:read", "credential:read"}
				case "project:demo":
					return []string{"workflow:read", "workflow:update"}
				case "project:wide":
					return []string{"workflow:read", "workflow:update", "workflow:delete"}
				case "workflow:narrow":
					return []string{"workflow:read"}
				case "workflow:wide":
					return []string{"workflow:read", "workflow:update", "workflow:delete", "workflow:execute"}
				}
				return nil
			}
		})

		It("should bound project scopes by the grant's role mask", func() {
			result := authority.CombineResourceScopes(authority.RoleTypeWorkflow, "global:demo",
				[]authority.SharedGrant{{ProjectID: 100, Role: "workflow:narrow"}},
				[]domain.ProjectRelation{{ProjectID: 100, PrincipalID: 10, Role: "project:demo"}})

			// the mask excludes workflow:update even though the project role grants it
			Expect(result).To(Equal([]string{"workflow:read"}))
		})

		It("should not add masked scopes the principal holds on no path", func() {
			result := authority.CombineResourceScopes(authority.RoleTypeWorkflow, "global:demo",
				[]authority.SharedGrant{{ProjectID: 100, Role: "workflow:wide"}},
				[]domain.ProjectRelation{{ProjectID: 100, PrincipalID: 10, Role: "project:demo"}})

			Expect(result).To(Equal([]string{"workflow:read", "workflow:update"}))
		})

		It("should ignore project scopes of unrelated projects", func() {
			result := authority.CombineResourceScopes(authority.RoleTypeWorkflow, "global:demo",
				[]authority.SharedGrant{{ProjectID: 100, Role: "workflow:wide"}},
				[]domain.ProjectRelation{{ProjectID: 200, PrincipalID: 10, Role: "project:demo"}})

			Expect(result).To(Equal([]string{"workflow:read"}))
		})

		It("should union the masked result of every grant", func() {
			result := authority.CombineResourceScopes(authority.RoleTypeWorkflow, "global:demo",
				[]authority.SharedGrant{
					{ProjectID: 100, Role: "workflow:narrow"},
					{ProjectID: 200, Role: "workflow:wide"},
				},
				[]domain.ProjectRelation{
					{ProjectID: 100, PrincipalID: 10, Role: "project:demo"},
					{ProjectID: 200, PrincipalID: 10, Role: "project:wide"},
				})

			Expect(result).To(Equal([]string{"workflow:delete", "workflow:read", "workflow:update"}))
		})

		It("should keep global scopes of the resource namespace even when every mask excludes them", func() {
			result := authority.CombineResourceScopes(authority.RoleTypeCredential, "global:demo",
				[]authority.SharedGrant{{ProjectID: 100, Role: "workflow:narrow"}}, nil)

			Expect(result).To(Equal([]string{"credential:read"}))
		})
	})

	Describe("GlobalScopesOf", func() {
		It("should filter the global role scopes by resource namespace", func() {
			Expect(authority.GlobalScopesOf(authority.RoleGlobalMember, authority.RoleTypeProject)).
				To(Equal([]string{"project:create", "project:list"}))
			Expect(authority.GlobalScopesOf(authority.RoleGlobalMember, authority.RoleTypeWorkflow)).
				To(Equal([]string{}))
		})
	})
})
