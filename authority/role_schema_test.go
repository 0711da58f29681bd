package authority_test

import (
	"rolegate/authority"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("role schema", func() {
	Describe("BuiltinRoleScopes", func() {
		It("should resolve every built-in role and reject unknown slugs", func() {
			for _, slug := range authority.BuiltinRoles() {
				Expect(authority.BuiltinRoleScopes(slug)).ToNot(BeEmpty(), slug)
			}
			Expect(authority.BuiltinRoleScopes("project:custom-thing")).To(BeNil())
		})

		It("should only contain cataloged scopes", func() {
			cataloged := map[string]bool{}
			for _, s := range authority.AllScopes() {
				cataloged[s] = true
			}
			for _, slug := range authority.BuiltinRoles() {
				for _, s := range authority.BuiltinRoleScopes(slug) {
					Expect(cataloged[s]).To(BeTrue(), slug+" -> "+s)
				}
			}
		})

		It("should return a copy that callers cannot use to mutate the table", func() {
			scopes := authority.BuiltinRoleScopes(authority.RoleProjectViewer)
			scopes[0] = "workflow:everything"
			Expect(authority.BuiltinRoleScopes(authority.RoleProjectViewer)[0]).To(Equal("workflow:read"))
		})
	})

	Describe("AssignableRoles", func() {
		It("should exclude global:owner and project:personalOwner", func() {
			assignable := authority.AssignableRoles()
			Expect(assignable).To(Equal([]string{
				authority.RoleGlobalAdmin, authority.RoleGlobalMember,
				authority.RoleProjectAdmin, authority.RoleProjectEditor, authority.RoleProjectViewer,
			}))
		})
	})

	Describe("ScopeNamespace", func() {
		It("should cut the slug at the first colon", func() {
			Expect(authority.ScopeNamespace("workflow:read")).To(Equal("workflow"))
			Expect(authority.ScopeNamespace("nocolon")).To(Equal("nocolon"))
		})
	})
})
