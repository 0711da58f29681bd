package authority

import (
	"rolegate/domain"
	"sort"

	"github.com/fundwit/go-commons/types"
)

// SharedGrant is one resource-level grant: a sharing role given to a project.
type SharedGrant struct {
	ProjectID types.ID
	Role      string
}

// RoleScopesFunc resolves a role slug to its scope slugs. The default only
// knows built-in roles, the role registry installs a resolver that covers
// custom roles too.
var RoleScopesFunc = BuiltinRoleScopes

// GlobalScopesOf returns the scopes of a principal's global role, filtered to
// the given resource namespace.
func GlobalScopesOf(globalRole string, resourceType RoleType) []string {
	return FilterScopesByNamespace(RoleScopesFunc(globalRole), string(resourceType))
}

// CombineResourceScopes computes the effective scope set of a principal on one
// resource. Every grant path is unioned, and per shared grant the grant's own
// role scopes act as an upper bound on what global and project scopes may
// apply to the resource. The result is deduplicated and sorted.
func CombineResourceScopes(resourceType RoleType, globalRole string, grants []SharedGrant,
	relations []domain.ProjectRelation) []string {

	globalScopes := GlobalScopesOf(globalRole, resourceType)

	result := map[string]bool{}
	for _, s := range globalScopes {
		result[s] = true
	}

	for _, grant := range grants {
		var projectScopes []string
		for _, relation := range relations {
			if relation.ProjectID == grant.ProjectID {
				projectScopes = RoleScopesFunc(relation.Role)
				break
			}
		}

		mask := map[string]bool{}
		for _, s := range RoleScopesFunc(grant.Role) {
			mask[s] = true
		}

		for _, s := range globalScopes {
			if mask[s] {
				result[s] = true
			}
		}
		for _, s := range projectScopes {
			if mask[s] {
				result[s] = true
			}
		}
	}

	merged := make([]string, 0, len(result))
	for s := range result {
		merged = append(merged, s)
	}
	sort.Strings(merged)
	return merged
}
