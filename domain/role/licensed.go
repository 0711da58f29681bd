package role

import (
	"rolegate/authority"
	"rolegate/license"
)

// IsRoleLicensed dispatches built-in roles to the licensing collaborator.
// Custom roles are always licensed until custom-role gating ships.
func IsRoleLicensed(r *Role) bool {
	if !r.SystemRole {
		return true
	}

	switch r.Slug {
	case authority.RoleProjectAdmin:
		return license.IsProjectRoleAdminLicensedFunc()
	case authority.RoleProjectEditor:
		return license.IsProjectRoleEditorLicensedFunc()
	case authority.RoleProjectViewer:
		return license.IsProjectRoleViewerLicensedFunc()
	case authority.RoleGlobalAdmin:
		return license.IsAdvancedPermissionsLicensedFunc()
	default:
		return true
	}
}
