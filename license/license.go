package license

import (
	"os"
	"strings"
)

// Feature flags understood by the licensing collaborator.
const (
	FeatureProjectRoleAdmin    = "feat:projectRole:admin"
	FeatureProjectRoleEditor   = "feat:projectRole:editor"
	FeatureProjectRoleViewer   = "feat:projectRole:viewer"
	FeatureAdvancedPermissions = "feat:advancedPermissions"

	// reserved, custom roles are not license gated yet
	FeatureCustomRoles = "feat:customRoles"
)

var (
	LoadLicensedFeaturesFunc = loadLicensedFeatures

	IsProjectRoleAdminLicensedFunc    = isProjectRoleAdminLicensed
	IsProjectRoleEditorLicensedFunc   = isProjectRoleEditorLicensed
	IsProjectRoleViewerLicensedFunc   = isProjectRoleViewerLicensed
	IsAdvancedPermissionsLicensedFunc = isAdvancedPermissionsLicensed
	IsCustomRolesLicensedFunc         = isCustomRolesLicensed
)

func LoadLicensedFeaturesFuncReset() {
	LoadLicensedFeaturesFunc = loadLicensedFeatures
}

func LicenseFuncsReset() {
	IsProjectRoleAdminLicensedFunc = isProjectRoleAdminLicensed
	IsProjectRoleEditorLicensedFunc = isProjectRoleEditorLicensed
	IsProjectRoleViewerLicensedFunc = isProjectRoleViewerLicensed
	IsAdvancedPermissionsLicensedFunc = isAdvancedPermissionsLicensed
	IsCustomRolesLicensedFunc = isCustomRolesLicensed
}

// as a simple initial solution, the licensed feature set is carried in the
// environment. LICENSED_FEATURES=feat:projectRole:admin,feat:advancedPermissions
// The set is re-read on every query, callers must not cache the result.
func loadLicensedFeatures() map[string]bool {
	features := map[string]bool{}
	for _, f := range strings.Split(os.Getenv("LICENSED_FEATURES"), ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			features[f] = true
		}
	}
	return features
}

func isProjectRoleAdminLicensed() bool {
	return LoadLicensedFeaturesFunc()[FeatureProjectRoleAdmin]
}

func isProjectRoleEditorLicensed() bool {
	return LoadLicensedFeaturesFunc()[FeatureProjectRoleEditor]
}

func isProjectRoleViewerLicensed() bool {
	return LoadLicensedFeaturesFunc()[FeatureProjectRoleViewer]
}

func isAdvancedPermissionsLicensed() bool {
	return LoadLicensedFeaturesFunc()[FeatureAdvancedPermissions]
}

func isCustomRolesLicensed() bool {
	return LoadLicensedFeaturesFunc()[FeatureCustomRoles]
}
