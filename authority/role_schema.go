package authority

type RoleType string

const (
	RoleTypeGlobal     RoleType = "global"
	RoleTypeProject    RoleType = "project"
	RoleTypeCredential RoleType = "credential"
	RoleTypeWorkflow   RoleType = "workflow"
)

func (t RoleType) Valid() bool {
	return t == RoleTypeGlobal || t == RoleTypeProject || t == RoleTypeCredential || t == RoleTypeWorkflow
}

const (
	RoleGlobalOwner  = "global:owner"
	RoleGlobalAdmin  = "global:admin"
	RoleGlobalMember = "global:member"

	RoleProjectPersonalOwner = "project:personalOwner"
	RoleProjectAdmin         = "project:admin"
	RoleProjectEditor        = "project:editor"
	RoleProjectViewer        = "project:viewer"

	RoleCredentialOwner = "credential:owner"
	RoleCredentialUser  = "credential:user"

	RoleWorkflowOwner  = "workflow:owner"
	RoleWorkflowEditor = "workflow:editor"
)

// built once at process start, read through accessors only
var (
	globalScopeTable  map[string][]string
	projectScopeTable map[string][]string
	sharingScopeTable map[string][]string

	builtinRoleOrder = []string{
		RoleGlobalOwner, RoleGlobalAdmin, RoleGlobalMember,
		RoleProjectPersonalOwner, RoleProjectAdmin, RoleProjectEditor, RoleProjectViewer,
	}
)

func init() {
	globalScopeTable = map[string][]string{
		RoleGlobalOwner:  AllScopes(),
		RoleGlobalAdmin:  AllScopes(),
		RoleGlobalMember: {ScopeProjectCreate, ScopeProjectList},
	}

	projectScopeTable = map[string][]string{
		RoleProjectPersonalOwner: {
			ScopeWorkflowCreate, ScopeWorkflowRead, ScopeWorkflowUpdate, ScopeWorkflowDelete,
			ScopeWorkflowList, ScopeWorkflowShare, ScopeWorkflowExecute, ScopeWorkflowMove,
			ScopeCredentialCreate, ScopeCredentialRead, ScopeCredentialUpdate, ScopeCredentialDelete,
			ScopeCredentialList, ScopeCredentialShare, ScopeCredentialMove,
			ScopeProjectRead, ScopeProjectList,
		},
		RoleProjectAdmin: {
			ScopeWorkflowCreate, ScopeWorkflowRead, ScopeWorkflowUpdate, ScopeWorkflowDelete,
			ScopeWorkflowList, ScopeWorkflowShare, ScopeWorkflowExecute, ScopeWorkflowMove,
			ScopeCredentialCreate, ScopeCredentialRead, ScopeCredentialUpdate, ScopeCredentialDelete,
			ScopeCredentialList, ScopeCredentialShare, ScopeCredentialMove,
			ScopeProjectRead, ScopeProjectUpdate, ScopeProjectDelete, ScopeProjectList,
		},
		RoleProjectEditor: {
			ScopeWorkflowCreate, ScopeWorkflowRead, ScopeWorkflowUpdate, ScopeWorkflowDelete,
			ScopeWorkflowList, ScopeWorkflowExecute,
			ScopeCredentialCreate, ScopeCredentialRead, ScopeCredentialUpdate, ScopeCredentialDelete,
			ScopeCredentialList,
			ScopeProjectRead, ScopeProjectList,
		},
		RoleProjectViewer: {
			ScopeWorkflowRead, ScopeWorkflowList,
			ScopeCredentialRead, ScopeCredentialList,
			ScopeProjectRead, ScopeProjectList,
		},
	}

	sharingScopeTable = map[string][]string{
		RoleCredentialOwner: {
			ScopeCredentialRead, ScopeCredentialUpdate, ScopeCredentialDelete,
			ScopeCredentialList, ScopeCredentialShare, ScopeCredentialMove,
		},
		RoleCredentialUser: {ScopeCredentialRead, ScopeCredentialList},
		RoleWorkflowOwner: {
			ScopeWorkflowRead, ScopeWorkflowUpdate, ScopeWorkflowDelete,
			ScopeWorkflowList, ScopeWorkflowShare, ScopeWorkflowExecute, ScopeWorkflowMove,
		},
		RoleWorkflowEditor: {ScopeWorkflowRead, ScopeWorkflowUpdate, ScopeWorkflowExecute, ScopeWorkflowList},
	}
}

// BuiltinRoleScopes returns the scope slugs of a built-in role, nil for unknown slugs.
func BuiltinRoleScopes(roleSlug string) []string {
	for _, table := range []map[string][]string{globalScopeTable, projectScopeTable, sharingScopeTable} {
		if scopes, found := table[roleSlug]; found {
			return append([]string{}, scopes...)
		}
	}
	return nil
}

func IsBuiltinGlobalRole(roleSlug string) bool {
	_, found := globalScopeTable[roleSlug]
	return found
}

func IsBuiltinProjectRole(roleSlug string) bool {
	_, found := projectScopeTable[roleSlug]
	return found
}

func IsBuiltinSharingRole(roleSlug string) bool {
	_, found := sharingScopeTable[roleSlug]
	return found
}

// BuiltinRoles enumerates the global and project built-in role slugs in a fixed order.
func BuiltinRoles() []string {
	return append([]string{}, builtinRoleOrder...)
}

// AssignableRoles enumerates built-in roles that may be granted to another principal.
// global:owner is bound to the instance owner, project:personalOwner is reserved
// for the automatically-created personal project.
func AssignableRoles() []string {
	assignable := []string{}
	for _, slug := range builtinRoleOrder {
		if slug == RoleGlobalOwner || slug == RoleProjectPersonalOwner {
			continue
		}
		assignable = append(assignable, slug)
	}
	return assignable
}
