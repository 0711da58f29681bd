package authority

import "strings"

// Scope slugs are namespaced permission identifiers (`resource:action`).
const (
	ScopeWorkflowCreate  = "workflow:create"
	ScopeWorkflowRead    = "workflow:read"
	ScopeWorkflowUpdate  = "workflow:update"
	ScopeWorkflowDelete  = "workflow:delete"
	ScopeWorkflowList    = "workflow:list"
	ScopeWorkflowShare   = "workflow:share"
	ScopeWorkflowExecute = "workflow:execute"
	ScopeWorkflowMove    = "workflow:move"

	ScopeCredentialCreate = "credential:create"
	ScopeCredentialRead   = "credential:read"
	ScopeCredentialUpdate = "credential:update"
	ScopeCredentialDelete = "credential:delete"
	ScopeCredentialList   = "credential:list"
	ScopeCredentialShare  = "credential:share"
	ScopeCredentialMove   = "credential:move"

	ScopeProjectCreate = "project:create"
	ScopeProjectRead   = "project:read"
	ScopeProjectUpdate = "project:update"
	ScopeProjectDelete = "project:delete"
	ScopeProjectList   = "project:list"
)

var allScopes = []string{
	ScopeWorkflowCreate, ScopeWorkflowRead, ScopeWorkflowUpdate, ScopeWorkflowDelete,
	ScopeWorkflowList, ScopeWorkflowShare, ScopeWorkflowExecute, ScopeWorkflowMove,

	ScopeCredentialCreate, ScopeCredentialRead, ScopeCredentialUpdate, ScopeCredentialDelete,
	ScopeCredentialList, ScopeCredentialShare, ScopeCredentialMove,

	ScopeProjectCreate, ScopeProjectRead, ScopeProjectUpdate, ScopeProjectDelete, ScopeProjectList,
}

func AllScopes() []string {
	return append([]string{}, allScopes...)
}

// ScopeNamespace  "workflow:read" -> "workflow"
func ScopeNamespace(slug string) string {
	idx := strings.Index(slug, ":")
	if idx < 0 {
		return slug
	}
	return slug[0:idx]
}

func FilterScopesByNamespace(scopes []string, namespace string) []string {
	filtered := []string{}
	for _, s := range scopes {
		if ScopeNamespace(s) == namespace {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
