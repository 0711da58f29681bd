package sharing

import (
	"rolegate/authority"
	"rolegate/bizerror"
	"rolegate/domain"
	"rolegate/session"
)

var (
	AnnotateWorkflowScopesFunc   = AnnotateWorkflowScopes
	AnnotateCredentialScopesFunc = AnnotateCredentialScopes
)

// AnnotateWorkflowScopes attaches the caller's effective scopes to one
// workflow listing entry. A nil Shared list means the query could not
// determine any sharing, the entry gets an empty scope set without consulting
// the combination engine.
func AnnotateWorkflowScopes(w *domain.Workflow, s *session.Context,
	relations []domain.ProjectRelation) (*domain.Workflow, error) {
	if s == nil {
		return nil, bizerror.ErrUnauthenticated
	}

	w.Scopes = []string{}
	if w.Shared == nil {
		return w, nil
	}

	grants := make([]authority.SharedGrant, 0, len(w.Shared))
	for _, shared := range w.Shared {
		grants = append(grants, authority.SharedGrant{ProjectID: shared.GrantProjectID(), Role: shared.Role})
	}

	scopes, err := CombineScopesFor(authority.RoleTypeWorkflow, s, grants, relations)
	if err != nil {
		return nil, err
	}
	w.Scopes = scopes
	return w, nil
}

// AnnotateCredentialScopes attaches the caller's effective scopes to one
// credential listing entry.
func AnnotateCredentialScopes(c *domain.Credential, s *session.Context,
	relations []domain.ProjectRelation) (*domain.Credential, error) {
	if s == nil {
		return nil, bizerror.ErrUnauthenticated
	}

	c.Scopes = []string{}
	if c.Shared == nil {
		return c, nil
	}

	grants := make([]authority.SharedGrant, 0, len(c.Shared))
	for _, shared := range c.Shared {
		grants = append(grants, authority.SharedGrant{ProjectID: shared.GrantProjectID(), Role: shared.Role})
	}

	scopes, err := CombineScopesFor(authority.RoleTypeCredential, s, grants, relations)
	if err != nil {
		return nil, err
	}
	c.Scopes = scopes
	return c, nil
}

// CombineScopesFor is the common combination path of the annotation entry
// points, restricted to the sharable resource types.
func CombineScopesFor(resourceType authority.RoleType, s *session.Context,
	grants []authority.SharedGrant, relations []domain.ProjectRelation) ([]string, error) {
	if resourceType != authority.RoleTypeWorkflow && resourceType != authority.RoleTypeCredential {
		return nil, bizerror.ErrUnknownResourceType
	}
	return authority.CombineResourceScopes(resourceType, s.GlobalRole, grants, relations), nil
}
