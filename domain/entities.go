package domain

import (
	"time"

	"github.com/fundwit/go-commons/types"
)

type Project struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Name       string    `json:"name"`
	CreateTime time.Time `json:"createTime" sql:"type:DATETIME(3) NOT NULL"`
}

// ProjectRelation assigns a project-type role to a principal within one project.
// Relations are maintained by the project subsystem; this service only reads them.
type ProjectRelation struct {
	ProjectID   types.ID `json:"projectId" gorm:"primary_key" sql:"type:BIGINT UNSIGNED NOT NULL"`
	PrincipalID types.ID `json:"principalId" gorm:"primary_key" sql:"type:BIGINT UNSIGNED NOT NULL"`

	Role       string    `json:"role"`
	CreateTime time.Time `json:"createTime" sql:"type:DATETIME(3) NOT NULL"`
}

// SharedWorkflow grants a workflow-type role on one workflow to a project.
type SharedWorkflow struct {
	WorkflowID types.ID `json:"workflowId"`
	ProjectID  types.ID `json:"projectId"`
	Project    *Project `json:"project,omitempty"`

	Role string `json:"role"`
}

// GrantProjectID resolves the project the grant belongs to, the record may
// reference its project indirectly.
func (s SharedWorkflow) GrantProjectID() types.ID {
	if s.ProjectID != 0 {
		return s.ProjectID
	}
	if s.Project != nil {
		return s.Project.ID
	}
	return 0
}

// SharedCredential grants a credential-type role on one credential to a project.
type SharedCredential struct {
	CredentialID types.ID `json:"credentialId"`
	ProjectID    types.ID `json:"projectId"`
	Project      *Project `json:"project,omitempty"`

	Role string `json:"role"`
}

func (s SharedCredential) GrantProjectID() types.ID {
	if s.ProjectID != 0 {
		return s.ProjectID
	}
	if s.Project != nil {
		return s.Project.ID
	}
	return 0
}

// Workflow is the listing view of a workflow, Shared is nil when the query
// could not determine any sharing at all.
type Workflow struct {
	ID     types.ID `json:"id"`
	Name   string   `json:"name"`
	Active bool     `json:"active"`

	Shared []SharedWorkflow `json:"shared,omitempty"`
	Scopes []string         `json:"scopes"`
}

// Credential is the listing view of a credential.
type Credential struct {
	ID   types.ID `json:"id"`
	Name string   `json:"name"`
	Type string   `json:"type"`

	Shared []SharedCredential `json:"shared,omitempty"`
	Scopes []string           `json:"scopes"`
}
