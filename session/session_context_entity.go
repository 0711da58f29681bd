package session

import (
	"rolegate/domain"
	"time"

	"github.com/fundwit/go-commons/types"
)

type Context struct {
	Token        string                   `json:"token"`
	Identity     Identity                 `json:"identity"`
	GlobalRole   string                   `json:"globalRole"`
	ProjectRoles []domain.ProjectRelation `json:"projectRoles"`

	SigningTime time.Time `json:"-"`
}

type Identity struct {
	ID       types.ID `json:"id"`
	Name     string   `json:"name"`
	Nickname string   `json:"nickname"`
}

// ProjectRoleOf  the principal's role within one project, empty when not a member
func (c *Context) ProjectRoleOf(projectId types.ID) string {
	for _, v := range c.ProjectRoles {
		if v.ProjectID == projectId {
			return v.Role
		}
	}
	return ""
}

// VisibleProjects parse visible project ids from Context.ProjectRoles
func (c *Context) VisibleProjects() []types.ID {
	projectIds := []types.ID{}
	for _, v := range c.ProjectRoles {
		projectIds = append(projectIds, v.ProjectID)
	}
	return projectIds
}
