package role

import (
	"net/http"
	"rolegate/bizerror"
	"rolegate/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathRoles           = "/v1/roles"
	PathAssignableRoles = "/v1/assignable-roles"
)

func RegisterRolesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathRoles, middleWares...)
	g.GET("", handleQueryRoles)
	g.PUT("", handleCreateRole)
	g.GET("/:slug", handleDetailRole)
	g.PATCH("/:slug", handleUpdateRole)
	g.DELETE("/:slug", handleDeleteRole)

	a := r.Group(PathAssignableRoles, middleWares...)
	a.GET("", handleQueryAssignableRoles)
}

func handleQueryRoles(c *gin.Context) {
	record, err := QueryRolesFunc(session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleQueryAssignableRoles(c *gin.Context) {
	record, err := QueryAssignableRolesFunc(session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleDetailRole(c *gin.Context) {
	record, err := DetailRoleFunc(c.Param("slug"), session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleCreateRole(c *gin.Context) {
	creation := RoleCreation{}
	err := c.ShouldBindBodyWith(&creation, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := CreateCustomRoleFunc(creation, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleUpdateRole(c *gin.Context) {
	updating := RoleUpdating{}
	err := c.ShouldBindBodyWith(&updating, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := UpdateCustomRoleFunc(c.Param("slug"), updating, session.FindSecurityContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleDeleteRole(c *gin.Context) {
	if err := DeleteCustomRoleFunc(c.Param("slug"), session.FindSecurityContext(c)); err != nil {
		panic(err)
	}
	c.Status(http.StatusNoContent)
}
