package role

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"rolegate/authority"
	"rolegate/domain/scope"

	"github.com/fundwit/go-commons/types"
)

type Role struct {
	Slug string `json:"slug" gorm:"primary_key;size:128"`

	DisplayName string             `json:"displayName"`
	Description string             `json:"description,omitempty"`
	RoleType    authority.RoleType `json:"roleType"`
	SystemRole  bool               `json:"systemRole"`

	ScopeSlugs ScopeSlugs `json:"-" gorm:"column:scopes" sql:"type:TEXT"`

	CreateTime types.Timestamp `json:"-" sql:"type:DATETIME(6)"`
}

func (Role) TableName() string {
	return "roles"
}

// RoleDetail is the exposed shape of a role, scope slugs expanded through the
// catalog and the licensing flag attached.
type RoleDetail struct {
	Role

	Scopes   []scope.Scope `json:"scopes"`
	Licensed bool          `json:"licensed"`
}

type RoleCreation struct {
	DisplayName string             `json:"displayName" binding:"required,gte=2,lte=100"`
	Description string             `json:"description" binding:"lte=500"`
	RoleType    authority.RoleType `json:"roleType" binding:"required"`

	// nil when the caller omitted the list, an empty list yields a scopeless role
	Scopes []string `json:"scopes"`
}

type RoleUpdating struct {
	DisplayName *string `json:"displayName" binding:"omitempty,gte=2,lte=100"`
	Description *string `json:"description" binding:"omitempty,lte=500"`

	// nil leaves the role's scope set untouched, otherwise the set is replaced
	Scopes []string `json:"scopes"`
}

type ScopeSlugs []string

func (t ScopeSlugs) Value() (driver.Value, error) {
	jsonBytes, err := json.Marshal(&t)
	if err != nil {
		return nil, err
	}
	return string(jsonBytes), nil
}

func (c *ScopeSlugs) Scan(v interface{}) error {
	jsonString, ok := v.(string)
	if !ok {
		jsonByte, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("type is neither string nor []byte: %T %v", v, v)
		}
		jsonString = string(jsonByte)
	}
	return json.Unmarshal([]byte(jsonString), c)
}

// built once at process start from the authority tables, read-only afterwards
var (
	builtinRoles    map[string]Role
	builtinRoleList []Role
)

func init() {
	builtinRoles = map[string]Role{}
	builtinRoleList = []Role{}
	for _, slug := range authority.BuiltinRoles() {
		roleType := authority.RoleTypeGlobal
		if authority.IsBuiltinProjectRole(slug) {
			roleType = authority.RoleTypeProject
		}
		r := Role{
			Slug:        slug,
			DisplayName: slug,
			Description: fmt.Sprintf("Built-in %s role with %s permissions.", roleType, slug),
			RoleType:    roleType,
			SystemRole:  true,
			ScopeSlugs:  authority.BuiltinRoleScopes(slug),
		}
		builtinRoles[slug] = r
		builtinRoleList = append(builtinRoleList, r)
	}
}

func FindBuiltinRole(slug string) (Role, bool) {
	r, found := builtinRoles[slug]
	return r, found
}
