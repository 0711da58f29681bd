package role

import (
	"errors"
	"regexp"
	"rolegate/authority"
	"rolegate/bizerror"
	"rolegate/domain/scope"
	"rolegate/event"
	"rolegate/persistence"
	"rolegate/session"
	"strings"

	"github.com/fundwit/go-commons/types"
	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
)

var (
	QueryRolesFunc           = QueryRoles
	QueryAssignableRolesFunc = QueryAssignableRoles
	DetailRoleFunc           = DetailRole
	CreateCustomRoleFunc     = CreateCustomRole
	UpdateCustomRoleFunc     = UpdateCustomRole
	DeleteCustomRoleFunc     = DeleteCustomRole
)

// QueryRoles returns every role, built-in first in fixed order, then custom
// roles ordered by slug. Unlicensed roles are kept, callers display or
// disable them with the Licensed flag.
func QueryRoles(s *session.Context) ([]RoleDetail, error) {
	if s == nil {
		return nil, bizerror.ErrUnauthenticated
	}

	roles := append([]Role{}, builtinRoleList...)

	var customs []Role
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Order("slug ASC").Find(&customs).Error; err != nil {
		return nil, err
	}
	roles = append(roles, customs...)

	details := make([]RoleDetail, 0, len(roles))
	for _, r := range roles {
		detail, err := detailOf(r)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// QueryAssignableRoles returns the built-in roles that may be granted to
// another principal.
func QueryAssignableRoles(s *session.Context) ([]RoleDetail, error) {
	if s == nil {
		return nil, bizerror.ErrUnauthenticated
	}

	details := []RoleDetail{}
	for _, slug := range authority.AssignableRoles() {
		detail, err := detailOf(builtinRoles[slug])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func DetailRole(slug string, s *session.Context) (*RoleDetail, error) {
	if s == nil {
		return nil, bizerror.ErrUnauthenticated
	}

	if r, found := builtinRoles[slug]; found {
		return detailOf(r)
	}

	var record Role
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where("slug = ?", slug).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerror.ErrNotFound
		}
		return nil, err
	}
	return detailOf(record)
}

func CreateCustomRole(c RoleCreation, s *session.Context) (*RoleDetail, error) {
	if s == nil {
		return nil, bizerror.ErrUnauthenticated
	}
	if !c.RoleType.Valid() || c.RoleType == authority.RoleTypeGlobal {
		return nil, &bizerror.ErrBadParam{Cause: errors.New("roleType must be one of project, credential, workflow")}
	}

	resolved, err := scope.ResolveScopesFunc(c.Scopes)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, bizerror.ErrScopesRequired
	}

	slug := DeriveRoleSlug(c.RoleType, c.DisplayName)
	// built-in roles, sharing roles included, live outside the roles table
	if authority.BuiltinRoleScopes(slug) != nil {
		return nil, bizerror.ErrRoleExisted
	}

	record := Role{
		Slug:        slug,
		DisplayName: c.DisplayName,
		Description: c.Description,
		RoleType:    c.RoleType,
		SystemRole:  false,
		ScopeSlugs:  scopeSlugsOf(resolved),
		CreateTime:  types.CurrentTimestamp(),
	}

	err = persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			// the unique key on slug is the source of truth for conflicts
			if isDuplicateKeyError(err) {
				return bizerror.ErrRoleExisted
			}
			return err
		}
		return event.CreateAuditEvent(event.SourceTypeRole, record.Slug, record.DisplayName,
			event.AuditCategoryCreated, nil, &s.Identity, tx)
	})
	if err != nil {
		return nil, err
	}

	return detailOf(record)
}

func UpdateCustomRole(slug string, u RoleUpdating, s *session.Context) (*RoleDetail, error) {
	if s == nil {
		return nil, bizerror.ErrUnauthenticated
	}
	if _, found := builtinRoles[slug]; found {
		return nil, bizerror.ErrForbidden
	}

	// a failed resolution aborts the whole update before anything is written
	resolved, err := scope.ResolveScopesFunc(u.Scopes)
	if err != nil {
		return nil, err
	}

	var record Role
	err = persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bizerror.ErrNotFound
			}
			return err
		}
		if record.SystemRole {
			return bizerror.ErrForbidden
		}

		changes := []event.UpdatedProperty{}
		if u.DisplayName != nil && *u.DisplayName != record.DisplayName {
			changes = append(changes, event.UpdatedProperty{PropertyName: "displayName",
				OldValue: record.DisplayName, NewValue: *u.DisplayName})
			record.DisplayName = *u.DisplayName
		}
		if u.Description != nil && *u.Description != record.Description {
			changes = append(changes, event.UpdatedProperty{PropertyName: "description",
				OldValue: record.Description, NewValue: *u.Description})
			record.Description = *u.Description
		}
		if resolved != nil {
			newSlugs := scopeSlugsOf(resolved)
			changes = append(changes, event.UpdatedProperty{PropertyName: "scopes",
				OldValue: strings.Join(record.ScopeSlugs, ","), NewValue: strings.Join(newSlugs, ",")})
			record.ScopeSlugs = newSlugs
		}

		if err := tx.Save(&record).Error; err != nil {
			return err
		}
		if len(changes) > 0 {
			return event.CreateAuditEvent(event.SourceTypeRole, record.Slug, record.DisplayName,
				event.AuditCategoryPropertyUpdated, changes, &s.Identity, tx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detailOf(record)
}

func DeleteCustomRole(slug string, s *session.Context) error {
	if s == nil {
		return bizerror.ErrUnauthenticated
	}
	if _, found := builtinRoles[slug]; found {
		return bizerror.ErrForbidden
	}

	return persistence.ActiveDataSourceManager.GormDB().Transaction(func(tx *gorm.DB) error {
		var record Role
		if err := tx.Where("slug = ?", slug).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bizerror.ErrNotFound
			}
			return err
		}
		if record.SystemRole {
			return bizerror.ErrForbidden
		}

		if err := tx.Delete(Role{}, "slug = ?", slug).Error; err != nil {
			return err
		}
		return event.CreateAuditEvent(event.SourceTypeRole, record.Slug, record.DisplayName,
			event.AuditCategoryDeleted, nil, &s.Identity, tx)
	})
}

// RoleScopes resolves built-in and custom roles to scope slugs, installed as
// authority.RoleScopesFunc at startup.
func RoleScopes(roleSlug string) []string {
	if scopes := authority.BuiltinRoleScopes(roleSlug); scopes != nil {
		return scopes
	}

	var record Role
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where("slug = ?", roleSlug).First(&record).Error; err != nil {
		return nil
	}
	return record.ScopeSlugs
}

var slugNormalizePattern = regexp.MustCompile("[^a-z0-9]+")

// DeriveRoleSlug  ("project", "My Role!!") -> "project:my-role"
func DeriveRoleSlug(roleType authority.RoleType, displayName string) string {
	normalized := slugNormalizePattern.ReplaceAllString(strings.ToLower(displayName), "-")
	return string(roleType) + ":" + strings.Trim(normalized, "-")
}

func detailOf(r Role) (*RoleDetail, error) {
	scopes, err := scope.ResolveScopesFunc(r.ScopeSlugs)
	if err != nil {
		return nil, err
	}
	if scopes == nil {
		scopes = []scope.Scope{}
	}
	return &RoleDetail{Role: r, Scopes: scopes, Licensed: IsRoleLicensed(&r)}, nil
}

func scopeSlugsOf(scopes []scope.Scope) ScopeSlugs {
	slugs := make(ScopeSlugs, 0, len(scopes))
	for _, s := range scopes {
		slugs = append(slugs, s.Slug)
	}
	return slugs
}

func isDuplicateKeyError(err error) bool {
	mysqlErr, ok := err.(*mysql.MySQLError)
	return ok && mysqlErr.Number == 1062
}
