package scope

import (
	"rolegate/authority"
	"rolegate/bizerror"
	"rolegate/persistence"
	"strings"
)

type Scope struct {
	Slug        string `json:"slug" gorm:"primary_key;size:128"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

func (Scope) TableName() string {
	return "scopes"
}

var (
	ResolveScopesFunc = ResolveScopes
)

// DefaultScopeConfiguration upserts the catalog records of every known scope slug.
func DefaultScopeConfiguration() error {
	db := persistence.ActiveDataSourceManager.GormDB()
	for _, slug := range authority.AllScopes() {
		record := Scope{Slug: slug, DisplayName: DisplayNameOf(slug)}
		if err := db.Save(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

// DisplayNameOf  "workflow:read" -> "Workflow Read"
func DisplayNameOf(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == ':' || r == '-'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[0:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ResolveScopes looks up catalog records by slug. A nil slice means no scopes
// were requested and resolves to nil, an empty slice resolves to an empty set.
// Unmatched slugs fail with ErrInvalidScopes naming every one of them in
// input order.
func ResolveScopes(slugs []string) ([]Scope, error) {
	if slugs == nil {
		return nil, nil
	}
	if len(slugs) == 0 {
		return []Scope{}, nil
	}

	var records []Scope
	db := persistence.ActiveDataSourceManager.GormDB()
	if err := db.Where("slug IN (?)", slugs).Find(&records).Error; err != nil {
		return nil, err
	}

	found := map[string]Scope{}
	for _, r := range records {
		found[r.Slug] = r
	}

	invalid := []string{}
	resolved := make([]Scope, 0, len(slugs))
	seen := map[string]bool{}
	for _, slug := range slugs {
		if seen[slug] {
			continue
		}
		seen[slug] = true
		record, ok := found[slug]
		if !ok {
			invalid = append(invalid, slug)
			continue
		}
		resolved = append(resolved, record)
	}
	if len(invalid) > 0 {
		return nil, &bizerror.ErrInvalidScopes{Slugs: invalid}
	}
	return resolved, nil
}
