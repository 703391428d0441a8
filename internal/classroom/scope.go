package classroom

import (
	"strings"

	"gorm.io/gorm"
)

// Filter narrows the roster to one class and/or section. Empty fields match
// everything.
type Filter struct {
	ClassName string `form:"className" json:"className"`
	Section   string `form:"section" json:"section"`
}

func (f Filter) Normalize() Filter {
	return Filter{
		ClassName: strings.TrimSpace(f.ClassName),
		Section:   strings.TrimSpace(f.Section),
	}
}

func (f Filter) IsEmpty() bool {
	n := f.Normalize()
	return n.ClassName == "" && n.Section == ""
}

// Scope applies the filter to any query that can see the students columns.
func Scope(f Filter) func(db *gorm.DB) *gorm.DB {
	f = f.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		if f.ClassName != "" {
			db = db.Where("class_name = ?", f.ClassName)
		}
		if f.Section != "" {
			db = db.Where("section = ?", f.Section)
		}
		return db
	}
}
