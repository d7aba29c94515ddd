package repositories

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type FilterOp string

const (
	OpEq    FilterOp = "eq"
	OpNeq   FilterOp = "neq"
	OpGte   FilterOp = "gte"
	OpLte   FilterOp = "lte"
	OpILike FilterOp = "ilike"
)

type Filter struct {
	Field string
	Op    FilterOp
	Value interface{}
}

// ListQuery carries the filter/sort/pagination parameters the services build.
// Filter fields and SortBy must be column names the service vetted against a
// whitelist, never raw user input; the sort direction is normalized in Apply.
type ListQuery struct {
	Filters   []Filter
	Or        []Filter // matched as a single OR group
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

func (q ListQuery) HasFilter(field string) bool {
	for _, f := range q.Filters {
		if f.Field == field {
			return true
		}
	}
	return false
}

func Apply(db *gorm.DB, q ListQuery) *gorm.DB {
	db = applyFilters(db, q)

	if q.SortBy != "" {
		order := "desc"
		if strings.EqualFold(q.SortOrder, "asc") {
			order = "asc"
		}
		db = db.Order(fmt.Sprintf("%s %s", q.SortBy, order))
	}

	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}

	return db
}

// ApplyFilters builds only the WHERE clauses, for COUNT queries that must not
// carry ordering or pagination.
func ApplyFilters(db *gorm.DB, q ListQuery) *gorm.DB {
	return applyFilters(db, q)
}

func applyFilters(db *gorm.DB, q ListQuery) *gorm.DB {
	for _, f := range q.Filters {
		cond, value := condition(f)
		db = db.Where(cond, value)
	}

	if len(q.Or) > 0 {
		conds := make([]string, 0, len(q.Or))
		values := make([]interface{}, 0, len(q.Or))
		for _, f := range q.Or {
			cond, value := condition(f)
			conds = append(conds, cond)
			values = append(values, value)
		}
		db = db.Where(strings.Join(conds, " OR "), values...)
	}

	return db
}

func condition(f Filter) (string, interface{}) {
	switch f.Op {
	case OpNeq:
		return f.Field + " <> ?", f.Value
	case OpGte:
		return f.Field + " >= ?", f.Value
	case OpLte:
		return f.Field + " <= ?", f.Value
	case OpILike:
		return f.Field + " ILIKE ?", fmt.Sprintf("%%%v%%", f.Value)
	default:
		return f.Field + " = ?", f.Value
	}
}
