package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ILike matches column against a case-insensitive substring. The term is
// escaped so % and _ are literal.
func ILike(column, term string) sq.Sqlizer {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return sq.ILike{column: "%" + escaped + "%"}
}

// AnyILike matches term against any of columns.
func AnyILike(term string, columns ...string) sq.Sqlizer {
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, ILike(c, term))
	}
	return or
}

// Paginate applies limit and offset when set.
func Paginate(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}

// Returning renders a RETURNING clause for squirrel Suffix.
func Returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// LinkEq matches rows linked to every set field of l.
func LinkEq(l domain.Link) sq.Eq {
	eq := sq.Eq{}
	if l.LeadID != nil {
		eq["lead_id"] = *l.LeadID
	}
	if l.ContactID != nil {
		eq["contact_id"] = *l.ContactID
	}
	if l.DealID != nil {
		eq["deal_id"] = *l.DealID
	}
	return eq
}
