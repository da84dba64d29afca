package persistence

import (
	"fmt"

	"github.com/sellerledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies ordering and pagination from a shared.Filter.
// allowedSort whitelists order columns; anything else falls back to
// created_at so request input never reaches the ORDER BY clause raw.
func applyFilter(query *gorm.DB, filter shared.Filter, allowedSort map[string]bool) *gorm.DB {
	orderBy := filter.OrderBy
	if orderBy == "" || !allowedSort[orderBy] {
		orderBy = "created_at"
	}
	dir := "desc"
	if filter.OrderDir == "asc" {
		dir = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, dir))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(filter.PageSize).Offset((page - 1) * filter.PageSize)
	}

	return query
}
