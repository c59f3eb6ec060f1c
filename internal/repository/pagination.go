package repository

import "gorm.io/gorm"

// applyPagination 给查询追加 Limit/Offset；pageSize 不合法时返回原查询，
// 即列表接口默认不分页。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil {
		return nil
	}
	if pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}
