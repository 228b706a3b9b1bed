package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/service"
	"github.com/fsdevblog/lendboard/internal/transport/api/middlewares"
)

// getUserIDFromContext берет из контекста gin ID текущего администратора.
// ID устанавливается в middlewares.AuthRequired. В случае, если значения в
// контексте нет или ошибка утверждения типа - вернется пустая строка.
func getUserIDFromContext(c *gin.Context) string {
	value, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return ""
	}
	userID, ok := value.(string)
	if !ok {
		return ""
	}
	return userID
}

// ListQueryParams - общие query-параметры списочных выборок. Параметр
// категории у каждой страницы свой (status, type, role), поэтому в общий
// набор не входит.
type ListQueryParams struct {
	Search string `form:"search"`
	Sort   string `binding:"omitempty,oneof=date amount" form:"sort"`
	Dir    string `binding:"omitempty,oneof=asc desc"    form:"dir"`
}

func (p ListQueryParams) toListQuery(category string) service.ListQuery {
	return service.ListQuery{
		Search:   p.Search,
		Category: category,
		SortBy:   core.SortField(p.Sort),
		Dir:      core.SortDirection(p.Dir),
	}
}
