package service

import "github.com/fsdevblog/lendboard/internal/core"

// ListQuery - общие параметры списочных выборок: поиск, категория, сортировка.
type ListQuery struct {
	Search   string
	Category string
	SortBy   core.SortField
	Dir      core.SortDirection
}

// runPipeline прогоняет выборку через общий конвейер: фильтр, сортировка,
// агрегация. Сводка считается по отфильтрованной выборке, до сортировки -
// порядок на нее не влияет.
func runPipeline[T core.Entry](items []T, q ListQuery) ([]T, core.Summary) {
	if q.SortBy == "" {
		q.SortBy = core.SortFieldDate
	}
	if q.Dir == "" {
		q.Dir = core.SortDesc
	}

	filtered := core.Filter(items, q.Search, q.Category)
	summary := core.Aggregate(filtered)
	return core.SortBy(filtered, q.SortBy, q.Dir), summary
}
