package core

import "github.com/shopspring/decimal"

// Summary - сводка по выборке для плиток статистики.
type Summary struct {
	Count      int            `json:"count"`
	Sum        decimal.Decimal `json:"sum"`
	ByCategory map[string]int `json:"byCategory"`
}

// Aggregate считает количество, точную decimal-сумму и разбивку по категориям.
// Записи без категории попадают в CategoryUnknown. Запись с невалидной суммой
// учитывается в Count и ByCategory, но в Sum вносит подставленный нормализатором
// сентинель (ноль).
func Aggregate[T Entry](items []T) Summary {
	summary := Summary{
		Sum:        decimal.Zero,
		ByCategory: make(map[string]int),
	}

	for _, item := range items {
		summary.Count++

		if amount, ok := item.AmountKey(); ok {
			summary.Sum = summary.Sum.Add(amount)
		}

		category := item.Category()
		if category == "" {
			category = CategoryUnknown
		}
		summary.ByCategory[category]++
	}
	return summary
}
