// Package core содержит чистый конвейер обработки выборок дашборда:
// нормализация сырых записей ядра, классификация статусов, поиск/фильтрация,
// сортировка и агрегация. Никакого I/O: только преобразования срезов в памяти.
package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry - строка списка, с которой умеет работать конвейер. Реализуется
// display-сущностями домена. Ключи сортировки возвращают второй флаг false,
// если исходное значение не распарсилось: такие строки уходят в конец выборки
// независимо от направления сортировки, но никогда не выбрасываются.
type Entry interface {
	SearchFields() []string
	Category() string
	AmountKey() (decimal.Decimal, bool)
	DateKey() (time.Time, bool)
}

type SortField string

const (
	SortFieldDate   SortField = "date"
	SortFieldAmount SortField = "amount"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// CategoryAll - сентинель фильтра по категории, пропускающий любые значения.
const CategoryAll = "all"

// CategoryUnknown подставляется агрегатором записям без категории.
const CategoryUnknown = "unknown"
