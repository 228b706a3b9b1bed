package core

import "sort"

// SortBy возвращает новый срез, упорядоченный по выбранному полю и направлению.
// Исходный срез не модифицируется.
//
// Даты сравниваются как time.Time, суммы - как decimal; отформатированные
// строки в сравнениях не участвуют. Сортировка стабильная: записи с равным
// ключом сохраняют исходный относительный порядок. Записи с невалидным ключом
// (ErrInvalidSortKey у нормализатора) всегда оказываются в конце, при любом
// направлении, и между собой сохраняют исходный порядок.
func SortBy[T Entry](items []T, field SortField, dir SortDirection) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return entryLess(sorted[i], sorted[j], field, dir)
	})
	return sorted
}

func entryLess(a, b Entry, field SortField, dir SortDirection) bool {
	if field == SortFieldAmount {
		ka, okA := a.AmountKey()
		kb, okB := b.AmountKey()
		if okA != okB {
			// валидный ключ всегда раньше невалидного
			return okA
		}
		if !okA {
			return false
		}
		if dir == SortAsc {
			return ka.LessThan(kb)
		}
		return kb.LessThan(ka)
	}

	ka, okA := a.DateKey()
	kb, okB := b.DateKey()
	if okA != okB {
		return okA
	}
	if !okA {
		return false
	}
	if dir == SortAsc {
		return ka.Before(kb)
	}
	return kb.Before(ka)
}
