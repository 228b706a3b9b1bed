package core

import "strings"

// Filter возвращает подмножество items, прошедшее и поисковый запрос, и фильтр
// по категории (логическое И).
//
// Поиск: регистронезависимое вхождение подстроки хотя бы в одно из полей
// SearchFields (логическое ИЛИ). Пустой запрос пропускает все записи.
// Категория: точное равенство Category(), сентинель CategoryAll пропускает всё.
// Порядок записей сохраняется, пустой вход дает пустой выход.
func Filter[T Entry](items []T, term, category string) []T {
	term = strings.ToLower(strings.TrimSpace(term))

	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesSearch(item, term) && matchesCategory(item, category) {
			result = append(result, item)
		}
	}
	return result
}

func matchesSearch(item Entry, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesCategory(item Entry, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return item.Category() == category
}
