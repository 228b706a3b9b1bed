package service

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// snapshotCache хранит последний успешный результат выборки из ядра.
// Конкурентные запросы одной и той же выборки коалесцируются через
// singleflight: к ядру уходит не больше одного запроса за раз.
//
// Если ядро недоступно, а снимок уже есть, возвращается снимок с флагом
// stale=true. Ошибка наружу уходит только когда отдать нечего.
type snapshotCache[T any] struct {
	sf singleflight.Group

	mu    sync.RWMutex
	value T
	valid bool
}

type fetchFunc[T any] func(ctx context.Context) (T, error)

func (c *snapshotCache[T]) Get(ctx context.Context, key string, fetch fetchFunc[T]) (T, bool, error) {
	result, err, _ := c.sf.Do(key, func() (any, error) {
		value, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		c.mu.Lock()
		c.value = value
		c.valid = true
		c.mu.Unlock()
		return value, nil
	})

	if err != nil {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.valid {
			return c.value, true, nil
		}

		var zero T
		return zero, false, err
	}

	//nolint:forcetypeassert
	return result.(T), false, nil
}
