package cache

import "errors"

var (
	// ErrStore ошибка хранилища кэша
	ErrStore = errors.New("cache: store error")

	// ErrCorruptedEntry закэшированное значение не удалось разобрать
	ErrCorruptedEntry = errors.New("cache: corrupted entry")
)
