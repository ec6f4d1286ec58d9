package services

import "sync"

// listEdit локальная правка элемента списка. false убирает элемент.
// Правка может применяться к одному элементу несколько раз и должна давать тот же результат.
type listEdit[T any] func(item T) (T, bool)

type localEdit[T any] struct {
	apply     listEdit[T]
	confirmed bool
	ticket    uint64
}

// listCache последний прочитанный с бэкенда список вместе с локальными правками.
// Неподтвержденная правка накладывается на каждый прочитанный список,
// подтвержденная только на списки, запрошенные до подтверждения.
type listCache[T any] struct {
	key func(item T) string

	mu      sync.Mutex
	loaded  bool
	items   []T
	edits   map[string]localEdit[T]
	tickets uint64
	applied uint64
	cleared uint64
}

func newListCache[T any](key func(item T) string) *listCache[T] {
	return &listCache[T]{key: key, edits: map[string]localEdit[T]{}}
}

// ticket отмечает начало запроса списка
func (c *listCache[T]) ticket() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tickets++
	return c.tickets
}

// replace применяет список, запрошенный после ticket(). Отбрасываются списки,
// запрошенные до clear или раньше уже примененного.
func (c *listCache[T]) replace(items []T, ticket uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket <= c.cleared || ticket < c.applied {
		return false
	}
	c.applied = ticket

	for id, edit := range c.edits {
		if edit.confirmed && edit.ticket < ticket {
			delete(c.edits, id)
		}
	}

	c.items = c.applyEdits(items)
	c.loaded = true

	return true
}

func (c *listCache[T]) applyEdits(items []T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if edit, ok := c.edits[c.key(item)]; ok {
			var keep bool
			if item, keep = edit.apply(item); !keep {
				continue
			}
		}
		result = append(result, item)
	}
	return result
}

// snapshot копия текущего списка
func (c *listCache[T]) snapshot() ([]T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]T, len(c.items))
	copy(result, c.items)

	return result, c.loaded
}

// find возвращает элемент текущего списка по ключу
func (c *listCache[T]) find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if c.key(item) == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// edit сразу применяет правку и держит ее до resolve. Правка запоминается,
// даже если элемента сейчас нет: он может прийти в уже идущем запросе.
func (c *listCache[T]) edit(id string, apply listEdit[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.edits[id] = localEdit[T]{apply: apply}
	c.items = c.applyEdits(c.items)
}

// resolve фиксирует ответ бэкенда на правку. Отклоненная правка забывается,
// вернуть элемент может только новый запрос списка.
func (c *listCache[T]) resolve(id string, confirmed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	edit, ok := c.edits[id]
	if !ok {
		return
	}

	if !confirmed {
		delete(c.edits, id)
		return
	}

	edit.confirmed = true
	edit.ticket = c.tickets
	c.edits[id] = edit
}

// pending сообщает, ждет ли правка элемента ответа бэкенда
func (c *listCache[T]) pending(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	edit, ok := c.edits[id]
	return ok && !edit.confirmed
}

func (c *listCache[T]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.loaded = false
	c.edits = map[string]localEdit[T]{}
	c.cleared = c.tickets
}
