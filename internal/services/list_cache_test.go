package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cachedItem struct {
	id     string
	active bool
}

func cachedItemKey(item cachedItem) string { return item.id }

func removed(item cachedItem) (cachedItem, bool) { return item, false }

func activated(item cachedItem) (cachedItem, bool) {
	item.active = true
	return item, true
}

func TestListCache_Edits(t *testing.T) {
	fetched := []cachedItem{{id: "a"}, {id: "b"}}

	tests := []struct {
		name     string
		scenario func(c *listCache[cachedItem])
		expected []cachedItem
	}{
		{
			name: "Неподтвержденная правка переживает перечитывание",
			scenario: func(c *listCache[cachedItem]) {
				c.edit("a", removed)
				c.replace(fetched, c.ticket())
			},
			expected: []cachedItem{{id: "b"}},
		},
		{
			name: "Подтвержденная правка держится для списка, запрошенного раньше",
			scenario: func(c *listCache[cachedItem]) {
				before := c.ticket()
				c.edit("a", activated)
				c.resolve("a", true)
				c.replace(fetched, before)
			},
			expected: []cachedItem{{id: "a", active: true}, {id: "b"}},
		},
		{
			name: "Список, запрошенный после подтверждения, авторитетен",
			scenario: func(c *listCache[cachedItem]) {
				c.edit("a", activated)
				c.resolve("a", true)
				c.replace(fetched, c.ticket())
			},
			expected: fetched,
		},
		{
			name: "Отклоненная правка забывается",
			scenario: func(c *listCache[cachedItem]) {
				before := c.ticket()
				c.edit("a", removed)
				c.resolve("a", false)
				c.replace(fetched, before)
			},
			expected: fetched,
		},
		{
			name: "Правка запоминается для элемента, которого еще нет в списке",
			scenario: func(c *listCache[cachedItem]) {
				c.edit("b", removed)
				c.replace(fetched, c.ticket())
			},
			expected: []cachedItem{{id: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newListCache(cachedItemKey)
			tt.scenario(c)

			list, loaded := c.snapshot()
			assert.True(t, loaded)
			assert.Equal(t, tt.expected, list)
		})
	}
}

func TestListCache_ClearDiscardsEarlierFetch(t *testing.T) {
	c := newListCache(cachedItemKey)
	before := c.ticket()
	c.edit("a", removed)

	c.clear()

	assert.False(t, c.replace([]cachedItem{{id: "a"}}, before))
	assert.False(t, c.pending("a"))

	list, loaded := c.snapshot()
	assert.False(t, loaded)
	assert.Empty(t, list)

	assert.True(t, c.replace([]cachedItem{{id: "a"}}, c.ticket()))
	list, _ = c.snapshot()
	assert.Equal(t, []cachedItem{{id: "a"}}, list)
}

func TestListCache_EarlierFetchAfterLaterIsDiscarded(t *testing.T) {
	c := newListCache(cachedItemKey)
	earlier := c.ticket()
	later := c.ticket()

	assert.True(t, c.replace([]cachedItem{{id: "a", active: true}}, later))
	assert.False(t, c.replace([]cachedItem{{id: "a"}}, earlier))

	list, _ := c.snapshot()
	assert.Equal(t, []cachedItem{{id: "a", active: true}}, list)
}

func TestListCache_Find(t *testing.T) {
	c := newListCache(cachedItemKey)
	c.replace([]cachedItem{{id: "a"}}, c.ticket())

	item, ok := c.find("a")
	assert.True(t, ok)
	assert.Equal(t, "a", item.id)

	_, ok = c.find("z")
	assert.False(t, ok)
}
