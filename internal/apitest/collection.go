// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"sort"
)

type owned[T any] struct {
	owner int64
	value T
}

// collection stores resources per owning account. Callers hold Server.mu.
type collection[T any] struct {
	next  int64
	items map[int64]owned[T]
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[int64]owned[T])}
}

// add stores the value built by build with the next id.
func (c *collection[T]) add(owner int64, build func(id int64) T) T {
	c.next++
	value := build(c.next)
	c.items[c.next] = owned[T]{owner: owner, value: value}
	return value
}

func (c *collection[T]) get(owner, id int64) (T, bool) {
	item, ok := c.items[id]
	if !ok || item.owner != owner {
		var zero T
		return zero, false
	}
	return item.value, true
}

func (c *collection[T]) put(owner, id int64, value T) bool {
	if _, ok := c.get(owner, id); !ok {
		return false
	}
	c.items[id] = owned[T]{owner: owner, value: value}
	return true
}

func (c *collection[T]) remove(owner, id int64) bool {
	if _, ok := c.get(owner, id); !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// list returns the owner's resources, newest first.
func (c *collection[T]) list(owner int64) []T {
	ids := make([]int64, 0)
	for id, item := range c.items {
		if item.owner == owner {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	values := make([]T, 0, len(ids))
	for _, id := range ids {
		values = append(values, c.items[id].value)
	}
	return values
}

func (c *collection[T]) count(owner int64) int {
	n := 0
	for _, item := range c.items {
		if item.owner == owner {
			n++
		}
	}
	return n
}

func (c *collection[T]) dropOwner(owner int64) {
	for id, item := range c.items {
		if item.owner == owner {
			delete(c.items, id)
		}
	}
}
