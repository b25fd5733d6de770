package store

import (
	"HealthHubTerminal/models"
	"HealthHubTerminal/util"
	"fmt"

	"github.com/samber/lo"
)

// Collection is an in-memory keyed collection that remembers insertion order.
// Replacing an item keeps its original position.
type Collection[T any] struct {
	name  string
	keys  []string
	items map[string]T
}

func NewCollection[T any](name string) *Collection[T] {
	return &Collection[T]{
		name:  name,
		keys:  []string{},
		items: make(map[string]T),
	}
}

// InsertIfAbsent reports whether item was stored. An existing item under code is left untouched.
func (c *Collection[T]) InsertIfAbsent(code string, item T) bool {
	if _, exists := c.items[code]; exists {
		return false
	}
	c.keys = append(c.keys, code)
	c.items[code] = item
	return true
}

func (c *Collection[T]) Replace(code string, item T) error {
	if _, exists := c.items[code]; !exists {
		return fmt.Errorf("%s %s: %w", c.name, code, util.ErrNotFound)
	}
	c.items[code] = item
	return nil
}

func (c *Collection[T]) Delete(code string) error {
	if _, exists := c.items[code]; !exists {
		return fmt.Errorf("%s %s: %w", c.name, code, util.ErrNotFound)
	}
	delete(c.items, code)
	c.keys = lo.Without(c.keys, code)
	return nil
}

func (c *Collection[T]) FindByCode(code string) (T, error) {
	item, exists := c.items[code]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", c.name, code, util.ErrNotFound)
	}
	return item, nil
}

// List returns the items in insertion order.
func (c *Collection[T]) List() []T {
	return lo.Map(c.keys, func(code string, _ int) T {
		return c.items[code]
	})
}

// FindFirst scans in insertion order and returns the first item accepted by match.
func (c *Collection[T]) FindFirst(match func(item T) bool) (T, error) {
	item, found := lo.Find(c.List(), match)
	if !found {
		var zero T
		return zero, fmt.Errorf("%s: %w", c.name, util.ErrNotFound)
	}
	return item, nil
}

func (c *Collection[T]) Len() int {
	return len(c.keys)
}

// Registry holds every doctor and patient known to the current run.
type Registry struct {
	Doctors  *Collection[*models.Doctor]
	Patients *Collection[*models.Patient]
}

func NewRegistry() *Registry {
	return &Registry{
		Doctors:  NewCollection[*models.Doctor](util.DOCTOR_COLLECTION),
		Patients: NewCollection[*models.Patient](util.PATIENT_COLLECTION),
	}
}
