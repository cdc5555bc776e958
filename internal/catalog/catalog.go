// Package catalog holds the read-only registry of concert events.  The
// catalog is built once at startup and shared by reference; it has no
// mutating methods, so concurrent readers need no locking.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

// ErrConcertNotFound is returned when an id does not resolve in the catalog.
var ErrConcertNotFound = errors.New("concert not found")

// Catalog is an ordered, immutable set of concert events.
type Catalog struct {
	events []model.ConcertEvent
	byID   map[string]int
	search []string // upper-cased info text per event, same index as events
}

// New builds a catalog from events in the given order.  Duplicate ids
// are rejected.
func New(events []model.ConcertEvent) (*Catalog, error) {
	c := &Catalog{
		events: make([]model.ConcertEvent, 0, len(events)),
		byID:   make(map[string]int, len(events)),
		search: make([]string, 0, len(events)),
	}
	for _, ev := range events {
		if ev.ID == "" {
			return nil, errors.New("concert id is required")
		}
		if _, dup := c.byID[ev.ID]; dup {
			return nil, fmt.Errorf("duplicate concert id %q", ev.ID)
		}
		if ev.Price == "" {
			ev.Price = model.DefaultPrice
		}
		c.byID[ev.ID] = len(c.events)
		c.events = append(c.events, ev)
		c.search = append(c.search, strings.ToUpper(infoText(ev)))
	}
	return c, nil
}

// List returns all events in seed order.
func (c *Catalog) List() []model.ConcertEvent {
	out := make([]model.ConcertEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Get returns the event with the given id.
func (c *Catalog) Get(id string) (model.ConcertEvent, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.ConcertEvent{}, ErrConcertNotFound
	}
	return c.events[i], nil
}

// Len returns the number of events.
func (c *Catalog) Len() int { return len(c.events) }

// Search returns events whose info text contains query, ignoring case.
// An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []model.ConcertEvent {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return c.List()
	}
	var out []model.ConcertEvent
	for i, text := range c.search {
		if strings.Contains(text, q) {
			out = append(out, c.events[i])
		}
	}
	return out
}
