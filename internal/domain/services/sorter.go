// Package services contains the domain logic for ordering and distributing
// events over the configured sections.
package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"eventpdf/internal/domain/entities"
)

// Sorter orders events chronologically by their start date. Events without a
// parseable start date sort last; ties are broken by event name under German
// collation so umlauts sort the way the printed tables expect.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a new sorter
func NewSorter() *Sorter {
	return &Sorter{collator: collate.New(language.German)}
}

// Sort orders the events in place and returns the slice for convenience
func (s *Sorter) Sort(events []*entities.Event) []*entities.Event {
	sort.SliceStable(events, func(i, j int) bool {
		di, iOK := events[i].StartDate()
		dj, jOK := events[j].StartDate()
		switch {
		case iOK && !jOK:
			return true
		case !iOK && jOK:
			return false
		case iOK && jOK && !di.Equal(dj):
			return di.Before(dj)
		}
		return s.collator.CompareString(events[i].Name(), events[j].Name()) < 0
	})
	return events
}
