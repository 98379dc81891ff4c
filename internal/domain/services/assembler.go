package services

import (
	"fmt"

	"eventpdf/internal/domain/entities"
	"eventpdf/internal/domain/interfaces"
)

// Assembler distributes events over the layout's sections. The first section
// an event matches receives the event's full row; every further matching
// section receives a reference row pointing back at that section.
type Assembler struct {
	logger interfaces.Logger
}

// NewAssembler creates a new assembler
func NewAssembler(logger interfaces.Logger) *Assembler {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &Assembler{logger: logger}
}

// AssemblyResult contains the assembled tables and distribution counts
type AssemblyResult struct {
	Tables  []*entities.Table
	Matched int
	Dropped int
}

// Assemble builds one table per layout section from the given events. Event
// order is preserved, so callers sort before assembling. Events matching no
// section are dropped with a warning.
func (a *Assembler) Assemble(layout *entities.Layout, events []*entities.Event) *AssemblyResult {
	if len(events) == 0 {
		a.logger.Warn("feed contained no events, tables will be empty")
	}

	tables := make([]*entities.Table, len(layout.Sections))
	for i, section := range layout.Sections {
		tables[i] = &entities.Table{Title: section.Title}
	}

	result := &AssemblyResult{Tables: tables}
	for _, event := range events {
		categories := event.Categories(layout.IdentifierTag)
		home := ""
		for i, section := range layout.Sections {
			if !section.Matches(categories) {
				continue
			}
			if home == "" {
				home = section.Title
				tables[i].Rows = append(tables[i].Rows, a.fullRow(layout, event))
				continue
			}
			tables[i].Rows = append(tables[i].Rows, a.referenceRow(layout, event, home))
		}
		if home == "" {
			result.Dropped++
			a.logger.Warn("event matches no section and will not be printed",
				interfaces.F("event", event.Name()),
				interfaces.F("categories", categories))
			continue
		}
		result.Matched++
	}
	return result
}

func (a *Assembler) fullRow(layout *entities.Layout, event *entities.Event) entities.Row {
	cells := make([]string, len(layout.Columns))
	for i, col := range layout.Columns {
		cells[i] = event.Cell(col, layout.Texts)
	}
	return entities.Row{Cells: cells}
}

// referenceRow builds the reduced row: name, date, and region stay readable,
// the widest column carries the pointer to the section with the full row.
func (a *Assembler) referenceRow(layout *entities.Layout, event *entities.Event, home string) entities.Row {
	cells := make([]string, len(layout.Columns))
	see := fmt.Sprintf(layout.Texts.See, home)
	seeAt := a.widestColumn(layout)
	for i, col := range layout.Columns {
		switch {
		case i == 0 && i == seeAt:
			cells[i] = event.Name() + "\n" + see
		case i == 0:
			cells[i] = event.Name()
		case i == seeAt:
			cells[i] = see
		case col.Source == entities.SourceDate:
			cells[i] = event.DateSpan(layout.Texts)
		case col.HasTag(entities.TagRegion):
			cells[i] = event.Region()
		}
	}
	return entities.Row{Cells: cells, Reference: true}
}

func (a *Assembler) widestColumn(layout *entities.Layout) int {
	widths := layout.ColumnWidths()
	widest := len(widths) - 1
	for i, w := range widths {
		if w > widths[widest] {
			widest = i
		}
	}
	return widest
}
