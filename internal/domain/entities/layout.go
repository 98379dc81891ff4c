package entities

import "fmt"

// Column content sources. The default empty source reads the column's Tags.
const (
	SourceTags          = "tags"
	SourceSchedule      = "schedule"
	SourceDate          = "date"
	SourcePrerequisites = "prerequisites"
	SourceDescription   = "description"
)

// Layout describes the document to render: page geometry, fonts, the column
// set of every subtable, the sections events are distributed over, and the
// localized texts used when assembling cell content.
type Layout struct {
	Title         string
	PageSize      string
	Orientation   string
	TableWidth    float64
	Font          FontConfig
	IdentifierTag string
	Columns       []Column
	Sections      []Section
	Texts         Texts
}

// FontConfig holds the font settings for the rendered tables.
type FontConfig struct {
	Family      string
	Size        float64
	HeadingSize float64
	SectionSize float64
	LineHeight  float64
}

// Column describes one table column: its heading, the feed tags (or
// composite source) it reads, and its width in millimeters. Exactly one
// column may have width 0 and absorbs the remaining table width.
type Column struct {
	Title  string
	Tags   []string
	Source string
	Width  float64
}

// HasTag reports whether the column reads the given feed tag.
func (c Column) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Section is a named group of events. An event belongs to a section when its
// categories intersect both the locations and the activities; an empty
// filter list matches everything.
type Section struct {
	Title      string
	Locations  []string
	Activities []string
}

// Matches reports whether an event with the given categories belongs to the
// section.
func (s Section) Matches(categories []string) bool {
	return intersects(categories, s.Locations) && intersects(categories, s.Activities)
}

func intersects(categories, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, c := range categories {
		for _, f := range filter {
			if c == f {
				return true
			}
		}
	}
	return false
}

// Texts holds the localized fragments used in assembled cell content. The
// defaults match the upstream feed's language.
type Texts struct {
	OnRequest string
	None      string
	And       string
	See       string
	MoreInfo  string
}

// DefaultTexts returns the German defaults of the original tables.
func DefaultTexts() Texts {
	return Texts{
		OnRequest: "auf Anfrage",
		None:      "keine",
		And:       "und",
		See:       "Siehe %s",
		MoreInfo:  "Mehr Infos unter %s.",
	}
}

// DefaultFont returns the font settings used when the layout omits them.
func DefaultFont() FontConfig {
	return FontConfig{
		Family:      "Helvetica",
		Size:        6.5,
		HeadingSize: 12,
		SectionSize: 8,
		LineHeight:  2.8,
	}
}

// ColumnWidths resolves the per-column widths, assigning the remaining table
// width to the flexible column.
func (l *Layout) ColumnWidths() []float64 {
	widths := make([]float64, len(l.Columns))
	fixed := 0.0
	flexible := -1
	for i, col := range l.Columns {
		widths[i] = col.Width
		if col.Width == 0 {
			flexible = i
			continue
		}
		fixed += col.Width
	}
	if flexible >= 0 {
		widths[flexible] = l.TableWidth - fixed
	}
	return widths
}

// Validate checks the layout for configurations the renderer cannot handle.
func (l *Layout) Validate() error {
	if len(l.Columns) == 0 {
		return fmt.Errorf("layout must define at least one column")
	}
	if len(l.Sections) == 0 {
		return fmt.Errorf("layout must define at least one section")
	}
	if l.TableWidth <= 0 {
		return fmt.Errorf("table width must be positive")
	}
	flexible := 0
	fixed := 0.0
	for i, col := range l.Columns {
		if col.Title == "" {
			return fmt.Errorf("column %d has no title", i+1)
		}
		if col.Width < 0 {
			return fmt.Errorf("column %q has negative width", col.Title)
		}
		if col.Width == 0 {
			flexible++
			continue
		}
		fixed += col.Width
	}
	if flexible > 1 {
		return fmt.Errorf("at most one column may have width 0, found %d", flexible)
	}
	if fixed > l.TableWidth {
		return fmt.Errorf("fixed column widths (%.1f mm) exceed table width (%.1f mm)", fixed, l.TableWidth)
	}
	if flexible == 1 && fixed >= l.TableWidth {
		return fmt.Errorf("no width left for the flexible column")
	}
	seen := make(map[string]bool, len(l.Sections))
	for _, section := range l.Sections {
		if section.Title == "" {
			return fmt.Errorf("every section needs a title")
		}
		if seen[section.Title] {
			return fmt.Errorf("duplicate section title %q", section.Title)
		}
		seen[section.Title] = true
	}
	return nil
}
