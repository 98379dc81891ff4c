package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Well-known child tags of a feed event element. The feed schema is fixed by
// the upstream publisher, so the names are part of the wire format.
const (
	TagName         = "Bezeichnung"
	TagName2        = "Bezeichnung2"
	TagDescription  = "Beschreibung"
	TagKind         = "Kursart"
	TagRegion       = "Ort"
	TagResponsible  = "Leiter"
	TagWeekday      = "Wochentag"
	TagTime         = "Uhrzeit"
	TagSeason       = "Saison"
	TagExceptions   = "Ausnahmen"
	TagDateInfo     = "Terminbeschreibung"
	TagAudience     = "Zielgruppe"
	TagPersonal     = "Voraussetzung"
	TagMaterial     = "Ausruestung"
	TagFinancial    = "Kurskosten"
	TagOffers       = "Leistungen"
	TagLink         = "TrainerURL"
	TagDateStart    = "TerminDatumVon1"
	TagDateEnd      = "TerminDatumBis1"
	TagDateStart2   = "TerminDatumVon2"
	TagDateEnd2     = "TerminDatumBis2"
	TagDateStart3   = "TerminDatumVon3"
	TagDateEnd3     = "TerminDatumBis3"
	DefaultIDTag    = "Kategorie"
	startDateLayout = "02.01.2006"
)

// Placeholder year the feed uses for dates that are still to be arranged.
const onRequestYear = "2099"

// shortYear rewrites dd.mm.yyyy dates to dd.mm.yy.
var shortYear = regexp.MustCompile(`(\d{2}\.\d{2}\.)\d{2}(\d{2})`)

// Event is the domain representation of one feed element. It keeps the
// element's tag, attributes, and the text content of its children, and knows
// how to assemble the composite cell texts the table columns need.
type Event struct {
	Tag    string
	Attrib map[string]string

	texts map[string]string
}

// NewEvent creates an event from an element tag, its attributes, and the
// first text content per child tag.
func NewEvent(tag string, attrib map[string]string, children map[string]string) *Event {
	if attrib == nil {
		attrib = map[string]string{}
	}
	if children == nil {
		children = map[string]string{}
	}
	return &Event{Tag: tag, Attrib: attrib, texts: children}
}

// TagText concatenates the texts of the given child tags with " - ",
// skipping tags that are missing or empty.
func (e *Event) TagText(tags ...string) string {
	var b strings.Builder
	for _, tag := range tags {
		text := e.texts[tag]
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" - ")
		}
		b.WriteString(text)
	}
	return b.String()
}

// Name returns the event's title.
func (e *Event) Name() string {
	return e.TagText(TagName)
}

// Region returns where the event takes place.
func (e *Event) Region() string {
	return e.TagText(TagRegion)
}

// Responsible returns the name of the person in charge.
func (e *Event) Responsible() string {
	return e.TagText(TagResponsible)
}

// Categories splits the identifier tag's content into the category list used
// for section matching. An empty identifierTag falls back to the default.
func (e *Event) Categories(identifierTag string) []string {
	if identifierTag == "" {
		identifierTag = DefaultIDTag
	}
	raw := e.texts[identifierTag]
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ", ")
}

// Schedule assembles the recurring-meeting string: weekday, time, season,
// and exceptions on separate lines, empty parts dropped.
func (e *Event) Schedule() string {
	parts := make([]string, 0, 4)
	for _, tag := range []string{TagWeekday, TagTime, TagSeason, TagExceptions} {
		if text := e.texts[tag]; text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// DateSpan assembles the date column from up to three from/to ranges. Ranges
// containing the placeholder year render the on-request text, time
// placeholders are dropped, and years are shortened to two digits.
func (e *Event) DateSpan(t Texts) string {
	span := e.TagText(TagDateStart, TagDateEnd)
	for _, more := range []string{
		e.TagText(TagDateStart2, TagDateEnd2),
		e.TagText(TagDateStart3, TagDateEnd3),
	} {
		if more != "" {
			span += "\n" + t.And + "\n" + more
		}
	}
	if strings.Contains(span, onRequestYear) {
		return t.OnRequest
	}
	if span == "" {
		return ""
	}
	span = strings.ReplaceAll(span, "00:00", "")
	return shortYear.ReplaceAllString(span, "$1$2")
}

// StartDate parses the first range's start date. The second return value
// reports whether the feed carried a parseable date.
func (e *Event) StartDate() (time.Time, bool) {
	raw := e.texts[TagDateStart]
	if raw == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(startDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Prerequisites assembles the prerequisites column: personal, material, and
// financial requirements as an a)/b)/c) list with fallbacks for empty ones.
func (e *Event) Prerequisites(t Texts) string {
	personal := e.texts[TagPersonal]
	material := e.texts[TagMaterial]
	financial := e.texts[TagFinancial]
	offers := e.texts[TagOffers]

	if personal == "" {
		personal = t.None
	}
	if material == "" {
		material = t.None
	}

	var costs string
	if financial != "" {
		costs = financial + " €"
		if offers != "" {
			costs += " (" + offers + ")"
		}
	} else {
		costs = t.None
	}

	return fmt.Sprintf("a) %s\nb) %s\nc) %s", personal, material, costs)
}

// Description assembles the long description: title, secondary title, the
// descriptive text, and a trailing pointer to further information if the
// feed carries a link.
func (e *Event) Description(t Texts) string {
	description := e.Name()
	if name2 := e.texts[TagName2]; name2 != "" {
		description += " - " + name2
	}
	if text := e.texts[TagDescription]; text != "" {
		description += " - " + text
	}
	if link := e.texts[TagLink]; link != "" {
		if !strings.HasSuffix(description, ".") {
			description += "."
		}
		description += " " + fmt.Sprintf(t.MoreInfo, link)
	}
	return description
}

// Cell returns the text for one column of this event's full table row.
func (e *Event) Cell(col Column, t Texts) string {
	switch col.Source {
	case SourceSchedule:
		return e.Schedule()
	case SourceDate:
		return e.DateSpan(t)
	case SourcePrerequisites:
		return e.Prerequisites(t)
	case SourceDescription:
		return e.Description(t)
	default:
		return e.TagText(col.Tags...)
	}
}
