package services

import (
	"strings"
	"testing"

	"eventpdf/internal/domain/entities"
)

func assemblyLayout() *entities.Layout {
	return &entities.Layout{
		Title:      "Kursplan",
		TableWidth: 178,
		Columns: []entities.Column{
			{Title: "Kurs", Tags: []string{entities.TagName}, Width: 30},
			{Title: "Termin", Source: entities.SourceDate, Width: 20},
			{Title: "Ort", Tags: []string{entities.TagRegion}, Width: 15},
			{Title: "Beschreibung", Source: entities.SourceDescription, Width: 0},
		},
		Sections: []entities.Section{
			{Title: "Klettern im Gebirge", Locations: []string{"Gebirge"}, Activities: []string{"Klettern"}},
			{Title: "Jugend", Activities: []string{"Jugend"}},
		},
		Texts: entities.DefaultTexts(),
	}
}

func climbingEvent(name, categories string) *entities.Event {
	return entities.NewEvent("Kurs", nil, map[string]string{
		"Bezeichnung":     name,
		"Kategorie":       categories,
		"Ort":             "Berchtesgaden",
		"TerminDatumVon1": "01.06.2024",
	})
}

func TestAssembler_Assemble_FullRowInFirstMatch(t *testing.T) {
	assembler := NewAssembler(nil)
	events := []*entities.Event{climbingEvent("Alpinklettern", "Gebirge, Klettern")}

	result := assembler.Assemble(assemblyLayout(), events)

	if result.Matched != 1 {
		t.Fatalf("Matched = %d, want 1", result.Matched)
	}
	rows := result.Tables[0].Rows
	if len(rows) != 1 {
		t.Fatalf("first section has %d rows, want 1", len(rows))
	}
	if rows[0].Reference {
		t.Error("first match should get the full row, not a reference")
	}
	if rows[0].Cells[0] != "Alpinklettern" {
		t.Errorf("Cells[0] = %q, want event name", rows[0].Cells[0])
	}
}

func TestAssembler_Assemble_ReferenceRowInLaterMatch(t *testing.T) {
	assembler := NewAssembler(nil)
	events := []*entities.Event{climbingEvent("Jugendklettern", "Gebirge, Klettern, Jugend")}

	result := assembler.Assemble(assemblyLayout(), events)

	second := result.Tables[1].Rows
	if len(second) != 1 {
		t.Fatalf("second section has %d rows, want 1", len(second))
	}
	if !second[0].Reference {
		t.Error("later match should get a reference row")
	}
	joined := strings.Join(second[0].Cells, "|")
	if !strings.Contains(joined, "Siehe Klettern im Gebirge") {
		t.Errorf("reference row %q should point at the first section", joined)
	}
	if second[0].Cells[0] != "Jugendklettern" {
		t.Errorf("reference row keeps the name, got %q", second[0].Cells[0])
	}
}

func TestAssembler_Assemble_ReferenceRowKeepsDateAndRegion(t *testing.T) {
	assembler := NewAssembler(nil)
	events := []*entities.Event{climbingEvent("Jugendklettern", "Gebirge, Klettern, Jugend")}

	result := assembler.Assemble(assemblyLayout(), events)

	row := result.Tables[1].Rows[0]
	if row.Cells[1] != "01.06.24" {
		t.Errorf("reference row date = %q, want shortened start date", row.Cells[1])
	}
	if row.Cells[2] != "Berchtesgaden" {
		t.Errorf("reference row region = %q, want %q", row.Cells[2], "Berchtesgaden")
	}
}

func TestAssembler_Assemble_UnmatchedDropped(t *testing.T) {
	assembler := NewAssembler(nil)
	events := []*entities.Event{climbingEvent("Segeln", "Wasser, Segeln")}

	result := assembler.Assemble(assemblyLayout(), events)

	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Dropped)
	}
	if result.Matched != 0 {
		t.Errorf("Matched = %d, want 0", result.Matched)
	}
	for _, table := range result.Tables {
		if !table.Empty() {
			t.Errorf("table %q should be empty", table.Title)
		}
	}
}

func TestAssembler_Assemble_NoEvents(t *testing.T) {
	assembler := NewAssembler(nil)

	result := assembler.Assemble(assemblyLayout(), nil)

	if len(result.Tables) != 2 {
		t.Fatalf("Tables = %d, want one per section", len(result.Tables))
	}
	if result.Matched != 0 || result.Dropped != 0 {
		t.Errorf("counts = %d/%d, want 0/0", result.Matched, result.Dropped)
	}
}

func TestAssembler_Assemble_PreservesEventOrder(t *testing.T) {
	assembler := NewAssembler(nil)
	events := []*entities.Event{
		climbingEvent("Erster", "Gebirge, Klettern"),
		climbingEvent("Zweiter", "Gebirge, Klettern"),
	}

	result := assembler.Assemble(assemblyLayout(), events)

	rows := result.Tables[0].Rows
	if rows[0].Cells[0] != "Erster" || rows[1].Cells[0] != "Zweiter" {
		t.Errorf("rows out of order: %q, %q", rows[0].Cells[0], rows[1].Cells[0])
	}
}
