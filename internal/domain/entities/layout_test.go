package entities

import "testing"

func validLayout() *Layout {
	return &Layout{
		Title:      "Kursplan",
		PageSize:   "A4",
		TableWidth: 178,
		Columns: []Column{
			{Title: "Kurs", Tags: []string{TagName}, Width: 30},
			{Title: "Beschreibung", Source: SourceDescription, Width: 0},
			{Title: "Leitung", Tags: []string{TagResponsible}, Width: 20},
		},
		Sections: []Section{
			{Title: "Klettern", Activities: []string{"Klettern"}},
		},
		Texts: DefaultTexts(),
	}
}

func TestLayout_Validate_Valid(t *testing.T) {
	if err := validLayout().Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLayout_Validate_NoColumns(t *testing.T) {
	layout := validLayout()
	layout.Columns = nil

	if err := layout.Validate(); err == nil {
		t.Error("Validate() should reject a layout without columns")
	}
}

func TestLayout_Validate_NoSections(t *testing.T) {
	layout := validLayout()
	layout.Sections = nil

	if err := layout.Validate(); err == nil {
		t.Error("Validate() should reject a layout without sections")
	}
}

func TestLayout_Validate_TwoFlexibleColumns(t *testing.T) {
	layout := validLayout()
	layout.Columns[2].Width = 0

	if err := layout.Validate(); err == nil {
		t.Error("Validate() should reject two flexible columns")
	}
}

func TestLayout_Validate_WidthsExceedTable(t *testing.T) {
	layout := validLayout()
	layout.Columns[0].Width = 200

	if err := layout.Validate(); err == nil {
		t.Error("Validate() should reject fixed widths wider than the table")
	}
}

func TestLayout_Validate_DuplicateSectionTitles(t *testing.T) {
	layout := validLayout()
	layout.Sections = append(layout.Sections, layout.Sections[0])

	if err := layout.Validate(); err == nil {
		t.Error("Validate() should reject duplicate section titles")
	}
}

func TestLayout_ColumnWidths_FlexibleColumn(t *testing.T) {
	layout := validLayout()

	widths := layout.ColumnWidths()
	if widths[0] != 30 || widths[2] != 20 {
		t.Errorf("ColumnWidths() = %v, fixed widths changed", widths)
	}
	if widths[1] != 178-30-20 {
		t.Errorf("ColumnWidths()[1] = %v, want %v", widths[1], 178-30-20)
	}
}

func TestSection_Matches(t *testing.T) {
	section := Section{
		Title:      "Klettern im Gebirge",
		Locations:  []string{"Gebirge"},
		Activities: []string{"Klettern"},
	}

	cases := []struct {
		name       string
		categories []string
		want       bool
	}{
		{"both match", []string{"Gebirge", "Klettern"}, true},
		{"location only", []string{"Gebirge", "Wandern"}, false},
		{"activity only", []string{"Halle", "Klettern"}, false},
		{"no categories", nil, false},
	}
	for _, c := range cases {
		if got := section.Matches(c.categories); got != c.want {
			t.Errorf("%s: Matches(%v) = %v, want %v", c.name, c.categories, got, c.want)
		}
	}
}

func TestSection_Matches_EmptyFilterIsWildcard(t *testing.T) {
	section := Section{Title: "Bouldern", Activities: []string{"Bouldern"}}

	if !section.Matches([]string{"Bouldern"}) {
		t.Error("empty locations filter should match any location")
	}
}
