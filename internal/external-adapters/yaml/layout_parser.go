// Package yaml provides YAML-based layout parsing and repository implementations.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eventpdf/internal/domain/entities"
)

// yamlLayout represents the raw YAML structure
type yamlLayout struct {
	Title         string        `yaml:"title"`
	PageSize      string        `yaml:"page_size"`
	Orientation   string        `yaml:"orientation"`
	TableWidthMM  float64       `yaml:"table_width_mm"`
	Font          yamlFont      `yaml:"font"`
	IdentifierTag string        `yaml:"identifier_tag"`
	Columns       []yamlColumn  `yaml:"columns"`
	Sections      []yamlSection `yaml:"sections"`
	Texts         yamlTexts     `yaml:"texts"`
}

type yamlFont struct {
	Family        string  `yaml:"family"`
	SizePt        float64 `yaml:"size_pt"`
	HeadingSizePt float64 `yaml:"heading_size_pt"`
	SectionSizePt float64 `yaml:"section_size_pt"`
	LineHeightMM  float64 `yaml:"line_height_mm"`
}

type yamlColumn struct {
	Title   string   `yaml:"title"`
	Tags    []string `yaml:"tags"`
	Source  string   `yaml:"source"`
	WidthMM float64  `yaml:"width_mm"`
}

type yamlSection struct {
	Title      string   `yaml:"title"`
	Locations  []string `yaml:"locations"`
	Activities []string `yaml:"activities"`
}

type yamlTexts struct {
	OnRequest string `yaml:"on_request"`
	None      string `yaml:"none"`
	And       string `yaml:"and"`
	See       string `yaml:"see"`
	MoreInfo  string `yaml:"more_info"`
}

// LayoutParser parses YAML layout files
type LayoutParser struct{}

// NewLayoutParser creates a new YAML parser
func NewLayoutParser() *LayoutParser {
	return &LayoutParser{}
}

// ParseFile parses a YAML layout file into a Layout entity
func (p *LayoutParser) ParseFile(filePath string) (*entities.Layout, error) {
	//nolint:gosec // G304: filePath is a layout path from the repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Layout entity, applying defaults for page
// geometry, fonts, and texts, and validating the result.
func (p *LayoutParser) Parse(data []byte) (*entities.Layout, error) {
	var yamlDef yamlLayout
	if err := yaml.Unmarshal(data, &yamlDef); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if yamlDef.Title == "" {
		return nil, fmt.Errorf("layout must have a title")
	}

	layout := &entities.Layout{
		Title:         yamlDef.Title,
		PageSize:      yamlDef.PageSize,
		Orientation:   yamlDef.Orientation,
		TableWidth:    yamlDef.TableWidthMM,
		Font:          convertFont(yamlDef.Font),
		IdentifierTag: yamlDef.IdentifierTag,
		Columns:       convertColumns(yamlDef.Columns),
		Sections:      convertSections(yamlDef.Sections),
		Texts:         convertTexts(yamlDef.Texts),
	}
	applyDefaults(layout)

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %q: %w", layout.Title, err)
	}

	return layout, nil
}

func convertFont(yf yamlFont) entities.FontConfig {
	return entities.FontConfig{
		Family:      yf.Family,
		Size:        yf.SizePt,
		HeadingSize: yf.HeadingSizePt,
		SectionSize: yf.SectionSizePt,
		LineHeight:  yf.LineHeightMM,
	}
}

func convertColumns(ycs []yamlColumn) []entities.Column {
	columns := make([]entities.Column, 0, len(ycs))
	for _, yc := range ycs {
		source := yc.Source
		if source == "" {
			source = entities.SourceTags
		}
		columns = append(columns, entities.Column{
			Title:  yc.Title,
			Tags:   yc.Tags,
			Source: source,
			Width:  yc.WidthMM,
		})
	}
	return columns
}

func convertSections(yss []yamlSection) []entities.Section {
	sections := make([]entities.Section, 0, len(yss))
	for _, ys := range yss {
		sections = append(sections, entities.Section{
			Title:      ys.Title,
			Locations:  ys.Locations,
			Activities: ys.Activities,
		})
	}
	return sections
}

func convertTexts(yt yamlTexts) entities.Texts {
	texts := entities.DefaultTexts()
	if yt.OnRequest != "" {
		texts.OnRequest = yt.OnRequest
	}
	if yt.None != "" {
		texts.None = yt.None
	}
	if yt.And != "" {
		texts.And = yt.And
	}
	if yt.See != "" {
		texts.See = yt.See
	}
	if yt.MoreInfo != "" {
		texts.MoreInfo = yt.MoreInfo
	}
	return texts
}

func applyDefaults(layout *entities.Layout) {
	if layout.PageSize == "" {
		layout.PageSize = "A4"
	}
	if layout.Orientation == "" {
		layout.Orientation = "portrait"
	}
	if layout.TableWidth == 0 {
		layout.TableWidth = 178
	}
	if layout.IdentifierTag == "" {
		layout.IdentifierTag = entities.DefaultIDTag
	}
	defaults := entities.DefaultFont()
	if layout.Font.Family == "" {
		layout.Font.Family = defaults.Family
	}
	if layout.Font.Size == 0 {
		layout.Font.Size = defaults.Size
	}
	if layout.Font.HeadingSize == 0 {
		layout.Font.HeadingSize = defaults.HeadingSize
	}
	if layout.Font.SectionSize == 0 {
		layout.Font.SectionSize = defaults.SectionSize
	}
	if layout.Font.LineHeight == 0 {
		layout.Font.LineHeight = defaults.LineHeight
	}
}
