package fpdf

// style mirrors the visual roles of the original tables: a filled, centered
// document heading, bold section titles, and plain left-aligned event rows,
// all boxed with an inner grid.
type style struct {
	fontStyle string
	align     string
	fill      bool
	fillRGB   [3]int
}

var (
	// honeydew, the heading background of the printed tables
	headingStyle = style{fontStyle: "B", align: "C", fill: true, fillRGB: [3]int{240, 255, 240}}

	sectionStyle = style{fontStyle: "B", align: "L"}
	columnStyle  = style{fontStyle: "B", align: "C"}
	normalStyle  = style{align: "L"}

	// reference rows point at another section and are set apart in italics
	referenceStyle = style{fontStyle: "I", align: "L"}
)

// Cell padding and rule width in millimeters
const (
	cellPadding = 1.0
	ruleWidth   = 0.2
)
