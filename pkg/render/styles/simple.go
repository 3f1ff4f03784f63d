package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	// minLabelSpan is the narrowest angular width (degrees) that still gets
	// an inline label; thinner sectors rely on the hover label.
	minLabelSpan = 12.0

	labelFontSize = 12.0
)

// Simple renders flat sectors with white separators and plain labels.
type Simple struct{}

// RenderDefs writes nothing; the simple style needs no defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderSector writes a single <path> element for the sector. Zero-span
// sectors produce no output.
func (Simple) RenderSector(buf *bytes.Buffer, s Sector) {
	if s.Span <= 0 {
		return
	}
	fmt.Fprintf(buf,
		"  <path id=\"arc-%s\" class=\"arc\" d=\"%s\" fill=\"%s\" stroke=\"white\" stroke-width=\"2\" data-label=\"%s\"/>\n",
		EscapeXML(s.ID), s.PathD, EscapeXML(s.Color), EscapeXML(s.Label))
}

// RenderLabel writes the sector's name at the band midpoint. Sectors
// narrower than minLabelSpan are skipped.
func (Simple) RenderLabel(buf *bytes.Buffer, s Sector) {
	if s.Span < minLabelSpan {
		return
	}
	fmt.Fprintf(buf,
		"  <text class=\"arc-label\" data-arc=\"%s\" x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" dominant-baseline=\"middle\" font-size=\"%.0f\" font-family=\"sans-serif\" pointer-events=\"none\">%s</text>\n",
		EscapeXML(s.ID), s.LX, s.LY, labelFontSize, EscapeXML(s.Name))
}

// EscapeXML escapes s for inclusion in SVG attribute or text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Ensure Simple implements Style.
var _ Style = Simple{}
