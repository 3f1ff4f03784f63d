// Package sink renders computed sunburst layouts to output formats.
//
// The SVG sink emits a self-contained document with a small hover script:
// entering a sector swaps the center label to the sector's "name: value"
// text and leaving restores the root label, mirroring the behavior of
// [github.com/helioviz/sunburst/pkg/interaction.Layer] for static output.
// The JSON sink serializes the arc list with resolved path data for
// external tooling and round-trip rendering.
package sink

import (
	"bytes"
	"fmt"

	"github.com/helioviz/sunburst/pkg/interaction"
	"github.com/helioviz/sunburst/pkg/render/styles"
	"github.com/helioviz/sunburst/pkg/sunburst"
)

const arcInteractionCSS = `
    .arc { transition: opacity 0.15s ease; cursor: pointer; }
    .arc.dim { opacity: 0.55; }`

const arcInteractionJS = `
    var label = document.getElementById('center-label');
    var home = label ? label.textContent : '';
    var arcs = document.querySelectorAll('.arc');
    arcs.forEach(function (el) {
      el.addEventListener('mouseenter', function () {
        if (label) label.textContent = el.dataset.label;
        arcs.forEach(function (o) { o.classList.toggle('dim', o !== el); });
      });
      el.addEventListener('mouseleave', function () {
        if (label) label.textContent = home;
        arcs.forEach(function (o) { o.classList.remove('dim'); });
      });
    });`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height   float64
	style           styles.Style
	labels          bool
	centerLabel     string
	splitFullCircle bool
}

// WithSize sets the viewport dimensions. The chart is centered in the frame.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithStyle selects the visual style. Defaults to [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLabels draws inline sector labels in addition to the hover label.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithCenterLabel sets the text shown in the chart center when nothing is
// hovered, typically the root node's name.
func WithCenterLabel(s string) SVGOption { return func(r *svgRenderer) { r.centerLabel = s } }

// WithSplitFullCircle renders 360° sectors as two half arcs so they produce
// a visible fill. Without this option such sectors keep their degenerate
// single-sweep path, matching the layout contract.
func WithSplitFullCircle() SVGOption { return func(r *svgRenderer) { r.splitFullCircle = true } }

// RenderSVG renders the arc list as a self-contained SVG document.
// Zero-width arcs are skipped. The arc order of the input is preserved in
// the document, so siblings stack in layout order.
func RenderSVG(arcs []sunburst.Arc, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	cx, cy := r.width/2, r.height/2

	sectors := buildSectors(arcs, cx, cy, r.splitFullCircle)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	r.style.RenderDefs(&buf)

	for _, s := range sectors {
		r.style.RenderSector(&buf, s)
	}
	if r.labels {
		for _, s := range sectors {
			r.style.RenderLabel(&buf, s)
		}
	}

	renderCenterLabel(&buf, cx, cy, r.centerLabel)
	renderArcInteraction(&buf)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{width: 600, height: 600, style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func buildSectors(arcs []sunburst.Arc, cx, cy float64, splitFullCircle bool) []styles.Sector {
	sectors := make([]styles.Sector, 0, len(arcs))
	for _, a := range arcs {
		if !a.Visible() {
			continue
		}
		path := sunburst.ArcPath(a, cx, cy)
		if path.FullCircle && splitFullCircle {
			path = sunburst.BuildFullCirclePath(cx, cy, a.OuterRadius, a.InnerRadius, a.StartAngle)
		}
		centroid := sunburst.Centroid(a, cx, cy)
		sectors = append(sectors, styles.Sector{
			ID:         a.ID(),
			Name:       a.Node.Name,
			Value:      a.Node.Weight(),
			Label:      interaction.ArcLabel(a),
			PathD:      path.D,
			Color:      a.Color,
			LX:         centroid.X,
			LY:         centroid.Y,
			Span:       a.Span(),
			FullCircle: path.FullCircle,
		})
	}
	return sectors
}

func renderCenterLabel(buf *bytes.Buffer, cx, cy float64, label string) {
	if label == "" {
		return
	}
	fmt.Fprintf(buf,
		"  <text id=\"center-label\" x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" dominant-baseline=\"middle\" font-size=\"16\" font-family=\"sans-serif\" font-weight=\"bold\">%s</text>\n",
		cx, cy, styles.EscapeXML(label))
}

func renderArcInteraction(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", arcInteractionCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", arcInteractionJS)
}
