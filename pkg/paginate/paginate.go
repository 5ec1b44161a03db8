// Package paginate assembles rasterized report sections into fixed-size
// page images. The assembler is a greedy, order-preserving bin packer with
// a single dimension of freedom: vertical placement. Sections are never
// reordered, and a section is only cut across a page boundary when it is
// explicitly marked splittable.
package paginate

import (
	"fmt"
	"image"
	"image/color"
	imgdraw "image/draw"
	"math"

	"golang.org/x/image/draw"
)

// Geometry describes the physical page in device pixels: full page size,
// a uniform margin on all four edges, and the fixed vertical gap inserted
// between consecutive sections.
type Geometry struct {
	PageWidth  int
	PageHeight int
	Margin     int
	SectionGap int
}

// A4 millimeter dimensions and the uniform margin used for exports.
const (
	a4WidthMM  = 210
	a4HeightMM = 297
	marginMM   = 10
	gapMM      = 4
)

// A4 returns portrait A4 geometry at the given dots-per-inch.
func A4(dpi int) Geometry {
	px := func(mm int) int {
		return int(math.Round(float64(mm) / 25.4 * float64(dpi)))
	}
	return Geometry{
		PageWidth:  px(a4WidthMM),
		PageHeight: px(a4HeightMM),
		Margin:     px(marginMM),
		SectionGap: px(gapMM),
	}
}

// ContentWidth returns the usable horizontal extent of a page.
func (g Geometry) ContentWidth() int { return g.PageWidth - 2*g.Margin }

// ContentHeight returns the usable vertical extent of a page.
func (g Geometry) ContentHeight() int { return g.PageHeight - 2*g.Margin }

func (g Geometry) validate() error {
	if g.ContentWidth() <= 0 || g.ContentHeight() <= 0 {
		return fmt.Errorf("%w: %dx%d page with %dpx margin leaves no content area",
			ErrBadGeometry, g.PageWidth, g.PageHeight, g.Margin)
	}
	if g.SectionGap < 0 {
		return fmt.Errorf("%w: negative section gap", ErrBadGeometry)
	}
	return nil
}

// Section is one logical report unit ready for placement. A nil Raster
// marks a section whose capture failed; the assembler skips it and keeps
// going so one missing section never aborts the whole document.
type Section struct {
	Title    string
	Raster   image.Image
	MaySplit bool
}

// Placement records where (a slice of) a section landed.
type Placement struct {
	Section string
	Page    int // zero-based page index
	X, Y    int // pixels, page coordinates
	Width   int
	Height  int
}

// Page is one emitted page image. Immutable once the document is returned.
type Page struct {
	Number int // one-based
	Image  *image.RGBA
}

// Document is the assembled output: ordered pages, every placement made,
// and the titles of sections skipped because their raster was missing.
type Document struct {
	Pages      []*Page
	Placements []Placement
	Skipped    []string
}

// assembler tracks the single cursor the algorithm runs on.
type assembler struct {
	geo     Geometry
	doc     *Document
	page    *image.RGBA
	cursorY int
}

// Assemble lays the sections out onto pages, in order.
//
// Per section: scale it to fill the content width. If the scaled height
// exceeds one page and the section may not split, shrink it further so the
// whole section fits exactly one page (trading width fill for single-page
// placement). If it may split, slice it into content-height bands with no
// pixel row duplicated or omitted. Otherwise place it at the cursor,
// opening a new page first when the remaining space is too short. No
// trailing blank page is emitted.
func Assemble(sections []Section, geo Geometry) (*Document, error) {
	if err := geo.validate(); err != nil {
		return nil, err
	}

	a := &assembler{geo: geo, doc: &Document{}}
	for _, s := range sections {
		if s.Raster == nil || s.Raster.Bounds().Dx() <= 0 || s.Raster.Bounds().Dy() <= 0 {
			a.doc.Skipped = append(a.doc.Skipped, s.Title)
			continue
		}
		a.place(s)
	}
	return a.doc, nil
}

func (a *assembler) place(s Section) {
	contentW := a.geo.ContentWidth()
	contentH := a.geo.ContentHeight()
	bounds := s.Raster.Bounds()
	rasterW := bounds.Dx()
	rasterH := bounds.Dy()

	scale := float64(contentW) / float64(rasterW)
	scaledH := int(math.Round(float64(rasterH) * scale))

	if scaledH > contentH {
		if !s.MaySplit {
			a.placeShrunk(s, rasterW, rasterH)
			return
		}
		a.placeSplit(s, scale, scaledH, rasterH)
		return
	}

	if a.cursorY+scaledH > contentH {
		a.newPage()
	}
	a.draw(s.Title, s.Raster, bounds, a.geo.Margin, a.cursorY, contentW, scaledH)
	a.cursorY += scaledH + a.geo.SectionGap
}

// placeShrunk reduces the scale so the entire section fits one page,
// centered horizontally in the unused width.
func (a *assembler) placeShrunk(s Section, rasterW, rasterH int) {
	contentH := a.geo.ContentHeight()
	scale := float64(contentH) / float64(rasterH)
	scaledW := int(math.Round(float64(rasterW) * scale))

	if a.cursorY > 0 {
		a.newPage()
	}
	x := a.geo.Margin + (a.geo.ContentWidth()-scaledW)/2
	a.draw(s.Title, s.Raster, s.Raster.Bounds(), x, 0, scaledW, contentH)
	a.cursorY = contentH + a.geo.SectionGap
}

// placeSplit slices an oversized splittable section into content-height
// bands. Band boundaries are computed in source rows from the same scale
// factor, so consecutive bands tile the raster exactly: the slice count is
// ceil(scaledHeight/contentHeight) and every pixel row lands on exactly
// one page.
func (a *assembler) placeSplit(s Section, scale float64, scaledH, rasterH int) {
	contentW := a.geo.ContentWidth()
	contentH := a.geo.ContentHeight()
	bounds := s.Raster.Bounds()

	if a.cursorY > 0 {
		a.newPage()
	}

	bands := (scaledH + contentH - 1) / contentH
	for i := 0; i < bands; i++ {
		srcTop := bounds.Min.Y + int(float64(i*contentH)/scale)
		srcBottom := bounds.Min.Y + int(float64((i+1)*contentH)/scale)
		if i == bands-1 || srcBottom > bounds.Max.Y {
			srcBottom = bounds.Max.Y
		}

		bandH := contentH
		if i == bands-1 {
			bandH = scaledH - (bands-1)*contentH
		}

		if i > 0 {
			a.newPage()
		}
		src := image.Rect(bounds.Min.X, srcTop, bounds.Max.X, srcBottom)
		a.draw(s.Title, s.Raster, src, a.geo.Margin, 0, contentW, bandH)
		a.cursorY = bandH + a.geo.SectionGap
	}
}

// draw rasterizes one placement onto the current page and records it.
func (a *assembler) draw(title string, src image.Image, srcRect image.Rectangle, x, y, w, h int) {
	if a.page == nil {
		a.openPage()
	}
	dst := image.Rect(x, a.geo.Margin+y, x+w, a.geo.Margin+y+h)
	draw.CatmullRom.Scale(a.page, dst, src, srcRect, draw.Over, nil)

	a.doc.Placements = append(a.doc.Placements, Placement{
		Section: title,
		Page:    len(a.doc.Pages) - 1,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
	})
}

func (a *assembler) openPage() {
	canvas := image.NewRGBA(image.Rect(0, 0, a.geo.PageWidth, a.geo.PageHeight))
	imgdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, imgdraw.Src)
	a.page = canvas
	a.doc.Pages = append(a.doc.Pages, &Page{Number: len(a.doc.Pages) + 1, Image: canvas})
}

func (a *assembler) newPage() {
	a.page = nil
	a.cursorY = 0
	a.openPage()
}
