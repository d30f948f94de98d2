package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/Tolverne/papertrail2/internal/imaging"
	"github.com/Tolverne/papertrail2/internal/logging"
)

// Entry is one (question, part, drawing) triple to be rendered.
// Drawing may be nil if no answer was drawn for the part.
type Entry struct {
	Section      string
	QuestionID   int
	QuestionText string
	PartID       int
	PartText     string
	Drawing      image.Image
}

// Info carries document metadata for the PDF.
type Info struct {
	Title    string
	Author   string
	Modified time.Time
}

const (
	tsFormat = "2006-01-02 15:04:05"

	pageTop        = 20.0
	marginLeft     = 15.0
	usableWidth    = 170.0 // mm, on an A4 page with our margins
	pageBreakAt    = 270.0 // mm, A4 height is 297
	maxRasterWidth = 680.0 // px, drawings wider than this are downscaled
)

// PDF renders the given entries into a paginated A4 document and writes
// it to the given writer.
//
// Question and part texts are rendered on the plain-text fallback path,
// drawings are embedded as bitmaps flattened onto a white background.
func PDF(w io.Writer, info Info, entries []Entry) error {
	logging.Debug("Render PDF %q with %d entries", info.Title, len(entries))

	pdf := setupPDF(info)

	section := ""
	for _, e := range entries {
		pdf.AddPage()
		y := pageTop

		if e.Section != "" && e.Section != section {
			section = e.Section
			y = addSectionHeading(pdf, section, y)
		}

		y = addText(pdf, fmt.Sprintf("Question %d: %s", e.QuestionID, e.QuestionText), true, y)

		if e.PartText != "" {
			y = addText(pdf, fmt.Sprintf("Part %d: %s", e.PartID, e.PartText), false, y)
		}
		y += 8

		if e.Drawing != nil {
			err := addDrawing(pdf, e.Drawing, y)
			if err != nil {
				// a bad raster must not sink the whole document
				logging.Warning("Failed to add drawing for question %d part %d: %v",
					e.QuestionID, e.PartID, err)
			}
		}
	}

	return pdf.Output(w)
}

// Filename builds the output file name for an export:
// "<base>-<name>-<date>.pdf" with whitespace in the name replaced.
func Filename(base, displayName string, now time.Time) string {
	if base == "" {
		base = "quiz"
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if displayName == "" {
		displayName = "student"
	}
	name := strings.Join(strings.Fields(displayName), "_")
	return fmt.Sprintf("%s-%s-%s.pdf", base, name, now.Format("2006-01-02"))
}

func setupPDF(info Info) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")

	pdf.SetMargins(marginLeft, 8, marginLeft)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 11)
	pdf.SetProducer("papertrail", true)

	if info.Title != "" {
		pdf.SetTitle(info.Title, true)
	}
	if info.Author != "" {
		pdf.SetAuthor(info.Author, true)
	}
	if !info.Modified.IsZero() {
		modified := info.Modified.UTC()
		pdf.SetModificationDate(modified)
		pdf.SetCreationDate(modified)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetX(marginLeft)
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v  |  %v",
			pdf.PageNo(), info.Author, info.Modified.Local().Format(tsFormat))
		pdf.SetTextColor(0, 0, 0)
	})

	return pdf
}

func addSectionHeading(pdf *gofpdf.Fpdf, title string, y float64) float64 {
	pdf.SetY(y)
	pdf.SetFont("helvetica", "B", 14)
	pdf.MultiCell(usableWidth, 7, title, "", "L", false)
	pdf.SetFont("helvetica", "", 11)
	return pdf.GetY() + 4
}

func addText(pdf *gofpdf.Fpdf, text string, bold bool, y float64) float64 {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetY(y)
	pdf.SetFont("helvetica", style, 11)
	pdf.MultiCell(usableWidth, 6, text, "", "L", false)
	pdf.SetFont("helvetica", "", 11)
	return pdf.GetY() + 2
}

func addDrawing(pdf *gofpdf.Fpdf, drawing image.Image, y float64) error {
	// the PDF page is white, flatten the transparent raster onto white
	img := image.Image(imaging.Flatten(drawing, color.White))
	if float64(img.Bounds().Dx()) > maxRasterWidth {
		img = imaging.Scale(img, maxRasterWidth)
	}

	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return err
	}

	w := float64(img.Bounds().Dx()) * 0.35
	if w > usableWidth {
		w = usableWidth
	}
	h := float64(img.Bounds().Dy()) * (w / float64(img.Bounds().Dx()))

	if y+h > pageBreakAt {
		pdf.AddPage()
		y = pageTop
	}

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, marginLeft, y, w, h, false, opts, 0, "")

	return nil
}
