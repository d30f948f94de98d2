package canvas

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"image/png"
	"strings"

	papertrail "github.com/Tolverne/papertrail2"
)

const pngDataPrefix = "data:image/png;base64,"

// EncodeSVG serializes the canvas raster as a self-contained SVG document
// wrapping the pixel content as an embedded PNG image.
//
// The result is a static snapshot: strokes are no longer individually
// editable once saved.
func EncodeSVG(c *Canvas) (string, error) {
	var buf bytes.Buffer
	err := c.EncodePNG(&buf)
	if err != nil {
		return "", papertrail.Wrap(err, "encode canvas raster")
	}

	data := base64.StdEncoding.EncodeToString(buf.Bytes())
	w := c.Width()
	h := c.Height()

	return fmt.Sprintf(
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg"><image width="%d" height="%d" href="%s%s"/></svg>`,
		w, h, w, h, pngDataPrefix, data), nil
}

type svgDoc struct {
	XMLName xml.Name  `xml:"svg"`
	Width   int       `xml:"width,attr"`
	Height  int       `xml:"height,attr"`
	Image   *svgImage `xml:"image"`
}

type svgImage struct {
	Href string `xml:"href,attr"`
}

// DecodeSVG extracts the raster snapshot from an SVG document produced by
// EncodeSVG. Returns a format error if the document does not contain an
// embedded PNG image.
func DecodeSVG(data string) (image.Image, error) {
	var doc svgDoc
	err := xml.Unmarshal([]byte(data), &doc)
	if err != nil {
		return nil, papertrail.NewFormatError("not a valid SVG document: %v", err)
	}

	if doc.Image == nil {
		return nil, papertrail.NewFormatError("no image found in SVG")
	}

	href := doc.Image.Href
	if !strings.HasPrefix(href, pngDataPrefix) {
		return nil, papertrail.NewFormatError("embedded image is not a PNG data URI")
	}

	raw, err := base64.StdEncoding.DecodeString(href[len(pngDataPrefix):])
	if err != nil {
		return nil, papertrail.NewFormatError("invalid image data: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, papertrail.NewFormatError("invalid PNG data: %v", err)
	}

	return img, nil
}
