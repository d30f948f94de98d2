package latex

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	vspaceRe = regexp.MustCompile(`\\vspace\{[^}]*\}`)
	boldRe   = regexp.MustCompile(`\\textbf\{([^}]*)\}`)
	italicRe = regexp.MustCompile(`\\textit\{([^}]*)\}`)
	emphRe   = regexp.MustCompile(`\\emph\{([^}]*)\}`)
	hrefRe   = regexp.MustCompile(`\\href\{([^}]*)\}\{([^}]*)\}`)

	videoFileRe = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)$`)
	youtubeRe   = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)
	vimeoRe     = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// Render transforms the inline markup of a question or part into an HTML
// fragment. Math expressions are passed through untouched, they are
// typeset in-place by the external math renderer.
//
// Render is a pure function of its input.
func Render(text string) string {
	out := vspaceRe.ReplaceAllString(text, "")
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = emphRe.ReplaceAllString(out, "<em>$1</em>")

	out = hrefRe.ReplaceAllStringFunc(out, func(match string) string {
		m := hrefRe.FindStringSubmatch(match)
		return renderLink(m[1], m[2])
	})

	return out
}

// renderLink decides how a hyperlink is displayed.
// Direct video files become an embedded video element, known video hosts
// become an embedded player, everything else is a plain link.
func renderLink(url, label string) string {
	if videoFileRe.MatchString(url) {
		ext := url[strings.LastIndex(url, ".")+1:]
		return fmt.Sprintf(
			`<video controls width="640"><source src="%s" type="video/%s">Your browser does not support the video tag.</video>`,
			url, strings.ToLower(ext))
	}

	if m := youtubeRe.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf(
			`<iframe width="640" height="360" src="https://www.youtube.com/embed/%s" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>`,
			m[1])
	}

	if m := vimeoRe.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf(
			`<iframe src="https://player.vimeo.com/video/%s" width="640" height="360" frameborder="0" allow="autoplay; fullscreen; picture-in-picture" allowfullscreen></iframe>`,
			m[1])
	}

	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, url, label)
}

// Plain reduces the inline markup to plain text.
// This is the fallback path for PDF rendering when no rich output is
// available: formatting commands are unwrapped, links keep their label
// and math markup is left as-is.
func Plain(text string) string {
	out := vspaceRe.ReplaceAllString(text, "")
	out = boldRe.ReplaceAllString(out, "$1")
	out = italicRe.ReplaceAllString(out, "$1")
	out = emphRe.ReplaceAllString(out, "$1")
	out = hrefRe.ReplaceAllString(out, "$2 ($1)")
	return strings.TrimSpace(out)
}
