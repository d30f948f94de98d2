package latex

import (
	"strings"
	"testing"
)

func TestRenderFormatting(t *testing.T) {
	in := `\vspace{1cm}\textbf{bold} and \textit{italic} and \emph{emphasis}`
	out := Render(in)

	if strings.Contains(out, `\vspace`) {
		t.Errorf("spacing directive not stripped: %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("bold not rendered: %q", out)
	}
	if !strings.Contains(out, "<em>italic</em>") || !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("italic/emphasis not rendered: %q", out)
	}
}

func TestRenderIdempotent(t *testing.T) {
	in := `\textbf{b} $x^2$ \href{https://example.com}{link}`
	once := Render(in)
	twice := Render(once)
	if once != twice {
		t.Errorf("Render is not idempotent:\n%q\n%q", once, twice)
	}
}

func TestRenderMathPassthrough(t *testing.T) {
	in := `Solve $\int_0^1 x \, dx$ and \[ y = mx + b \]`
	out := Render(in)
	if out != in {
		t.Errorf("math markup must pass through untouched: %q", out)
	}
}

func TestRenderYoutubeLink(t *testing.T) {
	out := Render(`\href{https://youtu.be/abc123}{Watch}`)

	if !strings.Contains(out, "youtube.com/embed/abc123") {
		t.Errorf("expected embedded player, got %q", out)
	}
	if strings.Contains(out, "<a ") {
		t.Errorf("video link must not render as plain link: %q", out)
	}

	out = Render(`\href{https://www.youtube.com/watch?v=dQw4w9WgXcQ}{Watch}`)
	if !strings.Contains(out, "youtube.com/embed/dQw4w9WgXcQ") {
		t.Errorf("watch?v= URL not recognized: %q", out)
	}
}

func TestRenderVimeoLink(t *testing.T) {
	out := Render(`\href{https://vimeo.com/12345}{Watch}`)
	if !strings.Contains(out, "player.vimeo.com/video/12345") {
		t.Errorf("expected embedded player, got %q", out)
	}
}

func TestRenderVideoFile(t *testing.T) {
	out := Render(`\href{https://example.com/clip.MP4}{Clip}`)
	if !strings.Contains(out, "<video") || !strings.Contains(out, `type="video/mp4"`) {
		t.Errorf("expected video element, got %q", out)
	}
}

func TestRenderPlainLink(t *testing.T) {
	out := Render(`\href{https://example.com/page}{A page}`)
	want := `<a href="https://example.com/page" target="_blank">A page</a>`
	if out != want {
		t.Errorf("unexpected link rendering: %q", out)
	}
}

func TestPlain(t *testing.T) {
	in := `\vspace{2em} \textbf{Solve} the \emph{following} \href{https://example.com}{reference}`
	out := Plain(in)
	want := `Solve the following reference (https://example.com)`
	if out != want {
		t.Errorf("unexpected plain text: %q", out)
	}
}
