package latex

import (
	"regexp"
	"strings"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/internal/logging"
)

var (
	sectionRe   = regexp.MustCompile(`\\section\*?\{([^}]+)\}`)
	questionsRe = regexp.MustCompile(`(?s)\\begin\{questions\}(.*?)\\end\{questions\}`)
	questionRe  = regexp.MustCompile(`\\question\s+`)
	partsRe     = regexp.MustCompile(`(?s)(.*?)\\begin\{parts\}(.*?)\\end\{parts\}`)
	partRe      = regexp.MustCompile(`\\part\s+`)
)

// Parse converts raw quiz markup into a document tree.
//
// Parsing is best-effort and never fails. Missing or unterminated markers
// degrade to fewer entities: a document without section markers becomes a
// flat list of questions, content without a questions environment yields
// zero questions.
func Parse(raw string) *papertrail.Document {
	sections := parseSections(raw)

	if len(sections) != 0 {
		return &papertrail.Document{
			Mode:     papertrail.ModeSections,
			Sections: sections,
		}
	}

	return &papertrail.Document{
		Mode:      papertrail.ModeQuestions,
		Questions: parseQuestions(raw),
	}
}

func parseSections(content string) []*papertrail.Section {
	marks := sectionRe.FindAllStringSubmatchIndex(content, -1)
	logging.Debug("Found %d section markers", len(marks))

	if len(marks) == 0 {
		return nil
	}

	sections := make([]*papertrail.Section, 0, len(marks))

	// Content before the first marker becomes a synthetic "Introduction"
	// section, but only if it contains at least one question.
	if marks[0][0] > 0 {
		intro := parseQuestions(content[:marks[0][0]])
		if len(intro) != 0 {
			sections = append(sections, &papertrail.Section{
				Title:     "Introduction",
				Intro:     true,
				Questions: intro,
			})
		}
	}

	for i, m := range marks {
		title := content[m[2]:m[3]]

		end := len(content)
		if i < len(marks)-1 {
			end = marks[i+1][0]
		}

		sections = append(sections, &papertrail.Section{
			Title:     title,
			Questions: parseQuestions(content[m[0]:end]),
		})
	}

	return sections
}

func parseQuestions(content string) []*papertrail.Question {
	questions := make([]*papertrail.Question, 0)

	m := questionsRe.FindStringSubmatch(content)
	if m == nil {
		return questions
	}

	for _, block := range splitBlocks(m[1], questionRe) {
		q := &papertrail.Question{
			ID:    len(questions) + 1,
			Parts: make([]*papertrail.Part, 0, 1),
		}

		pm := partsRe.FindStringSubmatch(block)
		if pm != nil {
			q.Text = strings.TrimSpace(pm[1])
			for _, part := range splitBlocks(pm[2], partRe) {
				q.Parts = append(q.Parts, &papertrail.Part{
					ID:   len(q.Parts) + 1,
					Text: part,
				})
			}
		} else {
			q.Text = block
		}

		// every question has at least one part
		if len(q.Parts) == 0 {
			q.Parts = append(q.Parts, &papertrail.Part{ID: 1})
		}

		questions = append(questions, q)
	}

	return questions
}

// splitBlocks splits content on the given marker and drops blocks that
// are empty after trimming.
func splitBlocks(content string, marker *regexp.Regexp) []string {
	blocks := make([]string, 0)
	for _, b := range marker.Split(content, -1) {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
