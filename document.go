package papertrail

// Mode describes the overall shape of a parsed quiz document.
// A document either consists of a list of sections or, when the source
// contains no section markers, of a flat list of questions.
type Mode int

const (
	// ModeQuestions is a flat list of questions without sections.
	ModeQuestions Mode = iota
	// ModeSections is a list of sections, each with its own questions.
	ModeSections
)

func (m Mode) String() string {
	if m == ModeSections {
		return "sections"
	}
	return "questions"
}

// Document is a fully parsed quiz.
//
// Depending on the Mode, either Sections or Questions is populated,
// never both.
type Document struct {
	Mode      Mode
	Sections  []*Section
	Questions []*Question
}

// Section is a titled group of questions.
// Intro marks a synthetic "Introduction" section that was built from
// content preceding the first section marker.
type Section struct {
	Title     string
	Intro     bool
	Questions []*Question
}

// Question is a single quiz question.
// Text may be empty if the question was entirely decomposed into parts.
type Question struct {
	ID    int
	Text  string
	Parts []*Part
}

// Part is one answerable unit of a question.
// Each part is associated with exactly one drawing surface.
type Part struct {
	ID   int
	Text string
}

// NumQuestions returns the total number of questions across all sections
// or in the flat question list.
func (d *Document) NumQuestions() int {
	if d.Mode == ModeSections {
		n := 0
		for _, s := range d.Sections {
			n += len(s.Questions)
		}
		return n
	}
	return len(d.Questions)
}

// Keys enumerates the drawing keys for every part in document order.
func (d *Document) Keys() []Key {
	keys := make([]Key, 0)

	if d.Mode == ModeSections {
		for i, s := range d.Sections {
			sectionID := i
			for _, q := range s.Questions {
				for _, p := range q.Parts {
					keys = append(keys, Key{SectionID: &sectionID, QuestionID: q.ID, PartID: p.ID})
				}
			}
		}
		return keys
	}

	for _, q := range d.Questions {
		for _, p := range q.Parts {
			keys = append(keys, Key{QuestionID: q.ID, PartID: p.ID})
		}
	}
	return keys
}

// Validate checks the structural invariants of the document:
// question and part ids are dense, 1-based sequences and every question
// has at least one part.
func (d *Document) Validate() error {
	if d.Mode == ModeSections {
		if len(d.Questions) != 0 {
			return NewValidationError("document in sections mode must not have flat questions")
		}
		for _, s := range d.Sections {
			if err := validateQuestions(s.Questions); err != nil {
				return Wrap(err, "section %q", s.Title)
			}
		}
		return nil
	}

	if len(d.Sections) != 0 {
		return NewValidationError("document in questions mode must not have sections")
	}
	return validateQuestions(d.Questions)
}

func validateQuestions(qs []*Question) error {
	for i, q := range qs {
		if q.ID != i+1 {
			return NewValidationError("question id %v at position %v is not sequential", q.ID, i)
		}
		if len(q.Parts) == 0 {
			return NewValidationError("question %v has no parts", q.ID)
		}
		for j, p := range q.Parts {
			if p.ID != j+1 {
				return NewValidationError("part id %v at position %v in question %v is not sequential", p.ID, j, q.ID)
			}
		}
	}
	return nil
}
