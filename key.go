package papertrail

import "fmt"

// Key identifies the drawing surface for one part of one question.
//
// SectionID is nil for documents without sections. A part in a document
// without sections has a different key than the same question and part
// ids under section 0.
type Key struct {
	SectionID  *int
	QuestionID int
	PartID     int
}

// NewKey creates a key for a document without sections.
func NewKey(questionID, partID int) Key {
	return Key{QuestionID: questionID, PartID: partID}
}

// NewSectionKey creates a key for a part within a section.
func NewSectionKey(sectionID, questionID, partID int) Key {
	return Key{SectionID: &sectionID, QuestionID: questionID, PartID: partID}
}

// String returns the canonical storage key,
// e.g. "section_0_q1_p2" or "q1_p2".
func (k Key) String() string {
	if k.SectionID != nil {
		return fmt.Sprintf("section_%d_q%d_p%d", *k.SectionID, k.QuestionID, k.PartID)
	}
	return fmt.Sprintf("q%d_p%d", k.QuestionID, k.PartID)
}
