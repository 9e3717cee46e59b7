package model

// Question is one entry of the six factors inventory. Its ID is the 0-based
// position in the catalog and doubles as the field name under which the
// answer code is stored in the user's progress record.
type Question struct {
	ID     int               `json:"id"`
	Labels map[string]string `json:"labels"`
}

// Label returns the question text for the given language, falling back to
// the default language when no label exists for it.
func (q *Question) Label(lang, defaultLang string) string {
	if label, ok := q.Labels[lang]; ok {
		return label
	}
	return q.Labels[defaultLang]
}

// AnswerCodes maps language -> localized answer phrase -> numeric code.
type AnswerCodes map[string]map[string]int

// Answer codes form a symmetric disagree/neutral/agree scale.
const (
	AnswerCodeDisagree = -3
	AnswerCodeNeutral  = 0
	AnswerCodeAgree    = 3

	// AnswerCodeUnknown is persisted when the answer phrase (or its
	// language) has no entry in the code table. The webhook never rejects
	// an answer, so the miss has to stay visible in the stored record.
	AnswerCodeUnknown = -100
)

// EndOfTestQuestionID is returned in place of a real question index once the
// computed next index falls outside the catalog.
const EndOfTestQuestionID = -1
