package model

// NoProgress is the last-question value for a user with no stored record.
// Incrementing it yields index 0, the first question.
const NoProgress = -1

// UserProgress is the per-user record in the progress store. The record is
// created implicitly by the first answer write and only ever grows; there is
// no deletion path.
type UserProgress struct {
	UserID         string         `bson:"_id" json:"userId"`
	LastQuestionID int            `bson:"lastQuestionId" json:"lastQuestionId"`
	Answers        map[string]int `bson:"answers" json:"answers"`
}

// NextQuestion is the outcome of the next-question pipeline: either the
// question at the computed index or the end-of-test marker.
type NextQuestion struct {
	IsComplete   bool   `json:"isComplete"`
	QuestionID   int    `json:"questionId"`
	QuestionText string `json:"questionText"`
}

// EndOfTest returns the terminal marker served once the questionnaire has no
// further entries.
func EndOfTest() *NextQuestion {
	return &NextQuestion{
		IsComplete:   true,
		QuestionID:   EndOfTestQuestionID,
		QuestionText: "",
	}
}
