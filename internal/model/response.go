package model

// SurveyType distinguishes the two questionnaire audiences
type SurveyType string

const (
	SurveyTypeStudent SurveyType = "student"
	SurveyTypeTeacher SurveyType = "teacher"
)

// SurveyResponse is a completed, immutable submission. Answers maps
// question field names to the selected option text; custom survey
// questions use keys prefixed with "custom_".
type SurveyResponse struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	SchoolCode  string            `json:"schoolCode" bson:"schoolCode"`
	SurveyCode  string            `json:"surveyCode" bson:"surveyCode"`
	SurveyType  SurveyType        `json:"surveyType" bson:"surveyType"`
	Course      string            `json:"course" bson:"course"`
	Letter      string            `json:"letter" bson:"letter"`
	Answers     map[string]string `json:"answers" bson:"answers"`
	SubmittedAt int64             `json:"submittedAt" bson:"submittedAt"` // epoch millis
}

// CustomFieldPrefix marks answer keys added by custom surveys on top of
// the standard catalogue.
const CustomFieldPrefix = "custom_"
