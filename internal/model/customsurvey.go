package model

// CustomQuestion is a school-authored question inside a custom survey
type CustomQuestion struct {
	ID               string   `json:"id" bson:"id"`
	Number           string   `json:"number" bson:"number"`
	Text             string   `json:"text" bson:"text"`
	Field            string   `json:"field" bson:"field"`
	Options          []string `json:"options" bson:"options"`
	Required         bool     `json:"required" bson:"required"`
	ConditionalField string   `json:"conditionalField,omitempty" bson:"conditionalField,omitempty"`
	ConditionalValue string   `json:"conditionalValue,omitempty" bson:"conditionalValue,omitempty"`
}

// CustomSection groups custom questions under one of the six survey sections
type CustomSection struct {
	ID        string           `json:"id" bson:"id"`
	Title     string           `json:"title" bson:"title"`
	Questions []CustomQuestion `json:"questions" bson:"questions"`
}

// CustomSurvey is a school-authored survey bound to a generated code.
// A survey with no configured sections is considered unconfigured and
// every section counts as complete for respondents.
type CustomSurvey struct {
	ID           string          `json:"id" bson:"_id,omitempty"`
	Name         string          `json:"name" bson:"name"`
	Description  string          `json:"description" bson:"description"`
	SurveyCode   string          `json:"surveyCode" bson:"surveyCode"`
	SchoolCode   string          `json:"schoolCode" bson:"schoolCode"`
	SurveyType   SurveyType      `json:"surveyType" bson:"surveyType"`
	Sections     []CustomSection `json:"sections" bson:"sections"`
	CreatedBy    string          `json:"createdBy" bson:"createdBy"`
	CreatedAt    int64           `json:"createdAt" bson:"createdAt"`
	LastModified int64           `json:"lastModified" bson:"lastModified"`
	IsActive     bool            `json:"isActive" bson:"isActive"`
}

// IsConfigured reports whether the survey carries at least one question.
func (s *CustomSurvey) IsConfigured() bool {
	for _, sec := range s.Sections {
		if len(sec.Questions) > 0 {
			return true
		}
	}
	return false
}
