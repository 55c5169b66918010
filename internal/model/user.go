package model

// UserType separates full administrators from restricted secondary users
type UserType string

const (
	UserTypeAdmin     UserType = "admin"
	UserTypeSecondary UserType = "secondary"
)

// Permissions gates the dashboard features a secondary user may access.
// Admins implicitly hold every permission.
type Permissions struct {
	Indicators       bool `json:"indicators" bson:"indicators"`
	Recommendations  bool `json:"recommendations" bson:"recommendations"`
	AIAgent          bool `json:"aiAgent" bson:"aiAgent"`
	SurveyManagement bool `json:"surveyManagement" bson:"surveyManagement"`
}

// AdminUser is an account scoped to a single school
type AdminUser struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	FirstName    string      `json:"firstName" bson:"firstName"`
	LastName     string      `json:"lastName" bson:"lastName"`
	Email        string      `json:"email" bson:"email"`
	PasswordHash string      `json:"-" bson:"passwordHash"`
	SchoolCode   string      `json:"schoolCode" bson:"schoolCode"`
	SchoolName   string      `json:"schoolName" bson:"schoolName"`
	UserType     UserType    `json:"userType" bson:"userType"`
	Permissions  Permissions `json:"permissions" bson:"permissions"`
	CreatedBy    string      `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt    int64       `json:"createdAt" bson:"createdAt"` // epoch millis
}

// HasPermission reports whether the user may use the named feature.
func (u *AdminUser) HasPermission(feature string) bool {
	if u.UserType == UserTypeAdmin {
		return true
	}
	switch feature {
	case "indicators":
		return u.Permissions.Indicators
	case "recommendations":
		return u.Permissions.Recommendations
	case "aiAgent":
		return u.Permissions.AIAgent
	case "surveyManagement":
		return u.Permissions.SurveyManagement
	}
	return false
}
