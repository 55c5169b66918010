package config

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/sebasotodlp/schoolar/internal/model"
)

// School is an authorized establishment
type School struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PredefinedSurvey is a built-in questionnaire bound to one school
type PredefinedSurvey struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	SchoolCode  string           `json:"schoolCode"`
	SchoolName  string           `json:"schoolName"`
	Type        model.SurveyType `json:"type"`
}

type emergencyAccount struct {
	user         model.AdminUser
	passwordHash []byte
}

// Directory holds the static school and survey whitelists plus the
// emergency admin accounts used when the user store has never been
// seeded. It is constructed once and injected wherever code validation
// is needed.
type Directory struct {
	schools   map[string]School
	surveys   []PredefinedSurvey
	emergency []emergencyAccount
}

// NewDirectory builds the directory with the authorized schools and
// predefined surveys.
func NewDirectory() *Directory {
	d := &Directory{
		schools: map[string]School{
			"CSA123": {Code: "CSA123", Name: "Colegio Saucache Arica"},
			"CSJ123": {Code: "CSJ123", Name: "Colegio San Jorge Arica"},
			"PRB123": {Code: "PRB123", Name: "Colegio Prueba"},
		},
		surveys: []PredefinedSurvey{
			{
				Code:        "EAE123",
				Name:        "Encuesta Ambiente Escolar - Estudiantes (Segundo Semestre 2025)",
				Description: "Evaluación integral del ambiente escolar desde la perspectiva estudiantil - Segundo Semestre 2025",
				SchoolCode:  "CSA123",
				SchoolName:  "Colegio Saucache Arica",
				Type:        model.SurveyTypeStudent,
			},
			{
				Code:        "EAE1234",
				Name:        "Encuesta Ambiente Escolar - Docentes (Segundo Semestre 2025)",
				Description: "Evaluación del ambiente escolar desde la perspectiva docente - Segundo Semestre 2025",
				SchoolCode:  "CSA123",
				SchoolName:  "Colegio Saucache Arica",
				Type:        model.SurveyTypeTeacher,
			},
		},
	}
	d.addEmergencyAccount(model.AdminUser{
		ID: "admin-seed-1", FirstName: "Sebastián", LastName: "Soto de la Plaza",
		Email: "ssotod@udd.cl", SchoolCode: "CSA123", SchoolName: "Colegio Saucache Arica",
		UserType: model.UserTypeAdmin,
	}, "0702977")
	d.addEmergencyAccount(model.AdminUser{
		ID: "admin-csj-1", FirstName: "Administrador", LastName: "San Jorge",
		Email: "admin@csj.cl", SchoolCode: "CSJ123", SchoolName: "Colegio San Jorge Arica",
		UserType: model.UserTypeAdmin,
	}, "admin123")
	d.addEmergencyAccount(model.AdminUser{
		ID: "admin-prb-1", FirstName: "Administrador", LastName: "Prueba",
		Email: "admin@prueba.cl", SchoolCode: "PRB123", SchoolName: "Colegio Prueba",
		UserType: model.UserTypeAdmin,
	}, "prueba123")
	return d
}

func (d *Directory) addEmergencyAccount(user model.AdminUser, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	d.emergency = append(d.emergency, emergencyAccount{user: user, passwordHash: hash})
}

// School resolves an authorized school by code.
func (d *Directory) School(code string) (School, bool) {
	s, ok := d.schools[code]
	return s, ok
}

// IsAuthorizedSchool reports whether the school code is whitelisted.
func (d *Directory) IsAuthorizedSchool(code string) bool {
	_, ok := d.schools[code]
	return ok
}

// Survey resolves a predefined survey by its code and school binding.
func (d *Directory) Survey(surveyCode, schoolCode string) (PredefinedSurvey, bool) {
	for _, s := range d.surveys {
		if s.Code == surveyCode && s.SchoolCode == schoolCode {
			return s, true
		}
	}
	return PredefinedSurvey{}, false
}

// IsPredefined reports whether the code belongs to a built-in survey,
// regardless of school.
func (d *Directory) IsPredefined(surveyCode string) bool {
	for _, s := range d.surveys {
		if s.Code == surveyCode {
			return true
		}
	}
	return false
}

// SurveysForSchool lists the predefined surveys bound to one school.
func (d *Directory) SurveysForSchool(schoolCode string) []PredefinedSurvey {
	var out []PredefinedSurvey
	for _, s := range d.surveys {
		if s.SchoolCode == schoolCode {
			out = append(out, s)
		}
	}
	return out
}

// ValidateSurveyOwnership checks that a survey may be used by a school:
// predefined surveys carry a fixed binding, custom surveys belong to the
// school that created them.
func (d *Directory) ValidateSurveyOwnership(surveyCode, schoolCode, createdBySchoolCode string) bool {
	for _, s := range d.surveys {
		if s.Code == surveyCode {
			return s.SchoolCode == schoolCode
		}
	}
	return createdBySchoolCode == schoolCode
}

// EmergencyUser validates credentials against the built-in fallback
// accounts. Only consulted when the user store has no matching account.
func (d *Directory) EmergencyUser(email, password string) (*model.AdminUser, bool) {
	for _, acct := range d.emergency {
		if acct.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) == nil {
			u := acct.user
			return &u, true
		}
	}
	return nil, false
}

// EmergencyAccounts returns copies of the fallback admin users for
// seeding.
func (d *Directory) EmergencyAccounts() []model.AdminUser {
	out := make([]model.AdminUser, 0, len(d.emergency))
	for _, acct := range d.emergency {
		u := acct.user
		u.PasswordHash = string(acct.passwordHash)
		out = append(out, u)
	}
	return out
}
