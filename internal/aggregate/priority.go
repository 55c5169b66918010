package aggregate

import "github.com/sebasotodlp/schoolar/internal/model"

// Priority classifies a question's results. The thresholds are part of
// the reporting contract: any "Sí" on the violence indicators is high,
// constant stress over 30% is high, and the experience and mental
// health indicators turn medium past 20%.
func Priority(field string, f Frequency) model.Priority {
	yes := f.Counts["Sí"]

	switch field {
	case "bullyingProblem", "bullyingProblemTeacher", "weaponSeen",
		"witnessedWeapons", "physicalAggression", "teacherHarassed":
		if yes > 0 {
			return model.PriorityHigh
		}
	case "stressFrequency", "teacherStressFrequency":
		if f.Share("Constantemente") > 0.3 {
			return model.PriorityHigh
		}
	case "schoolSafety":
		if f.Share("En Desacuerdo")+f.Share("Muy en Desacuerdo") > 0.3 {
			return model.PriorityHigh
		}
	}

	switch field {
	case "generalExperience":
		if f.Share("Negativa")+f.Share("Muy negativa") > 0.2 {
			return model.PriorityMedium
		}
	case "teacherHappiness", "happyAtSchool":
		if f.Share("En Desacuerdo")+f.Share("Muy en Desacuerdo") > 0.2 {
			return model.PriorityMedium
		}
	case "offensiveNames", "rumorsSpread", "witnessedTeacherHarassment", "witnessedStudentHarassment":
		if yes > 0 {
			return model.PriorityMedium
		}
	case "sadnessFrequency", "lonelinessFrequency":
		if f.Share("Constantemente") > 0.2 {
			return model.PriorityMedium
		}
	}

	return model.PriorityLow
}
