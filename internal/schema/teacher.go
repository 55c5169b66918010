package schema

// The teacher questionnaire reuses number 17 across the security and
// mental health sections; the source survey ships that way, so the
// catalogue preserves it and consumers order by section first.
var teacherCatalogue = map[Section][]Question{
	SectionGeneral: {
		{Number: "1", Text: "¿Con cuál género te identificas?", Field: "gender",
			Options: []string{"Femenino", "Masculino", "Transgénero", "Otro"}, Required: true},
		{Number: "2", Text: "¿Presentas algún tipo de discapacidad?", Field: "disability",
			Options: yesNoDontKnow, Required: true},
		{Number: "2a", Text: "Si tu respuesta anterior fue 'Sí', ¿qué tipo de discapacidad presentas?", Field: "disabilityType",
			Options:  []string{"Física", "Intelectual", "Sensorial (visual o auditiva)", "Psíquica", "Múltiple"},
			Required: true, ConditionalField: "disability", ConditionalValue: "Sí"},
		{Number: "3", Text: "¿Cuál es tu edad?", Field: "teacherAge",
			Options: []string{"Menor a 30 años", "Entre 30 y 39 años", "Entre 40 y 49 años", "Mayor a 49 años"}, Required: true},
		{Number: "4", Text: "¿En qué nivel enseñas?", Field: "teachingLevel",
			Options: []string{"Básica", "Media", "Ambas"}, Required: true},
	},
	SectionExperience: {
		{Number: "5", Text: "El establecimiento escolar proporciona suficientes recursos y materiales didácticos para apoyar la enseñanza del profesor.", Field: "schoolResources",
			Options: agreementOptions, Required: true},
		{Number: "6", Text: "El personal administrativo constantemente brinda apoyo y colaboración al profesor en su labor docente.", Field: "administrativeSupport",
			Options: agreementOptions, Required: true},
		{Number: "7", Text: "El establecimiento escolar ofrece oportunidades de desarrollo profesional para que el profesor mejore sus habilidades pedagógicas.", Field: "professionalDevelopment",
			Options: agreementOptions, Required: true},
		{Number: "8", Text: "El establecimiento escolar promueve un ambiente inclusivo y diverso que respeta las diferencias culturales de los docentes y estudiantes.", Field: "inclusiveEnvironment",
			Options: agreementOptions, Required: true},
		{Number: "9", Text: "¿Te sientes motivado y entusiasmado en tu labor docente dentro del establecimiento escolar?", Field: "teachingMotivation",
			Options: agreementOptions, Required: true},
		{Number: "10", Text: "¿Te sientes valorado y reconocido por tu trabajo en el establecimiento escolar?", Field: "teacherRecognition",
			Options: agreementOptions, Required: true},
		{Number: "11", Text: "En general, ¿te sientes feliz con tu experiencia laboral en este colegio?", Field: "teacherHappiness",
			Options: agreementOptions, Required: true},
	},
	SectionSecurity: {
		{Number: "12", Text: "Durante este semestre... ¿Has sido objeto de comportamientos dañinos por parte de estudiantes en el colegio que te hayan hecho sentir incómodo, amenazado o humillado?", Field: "teacherHarassed",
			Options: yesNoUnsureA, Required: true},
		{Number: "13", Text: "Durante este semestre... ¿Has presenciado alguna situación de acoso, maltrato o humillación en el colegio hacia algún docente?", Field: "witnessedTeacherHarassment",
			Options: yesNoUnsureA, Required: true},
		{Number: "14", Text: "Durante este semestre... ¿Has presenciado alguna situación de acoso, maltrato o humillación en el colegio hacia algún estudiante?", Field: "witnessedStudentHarassment",
			Options: yesNoUnsureA, Required: true},
		{Number: "15", Text: "Durante este semestre... ¿Viste a algún estudiante con algún arma de fuego o un arma blanca (cuchillo, navaja o cualquier instrumento que posea empuñadura y hoja metálica con bordes cortantes)?", Field: "witnessedWeapons",
			Options: yesNoUnsureA, Required: true},
		{Number: "16", Text: "¿Consideras que el Bullying es un problema en tu colegio?", Field: "bullyingProblemTeacher",
			Options: yesNoUnsureA, Required: true},
		{Number: "17", Text: "¿Consideras que el colegio debiese implementar más medidas para prevenir el acoso y violencia escolar en tu colegio?", Field: "needMoreSafetyMeasures",
			Options: yesNoUnsureA, Required: true},
	},
	SectionMentalHealth: {
		{Number: "17", Text: "Durante este semestre... ¿qué tan seguido te has sentido estresado, solo o triste?", Field: "teacherStressFrequency",
			Options: []string{"Constantemente", "De vez en cuando", "Nunca"}, Required: true},
		{Number: "18", Text: "¿Te sientes apoyado/a por el colegio en cuanto a tu bienestar emocional y salud mental?", Field: "schoolEmotionalSupport",
			Options: agreementOptions, Required: true},
		{Number: "19", Text: "¿El colegio ofrece recursos y programas de apoyo para promover el bienestar emocional y el auto-cuidado de los profesores?", Field: "schoolWellnessPrograms",
			Options: agreementOptions, Required: true},
		{Number: "20", Text: "¿Te sientes satisfecho/a con las políticas y programas implementados por el colegio en relación con la salud mental de los profesores?", Field: "mentalHealthPolicies",
			Options: agreementOptions, Required: true},
		{Number: "21", Text: "¿Piensas que el colegio está comprometido en abordar la estigmatización y los prejuicios asociados con problemas de salud mental?", Field: "mentalHealthStigma",
			Options: agreementOptions, Required: true},
	},
	SectionAlcoholDrugs: {
		{Number: "22", Text: "¿Crees que el consumo de alcohol es un problema entre los estudiantes del colegio?", Field: "alcoholProblemAtSchoolTeacher",
			Options: yesNoUnsure, Required: true},
		{Number: "23", Text: "¿Crees que el consumo de drogas es un problema entre los estudiantes del colegio?", Field: "drugsProblemAtSchoolTeacher",
			Options: yesNoUnsure, Required: true},
	},
	SectionCleanliness: {
		{Number: "24", Text: "En general, intento cooperar con la limpieza del colegio botando mi basura donde corresponde y manteniendo los espacios comunes lo más limpio posible.", Field: "teacherCooperateWithCleanliness",
			Options: agreementOptions, Required: true},
		{Number: "25", Text: "Se proporciona un entorno limpio y ordenado en el colegio, incluyendo áreas como baños y zonas de recreo.", Field: "cleanEnvironmentProvided",
			Options: agreementOptions, Required: true},
		{Number: "26", Text: "¿Crees que se podría mejorar la limpieza de las instalaciones del establecimiento?", Field: "improveFacilitiesCleanlinessTeacher",
			Options: agreementOptions, Required: true},
		{Number: "27", Text: "Los baños siempre cuentan con los artículos de higiene necesarios.", Field: "bathroomHygieneArticlesTeacher",
			Options: agreementOptions, Required: true},
	},
}
