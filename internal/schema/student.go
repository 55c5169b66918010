package schema

var studentCatalogue = map[Section][]Question{
	SectionGeneral: {
		{Number: "1", Text: "¿Con cuál género te identificas?", Field: "gender",
			Options: []string{"Femenino", "Masculino", "Transgénero", "Otro"}, Required: true},
		{Number: "2", Text: "¿Presentas alguna discapacidad?", Field: "disability",
			Options: yesNoDontKnow, Required: true},
		{Number: "2a", Text: "Si tu respuesta anterior fue 'Sí', ¿qué tipo de discapacidad presentas?", Field: "disabilityType",
			Options:  []string{"Física", "Intelectual", "Sensorial (visual o auditiva)", "Psíquica", "Múltiple", "Otra"},
			Required: true, ConditionalField: "disability", ConditionalValue: "Sí"},
		{Number: "3", Text: "En el último mes... ¿cuántos días completos has faltado al colegio por cualquier razón?", Field: "absenceDays",
			Options: []string{"0 días", "1 día", "2 días", "3 o más días"}, Required: true},
	},
	SectionExperience: {
		{Number: "4", Text: "¿Estás feliz de estar en este colegio?", Field: "happyAtSchool",
			Options: agreementOptions, Required: true},
		{Number: "5", Text: "¿Sientes que eres parte de este colegio?", Field: "feelPartOfSchool",
			Options: agreementOptions, Required: true},
		{Number: "6", Text: "¿Cómo describirías tu experiencia general en el colegio?", Field: "generalExperience",
			Options: []string{"Muy positiva", "Positiva", "Neutral", "Negativa", "Muy negativa"}, Required: true},
		{Number: "7", Text: "¿El colegio te ha dado anteriormente la oportunidad de participar y de dar ideas para mejorar la calidad del ambiente educacional?", Field: "participationOpportunity",
			Options: agreementOptions, Required: true},
		{Number: "8", Text: "Las actividades extracurriculares ofrecidas por el colegio son variadas y atractivas", Field: "extracurricularActivities",
			Options: agreementOptions, Required: true},
		{Number: "9", Text: "¿Te sientes motivado/a y comprometido/a con tu proceso de aprendizaje en el colegio?", Field: "learningMotivation",
			Options: agreementOptions, Required: true},
		{Number: "10", Text: "¿Sientes que tus profesores se preocupan por tu bienestar y desarrollo académico?", Field: "teacherCare",
			Options: agreementOptions, Required: true},
		{Number: "11", Text: "¿Tienes espacio suficiente para jugar, correr y hacer vida social en el colegio?", Field: "socialSpace",
			Options: agreementOptions, Required: true},
	},
	SectionSecurity: {
		{Number: "12", Text: "¿Te sientes seguro en el colegio?", Field: "schoolSafety",
			Options: agreementOptions, Required: true},
		{Number: "13", Text: "¿Tu colegio enseña a los estudiantes a tratarse con respeto?", Field: "respectTeaching",
			Options: agreementOptions, Required: true},
		{Number: "14", Text: "¿Tu colegio ayuda a los estudiantes a resolver sus conflictos?", Field: "conflictResolution",
			Options: agreementOptions, Required: true},
		{Number: "15", Text: "¿Consideras que el Bullying es un problema en tu colegio?", Field: "bullyingProblem",
			Options: yesNoDontKnow, Required: true},
		{Number: "16", Text: "Durante este semestre... ¿Se han difundido rumores malos o mentiras sobre ti?", Field: "rumorsSpread",
			Options: yesNo, Required: true},
		{Number: "17", Text: "Durante este semestre... ¿Te han llamado por nombres molestos o te hacen bromas ofensivas?", Field: "offensiveNames",
			Options: yesNo, Required: true},
		{Number: "18", Text: "Durante este semestre... ¿Te han golpeado o te empujado en la escuela sin estar jugando?", Field: "physicalAggression",
			Options: yesNo, Required: true},
		{Number: "19", Text: "Durante este semestre... ¿Se han burlado de ti por tu apariencia?", Field: "appearanceMocking",
			Options: yesNo, Required: true},
		{Number: "20", Text: "Durante este semestre... ¿Viste a otro niño con un cuchillo, una navaja o un arma blanca?", Field: "weaponSeen",
			Options: yesNo, Required: true},
	},
	SectionMentalHealth: {
		{Number: "21", Text: "Durante este semestre... ¿Qué tan seguido te has sentido estresado?", Field: "stressFrequency",
			Options: []string{"Constantemente", "De vez en cuando", "No me he sentido estresado"}, Required: true},
		{Number: "22", Text: "Durante este semestre... ¿Qué tan seguido te has sentido triste?", Field: "sadnessFrequency",
			Options: []string{"Constantemente", "De vez en cuando", "No me he sentido triste"}, Required: true},
		{Number: "23", Text: "Durante este semestre... ¿Qué tan seguido te has sentido solo?", Field: "lonelinessFrequency",
			Options: []string{"Constantemente", "De vez en cuando", "No me he sentido solo"}, Required: true},
		{Number: "24", Text: "Durante este semestre... ¿Consideraste hablar con algún profesional sobre tus problemas?", Field: "consideredProfessionalHelp",
			Options: []string{"Sí", "No", "No lo necesité"}, Required: true},
		{Number: "24a", Text: "Si tu respuesta anterior fue 'Sí', ¿recibiste ayuda de algún profesional?", Field: "receivedProfessionalHelp",
			Options: yesNoUnsure, Required: true, ConditionalField: "consideredProfessionalHelp", ConditionalValue: "Sí"},
		{Number: "24b", Text: "Si tu respuesta anterior fue 'Sí', ¿recibiste esa ayuda de algún profesional del colegio?", Field: "receivedSchoolProfessionalHelp",
			Options: yesNoUnsure, Required: true, ConditionalField: "receivedProfessionalHelp", ConditionalValue: "Sí"},
		{Number: "25", Text: "¿Crees que hablarlo con un profesional te ayudaría a mejorar?", Field: "professionalHelpWouldHelp",
			Options: yesNoUnsure, Required: true},
		{Number: "26", Text: "¿Crees que tus compañeros entenderían tu situación?", Field: "peersUnderstanding",
			Options: yesNoUnsure, Required: true},
		{Number: "27", Text: "¿Sabrías dónde y a quién pedirle ayuda dentro del establecimiento?", Field: "knowWhereToAskHelp",
			Options: yesNoUnsure, Required: true},
		{Number: "28", Text: "¿Crees que el colegio cuenta con las herramientas necesarias para ayudar a sus estudiantes en momentos de estrés, tristeza o soledad?", Field: "schoolHasNecessaryTools",
			Options: yesNoUnsure, Required: true},
	},
	SectionAlcoholDrugs: {
		{Number: "29", Text: "¿Crees que fumar cigarros es malo para la salud de una persona?", Field: "cigarettesHealthBad",
			Options: yesNoUnsure, Required: true},
		{Number: "30", Text: "¿Crees que fumar cigarros electrónicos es malo para la salud de una persona?", Field: "electronicCigarettesHealthBad",
			Options: yesNoUnsure, Required: true},
		{Number: "31", Text: "¿Crees que fumar marihuana es malo para la salud de una persona?", Field: "marijuanaHealthBad",
			Options: yesNoUnsure, Required: true},
		{Number: "32", Text: "¿Crees que tomar alcohol (cerveza, vino, licor) en exceso, es malo para la salud de una persona?", Field: "excessiveAlcoholHealthBad",
			Options: yesNoUnsure, Required: true},
		{Number: "33", Text: "¿Crees que el consumo de alcohol es un problema entre los estudiantes del colegio?", Field: "alcoholProblemAtSchool",
			Options: yesNoUnsure, Required: true},
		{Number: "34", Text: "¿Crees que el consumo de drogas es un problema entre los estudiantes del colegio?", Field: "drugsProblemAtSchool",
			Options: yesNoUnsure, Required: true},
		{Number: "35", Text: "¿Te sientes presionado/a por tus compañeros para consumir alcohol o drogas?", Field: "peerPressureSubstances",
			Options: yesNoUnsure, Required: true},
	},
	SectionCleanliness: {
		{Number: "36", Text: "En general, trato de cooperar con la limpieza del colegio botando mi basura donde corresponde", Field: "cooperateWithCleanliness",
			Options: agreementOptions, Required: true},
		{Number: "37", Text: "En general, trato de mantener el baño lo más limpio posible", Field: "maintainBathroomClean",
			Options: agreementOptions, Required: true},
		{Number: "38", Text: "En general, considero que mis compañeros se preocupan de la limpieza del colegio", Field: "peersCareCleanliness",
			Options: agreementOptions, Required: true},
		{Number: "39", Text: "La limpieza de las salas de clases se realizan con la frecuencia necesaria", Field: "classroomCleaningFrequency",
			Options: agreementOptions, Required: true},
		{Number: "40", Text: "La limpieza de los baños se realizan con la frecuencia necesaria", Field: "bathroomCleaningFrequency",
			Options: agreementOptions, Required: true},
		{Number: "41", Text: "Los baños siempre cuentan con los artículos de higiene necesarios", Field: "bathroomHygieneArticles",
			Options: agreementOptions, Required: true},
		{Number: "42", Text: "¿Crees que se podría mejorar la limpieza de las instalaciones del colegio?", Field: "improveFacilitiesCleanliness",
			Options: yesNoUnsure, Required: true},
	},
}
