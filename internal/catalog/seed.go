package catalog

// seedSkills is the static skill set for English learners. Keys are
// stable identifiers persisted in SkillNode rows; renaming one orphans
// every learner's mastery state for that skill.
var seedSkills = []Skill{
	// Grammar
	{
		Key: "gram.present-simple", Name: "Present simple",
		Description: "Habits, routines, and general truths",
		Strand:      StrandGrammar, CEFRLevel: "A1", Difficulty: 0.1,
	},
	{
		Key: "gram.present-continuous", Name: "Present continuous",
		Description: "Actions in progress and near-future arrangements",
		Strand:      StrandGrammar, CEFRLevel: "A1", Difficulty: 0.15,
		Prerequisites: []string{"gram.present-simple"},
	},
	{
		Key: "gram.past-simple", Name: "Past simple",
		Description: "Finished actions, including irregular verbs",
		Strand:      StrandGrammar, CEFRLevel: "A2", Difficulty: 0.25,
		Prerequisites: []string{"gram.present-simple"},
	},
	{
		Key: "gram.present-perfect", Name: "Present perfect",
		Description: "Past events with present relevance",
		Strand:      StrandGrammar, CEFRLevel: "B1", Difficulty: 0.5,
		Prerequisites: []string{"gram.past-simple"},
	},
	{
		Key: "gram.articles", Name: "Articles",
		Description: "a/an/the and the zero article",
		Strand:      StrandGrammar, CEFRLevel: "A2", Difficulty: 0.35,
	},
	{
		Key: "gram.word-order", Name: "Word order",
		Description: "Subject-verb-object order and adverb placement",
		Strand:      StrandGrammar, CEFRLevel: "A2", Difficulty: 0.3,
	},
	{
		Key: "gram.prepositions", Name: "Prepositions",
		Description: "Prepositions of time, place, and movement",
		Strand:      StrandGrammar, CEFRLevel: "A2", Difficulty: 0.4,
	},
	{
		Key: "gram.conditionals", Name: "Conditionals",
		Description: "Zero, first, and second conditionals",
		Strand:      StrandGrammar, CEFRLevel: "B1", Difficulty: 0.6,
		Prerequisites: []string{"gram.past-simple"},
	},
	{
		Key: "gram.passive-voice", Name: "Passive voice",
		Description: "Passive forms across tenses",
		Strand:      StrandGrammar, CEFRLevel: "B2", Difficulty: 0.7,
		Prerequisites: []string{"gram.present-perfect"},
	},
	{
		Key: "gram.reported-speech", Name: "Reported speech",
		Description: "Backshifting and reporting verbs",
		Strand:      StrandGrammar, CEFRLevel: "B2", Difficulty: 0.75,
		Prerequisites: []string{"gram.past-simple"},
	},

	// Vocabulary
	{
		Key: "vocab.everyday-objects", Name: "Everyday objects",
		Description: "Household items, food, clothing",
		Strand:      StrandVocabulary, CEFRLevel: "A1", Difficulty: 0.1,
	},
	{
		Key: "vocab.phrasal-verbs", Name: "Phrasal verbs",
		Description: "High-frequency phrasal verbs",
		Strand:      StrandVocabulary, CEFRLevel: "B1", Difficulty: 0.55,
	},
	{
		Key: "vocab.collocations", Name: "Collocations",
		Description: "Natural word pairings (make a decision, heavy rain)",
		Strand:      StrandVocabulary, CEFRLevel: "B1", Difficulty: 0.5,
	},
	{
		Key: "vocab.false-friends", Name: "False friends",
		Description: "Words that look familiar but differ in meaning",
		Strand:      StrandVocabulary, CEFRLevel: "B2", Difficulty: 0.65,
	},
	{
		Key: "vocab.idioms", Name: "Idioms",
		Description: "Common idiomatic expressions",
		Strand:      StrandVocabulary, CEFRLevel: "C1", Difficulty: 0.85,
		Prerequisites: []string{"vocab.collocations"},
	},

	// Pronunciation
	{
		Key: "pron.th-sounds", Name: "TH sounds",
		Description: "Voiced and unvoiced th",
		Strand:      StrandPronunciation, CEFRLevel: "A2", Difficulty: 0.45,
	},
	{
		Key: "pron.word-stress", Name: "Word stress",
		Description: "Stress placement in multisyllable words",
		Strand:      StrandPronunciation, CEFRLevel: "B1", Difficulty: 0.5,
	},
	{
		Key: "pron.sentence-rhythm", Name: "Sentence rhythm",
		Description: "Stress-timed rhythm and weak forms",
		Strand:      StrandPronunciation, CEFRLevel: "B2", Difficulty: 0.7,
		Prerequisites: []string{"pron.word-stress"},
	},

	// Fluency
	{
		Key: "flu.linking-words", Name: "Linking words",
		Description: "Connectors for contrast, cause, and sequence",
		Strand:      StrandFluency, CEFRLevel: "B1", Difficulty: 0.45,
	},
	{
		Key: "flu.paraphrasing", Name: "Paraphrasing",
		Description: "Saying it another way when a word is missing",
		Strand:      StrandFluency, CEFRLevel: "B2", Difficulty: 0.65,
		Prerequisites: []string{"flu.linking-words"},
	},
}

func init() {
	if err := validateSkills(seedSkills); err != nil {
		panic(err)
	}
	c = buildCatalog(seedSkills)
}
