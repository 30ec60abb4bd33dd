package catalog

// Strand represents a language content strand.
type Strand string

const (
	StrandGrammar       Strand = "grammar"
	StrandVocabulary    Strand = "vocabulary"
	StrandPronunciation Strand = "pronunciation"
	StrandFluency       Strand = "fluency"
)

// AllStrands returns all strands in display order.
func AllStrands() []Strand {
	return []Strand{
		StrandGrammar,
		StrandVocabulary,
		StrandPronunciation,
		StrandFluency,
	}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s Strand) string {
	switch s {
	case StrandGrammar:
		return "Grammar"
	case StrandVocabulary:
		return "Vocabulary"
	case StrandPronunciation:
		return "Pronunciation"
	case StrandFluency:
		return "Fluency"
	default:
		return string(s)
	}
}

// Skill is a static definition of one teachable language skill. The
// Difficulty tag is fixed content metadata consumed by recommendation
// ordering; it is unrelated to a card's difficulty field.
type Skill struct {
	Key           string
	Name          string
	Description   string
	Strand        Strand
	CEFRLevel     string // A1..C2
	Difficulty    float64
	Prerequisites []string
}
