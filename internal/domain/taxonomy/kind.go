package taxonomy

import "strings"

// Kind names an entity kind. The value doubles as the entity's table name.
type Kind string

const (
	KindTopic      Kind = "topic"
	KindSubTopic   Kind = "sub_topic"
	KindOutcome    Kind = "outcome"
	KindSubOutcome Kind = "sub_outcome"
	KindBehaviour  Kind = "behaviour"
	KindBarrier    Kind = "barrier"
	KindSolution   Kind = "solution"

	KindKnowledge    Kind = "knowledge"
	KindCollateral   Kind = "collateral"
	KindProposal     Kind = "proposal"
	KindCourse       Kind = "course"
	KindOrganisation Kind = "organisation"
	KindSkill        Kind = "skill"

	KindCountry Kind = "country"
	KindState   Kind = "state"
)

const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusArchived  = "archived"
)

var allKinds = []Kind{
	KindTopic, KindSubTopic, KindOutcome, KindSubOutcome, KindBehaviour, KindBarrier, KindSolution,
	KindKnowledge, KindCollateral, KindProposal, KindCourse, KindOrganisation, KindSkill,
	KindCountry, KindState,
}

func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind accepts the canonical name plus the plural and dashed spellings used in URLs
// ("sub-topics", "behaviours").
func ParseKind(raw string) (Kind, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", "_")
	for _, k := range allKinds {
		if s == string(k) || s == k.Plural() {
			return k, true
		}
	}
	return "", false
}

func (k Kind) Plural() string {
	switch k {
	case KindKnowledge:
		return "knowledge"
	case KindCountry:
		return "countries"
	default:
		return string(k) + "s"
	}
}

// Facet is the filter key that restricts other kinds by ids of this kind.
func (k Kind) Facet() string { return string(k) + "_ids" }

func (k Kind) Table() string { return string(k) }
