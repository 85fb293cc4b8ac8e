package filtering

// fallbackRegistries mirrors facets.yaml and is used when the YAML cannot be loaded.
var fallbackRegistries = map[string]map[string][]bindingDoc{
	"taxonomy": {
		"topic": {
			{Facet: "sub_topic_ids", Table: "sub_topic", Source: "id", Target: "topic_id", LiveOnly: true},
			{Facet: "outcome_ids", Table: "outcome_topic", Source: "outcome_id", Target: "topic_id"},
			{Facet: "behaviour_ids", Table: "behaviour_topic", Source: "behaviour_id", Target: "topic_id"},
			{Facet: "barrier_ids", Table: "barrier_topic", Source: "barrier_id", Target: "topic_id"},
			{Facet: "solution_ids", Table: "solution_topic", Source: "solution_id", Target: "topic_id"},
			{Facet: "knowledge_ids", Table: "knowledge_topic", Source: "knowledge_id", Target: "topic_id"},
			{Facet: "collateral_ids", Table: "collateral_topic", Source: "collateral_id", Target: "topic_id"},
			{Facet: "proposal_ids", Table: "proposal_topic", Source: "proposal_id", Target: "topic_id"},
			{Facet: "course_ids", Table: "course_topic", Source: "course_id", Target: "topic_id"},
		},
		"sub_topic": {
			{Facet: "topic_ids", Table: "sub_topic", Source: "topic_id", Target: "id", LiveOnly: true},
			{Facet: "outcome_ids", Table: "outcome_topic", Source: "outcome_id", Target: "sub_topic_id"},
			{Facet: "behaviour_ids", Table: "behaviour_topic", Source: "behaviour_id", Target: "sub_topic_id"},
			{Facet: "barrier_ids", Table: "barrier_topic", Source: "barrier_id", Target: "sub_topic_id"},
			{Facet: "solution_ids", Table: "solution_topic", Source: "solution_id", Target: "sub_topic_id"},
			{Facet: "knowledge_ids", Table: "knowledge_topic", Source: "knowledge_id", Target: "sub_topic_id"},
			{Facet: "collateral_ids", Table: "collateral_topic", Source: "collateral_id", Target: "sub_topic_id"},
			{Facet: "proposal_ids", Table: "proposal_topic", Source: "proposal_id", Target: "sub_topic_id"},
			{Facet: "course_ids", Table: "course_topic", Source: "course_id", Target: "sub_topic_id"},
		},
		"outcome": {
			{Facet: "topic_ids", Table: "outcome_topic", Source: "topic_id", Target: "outcome_id"},
			{Facet: "sub_topic_ids", Table: "outcome_topic", Source: "sub_topic_id", Target: "outcome_id"},
			{Facet: "sub_outcome_ids", Table: "sub_outcome", Source: "id", Target: "outcome_id", LiveOnly: true},
			{Facet: "behaviour_ids", Table: "behaviour_outcome", Source: "behaviour_id", Target: "outcome_id"},
			{Facet: "barrier_ids", Table: "barrier_outcome", Source: "barrier_id", Target: "outcome_id"},
			{Facet: "solution_ids", Table: "solution_outcome", Source: "solution_id", Target: "outcome_id"},
			{Facet: "proposal_ids", Table: "proposal_outcome", Source: "proposal_id", Target: "outcome_id"},
			{Facet: "course_ids", Table: "course_outcome", Source: "course_id", Target: "outcome_id"},
		},
		"sub_outcome": {
			{Facet: "outcome_ids", Table: "sub_outcome", Source: "outcome_id", Target: "id", LiveOnly: true},
			{Facet: "behaviour_ids", Table: "behaviour_outcome", Source: "behaviour_id", Target: "sub_outcome_id"},
			{Facet: "barrier_ids", Table: "barrier_outcome", Source: "barrier_id", Target: "sub_outcome_id"},
			{Facet: "solution_ids", Table: "solution_outcome", Source: "solution_id", Target: "sub_outcome_id"},
			{Facet: "proposal_ids", Table: "proposal_outcome", Source: "proposal_id", Target: "sub_outcome_id"},
			{Facet: "course_ids", Table: "course_outcome", Source: "course_id", Target: "sub_outcome_id"},
		},
		"behaviour": {
			{Facet: "topic_ids", Table: "behaviour_topic", Source: "topic_id", Target: "behaviour_id"},
			{Facet: "sub_topic_ids", Table: "behaviour_topic", Source: "sub_topic_id", Target: "behaviour_id"},
			{Facet: "outcome_ids", Table: "behaviour_outcome", Source: "outcome_id", Target: "behaviour_id"},
			{Facet: "sub_outcome_ids", Table: "behaviour_outcome", Source: "sub_outcome_id", Target: "behaviour_id"},
			{Facet: "barrier_ids", Table: "barrier_behaviour", Source: "barrier_id", Target: "behaviour_id"},
			{Facet: "solution_ids", Table: "solution_behaviour", Source: "solution_id", Target: "behaviour_id"},
			{Facet: "knowledge_ids", Table: "knowledge_behaviour", Source: "knowledge_id", Target: "behaviour_id"},
			{Facet: "collateral_ids", Table: "collateral_behaviour", Source: "collateral_id", Target: "behaviour_id"},
			{Facet: "course_ids", Table: "course_behaviour", Source: "course_id", Target: "behaviour_id"},
		},
		"barrier": {
			{Facet: "topic_ids", Table: "barrier_topic", Source: "topic_id", Target: "barrier_id"},
			{Facet: "sub_topic_ids", Table: "barrier_topic", Source: "sub_topic_id", Target: "barrier_id"},
			{Facet: "outcome_ids", Table: "barrier_outcome", Source: "outcome_id", Target: "barrier_id"},
			{Facet: "sub_outcome_ids", Table: "barrier_outcome", Source: "sub_outcome_id", Target: "barrier_id"},
			{Facet: "behaviour_ids", Table: "barrier_behaviour", Source: "behaviour_id", Target: "barrier_id"},
			{Facet: "solution_ids", Table: "solution_barrier", Source: "solution_id", Target: "barrier_id"},
		},
		"solution": {
			{Facet: "topic_ids", Table: "solution_topic", Source: "topic_id", Target: "solution_id"},
			{Facet: "sub_topic_ids", Table: "solution_topic", Source: "sub_topic_id", Target: "solution_id"},
			{Facet: "outcome_ids", Table: "solution_outcome", Source: "outcome_id", Target: "solution_id"},
			{Facet: "sub_outcome_ids", Table: "solution_outcome", Source: "sub_outcome_id", Target: "solution_id"},
			{Facet: "behaviour_ids", Table: "solution_behaviour", Source: "behaviour_id", Target: "solution_id"},
			{Facet: "barrier_ids", Table: "solution_barrier", Source: "barrier_id", Target: "solution_id"},
			{Facet: "knowledge_ids", Table: "knowledge_solution", Source: "knowledge_id", Target: "solution_id"},
			{Facet: "collateral_ids", Table: "collateral_solution", Source: "collateral_id", Target: "solution_id"},
		},
		"knowledge": {
			{Facet: "topic_ids", Table: "knowledge_topic", Source: "topic_id", Target: "knowledge_id"},
			{Facet: "sub_topic_ids", Table: "knowledge_topic", Source: "sub_topic_id", Target: "knowledge_id"},
			{Facet: "behaviour_ids", Table: "knowledge_behaviour", Source: "behaviour_id", Target: "knowledge_id"},
			{Facet: "solution_ids", Table: "knowledge_solution", Source: "solution_id", Target: "knowledge_id"},
		},
		"collateral": {
			{Facet: "topic_ids", Table: "collateral_topic", Source: "topic_id", Target: "collateral_id"},
			{Facet: "sub_topic_ids", Table: "collateral_topic", Source: "sub_topic_id", Target: "collateral_id"},
			{Facet: "behaviour_ids", Table: "collateral_behaviour", Source: "behaviour_id", Target: "collateral_id"},
			{Facet: "solution_ids", Table: "collateral_solution", Source: "solution_id", Target: "collateral_id"},
		},
		"proposal": {
			{Facet: "topic_ids", Table: "proposal_topic", Source: "topic_id", Target: "proposal_id"},
			{Facet: "sub_topic_ids", Table: "proposal_topic", Source: "sub_topic_id", Target: "proposal_id"},
			{Facet: "outcome_ids", Table: "proposal_outcome", Source: "outcome_id", Target: "proposal_id"},
			{Facet: "sub_outcome_ids", Table: "proposal_outcome", Source: "sub_outcome_id", Target: "proposal_id"},
			{Facet: "organisation_ids", Table: "proposal_organisation", Source: "organisation_id", Target: "proposal_id"},
		},
		"course": {
			{Facet: "topic_ids", Table: "course_topic", Source: "topic_id", Target: "course_id"},
			{Facet: "sub_topic_ids", Table: "course_topic", Source: "sub_topic_id", Target: "course_id"},
			{Facet: "outcome_ids", Table: "course_outcome", Source: "outcome_id", Target: "course_id"},
			{Facet: "sub_outcome_ids", Table: "course_outcome", Source: "sub_outcome_id", Target: "course_id"},
			{Facet: "behaviour_ids", Table: "course_behaviour", Source: "behaviour_id", Target: "course_id"},
			{Facet: "skill_ids", Table: "course_skill", Source: "skill_id", Target: "course_id"},
		},
		"organisation": {
			{Facet: "proposal_ids", Table: "proposal_organisation", Source: "proposal_id", Target: "organisation_id"},
		},
		"skill": {
			{Facet: "course_ids", Table: "course_skill", Source: "course_id", Target: "skill_id"},
		},
	},
	"region": {
		"country": {
			{Facet: "state_ids", Table: "state", Source: "id", Target: "country_id", LiveOnly: true},
			{Facet: "organisation_ids", Table: "organisation_region", Source: "organisation_id", Target: "country_id"},
			{Facet: "proposal_ids", Table: "proposal_region", Source: "proposal_id", Target: "country_id"},
		},
		"state": {
			{Facet: "country_ids", Table: "state", Source: "country_id", Target: "id", LiveOnly: true},
			{Facet: "organisation_ids", Table: "organisation_region", Source: "organisation_id", Target: "state_id"},
			{Facet: "proposal_ids", Table: "proposal_region", Source: "proposal_id", Target: "state_id"},
		},
		"organisation": {
			{Facet: "country_ids", Table: "organisation_region", Source: "country_id", Target: "organisation_id"},
			{Facet: "state_ids", Table: "organisation_region", Source: "state_id", Target: "organisation_id"},
		},
		"proposal": {
			{Facet: "country_ids", Table: "proposal_region", Source: "country_id", Target: "proposal_id"},
			{Facet: "state_ids", Table: "proposal_region", Source: "state_id", Target: "proposal_id"},
		},
	},
}
