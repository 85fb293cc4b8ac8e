package taxonomy

// JoinSpec describes a join table for admin link mutations: rows are keyed by the owner's id
// column plus exactly one of the target columns.
type JoinSpec struct {
	Table   string
	Owner   Kind
	Targets []string
	model   func() interface{}
}

func (j JoinSpec) OwnerColumn() string { return string(j.Owner) + "_id" }

// DefaultTarget is the column written when a link request names none.
func (j JoinSpec) DefaultTarget() string { return j.Targets[0] }

func (j JoinSpec) HasTarget(column string) bool {
	for _, c := range j.Targets {
		if c == column {
			return true
		}
	}
	return false
}

// Model returns a zero value of the join's GORM model.
func (j JoinSpec) Model() interface{} { return j.model() }

// Region joins only accept country links here; state rows need their country and are seeded
// together.
var joinSpecs = []JoinSpec{
	{Table: "outcome_topic", Owner: KindOutcome, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &OutcomeTopic{} }},
	{Table: "behaviour_topic", Owner: KindBehaviour, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &BehaviourTopic{} }},
	{Table: "behaviour_outcome", Owner: KindBehaviour, Targets: []string{"outcome_id", "sub_outcome_id"}, model: func() interface{} { return &BehaviourOutcome{} }},
	{Table: "barrier_topic", Owner: KindBarrier, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &BarrierTopic{} }},
	{Table: "barrier_outcome", Owner: KindBarrier, Targets: []string{"outcome_id", "sub_outcome_id"}, model: func() interface{} { return &BarrierOutcome{} }},
	{Table: "barrier_behaviour", Owner: KindBarrier, Targets: []string{"behaviour_id"}, model: func() interface{} { return &BarrierBehaviour{} }},
	{Table: "solution_topic", Owner: KindSolution, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &SolutionTopic{} }},
	{Table: "solution_outcome", Owner: KindSolution, Targets: []string{"outcome_id", "sub_outcome_id"}, model: func() interface{} { return &SolutionOutcome{} }},
	{Table: "solution_behaviour", Owner: KindSolution, Targets: []string{"behaviour_id"}, model: func() interface{} { return &SolutionBehaviour{} }},
	{Table: "solution_barrier", Owner: KindSolution, Targets: []string{"barrier_id"}, model: func() interface{} { return &SolutionBarrier{} }},
	{Table: "knowledge_topic", Owner: KindKnowledge, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &KnowledgeTopic{} }},
	{Table: "knowledge_behaviour", Owner: KindKnowledge, Targets: []string{"behaviour_id"}, model: func() interface{} { return &KnowledgeBehaviour{} }},
	{Table: "knowledge_solution", Owner: KindKnowledge, Targets: []string{"solution_id"}, model: func() interface{} { return &KnowledgeSolution{} }},
	{Table: "collateral_topic", Owner: KindCollateral, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &CollateralTopic{} }},
	{Table: "collateral_behaviour", Owner: KindCollateral, Targets: []string{"behaviour_id"}, model: func() interface{} { return &CollateralBehaviour{} }},
	{Table: "collateral_solution", Owner: KindCollateral, Targets: []string{"solution_id"}, model: func() interface{} { return &CollateralSolution{} }},
	{Table: "proposal_topic", Owner: KindProposal, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &ProposalTopic{} }},
	{Table: "proposal_outcome", Owner: KindProposal, Targets: []string{"outcome_id", "sub_outcome_id"}, model: func() interface{} { return &ProposalOutcome{} }},
	{Table: "proposal_organisation", Owner: KindProposal, Targets: []string{"organisation_id"}, model: func() interface{} { return &ProposalOrganisation{} }},
	{Table: "course_topic", Owner: KindCourse, Targets: []string{"topic_id", "sub_topic_id"}, model: func() interface{} { return &CourseTopic{} }},
	{Table: "course_outcome", Owner: KindCourse, Targets: []string{"outcome_id", "sub_outcome_id"}, model: func() interface{} { return &CourseOutcome{} }},
	{Table: "course_behaviour", Owner: KindCourse, Targets: []string{"behaviour_id"}, model: func() interface{} { return &CourseBehaviour{} }},
	{Table: "course_skill", Owner: KindCourse, Targets: []string{"skill_id"}, model: func() interface{} { return &CourseSkill{} }},
	{Table: "organisation_region", Owner: KindOrganisation, Targets: []string{"country_id"}, model: func() interface{} { return &OrganisationRegion{} }},
	{Table: "proposal_region", Owner: KindProposal, Targets: []string{"country_id"}, model: func() interface{} { return &ProposalRegion{} }},
}

func Joins() []JoinSpec {
	out := make([]JoinSpec, len(joinSpecs))
	copy(out, joinSpecs)
	return out
}

func LookupJoin(table string) (JoinSpec, bool) {
	for _, j := range joinSpecs {
		if j.Table == table {
			return j, true
		}
	}
	return JoinSpec{}, false
}
