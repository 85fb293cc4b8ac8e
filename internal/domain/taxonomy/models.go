package taxonomy

// Models lists every table owned by this package, entities before joins.
func Models() []interface{} {
	return []interface{}{
		&Topic{}, &SubTopic{}, &Outcome{}, &SubOutcome{},
		&Behaviour{}, &Barrier{}, &Solution{},
		&Knowledge{}, &Collateral{}, &Proposal{}, &Course{}, &Organisation{}, &Skill{},
		&Country{}, &State{},
		&OutcomeTopic{},
		&BehaviourTopic{},
		&BehaviourOutcome{},
		&BarrierTopic{},
		&BarrierOutcome{},
		&BarrierBehaviour{},
		&SolutionTopic{},
		&SolutionOutcome{},
		&SolutionBehaviour{},
		&SolutionBarrier{},
		&KnowledgeTopic{},
		&KnowledgeBehaviour{},
		&KnowledgeSolution{},
		&CollateralTopic{},
		&CollateralBehaviour{},
		&CollateralSolution{},
		&ProposalTopic{},
		&ProposalOutcome{},
		&ProposalOrganisation{},
		&CourseTopic{},
		&CourseOutcome{},
		&CourseBehaviour{},
		&CourseSkill{},
		&OrganisationRegion{},
		&ProposalRegion{},
	}
}
