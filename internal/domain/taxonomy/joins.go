package taxonomy

import "time"

// Join rows link exactly one source id to one target id. Topic and outcome joins carry a
// nullable (parent, child) pair: a row references the topic or its sub-topic, never both.

type OutcomeTopic struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OutcomeID  int64     `gorm:"column:outcome_id;not null;index" json:"outcome_id"`
	TopicID    *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (OutcomeTopic) TableName() string { return "outcome_topic" }

type BehaviourTopic struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BehaviourID int64     `gorm:"column:behaviour_id;not null;index" json:"behaviour_id"`
	TopicID     *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID  *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (BehaviourTopic) TableName() string { return "behaviour_topic" }

type BehaviourOutcome struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BehaviourID  int64     `gorm:"column:behaviour_id;not null;index" json:"behaviour_id"`
	OutcomeID    *int64    `gorm:"column:outcome_id;index" json:"outcome_id,omitempty"`
	SubOutcomeID *int64    `gorm:"column:sub_outcome_id;index" json:"sub_outcome_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (BehaviourOutcome) TableName() string { return "behaviour_outcome" }

type BarrierTopic struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BarrierID  int64     `gorm:"column:barrier_id;not null;index" json:"barrier_id"`
	TopicID    *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (BarrierTopic) TableName() string { return "barrier_topic" }

type BarrierOutcome struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BarrierID    int64     `gorm:"column:barrier_id;not null;index" json:"barrier_id"`
	OutcomeID    *int64    `gorm:"column:outcome_id;index" json:"outcome_id,omitempty"`
	SubOutcomeID *int64    `gorm:"column:sub_outcome_id;index" json:"sub_outcome_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (BarrierOutcome) TableName() string { return "barrier_outcome" }

type BarrierBehaviour struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BarrierID   int64     `gorm:"column:barrier_id;not null;index" json:"barrier_id"`
	BehaviourID int64     `gorm:"column:behaviour_id;not null;index" json:"behaviour_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (BarrierBehaviour) TableName() string { return "barrier_behaviour" }

type SolutionTopic struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SolutionID int64     `gorm:"column:solution_id;not null;index" json:"solution_id"`
	TopicID    *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (SolutionTopic) TableName() string { return "solution_topic" }

type SolutionOutcome struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SolutionID   int64     `gorm:"column:solution_id;not null;index" json:"solution_id"`
	OutcomeID    *int64    `gorm:"column:outcome_id;index" json:"outcome_id,omitempty"`
	SubOutcomeID *int64    `gorm:"column:sub_outcome_id;index" json:"sub_outcome_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (SolutionOutcome) TableName() string { return "solution_outcome" }

type SolutionBehaviour struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SolutionID  int64     `gorm:"column:solution_id;not null;index" json:"solution_id"`
	BehaviourID int64     `gorm:"column:behaviour_id;not null;index" json:"behaviour_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (SolutionBehaviour) TableName() string { return "solution_behaviour" }

type SolutionBarrier struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SolutionID int64     `gorm:"column:solution_id;not null;index" json:"solution_id"`
	BarrierID  int64     `gorm:"column:barrier_id;not null;index" json:"barrier_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (SolutionBarrier) TableName() string { return "solution_barrier" }

type KnowledgeTopic struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	KnowledgeID int64     `gorm:"column:knowledge_id;not null;index" json:"knowledge_id"`
	TopicID     *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID  *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (KnowledgeTopic) TableName() string { return "knowledge_topic" }

type KnowledgeBehaviour struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	KnowledgeID int64     `gorm:"column:knowledge_id;not null;index" json:"knowledge_id"`
	BehaviourID int64     `gorm:"column:behaviour_id;not null;index" json:"behaviour_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (KnowledgeBehaviour) TableName() string { return "knowledge_behaviour" }

type KnowledgeSolution struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	KnowledgeID int64     `gorm:"column:knowledge_id;not null;index" json:"knowledge_id"`
	SolutionID  int64     `gorm:"column:solution_id;not null;index" json:"solution_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (KnowledgeSolution) TableName() string { return "knowledge_solution" }

type CollateralTopic struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CollateralID int64     `gorm:"column:collateral_id;not null;index" json:"collateral_id"`
	TopicID      *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID   *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CollateralTopic) TableName() string { return "collateral_topic" }

type CollateralBehaviour struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CollateralID int64     `gorm:"column:collateral_id;not null;index" json:"collateral_id"`
	BehaviourID  int64     `gorm:"column:behaviour_id;not null;index" json:"behaviour_id"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CollateralBehaviour) TableName() string { return "collateral_behaviour" }

type CollateralSolution struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CollateralID int64     `gorm:"column:collateral_id;not null;index" json:"collateral_id"`
	SolutionID   int64     `gorm:"column:solution_id;not null;index" json:"solution_id"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CollateralSolution) TableName() string { return "collateral_solution" }

type ProposalTopic struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProposalID int64     `gorm:"column:proposal_id;not null;index" json:"proposal_id"`
	TopicID    *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ProposalTopic) TableName() string { return "proposal_topic" }

type ProposalOutcome struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProposalID   int64     `gorm:"column:proposal_id;not null;index" json:"proposal_id"`
	OutcomeID    *int64    `gorm:"column:outcome_id;index" json:"outcome_id,omitempty"`
	SubOutcomeID *int64    `gorm:"column:sub_outcome_id;index" json:"sub_outcome_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ProposalOutcome) TableName() string { return "proposal_outcome" }

type ProposalOrganisation struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProposalID     int64     `gorm:"column:proposal_id;not null;index" json:"proposal_id"`
	OrganisationID int64     `gorm:"column:organisation_id;not null;index" json:"organisation_id"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ProposalOrganisation) TableName() string { return "proposal_organisation" }

type CourseTopic struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID   int64     `gorm:"column:course_id;not null;index" json:"course_id"`
	TopicID    *int64    `gorm:"column:topic_id;index" json:"topic_id,omitempty"`
	SubTopicID *int64    `gorm:"column:sub_topic_id;index" json:"sub_topic_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CourseTopic) TableName() string { return "course_topic" }

type CourseOutcome struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID     int64     `gorm:"column:course_id;not null;index" json:"course_id"`
	OutcomeID    *int64    `gorm:"column:outcome_id;index" json:"outcome_id,omitempty"`
	SubOutcomeID *int64    `gorm:"column:sub_outcome_id;index" json:"sub_outcome_id,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CourseOutcome) TableName() string { return "course_outcome" }

type CourseBehaviour struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID    int64     `gorm:"column:course_id;not null;index" json:"course_id"`
	BehaviourID int64     `gorm:"column:behaviour_id;not null;index" json:"behaviour_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CourseBehaviour) TableName() string { return "course_behaviour" }

type CourseSkill struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID  int64     `gorm:"column:course_id;not null;index" json:"course_id"`
	SkillID   int64     `gorm:"column:skill_id;not null;index" json:"skill_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CourseSkill) TableName() string { return "course_skill" }

// Region joins qualify an entity by country and, optionally, a state within it.

type OrganisationRegion struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrganisationID int64     `gorm:"column:organisation_id;not null;index" json:"organisation_id"`
	CountryID      int64     `gorm:"column:country_id;not null;index" json:"country_id"`
	StateID        *int64    `gorm:"column:state_id;index" json:"state_id,omitempty"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (OrganisationRegion) TableName() string { return "organisation_region" }

type ProposalRegion struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProposalID int64     `gorm:"column:proposal_id;not null;index" json:"proposal_id"`
	CountryID  int64     `gorm:"column:country_id;not null;index" json:"country_id"`
	StateID    *int64    `gorm:"column:state_id;index" json:"state_id,omitempty"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ProposalRegion) TableName() string { return "proposal_region" }
