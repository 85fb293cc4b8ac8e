package taxonomy

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Node holds the columns shared by every filterable entity.
type Node struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID        uuid.UUID      `gorm:"column:uuid;type:uuid;uniqueIndex;not null" json:"uuid"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description,omitempty"`
	Status      string         `gorm:"column:status;not null;default:'draft';index" json:"status"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// GetNode exposes the shared columns of any model embedding Node.
func (n *Node) GetNode() *Node { return n }

func (n *Node) BeforeCreate(tx *gorm.DB) error {
	if n.UUID == uuid.Nil {
		n.UUID = uuid.New()
	}
	if n.Status == "" {
		n.Status = StatusDraft
	}
	return nil
}

type Topic struct {
	Node
}

func (Topic) TableName() string { return KindTopic.Table() }

type SubTopic struct {
	Node
	TopicID int64 `gorm:"column:topic_id;not null;index" json:"topic_id"`
}

func (SubTopic) TableName() string { return KindSubTopic.Table() }

type Outcome struct {
	Node
}

func (Outcome) TableName() string { return KindOutcome.Table() }

type SubOutcome struct {
	Node
	OutcomeID int64 `gorm:"column:outcome_id;not null;index" json:"outcome_id"`
}

func (SubOutcome) TableName() string { return KindSubOutcome.Table() }

type Behaviour struct {
	Node
}

func (Behaviour) TableName() string { return KindBehaviour.Table() }

type Barrier struct {
	Node
}

func (Barrier) TableName() string { return KindBarrier.Table() }

type Solution struct {
	Node
}

func (Solution) TableName() string { return KindSolution.Table() }

// Content items carry free-form attributes (links, formats, durations) next to the node columns.

type Knowledge struct {
	Node
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb" json:"attributes,omitempty"`
}

func (Knowledge) TableName() string { return KindKnowledge.Table() }

type Collateral struct {
	Node
	FileURL    string         `gorm:"column:file_url" json:"file_url,omitempty"`
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb" json:"attributes,omitempty"`
}

func (Collateral) TableName() string { return KindCollateral.Table() }

type Proposal struct {
	Node
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb" json:"attributes,omitempty"`
}

func (Proposal) TableName() string { return KindProposal.Table() }

type Course struct {
	Node
	BundleID   *int64         `gorm:"column:bundle_id;index" json:"bundle_id,omitempty"`
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb" json:"attributes,omitempty"`
}

func (Course) TableName() string { return KindCourse.Table() }

type Organisation struct {
	Node
	Website   string `gorm:"column:website" json:"website,omitempty"`
	CountryID *int64 `gorm:"column:country_id;index" json:"country_id,omitempty"`
	StateID   *int64 `gorm:"column:state_id;index" json:"state_id,omitempty"`
}

func (Organisation) TableName() string { return KindOrganisation.Table() }

type Skill struct {
	Node
}

func (Skill) TableName() string { return KindSkill.Table() }

type Country struct {
	Node
	Code string `gorm:"column:code;size:2;index" json:"code"`
}

func (Country) TableName() string { return KindCountry.Table() }

type State struct {
	Node
	CountryID int64 `gorm:"column:country_id;not null;index" json:"country_id"`
}

func (State) TableName() string { return KindState.Table() }

// NewModel returns a zero value of the model backing kind, for queries that need a typed destination.
func NewModel(kind Kind) (interface{}, bool) {
	switch kind {
	case KindTopic:
		return &Topic{}, true
	case KindSubTopic:
		return &SubTopic{}, true
	case KindOutcome:
		return &Outcome{}, true
	case KindSubOutcome:
		return &SubOutcome{}, true
	case KindBehaviour:
		return &Behaviour{}, true
	case KindBarrier:
		return &Barrier{}, true
	case KindSolution:
		return &Solution{}, true
	case KindKnowledge:
		return &Knowledge{}, true
	case KindCollateral:
		return &Collateral{}, true
	case KindProposal:
		return &Proposal{}, true
	case KindCourse:
		return &Course{}, true
	case KindOrganisation:
		return &Organisation{}, true
	case KindSkill:
		return &Skill{}, true
	case KindCountry:
		return &Country{}, true
	case KindState:
		return &State{}, true
	default:
		return nil, false
	}
}

// NewSlice returns a pointer to an empty slice of kind's model, usable as a Find destination.
func NewSlice(kind Kind) (interface{}, bool) {
	switch kind {
	case KindTopic:
		return &[]*Topic{}, true
	case KindSubTopic:
		return &[]*SubTopic{}, true
	case KindOutcome:
		return &[]*Outcome{}, true
	case KindSubOutcome:
		return &[]*SubOutcome{}, true
	case KindBehaviour:
		return &[]*Behaviour{}, true
	case KindBarrier:
		return &[]*Barrier{}, true
	case KindSolution:
		return &[]*Solution{}, true
	case KindKnowledge:
		return &[]*Knowledge{}, true
	case KindCollateral:
		return &[]*Collateral{}, true
	case KindProposal:
		return &[]*Proposal{}, true
	case KindCourse:
		return &[]*Course{}, true
	case KindOrganisation:
		return &[]*Organisation{}, true
	case KindSkill:
		return &[]*Skill{}, true
	case KindCountry:
		return &[]*Country{}, true
	case KindState:
		return &[]*State{}, true
	default:
		return nil, false
	}
}
