package models

import (
	"time"

	"github.com/google/uuid"
)

// String tags are the canonical representation for priority, status and type.
// The wire format renders them as-is.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusDiscarded  = "discarded"

	TypeTask    = "task"
	TypeBug     = "bug"
	TypeFeature = "feature"
)

type Task struct {
	ID              uuid.UUID  `gorm:"primaryKey;type:uuid"`
	Title           string     `gorm:"size:255;uniqueIndex;not null"`
	Description     string     `gorm:"type:text"`
	DueDate         *time.Time
	Priority        string `gorm:"size:20;not null;default:'medium'"`
	Status          string `gorm:"size:20;not null;default:'open'"`
	Type            string `gorm:"size:20;not null;default:'task'"`
	CreatedByID     *uint
	CreatedBy       *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
	AssignedToID    *uint
	AssignedTo      *User `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletionDate  *time.Time
	RecurringTask   bool `gorm:"default:false"`
	Estimate        *int
	ActualTimeSpent *int
	Comments        []Comment `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	TaskID    uuid.UUID `gorm:"type:uuid;not null"`
}

func (Comment) TableName() string {
	return "comments"
}

// Dependency is a directed edge between two tasks: DependencyTaskID must be
// finished before DependentTaskID. No cycle prevention is performed.
type Dependency struct {
	ID               uint      `gorm:"primaryKey;autoIncrement"`
	DependencyTaskID uuid.UUID `gorm:"type:uuid;not null"`
	DependencyTask   Task      `gorm:"foreignKey:DependencyTaskID;constraint:OnDelete:CASCADE"`
	DependentTaskID  uuid.UUID `gorm:"type:uuid;not null"`
	DependentTask    Task      `gorm:"foreignKey:DependentTaskID;constraint:OnDelete:CASCADE"`
}

func (Dependency) TableName() string {
	return "dependencies"
}
