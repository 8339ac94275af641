package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Batch status
const (
	BatchPending   = "pending"
	BatchCompleted = "completed"
	BatchExpired   = "expired"
)

// Mentor response on a candidate
const (
	ResponsePending  = "pending"
	ResponseAccepted = "accepted"
	ResponseDeclined = "declined"
)

// BatchTTL is how long a mentor has to respond to a batch.
const BatchTTL = 14 * 24 * time.Hour

// MatchReasons breaks a score down into its weighted factors (each 0-100,
// before weighting).
type MatchReasons struct {
	SkillOverlap   float64 `bson:"skillOverlap" json:"skillOverlap"`
	GoalAlignment  float64 `bson:"goalAlignment" json:"goalAlignment"`
	GraduationYear float64 `bson:"graduationYearWeight" json:"graduationYearWeight"`
	Activity       float64 `bson:"activityWeight" json:"activityWeight"`
}

// MatchScore is the computed ranking value for one (mentor, student) pair.
// It is not persisted by the calculator; the orchestrator copies it into
// MatchCandidate rows.
type MatchScore struct {
	StudentID      primitive.ObjectID `json:"studentId"`
	Score          float64            `json:"score"`
	Reasons        MatchReasons       `json:"reasons"`
	MatchingSkills []string           `json:"matchingSkills"`
	MatchingGoals  []string           `json:"matchingGoals"`
}

// MatchBatch is a fixed-size, time-boxed proposal of candidate students
// sent to one mentor.
type MatchBatch struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MentorID    primitive.ObjectID `bson:"mentorId" json:"mentorId"`
	Status      string             `bson:"status" json:"status"`
	InviteToken string             `bson:"inviteToken" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	ExpiresAt   time.Time          `bson:"expiresAt" json:"expiresAt"`

	// Loaded alongside the batch on reads; not stored on the batch document.
	Candidates []MatchCandidate `bson:"-" json:"candidates,omitempty"`
}

// MatchCandidate is one (student, score) pairing within a batch. Candidates
// are inserted together with their batch and never added afterwards;
// MentorResponse is written exactly once.
type MatchCandidate struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BatchID        primitive.ObjectID `bson:"batchId" json:"batchId"`
	StudentID      primitive.ObjectID `bson:"studentId" json:"studentId"`
	MatchScore     float64            `bson:"matchScore" json:"matchScore"`
	MatchReasons   MatchReasons       `bson:"matchReasons" json:"matchReasons"`
	MatchingSkills []string           `bson:"matchingSkills" json:"matchingSkills"`
	MatchingGoals  []string           `bson:"matchingGoals" json:"matchingGoals"`
	MentorResponse string             `bson:"mentorResponse" json:"mentorResponse"`
	RespondedAt    *time.Time         `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}
