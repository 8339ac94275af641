package matching

import (
	"context"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileStore is the engine's read-only view of mentor and student
// profiles. Keeping it an interface keeps the engine testable without a
// live database.
type ProfileStore interface {
	// GetMentor returns (nil, nil) when the mentor does not exist.
	GetMentor(ctx context.Context, id primitive.ObjectID) (*models.MentorProfile, error)
	// ListSeekingStudents returns every student with seekingMentorship=true.
	ListSeekingStudents(ctx context.Context) ([]models.StudentProfile, error)
}

// BatchStore owns match_batches and match_candidates. The store offers
// per-document atomicity only; the orchestrator layers the compensating
// delete on top.
type BatchStore interface {
	InsertBatch(ctx context.Context, batch *models.MatchBatch) error
	InsertCandidates(ctx context.Context, candidates []models.MatchCandidate) error
	DeleteBatch(ctx context.Context, id primitive.ObjectID) error

	// FindBatch returns (nil, nil) when the batch does not exist.
	FindBatch(ctx context.Context, id primitive.ObjectID) (*models.MatchBatch, error)
	// FindPendingBatch returns the mentor's pending batch, or (nil, nil).
	FindPendingBatch(ctx context.Context, mentorID primitive.ObjectID) (*models.MatchBatch, error)
	FindCandidates(ctx context.Context, batchID primitive.ObjectID) ([]models.MatchCandidate, error)
	// FindCandidate returns (nil, nil) when no such candidate exists.
	FindCandidate(ctx context.Context, batchID, studentID primitive.ObjectID) (*models.MatchCandidate, error)

	UpdateBatchStatus(ctx context.Context, id primitive.ObjectID, status string) error
	// ResolveCandidate sets mentorResponse with an optimistic
	// mentorResponse=="pending" filter. Returns false when nothing matched
	// the filter (missing candidate or already resolved).
	ResolveCandidate(ctx context.Context, batchID, studentID primitive.ObjectID, response string) (bool, error)
	CountPendingCandidates(ctx context.Context, batchID primitive.ObjectID) (int64, error)
}
