package matching

import (
	"context"
	"sort"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultBatchSize is how many candidates go into a batch when the caller
// does not ask for a specific limit.
const DefaultBatchSize = 4

// Service is the matching engine. It holds no state of its own; everything
// it reads and writes goes through the injected stores.
type Service struct {
	profiles ProfileStore
	batches  BatchStore
}

func NewService(profiles ProfileStore, batches BatchStore) *Service {
	return &Service{profiles: profiles, batches: batches}
}

// FindBestMatches ranks every student seeking mentorship for the given
// mentor and returns the top limit. Read-only, safe to call speculatively
// for a preview. A missing or deactivated mentor simply has no matches:
// empty result, no error.
func (s *Service) FindBestMatches(ctx context.Context, mentorID primitive.ObjectID, limit int) ([]models.MatchScore, error) {
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	mentor, err := s.profiles.GetMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil || !mentor.IsActive {
		return []models.MatchScore{}, nil
	}

	students, err := s.profiles.ListSeekingStudents(ctx)
	if err != nil {
		return nil, err
	}

	scores := make([]models.MatchScore, 0, len(students))
	for i := range students {
		scores = append(scores, ComputeScore(mentor, &students[i]))
	}

	// Equal scores fall back to studentId so the ordering never depends on
	// whatever order the store returned the profiles in.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].StudentID.Hex() < scores[j].StudentID.Hex()
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}
