package matching

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateMatchBatch ranks candidates for the mentor and persists them as a
// new pending batch. Returns (nil, nil) when there is nobody to match.
//
// The batch document and its candidate documents cannot be written in one
// statement, so this is a create-then-verify-then-delete-on-failure saga:
// if the candidate bulk-insert fails the batch is deleted again, and a
// failed delete is reported as a PartialWriteError so an operator can reap
// the orphan.
func (s *Service) CreateMatchBatch(ctx context.Context, mentorID primitive.ObjectID) (*models.MatchBatch, error) {
	if err := s.expireStalePending(ctx, mentorID); err != nil {
		return nil, err
	}

	existing, err := s.batches.FindPendingBatch(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPendingBatchExists
	}

	scores, err := s.FindBestMatches(ctx, mentorID, DefaultBatchSize)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, nil // no eligible students, nothing to propose
	}

	now := time.Now()
	batch := &models.MatchBatch{
		ID:          primitive.NewObjectID(),
		MentorID:    mentorID,
		Status:      models.BatchPending,
		InviteToken: uuid.NewString(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(models.BatchTTL),
	}
	if err := s.batches.InsertBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("insert batch: %w", err)
	}

	candidates := make([]models.MatchCandidate, 0, len(scores))
	for _, sc := range scores {
		candidates = append(candidates, models.MatchCandidate{
			ID:             primitive.NewObjectID(),
			BatchID:        batch.ID,
			StudentID:      sc.StudentID,
			MatchScore:     sc.Score,
			MatchReasons:   sc.Reasons,
			MatchingSkills: sc.MatchingSkills,
			MatchingGoals:  sc.MatchingGoals,
			MentorResponse: models.ResponsePending,
		})
	}

	if err := s.batches.InsertCandidates(ctx, candidates); err != nil {
		// Compensating delete: a batch must never be visible without its
		// candidates.
		if delErr := s.batches.DeleteBatch(ctx, batch.ID); delErr != nil {
			return nil, &PartialWriteError{
				BatchID:     batch.ID.Hex(),
				InsertErr:   err,
				RollbackErr: delErr,
			}
		}
		return nil, fmt.Errorf("insert candidates: %w", err)
	}

	batch.Candidates = candidates
	log.Printf("✅ match batch created: mentor=%s batch=%s candidates=%d", mentorID.Hex(), batch.ID.Hex(), len(candidates))
	return batch, nil
}

// GetBatch loads a batch with its candidates. Expiry is evaluated lazily
// here: a pending batch past its deadline is flipped to expired before it
// is returned.
func (s *Service) GetBatch(ctx context.Context, batchID primitive.ObjectID) (*models.MatchBatch, error) {
	batch, err := s.batches.FindBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	if err := s.expireIfDue(ctx, batch); err != nil {
		return nil, err
	}

	batch.Candidates, err = s.batches.FindCandidates(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// ResolveCandidate records the mentor's accept/decline for one candidate.
// The mentorResponse=pending filter on the update serializes double
// submissions: the first write wins, the second gets ErrAlreadyResolved.
//
// Completion rule: one accepted candidate completes the batch immediately;
// otherwise the batch completes when every candidate has been resolved.
func (s *Service) ResolveCandidate(ctx context.Context, batchID, studentID primitive.ObjectID, response string) error {
	if response != models.ResponseAccepted && response != models.ResponseDeclined {
		return fmt.Errorf("invalid response %q", response)
	}

	batch, err := s.batches.FindBatch(ctx, batchID)
	if err != nil {
		return err
	}
	if batch == nil {
		return ErrBatchNotFound
	}
	if err := s.expireIfDue(ctx, batch); err != nil {
		return err
	}
	if batch.Status != models.BatchPending {
		return ErrInvalidState
	}

	ok, err := s.batches.ResolveCandidate(ctx, batchID, studentID, response)
	if err != nil {
		return err
	}
	if !ok {
		// Nothing matched the optimistic filter. Distinguish "not in this
		// batch" from "already answered".
		cand, err := s.batches.FindCandidate(ctx, batchID, studentID)
		if err != nil {
			return err
		}
		if cand == nil {
			return ErrCandidateNotFound
		}
		return ErrAlreadyResolved
	}

	if response == models.ResponseAccepted {
		return s.batches.UpdateBatchStatus(ctx, batchID, models.BatchCompleted)
	}

	remaining, err := s.batches.CountPendingCandidates(ctx, batchID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return s.batches.UpdateBatchStatus(ctx, batchID, models.BatchCompleted)
	}
	return nil
}

// expireIfDue flips a pending batch past its deadline to expired and
// updates the in-memory copy. Completed and expired batches are terminal.
func (s *Service) expireIfDue(ctx context.Context, batch *models.MatchBatch) error {
	if batch.Status != models.BatchPending || time.Now().Before(batch.ExpiresAt) {
		return nil
	}
	if err := s.batches.UpdateBatchStatus(ctx, batch.ID, models.BatchExpired); err != nil {
		return err
	}
	batch.Status = models.BatchExpired
	log.Println("⏰ match batch expired:", batch.ID.Hex())
	return nil
}

func (s *Service) expireStalePending(ctx context.Context, mentorID primitive.ObjectID) error {
	pending, err := s.batches.FindPendingBatch(ctx, mentorID)
	if err != nil || pending == nil {
		return err
	}
	return s.expireIfDue(ctx, pending)
}
