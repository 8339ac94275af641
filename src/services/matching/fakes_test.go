package matching

import (
	"context"
	"errors"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory ProfileStore + BatchStore so the engine can be
// exercised without a database. Error injection per method via the fail map.
type fakeStore struct {
	mentors    map[primitive.ObjectID]*models.MentorProfile
	students   []models.StudentProfile
	batches    map[primitive.ObjectID]*models.MatchBatch
	candidates map[primitive.ObjectID][]models.MatchCandidate

	fail map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		mentors:    make(map[primitive.ObjectID]*models.MentorProfile),
		batches:    make(map[primitive.ObjectID]*models.MatchBatch),
		candidates: make(map[primitive.ObjectID][]models.MatchCandidate),
		fail:       make(map[string]error),
	}
}

func (f *fakeStore) failure(op string) error {
	if err, ok := f.fail[op]; ok {
		return err
	}
	return nil
}

func (f *fakeStore) GetMentor(_ context.Context, id primitive.ObjectID) (*models.MentorProfile, error) {
	if err := f.failure("GetMentor"); err != nil {
		return nil, err
	}
	return f.mentors[id], nil
}

func (f *fakeStore) ListSeekingStudents(_ context.Context) ([]models.StudentProfile, error) {
	if err := f.failure("ListSeekingStudents"); err != nil {
		return nil, err
	}
	var out []models.StudentProfile
	for _, s := range f.students {
		if s.SeekingMentorship {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertBatch(_ context.Context, batch *models.MatchBatch) error {
	if err := f.failure("InsertBatch"); err != nil {
		return err
	}
	cp := *batch
	f.batches[batch.ID] = &cp
	return nil
}

func (f *fakeStore) InsertCandidates(_ context.Context, candidates []models.MatchCandidate) error {
	if err := f.failure("InsertCandidates"); err != nil {
		return err
	}
	for _, c := range candidates {
		f.candidates[c.BatchID] = append(f.candidates[c.BatchID], c)
	}
	return nil
}

func (f *fakeStore) DeleteBatch(_ context.Context, id primitive.ObjectID) error {
	if err := f.failure("DeleteBatch"); err != nil {
		return err
	}
	delete(f.batches, id)
	delete(f.candidates, id)
	return nil
}

func (f *fakeStore) FindBatch(_ context.Context, id primitive.ObjectID) (*models.MatchBatch, error) {
	if err := f.failure("FindBatch"); err != nil {
		return nil, err
	}
	b, ok := f.batches[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) FindPendingBatch(_ context.Context, mentorID primitive.ObjectID) (*models.MatchBatch, error) {
	if err := f.failure("FindPendingBatch"); err != nil {
		return nil, err
	}
	for _, b := range f.batches {
		if b.MentorID == mentorID && b.Status == models.BatchPending {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindCandidates(_ context.Context, batchID primitive.ObjectID) ([]models.MatchCandidate, error) {
	if err := f.failure("FindCandidates"); err != nil {
		return nil, err
	}
	return append([]models.MatchCandidate(nil), f.candidates[batchID]...), nil
}

func (f *fakeStore) FindCandidate(_ context.Context, batchID, studentID primitive.ObjectID) (*models.MatchCandidate, error) {
	if err := f.failure("FindCandidate"); err != nil {
		return nil, err
	}
	for i := range f.candidates[batchID] {
		if f.candidates[batchID][i].StudentID == studentID {
			cp := f.candidates[batchID][i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateBatchStatus(_ context.Context, id primitive.ObjectID, status string) error {
	if err := f.failure("UpdateBatchStatus"); err != nil {
		return err
	}
	b, ok := f.batches[id]
	if !ok {
		return errors.New("batch not found")
	}
	b.Status = status
	return nil
}

func (f *fakeStore) ResolveCandidate(_ context.Context, batchID, studentID primitive.ObjectID, response string) (bool, error) {
	if err := f.failure("ResolveCandidate"); err != nil {
		return false, err
	}
	for i := range f.candidates[batchID] {
		c := &f.candidates[batchID][i]
		if c.StudentID == studentID && c.MentorResponse == models.ResponsePending {
			c.MentorResponse = response
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CountPendingCandidates(_ context.Context, batchID primitive.ObjectID) (int64, error) {
	if err := f.failure("CountPendingCandidates"); err != nil {
		return 0, err
	}
	var n int64
	for _, c := range f.candidates[batchID] {
		if c.MentorResponse == models.ResponsePending {
			n++
		}
	}
	return n, nil
}
