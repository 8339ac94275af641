package matching

import (
	"context"
	"testing"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedMentor(store *fakeStore, active bool) primitive.ObjectID {
	id := primitive.NewObjectID()
	store.mentors[id] = &models.MentorProfile{
		ID:               id,
		Name:             "Alex Rivera",
		Email:            "alex@example.edu",
		Skills:           []string{"Python", "SQL"},
		AreasOfExpertise: []string{"Data Engineering"},
		Industries:       []string{"Tech"},
		IsActive:         active,
	}
	return id
}

func seedStudent(store *fakeStore, skills []string, activity float64, seeking bool) primitive.ObjectID {
	id := primitive.NewObjectID()
	store.students = append(store.students, models.StudentProfile{
		ID:                id,
		Skills:            skills,
		ActivityScore:     activity,
		SeekingMentorship: seeking,
	})
	return id
}

func TestFindBestMatchesBounds(t *testing.T) {
	store := newFakeStore()
	mentorID := seedMentor(store, true)
	for i := 0; i < 10; i++ {
		seedStudent(store, []string{"python"}, float64(i*10), true)
	}
	svc := NewService(store, store)

	matches, err := svc.FindBestMatches(context.Background(), mentorID, 4)
	require.NoError(t, err)
	assert.Len(t, matches, 4)

	// descending by score
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestFindBestMatchesInactiveMentor(t *testing.T) {
	store := newFakeStore()
	mentorID := seedMentor(store, false)
	seedStudent(store, []string{"python"}, 90, true)
	svc := NewService(store, store)

	matches, err := svc.FindBestMatches(context.Background(), mentorID, 4)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindBestMatchesUnknownMentor(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, store)

	matches, err := svc.FindBestMatches(context.Background(), primitive.NewObjectID(), 4)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindBestMatchesSkipsNonSeekingStudents(t *testing.T) {
	store := newFakeStore()
	mentorID := seedMentor(store, true)
	seeking := seedStudent(store, []string{"python"}, 80, true)
	seedStudent(store, []string{"python"}, 95, false)
	svc := NewService(store, store)

	matches, err := svc.FindBestMatches(context.Background(), mentorID, 4)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, seeking, matches[0].StudentID)
}

func TestFindBestMatchesFewerStudentsThanLimit(t *testing.T) {
	store := newFakeStore()
	mentorID := seedMentor(store, true)
	seedStudent(store, []string{"sql"}, 50, true)
	seedStudent(store, []string{"python"}, 60, true)
	svc := NewService(store, store)

	matches, err := svc.FindBestMatches(context.Background(), mentorID, 4)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFindBestMatchesDefaultLimit(t *testing.T) {
	store := newFakeStore()
	mentorID := seedMentor(store, true)
	for i := 0; i < 8; i++ {
		seedStudent(store, []string{"python"}, 50, true)
	}
	svc := NewService(store, store)

	matches, err := svc.FindBestMatches(context.Background(), mentorID, 0)
	require.NoError(t, err)
	assert.Len(t, matches, DefaultBatchSize)
}

func TestFindBestMatchesTieBreakByStudentID(t *testing.T) {
	store := newFakeStore()
	mentorID := seedMentor(store, true)
	// identical profiles, identical scores
	a := seedStudent(store, []string{"python"}, 50, true)
	b := seedStudent(store, []string{"python"}, 50, true)
	c := seedStudent(store, []string{"python"}, 50, true)
	svc := NewService(store, store)

	matches, err := svc.FindBestMatches(context.Background(), mentorID, 4)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	ids := []string{a.Hex(), b.Hex(), c.Hex()}
	want := append([]string(nil), ids...)
	// ObjectIDs are monotonically increasing, so insertion order is the
	// sorted order here; assert the engine actually sorted.
	for i := 1; i < len(want); i++ {
		assert.Less(t, want[i-1], want[i])
	}
	for i, m := range matches {
		assert.Equal(t, want[i], m.StudentID.Hex())
	}
}
