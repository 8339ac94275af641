package matching

import (
	"context"
	"time"

	DB "github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore backs both ProfileStore and BatchStore with the shared
// collections from the database package.
type MongoStore struct {
	mentors    *mongo.Collection
	students   *mongo.Collection
	batches    *mongo.Collection
	candidates *mongo.Collection
}

// NewMongoStore wires the store to the shared database collections.
// database.ConnectMongoDB must have run first.
func NewMongoStore() *MongoStore {
	return &MongoStore{
		mentors:    DB.MentorCollection,
		students:   DB.StudentProfileCollection,
		batches:    DB.MatchBatchCollection,
		candidates: DB.MatchCandidateCollection,
	}
}

func (m *MongoStore) GetMentor(ctx context.Context, id primitive.ObjectID) (*models.MentorProfile, error) {
	var mentor models.MentorProfile
	err := m.mentors.FindOne(ctx, bson.M{"_id": id}).Decode(&mentor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

func (m *MongoStore) ListSeekingStudents(ctx context.Context) ([]models.StudentProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.students.Find(ctx, bson.M{"seekingMentorship": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []models.StudentProfile
	for cursor.Next(ctx) {
		var s models.StudentProfile
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, cursor.Err()
}

func (m *MongoStore) InsertBatch(ctx context.Context, batch *models.MatchBatch) error {
	_, err := m.batches.InsertOne(ctx, batch)
	return err
}

func (m *MongoStore) InsertCandidates(ctx context.Context, candidates []models.MatchCandidate) error {
	docs := make([]interface{}, 0, len(candidates))
	for i := range candidates {
		docs = append(docs, candidates[i])
	}
	_, err := m.candidates.InsertMany(ctx, docs)
	return err
}

func (m *MongoStore) DeleteBatch(ctx context.Context, id primitive.ObjectID) error {
	_, err := m.batches.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (m *MongoStore) FindBatch(ctx context.Context, id primitive.ObjectID) (*models.MatchBatch, error) {
	var batch models.MatchBatch
	err := m.batches.FindOne(ctx, bson.M{"_id": id}).Decode(&batch)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (m *MongoStore) FindPendingBatch(ctx context.Context, mentorID primitive.ObjectID) (*models.MatchBatch, error) {
	var batch models.MatchBatch
	err := m.batches.FindOne(ctx, bson.M{"mentorId": mentorID, "status": models.BatchPending}).Decode(&batch)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (m *MongoStore) FindCandidates(ctx context.Context, batchID primitive.ObjectID) ([]models.MatchCandidate, error) {
	cursor, err := m.candidates.Find(ctx, bson.M{"batchId": batchID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.MatchCandidate
	for cursor.Next(ctx) {
		var c models.MatchCandidate
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cursor.Err()
}

func (m *MongoStore) FindCandidate(ctx context.Context, batchID, studentID primitive.ObjectID) (*models.MatchCandidate, error) {
	var c models.MatchCandidate
	err := m.candidates.FindOne(ctx, bson.M{"batchId": batchID, "studentId": studentID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *MongoStore) UpdateBatchStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := m.batches.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

// ResolveCandidate relies on MongoDB's per-document update atomicity: the
// mentorResponse filter makes the first resolution win and leaves nothing
// for the second one to match.
func (m *MongoStore) ResolveCandidate(ctx context.Context, batchID, studentID primitive.ObjectID, response string) (bool, error) {
	now := time.Now()
	res, err := m.candidates.UpdateOne(ctx,
		bson.M{
			"batchId":        batchID,
			"studentId":      studentID,
			"mentorResponse": models.ResponsePending,
		},
		bson.M{"$set": bson.M{
			"mentorResponse": response,
			"respondedAt":    now,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (m *MongoStore) CountPendingCandidates(ctx context.Context, batchID primitive.ObjectID) (int64, error) {
	return m.candidates.CountDocuments(ctx, bson.M{
		"batchId":        batchID,
		"mentorResponse": models.ResponsePending,
	})
}
