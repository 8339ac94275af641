package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleExpireBatchTask flips a pending batch to expired once its deadline
// has passed. Lazy expiry on read remains the authoritative rule; this task
// is the sweep that catches batches nobody reads again.
func HandleExpireBatchTask(ctx context.Context, t *asynq.Task) error {
	var payload BatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.BatchID)
	if err != nil {
		return err
	}

	var batch models.MatchBatch
	err = database.MatchBatchCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&batch)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Batch not found. Possibly rolled back. Skipping task:", id.Hex())
			return nil
		}
		return err
	}

	if batch.Status != models.BatchPending || time.Now().Before(batch.ExpiresAt) {
		return nil // completed, already expired, or not due after all
	}

	_, err = database.MatchBatchCollection.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.BatchPending},
		bson.M{"$set": bson.M{"status": models.BatchExpired}},
	)
	if err != nil {
		log.Println("❌ Failed to expire batch:", err)
		return err
	}

	log.Println("✅ Batch expired by sweep:", id.Hex())
	return nil
}

// HandleVerifyBatchTask is the integrity check behind the batch+candidates
// saga: a crash between the two inserts can leave a batch with no
// candidates. Shortly after creation this task deletes any such orphan.
func HandleVerifyBatchTask(ctx context.Context, t *asynq.Task) error {
	var payload BatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.BatchID)
	if err != nil {
		return err
	}

	count, err := database.MatchCandidateCollection.CountDocuments(ctx, bson.M{"batchId": id})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	res, err := database.MatchBatchCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Println("❌ Failed to reap orphan batch:", err)
		return err
	}
	if res.DeletedCount > 0 {
		log.Println("⚠️ Reaped orphan batch with no candidates:", id.Hex())
	}
	return nil
}
