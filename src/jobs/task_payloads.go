package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeExpireBatch = "mentorship:expire_batch"
const TypeVerifyBatch = "mentorship:verify_batch"

type BatchPayload struct {
	BatchID string `json:"batch_id"`
}

func NewExpireBatchTask(batchID string) (*asynq.Task, error) {
	payload, err := json.Marshal(BatchPayload{BatchID: batchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExpireBatch, payload), nil
}

func NewVerifyBatchTask(batchID string) (*asynq.Task, error) {
	payload, err := json.Marshal(BatchPayload{BatchID: batchID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeVerifyBatch, payload), nil
}
