package jobs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/services/matching/email"

	"github.com/hibiken/asynq"
)

// verifyDelay is how long after creation the orphan check runs. Long enough
// for the candidate insert to finish, short enough that an orphan batch
// never survives a mentor's first dashboard visit.
const verifyDelay = 2 * time.Minute

// ScheduleBatchTasks enqueues the expiry sweep and the orphan check for a
// freshly created batch. Best-effort: without Redis, lazy expiry on read
// still covers state transitions.
func ScheduleBatchTasks(batch *models.MatchBatch) {
	if database.AsynqClient == nil {
		log.Println("⚠️ Redis/Asynq not available → skip scheduling batch tasks")
		return
	}

	if task, err := NewExpireBatchTask(batch.ID.Hex()); err == nil {
		_, err = database.AsynqClient.Enqueue(task,
			asynq.ProcessAt(batch.ExpiresAt),
			asynq.TaskID("expire-batch-"+batch.ID.Hex()),
		)
		if err != nil {
			log.Println("expire sweep: enqueue failed:", err)
		}
	}

	if task, err := NewVerifyBatchTask(batch.ID.Hex()); err == nil {
		_, err = database.AsynqClient.Enqueue(task,
			asynq.ProcessIn(verifyDelay),
			asynq.TaskID("verify-batch-"+batch.ID.Hex()),
		)
		if err != nil {
			log.Println("orphan check: enqueue failed:", err)
		}
	}
}

// StartWorker runs the Asynq server with all mentorship handlers. Call in
// a goroutine from main; returns immediately when Redis is not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeExpireBatch, HandleExpireBatchTask)
	mux.HandleFunc(TypeVerifyBatch, HandleVerifyBatchTask)

	if err := registerInviteHandler(mux); err != nil {
		log.Println("⚠️ Invite mail disabled:", err)
	}

	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Asynq worker failed:", err)
	}
}

// registerInviteHandler wires the invite-mail handler when SMTP is
// configured.
func registerInviteHandler(mux *asynq.ServeMux) error {
	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		return err
	}

	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:8888"
	}
	base = strings.TrimRight(base, "/")

	reviewURL := func(token string) string {
		return base + "/Mentor/Matches/" + token
	}

	mux.HandleFunc(email.TypeBatchInvite, email.HandleBatchInvite(sender, reviewURL))
	return nil
}
