package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	DB "github.com/CMIS-TAMU/cmis-events-sub002/src/database"

	"github.com/hibiken/asynq"
)

const TypeBatchInvite = "mentorship:batch_invite"

type BatchInvitePayload struct {
	BatchID     string `json:"batch_id"`
	MentorName  string `json:"mentor_name"`
	MentorEmail string `json:"mentor_email"`
	InviteToken string `json:"invite_token"`
	Candidates  int    `json:"candidates"`
}

func NewBatchInviteTask(p BatchInvitePayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBatchInvite, payload), nil
}

// EnqueueBatchInvite schedules the invite mail for a freshly created batch.
// Best-effort: without Redis/Asynq the mentor just checks the dashboard.
func EnqueueBatchInvite(p BatchInvitePayload) {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Redis/Asynq not available → skip batch invite mail")
		return
	}

	task, err := NewBatchInviteTask(p)
	if err != nil {
		log.Println("batch invite: create task failed:", err)
		return
	}

	if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("batch-invite-"+p.BatchID), asynq.MaxRetry(3)); err != nil {
		log.Println("batch invite: enqueue failed:", err)
	} else {
		log.Println("✅ Enqueued batch invite:", p.BatchID)
	}
}

// HandleBatchInvite sends the invite mail with a link the mentor can open
// without logging in first (the invite token identifies the batch).
func HandleBatchInvite(sender MailSender, reviewURL func(token string) string) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p BatchInvitePayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}

		subject := "Your new mentee matches are ready"
		html := inviteBody(p, reviewURL(p.InviteToken))
		if err := sender.Send(p.MentorEmail, subject, html); err != nil {
			log.Println("❌ batch invite send failed:", err)
			return err
		}

		log.Println("✅ batch invite sent:", p.BatchID)
		return nil
	}
}

func inviteBody(p BatchInvitePayload, link string) string {
	return fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We found <b>%d students</b> who look like a great fit for your mentorship profile.</p>
		<p><a href="%s">Review your matches</a>. This batch stays open for 14 days.</p>
		<p>CMIS Events</p>`,
		p.MentorName, p.Candidates, link)
}
