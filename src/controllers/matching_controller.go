package controllers

import (
	"errors"
	"strconv"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/jobs"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/services/matching"
	matchemail "github.com/CMIS-TAMU/cmis-events-sub002/src/services/matching/email"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/services/mentors"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// matchService is wired once at startup via InitMatching.
var matchService *matching.Service

// InitMatching injects the engine the controllers delegate to.
func InitMatching(s *matching.Service) {
	matchService = s
}

// PreviewMatches godoc
// @Summary      Preview best matches for a mentor
// @Description  Ranks students seeking mentorship for the mentor. Read-only, no batch is created.
// @Tags         mentorship
// @Produce      json
// @Param        id path string true "Mentor ID"
// @Param        limit query int false "Max results (default 4)"
// @Success      200  {array}   models.MatchScore
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentorship/mentors/{id}/matches [get]
func PreviewMatches(c *fiber.Ctx) error {
	mentorID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid mentor ID")
	}

	limit, _ := strconv.Atoi(c.Query("limit", "4"))

	// Default-sized previews are cached; a custom limit always recomputes.
	if limit == matching.DefaultBatchSize {
		if cached, ok := utils.GetCachedMatchPreview(mentorID.Hex()); ok {
			return c.JSON(cached)
		}
	}

	scores, err := matchService.FindBestMatches(c.Context(), mentorID, limit)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error computing matches")
	}

	if limit == matching.DefaultBatchSize {
		utils.CacheMatchPreview(mentorID.Hex(), scores)
	}
	return c.JSON(scores)
}

// CreateMatchBatch godoc
// @Summary      Create a match batch for a mentor
// @Description  Persists the top candidates as a pending batch with a 14-day deadline. Returns 200 with null when no eligible students exist.
// @Tags         mentorship
// @Produce      json
// @Param        id path string true "Mentor ID"
// @Success      201  {object}  models.MatchBatch
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentorship/mentors/{id}/batches [post]
func CreateMatchBatch(c *fiber.Ctx) error {
	mentorID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid mentor ID")
	}

	batch, err := matchService.CreateMatchBatch(c.Context(), mentorID)
	if err != nil {
		var pwErr *matching.PartialWriteError
		switch {
		case errors.Is(err, matching.ErrPendingBatchExists):
			return utils.HandleError(c, fiber.StatusConflict, "Mentor already has a pending batch")
		case errors.As(err, &pwErr):
			// Invariant violation, needs an operator. Surface it loudly.
			return utils.HandleError(c, fiber.StatusInternalServerError, pwErr.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating match batch")
		}
	}
	if batch == nil {
		return c.JSON(fiber.Map{
			"message": "No eligible students to match",
			"batch":   nil,
		})
	}

	utils.InvalidateMatchPreview(mentorID.Hex())
	jobs.ScheduleBatchTasks(batch)
	notifyMentor(batch)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Match batch created",
		"batch":   batch,
	})
}

// GetMatchBatch godoc
// @Summary      Get a batch with its candidates
// @Description  Expiry is evaluated on read: a pending batch past its deadline comes back as expired.
// @Tags         mentorship
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200  {object}  models.MatchBatch
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentorship/batches/{id} [get]
func GetMatchBatch(c *fiber.Ctx) error {
	batchID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid batch ID")
	}

	batch, err := matchService.GetBatch(c.Context(), batchID)
	if err != nil {
		if errors.Is(err, matching.ErrBatchNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Batch not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error loading batch")
	}
	return c.JSON(batch)
}

// RespondToCandidate godoc
// @Summary      Accept or decline a candidate
// @Description  Each candidate can be resolved exactly once. Accepting any candidate closes the batch.
// @Tags         mentorship
// @Accept       json
// @Produce      json
// @Param        id path string true "Batch ID"
// @Param        studentId path string true "Student ID"
// @Param        body body controllers.RespondRequest true "accepted or declined"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentorship/batches/{id}/candidates/{studentId}/respond [post]
func RespondToCandidate(c *fiber.Ctx) error {
	batchID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid batch ID")
	}
	studentID, err := primitive.ObjectIDFromHex(c.Params("studentId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if req.Response != models.ResponseAccepted && req.Response != models.ResponseDeclined {
		return utils.HandleError(c, fiber.StatusBadRequest, "Response must be 'accepted' or 'declined'")
	}

	err = matchService.ResolveCandidate(c.Context(), batchID, studentID, req.Response)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "Response recorded"})
	case errors.Is(err, matching.ErrBatchNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Batch not found")
	case errors.Is(err, matching.ErrCandidateNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Candidate not found in this batch")
	case errors.Is(err, matching.ErrInvalidState):
		return utils.HandleError(c, fiber.StatusConflict, "This batch is no longer open")
	case errors.Is(err, matching.ErrAlreadyResolved):
		return utils.HandleError(c, fiber.StatusConflict, "This invitation has already been responded to")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error recording response")
	}
}

// RespondRequest is the body for RespondToCandidate.
type RespondRequest struct {
	Response string `json:"response"`
}

// notifyMentor enqueues the invite mail for a new batch, best-effort.
func notifyMentor(batch *models.MatchBatch) {
	mentor, err := mentors.GetMentorByID(batch.MentorID.Hex())
	if err != nil || mentor.Email == "" {
		return
	}
	matchemail.EnqueueBatchInvite(matchemail.BatchInvitePayload{
		BatchID:     batch.ID.Hex(),
		MentorName:  mentor.Name,
		MentorEmail: mentor.Email,
		InviteToken: batch.InviteToken,
		Candidates:  len(batch.Candidates),
	})
}
