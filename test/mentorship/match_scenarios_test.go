package mentorship

import (
	"testing"
	"time"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/services/matching"
	"github.com/CMIS-TAMU/cmis-events-sub002/test"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

// End-to-end scoring scenarios through the public API, the way a dashboard
// preview would exercise it.
func TestMatchScoringScenarios(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Match Scoring Scenarios")
	defer suiteResult.PrintSummary()

	currentYear := time.Now().Year()

	t.Run("TestStrongMatchOutranksWeakMatch", func(t *testing.T) {
		timer := test.NewTestTimer("Strong vs Weak Match")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Strong vs Weak Match",
				Duration: duration,
				Passed:   true,
			})
			test.PerformanceAssertion(t, "Strong vs Weak Match", duration, 100*time.Millisecond)
		}()

		mentor := models.MentorProfile{
			Name:               "Priya Sharma",
			Email:              "priya@example.com",
			Skills:             []string{"Python", "SQL", "Tableau"},
			AreasOfExpertise:   []string{"Analytics"},
			Industries:         []string{"Consulting"},
			PreferredHelpTypes: []string{"Career Advice"},
			IsActive:           true,
		}

		strong := models.StudentProfile{
			Skills:            []string{"python", "sql"},
			Interests:         []string{"analytics"},
			CareerGoals:       []string{"consulting"},
			GraduationYear:    intPtr(currentYear + 1),
			ActivityScore:     85,
			SeekingMentorship: true,
		}
		weak := models.StudentProfile{
			Skills:            []string{"welding"},
			Interests:         []string{"carpentry"},
			GraduationYear:    intPtr(currentYear + 5),
			ActivityScore:     10,
			SeekingMentorship: true,
		}

		strongScore := matching.ComputeScore(&mentor, &strong)
		weakScore := matching.ComputeScore(&mentor, &weak)

		assert.Greater(t, strongScore.Score, weakScore.Score)
		assert.NotEmpty(t, strongScore.MatchingSkills)
		assert.Empty(t, weakScore.MatchingSkills)
	})

	t.Run("TestScoreBreakdownAddsUp", func(t *testing.T) {
		timer := test.NewTestTimer("Score Breakdown")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Score Breakdown",
				Duration: duration,
				Passed:   true,
			})
		}()

		mentor := models.MentorProfile{
			Skills:     []string{"Go", "Kubernetes"},
			Industries: []string{"Cloud"},
			IsActive:   true,
		}
		student := models.StudentProfile{
			Skills:            []string{"go"},
			Interests:         []string{"cloud"},
			ActivityScore:     70,
			SeekingMentorship: true,
		}

		score := matching.ComputeScore(&mentor, &student)

		weighted := score.Reasons.SkillOverlap*0.40 +
			score.Reasons.GoalAlignment*0.25 +
			score.Reasons.GraduationYear*0.15 +
			score.Reasons.Activity*0.20
		assert.InDelta(t, weighted, score.Score, 0.01)
	})

	t.Run("TestEmptyProfilesStillScore", func(t *testing.T) {
		timer := test.NewTestTimer("Empty Profiles")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Empty Profiles",
				Duration: duration,
				Passed:   true,
			})
		}()

		score := matching.ComputeScore(&models.MentorProfile{}, &models.StudentProfile{})

		// no skills, no goals, unknown graduation year, zero activity:
		// only the neutral graduation factor contributes
		assert.Equal(t, 0.0, score.Reasons.SkillOverlap)
		assert.Equal(t, 0.0, score.Reasons.GoalAlignment)
		assert.Equal(t, 50.0, score.Reasons.GraduationYear)
		assert.Equal(t, 7.5, score.Score)
	})
}
