package matching

import (
	"math"
	"strings"
	"time"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"
)

// Factor weights. They always sum to 1.0.
const (
	weightSkillOverlap   = 0.40
	weightGoalAlignment  = 0.25
	weightGraduationYear = 0.15
	weightActivity       = 0.20
)

// ComputeScore scores one student for one mentor. Pure function: same
// inputs, same MatchScore. Empty profile lists produce factor scores of 0,
// never an error.
func ComputeScore(mentor *models.MentorProfile, student *models.StudentProfile) models.MatchScore {
	return computeScoreAt(mentor, student, time.Now())
}

func computeScoreAt(mentor *models.MentorProfile, student *models.StudentProfile, now time.Time) models.MatchScore {
	skillScore, matchingSkills := overlapScore(
		concat(mentor.Skills, mentor.AreasOfExpertise),
		concat(student.Skills, student.Interests),
	)
	goalScore, matchingGoals := overlapScore(
		concat(mentor.Industries, mentor.PreferredHelpTypes),
		concat(student.CareerGoals, student.Interests),
	)
	gradScore := graduationYearScore(student.GraduationYear, now.Year())
	activityScore := clamp(student.ActivityScore, 0, 100)

	total := skillScore*weightSkillOverlap +
		goalScore*weightGoalAlignment +
		gradScore*weightGraduationYear +
		activityScore*weightActivity

	return models.MatchScore{
		StudentID: student.ID,
		Score:     round2(total),
		Reasons: models.MatchReasons{
			SkillOverlap:   round2(skillScore),
			GoalAlignment:  round2(goalScore),
			GraduationYear: round2(gradScore),
			Activity:       round2(activityScore),
		},
		MatchingSkills: matchingSkills,
		MatchingGoals:  matchingGoals,
	}
}

// overlapScore counts mentor-side terms that match a student-side term and
// normalizes by the number of distinct terms across both sides. Returns the
// matched mentor terms in their original order of appearance.
//
// A term matches when the two strings are case-insensitively equal, or one
// contains the other. This is deliberately permissive ("Python" matches
// "Python programming") and does not catch acronyms ("ML" never matches
// "Machine Learning"). Very short terms should be pre-filtered by callers
// that care about precision.
func overlapScore(mentorTerms, studentTerms []string) (float64, []string) {
	if len(mentorTerms) == 0 || len(studentTerms) == 0 {
		return 0, nil
	}

	seen := make(map[string]bool)
	var matched []string
	matches := 0

	for _, mt := range mentorTerms {
		key := strings.ToLower(strings.TrimSpace(mt))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		for _, st := range studentTerms {
			if termsMatch(key, strings.ToLower(strings.TrimSpace(st))) {
				matches++
				matched = append(matched, mt)
				break
			}
		}
	}

	// distinct terms across both sides
	for _, st := range studentTerms {
		key := strings.ToLower(strings.TrimSpace(st))
		if key != "" && !seen[key] {
			seen[key] = true
		}
	}

	if len(seen) == 0 {
		return 0, nil
	}
	return float64(matches) / float64(len(seen)) * 100, matched
}

// termsMatch expects both terms already lowercased.
func termsMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// graduationYearScore favors students nearing graduation. Unknown year is
// neutral. A simple step function, not a curve.
func graduationYearScore(graduationYear *int, currentYear int) float64 {
	if graduationYear == nil {
		return 50
	}
	yearsUntil := *graduationYear - currentYear
	switch {
	case yearsUntil <= 0:
		return 100
	case yearsUntil == 1:
		return 90
	case yearsUntil == 2:
		return 75
	case yearsUntil == 3:
		return 60
	case yearsUntil == 4:
		return 50
	default:
		return 40
	}
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
