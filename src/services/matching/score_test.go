package matching

import (
	"testing"
	"time"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var scoreNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func TestComputeScoreDeterminism(t *testing.T) {
	mentor := &models.MentorProfile{
		Skills:             []string{"Python", "SQL"},
		AreasOfExpertise:   []string{"Data Engineering"},
		Industries:         []string{"Tech"},
		PreferredHelpTypes: []string{"Career Advice"},
		IsActive:           true,
	}
	student := &models.StudentProfile{
		ID:             primitive.NewObjectID(),
		Skills:         []string{"python"},
		Interests:      []string{"tech"},
		CareerGoals:    []string{"Data Engineering"},
		GraduationYear: intPtr(2027),
		ActivityScore:  73.5,
	}

	first := computeScoreAt(mentor, student, scoreNow)
	second := computeScoreAt(mentor, student, scoreNow)
	assert.Equal(t, first, second)
}

func TestComputeScoreWeightSum(t *testing.T) {
	cases := []struct {
		name    string
		mentor  models.MentorProfile
		student models.StudentProfile
	}{
		{
			name: "FullProfiles",
			mentor: models.MentorProfile{
				Skills:             []string{"Go", "Kubernetes", "SQL"},
				AreasOfExpertise:   []string{"Backend"},
				Industries:         []string{"Cloud", "Fintech"},
				PreferredHelpTypes: []string{"Resume Review"},
			},
			student: models.StudentProfile{
				Skills:         []string{"go", "docker"},
				Interests:      []string{"cloud", "backend"},
				CareerGoals:    []string{"fintech"},
				GraduationYear: intPtr(2026),
				ActivityScore:  88,
			},
		},
		{
			name:    "EmptyProfiles",
			mentor:  models.MentorProfile{},
			student: models.StudentProfile{},
		},
		{
			name: "OutOfRangeActivity",
			mentor: models.MentorProfile{
				Skills: []string{"C++"},
			},
			student: models.StudentProfile{
				Skills:        []string{"c++"},
				ActivityScore: 250,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := computeScoreAt(&tc.mentor, &tc.student, scoreNow)

			weighted := got.Reasons.SkillOverlap*weightSkillOverlap +
				got.Reasons.GoalAlignment*weightGoalAlignment +
				got.Reasons.GraduationYear*weightGraduationYear +
				got.Reasons.Activity*weightActivity
			assert.InDelta(t, weighted, got.Score, 0.01)

			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 100.0)
		})
	}
}

func TestSkillOverlapEmptySetFloor(t *testing.T) {
	mentor := &models.MentorProfile{
		Industries: []string{"Energy"},
	}
	student := &models.StudentProfile{
		Skills:        []string{"Python", "SQL", "Spark"},
		Interests:     []string{"Data"},
		ActivityScore: 100,
	}

	got := computeScoreAt(mentor, student, scoreNow)
	assert.Equal(t, 0.0, got.Reasons.SkillOverlap)
	assert.Empty(t, got.MatchingSkills)
}

func TestGraduationYearStepFunction(t *testing.T) {
	currentYear := scoreNow.Year()

	cases := []struct {
		name string
		year *int
		want float64
	}{
		{"NilIsNeutral", nil, 50},
		{"AlreadyGraduated", intPtr(currentYear - 1), 100},
		{"GraduatingThisYear", intPtr(currentYear), 100},
		{"OneYearOut", intPtr(currentYear + 1), 90},
		{"TwoYearsOut", intPtr(currentYear + 2), 75},
		{"ThreeYearsOut", intPtr(currentYear + 3), 60},
		{"FourYearsOut", intPtr(currentYear + 4), 50},
		{"FiveYearsOut", intPtr(currentYear + 5), 40},
		{"SevenYearsOut", intPtr(currentYear + 7), 40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			student := &models.StudentProfile{GraduationYear: tc.year}
			got := computeScoreAt(&models.MentorProfile{}, student, scoreNow)
			assert.Equal(t, tc.want, got.Reasons.GraduationYear)
		})
	}
}

func TestCaseInsensitiveExactMatch(t *testing.T) {
	mentor := &models.MentorProfile{
		Skills: []string{"Python", "SQL"},
	}
	student := &models.StudentProfile{
		Skills: []string{"python"},
	}

	got := computeScoreAt(mentor, student, scoreNow)
	assert.Greater(t, got.Reasons.SkillOverlap, 0.0)
	assert.Equal(t, []string{"Python"}, got.MatchingSkills)
}

func TestSubstringMatchEitherDirection(t *testing.T) {
	mentor := &models.MentorProfile{
		Skills: []string{"Python"},
	}
	student := &models.StudentProfile{
		Skills: []string{"Python programming"},
	}

	got := computeScoreAt(mentor, student, scoreNow)
	assert.Greater(t, got.Reasons.SkillOverlap, 0.0)

	// and the reverse: mentor term contains the student term
	mentor2 := &models.MentorProfile{Skills: []string{"Python programming"}}
	student2 := &models.StudentProfile{Skills: []string{"python"}}
	got2 := computeScoreAt(mentor2, student2, scoreNow)
	assert.Greater(t, got2.Reasons.SkillOverlap, 0.0)
}

// Acronyms are a known blind spot of the substring rule, not a bug: "ML"
// must not match "Machine Learning".
func TestAcronymDoesNotMatch(t *testing.T) {
	mentor := &models.MentorProfile{
		Skills: []string{"Machine Learning"},
	}
	student := &models.StudentProfile{
		Interests: []string{"ML"},
	}

	got := computeScoreAt(mentor, student, scoreNow)
	assert.Equal(t, 0.0, got.Reasons.SkillOverlap)
}

func TestActivityScoreClamped(t *testing.T) {
	student := &models.StudentProfile{ActivityScore: 180}
	got := computeScoreAt(&models.MentorProfile{}, student, scoreNow)
	assert.Equal(t, 100.0, got.Reasons.Activity)

	student.ActivityScore = -20
	got = computeScoreAt(&models.MentorProfile{}, student, scoreNow)
	assert.Equal(t, 0.0, got.Reasons.Activity)
}

func TestMatchingSkillsFollowMentorOrder(t *testing.T) {
	mentor := &models.MentorProfile{
		Skills:           []string{"SQL", "Go"},
		AreasOfExpertise: []string{"Python"},
	}
	student := &models.StudentProfile{
		Skills: []string{"python", "go", "sql"},
	}

	got := computeScoreAt(mentor, student, scoreNow)
	assert.Equal(t, []string{"SQL", "Go", "Python"}, got.MatchingSkills)
}

func TestGoalAlignmentUsesGoalLists(t *testing.T) {
	mentor := &models.MentorProfile{
		Industries:         []string{"Healthcare"},
		PreferredHelpTypes: []string{"Interview Prep"},
	}
	student := &models.StudentProfile{
		CareerGoals: []string{"healthcare"},
		Interests:   []string{"interview prep"},
	}

	got := computeScoreAt(mentor, student, scoreNow)
	assert.Greater(t, got.Reasons.GoalAlignment, 0.0)
	assert.Equal(t, []string{"Healthcare", "Interview Prep"}, got.MatchingGoals)
}

func TestScoreRoundedToTwoDecimals(t *testing.T) {
	mentor := &models.MentorProfile{
		Skills: []string{"Go", "Rust", "SQL"},
	}
	student := &models.StudentProfile{
		Skills:        []string{"go"},
		ActivityScore: 33.333,
	}

	got := computeScoreAt(mentor, student, scoreNow)
	assert.Equal(t, got.Score, round2(got.Score))
	assert.Equal(t, got.Reasons.SkillOverlap, round2(got.Reasons.SkillOverlap))
}
