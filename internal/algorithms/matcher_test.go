package algorithms

import (
	"testing"

	"yadtamar_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(v uint) *uint { return &v }

const (
	telAviv uint = 1
	haifa   uint = 2
	food    uint = 10
	medical uint = 11
)

func volunteer(userID string, city, skill *uint) models.VolunteerCandidate {
	return models.VolunteerCandidate{
		UserID:           userID,
		FirstName:        "Vol",
		LastName:         userID,
		PreferredCityID:  city,
		PreferredSkillID: skill,
		IsApproved:       true,
		UserType:         string(models.UserTypeVolunteer),
	}
}

func TestCalculateMatchScore(t *testing.T) {
	target := MatchTarget{CityID: id(telAviv), RequestTypeID: id(food)}

	tests := []struct {
		name      string
		target    MatchTarget
		volunteer models.VolunteerCandidate
		want      int
	}{
		{"city and skill match", target, volunteer("a", id(telAviv), id(food)), ScoreFull},
		{"only city matches", target, volunteer("b", id(telAviv), id(medical)), ScorePartial},
		{"only skill matches", target, volunteer("c", id(haifa), id(food)), ScorePartial},
		{"nothing matches", target, volunteer("d", id(haifa), id(medical)), ScoreNone},
		{"volunteer without preferences", target, volunteer("e", nil, nil), ScoreNone},
		{"null skill never matches", target, volunteer("f", id(telAviv), nil), ScorePartial},
		{"request without city", MatchTarget{RequestTypeID: id(food)}, volunteer("g", id(telAviv), id(food)), ScorePartial},
		{"both sides null", MatchTarget{}, volunteer("h", nil, nil), ScoreNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := CalculateMatchScore(tt.target, tt.volunteer)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateMatchScore_PartialIsSymmetric(t *testing.T) {
	target := MatchTarget{CityID: id(telAviv), RequestTypeID: id(food)}

	cityOnly, cityReasons := CalculateMatchScore(target, volunteer("c1", id(telAviv), id(medical)))
	skillOnly, skillReasons := CalculateMatchScore(target, volunteer("s1", id(haifa), id(food)))

	assert.Equal(t, ScorePartial, cityOnly)
	assert.Equal(t, cityOnly, skillOnly)
	assert.Equal(t, []string{"Same city"}, cityReasons)
	assert.Equal(t, []string{"Skill matches request type"}, skillReasons)
}

func TestRankVolunteers_ExcludesIneligible(t *testing.T) {
	target := MatchTarget{CityID: id(telAviv), RequestTypeID: id(food)}

	unapproved := volunteer("u1", id(telAviv), id(food))
	unapproved.IsApproved = false
	family := volunteer("f1", id(telAviv), id(food))
	family.UserType = string(models.UserTypeFamily)

	results := RankVolunteers(target, []models.VolunteerCandidate{
		unapproved,
		family,
		volunteer("ok", id(haifa), id(medical)),
	})

	require.Len(t, results, 1)
	assert.Equal(t, "ok", results[0].VolunteerID)
	assert.Equal(t, ScoreNone, results[0].Score)
}

func TestRankVolunteers_SortedWithStableTies(t *testing.T) {
	target := MatchTarget{CityID: id(telAviv), RequestTypeID: id(food)}

	results := RankVolunteers(target, []models.VolunteerCandidate{
		volunteer("p1", id(telAviv), id(medical)),
		volunteer("n1", id(haifa), id(medical)),
		volunteer("f1", id(telAviv), id(food)),
		volunteer("p2", id(haifa), id(food)),
		volunteer("f2", id(telAviv), id(food)),
	})

	var order []string
	for _, r := range results {
		order = append(order, r.VolunteerID)
	}
	assert.Equal(t, []string{"f1", "f2", "p1", "p2", "n1"}, order)
	assert.Equal(t, "Vol f1", results[0].VolunteerName)
}

func TestRankVolunteers_EmptyInput(t *testing.T) {
	results := RankVolunteers(MatchTarget{}, nil)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
