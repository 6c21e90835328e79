package algorithms

import (
	"sort"

	"yadtamar_backend/internal/models"
)

const (
	ScoreNone    = 0
	ScorePartial = 50
	ScoreFull    = 100
)

// MatchTarget is the part of a request the scorer looks at.
type MatchTarget struct {
	CityID        *uint
	RequestTypeID *uint
}

// MatchResult is one scored volunteer.
type MatchResult struct {
	VolunteerID   string   `json:"volunteer_id"`
	VolunteerName string   `json:"volunteer_name"`
	Score         int      `json:"score"`
	Reasons       []string `json:"reasons,omitempty"`
}

// IsEligible reports whether a volunteer may be offered work at all:
// the account must be approved and typed VOLUNTEER.
func IsEligible(v models.VolunteerCandidate) bool {
	return v.IsApproved && v.UserType == string(models.UserTypeVolunteer)
}

// CalculateMatchScore scores one volunteer against a request:
// 100 when both city and skill match, 50 when exactly one does, 0 otherwise.
// A nil id on either side never matches.
func CalculateMatchScore(target MatchTarget, v models.VolunteerCandidate) (int, []string) {
	var reasons []string

	cityMatch := sameID(target.CityID, v.PreferredCityID)
	if cityMatch {
		reasons = append(reasons, "Same city")
	}
	skillMatch := sameID(target.RequestTypeID, v.PreferredSkillID)
	if skillMatch {
		reasons = append(reasons, "Skill matches request type")
	}

	switch {
	case cityMatch && skillMatch:
		return ScoreFull, reasons
	case cityMatch || skillMatch:
		return ScorePartial, reasons
	default:
		return ScoreNone, reasons
	}
}

// RankVolunteers drops ineligible candidates, scores the rest and orders them
// by score descending. Ties keep the order in which candidates were given.
func RankVolunteers(target MatchTarget, candidates []models.VolunteerCandidate) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for _, v := range candidates {
		if !IsEligible(v) {
			continue
		}
		score, reasons := CalculateMatchScore(target, v)
		results = append(results, MatchResult{
			VolunteerID:   v.UserID,
			VolunteerName: v.Name(),
			Score:         score,
			Reasons:       reasons,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func sameID(a, b *uint) bool {
	return a != nil && b != nil && *a == *b
}
