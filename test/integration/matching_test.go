package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"yadtamar_backend/internal/algorithms"
	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/models"
	"yadtamar_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_RanksEligibleVolunteers(t *testing.T) {
	ts := GetTestServer(t)
	db := ts.DB

	haifa := db.CreateCity(t, "Haifa")
	telAviv := db.CreateCity(t, "Tel Aviv")
	shopping := db.CreateRequestType(t, "Shopping")
	repairs := db.CreateRequestType(t, "Repairs")

	family := db.CreateUser(t, helpers.UserSpec{FirstName: "Cohen", Type: models.UserTypeFamily, Approved: true})
	request := db.CreateRequest(t, helpers.RequestSpec{
		FamilyID:      family.ID,
		CityID:        &haifa,
		RequestTypeID: &shopping,
	})

	both := db.CreateVolunteer(t, helpers.UserSpec{FirstName: "Both", Approved: true}, &haifa, &shopping)
	cityOnly := db.CreateVolunteer(t, helpers.UserSpec{FirstName: "City", Approved: true}, &haifa, nil)
	skillOnly := db.CreateVolunteer(t, helpers.UserSpec{FirstName: "Skill", Approved: true}, &telAviv, &shopping)
	neither := db.CreateVolunteer(t, helpers.UserSpec{FirstName: "Neither", Approved: true}, &telAviv, &repairs)
	db.CreateVolunteer(t, helpers.UserSpec{FirstName: "Pending"}, &haifa, &shopping)

	token := ts.TokenFor(t, both.ID, auth.RoleVolunteer)
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/match?request_id="+request.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var results []algorithms.MatchResult
	require.NoError(t, json.Unmarshal([]byte(body), &results))
	require.Len(t, results, 4, "the unapproved volunteer must not be ranked")

	assert.Equal(t, both.ID, results[0].VolunteerID)
	assert.Equal(t, 100, results[0].Score)

	// Equal scores keep user id order.
	first, second := cityOnly.ID, skillOnly.ID
	if second < first {
		first, second = second, first
	}
	assert.Equal(t, first, results[1].VolunteerID)
	assert.Equal(t, second, results[2].VolunteerID)
	assert.Equal(t, 50, results[1].Score)
	assert.Equal(t, 50, results[2].Score)

	assert.Equal(t, neither.ID, results[3].VolunteerID)
	assert.Equal(t, 0, results[3].Score)
}

func TestMatch_NoEligibleVolunteers(t *testing.T) {
	ts := GetTestServer(t)
	db := ts.DB

	haifa := db.CreateCity(t, "Haifa")
	family := db.CreateUser(t, helpers.UserSpec{FirstName: "Levi", Type: models.UserTypeFamily, Approved: true})
	request := db.CreateRequest(t, helpers.RequestSpec{FamilyID: family.ID, CityID: &haifa})
	admin := db.CreateUser(t, helpers.UserSpec{FirstName: "Admin", Type: models.UserTypeAdmin, Approved: true})

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/match?request_id="+request.ID, ts.TokenFor(t, admin.ID, auth.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `[]`, body)
}

func TestMatch_UnknownRequest(t *testing.T) {
	ts := GetTestServer(t)
	admin := ts.DB.CreateUser(t, helpers.UserSpec{FirstName: "Admin", Type: models.UserTypeAdmin, Approved: true})

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/match?request_id=zzzzzzzzz", ts.TokenFor(t, admin.ID, auth.RoleAdmin), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}
