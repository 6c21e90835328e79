package integration_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/models"
	"yadtamar_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	ts        *helpers.TestServer
	token     string
	completed *models.Request
}

// seedDashboard creates four January requests and one in February:
//
//	Haifa    Shopping Pending    Jan 05
//	Haifa    Repairs  Completed  Jan 10 10:00, completed after two hours
//	Tel Aviv Shopping Pending    Jan 31 23:00
//	Tel Aviv Shopping Rejected   Jan 15
//	Haifa    Shopping Pending    Feb 02
func seedDashboard(t *testing.T) dashboardFixture {
	ts := GetTestServer(t)
	db := ts.DB

	haifa := db.CreateCity(t, "Haifa")
	telAviv := db.CreateCity(t, "Tel Aviv")
	shopping := db.CreateRequestType(t, "Shopping")
	repairs := db.CreateRequestType(t, "Repairs")

	family := db.CreateUser(t, helpers.UserSpec{FirstName: "Cohen", Type: models.UserTypeFamily, Approved: true})
	volunteer := db.CreateVolunteer(t, helpers.UserSpec{FirstName: "Dana", Approved: true}, &haifa, &repairs)
	admin := db.CreateUser(t, helpers.UserSpec{FirstName: "Admin", Type: models.UserTypeAdmin, Approved: true})

	at := func(month time.Month, day, hour int) time.Time {
		return time.Date(2024, month, day, hour, 0, 0, 0, time.UTC)
	}
	completedAt := at(time.January, 10, 12)

	db.CreateRequest(t, helpers.RequestSpec{FamilyID: family.ID, CityID: &haifa, RequestTypeID: &shopping, CreatedAt: at(time.January, 5, 9)})
	completed := db.CreateRequest(t, helpers.RequestSpec{
		FamilyID:      family.ID,
		CityID:        &haifa,
		RequestTypeID: &repairs,
		Status:        models.RequestStatusCompleted,
		CreatedAt:     at(time.January, 10, 10),
		VolunteerID:   volunteer.ID,
		CompletedAt:   &completedAt,
	})
	db.CreateRequest(t, helpers.RequestSpec{FamilyID: family.ID, CityID: &telAviv, RequestTypeID: &shopping, CreatedAt: at(time.January, 31, 23)})
	db.CreateRequest(t, helpers.RequestSpec{FamilyID: family.ID, CityID: &telAviv, RequestTypeID: &shopping, Status: models.RequestStatusRejected, CreatedAt: at(time.January, 15, 8)})
	db.CreateRequest(t, helpers.RequestSpec{FamilyID: family.ID, CityID: &haifa, RequestTypeID: &shopping, CreatedAt: at(time.February, 2, 9)})

	return dashboardFixture{
		ts:        ts,
		token:     ts.TokenFor(t, admin.ID, auth.RoleAdmin),
		completed: completed,
	}
}

func (f dashboardFixture) get(t *testing.T, path string) (int, string) {
	res, body := f.ts.SendRequest(t, http.MethodGet, path, f.token, nil)
	return res.StatusCode, body
}

func TestDashboard_CountByCity(t *testing.T) {
	f := seedDashboard(t)

	code, body := f.get(t, "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31")
	require.Equal(t, http.StatusOK, code, body)
	// The date-only end covers Jan 31 23:00.
	assert.JSONEq(t, `{"Haifa":2,"Tel Aviv":2}`, body)

	code, body = f.get(t, "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31&status=Pending")
	require.Equal(t, http.StatusOK, code, body)
	assert.JSONEq(t, `{"Haifa":1,"Tel Aviv":1}`, body)

	code, body = f.get(t, "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31&status=Pending&type=Shopping&city=Haifa")
	require.Equal(t, http.StatusOK, code, body)
	assert.JSONEq(t, `{"Haifa":1}`, body)
}

func TestDashboard_CountByStatusAndType(t *testing.T) {
	f := seedDashboard(t)

	code, body := f.get(t, "/api/v1/dashboard/status-count?start_date=2024-01-01&end_date=2024-01-31")
	require.Equal(t, http.StatusOK, code, body)
	assert.JSONEq(t, `{"Pending":2,"Completed":1,"Rejected":1}`, body)

	code, body = f.get(t, "/api/v1/dashboard/type-count?start=2024-01-01&end=2024-02-28")
	require.Equal(t, http.StatusOK, code, body)
	assert.JSONEq(t, `{"Shopping":4,"Repairs":1}`, body)
}

func TestDashboard_StatusCountsPartitionTheTotal(t *testing.T) {
	f := seedDashboard(t)
	db := f.ts.DB

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC)

	cases := []struct {
		city, requestType string
	}{
		{"Haifa", "Shopping"},
		{"Haifa", "Repairs"},
		{"Tel Aviv", "Shopping"},
		{"Tel Aviv", "Repairs"},
	}
	for _, tc := range cases {
		t.Run(tc.city+"/"+tc.requestType, func(t *testing.T) {
			var total int64
			require.NoError(t, db.Gorm.Table("requests r").
				Joins("JOIN cities c ON c.id = r.city_id").
				Joins("JOIN request_types rt ON rt.id = r.request_type_id").
				Where("r.created_at BETWEEN ? AND ?", start, end).
				Where("c.city_name = ? AND rt.type_name = ?", tc.city, tc.requestType).
				Count(&total).Error)

			query := url.Values{}
			query.Set("start", "2024-01-01")
			query.Set("end", "2024-01-31")
			query.Set("city", tc.city)
			query.Set("type", tc.requestType)

			code, body := f.get(t, "/api/v1/dashboard/status-count?"+query.Encode())
			require.Equal(t, http.StatusOK, code, body)

			var counts map[string]int64
			require.NoError(t, json.Unmarshal([]byte(body), &counts))
			var sum int64
			for _, n := range counts {
				sum += n
			}
			assert.Equal(t, total, sum)
		})
	}
}

func TestDashboard_CompletionTime(t *testing.T) {
	f := seedDashboard(t)

	code, body := f.get(t, "/api/v1/dashboard/completion-time?start=2024-01-01&end=2024-01-31")
	require.Equal(t, http.StatusOK, code, body)

	var elapsed map[string]float64
	require.NoError(t, json.Unmarshal([]byte(body), &elapsed))
	require.Len(t, elapsed, 1)
	assert.InDelta(t, 7200, elapsed[f.completed.ID], 0.001)

	code, body = f.get(t, "/api/v1/dashboard/completion-time?start=2024-01-01&end=2024-01-31&city=Tel%20Aviv")
	require.Equal(t, http.StatusOK, code, body)
	assert.JSONEq(t, `{}`, body)
}

func TestDashboard_EmptyRange(t *testing.T) {
	f := seedDashboard(t)

	code, body := f.get(t, "/api/v1/dashboard/city-count?start=2023-01-01&end=2023-12-31")
	require.Equal(t, http.StatusOK, code, body)
	assert.JSONEq(t, `{}`, body)
}

func TestDashboard_InvalidQueries(t *testing.T) {
	f := seedDashboard(t)

	cases := map[string]string{
		"missing end":    "/api/v1/dashboard/city-count?start=2024-01-01",
		"malformed date": "/api/v1/dashboard/city-count?start=01/01/2024&end=2024-01-31",
		"reversed range": "/api/v1/dashboard/city-count?start=2024-02-01&end=2024-01-01",
		"unknown city":   "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31&city=Atlantis",
		"unknown status": "/api/v1/dashboard/status-count?start=2024-01-01&end=2024-01-31&status=Lost",
		"unknown type":   "/api/v1/dashboard/type-count?start=2024-01-01&end=2024-01-31&type=Juggling",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			code, body := f.get(t, path)
			assert.Equal(t, http.StatusBadRequest, code, body)
		})
	}
}
