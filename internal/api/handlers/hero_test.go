package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/testutil"
)

type HeroResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type HeroSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func TestHeroHandler_CreateAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// Create without imageUrl
	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/heroes"), map[string]interface{}{
		"name":        "Ares",
		"role":        "Tank",
		"description": "d",
	}, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID uint `json:"id"`
	}
	testutil.AssertJSONResponse(t, resp, &created)
	require.NotZero(t, created.ID)

	// The show projection round-trips exactly what was submitted
	getResp, err := http.Get(ts.APIURL("/heroes/1"))
	require.NoError(t, err)
	defer getResp.Body.Close()

	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var hero HeroResponse
	testutil.AssertJSONResponse(t, getResp, &hero)
	assert.Equal(t, uint(1), hero.ID)
	assert.Equal(t, "Ares", hero.Name)
	assert.Equal(t, "Tank", hero.Role)
	assert.Equal(t, "d", hero.Description)
	assert.Nil(t, hero.ImageURL)
}

func TestHeroHandler_Get_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/heroes/999"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Hero not found")
}

func TestHeroHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name          string
		setup         func()
		query         string
		expectedCount int
	}{
		{
			name:          "empty database",
			query:         "",
			expectedCount: 0,
		},
		{
			name: "all heroes",
			setup: func() {
				testutil.NewHeroBuilder().WithName("Ares").WithRole("Tank").Build(t, ts.DB.DB)
				testutil.NewHeroBuilder().WithName("Hermes").WithRole("Damage").Build(t, ts.DB.DB)
				testutil.NewHeroBuilder().WithName("Hestia").WithRole("Support").Build(t, ts.DB.DB)
			},
			query:         "",
			expectedCount: 3,
		},
		{
			name: "filtered by role",
			setup: func() {
				testutil.NewHeroBuilder().WithRole("Tank").Build(t, ts.DB.DB)
				testutil.NewHeroBuilder().WithRole("Tank").Build(t, ts.DB.DB)
				testutil.NewHeroBuilder().WithRole("Support").Build(t, ts.DB.DB)
			},
			query:         "?role=Tank",
			expectedCount: 2,
		},
		{
			name: "search by name",
			setup: func() {
				testutil.NewHeroBuilder().WithName("Ares the Warlord").Build(t, ts.DB.DB)
				testutil.NewHeroBuilder().WithName("Hermes").Build(t, ts.DB.DB)
			},
			query:         "?search=Warlord",
			expectedCount: 1,
		},
		{
			name: "paginated",
			setup: func() {
				for i := 0; i < 5; i++ {
					testutil.NewHeroBuilder().Build(t, ts.DB.DB)
				}
			},
			query:         "?page=2&limit=2",
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp, err := http.Get(ts.APIURL("/heroes" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var result []HeroSummary
			testutil.AssertJSONResponse(t, resp, &result)
			assert.Len(t, result, tt.expectedCount)
		})
	}
}

func TestHeroHandler_Update_PartialFields(t *testing.T) {
	ts := testutil.NewTestServer(t)

	hero := testutil.NewHeroBuilder().
		WithName("Ares").
		WithRole("Tank").
		WithDescription("original").
		WithImageURL("https://cdn.example.com/ares.png").
		Build(t, ts.DB.DB)

	// Only description is present in the payload
	req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/heroes/1"), map[string]interface{}{
		"description": "updated",
	}, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Hero
	require.NoError(t, ts.DB.DB.First(&updated, hero.ID).Error)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, "Ares", updated.Name)
	assert.Equal(t, "Tank", updated.Role)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "https://cdn.example.com/ares.png", *updated.ImageURL)
}

func TestHeroHandler_Update_ExplicitNullClearsImageURL(t *testing.T) {
	ts := testutil.NewTestServer(t)

	hero := testutil.NewHeroBuilder().
		WithImageURL("https://cdn.example.com/ares.png").
		Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/heroes/1"), map[string]interface{}{
		"imageUrl": nil,
	}, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Hero
	require.NoError(t, ts.DB.DB.First(&updated, hero.ID).Error)
	assert.Nil(t, updated.ImageURL)
}

func TestHeroHandler_Update_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/heroes/999"), map[string]interface{}{
		"name": "Nobody",
	}, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Hero not found")
}

func TestHeroHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/heroes/1"), nil, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status struct {
		Status string `json:"status"`
	}
	testutil.AssertJSONResponse(t, resp, &status)
	assert.Equal(t, "deleted", status.Status)

	var count int64
	ts.DB.DB.Model(&domain.Hero{}).Where("id = ?", hero.ID).Count(&count)
	assert.Zero(t, count)
}
