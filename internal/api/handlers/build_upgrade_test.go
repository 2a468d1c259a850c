package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/testutil"
)

type BuildUpgradeResponse struct {
	ID      uint `json:"id"`
	Build   uint `json:"build"`
	Upgrade uint `json:"upgrade"`
	Slot    int  `json:"slot"`
}

func TestBuildUpgradeHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	upgrade := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)
	build := testutil.NewBuildBuilder(user.ID, hero.ID).Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid record",
			body: map[string]interface{}{
				"build":   build.ID,
				"upgrade": upgrade.ID,
				"slot":    3,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing build",
			body: map[string]interface{}{
				"build":   999,
				"upgrade": upgrade.ID,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid payload",
		},
		{
			name: "missing upgrade",
			body: map[string]interface{}{
				"build":   build.ID,
				"upgrade": 999,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/build-upgrades"), tt.body, token)
			resp := testutil.DoRequest(t, req)
			defer resp.Body.Close()

			if tt.expectedError != "" {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedError)
			} else {
				require.Equal(t, tt.expectedStatus, resp.StatusCode)
			}
		})
	}
}

func TestBuildUpgradeHandler_GetAndUpdate(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	upgrade := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)
	build := testutil.NewBuildBuilder(user.ID, hero.ID).Build(t, ts.DB.DB)

	record := &domain.BuildUpgrade{BuildID: build.ID, UpgradeID: upgrade.ID, Slot: 0}
	require.NoError(t, ts.DB.DB.Create(record).Error)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/build-upgrades/1"), nil, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	var result BuildUpgradeResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, build.ID, result.Build)
	assert.Equal(t, upgrade.ID, result.Upgrade)
	assert.Equal(t, 0, result.Slot)

	// Slot-only update leaves the references untouched
	updateReq := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/build-upgrades/1"), map[string]interface{}{
		"slot": 5,
	}, token)
	updateResp := testutil.DoRequest(t, updateReq)
	defer updateResp.Body.Close()

	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	var updated domain.BuildUpgrade
	require.NoError(t, ts.DB.DB.First(&updated, record.ID).Error)
	assert.Equal(t, 5, updated.Slot)
	assert.Equal(t, build.ID, updated.BuildID)
}

func TestBuildUpgradeHandler_NotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.RegisterAndLogin(t, ts)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/build-upgrades/999"), nil, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Record not found")
}
