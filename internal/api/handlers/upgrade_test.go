package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/testutil"
)

type UpgradeResponse struct {
	ID          uint            `json:"id"`
	Ability     uint            `json:"ability"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Cost        int             `json:"cost"`
	Effect      json.RawMessage `json:"effect"`
}

func TestUpgradeHandler_CreateAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/upgrades"), map[string]interface{}{
		"ability":     ability.ID,
		"name":        "Heavy Impact",
		"description": "Bigger stun radius",
		"cost":        250,
		"effect":      map[string]interface{}{"radius": "+2m"},
	}, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	getResp, err := http.Get(ts.APIURL("/upgrades/1"))
	require.NoError(t, err)
	defer getResp.Body.Close()

	var result UpgradeResponse
	testutil.AssertJSONResponse(t, getResp, &result)
	assert.Equal(t, ability.ID, result.Ability)
	assert.Equal(t, "Heavy Impact", result.Name)
	assert.Equal(t, 250, result.Cost)

	var effect map[string]string
	require.NoError(t, json.Unmarshal(result.Effect, &effect))
	assert.Equal(t, "+2m", effect["radius"])
}

func TestUpgradeHandler_Create_AbilityNotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/upgrades"), map[string]interface{}{
		"ability":     999,
		"name":        "Orphan",
		"description": "d",
		"cost":        10,
	}, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Ability not found")

	var count int64
	ts.DB.DB.Model(&domain.Upgrade{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpgradeHandler_Update_PartialFields(t *testing.T) {
	ts := testutil.NewTestServer(t)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	upgrade := testutil.NewUpgradeBuilder(ability.ID).WithCost(100).Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/upgrades/1"), map[string]interface{}{
		"cost": 175,
	}, "")
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Upgrade
	require.NoError(t, ts.DB.DB.First(&updated, upgrade.ID).Error)
	assert.Equal(t, 175, updated.Cost)
	assert.Equal(t, upgrade.Name, updated.Name)
	assert.JSONEq(t, string(upgrade.Effect), string(updated.Effect))
}

func TestUpgradeHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)
	testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/upgrades"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var result []UpgradeResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Len(t, result, 2)
}
