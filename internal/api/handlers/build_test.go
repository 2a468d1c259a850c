package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomd/hero-build-planner/internal/domain"
	"github.com/tomd/hero-build-planner/internal/testutil"
)

type BuildResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Hero        uint   `json:"hero"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
	Items       []struct {
		Upgrade uint `json:"upgrade"`
		Slot    int  `json:"slot"`
	} `json:"items"`
}

func TestBuildHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	upgrade := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/builds"), map[string]interface{}{
		"hero":        hero.ID,
		"name":        "Frontline",
		"description": "Tanky setup",
		"isPublic":    true,
		"items": []map[string]interface{}{
			{"upgrade": upgrade.ID, "slot": 0},
		},
	}, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID uint `json:"id"`
	}
	testutil.AssertJSONResponse(t, resp, &created)

	var build domain.Build
	require.NoError(t, ts.DB.DB.First(&build, created.ID).Error)
	assert.Equal(t, user.ID, build.UserID)
	assert.Equal(t, hero.ID, build.HeroID)
	assert.True(t, build.IsPublic)
	assert.False(t, build.UpdatedAt.Before(build.CreatedAt))

	var items int64
	ts.DB.DB.Model(&domain.BuildUpgrade{}).Where("build_id = ?", created.ID).Count(&items)
	assert.Equal(t, int64(1), items)
}

func TestBuildHandler_Create_HeroNotFound(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.RegisterAndLogin(t, ts)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/builds"), map[string]interface{}{
		"hero": 999,
		"name": "Ghost Build",
	}, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Hero not found")

	var count int64
	ts.DB.DB.Model(&domain.Build{}).Count(&count)
	assert.Zero(t, count)
}

func TestBuildHandler_Create_SkipsUnresolvableItems(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	upgrade := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/builds"), map[string]interface{}{
		"hero": hero.ID,
		"name": "Partial",
		"items": []map[string]interface{}{
			{"upgrade": upgrade.ID, "slot": 0},
			{"upgrade": 999, "slot": 1},
		},
	}, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var items int64
	ts.DB.DB.Model(&domain.BuildUpgrade{}).Count(&items)
	assert.Equal(t, int64(1), items)
}

func TestBuildHandler_Create_StrictItemsRejectsAndRollsBack(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.StrictBuildItems = true
	ts := testutil.NewTestServerWithConfig(t, cfg)
	_, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/builds"), map[string]interface{}{
		"hero": hero.ID,
		"name": "Strict",
		"items": []map[string]interface{}{
			{"upgrade": 999, "slot": 0},
		},
	}, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Upgrade not found")

	// The transaction rolled back: no build row either
	var count int64
	ts.DB.DB.Model(&domain.Build{}).Count(&count)
	assert.Zero(t, count)
}

func TestBuildHandler_Update_ReplacesItems(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	first := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)
	second := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)
	third := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)

	build := testutil.NewBuildBuilder(user.ID, hero.ID).Build(t, ts.DB.DB)
	ts.DB.DB.Create(&domain.BuildUpgrade{BuildID: build.ID, UpgradeID: first.ID, Slot: 0})

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"upgrade": second.ID, "slot": 0},
			{"upgrade": third.ID, "slot": 1},
		},
	}

	// Run the same update twice: full-replace semantics are idempotent
	for i := 0; i < 2; i++ {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/builds/1"), body, token)
		resp := testutil.DoRequest(t, req)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var items []*domain.BuildUpgrade
	require.NoError(t, ts.DB.DB.Where("build_id = ?", build.ID).Order("slot ASC").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].UpgradeID)
	assert.Equal(t, third.ID, items[1].UpgradeID)
}

func TestBuildHandler_Update_PartialFieldsPreserved(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	build := testutil.NewBuildBuilder(user.ID, hero.ID).WithName("Original").Public().Build(t, ts.DB.DB)

	req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/builds/1"), map[string]interface{}{
		"description": "x",
	}, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.Build
	require.NoError(t, ts.DB.DB.First(&updated, build.ID).Error)
	assert.Equal(t, "x", updated.Description)
	assert.Equal(t, "Original", updated.Name)
	assert.Equal(t, hero.ID, updated.HeroID)
	assert.True(t, updated.IsPublic)
	assert.True(t, updated.UpdatedAt.After(build.UpdatedAt))
}

func TestBuildHandler_Update_LastWriteWins(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	build := testutil.NewBuildBuilder(user.ID, hero.ID).Build(t, ts.DB.DB)

	// No version column: the later write silently overwrites the earlier one
	for _, name := range []string{"writer-a", "writer-b"} {
		req := testutil.CreateAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/builds/1"), map[string]interface{}{
			"name": name,
		}, token)
		resp := testutil.DoRequest(t, req)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var updated domain.Build
	require.NoError(t, ts.DB.DB.First(&updated, build.ID).Error)
	assert.Equal(t, "writer-b", updated.Name)
}

func TestBuildHandler_Delete_RemovesItems(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	upgrade := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)

	build := testutil.NewBuildBuilder(user.ID, hero.ID).Build(t, ts.DB.DB)
	ts.DB.DB.Create(&domain.BuildUpgrade{BuildID: build.ID, UpgradeID: upgrade.ID, Slot: 0})
	ts.DB.DB.Create(&domain.BuildUpgrade{BuildID: build.ID, UpgradeID: upgrade.ID, Slot: 1})

	req := testutil.CreateAuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/builds/1"), nil, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orphans int64
	ts.DB.DB.Model(&domain.BuildUpgrade{}).Where("build_id = ?", build.ID).Count(&orphans)
	assert.Zero(t, orphans)

	var builds int64
	ts.DB.DB.Model(&domain.Build{}).Count(&builds)
	assert.Zero(t, builds)
}

func TestBuildHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.RegisterAndLogin(t, ts)

	hero := testutil.NewHeroBuilder().Build(t, ts.DB.DB)
	ability := testutil.NewAbilityBuilder(hero.ID).Build(t, ts.DB.DB)
	upgrade := testutil.NewUpgradeBuilder(ability.ID).Build(t, ts.DB.DB)

	build := testutil.NewBuildBuilder(user.ID, hero.ID).WithName("Frontline").Build(t, ts.DB.DB)
	ts.DB.DB.Create(&domain.BuildUpgrade{BuildID: build.ID, UpgradeID: upgrade.ID, Slot: 2})

	req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/builds/1"), nil, token)
	resp := testutil.DoRequest(t, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result BuildResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, "Frontline", result.Name)
	assert.Equal(t, hero.ID, result.Hero)
	require.Len(t, result.Items, 1)
	assert.Equal(t, upgrade.ID, result.Items[0].Upgrade)
	assert.Equal(t, 2, result.Items[0].Slot)
}

func TestBuildHandler_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/builds"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
