package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"
)

const apiBase = "http://localhost:8080/api"

type idResponse struct {
	ID uint `json:"id"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

func postJSON(path, token string, payload interface{}) (*http.Response, error) {
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", apiBase+path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return http.DefaultClient.Do(req)
}

func createEntity(path, token string, payload interface{}) (uint, error) {
	resp, err := postJSON(path, token, payload)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("create %s failed (%d): %s", path, resp.StatusCode, string(bodyBytes))
	}

	var result idResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode failed: %w", err)
	}
	return result.ID, nil
}

func registerAndLogin(email, password string) (string, error) {
	resp, err := postJSON("/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	resp.Body.Close()

	// 409 means the user already exists, which is fine for reruns
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusConflict {
		return "", fmt.Errorf("registration failed (%d)", resp.StatusCode)
	}

	resp, err = postJSON("/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode failed: %w", err)
	}
	return result.AccessToken, nil
}

func generateEmail() string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	random := make([]byte, 4)
	for i := range random {
		random[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("seed_%d_%s@example.com", time.Now().Unix(), string(random))
}

func main() {
	rand.Seed(time.Now().UnixNano())

	fmt.Println("Seeding hero catalog...")

	email := generateEmail()
	password := "seedpassword123"
	token, err := registerAndLogin(email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register seed user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ Seed user: %s\n", email)

	heroes := []map[string]interface{}{
		{"name": "Ares", "role": "Tank", "description": "Frontline brawler with heavy shields"},
		{"name": "Hermes", "role": "Damage", "description": "Fast flanker who punishes isolated targets"},
		{"name": "Hestia", "role": "Support", "description": "Sustained healer with area regeneration"},
	}

	var heroIDs []uint
	for _, hero := range heroes {
		id, err := createEntity("/heroes", "", hero)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create hero: %v\n", err)
			os.Exit(1)
		}
		heroIDs = append(heroIDs, id)
		fmt.Printf("  ✓ Hero %d: %s\n", id, hero["name"])
	}

	var upgradeIDs []uint
	for i, heroID := range heroIDs {
		abilityID, err := createEntity("/abilities", "", map[string]interface{}{
			"name":        fmt.Sprintf("Signature %d", i+1),
			"description": "Primary ability",
			"hero":        heroID,
			"cooldown":    8,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create ability: %v\n", err)
			os.Exit(1)
		}

		for tier := 1; tier <= 2; tier++ {
			upgradeID, err := createEntity("/upgrades", "", map[string]interface{}{
				"name":        fmt.Sprintf("Tier %d", tier),
				"description": "Ability upgrade",
				"ability":     abilityID,
				"cost":        tier * 100,
				"effect":      []map[string]string{{"damage": "+10%"}},
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to create upgrade: %v\n", err)
				os.Exit(1)
			}
			upgradeIDs = append(upgradeIDs, upgradeID)
		}
		fmt.Printf("  ✓ Ability %d with 2 upgrades\n", abilityID)
	}

	buildID, err := createEntity("/builds", token, map[string]interface{}{
		"name":        "Starter Ares",
		"hero":        heroIDs[0],
		"description": "Sample seeded build",
		"isPublic":    true,
		"items": []map[string]interface{}{
			{"upgrade": upgradeIDs[0], "slot": 1},
			{"upgrade": upgradeIDs[1], "slot": 2},
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create build: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n============================================================")
	fmt.Println("SEED COMPLETE")
	fmt.Println("============================================================")
	fmt.Printf("\nSeed user: %s / %s\n", email, password)
	fmt.Printf("Sample build: GET %s/builds/%d\n", apiBase, buildID)
	fmt.Printf("Hero catalog: GET %s/heroes\n", apiBase)
}
