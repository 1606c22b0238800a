package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/mansoorceksport/titan/internal/config"
	"github.com/mansoorceksport/titan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memFileRepo struct {
	files map[string][]byte
}

func (m *memFileRepo) Upload(_ context.Context, file []byte, filename, _ string) (string, error) {
	m.files[filename] = file
	return "http://s3.local/titan-plans/" + filename, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.BodyLimitKB = 512
	cfg.Cache.FoodEstimateTTL = time.Hour
	cfg.Cache.StatsTTL = time.Minute
	cfg.Cache.IdempotencyTTL = time.Hour
	return cfg
}

func TestGoldenPath(t *testing.T) {
	// 1. Setup Infrastructure
	db, cleanupDB := testutil.SetupTestDB(t)
	defer cleanupDB()
	redisClient, _ := testutil.SetupTestRedis(t)
	files := &memFileRepo{files: map[string][]byte{}}

	// 2. Initialize App (no OpenRouter key: deterministic fallbacks)
	app := NewApp(AppDependencies{
		Config:      testConfig(),
		MongoDB:     db,
		RedisClient: redisClient,
		FileRepo:    files,
	})

	request := func(method, path, profileID string, body interface{}, headers ...string) *http.Response {
		var bodyReader io.Reader
		if body != nil {
			jsonBytes, _ := json.Marshal(body)
			bodyReader = bytes.NewReader(jsonBytes)
		}
		req, _ := http.NewRequest(method, path, bodyReader)
		req.Header.Set("Content-Type", "application/json")
		if profileID != "" {
			req.Header.Set("X-Profile-ID", profileID)
		}
		for i := 0; i+1 < len(headers); i += 2 {
			req.Header.Set(headers[i], headers[i+1])
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}
	decode := func(resp *http.Response, out interface{}) {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	// ==========================================
	// STEP 1: Onboarding
	// ==========================================
	resp := request("POST", "/v1/profiles", "", map[string]interface{}{
		"name": "Ada", "age": 30, "height": "170 cm", "weight": "65 kg", "gender": "Female", "level": "Intermediate",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var profile map[string]interface{}
	decode(resp, &profile)
	profileID := profile["id"].(string)
	assert.Equal(t, "170", profile["height"])
	fmt.Println("✓ Profile created:", profileID)

	resp = request("GET", "/v1/me/workouts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// ==========================================
	// STEP 2: Generate and save a weekly plan
	// ==========================================
	resp = request("POST", "/v1/me/plans/generate", profileID, map[string]interface{}{
		"focus": "Full Weekly Plan", "split": "Push / Pull / Legs", "frequency": "6 days",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var generated struct {
		Source string                 `json:"source"`
		Plan   map[string]interface{} `json:"plan"`
	}
	decode(resp, &generated)
	assert.Equal(t, "fallback", generated.Source)
	assert.Equal(t, "weekly", generated.Plan["kind"])
	assert.Len(t, generated.Plan["weekly_schedule"], 7)
	fmt.Println("✓ Weekly plan generated")

	resp = request("POST", "/v1/me/workouts", profileID, generated.Plan, "X-Correlation-ID", "save-1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var workout map[string]interface{}
	decode(resp, &workout)
	workoutID := workout["id"].(string)
	assert.Equal(t, "Titan Weekly Program", workout["title"])

	// retried save is replayed, not stored twice
	resp = request("POST", "/v1/me/workouts", profileID, generated.Plan, "X-Correlation-ID", "save-1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("X-Idempotent-Replay"))

	resp = request("GET", "/v1/me/workouts", profileID, nil)
	var workouts []map[string]interface{}
	decode(resp, &workouts)
	assert.Len(t, workouts, 1)
	fmt.Println("✓ Workout saved:", workoutID)

	resp = request("GET", "/v1/me/workouts/"+workoutID, "someone-else", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// ==========================================
	// STEP 3: Export
	// ==========================================
	resp = request("POST", "/v1/me/workouts/"+workoutID+"/export", profileID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var export map[string]string
	decode(resp, &export)
	assert.True(t, strings.HasSuffix(export["url"], workoutID+".json"))
	assert.Len(t, files.files, 1)
	fmt.Println("✓ Plan exported:", export["url"])

	// ==========================================
	// STEP 4: Train
	// ==========================================
	resp = request("POST", "/v1/me/sessions/start", profileID, map[string]string{"workout_id": workoutID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var active struct {
		Logs      []map[string]interface{} `json:"logs"`
		StartedAt time.Time                `json:"started_at"`
	}
	decode(resp, &active)
	require.NotEmpty(t, active.Logs)

	resp = request("POST", "/v1/me/workouts/"+workoutID+"/sessions", profileID, map[string]interface{}{"logs": active.Logs})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "sets without reps cannot finish")

	for _, l := range active.Logs {
		l["reps"] = 10
		l["weight"] = 50
	}
	resp = request("POST", "/v1/me/workouts/"+workoutID+"/sessions", profileID, map[string]interface{}{
		"logs": active.Logs, "started_at": active.StartedAt,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request("GET", "/v1/me/workouts/"+workoutID+"/sessions", profileID, nil)
	var sessions []map[string]interface{}
	decode(resp, &sessions)
	assert.Len(t, sessions, 1)
	fmt.Println("✓ Session finished")

	// ==========================================
	// STEP 5: Nutrition and stats
	// ==========================================
	resp = request("POST", "/v1/me/nutrition/logs", profileID, map[string]string{"query": "2 eggs", "meal": "Breakfast"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = request("GET", "/v1/me/nutrition/today", profileID, nil)
	var daily struct {
		Totals struct {
			Calories int `json:"calories"`
		} `json:"totals"`
	}
	decode(resp, &daily)
	assert.Equal(t, 140, daily.Totals.Calories)

	resp = request("GET", "/v1/me/stats", profileID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats map[string]float64
	decode(resp, &stats)
	assert.Equal(t, 1.0, stats["workouts_completed"])
	assert.Equal(t, 1.0, stats["current_streak"])
	assert.Equal(t, 140.0, stats["calories_today"])
	fmt.Println("✓ Stats:", stats)

	// ==========================================
	// STEP 6: Observability
	// ==========================================
	resp = request("GET", "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "titan_api_plans_generated")
	assert.Contains(t, string(body), `source="fallback"`)

	resp = request("GET", "/health", "", nil)
	var health map[string]interface{}
	decode(resp, &health)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, false, health["ai"])
	fmt.Println("✓ Metrics exposed")
}
