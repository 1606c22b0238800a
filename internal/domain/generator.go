package domain

import (
	"context"
	"time"
)

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// PlanGenerator produces richer plans and food estimates than the
// deterministic builders. Implementations talk to an LLM provider.
type PlanGenerator interface {
	GenerateWorkout(ctx context.Context, req PlanRequest) (*WorkoutPlan, error)
	AnalyzeFood(ctx context.Context, query string, lang Language) (*MacroEstimate, error)
}

// CoachClient answers chat messages given the prior conversation
type CoachClient interface {
	Reply(ctx context.Context, history []ChatMessage, message string, lang Language) (string, error)
}
