package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const (
	CoachFailureReply = "Error connecting to Titan server."
	CoachEmptyReply   = "Error connecting to Titan."
)

type CoachService struct {
	client  domain.CoachClient
	metrics *metrics.Manager
}

func NewCoachService(client domain.CoachClient, m *metrics.Manager) *CoachService {
	return &CoachService{client: client, metrics: m}
}

// Chat returns the coach's answer. Client failures are turned into a fixed
// reply rather than an error.
func (s *CoachService) Chat(ctx context.Context, history []domain.ChatMessage, message string, lang domain.Language) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidArgument)
	}
	if s.client == nil {
		s.recordFailure()
		return CoachFailureReply, nil
	}

	reply, err := s.client.Reply(ctx, history, message, domain.ParseLanguage(string(lang)))
	if err != nil {
		log.WithError(err).Warn("coach reply failed")
		s.recordFailure()
		return CoachFailureReply, nil
	}
	if strings.TrimSpace(reply) == "" {
		return CoachEmptyReply, nil
	}
	return reply, nil
}

func (s *CoachService) recordFailure() {
	if s.metrics != nil {
		s.metrics.CounterCoachFailures.Inc()
	}
}
