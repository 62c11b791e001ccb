package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// EventType represents the type of event being broadcast
type EventType string

const (
	EventTypeFloorChanged  EventType = "floor.changed"
	EventTypeAreaEntered   EventType = "area.entered"
	EventTypePanelSwitched EventType = "panel.switched"
)

// Event represents a generic event structure
type Event struct {
	Type      EventType              `json:"type"`
	SessionID string                 `json:"session_id"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Publisher is what the client needs from a broadcaster.
type Publisher interface {
	PublishFloorChanged(ctx context.Context, sessionID uuid.UUID, from, to int) error
	PublishAreaEntered(ctx context.Context, sessionID uuid.UUID, areaID, areaType string) error
	PublishPanelSwitched(ctx context.Context, sessionID uuid.UUID, panel string) error
}

// Broadcaster publishes session events to Redis Pub/Sub so companion
// processes (chat, party overlays) can follow the player.
type Broadcaster struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

var _ Publisher = (*Broadcaster)(nil)

// NewBroadcaster creates a new event broadcaster
func NewBroadcaster(redisClient *redis.Client, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Channel returns the pub/sub channel for a session.
func Channel(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s:events", sessionID.String())
}

// PublishFloorChanged publishes a floor.changed event
func (b *Broadcaster) PublishFloorChanged(ctx context.Context, sessionID uuid.UUID, from, to int) error {
	return b.publish(ctx, sessionID, Event{
		Type: EventTypeFloorChanged,
		Data: map[string]interface{}{
			"from": from,
			"to":   to,
		},
	})
}

// PublishAreaEntered publishes an area.entered event
func (b *Broadcaster) PublishAreaEntered(ctx context.Context, sessionID uuid.UUID, areaID, areaType string) error {
	return b.publish(ctx, sessionID, Event{
		Type: EventTypeAreaEntered,
		Data: map[string]interface{}{
			"area_id":   areaID,
			"area_type": areaType,
		},
	})
}

// PublishPanelSwitched publishes a panel.switched event
func (b *Broadcaster) PublishPanelSwitched(ctx context.Context, sessionID uuid.UUID, panel string) error {
	return b.publish(ctx, sessionID, Event{
		Type: EventTypePanelSwitched,
		Data: map[string]interface{}{
			"panel": panel,
		},
	})
}

func (b *Broadcaster) publish(ctx context.Context, sessionID uuid.UUID, event Event) error {
	event.SessionID = sessionID.String()
	channel := Channel(sessionID)

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.Error("Failed to marshal event", "error", err, "event", event)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		b.logger.Error("Failed to publish event", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	b.logger.Debug("Event published",
		"channel", channel,
		"event_type", event.Type,
	)

	return nil
}
