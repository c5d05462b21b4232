package service

import (
	"context"
	"time"
)

// EventType names a recipe domain event.
type EventType string

const (
	EventRecipeCreated   EventType = "recipe.created"
	EventIngredientAdded EventType = "recipe.ingredient_added"
	EventFavoriteToggled EventType = "recipe.favorite_toggled"
	EventCommentAdded    EventType = "recipe.comment_added"
)

// RecipeEvent is emitted after a successful recipe mutation.
type RecipeEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       EventType `json:"type"`
	RecipeID   int64     `json:"recipe_id"`
	RecipeName string    `json:"recipe_name,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	State      string    `json:"state,omitempty"` // Set on favorite toggles
	Rating     float64   `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRecipeEvent publishes a recipe event for downstream consumers
	PublishRecipeEvent(ctx context.Context, event *RecipeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
