package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "recipefinder/internal/delivery/context"
	"recipefinder/internal/domain/service"

	"github.com/google/uuid"
)

// publishEvent stamps and publishes a recipe event after a committed mutation.
// Delivery failures are logged and never undo the mutation.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.RecipeEvent) {
	if publisher == nil {
		return
	}

	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishRecipeEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish recipe event",
			slog.String("type", string(event.Type)),
			slog.Int64("recipe_id", event.RecipeID),
			slog.Any("error", err),
		)
	}
}
