package port

import (
	"context"

	"vantraResto/internal/modules/realtime/domain"
)

// Broadcaster sends a message to every interested websocket client.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}
