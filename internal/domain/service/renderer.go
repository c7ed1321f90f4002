package service

import (
	"context"

	"geowatch/internal/domain/entity"
)

// Renderer turns a matched event plus subscriber context into one or
// more displayable message parts. The region name may be empty when the
// event fell outside every guild geofence.
type Renderer interface {
	Render(ctx context.Context, ev entity.Event, sub *entity.Subscriber, region string) ([]entity.RenderedMessage, error)
}
