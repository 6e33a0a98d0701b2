package assistant

import "context"

// Provider is the backend-agnostic interface every design-assistant adapter
// must implement. The service tries the primary provider first and falls
// back to the keyword responder when the call fails.
type Provider interface {
	// Chat answers a free-form design question.
	Chat(ctx context.Context, message string) (string, error)
	// Suggest produces design suggestions for a product type.
	Suggest(ctx context.Context, productType string) (string, error)
	// CreateDesign turns requirements into a described design.
	CreateDesign(ctx context.Context, req CreateDesignRequest) (string, error)
}
