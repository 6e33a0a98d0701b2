package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Service runs the two-stage assistant strategy: a primary provider when one
// is configured, the keyword fallback otherwise or on any provider error.
type Service interface {
	Chat(ctx context.Context, req ChatRequest) (*Reply, error)
	Suggest(ctx context.Context, productType string) (*Suggestions, error)
	CreateDesign(ctx context.Context, req CreateDesignRequest) (*Design, error)
}

type service struct {
	primary  Provider // nil when no API key is configured
	fallback *FallbackResponder
	logger   *zap.Logger
}

// NewService creates the assistant service. primary may be nil.
func NewService(primary Provider, logger *zap.Logger) Service {
	return &service{primary: primary, fallback: NewFallbackResponder(), logger: logger}
}

func (s *service) Chat(ctx context.Context, req ChatRequest) (*Reply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}
	if s.primary != nil {
		text, err := s.primary.Chat(ctx, req.Message)
		if err == nil {
			return &Reply{Response: text, Source: SourceGemini}, nil
		}
		s.logger.Warn("assistant provider failed, using fallback", zap.Error(err))
	}
	text, _ := s.fallback.Chat(ctx, req.Message)
	return &Reply{Response: text, Source: SourceFallback}, nil
}

func (s *service) Suggest(ctx context.Context, productType string) (*Suggestions, error) {
	if productType == "" {
		return nil, fmt.Errorf("product type is required")
	}
	if s.primary != nil {
		text, err := s.primary.Suggest(ctx, productType)
		if err == nil {
			return &Suggestions{Text: text, Source: SourceGemini}, nil
		}
		s.logger.Warn("assistant provider failed, using fallback", zap.Error(err))
	}
	text, _ := s.fallback.Suggest(ctx, productType)
	return &Suggestions{Text: text, Source: SourceFallback}, nil
}

func (s *service) CreateDesign(ctx context.Context, req CreateDesignRequest) (*Design, error) {
	if req.ProductType == "" {
		return nil, fmt.Errorf("product type is required")
	}
	specs := DesignSpecs{
		ProductType: req.ProductType,
		Style:       req.Style,
		Colors:      req.Colors,
		Layout:      "centered",
	}
	if specs.Style == "" {
		specs.Style = "minimalist"
	}

	if s.primary != nil {
		text, err := s.primary.CreateDesign(ctx, req)
		if err == nil {
			return &Design{Message: text, Specs: specs, Source: SourceGemini}, nil
		}
		s.logger.Warn("assistant provider failed, using fallback", zap.Error(err))
	}
	text, _ := s.fallback.CreateDesign(ctx, req)
	return &Design{Message: text, Specs: specs, Source: SourceFallback}, nil
}
