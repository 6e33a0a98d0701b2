package assistant

// Source identifies which stage of the two-stage strategy produced a reply.
type Source string

const (
	SourceGemini   Source = "gemini"
	SourceFallback Source = "fallback"
)

// Reply is a free-form assistant answer.
type Reply struct {
	Response string `json:"response"`
	Source   Source `json:"source"`
}

// Suggestions is a per-product-type design recommendation.
type Suggestions struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// DesignSpecs is the structured part of a generated design.
type DesignSpecs struct {
	ProductType string   `json:"productType"`
	Style       string   `json:"style"`
	Colors      []string `json:"colors,omitempty"`
	Font        string   `json:"font,omitempty"`
	Layout      string   `json:"layout,omitempty"`
}

// Design is the result of the create-design operation.
type Design struct {
	Message string      `json:"message"`
	Specs   DesignSpecs `json:"specs"`
	Source  Source      `json:"source"`
}

// ChatRequest is the payload for the chat endpoint.
type ChatRequest struct {
	Message          string `json:"message"`
	ConversationType string `json:"conversationType,omitempty"`
}

// CreateDesignRequest is the payload for the create-design endpoint.
type CreateDesignRequest struct {
	ProductType  string   `json:"productType"`
	Requirements string   `json:"requirements,omitempty"`
	Style        string   `json:"style,omitempty"`
	Colors       []string `json:"colors,omitempty"`
}
