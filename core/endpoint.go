package core

// Endpoint describes one HTTP operation in a framework-agnostic way.
// Adapters bind their own handlers to these paths; the metadata feeds
// the documentation endpoint.
type Endpoint struct {
	Path     string           `json:"path"`
	Method   string           `json:"method"`
	Metadata EndpointMetadata `json:"metadata"`
}

type EndpointMetadata struct {
	OperationID string `json:"operationId"`
	Description string `json:"description"`
	Protected   bool   `json:"protected"`
}
