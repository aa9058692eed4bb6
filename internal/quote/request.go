package quote

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Request pairs an itinerary with the traveler criteria to price it for.
// It is the document shape accepted by the CLI and the HTTP API.
type Request struct {
	Itinerary Itinerary        `yaml:"itinerary" json:"itinerary"`
	Criteria  TravelerCriteria `yaml:"criteria" json:"criteria"`
}

// LoadRequest reads a YAML-formatted quote request from a file.
func LoadRequest(requestPath string) (*Request, error) {
	file, err := os.Open(requestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open request file %s: %w", requestPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ParseRequest(file)
}

// ParseRequest reads a YAML-formatted quote request from an in-memory
// source.
func ParseRequest(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading request data, %v", err)
	}

	var request Request
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("unable to decode request into struct, %s", err)
	}

	return &request, nil
}
