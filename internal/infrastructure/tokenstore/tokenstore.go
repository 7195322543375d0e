// Package tokenstore persists the single session slot of the application,
// either as a file in a state directory or as one Redis key.
package tokenstore

import (
	"encoding/json"
	"fmt"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// DefaultKey names the slot in every backend.
const DefaultKey = "rotaract-d4465-auth"

func encode(session domain.Session) ([]byte, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

// decode reports ok=false for documents that are not a usable session.
func decode(data []byte) (*domain.Session, bool) {
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false
	}
	if session.Tokens.AccessToken == "" {
		return nil, false
	}
	return &session, true
}
