package mux

import (
	"errors"
	"net/http"
	"strings"

	"chatjack-server/internal/jwt"

	"github.com/google/uuid"
)

const maxDisplayNameLength = 32

type guestResponse struct {
	ActorID     string `json:"actorId"`
	DisplayName string `json:"displayName"`
	Token       string `json:"token"`
}

// postGuest issues a signed guest identity. The actor ID is minted here and
// stays stable for as long as the client keeps presenting the token.
func (m *Mux) postGuest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			DisplayName string `json:"displayName"`
		}

		if !decodeRequest(w, r, &payload) {
			return
		}

		displayName := strings.TrimSpace(payload.DisplayName)
		if displayName == "" || len(displayName) > maxDisplayNameLength {
			writeJSONError(w, http.StatusBadRequest, errors.New("displayName must be between 1 and 32 characters"))
			return
		}

		actorID := uuid.New().String()
		token, err := jwt.Sign(actorID, displayName)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, guestResponse{
			ActorID:     actorID,
			DisplayName: displayName,
			Token:       token,
		})
	}
}
