package resp

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("failed to write json response")
	}
}
