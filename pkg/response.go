package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, body []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Errorf("failed to write response [%d bytes, status %d]: %s", len(body), statusCode, err)
	}
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, body []byte) {
	WriteResponseBytes(w, contentType, body, http.StatusOK)
}

// WriteJSON marshals v and writes it with the given status code.
// A marshalling failure is reported to the client as a 500.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response body: %s", err)
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, body, statusCode)
}
