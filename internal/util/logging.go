package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError отправляет JSON-ответ об ошибке вида {"message": "..."}
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}

	json.NewEncoder(w).Encode(errorResponse)
}
