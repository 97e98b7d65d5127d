package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DecodeJSONRequest читает тело запроса и раскладывает его в dst.
// Неизвестные поля считаются ошибкой.
func DecodeJSONRequest(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func ReadRequestBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
