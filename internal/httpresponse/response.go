package httpresponse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Response struct {
	Status int `json:"Status"`
	Body   any `json:"Body,omitempty"`
}

type ErrorResponse struct {
	ErrorDescription string `json:"ErrorDescription"`
}

const INTERNALERRORJSON = "{\"status\": 500,\"body\":{\"error\": \"Internal server error\"}}"

const MALFORMEDJSON_errorDesc = "json unmarshalling error"

func WriteResponseWithStatus(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	jsonByte, err := json.Marshal(Response{Status: status, Body: body})
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}
	if _, err = w.Write(jsonByte); err != nil {
		WriteInternalErrorResponse(w)
	}
}

// WriteErrorWithStatus оборачивает текст ошибки в ErrorResponse.
func WriteErrorWithStatus(w http.ResponseWriter, status int, description string) {
	WriteResponseWithStatus(w, status, ErrorResponse{ErrorDescription: description})
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	// implementation similar to http.Error, only difference is the Content-type
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(500)
	_, _ = fmt.Fprintln(w, INTERNALERRORJSON)
}
