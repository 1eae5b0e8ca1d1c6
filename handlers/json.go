package handlers

import (
	"encoding/json"
	"net/http"
)

func jsonResponse(object interface{}, writer http.ResponseWriter) {
	resp, err := json.Marshal(object)
	if err != nil {
		http.Error(writer, err.Error(), http.StatusInternalServerError)
		return
	}
	writer.Write(resp)
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
