// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := resp.Body()
	return &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    extractMessage(body),
		Body:       body,
	}
}

// extractMessage reads the backend's error envelope. Both {"error": "..."}
// and {"message": "..."} are in use; "error" wins when both are present.
func extractMessage(body []byte) string {
	var envelope struct {
		Error   any `json:"error"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	for _, v := range []any{envelope.Error, envelope.Message} {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}

	return ""
}
