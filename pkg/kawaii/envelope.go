package kawaii

import (
	"encoding/json"
	"strings"
)

const invalidTokenMarker = "Invalid authentication token!"

// envelope is the top-level object returned by every gif endpoint.
type envelope struct {
	Response *string `json:"response"`
	Error    *string `json:"error"`
}

func decodeEnvelope(body []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", &MalformedResponseError{Reason: "decode body", Err: err}
	}

	if env.Error != nil {
		msg := *env.Error
		if strings.Contains(msg, invalidTokenMarker) {
			return "", &AuthenticationError{Message: msg}
		}
		if strings.TrimSpace(msg) != "" {
			return "", &MalformedResponseError{Reason: "provider returned error", RemoteMessage: msg}
		}
	}

	if env.Response == nil {
		return "", &MalformedResponseError{Reason: `missing "response" property`}
	}
	if strings.TrimSpace(*env.Response) == "" {
		return "", &MalformedResponseError{Reason: `empty "response" property`}
	}
	return *env.Response, nil
}
