package ai

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

var (
	ErrNoCandidates = errors.New("image model returned no candidates")
	ErrNoImagePart  = errors.New("image model response did not include an image")
)

// IsRateLimit reports whether err is a rate-limit / quota signal from the API.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return isRateLimitAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return isRateLimitAPIError(*apiErrPtr)
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "rate limit")
}

func isRateLimitAPIError(e genai.APIError) bool {
	return e.Code == http.StatusTooManyRequests || strings.EqualFold(e.Status, "RESOURCE_EXHAUSTED")
}
