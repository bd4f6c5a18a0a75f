package model

import (
	"fmt"
	"net/http"
)

// PromptResponse is the success body.
type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// ErrorResponse is the failure body. Detail is only set by revisions that
// report internal errors as {"error":"lambda_error","detail":...}.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ErrorCodeLambda is the stable code used for unclassified failures.
const ErrorCodeLambda = "lambda_error"

// ErrorWithStatusCode is an error the handler has already classified; its
// Message is safe to show to the caller.
type ErrorWithStatusCode struct {
	StatusCode int
	Message    string
}

func (e *ErrorWithStatusCode) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// NewBadRequest classifies a caller mistake.
func NewBadRequest(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{StatusCode: http.StatusBadRequest, Message: message}
}

// NewBadGateway classifies an unusable upstream answer.
func NewBadGateway(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{StatusCode: http.StatusBadGateway, Message: message}
}
