package controller

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// HandleLambda serves API Gateway HTTP API (payload 2.0) and Lambda function
// URL invocations. Failures are rendered as HTTP responses, so the returned
// error is always nil.
func (h *PromptHandler) HandleLambda(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp := h.Handle(ctx, Event{
		Method:          req.RequestContext.HTTP.Method,
		Headers:         req.Headers,
		Body:            req.Body,
		IsBase64Encoded: req.IsBase64Encoded,
		RequestID:       lambdaRequestID(ctx, req.RequestContext.RequestID),
	})

	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

// HandleLambdaV1 serves API Gateway REST API proxy (payload 1.0) invocations.
func (h *PromptHandler) HandleLambdaV1(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := h.Handle(ctx, Event{
		Method:          req.HTTPMethod,
		Headers:         req.Headers,
		Body:            req.Body,
		IsBase64Encoded: req.IsBase64Encoded,
		RequestID:       lambdaRequestID(ctx, req.RequestContext.RequestID),
	})

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

func lambdaRequestID(ctx context.Context, gatewayID string) string {
	if gatewayID != "" {
		return gatewayID
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}
