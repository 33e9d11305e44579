package handler

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// HandleAPIGateway is the Lambda counterpart of Chat: same request and
// response contract, marshaled from an API Gateway proxy event.
func (h *Handler) HandleAPIGateway(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req chatRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return proxyResponse(400, errorResponse{Error: msgInvalidBody}), nil
	}
	if req.Messages == nil {
		return proxyResponse(400, errorResponse{Error: msgInvalidBody}), nil
	}

	reply, err := h.resolver.Resolve(ctx, req.Messages)
	if err != nil {
		resolutionID := uuid.NewString()
		h.logger.Error("resolution failed",
			"resolution_id", resolutionID,
			"code", errorCode(err),
			"err", err,
		)
		return proxyResponse(500, errorResponse{Error: msgInternalError}), nil
	}
	return proxyResponse(200, chatResponse{Reply: reply}), nil
}

func proxyResponse(status int, payload any) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(payload)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    jsonHeaders,
		Body:       string(body),
	}
}
