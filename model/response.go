package model

import "github.com/mnmsi/Lara-api/constant"

// BaseResponse is the envelope embedded in every API response.
type BaseResponse struct {
	ResponseType string `json:"responseType" example:"success"`
	Message      string `json:"message,omitempty"`
}

func Success(msg string) BaseResponse {
	return BaseResponse{ResponseType: constant.ResponseTypeSuccess, Message: msg}
}

func Failure(msg string) BaseResponse {
	return BaseResponse{ResponseType: constant.ResponseTypeError, Message: msg}
}

// MessageResponse carries only the envelope.
type MessageResponse struct {
	BaseResponse
}

func NewMessageResponse(msg string) *MessageResponse {
	return &MessageResponse{BaseResponse: Success(msg)}
}
