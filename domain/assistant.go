package domain

import (
	"errors"
)

var (
	MessageServerMisconfiguration = "Server misconfiguration"

	ErrEmptyChatMessage  = errors.New("message is required")
	ErrAssistantUpstream = errors.New("assistant request failed")
)

type (
	ChatRequest struct {
		Message  string      `json:"message"`
		Messages FlexStrings `json:"messages"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)
