package dto

import (
	"time"

	"github.com/google/uuid"
)

type CommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	TaskID    uuid.UUID `json:"taskId"`
	CreatedAt time.Time `json:"createdAt"`
}
