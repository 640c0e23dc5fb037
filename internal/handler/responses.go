package handler

import (
	"time"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

type FileResponse struct {
	ID            string     `json:"id"`
	FileName      string     `json:"file_name"`
	FilePath      *string    `json:"file_path,omitempty"`
	Authenticated bool       `json:"authenticated"`
	Type          *string    `json:"type,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func toFileResponse(file domain.File) FileResponse {
	return FileResponse{
		ID:            file.ID.String(),
		FileName:      file.FileName,
		FilePath:      file.FilePath,
		Authenticated: file.Authenticated,
		Type:          file.Type,
		CreatedAt:     file.CreatedAt,
		UpdatedAt:     file.UpdatedAt,
	}
}

func toFileResponses(files []domain.File) []FileResponse {
	responses := make([]FileResponse, 0, len(files))
	for _, file := range files {
		responses = append(responses, toFileResponse(file))
	}
	return responses
}
