package dto

import "critic.app/backend/internal/model"

type FeedbackRequest struct {
	Text    string `json:"text"`
	Purpose string `json:"purpose,omitempty"`
	Type    string `json:"type,omitempty"`
}

type InspireRequest struct {
	Text    string `json:"text"`
	Purpose string `json:"purpose,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type CommentResponse struct {
	ID           string   `json:"id"`
	Critic       string   `json:"critic"`
	SelectedText string   `json:"selectedText"`
	Comment      string   `json:"comment"`
	Position     Position `json:"position"`
	Fallback     bool     `json:"fallback,omitempty"`
}

type FeedbackResponse struct {
	Success  bool              `json:"success"`
	Comments []CommentResponse `json:"comments"`
}

type InspireResponse struct {
	Success    bool   `json:"success"`
	Suggestion string `json:"suggestion"`
}

type CriticResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func ToFeedbackResponse(set model.AnnotationSet) FeedbackResponse {
	comments := make([]CommentResponse, len(set))
	for i, a := range set {
		comments[i] = CommentResponse{
			ID:           a.ID,
			Critic:       string(a.PersonaID),
			SelectedText: a.QuotedText,
			Comment:      a.Comment,
			Position:     Position{Start: a.Start, End: a.End},
			Fallback:     a.Fallback,
		}
	}
	return FeedbackResponse{Success: true, Comments: comments}
}

func ToCriticResponses(personas []model.Persona) []CriticResponse {
	out := make([]CriticResponse, len(personas))
	for i, p := range personas {
		out[i] = CriticResponse{
			ID:     string(p.ID),
			Name:   p.DisplayName,
			Role:   p.Role,
			Avatar: p.Avatar,
		}
	}
	return out
}
