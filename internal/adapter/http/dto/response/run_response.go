package response

import (
	"time"

	"grafica_xpto/internal/domain/entities"
)

type ConversionResultResponse struct {
	GroupID     string `json:"group_id"`
	GroupName   string `json:"group_name"`
	Status      string `json:"status"`
	OrderID     string `json:"order_id,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
	Error       string `json:"error,omitempty"`
}

type RunResponse struct {
	RunID      string                     `json:"run_id"`
	ID         string                     `json:"id"`
	SessionID  string                     `json:"session_id"`
	Results    []ConversionResultResponse `json:"results"`
	Progress   int                        `json:"progress"`
	Status     string                     `json:"status"`
	Succeeded  int                        `json:"succeeded"`
	Failed     int                        `json:"failed"`
	StartedAt  time.Time                  `json:"started_at"`
	FinishedAt *time.Time                 `json:"finished_at,omitempty"`
}

func FromRun(r entities.ConversionRun) RunResponse {
	results := make([]ConversionResultResponse, 0, len(r.Results))
	for _, res := range r.Results {
		results = append(results, ConversionResultResponse{
			GroupID:     res.GroupID,
			GroupName:   res.GroupName,
			Status:      string(res.Status),
			OrderID:     res.OrderID,
			OrderNumber: res.OrderNumber,
			Error:       res.Error,
		})
	}
	out := RunResponse{
		RunID:     r.ID,
		ID:        r.ID,
		SessionID: r.SessionID,
		Results:   results,
		Progress:  r.Progress,
		Status:    string(r.Status),
		Succeeded: r.SucceededCount(),
		Failed:    r.FailedCount(),
		StartedAt: r.StartedAt,
	}
	if !r.FinishedAt.IsZero() {
		finished := r.FinishedAt
		out.FinishedAt = &finished
	}
	return out
}
