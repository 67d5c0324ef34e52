package dto

// InsightResponse is the state of the teacher's current insight request.
// Status is "idle", "pending" or "ready"; Text is filled once ready.
type InsightResponse struct {
	Status    string `json:"status" example:"pending"`
	StudentID string `json:"studentId,omitempty" example:"s1"`
	Text      string `json:"text,omitempty"`
}

// NewsletterRequest lists the school events to summarize for parents.
type NewsletterRequest struct {
	Events []string `json:"events" binding:"required"`
}

// NewsletterResponse carries the generated newsletter text.
type NewsletterResponse struct {
	Text string `json:"text"`
}
