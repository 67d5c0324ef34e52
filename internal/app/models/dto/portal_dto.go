package dto

import "time"

// AnnouncementRequest posts a free-text class announcement. Announcements are
// portal-lifetime state and are never written to the registry.
type AnnouncementRequest struct {
	Text string `json:"text" binding:"required"`
}

// Announcement is a posted class announcement.
type Announcement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// AttendanceToggleRequest flips a student's presence for a given day.
type AttendanceToggleRequest struct {
	StudentID string `json:"studentId" binding:"required" example:"s1"`
	Date      string `json:"date,omitempty" example:"2024-03-11"`
}

// AttendanceResponse maps student ids to presence for one day. Students not
// present in the map default to present in the UI.
type AttendanceResponse struct {
	Date    string          `json:"date"`
	Present map[string]bool `json:"present"`
}

// MessageRequest posts a parent message. Messages are session-local and are
// not delivered anywhere.
type MessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// Message is a posted parent message.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
