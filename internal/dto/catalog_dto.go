package dto

import "time"

// Tag is one entry of the course tag catalogue.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagsResponse wraps GET /course/tags and GET /course/course/{id}/tags.
type TagsResponse struct {
	Envelope
	Tags []Tag `json:"tags"`
}

// SaveCourseTagsResponse wraps POST /course/save_course_tags.
type SaveCourseTagsResponse struct {
	Envelope
	TagCount int `json:"tag_count"`
}

// Badge is the completion reward attached to a course at publish time. It is
// polymorphic: BadgeType "icon" carries IconName, "image" carries ImageURL.
type Badge struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BadgeType string `json:"badge_type"`
	IconName  string `json:"icon_name"`
	ImageURL  string `json:"image_url"`
	CourseID  string `json:"course_id"`
}

// BadgeResponse wraps badge creation and retrieval endpoints.
type BadgeResponse struct {
	Envelope
	Badge *Badge `json:"badge"`
}

// Attachment is a file attached to a lesson, stored behind the backend.
type Attachment struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	S3URL     string    `json:"s3_url"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentsResponse wraps GET /course/lesson/{id}/attachments.
type AttachmentsResponse struct {
	Envelope
	Attachments []Attachment `json:"attachments"`
}

// UploadAttachmentResponse wraps POST /course/upload_lesson_attachment.
type UploadAttachmentResponse struct {
	Envelope
	AttachmentID string `json:"attachment_id"`
	FileName     string `json:"file_name"`
	S3URL        string `json:"s3_url"`
}
