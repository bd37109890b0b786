package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"

	"github.com/fun2learn/fun2learn-web/internal/dto"
)

// Attachment kinds accepted for lesson uploads. Anything outside this set is
// rejected before a byte leaves the process.
var allowedAttachmentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"application/pdf": {},
	"video/mp4":       {},
	"audio/mpeg":      {},
}

// AttachmentAPI covers lesson file uploads and listing.
type AttachmentAPI interface {
	UploadLessonAttachment(ctx context.Context, token, lessonID, fileName string, file io.Reader) (dto.UploadAttachmentResponse, error)
	LessonAttachments(ctx context.Context, token, lessonID string) ([]dto.Attachment, error)
	DeleteLessonAttachment(ctx context.Context, token, attachmentID string) error
}

// UploadLessonAttachment streams a file to the backend as multipart form data.
// The file is buffered once so the content type can be sniffed from the actual
// bytes rather than trusted from the upload's declared type.
func (c *Client) UploadLessonAttachment(ctx context.Context, token, lessonID, fileName string, file io.Reader) (dto.UploadAttachmentResponse, error) {
	var resp dto.UploadAttachmentResponse

	data, err := io.ReadAll(io.LimitReader(file, c.maxUploadBytes+1))
	if err != nil {
		return resp, &Error{Message: "Failed to read uploaded file"}
	}
	if int64(len(data)) > c.maxUploadBytes {
		return resp, &Error{Message: fmt.Sprintf("File exceeds the %d MB upload limit", c.maxUploadBytes/(1<<20))}
	}

	detected := mimetype.Detect(data)
	if _, ok := allowedAttachmentTypes[detected.String()]; !ok {
		return resp, &Error{Message: fmt.Sprintf("Unsupported file type %s", detected.String())}
	}

	err = c.call(ctx, "attachment.upload", "POST", "/course/upload_lesson_attachment", token, func(r *resty.Request) {
		r.SetFileReader("file", fileName, bytes.NewReader(data))
		r.SetFormData(map[string]string{"lesson_id": lessonID})
	}, &resp, "Failed to upload attachment")
	if err != nil {
		return dto.UploadAttachmentResponse{}, err
	}
	return resp, nil
}

// LessonAttachments lists the files attached to a lesson.
func (c *Client) LessonAttachments(ctx context.Context, token, lessonID string) ([]dto.Attachment, error) {
	var resp dto.AttachmentsResponse
	path := fmt.Sprintf("/course/lesson/%s/attachments", lessonID)
	if err := c.get(ctx, "attachment.list", path, token, &resp, "Failed to fetch attachments"); err != nil {
		return nil, err
	}
	return resp.Attachments, nil
}

// DeleteLessonAttachment removes an attachment and its stored object.
func (c *Client) DeleteLessonAttachment(ctx context.Context, token, attachmentID string) error {
	var resp dto.Envelope
	body := map[string]string{"attachment_id": attachmentID}
	return c.deleteJSON(ctx, "attachment.delete", "/course/delete_lesson_attachment", token, body, &resp, "Failed to delete attachment")
}
