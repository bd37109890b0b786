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

// Badge images are rendered inline next to course titles, so only raster
// image types are accepted.
var allowedBadgeImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// CatalogAPI covers the tag catalogue and course badge endpoints used by the
// publish flow.
type CatalogAPI interface {
	Tags(ctx context.Context, token string) ([]dto.Tag, error)
	CourseTags(ctx context.Context, token, courseID string) ([]dto.Tag, error)
	SaveCourseTags(ctx context.Context, token, courseID string, tagNames []string) (int, error)
	CreateBadgeIcon(ctx context.Context, token, courseID, name, iconName string) (dto.Badge, error)
	CreateBadgeImage(ctx context.Context, token, courseID, name, fileName string, image io.Reader) (dto.Badge, error)
	CourseBadge(ctx context.Context, token, courseID string) (*dto.Badge, error)
}

// Tags lists the global tag catalogue.
func (c *Client) Tags(ctx context.Context, token string) ([]dto.Tag, error) {
	var resp dto.TagsResponse
	if err := c.get(ctx, "tag.list", "/course/tags", token, &resp, "Failed to fetch tags"); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

// CourseTags lists the tags currently attached to one course.
func (c *Client) CourseTags(ctx context.Context, token, courseID string) ([]dto.Tag, error) {
	var resp dto.TagsResponse
	path := fmt.Sprintf("/course/course/%s/tags", courseID)
	if err := c.get(ctx, "tag.course", path, token, &resp, "Failed to fetch course tags"); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

// SaveCourseTags replaces a course's tag set wholesale and returns the number
// of tags now attached. Unknown names are created on the backend.
func (c *Client) SaveCourseTags(ctx context.Context, token, courseID string, tagNames []string) (int, error) {
	var resp dto.SaveCourseTagsResponse
	body := map[string]any{"course_id": courseID, "tags": tagNames}
	if err := c.postJSON(ctx, "tag.save", "/course/save_course_tags", token, body, &resp, "Failed to save tags"); err != nil {
		return 0, err
	}
	return resp.TagCount, nil
}

// CreateBadgeIcon attaches a named glyph badge to a course, replacing any
// existing badge.
func (c *Client) CreateBadgeIcon(ctx context.Context, token, courseID, name, iconName string) (dto.Badge, error) {
	var resp dto.BadgeResponse
	body := map[string]string{"course_id": courseID, "name": name, "icon_name": iconName}
	if err := c.postJSON(ctx, "badge.create_icon", "/course/create_badge_icon", token, body, &resp, "Failed to create badge"); err != nil {
		return dto.Badge{}, err
	}
	if resp.Badge == nil {
		return dto.Badge{}, &Error{Message: "Failed to create badge"}
	}
	return *resp.Badge, nil
}

// CreateBadgeImage attaches a custom image badge to a course. The image is
// sniffed and size-checked the same way lesson attachments are.
func (c *Client) CreateBadgeImage(ctx context.Context, token, courseID, name, fileName string, image io.Reader) (dto.Badge, error) {
	var resp dto.BadgeResponse

	data, err := io.ReadAll(io.LimitReader(image, c.maxUploadBytes+1))
	if err != nil {
		return dto.Badge{}, &Error{Message: "Failed to read badge image"}
	}
	if int64(len(data)) > c.maxUploadBytes {
		return dto.Badge{}, &Error{Message: fmt.Sprintf("Image exceeds the %d MB upload limit", c.maxUploadBytes/(1<<20))}
	}

	detected := mimetype.Detect(data)
	if _, ok := allowedBadgeImageTypes[detected.String()]; !ok {
		return dto.Badge{}, &Error{Message: fmt.Sprintf("Badge image must be an image file, got %s", detected.String())}
	}

	err = c.call(ctx, "badge.create_image", "POST", "/course/create_badge_image", token, func(r *resty.Request) {
		r.SetFileReader("image", fileName, bytes.NewReader(data))
		r.SetFormData(map[string]string{"course_id": courseID, "name": name})
	}, &resp, "Failed to create badge")
	if err != nil {
		return dto.Badge{}, err
	}
	if resp.Badge == nil {
		return dto.Badge{}, &Error{Message: "Failed to create badge"}
	}
	return *resp.Badge, nil
}

// CourseBadge fetches a course's badge. A course without a badge yields nil
// rather than an error.
func (c *Client) CourseBadge(ctx context.Context, token, courseID string) (*dto.Badge, error) {
	var resp dto.BadgeResponse
	path := fmt.Sprintf("/course/course/%s/badge", courseID)
	if err := c.get(ctx, "badge.course", path, token, &resp, "Failed to fetch badge"); err != nil {
		return nil, err
	}
	return resp.Badge, nil
}
