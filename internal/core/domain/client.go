package domain

import "time"

// MediaType distinguishes photos from videos in a gallery.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is one photo or video in a client's private gallery.
// Items uploaded before stable ids existed have an empty ID and can only be
// addressed by position.
type MediaItem struct {
	ID         string    `json:"id,omitempty"`
	Type       MediaType `json:"type"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename,omitempty"`
	Title      string    `json:"title,omitempty"`
	UploadedAt time.Time `json:"uploadedAt,omitzero"`
}

// Client is a studio customer with a private gallery. Email is the natural
// key but uniqueness is not enforced; lookups resolve to the first match.
type Client struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	SessionType string      `json:"sessionType"`
	SessionDate string      `json:"sessionDate"`
	Gallery     []MediaItem `json:"gallery"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
}

// MediaIndex returns the position of the media item with the given id, or -1.
func (c *Client) MediaIndex(mediaID string) int {
	if mediaID == "" {
		return -1
	}
	for i, m := range c.Gallery {
		if m.ID == mediaID {
			return i
		}
	}
	return -1
}

// Principal strips the password and returns the session snapshot of c.
func (c *Client) Principal() *Principal {
	gallery := make([]MediaItem, len(c.Gallery))
	copy(gallery, c.Gallery)
	return &Principal{
		Kind:        KindClient,
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		SessionType: c.SessionType,
		SessionDate: c.SessionDate,
		Gallery:     gallery,
		CreatedAt:   c.CreatedAt,
	}
}
