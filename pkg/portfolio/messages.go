package portfolio

import (
	"context"
	"net/http"

	"github.com/folium/backend/internal/model"
)

// SendMessage submits a contact form message. 公開エンドポイントなので
// セッションは不要。
func (c *Client) SendMessage(ctx context.Context, msg *model.Message) (*model.Message, error) {
	var saved model.Message
	if err := c.doJSON(ctx, http.MethodPost, "/api/messages", msg, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Messages lists all contact messages, newest first.
func (c *Client) Messages(ctx context.Context) ([]*model.Message, error) {
	var list []*model.Message
	if err := c.doJSON(ctx, http.MethodGet, "/api/messages", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkMessageRead flags a message as read.
func (c *Client) MarkMessageRead(ctx context.Context, id string) (*model.Message, error) {
	var updated model.Message
	if err := c.doJSON(ctx, http.MethodPatch, "/api/messages/"+id+"/read", nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UnreadCount returns the number of unread messages, or 0 when the
// endpoint fails. The admin badge is decoration, not truth.
func (c *Client) UnreadCount(ctx context.Context) int {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/messages/unread-count", nil, &out); err != nil {
		return 0
	}
	return out.Count
}

// DeleteMessage removes a message.
func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/messages/"+id, nil, nil)
}
