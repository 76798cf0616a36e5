package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// ChatContacts returns the people the caller shares an appointment with
func (c *Client) ChatContacts(ctx context.Context) ([]model.Contact, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/chat/contacts",
		fallback: "Failed to load contacts.",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[model.Contact](body, "contacts"), nil
}

// ChatHistory returns the conversation with contactID, oldest first
func (c *Client) ChatHistory(ctx context.Context, contactID int64) ([]model.ChatMessage, error) {
	body, err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/chat/history",
		query:    url.Values{"with": {strconv.FormatInt(contactID, 10)}},
		fallback: "Failed to load chat history.",
	})
	if err != nil {
		return nil, err
	}
	return decodeList[model.ChatMessage](body, "messages"), nil
}
