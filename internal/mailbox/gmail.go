// Package mailbox fetches invoice emails from Gmail. It is the only package
// talking to the Google API; the pipeline sees plain entity.Email values.
package mailbox

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/cc-collective/invoice-ingest/internal/entity"
)

// Client wraps the Gmail API for read-only message fetching.
type Client struct {
	service *gmail.Service
	logger  *slog.Logger
}

// Setup builds an authenticated client from an OAuth credentials file and a
// stored token file. When no token exists yet it returns the consent URL the
// operator has to visit; Exchange turns the resulting code into a token file.
func Setup(ctx context.Context, credentialsFile, tokenFile string, logger *slog.Logger) (*Client, string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	config, err := oauthConfig(credentialsFile)
	if err != nil {
		return nil, "", err
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, config.AuthCodeURL("state", oauth2.AccessTypeOffline), nil
	}

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(config.Client(ctx, token)))
	if err != nil {
		return nil, "", fmt.Errorf("creating gmail service: %w", err)
	}
	return &Client{service: srv, logger: logger}, "", nil
}

// Exchange trades a consent code for a token and persists it for Setup.
func Exchange(ctx context.Context, credentialsFile, tokenFile, code string) error {
	config, err := oauthConfig(credentialsFile)
	if err != nil {
		return err
	}
	token, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging code: %w", err)
	}
	return saveToken(tokenFile, token)
}

func oauthConfig(credentialsFile string) (*oauth2.Config, error) {
	creds, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials: %w", err)
	}
	config, err := google.ConfigFromJSON(creds, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	return config, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// FetchSince lists messages matching the query received after the watermark
// and downloads each with its attachments. Query is the operator-configured
// Gmail search, typically restricted to PDF attachments.
func (c *Client) FetchSince(ctx context.Context, query string, after time.Time) ([]entity.Email, error) {
	q := fmt.Sprintf("%s after:%d", query, after.Unix())
	msgs, err := c.service.Users.Messages.List("me").Q(q).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	var emails []entity.Email
	for _, msg := range msgs.Messages {
		email, err := c.fetchEmail(ctx, msg.Id)
		if err != nil {
			// one undecodable message must not stall the whole poll
			c.logger.Error("mailbox.fetch_failed", "message_id", msg.Id, "err", err)
			continue
		}
		emails = append(emails, *email)
	}
	return emails, nil
}

func (c *Client) fetchEmail(ctx context.Context, messageID string) (*entity.Email, error) {
	msg, err := c.service.Users.Messages.Get("me", messageID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	email := &entity.Email{ID: messageID}
	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "From":
			email.From = header.Value
		case "Subject":
			email.Subject = header.Value
		case "Date":
			if t, err := parseMailDate(header.Value); err == nil {
				email.Date = t
			}
		}
	}

	email.Attachments = c.collectAttachments(ctx, messageID, msg.Payload)
	return email, nil
}

// collectAttachments walks the MIME tree depth-first. The filename on the
// part is what the classifier keys on, so parts without one are ignored.
func (c *Client) collectAttachments(ctx context.Context, messageID string, part *gmail.MessagePart) []entity.Attachment {
	var attachments []entity.Attachment
	for _, p := range part.Parts {
		if len(p.Parts) > 0 {
			attachments = append(attachments, c.collectAttachments(ctx, messageID, p)...)
			continue
		}
		if p.Filename == "" || p.Body == nil || p.Body.AttachmentId == "" {
			continue
		}
		att, err := c.service.Users.Messages.Attachments.Get("me", messageID, p.Body.AttachmentId).Context(ctx).Do()
		if err != nil {
			c.logger.Error("mailbox.attachment_failed", "message_id", messageID, "filename", p.Filename, "err", err)
			continue
		}
		data, err := base64.URLEncoding.DecodeString(att.Data)
		if err != nil {
			c.logger.Error("mailbox.attachment_decode_failed", "message_id", messageID, "filename", p.Filename, "err", err)
			continue
		}
		attachments = append(attachments, entity.Attachment{Filename: p.Filename, Content: data})
	}
	return attachments
}

var mailDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
}

func parseMailDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range mailDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
