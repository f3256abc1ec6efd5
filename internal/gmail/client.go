// Package gmail creates drafts in the user's Gmail account through the
// compose-only OAuth2 scope. Nothing in this package can send mail; a
// draft sits in the drafts folder until the user sends it by hand.
package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// DefaultMaxDrafts caps ListDrafts when the caller passes no limit.
const DefaultMaxDrafts = 10

// DraftSummary identifies an existing Gmail draft.
type DraftSummary struct {
	ID      string `json:"id"`
	Snippet string `json:"snippet,omitempty"`
}

// Client wraps the Gmail drafts API.
type Client struct {
	svc *gmailapi.Service
	log *zap.Logger
}

// NewClient authenticates against the Gmail API and returns a draft
// client. credentialsPath must point at installed-app OAuth2 client
// JSON; tokenPath caches the user token between runs and is rewritten
// when a refresh produces a new access token. With no cached token the
// authorization URL is printed and the code read from stdin.
func NewClient(ctx context.Context, credentialsPath, tokenPath string, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	raw, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gmail credentials not found at %s (download OAuth2 client credentials from Google Cloud Console): %w", credentialsPath, err)
	}

	config, err := google.ConfigFromJSON(raw, gmailapi.GmailComposeScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gmail credentials: %w", err)
	}

	token, err := tokenFromFile(tokenPath)
	if err != nil {
		log.Debug("no cached gmail token, starting authorization", zap.String("path", tokenPath))
		token, err = tokenFromWeb(ctx, config)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenPath, token); err != nil {
			return nil, err
		}
	}

	source := config.TokenSource(ctx, token)
	fresh, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("gmail token refresh failed: %w", err)
	}
	if fresh.AccessToken != token.AccessToken {
		if err := saveToken(tokenPath, fresh); err != nil {
			return nil, err
		}
	}

	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to build gmail service: %w", err)
	}

	return &Client{svc: svc, log: log}, nil
}

// CreateDraft stores the message as a Gmail draft and returns its id.
func (c *Client) CreateDraft(ctx context.Context, req DraftRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid draft request: %w", err)
	}

	draft := &gmailapi.Draft{
		Message: &gmailapi.Message{Raw: BuildMessage(req)},
	}

	created, err := c.svc.Users.Drafts.Create("me", draft).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create gmail draft: %w", err)
	}

	c.log.Info("gmail draft created",
		zap.String("draft_id", created.Id),
		zap.String("to", req.To))
	return created.Id, nil
}

// ListDrafts returns up to max existing drafts.
func (c *Client) ListDrafts(ctx context.Context, max int) ([]DraftSummary, error) {
	if max <= 0 {
		max = DefaultMaxDrafts
	}

	resp, err := c.svc.Users.Drafts.List("me").MaxResults(int64(max)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list gmail drafts: %w", err)
	}

	drafts := make([]DraftSummary, 0, len(resp.Drafts))
	for _, draft := range resp.Drafts {
		drafts = append(drafts, summarize(draft))
	}
	return drafts, nil
}

// GetDraft fetches a single draft by id.
func (c *Client) GetDraft(ctx context.Context, draftID string) (*DraftSummary, error) {
	draft, err := c.svc.Users.Drafts.Get("me", draftID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get gmail draft %s: %w", draftID, err)
	}

	summary := summarize(draft)
	return &summary, nil
}

// DeleteDraft removes a draft by id.
func (c *Client) DeleteDraft(ctx context.Context, draftID string) error {
	if err := c.svc.Users.Drafts.Delete("me", draftID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete gmail draft %s: %w", draftID, err)
	}
	return nil
}

func summarize(draft *gmailapi.Draft) DraftSummary {
	summary := DraftSummary{ID: draft.Id}
	if draft.Message != nil {
		summary.Snippet = draft.Message.Snippet
	}
	return summary
}

// tokenFromWeb walks the user through the installed-app authorization
// flow on the terminal.
func tokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open this link in your browser, authorize the app, then paste the code here:\n%s\n\nCode: ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

// saveToken caches the token owner-readable only, creating the state
// directory on first use.
func saveToken(path string, token *oauth2.Token) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create token directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to cache gmail token at %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to write gmail token: %w", err)
	}
	return nil
}
