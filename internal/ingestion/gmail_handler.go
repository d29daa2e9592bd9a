package ingestion

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailHandler fetches resume attachments from a Gmail inbox into the
// uploads directory.
type GmailHandler struct {
	service    *gmail.Service
	uploadsDir string
	log        *zap.Logger
}

// NewGmailHandler builds a Gmail handler using OAuth credentials. The token
// is cached in tokenFile; when absent the user is walked through the browser
// authorization flow.
func NewGmailHandler(ctx context.Context, credentialsFile, tokenFile, uploadsDir string, log *zap.Logger) (*GmailHandler, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(b, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	client, err := getClient(ctx, config, tokenFile)
	if err != nil {
		return nil, err
	}

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail client: %w", err)
	}

	return &GmailHandler{
		service:    srv,
		uploadsDir: uploadsDir,
		log:        log,
	}, nil
}

// getClient returns an HTTP client backed by a cached token, running the
// web authorization flow when no valid token exists yet.
func getClient(ctx context.Context, config *oauth2.Config, tokenFile string) (*http.Client, error) {
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		tok, err = getTokenFromWeb(ctx, config)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenFile, tok); err != nil {
			return nil, err
		}
	}
	return config.Client(ctx, tok), nil
}

// getTokenFromWeb requests a token interactively.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return tok, nil
}

// tokenFromFile retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

// saveToken caches a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// FetchAttachments downloads resume attachments from messages whose subject
// matches the filter, saving them into the uploads directory prefixed with
// the sender's name. Per-message failures are logged and skipped so one bad
// email never aborts the fetch. It returns the number of files saved.
func (gh *GmailHandler) FetchAttachments(ctx context.Context, subject string) (int, error) {
	if err := os.MkdirAll(gh.uploadsDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	user := "me"
	query := fmt.Sprintf("subject:%s has:attachment", subject)

	r, err := gh.service.Users.Messages.List(user).Q(query).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to retrieve messages: %w", err)
	}
	if len(r.Messages) == 0 {
		return 0, fmt.Errorf("no messages found with subject: %s", subject)
	}

	saved := 0
	for _, msg := range r.Messages {
		message, err := gh.service.Users.Messages.Get(user, msg.Id).Context(ctx).Do()
		if err != nil {
			gh.log.Warn("unable to retrieve message", zap.String("id", msg.Id), zap.Error(err))
			continue
		}

		senderName := extractSenderName(message)

		for _, part := range message.Payload.Parts {
			if part.Filename == "" || part.Body.AttachmentId == "" {
				continue
			}
			if !IsSupported(part.Filename) {
				gh.log.Warn("skipping unsupported attachment", zap.String("filename", part.Filename))
				continue
			}

			attachment, err := gh.service.Users.Messages.Attachments.Get(user, msg.Id, part.Body.AttachmentId).Context(ctx).Do()
			if err != nil {
				gh.log.Warn("unable to retrieve attachment", zap.String("filename", part.Filename), zap.Error(err))
				continue
			}

			data, err := base64.URLEncoding.DecodeString(attachment.Data)
			if err != nil {
				gh.log.Warn("unable to decode attachment", zap.String("filename", part.Filename), zap.Error(err))
				continue
			}

			filename := fmt.Sprintf("%s_%s", senderName, filepath.Base(part.Filename))
			filePath := filepath.Join(gh.uploadsDir, filename)
			if err := os.WriteFile(filePath, data, 0644); err != nil {
				gh.log.Warn("unable to write file", zap.String("path", filePath), zap.Error(err))
				continue
			}

			gh.log.Info("downloaded resume attachment", zap.String("filename", filename))
			saved++
		}
	}

	return saved, nil
}

// extractSenderName pulls the sender's name from the From header, falling
// back to the address prefix.
func extractSenderName(message *gmail.Message) string {
	for _, header := range message.Payload.Headers {
		if header.Name != "From" {
			continue
		}
		from := header.Value
		if idx := strings.Index(from, "<"); idx > 0 {
			name := strings.TrimSpace(from[:idx])
			return strings.ReplaceAll(name, " ", "")
		}
		if idx := strings.Index(from, "@"); idx > 0 {
			return from[:idx]
		}
		return "Unknown"
	}
	return "Unknown"
}
