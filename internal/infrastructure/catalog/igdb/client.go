// Package igdb provides a Catalog implementation backed by the IGDB v4 API.
package igdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// Client queries IGDB with a Twitch app access token.
type Client struct {
	clientID   string
	baseURL    string
	httpClient *http.Client
}

var _ ports.Catalog = (*Client)(nil)

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used for token and API requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// New creates an IGDB client. Tokens are fetched lazily and refreshed on expiry.
func New(clientID, clientSecret, baseURL, tokenURL string, opts ...Option) (*Client, error) {
	clientID = strings.TrimSpace(clientID)
	clientSecret = strings.TrimSpace(clientSecret)
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("twitch client id and secret required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("igdb base url required")
	}
	if strings.TrimSpace(tokenURL) == "" {
		return nil, errors.New("twitch token url required")
	}

	o := options{httpClient: &http.Client{Timeout: 15 * time.Second}}
	for _, opt := range opts {
		opt(&o)
	}

	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, o.httpClient)
	httpClient := cc.Client(tokenCtx)
	httpClient.Timeout = o.httpClient.Timeout

	return &Client{
		clientID:   clientID,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// UpcomingGames returns the games released on q's platform inside q's month.
func (c *Client) UpcomingGames(ctx context.Context, q entities.ReleaseQuery) ([]entities.Game, error) {
	return c.games(ctx, upcomingQuery(q))
}

// GameByID returns a single game.
func (c *Client) GameByID(ctx context.Context, id int64) (*entities.Game, error) {
	games, err := c.games(ctx, gameByIDQuery(id))
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, ports.ErrGameNotFound
	}
	return &games[0], nil
}

// Search finds main games matching keyword.
func (c *Client) Search(ctx context.Context, keyword string, platformID int64, limit int) ([]entities.Game, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, errors.New("keyword must not be empty")
	}
	return c.games(ctx, searchQuery(keyword, platformID, limit))
}

func (c *Client) games(ctx context.Context, body string) ([]entities.Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/games", strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("igdb returned %d (latency=%v): %s", resp.StatusCode, latency, strings.TrimSpace(string(snippet)))
	}

	var games []entities.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("decode igdb response: %w", err)
	}
	return games, nil
}
