// Package twitter is the X API v2 transport: mention search, user and post
// lookups with an app bearer token, and replies signed with user OAuth1
// credentials.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"

	"mention_launcher/internal/domain"
	"mention_launcher/internal/poller"
)

const (
	tweetFields = "created_at,author_id,conversation_id,referenced_tweets,attachments"
	expansions  = "author_id,referenced_tweets.id,attachments.media_keys,referenced_tweets.id.attachments.media_keys"
	mediaFields = "url,preview_image_url,type"
	userFields  = "created_at,public_metrics,username,name"

	minResults = 10
)

// Config holds X API client configuration.
type Config struct {
	BaseURL        string
	BearerToken    string
	AppKey         string
	AppSecret      string
	AccessToken    string
	AccessSecret   string
	Timeout        time.Duration
	ReplyInterval  time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// StatusError is returned for any non-success HTTP status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d: %s", e.Code, e.Body)
}

func (e *StatusError) retryable() bool {
	return e.Code >= http.StatusInternalServerError
}

// Client implements poller.Transport and service.Transport.
type Client struct {
	httpClient  *http.Client
	oauthClient *http.Client
	baseURL     string
	bearerToken string
	replies     *rate.Limiter

	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	oauthCfg := oauth1.NewConfig(cfg.AppKey, cfg.AppSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	oauthClient := oauthCfg.Client(oauth1.NoContext, token)
	oauthClient.Timeout = cfg.Timeout

	replyLimit := rate.Inf
	if cfg.ReplyInterval > 0 {
		replyLimit = rate.Every(cfg.ReplyInterval)
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		oauthClient:    oauthClient,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		bearerToken:    cfg.BearerToken,
		replies:        rate.NewLimiter(replyLimit, 1),
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "twitter"),
	}
}

// SearchMentions fetches one page of recent-search results, newest first.
func (c *Client) SearchMentions(ctx context.Context, q poller.SearchQuery) (*poller.SearchPage, error) {
	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("max_results", strconv.Itoa(clamp(q.MaxResults, minResults, poller.MaxPageSize)))
	params.Set("sort_order", "recency")
	params.Set("tweet.fields", tweetFields)
	params.Set("expansions", expansions)
	params.Set("media.fields", mediaFields)
	params.Set("user.fields", userFields)
	if q.SinceID != "" {
		params.Set("since_id", q.SinceID)
	} else if !q.StartTime.IsZero() {
		params.Set("start_time", q.StartTime.UTC().Format(time.RFC3339))
	}
	if q.PageToken != "" {
		params.Set("next_token", q.PageToken)
	}

	var resp searchResponse
	header, err := c.get(ctx, "/2/tweets/search/recent?"+params.Encode(), &resp)
	if err != nil {
		return nil, fmt.Errorf("search recent: %w", err)
	}

	idx := newIndex(resp.Includes, c.logger)
	page := &poller.SearchPage{
		Mentions:  make([]domain.MentionWithContext, 0, len(resp.Data)),
		NextToken: resp.Meta.NextToken,
		NewestID:  resp.Meta.NewestID,
		RateLimit: parseRateLimit(header),
	}
	for _, t := range resp.Data {
		page.Mentions = append(page.Mentions, idx.mention(t))
	}

	return page, nil
}

// GetUser looks up an account with the fields the validator needs.
func (c *Client) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	params := url.Values{}
	params.Set("user.fields", userFields)

	var resp userResponse
	if _, err := c.get(ctx, "/2/users/"+url.PathEscape(userID)+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("get user %s: %w", userID, errorsOf(resp.Errors))
	}

	user := toUser(*resp.Data, c.logger)
	return &user, nil
}

// GetPost looks up a single post with its attached media.
func (c *Client) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	params := url.Values{}
	params.Set("tweet.fields", tweetFields)
	params.Set("expansions", "attachments.media_keys")
	params.Set("media.fields", mediaFields)

	var resp tweetResponse
	if _, err := c.get(ctx, "/2/tweets/"+url.PathEscape(postID)+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("get post %s: %w", postID, errorsOf(resp.Errors))
	}

	post := newIndex(resp.Includes, c.logger).post(*resp.Data)
	return &post, nil
}

// Reply posts text as a reply to parentID. Replies are paced by the reply
// limiter and never retried, so a timeout cannot produce a double post.
func (c *Client) Reply(ctx context.Context, text, parentID string) error {
	if err := c.replies.Wait(ctx); err != nil {
		return fmt.Errorf("wait reply slot: %w", err)
	}

	body, err := json.Marshal(createTweetRequest{
		Text:  text,
		Reply: &replyParam{InReplyToTweetID: parentID},
	})
	if err != nil {
		return fmt.Errorf("marshal reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.oauthClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return readStatusError(resp)
	}

	c.logger.Debug("replied", "parent_id", parentID)
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) (http.Header, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialBackoff
	bo.MaxInterval = c.maxBackoff
	bo.Multiplier = 2

	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		var header http.Header
		header, err = c.doGet(ctx, path, out)
		if err == nil {
			return header, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.retryable() {
			return nil, err
		}
		if attempt == c.maxAttempts {
			break
		}

		delay := bo.NextBackOff()
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doGet(ctx context.Context, path string, out any) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, readStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return resp.Header, nil
}

func readStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}

// parseRateLimit reads the x-rate-limit headers. Remaining is -1 when the
// upstream did not report a quota.
func parseRateLimit(h http.Header) poller.RateLimit {
	rl := poller.RateLimit{Remaining: -1}
	if v, err := strconv.Atoi(h.Get("x-rate-limit-remaining")); err == nil {
		rl.Remaining = v
	}
	if v, err := strconv.ParseInt(h.Get("x-rate-limit-reset"), 10, 64); err == nil {
		rl.Reset = time.Unix(v, 0)
	}
	return rl
}

func errorsOf(errs []apiErr) error {
	if len(errs) == 0 {
		return errors.New("not found")
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Detail)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
