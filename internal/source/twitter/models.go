package twitter

// searchResponse is the body of GET /2/tweets/search/recent.
type searchResponse struct {
	Data     []apiTweet `json:"data"`
	Includes includes   `json:"includes"`
	Meta     meta       `json:"meta"`
}

type tweetResponse struct {
	Data     *apiTweet `json:"data"`
	Includes includes  `json:"includes"`
	Errors   []apiErr  `json:"errors"`
}

type userResponse struct {
	Data   *apiUser `json:"data"`
	Errors []apiErr `json:"errors"`
}

type createTweetRequest struct {
	Text  string      `json:"text"`
	Reply *replyParam `json:"reply,omitempty"`
}

type replyParam struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

type apiTweet struct {
	ID               string          `json:"id"`
	Text             string          `json:"text"`
	AuthorID         string          `json:"author_id"`
	ConversationID   string          `json:"conversation_id"`
	CreatedAt        string          `json:"created_at"`
	ReferencedTweets []apiReference  `json:"referenced_tweets"`
	Attachments      *apiAttachments `json:"attachments"`
}

type apiReference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type apiAttachments struct {
	MediaKeys []string `json:"media_keys"`
}

type includes struct {
	Users  []apiUser  `json:"users"`
	Tweets []apiTweet `json:"tweets"`
	Media  []apiMedia `json:"media"`
}

type apiUser struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Name          string        `json:"name"`
	CreatedAt     string        `json:"created_at"`
	PublicMetrics publicMetrics `json:"public_metrics"`
}

type publicMetrics struct {
	FollowersCount int `json:"followers_count"`
}

type apiMedia struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	PreviewImageURL string `json:"preview_image_url"`
}

type meta struct {
	NewestID    string `json:"newest_id"`
	OldestID    string `json:"oldest_id"`
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token"`
}

type apiErr struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
