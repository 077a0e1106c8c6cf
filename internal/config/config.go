package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bot        BotConfig       `yaml:"bot"`
	RateLimits RateLimitConfig `yaml:"rate_limits"`
	Security   SecurityConfig  `yaml:"security"`
	Twitter    TwitterConfig   `yaml:"twitter"`
	Generator  GeneratorConfig `yaml:"generator"`
	Chain      ChainConfig     `yaml:"chain"`
	Shortener  ShortenerConfig `yaml:"shortener"`
	Slack      SlackConfig     `yaml:"slack"`
	Database   DatabaseConfig  `yaml:"database"`
	RabbitMQ   RabbitMQConfig  `yaml:"rabbitmq"`
	LogLevel   string          `yaml:"log_level"`
}

type BotConfig struct {
	Handle            string        `yaml:"handle"`
	PollInterval      time.Duration `yaml:"poll_interval"`
	StartupDelay      time.Duration `yaml:"startup_delay"`
	LookbackWindow    time.Duration `yaml:"lookback_window"`
	StartSafetyMargin time.Duration `yaml:"start_safety_margin"`
	CursorStaleness   time.Duration `yaml:"cursor_staleness"`
	PageSize          int           `yaml:"page_size"`
	Cooldown          time.Duration `yaml:"cooldown"`
	Acknowledge       bool          `yaml:"acknowledge"`
	AcknowledgeText   string        `yaml:"acknowledge_text"`
}

type RateLimitConfig struct {
	MaxPerUser   int           `yaml:"max_per_user"`
	UserWindow   time.Duration `yaml:"user_window"`
	GlobalPerDay int           `yaml:"global_per_day"`
}

type SecurityConfig struct {
	MinAccountAge   time.Duration `yaml:"min_account_age"`
	MinFollowers    int           `yaml:"min_followers"`
	BlockedKeywords []string      `yaml:"blocked_keywords"`
}

type TwitterConfig struct {
	BaseURL       string        `yaml:"base_url"`
	BearerToken   string        `yaml:"bearer_token"`
	AppKey        string        `yaml:"app_key"`
	AppSecret     string        `yaml:"app_secret"`
	AccessToken   string        `yaml:"access_token"`
	AccessSecret  string        `yaml:"access_secret"`
	Timeout       time.Duration `yaml:"timeout"`
	ReplyInterval time.Duration `yaml:"reply_interval"`
	Retry         RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type GeneratorConfig struct {
	AnthropicAPIKey string        `yaml:"anthropic_api_key"`
	Model           string        `yaml:"model"`
	ImageAPIURL     string        `yaml:"image_api_url"`
	ImageAPIKey     string        `yaml:"image_api_key"`
	ImageModel      string        `yaml:"image_model"`
	PinataAPIURL    string        `yaml:"pinata_api_url"`
	PinataJWT       string        `yaml:"pinata_jwt"`
	Timeout         time.Duration `yaml:"timeout"`
}

type ChainConfig struct {
	RPCURL               string        `yaml:"rpc_url"`
	ChainID              int64         `yaml:"chain_id"`
	PrivateKey           string        `yaml:"private_key"`
	ContractAddress      string        `yaml:"contract_address"`
	TreasuryAddress      string        `yaml:"treasury_address"`
	MintFeeWei           string        `yaml:"mint_fee_wei"`
	MarketURLTemplate    string        `yaml:"market_url_template"`
	SubgraphURL          string        `yaml:"subgraph_url"`
	SubgraphTimeout      time.Duration `yaml:"subgraph_timeout"`
	PriorMilestoneLength int           `yaml:"prior_milestone_length"`
}

type ShortenerConfig struct {
	APIURL string `yaml:"api_url"`
	APIKey string `yaml:"api_key"`
	Domain string `yaml:"domain"`
}

type SlackConfig struct {
	InfoWebhookURL  string `yaml:"info_webhook_url"`
	ErrorWebhookURL string `yaml:"error_webhook_url"`
	AppName         string `yaml:"app_name"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// Enabled reports whether launch history should be stored.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := tunables()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var errs []error
	required := []struct {
		name  string
		value string
	}{
		{"bot.handle", c.Bot.Handle},
		{"twitter.bearer_token", c.Twitter.BearerToken},
		{"twitter.app_key", c.Twitter.AppKey},
		{"twitter.app_secret", c.Twitter.AppSecret},
		{"twitter.access_token", c.Twitter.AccessToken},
		{"twitter.access_secret", c.Twitter.AccessSecret},
		{"generator.anthropic_api_key", c.Generator.AnthropicAPIKey},
		{"generator.image_api_key", c.Generator.ImageAPIKey},
		{"generator.pinata_jwt", c.Generator.PinataJWT},
		{"chain.rpc_url", c.Chain.RPCURL},
		{"chain.private_key", c.Chain.PrivateKey},
		{"chain.contract_address", c.Chain.ContractAddress},
		{"chain.treasury_address", c.Chain.TreasuryAddress},
		{"chain.subgraph_url", c.Chain.SubgraphURL},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}
	if c.Bot.PageSize < 10 || c.Bot.PageSize > 100 {
		errs = append(errs, fmt.Errorf("bot.page_size must be between 10 and 100, got %d", c.Bot.PageSize))
	}
	if c.Chain.ChainID <= 0 {
		errs = append(errs, errors.New("chain.chain_id must be positive"))
	}
	return errors.Join(errs...)
}

// tunables presets the settings for which zero is a valid choice. They are
// decoded over, so an explicit 0 in the file is kept.
func tunables() Config {
	return Config{
		Bot: BotConfig{
			Cooldown: 1 * time.Second,
		},
		RateLimits: RateLimitConfig{
			MaxPerUser:   3,
			GlobalPerDay: 100,
		},
		Security: SecurityConfig{
			MinAccountAge: 30 * 24 * time.Hour,
			MinFollowers:  30,
		},
	}
}

func (c *Config) setDefaults() {
	if c.Bot.PollInterval == 0 {
		c.Bot.PollInterval = 15001 * time.Millisecond
	}
	if c.Bot.StartupDelay == 0 {
		c.Bot.StartupDelay = 10 * time.Second
	}
	if c.Bot.LookbackWindow == 0 {
		c.Bot.LookbackWindow = 42 * time.Minute
	}
	if c.Bot.StartSafetyMargin == 0 {
		c.Bot.StartSafetyMargin = 10 * time.Second
	}
	if c.Bot.CursorStaleness == 0 {
		c.Bot.CursorStaleness = 42 * time.Minute
	}
	if c.Bot.PageSize == 0 {
		c.Bot.PageSize = 100
	}
	if c.Bot.AcknowledgeText == "" {
		c.Bot.AcknowledgeText = "🥚 Please wait, Your token is hatching..."
	}
	if c.RateLimits.UserWindow == 0 {
		c.RateLimits.UserWindow = 24 * time.Hour
	}
	if c.Twitter.BaseURL == "" {
		c.Twitter.BaseURL = "https://api.twitter.com"
	}
	if c.Twitter.Timeout == 0 {
		c.Twitter.Timeout = 30 * time.Second
	}
	if c.Twitter.ReplyInterval == 0 {
		c.Twitter.ReplyInterval = 5 * time.Second
	}
	if c.Twitter.Retry.MaxAttempts == 0 {
		c.Twitter.Retry.MaxAttempts = 3
	}
	if c.Twitter.Retry.InitialBackoff == 0 {
		c.Twitter.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Twitter.Retry.MaxBackoff == 0 {
		c.Twitter.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Generator.Model == "" {
		c.Generator.Model = "claude-sonnet-4-5"
	}
	if c.Generator.ImageAPIURL == "" {
		c.Generator.ImageAPIURL = "https://api.openai.com/v1/images/generations"
	}
	if c.Generator.ImageModel == "" {
		c.Generator.ImageModel = "dall-e-3"
	}
	if c.Generator.PinataAPIURL == "" {
		c.Generator.PinataAPIURL = "https://api.pinata.cloud"
	}
	if c.Generator.Timeout == 0 {
		c.Generator.Timeout = 2 * time.Minute
	}
	if c.Chain.MintFeeWei == "" {
		c.Chain.MintFeeWei = "0"
	}
	if c.Chain.MarketURLTemplate == "" {
		c.Chain.MarketURLTemplate = "https://www.sonic.market/hatch-hog/trade?inputCurrency=0x0000000000000000000000000000000000000000&outputCurrency=%s&chain=146"
	}
	if c.Chain.PriorMilestoneLength == 0 {
		c.Chain.PriorMilestoneLength = 5
	}
	if c.Chain.SubgraphTimeout == 0 {
		c.Chain.SubgraphTimeout = 2 * time.Second
	}
	if c.Shortener.APIURL == "" {
		c.Shortener.APIURL = "https://api.tinyurl.com/create"
	}
	if c.Shortener.Domain == "" {
		c.Shortener.Domain = "tiny.one"
	}
	if c.Slack.AppName == "" {
		c.Slack.AppName = "hatchhog-bot"
	}
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "mention_launcher"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "launches"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "token_launches"
		}
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
