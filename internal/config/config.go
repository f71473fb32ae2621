package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/madmax304/news-aggregator-test/pkg/llm"
	"github.com/madmax304/news-aggregator-test/pkg/news"
	"github.com/madmax304/news-aggregator-test/pkg/tts"
)

const (
	FeedNewsAPI = "newsapi"
	FeedRSS     = "rss"
	FeedFinnhub = "finnhub"

	LLMOpenAI    = "openai"
	LLMAnthropic = "anthropic"

	AudioLocal = "local"
	AudioS3    = "s3"
)

// Config is read once at startup and handed to every constructor. API keys are not
// checked here; a missing key shows up as an authentication failure from the provider.
type Config struct {
	Port        string
	FrontendURL string
	StaticDir   string

	FeedProvider        string
	NewsAPIKey          string
	NewsAPIURL          string
	NewsSource          string
	RSSFeedURL          string
	FinnhubAPIKey       string
	PublicationDomain   string
	PublicationHomepage string

	LLMProvider      string
	OpenAIAPIKey     string
	OpenAIModel      string
	AnthropicAPIKey  string
	AnthropicModel   string
	SummaryMaxTokens int64
	QuizMaxTokens    int64

	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	ElevenLabsURL     string
	Voice             tts.VoiceSettings

	StageTimeout time.Duration
	Sequential   bool

	AudioStore string
	AudioDir   string
	S3Bucket   string
	S3Prefix   string
	AWSRegion  string
	S3URLTTL   time.Duration

	RedisURL         string
	HeadlineCacheTTL time.Duration

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

func Load() (*Config, error) {
	var errs []string
	p := parser{errs: &errs}

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		StaticDir:   os.Getenv("STATIC_DIR"),

		FeedProvider:        strings.ToLower(getEnvOrDefault("FEED_PROVIDER", FeedNewsAPI)),
		NewsAPIKey:          os.Getenv("NEWS_API_KEY"),
		NewsAPIURL:          getEnvOrDefault("NEWS_API_URL", news.DefaultNewsAPIURL),
		NewsSource:          getEnvOrDefault("NEWS_SOURCE", "bbc-news"),
		RSSFeedURL:          getEnvOrDefault("RSS_FEED_URL", "https://feeds.bbci.co.uk/news/rss.xml"),
		FinnhubAPIKey:       os.Getenv("FINNHUB_API_KEY"),
		PublicationDomain:   getEnvOrDefault("PUBLICATION_DOMAIN", "bbc.co.uk"),
		PublicationHomepage: getEnvOrDefault("PUBLICATION_HOMEPAGE", "https://www.bbc.co.uk/news"),

		LLMProvider:      strings.ToLower(getEnvOrDefault("LLM_PROVIDER", LLMOpenAI)),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnvOrDefault("OPENAI_MODEL", llm.DefaultOpenAIModel),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   getEnvOrDefault("ANTHROPIC_MODEL", llm.DefaultAnthropicModel),
		SummaryMaxTokens: int64(p.intVal("SUMMARY_MAX_TOKENS", 500)),
		QuizMaxTokens:    int64(p.intVal("QUIZ_MAX_TOKENS", 300)),

		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: os.Getenv("ELEVENLABS_VOICE_ID"),
		ElevenLabsURL:     getEnvOrDefault("ELEVENLABS_URL", tts.DefaultElevenLabsURL),
		Voice: tts.VoiceSettings{
			Stability:       p.floatVal("VOICE_STABILITY", 0.5),
			SimilarityBoost: p.floatVal("VOICE_SIMILARITY_BOOST", 0.5),
		},

		StageTimeout: p.durationVal("STAGE_TIMEOUT", 8*time.Second),
		Sequential:   p.boolVal("PIPELINE_SEQUENTIAL", false),

		AudioStore: strings.ToLower(getEnvOrDefault("AUDIO_STORE", AudioLocal)),
		AudioDir:   getEnvOrDefault("AUDIO_DIR", "public/audio"),
		S3Bucket:   os.Getenv("S3_BUCKET"),
		S3Prefix:   getEnvOrDefault("S3_PREFIX", "audio/"),
		AWSRegion:  os.Getenv("AWS_REGION"),
		S3URLTTL:   p.durationVal("S3_URL_TTL", time.Hour),

		RedisURL:         os.Getenv("REDIS_URL"),
		HeadlineCacheTTL: p.durationVal("HEADLINE_CACHE_TTL", time.Minute),

		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
		LogMaxSizeMB:  p.intVal("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: p.intVal("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: p.intVal("LOG_MAX_AGE_DAYS", 28),
	}

	switch cfg.FeedProvider {
	case FeedNewsAPI, FeedRSS, FeedFinnhub:
	default:
		errs = append(errs, fmt.Sprintf("unknown feed provider %q", cfg.FeedProvider))
	}

	switch cfg.LLMProvider {
	case LLMOpenAI, LLMAnthropic:
	default:
		errs = append(errs, fmt.Sprintf("unknown llm provider %q", cfg.LLMProvider))
	}

	switch cfg.AudioStore {
	case AudioLocal:
	case AudioS3:
		if cfg.S3Bucket == "" {
			errs = append(errs, "S3_BUCKET is required when AUDIO_STORE=s3")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown audio store %q", cfg.AudioStore))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// parser collects malformed values instead of failing on the first one.
type parser struct {
	errs *[]string
}

func (p parser) intVal(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		*p.errs = append(*p.errs, fmt.Sprintf("%s must be a positive integer", key))
		return def
	}
	return n
}

func (p parser) floatVal(key string, def float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f < 0 || f > 1 {
		*p.errs = append(*p.errs, fmt.Sprintf("%s must be a number between 0 and 1", key))
		return def
	}
	return f
}

func (p parser) durationVal(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		*p.errs = append(*p.errs, fmt.Sprintf("%s must be a positive duration", key))
		return def
	}
	return d
}

func (p parser) boolVal(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		*p.errs = append(*p.errs, fmt.Sprintf("%s must be a boolean", key))
		return def
	}
	return b
}
