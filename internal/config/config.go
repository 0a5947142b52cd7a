package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Firestore FirestoreConfig
	Research  ResearchConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
}

type OpenAIConfig struct {
	Provider       string `envconfig:"OPENAI_PROVIDER" default:"openai"`
	APIKey         string `envconfig:"OPENAI_API_KEY" required:"true"`
	APIEndpoint    string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model          string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	DeploymentName string `envconfig:"OPENAI_DEPLOYMENT" default:"gpt-4o"`
	APIVersion     string `envconfig:"OPENAI_API_VERSION" default:"2023-05-15"`
}

// FirestoreConfig controls the best-effort persistence backend. Persistence
// is disabled when Project is empty.
type FirestoreConfig struct {
	Project         string `envconfig:"GOOGLE_CLOUD_PROJECT"`
	Collection      string `envconfig:"FIRESTORE_COLLECTION" default:"research_entries"`
	CredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`
}

type ResearchConfig struct {
	// MaxConcurrentAgents bounds how many agents run at once per process.
	MaxConcurrentAgents int `envconfig:"MAX_CONCURRENT_AGENTS" default:"3"`

	// Timeout is the per-agent research deadline.
	Timeout time.Duration `envconfig:"RESEARCH_TIMEOUT" default:"60s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
