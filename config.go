package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// ─────────────────────────────────────
// 설정
type Config struct {
	SlackBotToken      string `json:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `json:"SLACK_SIGNING_SECRET"`
	OpenAIAPIKey       string `json:"OPENAI_API_KEY"`
	OpenAIModel        string `json:"OPENAI_MODEL"`
	ArchiveChannelID   string `json:"ARCHIVE_CHANNEL_ID"` // 비어 있으면 아카이브 미러링 비활성화
	ReservedKeywords   string `json:"RESERVED_KEYWORDS"`  // 쉼표 구분, 번역 제외 키워드
}

const defaultOpenAIModel = "gpt-4o-mini"

// 번역하지 않고 강조 표기하는 기본 키워드 (브랜드명)
var defaultReservedKeywords = []string{"MOMO", "모모"}

// AWS Secrets Manager에서 설정 로드
func LoadConfigFromSecrets(ctx context.Context) (*Config, error) {
	secretName := os.Getenv("SECRET_NAME")
	if secretName == "" {
		// 로컬 개발용: 환경변수에서 직접 로드
		log.Println("[디버그] SECRET_NAME 없음, 환경변수에서 직접 로드")
		return &Config{
			SlackBotToken:      os.Getenv("SLACK_BOT_TOKEN"),
			SlackSigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
			OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:        os.Getenv("OPENAI_MODEL"),
			ArchiveChannelID:   os.Getenv("ARCHIVE_CHANNEL_ID"),
			ReservedKeywords:   os.Getenv("RESERVED_KEYWORDS"),
		}, nil
	}

	// AWS SDK 설정
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}

	// Secrets Manager 클라이언트
	client := secretsmanager.NewFromConfig(awsCfg)

	// 시크릿 가져오기
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretName,
	})
	if err != nil {
		return nil, fmt.Errorf("시크릿 로드 실패: %w", err)
	}

	// JSON 파싱
	var cfg Config
	if err := json.Unmarshal([]byte(*result.SecretString), &cfg); err != nil {
		return nil, fmt.Errorf("시크릿 파싱 실패: %w", err)
	}

	log.Printf("[디버그] Secrets Manager에서 설정 로드 완료 (secret=%s)", secretName)
	log.Printf("[디버그] SLACK_BOT_TOKEN: %d자", len(cfg.SlackBotToken))
	log.Printf("[디버그] SLACK_SIGNING_SECRET: %d자", len(cfg.SlackSigningSecret))
	log.Printf("[디버그] OPENAI_API_KEY: %d자", len(cfg.OpenAIAPIKey))
	if cfg.ArchiveChannelID == "" {
		log.Println("[디버그] ARCHIVE_CHANNEL_ID 없음, 아카이브 미러링 비활성화")
	}

	return &cfg, nil
}

// Model은 설정된 번역 모델 ID를 돌려준다.
func (cfg *Config) Model() string {
	if cfg.OpenAIModel == "" {
		return defaultOpenAIModel
	}
	return cfg.OpenAIModel
}

// ReservedKeywordList는 쉼표 구분 설정을 키워드 목록으로 바꾼다.
func (cfg *Config) ReservedKeywordList() []string {
	if strings.TrimSpace(cfg.ReservedKeywords) == "" {
		return defaultReservedKeywords
	}
	var keywords []string
	for _, keyword := range strings.Split(cfg.ReservedKeywords, ",") {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
