package main

import (
	"fmt"

	"github.com/slack-go/slack"
)

// ─────────────────────────────────────
// App 구조체
type App struct {
	cfg       *Config
	slack     *slack.Client
	translate translateFunc

	// 로컬 서버 모드에서는 이벤트를 개별 고루틴에서 처리한다.
	// (Lambda 모드에서는 핸들러 반환 전에 처리를 끝내야 하므로 동기 처리)
	asyncEvents bool
}

func NewApp(cfg *Config) (*App, error) {
	if cfg.SlackBotToken == "" || cfg.SlackSigningSecret == "" {
		return nil, fmt.Errorf("Slack 설정 누락")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("번역 API 키 누락")
	}
	return &App{
		cfg:       cfg,
		slack:     slack.New(cfg.SlackBotToken),
		translate: newOpenAITranslator(cfg.OpenAIAPIKey, cfg.Model()),
	}, nil
}
