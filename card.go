package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// ─────────────────────────────────────
// 카드 상태
//
// 네 상태는 서로 자유롭게 전이할 수 있고 종료 상태가 없다.
type cardStatus int

const (
	statusPending cardStatus = iota
	statusInProgress
	statusCompleted
	statusNeedsRevision
)

// 버튼 Action ID
const (
	actionStatusPending       = "status_pending"
	actionStatusInProgress    = "status_in_progress"
	actionStatusCompleted     = "status_completed"
	actionStatusNeedsRevision = "status_needs_revision"
)

var statusByActionID = map[string]cardStatus{
	actionStatusPending:       statusPending,
	actionStatusInProgress:    statusInProgress,
	actionStatusCompleted:     statusCompleted,
	actionStatusNeedsRevision: statusNeedsRevision,
}

func statusFromActionID(actionID string) (cardStatus, bool) {
	status, ok := statusByActionID[actionID]
	return status, ok
}

// Label은 상태 표시줄에 쓰는 표준 표기다.
func (s cardStatus) Label() string {
	switch s {
	case statusPending:
		return "⏳ 접수 대기"
	case statusInProgress:
		return "🔧 진행 중"
	case statusCompleted:
		return "✅ 완료"
	case statusNeedsRevision:
		return "✏️ 수정 요청"
	default:
		return "⏳ 접수 대기"
	}
}

// ButtonText는 상태 버튼의 표시 텍스트다.
func (s cardStatus) ButtonText() string {
	switch s {
	case statusPending:
		return "접수 대기"
	case statusInProgress:
		return "진행 중"
	case statusCompleted:
		return "완료"
	case statusNeedsRevision:
		return "수정 요청"
	default:
		return "접수 대기"
	}
}

// ─────────────────────────────────────
// 블록 ID
//
// 상태 표시 블록은 상태 변경 시 payload의 블록 목록에서 이 ID로 찾는다.
const (
	statusBlockID  = "design_request_status"
	actionsBlockID = "design_request_actions"
)

const (
	emptyRequestsNote = "_요청사항 없음_"
	kstOffsetSeconds  = 9 * 60 * 60
)

var kst = time.FixedZone("KST", kstOffsetSeconds)

// slackTSToTime은 Slack 타임스탬프("1700000000.123456")를 시각으로 바꾼다.
func slackTSToTime(ts string) time.Time {
	seconds, err := strconv.ParseInt(strings.SplitN(ts, ".", 2)[0], 10, 64)
	if err != nil {
		return time.Now()
	}
	return time.Unix(seconds, 0)
}

// ─────────────────────────────────────
// 카드 렌더링 입력
type cardInput struct {
	Header      headerTag
	Team        string
	DesignLines []string
	ImageLines  []string
	ImageURLs   []string
	RequestedAt time.Time
	AuthorID    string
	Reserved    []string
}

// buildCardBlocks는 파싱/번역이 끝난 양식을 카드 블록으로 조립한다.
// 블록 순서는 고정이다: 헤더 태그(선택) → 헤더 → 필드 → 구분선 →
// 디자인 요청 → 구분선 → 이미지 요청 → 이미지 → 상태 버튼 → 상태 표시줄.
func buildCardBlocks(in cardInput) []slack.Block {
	var blocks []slack.Block

	if tag := in.Header.DisplayTag(); tag != "" {
		blocks = append(blocks, slack.NewContextBlock(
			"",
			slack.NewTextBlockObject("mrkdwn", tag, false, false),
		))
	}

	team := in.Team
	if team == "" {
		team = "(팀명 미기재)"
	}

	blocks = append(blocks,
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text", fmt.Sprintf("🎨 디자인 신청 — %s", team), false, false),
		),
		slack.NewSectionBlock(
			nil,
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*팀명*\n%s", team), false, false),
				slack.NewTextBlockObject("mrkdwn",
					fmt.Sprintf("*신청 시각*\n%s", in.RequestedAt.In(kst).Format("2006-01-02 15:04")), false, false),
			},
			nil,
		),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*디자인 요청사항*\n%s", bulletList(in.DesignLines, in.Reserved)), false, false),
			nil, nil,
		),
		slack.NewDividerBlock(),
		slack.NewSectionBlock(
			slack.NewTextBlockObject("mrkdwn",
				fmt.Sprintf("*이미지 요청사항*\n%s", bulletList(in.ImageLines, in.Reserved)), false, false),
			nil, nil,
		),
	)

	// 첨부 이미지는 URL을 그대로 싣는다
	for i, url := range in.ImageURLs {
		blocks = append(blocks, slack.NewImageBlock(
			url,
			fmt.Sprintf("첨부 이미지 %d", i+1),
			"",
			nil,
		))
	}

	blocks = append(blocks,
		buildStatusActions(),
		buildStatusContext(statusPending, in.AuthorID),
	)
	return blocks
}

// bulletList는 줄 목록을 불릿 목록으로 바꾼다.
// 예약 키워드가 들어간 줄은 번역 대신 강조 표기로 감싼다.
func bulletList(lines []string, reserved []string) string {
	var bullets []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if containsReservedKeyword(line, reserved) {
			bullets = append(bullets, fmt.Sprintf("• *%s*", line))
			continue
		}
		bullets = append(bullets, fmt.Sprintf("• %s", line))
	}
	if len(bullets) == 0 {
		return emptyRequestsNote
	}
	return strings.Join(bullets, "\n")
}

// buildStatusActions는 네 개의 상태 버튼 줄을 만든다.
func buildStatusActions() *slack.ActionBlock {
	return slack.NewActionBlock(
		actionsBlockID,
		statusButton(actionStatusPending, statusPending),
		statusButton(actionStatusInProgress, statusInProgress),
		statusButton(actionStatusCompleted, statusCompleted),
		statusButton(actionStatusNeedsRevision, statusNeedsRevision),
	)
}

func statusButton(actionID string, status cardStatus) *slack.ButtonBlockElement {
	return slack.NewButtonBlockElement(
		actionID,
		actionID,
		slack.NewTextBlockObject("plain_text", status.ButtonText(), false, false),
	)
}

// buildStatusContext는 상태/담당자 표시줄을 만든다.
func buildStatusContext(status cardStatus, userID string) *slack.ContextBlock {
	return slack.NewContextBlock(
		statusBlockID,
		slack.NewTextBlockObject("mrkdwn",
			fmt.Sprintf("📌 상태: %s · 담당: <@%s>", status.Label(), userID), false, false),
	)
}

// cardFallbackText는 블록을 표시하지 못하는 클라이언트용 대체 텍스트다.
func cardFallbackText(team string) string {
	if team == "" {
		return "디자인 신청이 접수되었습니다"
	}
	return fmt.Sprintf("디자인 신청이 접수되었습니다 (팀: %s)", team)
}
