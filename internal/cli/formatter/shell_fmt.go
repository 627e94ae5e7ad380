package formatter

import (
	"strings"

	"github.com/alexanderramin/dotori/internal/season"
)

// FormatShellWelcome renders the greeting box with the current seasonal
// briefing.
func FormatShellWelcome(b season.Briefing) string {
	var s strings.Builder
	s.WriteString(StyleAcorn.Render(b.Eyebrow))
	s.WriteString("\n")
	s.WriteString(Bold(b.Title))
	s.WriteString("\n")
	s.WriteString(b.Description)
	s.WriteString("\n\n")
	s.WriteString(Dim("메시지를 입력하거나 /help 로 명령을 확인하세요. /exit 로 종료해요."))
	return RenderBox("도토리", s.String()) + "\n"
}

// FormatShellHelp lists the shell's slash commands.
func FormatShellHelp() string {
	return KeyValue([][2]string{
		{"/help", "이 도움말"},
		{"/context", "지금까지 대화에서 기억한 내용"},
		{"/clear", "대화 기록 지우기"},
		{"/exit", "종료"},
		{"/<명령>", "CLI 명령 실행 (예: /age 2023-01-15)"},
	})
}

// FormatQuickReplies renders suggestion chips on one line.
func FormatQuickReplies(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	chips := make([]string, len(labels))
	for i, l := range labels {
		chips[i] = StyleBlue.Render("[" + l + "]")
	}
	return strings.Join(chips, " ")
}
