// Package cli holds terminal styling for the flowstate commands.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
)

const Logo = "📈"

var Version = "0.1.0"

var (
	Accent = lipgloss.Color("#00D4FF")
	Subtle = lipgloss.Color("#555555")
	Green  = lipgloss.Color("#04B575")
	Red    = lipgloss.Color("#FF4444")
	Amber  = lipgloss.Color("#FFB000")
	Violet = lipgloss.Color("#B48EFF")

	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	AuthorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AAAAAA"))
	TickerStyle = lipgloss.NewStyle().Bold(true).Foreground(Amber)
	VibeStyle   = lipgloss.NewStyle().Foreground(Violet)
	ErrStyle    = lipgloss.NewStyle().Foreground(Red)
	OkStyle     = lipgloss.NewStyle().Foreground(Green).Bold(true)
	DimStyle    = lipgloss.NewStyle().Foreground(Subtle)
	PulseBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(0, 1)
)

func StatusBadge(ok bool) string {
	if ok {
		return OkStyle.Render("✓")
	}
	return DimStyle.Render("✗")
}

// SentimentBadge renders a short colored sentiment marker
func SentimentBadge(s domain.Sentiment) string {
	switch s {
	case domain.SentimentBullish:
		return OkStyle.Render("▲")
	case domain.SentimentBearish:
		return ErrStyle.Render("▼")
	case domain.SentimentNeutral:
		return DimStyle.Render("•")
	default:
		return " "
	}
}

// FormatEvent renders one outbound event as console text
func FormatEvent(ev *domain.Event) string {
	switch ev.Type {
	case domain.EventMessage, domain.EventVibe:
		msg, ok := ev.Data.(*domain.ClassifiedMessage)
		if !ok {
			return ""
		}
		return FormatMessage(msg)
	case domain.EventPulse:
		p, ok := ev.Data.(*domain.PulseSummary)
		if !ok {
			return ""
		}
		return FormatPulse(p)
	case domain.EventError:
		return ErrStyle.Render("error: " + ev.Message)
	case domain.EventConnected, domain.EventSubscribed, domain.EventUnsubscribed:
		text := ev.Message
		if text == "" {
			text = string(ev.Type)
			if ev.VideoID != "" {
				text += " " + ev.VideoID
			}
		}
		return DimStyle.Render(text)
	default:
		return ""
	}
}

// FormatMessage renders a classified chat message on one line
func FormatMessage(msg *domain.ClassifiedMessage) string {
	var b strings.Builder
	b.WriteString(DimStyle.Render(msg.Timestamp.Local().Format(time.TimeOnly)))
	b.WriteString(" ")
	b.WriteString(SentimentBadge(msg.Sentiment))
	b.WriteString(" ")
	if msg.Topic != "" {
		b.WriteString(TickerStyle.Render("$" + msg.Topic))
		b.WriteString(" ")
	}
	b.WriteString(AuthorStyle.Render(msg.Author + ":"))
	b.WriteString(" ")
	b.WriteString(msg.Text)
	if msg.IsQuestion {
		b.WriteString(" ")
		b.WriteString(TitleStyle.Render("[?]"))
	}
	if msg.Vibe != domain.VibeNone {
		b.WriteString(" ")
		b.WriteString(VibeStyle.Render("[" + string(msg.Vibe) + "]"))
	}
	return b.String()
}

// FormatPulse renders a pulse summary as a bordered block
func FormatPulse(p *domain.PulseSummary) string {
	header := fmt.Sprintf("%s pulse · %d msgs", p.Mood.Glyph(), p.MessageCount)
	if p.TopTicker != "" {
		header += " · " + TickerStyle.Render("$"+p.TopTicker)
	}
	return PulseBox.Render(TitleStyle.Render(header) + "\n" + p.Summary)
}

// FormatVerdict renders the spam part of an offline classification
func FormatVerdict(v domain.SpamVerdict) string {
	if !v.IsSpam && len(v.Reasons) == 0 {
		return OkStyle.Render("clean")
	}
	reasons := make([]string, len(v.Reasons))
	for i, r := range v.Reasons {
		reasons[i] = r.String()
	}
	label := "suspicious"
	style := VibeStyle
	if v.IsSpam {
		label = "spam"
		style = ErrStyle
	}
	return style.Render(fmt.Sprintf("%s %.2f (%s)", label, v.Confidence, strings.Join(reasons, ", ")))
}
