package cli

import (
	"fmt"
	"strings"

	"github.com/ARKNravi/Gelatik/internal/client/api"
	"github.com/ARKNravi/Gelatik/internal/client/result"
	"github.com/ARKNravi/Gelatik/internal/client/screens"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorPeach    lipgloss.Color = "#fab387"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	styleLabel   = lipgloss.NewStyle().Foreground(colorSubtext0)
	styleValue   = lipgloss.NewStyle().Foreground(colorText)
	styleMuted   = lipgloss.NewStyle().Foreground(colorOverlay1)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleAccent  = lipgloss.NewStyle().Foreground(colorPeach)
	styleLink    = lipgloss.NewStyle().Foreground(colorBlue)
)

// renderResult renders every variant of r; ok formats the payload.
func renderResult[T any](r result.Result[T], ok func(T) string) string {
	return result.Match(r,
		func() string { return styleMuted.Render("Loading...") },
		ok,
		func(msg string) string { return styleError.Render("Error: " + msg) },
	)
}

func renderDone(success string) func(screens.Done) string {
	return func(screens.Done) string { return styleSuccess.Render(success) }
}

func field(label, value string) string {
	if value == "" {
		value = styleMuted.Render("-")
	} else {
		value = styleValue.Render(value)
	}
	return styleLabel.Render(fmt.Sprintf("%-14s", label)) + value
}

func renderProfile(p *api.UserProfile) string {
	lines := []string{
		styleTitle.Render(p.FullName),
		field("Email", p.Email),
		field("Birth date", p.BirthDate),
		field("Identity", p.IdentityType),
		field("Institution", p.Institution),
		field("Picture", p.ProfilePictureURL),
		field("Points", fmt.Sprint(p.Points)),
	}
	return strings.Join(lines, "\n")
}

func renderGreeting(p *api.UserProfile) string {
	name := p.FullName
	if name == "" {
		name = p.Email
	}
	return styleTitle.Render("Halo, "+name+"!") + "\n" +
		field("Points", styleAccent.Render(fmt.Sprint(p.Points)))
}

func renderTranslators(ts []api.Translator) string {
	if len(ts) == 0 {
		return styleMuted.Render("No translators found")
	}
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte('\n')
		}
		status := styleMuted.Render("unavailable")
		if t.Availability {
			status = styleSuccess.Render("available")
		}
		fmt.Fprintf(&b, "%s %s  %s  %s",
			styleMuted.Render(fmt.Sprintf("#%d", t.ID)),
			styleValue.Render(t.Name),
			styleLabel.Render(t.Address),
			status)
	}
	return b.String()
}

func renderOrders(orders []api.TranslationOrder) string {
	if len(orders) == 0 {
		return styleMuted.Render("No bookings yet")
	}
	var b strings.Builder
	for i, o := range orders {
		if i > 0 {
			b.WriteByte('\n')
		}
		name := "-"
		if o.Translator != nil {
			name = o.Translator.Name
		}
		fmt.Fprintf(&b, "%s %s  %s %s  %s",
			styleMuted.Render(fmt.Sprintf("#%d", o.ID)),
			styleValue.Render(name),
			styleLabel.Render(o.Date),
			styleLabel.Render(o.TimeSlot),
			styleAccent.Render(o.Status))
	}
	return b.String()
}

func renderPosts(ps []api.ForumPost) string {
	if len(ps) == 0 {
		return styleMuted.Render("No posts found")
	}
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styleTitle.Render(p.Title))
		if p.Topic != "" {
			b.WriteString(" " + styleLink.Render("["+p.Topic+"]"))
		}
		if p.Subtitle != "" {
			b.WriteString("\n" + styleLabel.Render(p.Subtitle))
		}
	}
	return b.String()
}
