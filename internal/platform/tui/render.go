package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beatfall/internal/core"
	"github.com/vovakirdan/beatfall/internal/game"
)

var (
	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pulseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)

	hudStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	playErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	playHelpText = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).
			Render("space: hit · tab/←→: aim · r: restart · esc: menu · q: quit")
)

type fieldCell struct {
	glyph rune
	style lipgloss.Style
}

// renderPlayfield projects the spawn disk onto the character grid and draws
// the HUD around it. Targets live on the XZ plane; Y is ignored.
func (m Model) renderPlayfield() string {
	fieldW := core.Max(m.width-4, 20)
	fieldH := core.Max(m.height-7, 8)

	root := m.gameCfg.Placement.SpawnRoot.Vec3()
	radius := m.gameCfg.Placement.SpawnRadius

	cells := make(map[int]fieldCell)
	objs := m.gen.Objectives()
	for i, o := range objs {
		nx := (o.Position.X - root.X) / radius
		nz := (o.Position.Z - root.Z) / radius
		col := core.Clamp(int((nx+1)/2*float64(fieldW-1)), 0, fieldW-1)
		row := core.Clamp(int((nz+1)/2*float64(fieldH-1)), 0, fieldH-1)

		c := fieldCell{glyph: '●', style: targetStyle}
		switch {
		case o.State() == game.StateHit:
			c = fieldCell{glyph: '◌', style: hitStyle}
		case m.ui.flash[o.ID] > 0:
			c = fieldCell{glyph: '◉', style: pulseStyle}
		}
		cells[row*fieldW+col] = c

		// Bracket the aimed target.
		if i == m.selected && o.State() == game.StateActive {
			if col > 0 {
				if _, taken := cells[row*fieldW+col-1]; !taken {
					cells[row*fieldW+col-1] = fieldCell{glyph: '[', style: cursorStyle}
				}
			}
			if col < fieldW-1 {
				if _, taken := cells[row*fieldW+col+1]; !taken {
					cells[row*fieldW+col+1] = fieldCell{glyph: ']', style: cursorStyle}
				}
			}
		}
	}

	var sb strings.Builder
	sb.Grow(fieldW*fieldH + fieldH)
	for y := range fieldH {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range fieldW {
			if c, ok := cells[y*fieldW+x]; ok {
				sb.WriteString(c.style.Render(string(c.glyph)))
			} else {
				sb.WriteByte(' ')
			}
		}
	}

	hud := hudStyle.Render(fmt.Sprintf("%s · level %d · score %d · targets left %d · beat %.2fs",
		m.session.PlayerName(), m.session.Level(), m.ui.score,
		m.session.ObjectivesRemaining(), m.clock.Interval()))

	lines := []string{hud, fieldStyle.Render(sb.String())}
	if m.ui.lastErr != "" {
		lines = append(lines, playErrStyle.Render(m.ui.lastErr))
	}
	lines = append(lines, playHelpText)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
