package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/cyberscape/internal/shell"
)

const (
	corruptionGlyphs = "!@#$%^&*()_+[];',./<>?:{}|`~¡¢£¤¥¦§¨©ª«¬®¯°±²³´µ¶·¸¹º»¼½¾¿ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖ×ØÙÚÛÜÝÞß"

	glitchInterval  = 175 * time.Millisecond
	glitchFrames    = 6
	glitchIntensity = 0.2
)

var glyphs = []rune(corruptionGlyphs)

// glitchTickMsg advances every animated line by one frame.
type glitchTickMsg struct{}

func glitchTick() tea.Cmd {
	return tea.Tick(glitchInterval, func(time.Time) tea.Msg { return glitchTickMsg{} })
}

// corrupt replaces roughly intensity of the non-space characters of text
// with corruption glyphs.
func corrupt(text string, intensity float64, r shell.Roller) string {
	runes := []rune(text)
	for i, c := range runes {
		if c == ' ' {
			continue
		}
		if r.Float64() < intensity {
			runes[i] = glyphs[r.IntN(len(glyphs))]
		}
	}
	return string(runes)
}
