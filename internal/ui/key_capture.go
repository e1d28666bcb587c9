package ui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/hotkey"
)

// errIgnoredKey marks keys that cannot serve as a toggle
var errIgnoredKey = errors.New("key cannot be used as a toggle")

var functionKeys = []tea.KeyType{
	tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5,
	tea.KeyF6, tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10,
	tea.KeyF11, tea.KeyF12, tea.KeyF13, tea.KeyF14, tea.KeyF15,
	tea.KeyF16, tea.KeyF17, tea.KeyF18, tea.KeyF19, tea.KeyF20,
}

// VirtualKey maps a terminal key press to the virtual key the OS hotkey uses
func VirtualKey(msg tea.KeyMsg) (uint32, error) {
	for i, fk := range functionKeys {
		if msg.Type != fk {
			continue
		}
		vk := hotkey.VKF1 + uint32(i)
		if vk == hotkey.VKF12 {
			return 0, fmt.Errorf("F12: %w", errs.ErrReservedKey)
		}
		return vk, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		return hotkey.VKSpace, nil
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return 0, errIgnoredKey
		}
		r := unicode.ToUpper(msg.Runes[0])
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return uint32(r), nil
		}
	}
	return 0, errIgnoredKey
}

type keyCaptureKeys struct {
	Skip key.Binding
	Quit key.Binding
}

var captureKeys = keyCaptureKeys{
	Skip: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "keep default"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
}

// KeyCaptureModel waits for a single key press to use as the toggle key
type KeyCaptureModel struct {
	fallback uint32
	vk       uint32
	captured bool
	aborted  bool
	warning  string
}

// NewKeyCaptureModel creates a capture prompt that falls back to fallback
func NewKeyCaptureModel(fallback uint32) *KeyCaptureModel {
	return &KeyCaptureModel{fallback: fallback}
}

func (m *KeyCaptureModel) Init() tea.Cmd {
	return nil
}

func (m *KeyCaptureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, captureKeys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, captureKeys.Skip):
		return m, tea.Quit
	}

	vk, err := VirtualKey(keyMsg)
	if err != nil {
		if errors.Is(err, errs.ErrReservedKey) {
			m.warning = "F12 is reserved by the system, choose another key"
		} else {
			m.warning = fmt.Sprintf("%s cannot be used, choose another key", keyMsg.String())
		}
		return m, nil
	}

	m.vk = vk
	m.captured = true
	return m, tea.Quit
}

func (m *KeyCaptureModel) View() string {
	if m.captured {
		return SuccessStyle.Render(IconSuccess+" Toggle key: "+hotkey.KeyName(m.vk)) + "\n"
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Press the key to toggle the cursor lock"))
	b.WriteString("\n")
	b.WriteString(FormatControl(captureKeys.Skip.Help().Key, fmt.Sprintf("%s (%s)", captureKeys.Skip.Help().Desc, hotkey.KeyName(m.fallback))))
	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString(WarningStyle.Render(IconWarning + " " + m.warning))
		b.WriteString("\n")
	}
	return b.String()
}

// Result returns the chosen key, whether a key was captured, and whether the
// user aborted
func (m *KeyCaptureModel) Result() (vk uint32, captured bool, aborted bool) {
	if !m.captured {
		return m.fallback, false, m.aborted
	}
	return m.vk, true, m.aborted
}

// CaptureKey runs the capture prompt on the terminal
func CaptureKey(fallback uint32) (uint32, error) {
	final, err := tea.NewProgram(NewKeyCaptureModel(fallback)).Run()
	if err != nil {
		return fallback, fmt.Errorf("key capture: %w", err)
	}

	vk, _, aborted := final.(*KeyCaptureModel).Result()
	if aborted {
		return fallback, errors.New("key capture aborted")
	}
	return vk, nil
}
