package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/bnema/cursorlock/internal/display"
	"github.com/bnema/cursorlock/internal/logger"
)

// SelectMonitor lists monitors and asks for a 1-based number. An empty
// answer picks the primary monitor.
func SelectMonitor(disp *display.Display) (int, error) {
	monitors := disp.GetMonitors()
	if len(monitors) == 1 {
		logger.Infof("Auto-selected monitor: %s", monitors[0].Describe())
		return 1, nil
	}

	fmt.Println(FormatMonitorList(monitors))

	def := indexOf(monitors, disp.GetPrimaryMonitor())

	var input string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Please select a monitor by entering its number").
				Placeholder(strconv.Itoa(def)).
				Value(&input).
				Validate(func(s string) error {
					_, err := resolveSelection(s, def, len(monitors))
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("monitor selection cancelled: %w", err)
	}

	return resolveSelection(input, def, len(monitors))
}

// indexOf returns the 1-based position of m, or 1 when it is absent
func indexOf(monitors []*display.Monitor, m *display.Monitor) int {
	for i, candidate := range monitors {
		if candidate == m {
			return i + 1
		}
	}
	return 1
}

func resolveSelection(input string, def, count int) (int, error) {
	if strings.TrimSpace(input) == "" {
		return def, nil
	}
	return display.ParseSelection(input, count)
}

// ConfirmKeyCapture asks whether to pick a custom toggle key
func ConfirmKeyCapture(current string) (bool, error) {
	var custom bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Choose a custom toggle key?").
				Description("Current toggle key: " + current).
				Affirmative("Yes").
				Negative("No").
				Value(&custom),
		),
	)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("key capture prompt cancelled: %w", err)
	}
	return custom, nil
}
