package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/cursorlock/internal/display"
)

// DisplayInfo represents the display information output
type DisplayInfo struct {
	Monitors []MonitorInfo `json:"monitors"`
	Error    string        `json:"error,omitempty"`
}

// MonitorInfo represents information about a single monitor
type MonitorInfo struct {
	Index   int    `json:"index"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	X       int32  `json:"x"`
	Y       int32  `json:"y"`
	Width   int32  `json:"width"`
	Height  int32  `json:"height"`
	Primary bool   `json:"primary"`
}

var (
	jsonOutput bool
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "Show monitor configuration",
	Long: `Display the connected monitors in the order used for selection.
The number in front of each monitor is what CURSORLOCK_MONITOR_INDEX expects.`,
	RunE: runMonitors,
}

func init() {
	monitorsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func runMonitors(cmd *cobra.Command, args []string) error {
	disp, err := display.New()
	if err != nil {
		if jsonOutput {
			info := DisplayInfo{Error: err.Error()}
			return json.NewEncoder(os.Stdout).Encode(info)
		}
		return fmt.Errorf("failed to initialize display detection: %w", err)
	}
	defer disp.Close()

	monitors := disp.GetMonitors()
	if jsonOutput {
		return writeMonitorsJSON(cmd.OutOrStdout(), monitors)
	}
	writeMonitors(cmd.OutOrStdout(), monitors)
	return nil
}

func writeMonitorsJSON(w io.Writer, monitors []*display.Monitor) error {
	info := DisplayInfo{
		Monitors: make([]MonitorInfo, len(monitors)),
	}
	for i, mon := range monitors {
		info.Monitors[i] = MonitorInfo{
			Index:   i + 1,
			ID:      mon.ID,
			Name:    mon.Name,
			X:       mon.X,
			Y:       mon.Y,
			Width:   mon.Width,
			Height:  mon.Height,
			Primary: mon.Primary,
		}
	}
	return json.NewEncoder(w).Encode(info)
}

func writeMonitors(w io.Writer, monitors []*display.Monitor) {
	fmt.Fprintf(w, "Detected %d monitor(s):\n\n", len(monitors))

	for i, mon := range monitors {
		fmt.Fprintf(w, "Monitor %d:\n", i+1)
		fmt.Fprintf(w, "  Name:       %s\n", mon.Name)
		if mon.ID != "" && mon.ID != mon.Name {
			fmt.Fprintf(w, "  ID:         %s\n", mon.ID)
		}
		fmt.Fprintf(w, "  Resolution: %dx%d\n", mon.Width, mon.Height)
		fmt.Fprintf(w, "  Position:   (%d, %d)\n", mon.X, mon.Y)
		if mon.Primary {
			fmt.Fprintf(w, "  Primary:    Yes\n")
		}
		fmt.Fprintln(w)
	}

	if len(monitors) > 1 {
		width, height := virtualSize(monitors)
		fmt.Fprintf(w, "Total virtual screen: %dx%d\n", width, height)
	}
}

// virtualSize returns the bounding box of all monitors
func virtualSize(monitors []*display.Monitor) (int32, int32) {
	minX, minY, maxX, maxY := monitors[0].Bounds()
	for _, mon := range monitors[1:] {
		x1, y1, x2, y2 := mon.Bounds()
		minX, minY = min(minX, x1), min(minY, y1)
		maxX, maxY = max(maxX, x2), max(maxY, y2)
	}
	return maxX - minX, maxY - minY
}
