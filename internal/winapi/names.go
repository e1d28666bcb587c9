package winapi

import "strings"

// monitorName picks the name shown for a display device: the EDID friendly
// name when the display configuration has one, then fallback, then the
// device name itself
func monitorName(device string, friendly map[string]string, fallback func(string) string) string {
	for gdi, name := range friendly {
		if strings.EqualFold(gdi, device) && name != "" {
			return name
		}
	}
	if fallback != nil {
		if name := fallback(device); name != "" {
			return name
		}
	}
	return device
}
