package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent of the person driving the host.
type Action int

const (
	ActionNone Action = iota

	ActionRegenerate
	ActionDumpMap
	ActionScreenshot
	ActionQuit
	ActionZoomIn
	ActionZoomOut
)

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "g", "enter", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"g":          ActionRegenerate,
	"r":          ActionRegenerate,
	"space":      ActionRegenerate,
	"enter":      ActionRegenerate,
	"generate":   ActionRegenerate,
	"mouse_left": ActionRegenerate,

	"d":    ActionDumpMap,
	"dump": ActionDumpMap,

	"p":          ActionScreenshot,
	"screenshot": ActionScreenshot,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
}

// MapToIntent applies the bindings to a raw input. Codes are case-insensitive.
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[strings.ToLower(ev.Code)]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionDumpMap:
		return "Dump Map"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
