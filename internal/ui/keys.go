package ui

import (
	"fmt"
	"slices"
	"strings"
)

// Key is a keyboard key. Values follow the GLFW key codes, which raylib
// uses as well.
type Key int32

const (
	KeyNone         Key = 0
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGrave        Key = 96
	KeyEnter        Key = 257
	KeyBackspace    Key = 259
	KeyKp0          Key = 320
	KeyKp1          Key = 321
	KeyKp2          Key = 322
	KeyKp3          Key = 323
	KeyKp4          Key = 324
	KeyKp5          Key = 325
	KeyKp6          Key = 326
	KeyKp7          Key = 327
	KeyKp8          Key = 328
	KeyKp9          Key = 329
	KeyKpDecimal    Key = 330
	KeyKpDivide     Key = 331
	KeyKpMultiply   Key = 332
	KeyKpSubtract   Key = 333
	KeyKpAdd        Key = 334
	KeyKpEnter      Key = 335
	KeyLeftShift    Key = 340
	KeyRightShift   Key = 344
)

// keyInfo holds the display name and the characters a key types without
// and with shift. Keys that type nothing have empty characters.
type keyInfo struct {
	name         string
	plain, shift string
}

var keyTable = map[Key]keyInfo{
	KeySpace:        {"space", " ", " "},
	KeyApostrophe:   {"apostrophe", "'", "\""},
	KeyComma:        {"comma", ",", "<"},
	KeyMinus:        {"minus", "-", "_"},
	KeyPeriod:       {"period", ".", ">"},
	KeySlash:        {"slash", "/", "?"},
	Key0:            {"0", "0", ")"},
	Key1:            {"1", "1", "!"},
	Key2:            {"2", "2", "@"},
	Key3:            {"3", "3", "#"},
	Key4:            {"4", "4", "$"},
	Key5:            {"5", "5", "%"},
	Key6:            {"6", "6", "^"},
	Key7:            {"7", "7", "&"},
	Key8:            {"8", "8", "*"},
	Key9:            {"9", "9", "("},
	KeySemicolon:    {"semicolon", ";", ":"},
	KeyEqual:        {"equal", "=", "+"},
	KeyLeftBracket:  {"left_bracket", "[", "{"},
	KeyBackslash:    {"backslash", "\\", "|"},
	KeyRightBracket: {"right_bracket", "]", "}"},
	KeyGrave:        {"grave", "`", "~"},
	KeyKp0:          {"kp_0", "0", "0"},
	KeyKp1:          {"kp_1", "1", "1"},
	KeyKp2:          {"kp_2", "2", "2"},
	KeyKp3:          {"kp_3", "3", "3"},
	KeyKp4:          {"kp_4", "4", "4"},
	KeyKp5:          {"kp_5", "5", "5"},
	KeyKp6:          {"kp_6", "6", "6"},
	KeyKp7:          {"kp_7", "7", "7"},
	KeyKp8:          {"kp_8", "8", "8"},
	KeyKp9:          {"kp_9", "9", "9"},
	KeyKpDecimal:    {"kp_decimal", ".", "."},
	KeyKpDivide:     {"kp_divide", "/", "/"},
	KeyKpMultiply:   {"kp_multiply", "*", "*"},
	KeyKpSubtract:   {"kp_subtract", "-", "-"},
	KeyKpAdd:        {"kp_add", "+", "+"},
	KeyEnter:        {"enter", "", ""},
	KeyKpEnter:      {"kp_enter", "", ""},
	KeyBackspace:    {"backspace", "", ""},
	KeyLeftShift:    {"left_shift", "", ""},
	KeyRightShift:   {"right_shift", "", ""},
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		lower := string(rune('a' + (k - KeyA)))
		keyTable[k] = keyInfo{name: lower, plain: lower, shift: strings.ToUpper(lower)}
	}
}

// Keys lists every key the engine understands, in key code order. Backends
// poll these each frame.
func Keys() []Key {
	out := make([]Key, 0, len(keyTable))
	for k := range keyTable {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// KeyChar returns the text k types, honoring shift. ok is false for keys
// that type nothing.
func KeyChar(k Key, shift bool) (s string, ok bool) {
	info, found := keyTable[k]
	if !found || info.plain == "" {
		return "", false
	}
	if shift {
		return info.shift, true
	}
	return info.plain, true
}

func (k Key) String() string {
	if info, ok := keyTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// ParseKey looks a key up by the name String returns.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, info := range keyTable {
		if info.name == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}
