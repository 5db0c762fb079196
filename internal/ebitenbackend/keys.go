package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"frameui/internal/ui"
)

// keyMap translates engine keys to ebiten keys. Letters and digits are
// filled in by init.
var keyMap = map[ui.Key]ebiten.Key{
	ui.KeySpace:        ebiten.KeySpace,
	ui.KeyApostrophe:   ebiten.KeyQuote,
	ui.KeyComma:        ebiten.KeyComma,
	ui.KeyMinus:        ebiten.KeyMinus,
	ui.KeyPeriod:       ebiten.KeyPeriod,
	ui.KeySlash:        ebiten.KeySlash,
	ui.KeySemicolon:    ebiten.KeySemicolon,
	ui.KeyEqual:        ebiten.KeyEqual,
	ui.KeyLeftBracket:  ebiten.KeyBracketLeft,
	ui.KeyBackslash:    ebiten.KeyBackslash,
	ui.KeyRightBracket: ebiten.KeyBracketRight,
	ui.KeyGrave:        ebiten.KeyBackquote,
	ui.KeyEnter:        ebiten.KeyEnter,
	ui.KeyBackspace:    ebiten.KeyBackspace,
	ui.KeyKpDecimal:    ebiten.KeyNumpadDecimal,
	ui.KeyKpDivide:     ebiten.KeyNumpadDivide,
	ui.KeyKpMultiply:   ebiten.KeyNumpadMultiply,
	ui.KeyKpSubtract:   ebiten.KeyNumpadSubtract,
	ui.KeyKpAdd:        ebiten.KeyNumpadAdd,
	ui.KeyKpEnter:      ebiten.KeyNumpadEnter,
	ui.KeyLeftShift:    ebiten.KeyShiftLeft,
	ui.KeyRightShift:   ebiten.KeyShiftRight,
}

func init() {
	for i := 0; i < 26; i++ {
		keyMap[ui.KeyA+ui.Key(i)] = ebiten.KeyA + ebiten.Key(i)
	}
	for i := 0; i < 10; i++ {
		keyMap[ui.Key0+ui.Key(i)] = ebiten.KeyDigit0 + ebiten.Key(i)
		keyMap[ui.KeyKp0+ui.Key(i)] = ebiten.KeyNumpad0 + ebiten.Key(i)
	}
}
