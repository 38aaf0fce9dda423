package xkb

// Keysym values from X11/keysymdef.h and XF86keysym.h, limited to what the
// resolver's direct table needs. Printable ASCII symbols equal their
// codepoint.
const (
	SymNoSymbol Symbol = 0

	Sym0 Symbol = 0x0030
	Sym9 Symbol = 0x0039
	SymA Symbol = 0x0041
	SymZ Symbol = 0x005a
	Syma Symbol = 0x0061
	Symz Symbol = 0x007a

	SymSpace        Symbol = 0x0020
	SymApostrophe   Symbol = 0x0027
	SymComma        Symbol = 0x002c
	SymMinus        Symbol = 0x002d
	SymPeriod       Symbol = 0x002e
	SymSlash        Symbol = 0x002f
	SymSemicolon    Symbol = 0x003b
	SymEqual        Symbol = 0x003d
	SymBracketLeft  Symbol = 0x005b
	SymBackslash    Symbol = 0x005c
	SymBracketRight Symbol = 0x005d
	SymGrave        Symbol = 0x0060

	SymBackSpace  Symbol = 0xff08
	SymTab        Symbol = 0xff09
	SymReturn     Symbol = 0xff0d
	SymPause      Symbol = 0xff13
	SymScrollLock Symbol = 0xff14
	SymEscape     Symbol = 0xff1b
	SymHome       Symbol = 0xff50
	SymLeft       Symbol = 0xff51
	SymUp         Symbol = 0xff52
	SymRight      Symbol = 0xff53
	SymDown       Symbol = 0xff54
	SymPageUp     Symbol = 0xff55
	SymPageDown   Symbol = 0xff56
	SymEnd        Symbol = 0xff57
	SymPrint      Symbol = 0xff61
	SymInsert     Symbol = 0xff63
	SymMenu       Symbol = 0xff67
	SymNumLock    Symbol = 0xff7f
	SymDelete     Symbol = 0xffff

	SymKPEnter    Symbol = 0xff8d
	SymKPMultiply Symbol = 0xffaa
	SymKPAdd      Symbol = 0xffab
	SymKPSubtract Symbol = 0xffad
	SymKPDecimal  Symbol = 0xffae
	SymKPDivide   Symbol = 0xffaf
	SymKP0        Symbol = 0xffb0
	SymKP9        Symbol = 0xffb9

	SymF1  Symbol = 0xffbe
	SymF20 Symbol = 0xffd1

	SymShiftL   Symbol = 0xffe1
	SymShiftR   Symbol = 0xffe2
	SymControlL Symbol = 0xffe3
	SymControlR Symbol = 0xffe4
	SymCapsLock Symbol = 0xffe5
	SymAltL     Symbol = 0xffe9
	SymAltR     Symbol = 0xffea
	SymSuperL   Symbol = 0xffeb
	SymSuperR   Symbol = 0xffec

	SymAudioLowerVolume Symbol = 0x1008ff11
	SymAudioMute        Symbol = 0x1008ff12
	SymAudioRaiseVolume Symbol = 0x1008ff13
	SymAudioPlay        Symbol = 0x1008ff14
	SymAudioStop        Symbol = 0x1008ff15
	SymAudioPrev        Symbol = 0x1008ff16
	SymAudioNext        Symbol = 0x1008ff17
)
