package main

// X11 keysym values (X11/keysymdef.h). Only a small subset is
// declared: the keys named by the default binding table in config.go,
// the modifier keys handlers.go checks on KeyRelease, plus BackSpace
// and Escape. Letters and digits use their Latin-1 codepoints,
// matching upstream XK_* values.
const (
	keysymBackSpace = 0xff08
	keysymTab       = 0xff09
	keysymReturn    = 0xff0d
	keysymEscape    = 0xff1b

	keysymSpace  = 0x0020
	keysymComma  = 0x002c
	keysymPeriod = 0x002e

	keysym0 = 0x0030

	keysymC = 0x0063
	keysymD = 0x0064
	keysymF = 0x0066
	keysymH = 0x0068
	keysymI = 0x0069
	keysymJ = 0x006a
	keysymK = 0x006b
	keysymL = 0x006c
	keysymP = 0x0070
	keysymQ = 0x0071
	keysymT = 0x0074

	keysymShiftL   = 0xffe1
	keysymShiftR   = 0xffe2
	keysymControlL = 0xffe3
	keysymControlR = 0xffe4
	keysymAltL     = 0xffe9
	keysymAltR     = 0xffea
)
