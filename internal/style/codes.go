package style

// SectionSign prefixes every platform style marker.
const SectionSign = '§'

const sourcePrefix = '&'

// legacyCodes is the source alphabet accepted after '&'.
const legacyCodes = "0123456789abcdefklmnor"

// markerCodes is the alphabet recognised after SectionSign; 'x' opens an
// extended hex sequence.
const markerCodes = legacyCodes + "x"

// Legacy colour tokens.
const (
	Black       = "&0"
	DarkBlue    = "&1"
	DarkGreen   = "&2"
	DarkAqua    = "&3"
	DarkRed     = "&4"
	DarkPurple  = "&5"
	Gold        = "&6"
	Gray        = "&7"
	DarkGray    = "&8"
	Blue        = "&9"
	Green       = "&a"
	Aqua        = "&b"
	Red         = "&c"
	LightPurple = "&d"
	Yellow      = "&e"
	White       = "&f"
)

// Legacy format tokens.
const (
	Obfuscated    = "&k"
	Bold          = "&l"
	Strikethrough = "&m"
	Underline     = "&n"
	Italic        = "&o"
	Reset         = "&r"
)

// Named hex tokens.
const (
	HexBlack          = "&#000000"
	HexTulipNoir      = "&#392f31"
	HexMarieRouge     = "&#edacb1"
	HexRose           = "&#8d192b"
	HexMagenta        = "&#dc143c"
	HexCoral          = "&#f29886"
	HexMaroon         = "&#800000"
	HexRed            = "&#ff0000"
	HexOrange         = "&#ff7f00"
	HexApricot        = "&#fbceb1"
	HexBrown          = "&#964b00"
	HexMandarin       = "&#f89b00"
	HexOcher          = "&#c68a12"
	HexKhaki          = "&#8f784b"
	HexYellow         = "&#ffd400"
	HexGold           = "&#ffd700"
	HexForsythia      = "&#f7e600"
	HexLightIvory     = "&#eee6c4"
	HexIvory          = "&#ece6cc"
	HexOlive          = "&#808000"
	HexBeige          = "&#f5f5dc"
	HexGrass          = "&#6a8518"
	HexLime           = "&#bfff00"
	HexLightGreen     = "&#81c147"
	HexGreen          = "&#009900"
	HexGreenness      = "&#008000"
	HexEmerald        = "&#008d62"
	HexJade           = "&#83dcb7"
	HexDarkBlue       = "&#008080"
	HexMarine         = "&#0099a4"
	HexTurquoise      = "&#005666"
	HexSkyBlue        = "&#50bcdf"
	HexCyan           = "&#00a3d2"
	HexCyanBlue       = "&#3e91b5"
	HexCeruleanFlash  = "&#0096c6"
	HexLightBlue      = "&#4aa8d8"
	HexAquamarine     = "&#5e7e9b"
	HexSheffieldSteel = "&#437299"
	HexBlue           = "&#0067a3"
	HexPrussianBlue   = "&#003458"
	HexCobaltBlue     = "&#00498c"
	HexSeaBlue        = "&#0080ff"
	HexUltramarine    = "&#464964"
	HexWhite          = "&#ffffff"
	HexGray           = "&#808080"
	HexSilver         = "&#c0c0c0"
	HexLightPurple    = "&#8977ad"
	HexIndigo         = "&#000080"
	HexBluePurple     = "&#6937a1"
	HexPurple         = "&#8b00ff"
	HexAmethyst       = "&#660099"
	HexClaret         = "&#ff00ff"
	HexPink           = "&#ff3399"
)

// IsLegacyCode reports whether c is accepted after '&' in source text.
func IsLegacyCode(c byte) bool {
	return indexFold(legacyCodes, c) >= 0
}

// IsMarkerCode reports whether c is accepted after SectionSign.
func IsMarkerCode(c byte) bool {
	return indexFold(markerCodes, c) >= 0
}

// IsColorCode reports whether c selects a colour (0-9, a-f).
func IsColorCode(c byte) bool {
	return isHexDigit(c)
}

func indexFold(alphabet string, c byte) int {
	c = toLower(c)
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// legacyPalette holds the display colour of each legacy colour code, indexed
// by the code's hex value.
var legacyPalette = [16]RGB{
	{0x00, 0x00, 0x00}, {0x00, 0x00, 0xaa}, {0x00, 0xaa, 0x00}, {0x00, 0xaa, 0xaa},
	{0xaa, 0x00, 0x00}, {0xaa, 0x00, 0xaa}, {0xff, 0xaa, 0x00}, {0xaa, 0xaa, 0xaa},
	{0x55, 0x55, 0x55}, {0x55, 0x55, 0xff}, {0x55, 0xff, 0x55}, {0x55, 0xff, 0xff},
	{0xff, 0x55, 0x55}, {0xff, 0x55, 0xff}, {0xff, 0xff, 0x55}, {0xff, 0xff, 0xff},
}

// LegacyColor returns the display colour of a legacy colour code.
func LegacyColor(c byte) (RGB, bool) {
	i := indexFold(legacyCodes, c)
	if i < 0 || i >= len(legacyPalette) {
		return RGB{}, false
	}
	return legacyPalette[i], true
}
