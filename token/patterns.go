// Package token is the named regex catalogue for every element the
// decoder recognizes, one pattern per kind, grounded on
// original_source/usMetarDecoder.py's _TokList and generalizing
// WxCraft's definitions.go regex table to the fuller remarks vocabulary.
//
// Go's RE2 engine has no lookahead or backreferences, unlike the Python
// grammar this catalogue was distilled from; every pattern here is
// written to match without either, and any disambiguation that would
// have used a lookahead in the original is instead handled procedurally
// by the caller (trying patterns in a fixed order against the current
// word or word-run, never re-trying a shorter match after a longer one
// already claimed it).
package token

import "regexp"

// Single-word mandatory-body patterns.
var (
	Type    = regexp.MustCompile(`^(METAR|SPECI)$`)
	Ident   = regexp.MustCompile(`^([A-Z][A-Z0-9]{3})$`)
	ITime   = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	AutoCor = regexp.MustCompile(`^(AUTO|COR|CCA)$`)
	Nil     = regexp.MustCompile(`^NIL$`)

	Wind = regexp.MustCompile(`^(VRB|\d{3})(\d{2,3})(G(\d{2,3}))?(KT|MPS)$`)
	WindVrb = regexp.MustCompile(`^(\d{3})V(\d{3})$`)

	VsbyWhole  = regexp.MustCompile(`^(M|P)?(\d{1,2})(?:/(\d{1,2}))?SM$`)
	VsbyMeters = regexp.MustCompile(`^(\d{4})$`)

	RVR = regexp.MustCompile(`^R(\d{2}[LRC]?)/([MP])?(\d{4})(V([MP])?(\d{4}))?(FT)?([UDN])?/?$`)

	Funnel = regexp.MustCompile(`^([+-]?)(FC)$`)
	Pcp    = regexp.MustCompile(`^([+-]|VC)?(SH|TS|FZ|MI|BC|PR|BL|DR)*(DZ|RA|SN|SG|IC|PL|GR|GS|UP)+$`)
	Obv    = regexp.MustCompile(`^(MI|BC|PR|BL|DR|FZ)?(BR|FG|FU|VA|DU|SA|HZ|PY)$`)
	Vcnty  = regexp.MustCompile(`^VC(SH|TS|FG|PO|BLSN|FC|SS|DS)$`)

	SkyLayer = regexp.MustCompile(`^(VV|SKC|CLR|FEW|SCT|BKN|OVC|0VC|///)(\d{3}|///)?(CB|TCU|///)?$`)

	Temp = regexp.MustCompile(`^(M?\d{2})/(M?\d{2})?$`)
	Alt  = regexp.MustCompile(`^([AQ])(\d{4})$`)

	CAVOK = regexp.MustCompile(`^CAVOK$`)
)

// Remarks patterns (single word unless noted).
var (
	OsType = regexp.MustCompile(`^(AO1|AO2)$`)

	// pkwnd spans three words: "PK WND ddfff/hhmm".
	PkWndValue = regexp.MustCompile(`^(\d{3})(\d{2,3})/(\d{2})?(\d{2})$`)

	// wshft spans two or three words: "WSHFT hhmm" or "WSHFT hhmm FROPA".
	WshftValue = regexp.MustCompile(`^(\d{2})?(\d{2})$`)

	// sfcvis/twrvis span three or four words: "SFC VIS 1 1/2" or "TWR VIS 1/2".
	VisFraction = regexp.MustCompile(`^(\d{1,2})?(?:(\d)/(\d{1,2}))?$`)

	// vis2loc: "VIS 1/2 RWY22" or "VIS 3/4 NW".
	Vis2Loc = regexp.MustCompile(`^VIS$`)

	// sctrvis: "VIS N 1/2" (directional visibility).
	CompassPoint = regexp.MustCompile(`^(N|NE|E|SE|S|SW|W|NW)$`)

	// vcig: "CIG 015V021".
	VCigValue = regexp.MustCompile(`^(\d{3})V(\d{3})$`)

	// cig2loc: "CIG 015 RWY22" or "CIG 015 NW".
	Cig = regexp.MustCompile(`^CIG$`)

	// obsc: "FG BKN008" - phenomenon then sky layer.
	ObscPhenom = regexp.MustCompile(`^(FG|FU|DU|VA|HZ|BR|PO)$`)

	// vsky: "BKN008 V OVC012".
	VSkyLayer = regexp.MustCompile(`^(SKC|CLR|FEW|SCT|BKN|OVC|0VC)(\d{3})?$`)

	Pchgr   = regexp.MustCompile(`^(PRESRR|PRESFR)$`)
	Mslp    = regexp.MustCompile(`^SLP(\d{3})$`)
	NoSpeci = regexp.MustCompile(`^NOSPECI$`)
	Aurbo   = regexp.MustCompile(`^AURBO$`)

	Contrails = regexp.MustCompile(`^CONTRAILS?$`)
	SnoIncr   = regexp.MustCompile(`^SNINCR$`)
	Runway    = regexp.MustCompile(`^RWY(\d{2}[LRC]?)$`)
	Other     = regexp.MustCompile(`^(FIRST|LAST)$`)

	Pcp1h     = regexp.MustCompile(`^P(\d{4})$`)
	Pcp6h     = regexp.MustCompile(`^6(\d{4})$`)
	Pcp24h    = regexp.MustCompile(`^7(\d{4})$`)
	IceAcc    = regexp.MustCompile(`^I([136])(\d{3})$`)
	SnoDpth   = regexp.MustCompile(`^4/(\d{3})$`)
	LWE       = regexp.MustCompile(`^933(\d{3})$`)
	Sunshine  = regexp.MustCompile(`^98(\d{3})$`)
	TempDec   = regexp.MustCompile(`^T([01])(\d{3})([01])(\d{3})$`)
	MaxT6h    = regexp.MustCompile(`^1([01])(\d{3})$`)
	MinT6h    = regexp.MustCompile(`^2([01])(\d{3})$`)
	XtrmET    = regexp.MustCompile(`^4([01])(\d{3})([01])(\d{3})$`)
	Ptndcy3h  = regexp.MustCompile(`^5([0-8])(\d{3})$`)
	SensorStat = regexp.MustCompile(`^(RVRNO|PWINO|PNO|FZRANO|TSNO|VISNO|CHINO|SLPNO|WINDNO)$`)
	EstWind   = regexp.MustCompile(`^WIND$`)
	Maintenance = regexp.MustCompile(`^\$$`)

	LtgFreq  = regexp.MustCompile(`^(OCNL|FRQ|CONS)?LTG(CG|IC|CC|CA)*$`)
	TstmMvmt = regexp.MustCompile(`^(TS|CB)$`)
	Mov      = regexp.MustCompile(`^MOV$`)

	// pcpnhist: "(SH|FZ)?(TS|precip)((B|E)MM(MM)?)+" - matched as one word.
	// Each event carries a 2-digit minute, optionally preceded by a
	// 2-digit hour; when the hour is absent the report's own issue hour
	// applies, the same convention pkwnd/wshft use.
	PcpnHist  = regexp.MustCompile(`^(SH|FZ)?(TS|DZ|RA|SN|SG|IC|PL|GR|GS|UP)((B|E)(\d{2})(\d{2})?)+$`)
	pcpnEvent = regexp.MustCompile(`(B|E)(\d{2})(\d{2})?`)

	Hail = regexp.MustCompile(`^GR(?:\s)?(M)?(\d{1,2})(?:/(\d{1,2}))?$`)
)

// PcpnEvents extracts every embedded (B|E)MM(MM)? event from a pcpnhist
// lexeme, in left-to-right order.
func PcpnEvents(lexeme string) [][]string {
	return pcpnEvent.FindAllStringSubmatch(lexeme, -1)
}
