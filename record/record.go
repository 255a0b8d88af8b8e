// Package record defines the typed intermediate representation produced by
// the decoder and consumed by the encoder: the observation record.
package record

import "k8s.io/utils/ptr"

// Pos is a one-based line/column position into the original TAC input.
type Pos struct {
	Line int
	Col  int
}

// Span is the character range of a matched lexeme, start through end
// inclusive of the token's own extent.
type Span struct {
	Start Pos
	End   Pos
}

// Elem is embedded by every decoded element: the verbatim lexeme plus the
// range of characters it came from, kept for diagnostics and unparsed
// accounting.
type Elem struct {
	Lexeme string
	Span   Span
}

// Arc is a compass sector expressed as counter-clockwise/clockwise degree
// bounds. The full circle is {0, 360}.
type Arc struct {
	CCW float64
	CW  float64
}

// Locations buckets compass sectors by the qualifier under which they were
// reported: overhead, in the vicinity, distant, or (bare) at the station.
type Locations struct {
	OHD   []Arc
	VC    []Arc
	DSNT  []Arc
	ATSTN []Arc
}

// Empty reports whether no sector was recorded under any bucket.
func (l Locations) Empty() bool {
	return len(l.OHD) == 0 && len(l.VC) == 0 && len(l.DSNT) == 0 && len(l.ATSTN) == 0
}

// Ident carries a bare matched token with no further decoded fields, such
// as the report type or ICAO identifier.
type Ident struct {
	Elem
}

// IssueTime is the report's DDHHMM timestamp, resolved against wall-clock
// time per the date-fix procedure.
type IssueTime struct {
	Elem
	Epoch    int64
	Year     int
	Month    int
	Day      int
	Hour     int
	Minute   int
	Error    string
}

// AutoCor records presence of AUTO and/or COR/CCA in the report body.
type AutoCor struct {
	Elem
}

// Wind is the surface wind group, optionally extended in place by a
// following variable-direction group.
type Wind struct {
	Elem
	Direction string // "VRB" or three digits
	Speed     int
	Gust      *int
	UOM       string
	CCW       string
	CW        string
}

// Visibility is a prevailing-visibility value, in statute miles or metres.
type Visibility struct {
	Elem
	Value float64
	UOM   string
	Oper  string // "M" (below) or "P" (above) when present
}

// VariableVisibility is the remarks VIS…V… group.
type VariableVisibility struct {
	Elem
	Lo  float64
	Hi  float64
	UOM string
}

// RVR is one runway-visual-range group; Record.RVR holds one entry per
// group, in report order.
type RVR struct {
	Elem
	UOM  string
	Rwy  string
	Mean string
	Oper string
	Tend string
}

// VariableRVR is the remarks-style variable RVR group, kept separate from
// ordinary RVR.
type VariableRVR struct {
	Elem
	UOM  string
	Lo   string
	Hi   string
	Oper string
}

// Phenomenon carries the raw lexeme of a present-weather, obstruction, or
// vicinity-phenomenon group; the encoder resolves each space-delimited
// token against the controlled vocabulary.
type Phenomenon struct {
	Elem
}

// CloudLayer is one layer of the sky-condition group.
type CloudLayer struct {
	Cover  string // SKC/CLR/FEW/SCT/BKN/OVC/0VC/VV/"///"
	Height string // three digits, or "///" if not observable
	Type   string // CB/TCU/"///"/""
}

// Sky is the full sky-condition group, one or more layers.
type Sky struct {
	Elem
	Layers []CloudLayer
}

// Temperature is the whole-degree temperature/dewpoint group.
type Temperature struct {
	Elem
	Tt *int
	Td *int
}

// TemperatureDecimal is the tenths-of-a-degree remarks group; takes
// precedence over Temperature when both are present.
type TemperatureDecimal struct {
	Elem
	Tt float64
	Td float64
}

// Altimeter is the altimeter-setting group.
type Altimeter struct {
	Elem
	Value float64
	UOM   string
}

// MSLP is sea-level pressure in hectopascals.
type MSLP struct {
	Elem
	Value float64
}

// PressureTendency3h is the 3-hour pressure-tendency remarks group.
type PressureTendency3h struct {
	Elem
	Character string
	Change    float64
}

// PeakWind is the PK WND remarks group.
type PeakWind struct {
	Elem
	Direction int
	Speed     int
	Epoch     int64
}

// WindShift is the WSHFT remarks group.
type WindShift struct {
	Elem
	Epoch int64
	FROPA bool
}

// SectorVisibility is the directional VIS group.
type SectorVisibility struct {
	Elem
	Value     float64
	Direction Arc
	UOM       string
	Oper      string
}

// SecondLocationVisibility is the VIS…<location> remarks group.
type SecondLocationVisibility struct {
	Elem
	Value    float64
	Location string
	UOM      string
	Oper     string
}

// SecondLocationCeiling is the CIG…<location> remarks group.
type SecondLocationCeiling struct {
	Elem
	Value    int
	UOM      string
	Location string
}

// VariableCeiling is the CIG loV hi remarks group.
type VariableCeiling struct {
	Elem
	Lo int
	Hi int
	UOM string
}

// Obscuration is the FG/FU/DU/VA/HZ SKYnnn remarks group.
type Obscuration struct {
	Elem
	Phenomenon string
	Sky        string
}

// VariableSkyCondition is the COVER V COVER remarks group.
type VariableSkyCondition struct {
	Elem
	Height int
	UOM    string
	Cover1 string
	Cover2 string
}

// ConvectiveLocation describes lightning or thunderstorm-movement
// location/frequency/type information.
type ConvectiveLocation struct {
	Elem
	Frequency string
	Types     string
	Locations Locations
	Movement  *Locations
}

// PrecipEvent is one B(egin)/E(nd) timestamp embedded in a pcpnhist group.
type PrecipEvent struct {
	Kind  string // "B" or "E"
	Epoch int64
}

// PrecipHistory is the remarks precipitation-beginning/ending history,
// possibly covering more than one weather type.
type PrecipHistory struct {
	Elem
	Events []PrecipEvent
}

// Hail is the GR remarks group, hail-stone diameter in inches.
type Hail struct {
	Elem
	Value float64
}

// PressureChangeRapid is PRESRR/PRESFR.
type PressureChangeRapid struct {
	Elem
	Value string // RISING or FALLING
}

// StatisticalQuantity is the shape shared by precipitation amounts, ice
// accretion, and liquid-water-equivalent remarks groups: a value over a
// period, in inches.
type StatisticalQuantity struct {
	Elem
	Value  float64
	Period string
	UOM    string
}

// SnowDepth is the 4/nnn remarks group, inches.
type SnowDepth struct {
	Elem
	Value  float64
	Period string
	UOM    string
}

// SnowIncrease is the SNINCR remarks group.
type SnowIncrease struct {
	Elem
	Value  int
	Depth  int
	Period string
	UOM    string
}

// Sunshine is the 98nnn remarks group, minutes.
type Sunshine struct {
	Elem
	Minutes int
}

// TempExtremum is a 6-hour or 24-hour max/min temperature remarks group.
type TempExtremum struct {
	Elem
	Value  float64
	Period string
}

// SensorStatus accumulates sensor-status mnemonics, space-joined.
type SensorStatus struct {
	Elem
}

// Event is the FIRST/LAST remarks token.
type Event struct {
	Elem
}

// Record is the decoder's output: a mapping from the closed set of element
// names enumerated in the token catalogue to their decoded values. Absence
// of a field means the element was not present (or not recognized) in the
// input; every field is independent of every other.
type Record struct {
	Type      *Ident
	Ident     *Ident
	IssueTime *IssueTime
	AutoCor   *AutoCor

	CAVOK      *Ident
	Wind       *Wind
	Visibility *Visibility
	RVR        []RVR
	VrbRVR     *VariableRVR
	Pcp        *Phenomenon
	Obv        *Phenomenon
	Vcnty      *Phenomenon
	Sky        *Sky
	Temp       *Temperature
	Alt        *Altimeter

	OsType      *Ident
	PeakWind    *PeakWind
	WindShift   *WindShift
	TwrVsby     *Visibility
	VVis        *VariableVisibility
	SectorVis   *SectorVisibility
	Vis2ndLoc   *SecondLocationVisibility
	Lightning   *ConvectiveLocation
	TstmMvmt    *ConvectiveLocation
	PcpnHist    *PrecipHistory
	Hail        *Hail
	VCig        *VariableCeiling
	Obsc        *Obscuration
	VSky        *VariableSkyCondition
	Cig2ndLoc   *SecondLocationCeiling
	Pchgr       *PressureChangeRapid
	MSLP        *MSLP
	NoSpeci     *Ident
	Aurbo       *Ident
	Contrails   *Ident
	SnoIncr     *SnowIncrease
	Event       *Event
	Pcp1h       *StatisticalQuantity
	PcpAmt      *StatisticalQuantity
	PcpAmt24h   *StatisticalQuantity
	IceAcc1     *StatisticalQuantity
	IceAcc3     *StatisticalQuantity
	IceAcc6     *StatisticalQuantity
	SnowDepth   *SnowDepth
	LWE         *StatisticalQuantity
	Sunshine    *Sunshine
	TempDec     *TemperatureDecimal
	MaxT6h      *TempExtremum
	MinT6h      *TempExtremum
	MaxT24h     *TempExtremum
	MinT24h     *TempExtremum
	Ptndcy3h    *PressureTendency3h
	SensorStat  *SensorStatus
	EstWind     *Elem
	Maintenance *Elem

	// Unparsed is the grammar-error residue before RMK; Additive is the
	// observer's free-form prose after RMK.
	Unparsed string
	Additive string
}

// IntPtr is a convenience re-export so decode handlers don't need to import
// k8s.io/utils/ptr directly for the common case of an optional int field.
func IntPtr(v int) *int { return ptr.To(v) }

// Float64Ptr mirrors IntPtr for float64 fields.
func Float64Ptr(v float64) *float64 { return ptr.To(v) }
