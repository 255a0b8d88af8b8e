package encode

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mdoberfield/metar-iwxxm/record"
	"github.com/mdoberfield/metar-iwxxm/station"
	"github.com/mdoberfield/metar-iwxxm/vocab"
)

// Options controls encoder behavior that the caller (the CLI or a
// long-lived service) decides per invocation.
type Options struct {
	// AllowUSExtensions permits the iwxxm-us namespace and its additional
	// elements for U.S. stations. Ignored for non-U.S. stations.
	AllowUSExtensions bool
	// DeclareNamespaces writes xmlns declarations on the root element.
	DeclareNamespaces bool
	// Debug is not read by Encoder; the ORIG_TAC/UNPARSED_TAC comment is
	// written by format.Render when format.Options.Debug is set.
	Debug bool
}

// Encoder turns decoded observation records into IWXXM/IWXXM-US documents.
// It is long-lived: constructed once per process with read-only lookup
// tables, safe for concurrent use across independent reports.
type Encoder struct {
	Stations station.Resolver
	Vocab    *vocab.Table
	Options  Options

	// newUUID is overridable in tests; defaults to uuid.NewString.
	newUUID func() string
}

// NewEncoder constructs an Encoder with the real UUID generator.
func NewEncoder(stations station.Resolver, vocab *vocab.Table, opts Options) *Encoder {
	return &Encoder{Stations: stations, Vocab: vocab, Options: opts, newUUID: uuid.NewString}
}

func (e *Encoder) uuidString() string {
	if e.newUUID != nil {
		return e.newUUID()
	}
	return uuid.NewString()
}

// Document is a built but unserialized result: the root element plus the
// raw/unparsed text the caller may want for a debug comment.
type Document struct {
	Root       *Element
	OrigTAC    string
	Unparsed   string
}

// Encode builds the XML element tree for one decoded report. The caller
// supplies the original (un-normalized) TAC text only for the optional
// debug comment.
func (e *Encoder) Encode(ctx context.Context, rec *record.Record, origTAC string) (*Document, error) {
	if rec.Ident == nil {
		return nil, fmt.Errorf("encode: record has no station identifier")
	}
	icao := rec.Ident.Lexeme
	st, err := e.Stations.Resolve(ctx, icao)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	ns := namespace(icao, e.Options.AllowUSExtensions)
	usMode := ns == "iwxxm-us"

	reportType := "METAR"
	if rec.Type != nil {
		reportType = rec.Type.Lexeme
	}

	root := NewElement(ns + ":" + reportType)
	if e.Options.DeclareNamespaces {
		declareNamespaces(root, usMode)
	}
	root.Attr("gml:id", fmt.Sprintf("%s-%s", reportType, e.uuidString()))
	root.Attr("status", status(rec))
	root.Attr("automatedStation", boolStr(hasToken(rec, "AUTO")))

	issueTime := time.Unix(0, 0).UTC()
	if rec.IssueTime != nil {
		issueTime = time.Date(rec.IssueTime.Year, time.Month(rec.IssueTime.Month), rec.IssueTime.Day,
			rec.IssueTime.Hour, rec.IssueTime.Minute, 0, 0, time.UTC)
	}
	instantID := fmt.Sprintf("time-%s-%d", icao, issueTime.Unix())

	obs := root.Add(NewElement("om:OM_Observation"))
	obs.Attr("gml:id", fmt.Sprintf("obs-%s-%d", icao, issueTime.Unix()))

	obs.Add(NewElement("om:type")).Attr("xlink:href", "http://codes.wmo.int/49-2/observation-type/iwxxm/3.0/MeteorologicalAerodromeObservation")

	phenTime := obs.Add(NewElement("om:phenomenonTime"))
	ti := phenTime.Add(NewElement("gml:TimeInstant"))
	ti.Attr("gml:id", instantID)
	ti.Add(NewElement("gml:timePosition")).SetText(issueTime.Format("2006-01-02T15:04:05Z"))

	obs.Add(NewElement("om:resultTime")).Attr("xlink:href", "#"+instantID)

	obs.Add(NewElement("om:procedure")).Attr("xlink:href", "http://codes.wmo.int/49-2/observation-type/iwxxm/3.0/MeteorologicalAerodromeObservation")
	obs.Add(NewElement("om:observedProperty")).Attr("xlink:href", "http://codes.wmo.int/49-2/observation-type/iwxxm/3.0/MeteorologicalAerodromeObservation")

	obs.Add(e.featureOfInterest(st))

	for _, q := range resultQuality(rec) {
		obs.Add(q)
	}

	result := obs.Add(NewElement("om:result"))
	record_ := result.Add(NewElement(ns + ":MeteorologicalAerodromeObservationRecord"))
	record_.Attr("cloudAndVisibilityOK", boolStr(rec.CAVOK != nil))

	e.emitBase(record_, rec, usMode)

	if usMode {
		e.emitUSExtensions(record_, rec)
		e.emitBundles(record_, rec)
	}

	if rec.OsType != nil {
		root.Add(NewElement(ns + ":observingStationType")).SetText(rec.OsType.Lexeme)
	}

	return &Document{Root: root, OrigTAC: origTAC, Unparsed: rec.Unparsed}, nil
}

func status(rec *record.Record) string {
	if rec.AutoCor != nil && strings.Contains(rec.AutoCor.Lexeme, "COR") {
		return "CORRECTED"
	}
	return "NORMAL"
}

func hasToken(rec *record.Record, tok string) bool {
	return rec.AutoCor != nil && strings.Contains(rec.AutoCor.Lexeme, tok)
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func declareNamespaces(root *Element, usMode bool) {
	root.Attr("xmlns:om", nsOM)
	root.Attr("xmlns:gml", nsGML)
	root.Attr("xmlns:xlink", nsXlink)
	root.Attr("xmlns:xsi", nsXsi)
	root.Attr("xmlns:gco", nsGco)
	root.Attr("xmlns:sams", nsSams)
	root.Attr("xmlns:sam", nsSam)
	root.Attr("xmlns:aixm", nsAixm)
	root.Attr("xmlns:metce", nsMetce)
	root.Attr("xmlns:iwxxm", nsIWXXM)
	if usMode {
		root.Attr("xmlns:iwxxm-us", nsIWXXMUS)
		root.Attr("xsi:schemaLocation", nsIWXXMUS+" https://nws.weather.gov/schemas/iwxxm-us/1.0/iwxxm-us.xsd")
	} else {
		root.Attr("xsi:schemaLocation", nsIWXXM+" http://schemas.wmo.int/iwxxm/3.0/iwxxm.xsd")
	}
}

func (e *Encoder) featureOfInterest(st station.Station) *Element {
	foi := NewElement("om:featureOfInterest")
	sf := foi.Add(NewElement("sams:SF_SpatialSamplingFeature"))
	sf.Attr("gml:id", "sampling-point-"+st.ICAO)

	sampled := sf.Add(NewElement("sam:sampledFeature"))
	aerodrome := sampled.Add(NewElement("aixm:AirportHeliport"))
	aerodrome.Attr("gml:id", "aerodrome-"+st.UUID)
	tf := aerodrome.Add(NewElement("aixm:timeSlice")).Add(NewElement("aixm:AirportHeliportTimeSlice"))
	tf.Add(NewElement("aixm:designator")).SetText(st.ICAO)
	tf.Add(NewElement("aixm:name")).SetText(st.Name)
	tf.Add(NewElement("aixm:locationIndicatorICAO")).SetText(st.ICAO)

	shape := sf.Add(NewElement("sams:shape"))
	point := shape.Add(NewElement("gml:Point"))
	point.Attr("gml:id", "arp-"+st.ICAO)
	point.Attr("srsName", "urn:ogc:def:crs:EPSG::4979")
	point.Attr("axisLabels", "Latitude Longitude Altitude")
	point.Attr("uomLabels", "degree degree m")
	point.Add(NewElement("gml:pos")).SetText(st.Pos())

	return foi
}

// resultQuality emits one DQ_CompletenessOmission per failed sensor
// recorded in the sensor-status remarks group.
func resultQuality(rec *record.Record) []*Element {
	if rec.SensorStat == nil {
		return nil
	}
	var out []*Element
	for _, sensor := range strings.Fields(rec.SensorStat.Lexeme) {
		uri, ok := sensorStatusURI(sensor)
		if !ok {
			continue
		}
		rq := NewElement("om:resultQuality")
		dq := rq.Add(NewElement("metce:DQ_CompletenessOmission"))
		result := dq.Add(NewElement("metce:result"))
		result.Add(NewElement("metce:nilReason")).Attr("xlink:href", uri)
		result.Add(NewElement("gco:Boolean")).SetText("false")
		out = append(out, rq)
	}
	return out
}

var sensorCodes = map[string]string{
	"RVRNO":  "rvr",
	"PWINO":  "present-weather",
	"PNO":    "tipping-bucket",
	"FZRANO": "freezing-rain",
	"TSNO":   "thunderstorm",
	"VISNO":  "visibility",
	"CHINO":  "ceiling-height",
	"SLPNO":  "sea-level-pressure",
	"WINDNO": "wind",
}

func sensorStatusURI(token string) (string, bool) {
	code, ok := sensorCodes[token]
	if !ok {
		return "", false
	}
	return "http://codes.wmo.int/49-2/SensorStatus/" + code, true
}
