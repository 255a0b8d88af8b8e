package encode

import (
	"fmt"
	"strings"

	"github.com/mdoberfield/metar-iwxxm/record"
)

// emitBase appends the elements common to both namespaces, in the order
// spec.md §4.5 requires: temp, alt, wind, then (unless CAVOK) vsby, rvr,
// pcp, obv, vcnty, sky.
func (e *Encoder) emitBase(parent *Element, rec *record.Record, usMode bool) {
	parent.AddIf(e.temperature(rec))
	parent.AddIf(altimeter(rec))
	parent.AddIf(wind(rec))

	if rec.CAVOK == nil {
		parent.AddIf(visibility(rec))
		for _, el := range e.rvr(rec) {
			parent.Add(el)
		}
		parent.AddIf(e.presentWeather(rec, "presentWeather", rec.Pcp))
		parent.AddIf(e.presentWeather(rec, "presentWeather", rec.Obv))
		parent.AddIf(e.presentWeather(rec, "presentWeather", rec.Vcnty))
		parent.AddIf(sky(rec))
	}

	if !usMode {
		// rewx/ws/sea/rwystate have no decoder-side source token in this
		// implementation's token catalogue; nothing to emit here.
		return
	}
}

// emitUSExtensions appends the additional U.S.-only elements, in the
// fixed order spec.md §4.5 names.
func (e *Encoder) emitUSExtensions(parent *Element, rec *record.Record) {
	if rec.Additive != "" {
		parent.Add(NewElement("iwxxm-us:additive")).SetText(rec.Additive)
	}
	parent.AddIf(mslp(rec))
	parent.AddIf(pchgr(rec))
	parent.AddIf(ptndcy(rec))
	parent.AddIf(snodpth(rec))
	parent.AddIf(hail(rec))
	parent.AddIf(sunshine(rec))
	if rec.Aurbo != nil {
		parent.Add(NewElement("iwxxm-us:auro")).SetText(rec.Aurbo.Lexeme)
	}
	if rec.Contrails != nil {
		parent.Add(NewElement("iwxxm-us:contrail")).SetText(rec.Contrails.Lexeme)
	}
	if rec.NoSpeci != nil {
		parent.Add(NewElement("iwxxm-us:nospeci")).SetText(rec.NoSpeci.Lexeme)
	}
	if rec.Event != nil {
		parent.Add(NewElement("iwxxm-us:event")).SetText(rec.Event.Lexeme)
	}
	if rec.Maintenance != nil {
		parent.Add(NewElement("iwxxm-us:maintenance")).SetText(rec.Maintenance.Lexeme)
	}
	parent.AddIf(snoincr(rec))
	parent.AddIf(statisticalQuantity("pcp1h", "PrecipitationRate", rec.Pcp1h))
	parent.AddIf(statisticalQuantity("pcpamt", "PrecipitationRate", rec.PcpAmt))
	parent.AddIf(statisticalQuantity("pcpamt24h", "PrecipitationRate", rec.PcpAmt24h))
	parent.AddIf(statisticalQuantity("iceacc1", "IceAccretionRate", rec.IceAcc1))
	parent.AddIf(statisticalQuantity("iceacc3", "IceAccretionRate", rec.IceAcc3))
	parent.AddIf(statisticalQuantity("iceacc6", "IceAccretionRate", rec.IceAcc6))
	parent.AddIf(statisticalQuantity("lwe", "PrecipitationRate", rec.LWE))
	parent.AddIf(tempExtremum("maxT6h", "Maximum", rec.MaxT6h))
	parent.AddIf(tempExtremum("minT6h", "Minimum", rec.MinT6h))
	parent.AddIf(tempExtremum("maxT24h", "Maximum", rec.MaxT24h))
	parent.AddIf(tempExtremum("minT24h", "Minimum", rec.MinT24h))
}

// emitBundles appends the three concurrent-structure wrappers, each only
// when non-empty.
func (e *Encoder) emitBundles(parent *Element, rec *record.Record) {
	if v := e.visuallyObservable(rec); v != nil {
		parent.Add(v)
	}
	if v := secondLocationBundle(rec); v != nil {
		parent.Add(v)
	}
	if v := e.variationsBundle(rec); v != nil {
		parent.Add(v)
	}
}

func (e *Encoder) temperature(rec *record.Record) *Element {
	if rec.TempDec == nil && rec.Temp == nil {
		return nil
	}
	el := NewElement("iwxxm:airTemperature")
	if rec.TempDec != nil {
		el.Attr("uom", "Cel")
		el.SetText(fmt.Sprintf("%.1f", rec.TempDec.Tt))
		dp := NewElement("iwxxm:dewpointTemperature").Attr("uom", "Cel")
		dp.SetText(fmt.Sprintf("%.1f", rec.TempDec.Td))
		wrap := NewElement("iwxxm:temperatureGroup")
		wrap.Add(el)
		wrap.Add(dp)
		return wrap
	}
	if rec.Temp.Tt == nil {
		return nil
	}
	el.Attr("uom", "Cel")
	el.SetText(fmt.Sprintf("%d", *rec.Temp.Tt))
	wrap := NewElement("iwxxm:temperatureGroup")
	wrap.Add(el)
	if rec.Temp.Td != nil {
		dp := NewElement("iwxxm:dewpointTemperature").Attr("uom", "Cel")
		dp.SetText(fmt.Sprintf("%d", *rec.Temp.Td))
		wrap.Add(dp)
	}
	return wrap
}

func altimeter(rec *record.Record) *Element {
	if rec.Alt == nil {
		return nil
	}
	el := NewElement("iwxxm:qnh")
	switch rec.Alt.UOM {
	case "[in_i'Hg]":
		el.Attr("uom", "hPa")
		el.SetText(fmt.Sprintf("%.1f", rec.Alt.Value*inHgToHpa))
	default:
		el.Attr("uom", "hPa")
		el.SetText(fmt.Sprintf("%.1f", rec.Alt.Value))
	}
	return el
}

func wind(rec *record.Record) *Element {
	if rec.Wind == nil {
		return nil
	}
	el := NewElement("iwxxm:surfaceWind")
	w := el.Add(NewElement("iwxxm:AerodromeSurfaceWindForecast"))
	variable := rec.Wind.Direction == "VRB" || rec.Wind.CCW != ""
	w.Attr("variableWindDirection", boolStr(variable))
	if rec.Wind.Direction != "" && rec.Wind.Direction != "VRB" {
		w.Add(NewElement("iwxxm:meanWindDirection")).Attr("uom", "deg").SetText(rec.Wind.Direction)
	}
	w.Add(NewElement("iwxxm:meanWindSpeed")).Attr("uom", "km/h").SetText(fmt.Sprintf("%.3f", knotsToKmh(float64(rec.Wind.Speed))))
	if rec.Wind.Gust != nil {
		w.Add(NewElement("iwxxm:windGust")).Attr("uom", "km/h").SetText(fmt.Sprintf("%.3f", knotsToKmh(float64(*rec.Wind.Gust))))
	}
	if variable && rec.Wind.CCW != "" {
		vd := w.Add(NewElement("iwxxm:variableWindDirectionRange"))
		vd.Add(NewElement("iwxxm:ccw")).SetText(rec.Wind.CCW)
		vd.Add(NewElement("iwxxm:cw")).SetText(rec.Wind.CW)
	}
	return el
}

func visibility(rec *record.Record) *Element {
	if rec.Visibility == nil {
		return nil
	}
	el := NewElement("iwxxm:prevailingVisibility")
	el.Attr("uom", "m")
	el.SetText(fmt.Sprintf("%.1f", toMetres(rec.Visibility.Value, rec.Visibility.UOM)))
	if op := visOperatorURI(rec.Visibility.Oper); op != "" {
		el.Attr("iwxxm:prevailingVisibilityOperator", op)
	}
	return el
}

func toMetres(v float64, uom string) float64 {
	if uom == "[mi_i]" {
		return milesToMetres(v)
	}
	return v
}

func visOperatorURI(oper string) string {
	switch oper {
	case "M":
		return "BELOW"
	case "P":
		return "ABOVE"
	default:
		return ""
	}
}

func (e *Encoder) rvr(rec *record.Record) []*Element {
	if len(rec.RVR) == 0 {
		return nil
	}
	var out []*Element
	for _, r := range rec.RVR {
		rwys := strings.Fields(r.Rwy)
		means := strings.Fields(r.Mean)
		opers := strings.Fields(r.Oper)
		tends := strings.Fields(r.Tend)
		for i := range rwys {
			el := NewElement("iwxxm:rvr")
			grp := el.Add(NewElement("iwxxm:AerodromeRunwayVisualRange"))
			grp.Add(NewElement("iwxxm:runway")).SetText(rwys[i])
			mean := grp.Add(NewElement("iwxxm:meanRVR")).Attr("uom", "m")
			if i < len(means) {
				mean.SetText(fmt.Sprintf("%.1f", feetToMetres(atofSafe(means[i]))))
			}
			if i < len(opers) && strings.TrimSpace(opers[i]) != "" {
				grp.AttrIf("iwxxm:pastTendencyOperator", opers[i])
			}
			if i < len(tends) && strings.TrimSpace(tends[i]) != "" {
				grp.Add(NewElement("iwxxm:pastTendency")).SetText(tends[i])
			}
			out = append(out, el)
		}
	}
	return out
}

func atofSafe(s string) float64 {
	var v float64
	var sign float64 = 1
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + float64(s[i]-'0')
	}
	return v * sign
}

// presentWeather resolves a phenomenon lexeme against the vocabulary
// table, falling back to the split-search recovery if the whole token
// is not catalogued. Each space-delimited group in the lexeme is tried
// independently.
func (e *Encoder) presentWeather(rec *record.Record, elementName string, ph *record.Phenomenon) *Element {
	if ph == nil || e.Vocab == nil {
		return nil
	}
	wrap := NewElement("iwxxm:" + elementName + "Group")
	any := false
	for _, token := range strings.Fields(ph.Lexeme) {
		if token == "//" {
			el := NewElement("iwxxm:" + elementName)
			el.Nil("missing")
			wrap.Add(el)
			any = true
			continue
		}
		if term, ok := e.Vocab.Lookup(token); ok {
			el := NewElement("iwxxm:" + elementName)
			el.Attr("xlink:href", term.URI)
			el.AttrIf("xlink:title", term.Title)
			wrap.Add(el)
			any = true
			continue
		}
		if head, tail, ok := e.Vocab.SplitSearch(token); ok {
			h := NewElement("iwxxm:" + elementName)
			h.Attr("xlink:href", head.URI)
			h.AttrIf("xlink:title", head.Title)
			wrap.Add(h)
			t := NewElement("iwxxm:" + elementName)
			t.Attr("xlink:href", tail.URI)
			t.AttrIf("xlink:title", tail.Title)
			wrap.Add(t)
			any = true
		}
	}
	if !any {
		return nil
	}
	return wrap
}

func sky(rec *record.Record) *Element {
	if rec.Sky == nil {
		return nil
	}
	wrap := NewElement("iwxxm:cloudLayers")
	for _, layer := range rec.Sky.Layers {
		el := cloudLayer(layer)
		wrap.Add(el)
	}
	return wrap
}

func cloudLayer(l record.CloudLayer) *Element {
	el := NewElement("iwxxm:CloudLayer")
	if l.Cover == "VV" {
		vv := el.Add(NewElement("iwxxm:verticalVisibility"))
		vv.Attr("uom", "[ft_i]")
		if l.Height == "///" {
			vv.Nil("missing")
		} else {
			vv.SetText(fmt.Sprintf("%d", atoiTriple(l.Height)*100))
		}
		return el
	}

	amount := el.Add(NewElement("iwxxm:amount"))
	if code, ok := cloudAmountCode(l.Cover); ok {
		amount.Attr("xlink:href", fmt.Sprintf("http://codes.wmo.int/bufr4/codeflag/0-20-008/%d", code))
	} else {
		amount.Nil("unknown")
	}

	base := el.Add(NewElement("iwxxm:base"))
	base.Attr("uom", "[ft_i]")
	code, haveCode := cloudAmountCode(l.Cover)
	switch {
	case l.Height == "///":
		base.Nil("missing")
	case haveCode && code == 0:
		base.Nil("inapplicable")
	default:
		base.SetText(fmt.Sprintf("%d", atoiTriple(l.Height)*100))
	}

	switch l.Type {
	case "CB":
		el.Add(NewElement("iwxxm:cloudType")).Attr("xlink:href", "http://codes.wmo.int/bufr4/codeflag/0-20-012/9")
	case "TCU":
		el.Add(NewElement("iwxxm:cloudType")).Attr("xlink:href", "http://codes.wmo.int/bufr4/codeflag/0-20-012/30")
	case "///":
		el.Add(NewElement("iwxxm:cloudType")).Nil("not observable")
	}
	return el
}

func cloudAmountCode(cover string) (int, bool) {
	switch cover {
	case "SKC", "CLR":
		return 0, true
	case "FEW":
		return 1, true
	case "SCT":
		return 2, true
	case "BKN":
		return 3, true
	case "OVC", "0VC":
		return 4, true
	default:
		return 0, false
	}
}

func atoiTriple(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func mslp(rec *record.Record) *Element {
	if rec.MSLP == nil {
		return nil
	}
	el := NewElement("iwxxm-us:seaLevelPressure")
	el.Attr("uom", "hPa")
	el.SetText(fmt.Sprintf("%.1f", rec.MSLP.Value))
	return el
}

func pchgr(rec *record.Record) *Element {
	if rec.Pchgr == nil {
		return nil
	}
	return NewElement("iwxxm-us:pressureChangeRapid").SetText(rec.Pchgr.Value)
}

func ptndcy(rec *record.Record) *Element {
	if rec.Ptndcy3h == nil {
		return nil
	}
	el := NewElement("iwxxm-us:pressureTendency")
	el.Add(NewElement("iwxxm-us:pressureChange")).Attr("uom", "hPa").SetText(fmt.Sprintf("%.1f", rec.Ptndcy3h.Change))
	el.Add(NewElement("iwxxm-us:tendencyCharacteristic")).Attr("xlink:href",
		fmt.Sprintf("http://codes.wmo.int/bufr4/codeflag/0-10-063/%s", rec.Ptndcy3h.Character))
	return el
}

func snodpth(rec *record.Record) *Element {
	if rec.SnowDepth == nil {
		return nil
	}
	el := NewElement("iwxxm-us:snowDepth")
	el.Attr("uom", "m")
	el.SetText(scientificNotation2(inchesToMetres(rec.SnowDepth.Value)))
	return el
}

func hail(rec *record.Record) *Element {
	if rec.Hail == nil {
		return nil
	}
	el := NewElement("iwxxm-us:hailstoneDiameter")
	el.Attr("uom", "m")
	el.SetText(fmt.Sprintf("%.4f", inchesToMetres(rec.Hail.Value)))
	return el
}

func sunshine(rec *record.Record) *Element {
	if rec.Sunshine == nil {
		return nil
	}
	return NewElement("iwxxm-us:sunshineDuration").SetText(isoDuration(rec.Sunshine.Minutes))
}

func snoincr(rec *record.Record) *Element {
	if rec.SnoIncr == nil {
		return nil
	}
	el := NewElement("iwxxm-us:snowIncreasingRapidly")
	el.Add(NewElement("iwxxm-us:increase")).Attr("uom", "[in_i]").SetText(fmt.Sprintf("%d", rec.SnoIncr.Value))
	el.Add(NewElement("iwxxm-us:totalDepth")).Attr("uom", "[in_i]").SetText(fmt.Sprintf("%d", rec.SnoIncr.Depth))
	return el
}

func statisticalQuantity(name, elementCode string, q *record.StatisticalQuantity) *Element {
	if q == nil {
		return nil
	}
	el := NewElement("iwxxm-us:" + name)
	sp := el.Add(NewElement("iwxxm-us:StatisticallyProcessedQuantity"))
	sp.Attr("period", q.Period)
	sp.Attr("type", "Accumulation")
	sp.Attr("elementCode", elementCode)
	sp.Add(NewElement("iwxxm-us:value")).Attr("uom", "kg/(s.m2)").SetText(fmt.Sprintf("%.6f", inchesPerHourToKgPerSM(q.Value)))
	return el
}

func tempExtremum(name, statType string, t *record.TempExtremum) *Element {
	if t == nil {
		return nil
	}
	el := NewElement("iwxxm-us:" + name)
	sp := el.Add(NewElement("iwxxm-us:StatisticallyProcessedTemperature"))
	sp.Attr("period", t.Period)
	sp.Attr("type", statType)
	sp.Add(NewElement("iwxxm-us:value")).Attr("uom", "Cel").SetText(fmt.Sprintf("%.1f", t.Value))
	return el
}

// visuallyObservable bundles tstmvmt, obsc, lightning; emitted only if at
// least one of the three is present.
func (e *Encoder) visuallyObservable(rec *record.Record) *Element {
	if rec.TstmMvmt == nil && rec.Obsc == nil && rec.Lightning == nil {
		return nil
	}
	wrap := NewElement("iwxxm-us:visuallyObservablePhenomena")
	if rec.TstmMvmt != nil {
		wrap.Add(convectiveLocation("thunderstormMovement", rec.TstmMvmt))
	}
	if rec.Obsc != nil {
		el := NewElement("iwxxm-us:obscuration")
		el.Add(NewElement("iwxxm-us:phenomenon")).SetText(rec.Obsc.Phenomenon)
		el.Add(NewElement("iwxxm-us:skyCondition")).SetText(rec.Obsc.Sky)
		wrap.Add(el)
	}
	if rec.Lightning != nil {
		wrap.Add(convectiveLocation("lightning", rec.Lightning))
	}
	return wrap
}

func convectiveLocation(name string, c *record.ConvectiveLocation) *Element {
	el := NewElement("iwxxm-us:" + name)
	el.AttrIf("frequency", c.Frequency)
	el.AttrIf("type", c.Types)
	el.Add(locationBucket("location", c.Locations))
	if c.Movement != nil {
		el.Add(locationBucket("movement", *c.Movement))
	}
	return el
}

func locationBucket(name string, loc record.Locations) *Element {
	el := NewElement("iwxxm-us:" + name)
	appendSectors(el, "overhead", loc.OHD)
	appendSectors(el, "vicinity", loc.VC)
	appendSectors(el, "distant", loc.DSNT)
	appendSectors(el, "atStation", loc.ATSTN)
	return el
}

func appendSectors(parent *Element, bucket string, arcs []record.Arc) {
	for _, a := range arcs {
		ccw := a.CCW
		if ccw > a.CW {
			ccw -= 360
		}
		sec := NewElement("iwxxm-us:sector")
		sec.Attr("bucket", bucket)
		sec.Add(NewElement("iwxxm-us:ccw")).Attr("uom", "deg").SetText(fmt.Sprintf("%.1f", ccw))
		sec.Add(NewElement("iwxxm-us:cw")).Attr("uom", "deg").SetText(fmt.Sprintf("%.1f", a.CW))
		parent.Add(sec)
	}
}

// secondLocationBundle bundles cig2ndlocation, vis2ndlocation.
func secondLocationBundle(rec *record.Record) *Element {
	if rec.Cig2ndLoc == nil && rec.Vis2ndLoc == nil {
		return nil
	}
	wrap := NewElement("iwxxm-us:observedPropertyAtSecondLocation")
	if rec.Cig2ndLoc != nil {
		el := NewElement("iwxxm-us:cig2ndLocation")
		el.Add(NewElement("iwxxm-us:value")).Attr("uom", "[ft_i]").SetText(fmt.Sprintf("%d", rec.Cig2ndLoc.Value))
		el.Add(NewElement("iwxxm-us:location")).SetText(rec.Cig2ndLoc.Location)
		wrap.Add(el)
	}
	if rec.Vis2ndLoc != nil {
		el := NewElement("iwxxm-us:vis2ndLocation")
		el.Add(NewElement("iwxxm-us:value")).Attr("uom", "m").SetText(fmt.Sprintf("%.1f", toMetres(rec.Vis2ndLoc.Value, rec.Vis2ndLoc.UOM)))
		el.Add(NewElement("iwxxm-us:location")).SetText(rec.Vis2ndLoc.Location)
		wrap.Add(el)
	}
	return wrap
}

// variationsBundle bundles twrvsby, vcig, vvis, sectorvis, vsky,
// pcpnhist, wshft, pkwnd, vrbrvr.
func (e *Encoder) variationsBundle(rec *record.Record) *Element {
	if rec.TwrVsby == nil && rec.VCig == nil && rec.VVis == nil && rec.SectorVis == nil &&
		rec.VSky == nil && rec.PcpnHist == nil && rec.WindShift == nil && rec.PeakWind == nil && rec.VrbRVR == nil {
		return nil
	}
	wrap := NewElement("iwxxm-us:variationsInObservedProperties")
	if rec.TwrVsby != nil {
		el := NewElement("iwxxm-us:towerVisibility")
		el.Attr("uom", "m")
		el.SetText(fmt.Sprintf("%.1f", toMetres(rec.TwrVsby.Value, rec.TwrVsby.UOM)))
		wrap.Add(el)
	}
	if rec.VCig != nil {
		el := NewElement("iwxxm-us:variableCeiling")
		el.Add(NewElement("iwxxm-us:lo")).Attr("uom", "[ft_i]").SetText(fmt.Sprintf("%d", rec.VCig.Lo))
		el.Add(NewElement("iwxxm-us:hi")).Attr("uom", "[ft_i]").SetText(fmt.Sprintf("%d", rec.VCig.Hi))
		wrap.Add(el)
	}
	if rec.VVis != nil {
		el := NewElement("iwxxm-us:variableVisibility")
		el.Add(NewElement("iwxxm-us:lo")).Attr("uom", "m").SetText(fmt.Sprintf("%.1f", toMetres(rec.VVis.Lo, rec.VVis.UOM)))
		el.Add(NewElement("iwxxm-us:hi")).Attr("uom", "m").SetText(fmt.Sprintf("%.1f", toMetres(rec.VVis.Hi, rec.VVis.UOM)))
		wrap.Add(el)
	}
	if rec.SectorVis != nil {
		el := NewElement("iwxxm-us:sectorVisibility")
		el.Add(NewElement("iwxxm-us:value")).Attr("uom", "m").SetText(fmt.Sprintf("%.1f", toMetres(rec.SectorVis.Value, rec.SectorVis.UOM)))
		dir := el.Add(NewElement("iwxxm-us:direction"))
		dir.Add(NewElement("iwxxm-us:ccw")).SetText(fmt.Sprintf("%.1f", rec.SectorVis.Direction.CCW))
		dir.Add(NewElement("iwxxm-us:cw")).SetText(fmt.Sprintf("%.1f", rec.SectorVis.Direction.CW))
		wrap.Add(el)
	}
	if rec.VSky != nil {
		el := NewElement("iwxxm-us:variableSkyCondition")
		el.Add(NewElement("iwxxm-us:height")).Attr("uom", "[ft_i]").SetText(fmt.Sprintf("%d", rec.VSky.Height*100))
		el.Add(NewElement("iwxxm-us:cover1")).SetText(rec.VSky.Cover1)
		el.Add(NewElement("iwxxm-us:cover2")).SetText(rec.VSky.Cover2)
		wrap.Add(el)
	}
	if rec.PcpnHist != nil {
		el := NewElement("iwxxm-us:precipitationHistory")
		for _, ev := range rec.PcpnHist.Events {
			e := el.Add(NewElement("iwxxm-us:event"))
			e.Attr("kind", ev.Kind)
			e.SetText(fmt.Sprintf("%d", ev.Epoch))
		}
		wrap.Add(el)
	}
	if rec.WindShift != nil {
		el := NewElement("iwxxm-us:windShift")
		el.Attr("frontalPassage", boolStr(rec.WindShift.FROPA))
		el.SetText(fmt.Sprintf("%d", rec.WindShift.Epoch))
		wrap.Add(el)
	}
	if rec.PeakWind != nil {
		el := NewElement("iwxxm-us:peakWind")
		el.Add(NewElement("iwxxm-us:direction")).Attr("uom", "deg").SetText(fmt.Sprintf("%d", rec.PeakWind.Direction))
		el.Add(NewElement("iwxxm-us:speed")).Attr("uom", "km/h").SetText(fmt.Sprintf("%.3f", knotsToKmh(float64(rec.PeakWind.Speed))))
		el.Add(NewElement("iwxxm-us:time")).SetText(fmt.Sprintf("%d", rec.PeakWind.Epoch))
		wrap.Add(el)
	}
	if rec.VrbRVR != nil {
		el := NewElement("iwxxm-us:variableRVR")
		el.Add(NewElement("iwxxm-us:lo")).Attr("uom", "m").SetText(fmt.Sprintf("%.1f", feetToMetres(atofSafe(rec.VrbRVR.Lo))))
		el.Add(NewElement("iwxxm-us:hi")).Attr("uom", "m").SetText(fmt.Sprintf("%.1f", feetToMetres(atofSafe(rec.VrbRVR.Hi))))
		wrap.Add(el)
	}
	return wrap
}
