package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdoberfield/metar-iwxxm/encode"
)

func TestRenderIncludesDeclaration(t *testing.T) {
	doc := &encode.Document{Root: encode.NewElement("iwxxm:METAR").SetText("")}
	out := Render(doc, Options{})
	assert.Contains(t, out, xmlDeclaration)
	assert.Contains(t, out, "<iwxxm:METAR")
}

func TestRenderDebugCommentEmbedsTacText(t *testing.T) {
	doc := &encode.Document{
		Root:     encode.NewElement("iwxxm:METAR"),
		OrigTAC:  "METAR KDEN 121753Z 10SM CLR 20/10 A3000=",
		Unparsed: "X$X",
	}
	out := Render(doc, Options{Debug: true})
	assert.Contains(t, out, "ORIG_TAC='METAR KDEN 121753Z 10SM CLR 20/10 A3000='")
	assert.Contains(t, out, "UNPARSED_TAC='X$X'")
}

func TestRenderPrettyReindents(t *testing.T) {
	root := encode.NewElement("iwxxm:METAR")
	root.Add(encode.NewElement("iwxxm:child")).SetText("v")
	doc := &encode.Document{Root: root}

	flat := Render(doc, Options{Pretty: false})
	pretty := Render(doc, Options{Pretty: true})
	assert.NotEqual(t, flat, pretty)
	assert.Contains(t, pretty, "\n")
}
