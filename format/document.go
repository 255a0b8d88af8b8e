// Package format turns an encoded element tree into final output bytes:
// the XML declaration, optional pretty-printing, and an optional debug
// comment carrying the original and unparsed TAC text.
//
// Grounded on seabird-chat-seabird-nwwsio-plugin's go.mod dependency on
// github.com/go-xmlfmt/xmlfmt, the only XML pretty-printer in the
// retrieved pack; it replaces the Python xmlpp.pprint call in
// original_source/METARXMLEncoder.py's printXML.
package format

import (
	"fmt"
	"strings"

	"github.com/go-xmlfmt/xmlfmt"

	"github.com/mdoberfield/metar-iwxxm/encode"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// Options controls rendering of one document.
type Options struct {
	// Pretty re-indents the document with go-xmlfmt.
	Pretty bool
	// Debug embeds an ORIG_TAC/UNPARSED_TAC comment ahead of the root
	// element.
	Debug bool
}

// Render serializes an encoded document to a complete XML file, per
// spec.md §6: a UTF-8 declaration, the document body, and (with Debug
// set) a leading comment carrying the original and unparsed TAC text.
func Render(doc *encode.Document, opts Options) string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteByte('\n')
	if opts.Debug {
		b.WriteString(debugComment(doc))
		b.WriteByte('\n')
	}
	body := doc.Root.Render()
	if opts.Pretty {
		body = xmlfmt.FormatXML(body, "", "  ")
	}
	b.WriteString(body)
	return b.String()
}

func debugComment(doc *encode.Document) string {
	return fmt.Sprintf("<!-- ORIG_TAC='%s' UNPARSED_TAC='%s' -->",
		escapeComment(doc.OrigTAC), escapeComment(doc.Unparsed))
}

// escapeComment guards against a TAC or unparsed-text value that happens
// to contain "-->", which would otherwise terminate the comment early.
func escapeComment(s string) string {
	return strings.ReplaceAll(s, "-->", "- >")
}
