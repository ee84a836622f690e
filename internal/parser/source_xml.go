package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
)

// xmlSource turns an XML build file into engine events.
type xmlSource struct {
	file string
	dec  *xml.Decoder
}

func newXMLSource(file string, src []byte) *xmlSource {
	dec := xml.NewDecoder(bytes.NewReader(src))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	return &xmlSource{file: file, dec: dec}
}

func (s *xmlSource) next() (event, error) {
	for {
		line, column := s.dec.InputPos()
		loc := Location{File: s.file, Line: line, Column: column}

		tok, err := s.dec.Token()
		if errors.Is(err, io.EOF) {
			return event{}, io.EOF
		}
		if err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				loc = Location{File: s.file, Line: syntaxErr.Line}
			}
			return event{}, &ParseError{Message: err.Error(), Location: loc, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return event{kind: startEvent, name: t.Name.Local, attrs: xmlAttributes(t.Attr), loc: loc}, nil
		case xml.EndElement:
			return event{kind: endEvent, name: t.Name.Local, loc: loc}, nil
		case xml.CharData:
			return event{kind: textEvent, text: string(t), loc: loc}, nil
		default:
			// comments, processing instructions and directives carry no build data
			continue
		}
	}
}

func xmlAttributes(in []xml.Attr) Attributes {
	out := make(Attributes, 0, len(in))
	for _, a := range in {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, Attr{Name: a.Name.Local, Value: a.Value})
	}
	return out
}
