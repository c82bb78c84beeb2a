package piechart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LabelFormat produces the text drawn at a slice's label anchor.
type LabelFormat func(s SliceGeometry) string

// PlainLabel returns the item label unchanged.
func PlainLabel(s SliceGeometry) string {
	return s.Item.Label
}

// PercentLabel returns a format that appends the slice share as a
// percentage with one decimal, using the number conventions of tag.
//
//	PercentLabel(language.English) // "A 25.0%"
//	PercentLabel(language.German)  // "A 25,0%"
func PercentLabel(tag language.Tag) LabelFormat {
	p := message.NewPrinter(tag)
	return func(s SliceGeometry) string {
		return p.Sprintf("%s %.1f%%", s.Item.Label, s.Share*100)
	}
}

