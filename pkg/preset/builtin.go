package preset

import "github.com/matzehuels/steprepeat/pkg/units"

var builtins = []Preset{
	// ISO 216
	{Name: "A3", Kind: Document, Width: 297, Height: 420, Unit: units.Millimeter},
	{Name: "A4", Kind: Document, Width: 210, Height: 297, Unit: units.Millimeter},
	{Name: "A5", Kind: Document, Width: 148, Height: 210, Unit: units.Millimeter},
	{Name: "A6", Kind: Document, Width: 105, Height: 148, Unit: units.Millimeter},

	// press sheets with bleed room
	{Name: "SRA3", Kind: Document, Width: 320, Height: 450, Unit: units.Millimeter},
	{Name: "SRA3+", Kind: Document, Width: 330, Height: 488, Unit: units.Millimeter, Description: "oversized SRA3 used by digital presses"},

	// US
	{Name: "Letter", Kind: Document, Width: 8.5, Height: 11, Unit: units.Inch},
	{Name: "Legal", Kind: Document, Width: 8.5, Height: 14, Unit: units.Inch},
	{Name: "Tabloid", Kind: Document, Width: 11, Height: 17, Unit: units.Inch},
	{Name: "12x18", Kind: Document, Width: 12, Height: 18, Unit: units.Inch},

	{Name: "business-card-eu", Kind: Item, Width: 85, Height: 55, Unit: units.Millimeter},
	{Name: "business-card-us", Kind: Item, Width: 3.5, Height: 2, Unit: units.Inch},
	{Name: "business-card-90x50", Kind: Item, Width: 90, Height: 50, Unit: units.Millimeter},
	{Name: "postcard-a6", Kind: Item, Width: 148, Height: 105, Unit: units.Millimeter},
	{Name: "label-avery-l7163", Kind: Item, Width: 99.1, Height: 38.1, Unit: units.Millimeter},
	{Name: "sticker-50", Kind: Item, Width: 50, Height: 50, Unit: units.Millimeter},
}
