package grid

import (
	"fmt"
	"image/color"
	"strings"
)

// namedColors covers the color names the CLI defaults use plus the common
// ones users reach for on the flags.
var namedColors = map[string]color.RGBA{
	"white":   {0xFF, 0xFF, 0xFF, 0xFF},
	"black":   {0x00, 0x00, 0x00, 0xFF},
	"yellow":  {0xFF, 0xFF, 0x00, 0xFF},
	"gold":    {0xFF, 0xD7, 0x00, 0xFF},
	"skyblue": {0x87, 0xCE, 0xEB, 0xFF},
	"red":     {0xFF, 0x00, 0x00, 0xFF},
	"green":   {0x00, 0x80, 0x00, 0xFF},
	"blue":    {0x00, 0x00, 0xFF, 0xFF},
	"gray":    {0x80, 0x80, 0x80, 0xFF},
	"grey":    {0x80, 0x80, 0x80, 0xFF},
}

// ParseColor accepts "#RRGGBB" hex or a known color name.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b uint8
		if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); n == 3 && err == nil {
			return color.RGBA{r, g, b, 0xFF}, nil
		}
	}

	return color.RGBA{}, fmt.Errorf("invalid color %q (use #RRGGBB or a color name)", s)
}
