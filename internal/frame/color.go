package frame

// HSV is one LED's color state. All channels are 8-bit; arithmetic on them
// saturates rather than wraps, matching physical brightness limits.
type HSV struct {
	H, S, V uint8
}

// AddSat returns a+b clamped to 255.
func AddSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 0xFF {
		return 0xFF
	}
	return uint8(s)
}

// SubSat returns a-b floored at 0.
func SubSat(a, b uint8) uint8 {
	if b >= a {
		return 0
	}
	return a - b
}

// Scale8 attenuates v proportionally: v * scale / 255. Never brightens.
func Scale8(v, scale uint8) uint8 {
	return uint8(uint16(v) * uint16(scale) / 0xFF)
}

// Fade subtracts amount from V, floored at 0.
func (c HSV) Fade(amount uint8) HSV {
	c.V = SubSat(c.V, amount)
	return c
}

// Dim scales V proportionally by scale/255.
func (c HSV) Dim(scale uint8) HSV {
	c.V = Scale8(c.V, scale)
	return c
}

// RGB converts to 8-bit RGB. Hue wraps over the full byte range, six
// sectors of ~43 steps each.
func (c HSV) RGB() (r, g, b uint8) {
	if c.S == 0 {
		return c.V, c.V, c.V
	}
	region := c.H / 43
	rem := (uint16(c.H) - uint16(region)*43) * 6

	p := Scale8(c.V, 255-c.S)
	q := Scale8(c.V, 255-uint8(uint16(c.S)*rem/256))
	t := Scale8(c.V, 255-uint8(uint16(c.S)*(255-rem)/256))

	switch region {
	case 0:
		return c.V, t, p
	case 1:
		return q, c.V, p
	case 2:
		return p, c.V, t
	case 3:
		return p, q, c.V
	case 4:
		return t, p, c.V
	default:
		return c.V, p, q
	}
}
