package jpegenc

var stdLuminanceQuant = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var stdChrominanceQuant = [64]int{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// QualityScaling converts a 0..100 quality rating into a percentage scale
// factor for the standard tables. Quality 50 leaves them unscaled.
func QualityScaling(quality int) int {
	if quality <= 0 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if quality < 50 {
		return 5000 / quality
	}
	return 200 - quality*2
}

// SetQuality installs the standard tables scaled for quality.
func (s *Settings) SetQuality(quality int, forceBaseline bool) {
	s.Quality = quality
	s.SetLinearQuality(QualityScaling(quality), forceBaseline)
}

// SetLinearQuality installs the standard tables scaled by scaleFactor percent.
func (s *Settings) SetLinearQuality(scaleFactor int, forceBaseline bool) {
	s.AddQuantTable(0, stdLuminanceQuant, scaleFactor, forceBaseline)
	s.AddQuantTable(1, stdChrominanceQuant, scaleFactor, forceBaseline)
}

// AddQuantTable scales basic by scaleFactor percent into slot. Values are
// kept within 1..32767, or 1..255 when forceBaseline is set.
func (s *Settings) AddQuantTable(slot int, basic [64]int, scaleFactor int, forceBaseline bool) {
	var t QuantTable
	for i, b := range basic {
		v := (b*scaleFactor + 50) / 100
		if v <= 0 {
			v = 1
		}
		if v > 32767 {
			v = 32767
		}
		if forceBaseline && v > 255 {
			v = 255
		}
		t[i] = uint16(v)
	}
	s.QuantTables[slot] = &t
}
