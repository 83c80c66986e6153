package jpegenc

// SimpleProgression builds the standard progressive scan script for the
// current components. It must run after the colour space is final.
func (s *Settings) SimpleProgression() {
	n := len(s.Components)
	s.Scans = s.Scans[:0]

	if n == 3 && s.ColorSpace == ColorYCbCr {
		s.dcScans(n, 0, 1)
		s.scan(0, 1, 5, 0, 2)
		s.scan(2, 1, 63, 0, 1)
		s.scan(1, 1, 63, 0, 1)
		s.scan(0, 6, 63, 0, 2)
		s.scan(0, 1, 63, 2, 1)
		s.dcScans(n, 1, 0)
		s.scan(2, 1, 63, 1, 0)
		s.scan(1, 1, 63, 1, 0)
		s.scan(0, 1, 63, 1, 0)
		return
	}

	s.dcScans(n, 0, 1)
	s.eachScan(n, 1, 5, 0, 2)
	s.eachScan(n, 6, 63, 0, 2)
	s.eachScan(n, 1, 63, 2, 1)
	s.dcScans(n, 1, 0)
	s.eachScan(n, 1, 63, 1, 0)
}

func (s *Settings) scan(ci, ss, se, ah, al int) {
	s.Scans = append(s.Scans, Scan{Components: []int{ci}, Ss: ss, Se: se, Ah: ah, Al: al})
}

func (s *Settings) eachScan(n, ss, se, ah, al int) {
	for ci := 0; ci < n; ci++ {
		s.scan(ci, ss, se, ah, al)
	}
}

// dcScans interleaves the DC scan when the components fit in one scan.
func (s *Settings) dcScans(n, ah, al int) {
	if n > MaxCompsInScan {
		s.eachScan(n, 0, 0, ah, al)
		return
	}
	comps := make([]int, n)
	for ci := range comps {
		comps[ci] = ci
	}
	s.Scans = append(s.Scans, Scan{Components: comps, Ah: ah, Al: al})
}

// Progressive reports whether a scan script has been set.
func (s *Settings) Progressive() bool { return len(s.Scans) > 0 }
