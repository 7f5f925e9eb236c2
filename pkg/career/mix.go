package career

// DemandShare is how many cards carry one demand level and their share of
// all cards in percent.
type DemandShare struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// DemandMix is the demand level breakdown shown in the results overview.
type DemandMix struct {
	Total  int         `json:"total"`
	High   DemandShare `json:"high"`
	Medium DemandShare `json:"medium"`
	Low    DemandShare `json:"low"`
}

// DemandMixOf counts cards per demand level. Levels are expected to be
// normalized already; anything unrecognized counts as Medium. With no
// cards every percentage is 0.
func DemandMixOf(cards []JobCard) DemandMix {
	m := DemandMix{Total: len(cards)}
	for _, c := range cards {
		switch c.DemandLevel {
		case DemandHigh:
			m.High.Count++
		case DemandLow:
			m.Low.Count++
		default:
			m.Medium.Count++
		}
	}
	if m.Total > 0 {
		for _, s := range []*DemandShare{&m.High, &m.Medium, &m.Low} {
			s.Percent = float64(s.Count) * 100 / float64(m.Total)
		}
	}
	return m
}
