package jumper

// IsLanding reports whether p lands on pl this tick: the player is falling,
// its bottom edge is inside [top, top+VelY+tolerance], and the boxes overlap
// horizontally. The VelY term covers the distance fallen in one tick so a
// fast player cannot pass through a platform between two ticks.
func IsLanding(p *Player, pl Platform, tolerance float64) bool {
	if p.VelY <= 0 {
		return false
	}

	pb := p.Bounds()
	top := pl.Y
	if pb.Bottom() < top || pb.Bottom() > top+p.VelY+tolerance {
		return false
	}

	return pb.OverlapsX(pl.Bounds())
}

// ResolveLandings applies every landing of p this tick and returns the
// platforms that are still in play along with the number of landings.
//
// Candidates are judged against the player as it was before any landing
// was applied. When several platforms qualify, all are processed in slice
// order and the last one decides the final snap position.
// The returned slice reuses the backing array of platforms.
func ResolveLandings(p *Player, platforms []Platform, tolerance float64) ([]Platform, int) {
	probe := *p
	landed := 0

	kept := platforms[:0]
	for _, pl := range platforms {
		if IsLanding(&probe, pl, tolerance) {
			landed++
			if !pl.OnLand(p) {
				continue
			}
		}
		kept = append(kept, pl)
	}

	return kept, landed
}
