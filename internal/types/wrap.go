package types

import "strings"

// DescWidth is the column width descriptions are wrapped to before display.
const DescWidth = 20

// Wrap breaks s into lines of at most width runes. Words are kept intact
// when possible; a word longer than width is split across lines. Existing
// line breaks are preserved and the result never ends in a newline.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, w := range words {
			for len([]rune(w)) > width {
				r := []rune(w)
				if cur != "" {
					lines = append(lines, cur)
					cur = ""
				}
				lines = append(lines, string(r[:width]))
				w = string(r[width:])
			}
			switch {
			case cur == "":
				cur = w
			case len([]rune(cur))+1+len([]rune(w)) <= width:
				cur += " " + w
			default:
				lines = append(lines, cur)
				cur = w
			}
		}
		if cur != "" {
			lines = append(lines, cur)
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// WrapDescriptions rewraps every description reachable from u in place.
func (u *Unit) WrapDescriptions() {
	for i := range u.Perks {
		u.Perks[i].Desc = Wrap(u.Perks[i].Desc, DescWidth)
	}
	for i := range u.PerkChoice {
		u.PerkChoice[i].Desc = Wrap(u.PerkChoice[i].Desc, DescWidth)
	}
	for _, e := range u.Equipment {
		if e != nil {
			e.WrapDescription()
		}
	}
}

func (e *Equipment) WrapDescription() {
	e.Desc = Wrap(e.Desc, DescWidth)
}

// WrapDescriptions rewraps every description in the recording.
func (r *FightRecording) WrapDescriptions() {
	for i := range r.Snapshots {
		s := &r.Snapshots[i]
		for j := range s.Team {
			s.Team[j].WrapDescriptions()
		}
		for j := range s.Opponent {
			s.Opponent[j].WrapDescriptions()
		}
	}
}
