package types

import (
	"strings"
	"testing"
)

func TestWrapKeepsWords(t *testing.T) {
	got := Wrap("deals extra damage against ranged units", 20)
	want := "deals extra damage\nagainst ranged units"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrapShortUnchanged(t *testing.T) {
	if got := Wrap("heals 5", 20); got != "heals 5" {
		t.Fatalf("short text changed: %q", got)
	}
}

func TestWrapSplitsLongWord(t *testing.T) {
	got := Wrap("aaaaaaaaaabbbbbbbbbbcc x", 10)
	want := "aaaaaaaaaa\nbbbbbbbbbb\ncc x"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrapNoLineExceedsWidth(t *testing.T) {
	s := Wrap("the quick brown fox jumps over the lazy dog and keeps on running far away", DescWidth)
	for _, line := range strings.Split(s, "\n") {
		if len(line) > DescWidth {
			t.Fatalf("line %q longer than %d", line, DescWidth)
		}
	}
	if strings.HasSuffix(s, "\n") {
		t.Fatalf("trailing newline in %q", s)
	}
}

func TestWrapDescriptionsReachesEquipment(t *testing.T) {
	u := Unit{
		Perks:      []Perk{{Desc: "gain armor whenever an ally dies"}},
		PerkChoice: []Perk{{Desc: "regenerate faster while standing still"}},
	}
	u.Equipment[2] = &Equipment{Desc: "a sturdy shield made of oak and iron\n"}
	u.WrapDescriptions()
	for _, d := range []string{u.Perks[0].Desc, u.PerkChoice[0].Desc, u.Equipment[2].Desc} {
		if !strings.Contains(d, "\n") {
			t.Fatalf("description not wrapped: %q", d)
		}
		if strings.HasSuffix(d, "\n") {
			t.Fatalf("trailing newline kept: %q", d)
		}
	}
}

func TestMoveOptionAllows(t *testing.T) {
	two := 2
	capped := MoveOption{Name: "cave", MaxGroupSize: &two}
	open := MoveOption{Name: "field"}
	if capped.Allows(0) || open.Allows(0) {
		t.Fatal("empty team must not move")
	}
	if !capped.Allows(2) || capped.Allows(3) {
		t.Fatal("group size cap not honoured")
	}
	if !open.Allows(10) {
		t.Fatal("uncapped option refused a team")
	}
}
