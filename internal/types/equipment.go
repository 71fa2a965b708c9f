package types

type SecondaryStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Stat is one of the two stat lines on a piece of equipment.
type Stat struct {
	Name      string         `json:"name"`
	Value     float64        `json:"value"`
	Secondary *SecondaryStat `json:"secondary,omitempty"`
}

type Equipment struct {
	Color      [3]float32 `json:"color"`
	RepairCost float64    `json:"repairCost"`
	Durability float64    `json:"durability"`
	Stat1      Stat       `json:"stat1"`
	Stat2      Stat       `json:"stat2"`
	Desc       string     `json:"desc"`
}

// Secondaries counts the optional secondary stat lines.
func (e *Equipment) Secondaries() int {
	n := 0
	if e.Stat1.Secondary != nil {
		n++
	}
	if e.Stat2.Secondary != nil {
		n++
	}
	return n
}
