package model

// Layout is the raw dungeon description handed to NewDungeon. It mirrors
// the on-disk map record: room rectangles, door cells with a numeric kind,
// free-text notes and optional decoration lists.
type Layout struct {
	Rects   []Rect    `json:"rects"`
	Doors   []RawDoor `json:"doors"`
	Notes   []RawNote `json:"notes"`
	Columns []Point   `json:"columns,omitempty"`
	Water   []Point   `json:"water,omitempty"`
}

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type RawDoor struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Kind int `json:"type"`
}

type RawNote struct {
	Pos  Point  `json:"pos"`
	Text string `json:"text"`
}
