package placement

//go:generate go run github.com/dmarkham/enumer -type Level -trimprefix Level -json -text -yaml -output level.gen.go

// Level is a CEFR proficiency level. The platform assesses A1 through C1.
// The declaration order is the level order: A1 < A2 < B1 < B2 < C1.
type Level int

const (
	LevelA1 Level = iota
	LevelA2
	LevelB1
	LevelB2
	LevelC1
)
