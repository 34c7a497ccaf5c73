package engine

import "time"

// Stat is a single-dimensional measure of progress through a game,
// used both to cap a Gamemode (its limit) and to express what it
// scores players by (its optimize target).
type Stat struct {
	Kind  StatKind
	Time  GameTime
	Count uint32
}

// StatKind discriminates which field of a Stat is meaningful.
type StatKind int

const (
	StatTime StatKind = iota
	StatPieces
	StatLines
	StatLevel
	StatScore
)

func statTime(d GameTime) Stat  { return Stat{Kind: StatTime, Time: d} }
func statPieces(n uint32) Stat  { return Stat{Kind: StatPieces, Count: n} }
func statLines(n uint32) Stat   { return Stat{Kind: StatLines, Count: n} }
func statLevel(n uint32) Stat   { return Stat{Kind: StatLevel, Count: n} }
func statScore(n uint32) Stat   { return Stat{Kind: StatScore, Count: n} }

// Gamemode names a preset goal: where a game starts, whether its level
// climbs with lines cleared, what ends it, and what it is scored by.
type Gamemode struct {
	Name            string
	StartLevel      uint32
	IncrementLevel  bool
	Limit           *Stat
	Optimize        Stat
}

// Marathon climbs levels until it reaches the level after 20G
// (Level20G + 1), optimizing score.
func Marathon() Gamemode {
	limit := statLevel(Level20G + 1)
	return Gamemode{Name: "Marathon", StartLevel: 1, IncrementLevel: true, Limit: &limit, Optimize: statScore(0)}
}

// Sprint races to clear 40 lines as fast as possible.
func Sprint(startLevel uint32) Gamemode {
	limit := statLines(40)
	return Gamemode{Name: "Sprint", StartLevel: startLevel, IncrementLevel: false, Limit: &limit, Optimize: statTime(0)}
}

// Ultra maximizes lines cleared within a fixed three-minute window.
func Ultra(startLevel uint32) Gamemode {
	limit := statTime(3 * time.Minute)
	return Gamemode{Name: "Ultra", StartLevel: startLevel, IncrementLevel: false, Limit: &limit, Optimize: statLines(0)}
}

// Master starts at 20G and plays until 300 lines, optimizing score.
func Master() Gamemode {
	limit := statLines(300)
	return Gamemode{Name: "Master", StartLevel: Level20G, IncrementLevel: true, Limit: &limit, Optimize: statScore(0)}
}

// Endless never ends; it optimizes pieces played.
func Endless() Gamemode {
	return Gamemode{Name: "Endless", StartLevel: 1, IncrementLevel: true, Limit: nil, Optimize: statPieces(0)}
}

// GameConfig is every tunable a Game is constructed with. It is the
// YAML persistence boundary: a saved profile round-trips through this
// struct.
type GameConfig struct {
	Gamemode           Gamemode         `yaml:"gamemode"`
	RotationSystem     RotationSystem   `yaml:"rotation_system"`
	PieceSourceKind    PieceSourceKind  `yaml:"piece_source"`
	BagMultiplicity    int              `yaml:"bag_multiplicity"`
	PreviewCount       int              `yaml:"preview_count"`
	DelayedAutoShift   GameTime         `yaml:"delayed_auto_shift"`
	AutoRepeatRate     GameTime         `yaml:"auto_repeat_rate"`
	SoftDropFactor     float64          `yaml:"soft_drop_factor"`
	HardDropDelay      GameTime         `yaml:"hard_drop_delay"`
	GroundTimeMax      GameTime         `yaml:"ground_time_max"`
	LineClearDelay     GameTime         `yaml:"line_clear_delay"`
	AppearanceDelay    GameTime         `yaml:"appearance_delay"`
}

// DefaultConfig returns Marathon played with the Ocular rotation
// system and a recency-weighted piece source, matching the reference
// engine's out-of-the-box settings.
func DefaultConfig() GameConfig {
	return GameConfig{
		Gamemode:         Marathon(),
		RotationSystem:   RotationOcular,
		PieceSourceKind:  SourceRecency,
		BagMultiplicity:  1,
		PreviewCount:     1,
		DelayedAutoShift: 200 * time.Millisecond,
		AutoRepeatRate:   50 * time.Millisecond,
		SoftDropFactor:   15.0,
		HardDropDelay:    100 * time.Microsecond,
		GroundTimeMax:    2250 * time.Millisecond,
		LineClearDelay:   200 * time.Millisecond,
		AppearanceDelay:  100 * time.Millisecond,
	}
}

// DropDelay is the natural fall period at the given level, exported
// for the inspect CLI command; Game itself calls the unexported table
// directly.
func DropDelay(level uint32) GameTime { return dropDelay(level) }

// LockDelay is the lock-delay budget at the given level, exported for
// the same reason as DropDelay.
func LockDelay(level uint32) GameTime { return lockDelay(level) }

// dropDelay is the natural fall period at the given level; levels at
// or above Level20G are handled specially by the caller (instant
// well-drop) rather than by this table.
func dropDelay(level uint32) GameTime {
	switch level {
	case 1:
		return 1_000_000_000
	case 2:
		return 793_000_000
	case 3:
		return 617_796_000
	case 4:
		return 472_729_139
	case 5:
		return 355_196_928
	case 6:
		return 262_003_550
	case 7:
		return 189_677_245
	case 8:
		return 134_734_731
	case 9:
		return 93_882_249
	case 10:
		return 64_151_585
	case 11:
		return 42_976_258
	case 12:
		return 28_217_678
	case 13:
		return 18_153_329
	case 14:
		return 11_439_342
	case 15:
		return 7_058_616
	case 16:
		return 4_263_557
	case 17:
		return 2_520_084
	case 18:
		return 1_457_139
	default:
		return 823_907
	}
}

// lockDelay is how long a grounded piece may sit before locking,
// shrinking at higher levels.
func lockDelay(level uint32) GameTime {
	switch {
	case level <= 19:
		return 500 * time.Millisecond
	case level == 20:
		return 450 * time.Millisecond
	case level == 21:
		return 400 * time.Millisecond
	case level == 22:
		return 350 * time.Millisecond
	case level == 23:
		return 300 * time.Millisecond
	case level == 24:
		return 250 * time.Millisecond
	case level == 25:
		return 200 * time.Millisecond
	case level == 26:
		return 195 * time.Millisecond
	case level == 27:
		return 184 * time.Millisecond
	case level == 28:
		return 167 * time.Millisecond
	case level == 29:
		return 151 * time.Millisecond
	default:
		return 150 * time.Millisecond
	}
}
