package engine

import "math/rand"

// Finish describes whether a game is still running and, if not, how
// it ended.
type Finish int

const (
	FinishPlaying Finish = iota
	FinishCompleted
	FinishGameOver
)

// GameState is everything about a running game except its
// configuration: the clock, the scheduled events, the board, the
// piece in play and its lock-delay bookkeeping, the upcoming queue,
// and the running stats a Gamemode limit or score is computed from.
type GameState struct {
	GameTime GameTime

	Finish         Finish
	GameOverReason GameOver

	Events         eventMap
	ButtonsPressed ButtonsPressed

	Board           *Board
	ActivePieceData *pieceData
	NextPieces      []Shape

	PiecesPlayed [ShapeCount]int
	LinesCleared []Line

	Level                   uint32
	Score                   uint32
	ConsecutiveLineClears   uint32
	BackToBackSpecialClears uint32
}

// Game is the full façade: configuration, state, and the piece source
// that feeds the next-pieces queue.
type Game struct {
	Config GameConfig
	State  GameState

	source *PieceSource
}

func newSource(cfg GameConfig, rng *rand.Rand) *PieceSource {
	switch cfg.PieceSourceKind {
	case SourceBag:
		return NewBagSource(rng, cfg.BagMultiplicity)
	case SourceRecency:
		return NewRecencySource(rng)
	case SourceBalanceRelative:
		return NewBalanceRelativeSource(rng)
	default:
		return NewUniformSource(rng)
	}
}

// New constructs a game ready to run: one Spawn event scheduled at
// time zero and the preview queue pre-filled.
func New(cfg GameConfig, rng *rand.Rand) *Game {
	source := newSource(cfg, rng)
	next := make([]Shape, 0, cfg.PreviewCount)
	for i := 0; i < cfg.PreviewCount; i++ {
		next = append(next, source.Next())
	}
	g := &Game{
		Config: cfg,
		source: source,
		State: GameState{
			Events:     eventMap{EventSpawn: 0},
			Board:      NewBoard(),
			NextPieces: next,
			Level:      cfg.Gamemode.StartLevel,
		},
	}
	return g
}

// NewWithGamemode builds a Game from the default config with only the
// gamemode swapped out, mirroring the reference engine's convenience
// constructor.
func NewWithGamemode(mode Gamemode, rng *rand.Rand) *Game {
	cfg := DefaultConfig()
	cfg.Gamemode = mode
	return New(cfg, rng)
}

// Update advances the game by processing every scheduled event up to
// targetTime, applying buttons (if non-nil) once input catches up to
// the event queue. It returns the feedback events produced in time
// order, or an error if the game has already finished or targetTime
// precedes the game's current clock.
func (g *Game) Update(buttons *ButtonsPressed, targetTime GameTime) ([]FeedbackEvent, error) {
	if g.State.Finish != FinishPlaying {
		return nil, ErrFinished
	}
	if targetTime < g.State.GameTime {
		return nil, ErrTimeRegress
	}
	var feedback []FeedbackEvent
	pending := buttons
	for {
		event, eventTime := g.State.Events.earliest()
		if eventTime > targetTime {
			g.State.GameTime = targetTime
			if pending == nil {
				break
			}
			if g.State.ActivePieceData != nil {
				handleInputEvents(g.State.Events, g.State.ButtonsPressed, *pending, targetTime)
			}
			g.State.ButtonsPressed = *pending
			pending = nil
			continue
		}
		delete(g.State.Events, event)
		produced, gameOver := g.handleEvent(event, eventTime)
		g.State.GameTime = eventTime
		if gameOver != nil {
			g.State.Finish = FinishGameOver
			g.State.GameOverReason = *gameOver
			break
		}
		feedback = append(feedback, produced...)
		if limit := g.Config.Gamemode.Limit; limit != nil && g.limitAchieved(*limit) {
			g.State.Finish = FinishCompleted
			break
		}
	}
	return feedback, nil
}

func (g *Game) limitAchieved(limit Stat) bool {
	switch limit.Kind {
	case StatLines:
		return int(limit.Count) <= len(g.State.LinesCleared)
	case StatLevel:
		return limit.Count <= g.State.Level
	case StatScore:
		return limit.Count <= g.State.Score
	case StatPieces:
		total := 0
		for _, c := range g.State.PiecesPlayed {
			total += c
		}
		return int(limit.Count) <= total
	default: // StatTime
		return limit.Time <= g.State.GameTime
	}
}

// handleEvent applies a single scheduled event, returning the
// feedback it produced and, if the game just ended in defeat, why.
func (g *Game) handleEvent(event Event, eventTime GameTime) ([]FeedbackEvent, *GameOver) {
	var feedback []FeedbackEvent
	prev := g.State.ActivePieceData
	var prevPiece *ActivePiece
	if prev != nil {
		prevPiece = &prev.Piece
	}
	var nextPiece *ActivePiece

	switch event {
	case EventSpawn:
		needed := 1 + cap0(g.Config.PreviewCount-len(g.State.NextPieces))
		for i := 0; i < needed; i++ {
			g.State.NextPieces = append(g.State.NextPieces, g.source.Next())
		}
		shape := g.State.NextPieces[0]
		g.State.NextPieces = g.State.NextPieces[1:]
		piece := newSpawnPiece(shape)
		if !piece.fits(g.State.Board) {
			reason := BlockOut
			return feedback, &reason
		}
		g.State.PiecesPlayed[shape]++
		g.State.Events[EventFall] = eventTime
		if g.State.ButtonsPressed[ButtonMoveLeft] || g.State.ButtonsPressed[ButtonMoveRight] {
			g.State.Events[EventMoveFast] = eventTime
		}
		nextPiece = &piece

	case EventRotate:
		piece := *prevPiece
		if g.State.Level >= Level20G {
			g.State.Events[EventFall] = eventTime
		}
		turns := 0
		if g.State.ButtonsPressed[ButtonRotateLeft] {
			turns--
		}
		if g.State.ButtonsPressed[ButtonRotateRight] {
			turns++
		}
		if g.State.ButtonsPressed[ButtonRotateAround] {
			turns += 2
		}
		if rotated, ok := rotate(g.Config.RotationSystem, piece, g.State.Board, turns); ok {
			nextPiece = &rotated
		} else {
			nextPiece = &piece
		}

	case EventMoveSlow, EventMoveFast:
		piece := *prevPiece
		if g.State.Level >= Level20G {
			g.State.Events[EventFall] = eventTime
		}
		var moveDelay GameTime
		if event == EventMoveSlow {
			moveDelay = g.Config.DelayedAutoShift
		} else {
			moveDelay = g.Config.AutoRepeatRate
		}
		g.State.Events[EventMoveFast] = eventTime + moveDelay
		dx := 1
		if g.State.ButtonsPressed[ButtonMoveLeft] {
			dx = -1
		}
		if moved, ok := piece.fitsAt(g.State.Board, dx, 0); ok {
			nextPiece = &moved
		} else {
			nextPiece = &piece
		}

	case EventFall, EventSoftDrop:
		piece := *prevPiece
		if g.State.Level >= Level20G {
			dropped := wellPiece(piece, g.State.Board)
			nextPiece = &dropped
		} else {
			delay := dropDelay(g.State.Level)
			if g.State.ButtonsPressed[ButtonDropSoft] {
				delay = durationDiv(delay, g.Config.SoftDropFactor)
			}
			if dropped, ok := piece.fitsAt(g.State.Board, 0, -1); ok {
				g.State.Events[EventFall] = eventTime + delay
				nextPiece = &dropped
			} else if event == EventSoftDrop {
				g.State.Events[EventLock] = eventTime
				nextPiece = &piece
			} else {
				g.State.Events[EventFall] = eventTime + delay
				nextPiece = &piece
			}
		}

	case EventHardDrop:
		piece := *prevPiece
		dropped := wellPiece(piece, g.State.Board)
		feedback = append(feedback, FeedbackEvent{
			Time: eventTime, Kind: FeedbackHardDrop,
			HardDropFrom: piece, HardDropTo: dropped,
		})
		g.State.Events[EventLockTimer] = eventTime + g.Config.HardDropDelay
		nextPiece = &dropped

	case EventLockTimer:
		g.State.Events[EventLock] = eventTime
		nextPiece = prevPiece

	case EventLock:
		piece := *prevPiece
		aboveSkyline := true
		for _, t := range piece.Tiles() {
			if t.Y < Skyline {
				aboveSkyline = false
				break
			}
		}
		if aboveSkyline {
			reason := LockOut
			return feedback, &reason
		}
		_, fitsBelow := piece.fitsAt(g.State.Board, 0, 1)
		spin := !fitsBelow
		g.State.Board.lock(piece)
		lines := g.State.Board.completeRows()
		if len(lines) > 0 {
			nTiles := 0
			lineSet := make(map[int]bool, len(lines))
			for _, y := range lines {
				lineSet[y] = true
			}
			for _, t := range piece.Tiles() {
				if lineSet[t.Y] {
					nTiles++
				}
			}
			perfectClear := g.State.Board.wouldBeEmptyAfterClearing(lines)
			g.State.ConsecutiveLineClears++
			special := len(lines) >= 4 || spin || perfectClear
			if special {
				g.State.BackToBackSpecialClears++
			} else {
				g.State.BackToBackSpecialClears = 0
			}
			spinMult, pcMult := 1, 1
			if spin {
				spinMult = 2
			}
			if perfectClear {
				pcMult = 10
			}
			scoreBonus := uint32(10*len(lines)*nTiles*spinMult*pcMult) * g.State.ConsecutiveLineClears
			g.State.Score += scoreBonus
			feedback = append(feedback, FeedbackEvent{
				Time: eventTime, Kind: FeedbackAccolade,
				Accolade: Accolade{
					ScoreBonus:   scoreBonus,
					Shape:        piece.Shape,
					Spin:         spin,
					LineClears:   uint32(len(lines)),
					PerfectClear: perfectClear,
					Combo:        g.State.ConsecutiveLineClears,
					Opportunity:  uint32(nTiles),
				},
			})
			feedback = append(feedback, FeedbackEvent{
				Time: eventTime, Kind: FeedbackLineClears,
				LinesCleared: lines, LineClearDelay: g.Config.LineClearDelay,
			})
		} else {
			g.State.ConsecutiveLineClears = 0
		}
		g.State.Events = eventMap{}
		if len(lines) > 0 {
			g.State.Events[EventLineClear] = eventTime + g.Config.LineClearDelay
		} else {
			g.State.Events[EventSpawn] = eventTime + g.Config.AppearanceDelay
		}
		feedback = append(feedback, FeedbackEvent{Time: eventTime, Kind: FeedbackPieceLocked, PieceLocked: piece})
		nextPiece = nil

	case EventLineClear:
		removed := g.State.Board.clearLines()
		g.State.LinesCleared = append(g.State.LinesCleared, removed...)
		if g.Config.Gamemode.IncrementLevel && len(g.State.LinesCleared)%10 == 0 {
			g.State.Level++
		}
		g.State.Events[EventSpawn] = eventTime + g.Config.AppearanceDelay
		nextPiece = nil
	}

	if nextPiece != nil {
		_, fitsBelow := nextPiece.fitsAt(g.State.Board, 0, -1)
		touchesGround := !fitsBelow
		locking := calculateLockingData(g.Config, g.State.Level, g.State.Events, event, eventTime, prev, *nextPiece, touchesGround)
		g.State.ActivePieceData = &pieceData{Piece: *nextPiece, Locking: locking}
	} else {
		g.State.ActivePieceData = nil
	}

	return feedback, nil
}

func cap0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func durationDiv(d GameTime, factor float64) GameTime {
	if factor <= 0 {
		return d
	}
	return GameTime(float64(d) / factor)
}
