package engine

import "testing"

func TestCalculateLockingDataFreshSpawnAirborne(t *testing.T) {
	cfg := DefaultConfig()
	events := eventMap{}
	next := ActivePiece{Shape: ShapeT, Orientation: OrientN, X: 3, Y: 20}

	ld := calculateLockingData(cfg, 1, events, EventSpawn, 0, nil, next, false)

	if ld.TouchesGround {
		t.Fatal("freshly spawned airborne piece should not touch ground")
	}
	if ld.LastTouchdown != nil {
		t.Fatal("freshly spawned airborne piece should have no touchdown recorded")
	}
	if ld.GroundTimeLeft != cfg.GroundTimeMax {
		t.Fatalf("GroundTimeLeft = %v, want the full budget %v", ld.GroundTimeLeft, cfg.GroundTimeMax)
	}
	if ld.LowestY != next.Y {
		t.Fatalf("LowestY = %d, want %d", ld.LowestY, next.Y)
	}
	if _, scheduled := events[EventLockTimer]; scheduled {
		t.Fatal("an airborne piece must not schedule a lock timer")
	}
}

func TestCalculateLockingDataFreshTouchdownSchedulesLockTimer(t *testing.T) {
	cfg := DefaultConfig()
	events := eventMap{}
	prev := &pieceData{
		Piece:   ActivePiece{Shape: ShapeT, Orientation: OrientN, X: 3, Y: 1},
		Locking: LockingData{TouchesGround: false, GroundTimeLeft: cfg.GroundTimeMax, LowestY: 1},
	}
	next := ActivePiece{Shape: ShapeT, Orientation: OrientN, X: 3, Y: 0}

	ld := calculateLockingData(cfg, 1, events, EventFall, 100, prev, next, true)

	if !ld.TouchesGround {
		t.Fatal("piece resting at a new lowest point should touch ground")
	}
	if ld.LastTouchdown == nil || *ld.LastTouchdown != 100 {
		t.Fatalf("LastTouchdown = %v, want 100", ld.LastTouchdown)
	}
	if ld.GroundTimeLeft != cfg.GroundTimeMax {
		t.Fatalf("a fresh touchdown should reset the ground budget, got %v", ld.GroundTimeLeft)
	}
	scheduled, ok := events[EventLockTimer]
	if !ok {
		t.Fatal("a fresh touchdown must schedule a lock timer")
	}
	if scheduled != 100+lockDelay(1) {
		t.Fatalf("LockTimer scheduled at %v, want %v", scheduled, 100+lockDelay(1))
	}
}

func TestCalculateLockingDataLiftoffCancelsLockTimer(t *testing.T) {
	cfg := DefaultConfig()
	events := eventMap{EventLockTimer: 600}
	touchdown := GameTime(100)
	prev := &pieceData{
		Piece:   ActivePiece{Shape: ShapeT, Orientation: OrientN, X: 3, Y: 0},
		Locking: LockingData{TouchesGround: true, LastTouchdown: &touchdown, GroundTimeLeft: cfg.GroundTimeMax, LowestY: 0},
	}
	next := ActivePiece{Shape: ShapeT, Orientation: OrientN, X: 3, Y: 1}

	ld := calculateLockingData(cfg, 1, events, EventRotate, 200, prev, next, false)

	if ld.TouchesGround {
		t.Fatal("a piece that rotated off the stack should no longer touch ground")
	}
	if ld.LastLiftoff == nil || *ld.LastLiftoff != 200 {
		t.Fatalf("LastLiftoff = %v, want 200", ld.LastLiftoff)
	}
	if _, scheduled := events[EventLockTimer]; scheduled {
		t.Fatal("lifting off should cancel the pending lock timer")
	}
}

func TestCalculateLockingDataGroundBudgetNeverExceedsMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GroundTimeMax = 1000
	events := eventMap{}
	touchdown := GameTime(0)
	lastLiftoff := GameTime(10)
	prev := &pieceData{
		Piece:   ActivePiece{Shape: ShapeT, Orientation: OrientN, X: 3, Y: 0},
		Locking: LockingData{TouchesGround: false, LastTouchdown: &touchdown, LastLiftoff: &lastLiftoff, GroundTimeLeft: 400, LowestY: 0},
	}
	next := ActivePiece{Shape: ShapeT, Orientation: OrientN, X: 3, Y: 0}

	ld := calculateLockingData(cfg, 1, events, EventFall, 20, prev, next, true)

	if ld.GroundTimeLeft > cfg.GroundTimeMax {
		t.Fatalf("GroundTimeLeft = %v, must never exceed GroundTimeMax = %v", ld.GroundTimeLeft, cfg.GroundTimeMax)
	}
}
