package engine

// pieceData pairs an active piece with its lock-delay bookkeeping;
// nil means no piece is currently in play.
type pieceData struct {
	Piece   ActivePiece
	Locking LockingData
}

func satSub(a, b GameTime) GameTime {
	if b >= a {
		return 0
	}
	return a - b
}

func minDuration(a, b GameTime) GameTime {
	if a < b {
		return a
	}
	return b
}

// calculateLockingData derives the next piece's ground-time
// bookkeeping from the previous piece (if any) and whether the piece
// touches the stack now. It is a direct branch on four cases:
// newly spawned and airborne, lifted off the ground, resting on the
// ground (the complex case, itself split by whether this is a fresh
// touchdown or a continuation), and unchanged while still airborne.
// It may also (re)schedule or cancel the LockTimer event in events.
func calculateLockingData(
	cfg GameConfig,
	level uint32,
	events eventMap,
	event Event,
	eventTime GameTime,
	prev *pieceData,
	next ActivePiece,
	touchesGround bool,
) LockingData {
	// [1] Newly spawned piece, airborne.
	if prev == nil && !touchesGround {
		liftoff := eventTime
		return LockingData{
			TouchesGround:  false,
			LastTouchdown:  nil,
			LastLiftoff:    &liftoff,
			GroundTimeLeft: cfg.GroundTimeMax,
			LowestY:        next.Y,
		}
	}
	// [2] Piece lifted off the ground.
	if prev != nil && !touchesGround && prev.Locking.TouchesGround {
		delete(events, EventLockTimer)
		liftoff := eventTime
		ld := prev.Locking
		ld.TouchesGround = false
		ld.LastLiftoff = &liftoff
		return ld
	}
	// [3] Piece is on the ground now.
	if touchesGround {
		var next_ LockingData
		resuming := prev != nil && next.Y >= prev.Locking.LowestY
		switch {
		case resuming && prev.Locking.TouchesGround:
			// Was already grounded; nothing changes.
			next_ = prev.Locking
		case resuming && prev.Locking.LastTouchdown != nil:
			lastLiftoff := *prev.Locking.LastLiftoff
			var touchdown GameTime
			var groundLeft GameTime
			if satSub(eventTime, lastLiftoff) <= 2*dropDelay(level) {
				touchdown = *prev.Locking.LastTouchdown
				groundLeft = prev.Locking.GroundTimeLeft
			} else {
				elapsed := satSub(lastLiftoff, *prev.Locking.LastTouchdown)
				touchdown = eventTime
				groundLeft = satSub(prev.Locking.GroundTimeLeft, elapsed)
			}
			next_ = LockingData{
				TouchesGround:  true,
				LastTouchdown:  &touchdown,
				LastLiftoff:    nil,
				GroundTimeLeft: groundLeft,
				LowestY:        prev.Locking.LowestY,
			}
		case resuming:
			// Was airborne with no prior touchdown recorded.
			touchdown := eventTime
			ld := prev.Locking
			ld.TouchesGround = true
			ld.LastTouchdown = &touchdown
			next_ = ld
		default:
			// Freshly landed piece, or one that reached a new lowest
			// point: locking data resets from scratch.
			touchdown := eventTime
			next_ = LockingData{
				TouchesGround:  true,
				LastTouchdown:  &touchdown,
				LastLiftoff:    nil,
				GroundTimeLeft: cfg.GroundTimeMax,
				LowestY:        next.Y,
			}
		}

		repositioned := prev != nil && prev.Piece != next
		moveRotate := event == EventRotate || event == EventMoveSlow || event == EventMoveFast
		_, hasLockTimer := events[EventLockTimer]
		if !hasLockTimer || (repositioned && moveRotate) {
			currentGroundTime := satSub(eventTime, *next_.LastTouchdown)
			remainingGroundTime := satSub(next_.GroundTimeLeft, currentGroundTime)
			events[EventLockTimer] = eventTime + minDuration(lockDelay(level), remainingGroundTime)
		}
		return next_
	}
	// [4] Still airborne, nothing changes.
	return prev.Locking
}
