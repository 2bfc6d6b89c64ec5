package msglog

import "runtime"

/*
guard.go

The thread-safety guard. One reentrant lock serializes access to the
pallet, the time format, the sink and the physical terminal/file write
sequence, so the styled output of one message never interleaves with
another goroutine's message. Reentrancy lets a single logical operation
nest guarded calls (e.g. ConfigureLogFile warning through Warning) without
deadlocking itself.

The guard is disabled by default: without EnableThreadSafety the library
offers zero concurrency safety and multi-goroutine use is the caller's
risk. That is an explicit opt-in, never inferred.
*/

// EnableThreadSafety turns on the guard. Idempotent: enabling twice keeps
// the existing guard and succeeds.
func (l *Logger) EnableThreadSafety() error {
	l.safety.Store(true)
	return nil
}

// ThreadSafetyEnabled reports whether the guard is active.
func (l *Logger) ThreadSafetyEnabled() bool {
	return l.safety.Load()
}

// Lock acquires the guard for a caller-side critical section, so user
// code can bracket its own terminal writes against interleaving with the
// logger. Before EnableThreadSafety it is a no-op that reports a warning
// through the logger's own warning path.
func (l *Logger) Lock() {
	if !l.safety.Load() && !l.guard.heldByCaller() {
		l.Warning(internalContext, "Enable thread safety to access the logger recursive mutex.")
		return
	}
	l.guard.lock()
}

// Unlock releases one level of the guard. Same misuse warning as Lock
// when thread safety is off. A goroutine that took the lock while thread
// safety was enabled always gets to release it, even if Shutdown turned
// the flag off in between.
func (l *Logger) Unlock() {
	if !l.safety.Load() && !l.guard.heldByCaller() {
		l.Warning(internalContext, "Enable thread safety to access the logger recursive mutex.")
		return
	}
	l.guard.unlock()
}

// acquire/release bracket every internal operation on shared state. They
// collapse to no-ops while thread safety is disabled. Release never
// consults the flag: whether to unlock is decided by lock ownership, so
// a goroutine that locked (or parked on) the guard before Shutdown
// flipped the flag still releases what it took.
func (l *Logger) acquire() {
	if l.safety.Load() || l.guard.heldByCaller() {
		l.guard.lock()
	}
}

func (l *Logger) release() {
	l.guard.unlock()
}

// heldByCaller reports whether the calling goroutine owns the lock.
func (m *recursiveMutex) heldByCaller() bool {
	return m.owner.Load() == goid()
}

func (m *recursiveMutex) lock() {
	id := goid()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

// unlock by a goroutine that does not hold the lock is ignored.
func (m *recursiveMutex) unlock() {
	if m.owner.Load() != goid() {
		return
	}
	m.depth--
	if m.depth <= 0 {
		m.depth = 0
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

// goid extracts the current goroutine id from the runtime stack header
// ("goroutine 123 [running]: ..."). Goroutine ids start at 1, so zero is
// free to mean "unowned".
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for _, c := range buf[len("goroutine "):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
