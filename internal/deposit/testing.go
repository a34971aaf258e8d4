package deposit

// FailNextFinalize makes the next Finalize call on the in-memory store return
// the provided error before applying any mutation. Test helper for exercising
// the all-or-nothing contract.
func FailNextFinalize(s Store, err error) {
	if mem, ok := s.(*MemoryStore); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		mem.failNext = err
	}
}
