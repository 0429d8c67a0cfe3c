package nibtrie

// nopLocker is the locking strategy for single-threaded tries: both
// variants of the engine run the same code, only the guard differs.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}
