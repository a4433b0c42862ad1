package partition

import "runtime"

// Sizing holds the fixed inputs of the pool sizing policy.
// UserLimit <= 0 means "unlimited"; Cores <= 0 means runtime.NumCPU().
type Sizing struct {
	UserLimit int
	Cores     int
}

// DefaultSizing returns an unlimited policy bound to the current machine.
func DefaultSizing() Sizing {
	return Sizing{Cores: runtime.NumCPU()}
}

// For returns the pool size for a rows×cols grid under s.
func (s Sizing) For(rows, cols int) int {
	cores := s.Cores
	if cores <= 0 {
		cores = runtime.NumCPU()
	}

	return Size(rows*cols, s.UserLimit, cores)
}

// Size computes how many partition locks a grid of cellCount cells should get.
//
// Implementation:
//   - Stage 1: with a positive userLimit that exceeds 2*cores on a grid larger
//     than 2*cores, scale min(userLimit, cellCount) down by the core count twice;
//     otherwise take min(userLimit, cellCount).
//   - Stage 2: without a limit, take min(2*cores+1, cellCount).
//   - Stage 3: clamp to >= 1 and bump even results to the next odd number.
//
// An odd N keeps (row*cols+col) mod N from lining up with even column counts,
// which would otherwise put whole columns on one lock.
//
// Complexity: O(1).
func Size(cellCount, userLimit, cores int) int {
	if cores < 1 {
		cores = 1
	}

	var desired int
	if userLimit > 0 {
		if userLimit > 2*cores && cellCount > 2*cores {
			m := min(userLimit, cellCount)
			desired = ((m / cores) + cores) / cores
		} else {
			desired = min(userLimit, cellCount)
		}
	} else {
		desired = min(2*cores+1, cellCount)
	}

	desired = max(1, desired)
	if desired%2 == 0 {
		desired++
	}

	return desired
}
