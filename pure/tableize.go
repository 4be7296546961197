package pure

// TableizeI1O1 returns a memoised pureFn keeping at most 2*maxTableSize results.
func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	memo := NewTable[I1, O1](maxTableSize)
	return func(i1 I1) O1 {
		v, ok := memo.Load(i1)
		if !ok {
			v = pureFn(i1)
			memo.Store(i1, v)
		}
		return v
	}
}
