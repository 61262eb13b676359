package engine

// Options are read when a search starts. Hash is in megabytes.
type Options struct {
	Hash    int
	Threads int
	Seed    int64
	// ProgressMinNodes holds back progress reports of tiny iterations.
	ProgressMinNodes int

	NullMovePruning   bool
	LateMoveReduction bool
	CheckExtension    bool
	AspirationWindows bool
}

func NewOptions() Options {
	return Options{
		Hash:              16,
		Threads:           1,
		Seed:              1,
		NullMovePruning:   true,
		LateMoveReduction: true,
		CheckExtension:    true,
		AspirationWindows: true,
	}
}
