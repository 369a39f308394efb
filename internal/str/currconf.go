//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool
	CacheDB       string // the gutenberg sqlite cache
	EdgeMaxWeight float64
	EdgeThreshold float64
	EpubBase      string
	LanguageID    int
	LogLevel      int
	MinDocFreq    int
	Mirror        string
	OutDir        string
	ProfileCPU    bool
	ProfileMEM    bool
	QueryLimit    int
	RandomSeed    int64
	TextDir       string
	TitleSim      float64
	TSNEIter      int
	TSNELearn     float64
	TSNEPerplex   float64
	TypeID        int
	WriteHTML     bool
	WriteParquet  bool
}
