//    twopoints
//    Copyright: K S Reyes 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND              = -1
	MSGCRIT              = 0
	MSGWARN              = 1
	MSGNOTE              = 2
	MSGFYI               = 3
	MSGPEEK              = 4
	MSGTMI               = 5
	TIMETRACKERMSGTHRESH = MSGFYI
	RESET                = "\033[0m"
	BLUE1                = "\033[38;5;38m"  // DeepSkyBlue2
	BLUE2                = "\033[38;5;68m"  // SteelBlue3
	CYAN2                = "\033[38;5;117m" // SkyBlue1
	GREEN                = "\033[38;5;70m"  // Chartreuse3
	RED1                 = "\033[38;5;160m" // Red3
	YELLOW1              = "\033[38;5;178m" // Gold3
	YELLOW2              = "\033[38;5;143m" // DarkKhaki
	GREY3                = "\033[38;5;242m" // Grey42
	WHITE                = "\033[38;5;255m" // Grey93
	BLINK                = "\033[30;0;5m"
	PANIC                = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
	PANIC2               = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"
)

// MessageMaker - the console voice of the whole program
type MessageMaker struct {
	BW     bool
	Caller string
	Lnc    time.Time
	LLvl   int
	LNm    string
	SNm    string
	Ver    string
	Win    bool
	Out    io.Writer
	Exit   func(int)
	mtx    sync.Mutex
}

// NewMessageMaker - a messenger that writes to stdout and exits via os.Exit
func NewMessageMaker(long string, short string, ver string, ll int, bw bool) *MessageMaker {
	return &MessageMaker{
		BW:   bw,
		Lnc:  time.Now(),
		LLvl: ll,
		LNm:  long,
		SNm:  short,
		Ver:  ver,
		Win:  runtime.GOOS == "windows",
		Out:  os.Stdout,
		Exit: os.Exit,
	}
}

// Clone - a copy of m that reports c as the caller in error banners
func (m *MessageMaker) Clone(c string) *MessageMaker {
	return &MessageMaker{
		BW:     m.BW,
		Caller: c,
		Lnc:    m.Lnc,
		LLvl:   m.LLvl,
		LNm:    m.LNm,
		SNm:    m.SNm,
		Ver:    m.Ver,
		Win:    m.Win,
		Out:    m.Out,
		Exit:   m.Exit,
	}
}

func (m *MessageMaker) printf(f string, a ...any) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	w := m.Out
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, f, a...)
}

func (m *MessageMaker) colorful() bool {
	return !m.Win && !m.BW
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[TPL] Dickens, Charles: 41 candidate works"

	if m.LLvl < threshold {
		return
	}

	if m.colorful() {
		var color string

		switch threshold {
		case MSGMAND:
			color = GREEN
		case MSGCRIT:
			color = RED1
		case MSGWARN:
			color = YELLOW2
		case MSGNOTE:
			color = YELLOW1
		case MSGFYI:
			color = CYAN2
		case MSGPEEK:
			color = BLUE2
		case MSGTMI:
			color = GREY3
		default:
			color = WHITE
		}
		m.printf("[%s%s%s] %s%s%s\n", YELLOW1, m.SNm, RESET, color, message, RESET)
	} else {
		m.printf("[%s] %s\n", m.SNm, message)
	}
}

// Color - color text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C7", "", "C0", "")

	if m.colorful() {
		swap = strings.NewReplacer("C1", YELLOW1, "C2", CYAN2, "C3", BLUE1, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C7", BLINK, "C0", RESET)
	}
	return swap.Replace(tagged)
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD    = "\033[1m"
		ITAL    = "\033[3m"
		UNDER   = "\033[4m"
		REVERSE = "\033[7m"
		STRIKE  = "\033[9m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S4", "", "S5", "", "S0", "")

	if m.colorful() {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S4", STRIKE, "S5", REVERSE,
			"S0", RESET)
	}
	return swap.Replace(tagged)
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// EF - report error and function
func (m *MessageMaker) EF(err error, fn string) {
	if err != nil {
		m.printf(PANIC2, YELLOW2, m.LNm, m.Ver, RESET, CYAN2, fn, RESET, RED1, RESET)
		m.printf("%v\n", err)
		m.ExitOrHang(1)
	}
}

// EC - report error and the caller recorded by Clone
func (m *MessageMaker) EC(err error) {
	if err == nil {
		return
	}
	if m.Caller == "" {
		m.printf(PANIC, YELLOW2, m.LNm, m.Ver, RESET, RED1, RESET)
	} else {
		m.printf(PANIC2, YELLOW2, m.LNm, m.Ver, RESET, CYAN2, m.Caller, RESET, RED1, RESET)
	}
	m.printf("%v\n", err)
	m.ExitOrHang(1)
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	exit := m.Exit
	if exit == nil {
		exit = os.Exit
	}
	if m.Win {
		m.Emit(fmt.Sprintf(HANG, m.LNm, SUSP), MSGMAND)
		time.Sleep(SUSP * time.Second)
	}
	exit(e)
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[B: 33.764s][Δ: 8.024s] fetched and cleaned 112 texts"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}

// Heap - report the current heap; with gc the collector runs first and both figures are reported
func (m *MessageMaker) Heap(fn string, gc bool) {
	// sample output: "[TPL] Embed() runtime.GC() 426M --> 408M"
	const (
		MSG  = "%s runtime.GC() %s --> %s"
		HEAP = "%s current heap: %s"
	)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	b := fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)

	if !gc {
		m.Emit(fmt.Sprintf(HEAP, fn, b), MSGPEEK)
		return
	}
	runtime.GC()
	runtime.ReadMemStats(&mem)
	a := fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)
	m.Emit(fmt.Sprintf(MSG, fn, b, a), MSGPEEK)
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MSGMAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, MSGCRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, MSGWARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, MSGNOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, MSGFYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, MSGPEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, MSGTMI) }
