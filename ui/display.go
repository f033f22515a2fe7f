package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Printer writes to the terminal and pauses after each write so that a game between bots
// can be followed.
type Printer struct {
	sync.Mutex
	out   io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

func NewPrinter(out io.Writer, delay time.Duration) *Printer {
	return &Printer{out: out, delay: delay, sleep: time.Sleep}
}

// WithSleeper replaces the function used to pause.
func (p *Printer) WithSleeper(sleep func(time.Duration)) *Printer {
	p.sleep = sleep
	return p
}

func (p *Printer) Printfln(format string, args ...interface{}) {
	p.Println(fmt.Sprintf(format, args...))
}

func (p *Printer) Printlns(lines []string) {
	p.Println(strings.Join(lines, "\n"))
}

func (p *Printer) Println(args ...interface{}) {
	p.Print(fmt.Sprintln(args...))
}

// Print writes text as is. Empty text is neither written nor paced.
func (p *Printer) Print(text string) {
	if text == "" {
		return
	}
	p.Lock()
	_, _ = io.WriteString(p.out, text)
	p.Unlock()
	if p.delay > 0 {
		p.sleep(p.delay)
	}
}
