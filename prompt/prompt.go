// Package prompt reads operator input from a terminal and keeps asking until
// the answer satisfies the field rule. Invalid answers never reach the caller;
// only a closed or broken input stream is returned as an error.
package prompt

import (
	"HealthHubTerminal/util"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	now func() time.Time
}

type Option func(*Prompter)

// WithClock sets the source of "today" used by Date.
func WithClock(now func() time.Time) Option {
	return func(p *Prompter) {
		p.now = now
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Prompter) Out() io.Writer {
	return p.out
}

func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) readLine(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) String(msg string) (string, error) {
	for {
		line, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		val := strings.TrimSpace(line)
		if util.ValidateVar(val, "required") == nil {
			return val, nil
		}
		p.Println(util.INPUT_CANNOT_BE_EMPTY)
	}
}

func (p *Prompter) Age(msg string) (int, error) {
	for {
		line, err := p.readLine(msg)
		if err != nil {
			return 0, err
		}
		age, err := strconv.Atoi(strings.TrimSpace(line))
		if errors.Is(err, strconv.ErrRange) {
			p.Println(util.AGE_OUT_OF_RANGE)
			continue
		}
		if err != nil {
			p.Println(util.ENTER_VALID_AGE)
			continue
		}
		if util.ValidateVar(age, fmt.Sprintf("min=%d,max=%d", util.MIN_AGE, util.MAX_AGE)) != nil {
			p.Println(util.AGE_OUT_OF_RANGE)
			continue
		}
		return age, nil
	}
}

func (p *Prompter) Gender(msg string) (string, error) {
	for {
		line, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		gender := strings.ToLower(strings.TrimSpace(line))
		if util.ValidateVar(gender, "oneof=m f") != nil {
			p.Println(util.ENTER_M_OR_F)
			continue
		}
		if gender == "m" {
			return util.GENDER_MALE, nil
		}
		return util.GENDER_FEMALE, nil
	}
}

func (p *Prompter) Mobile(msg string) (string, error) {
	for {
		line, err := p.readLine(msg)
		if err != nil {
			return "", err
		}
		mobile := strings.TrimSpace(line)
		if util.ValidateVar(mobile, "mobile") == nil {
			return mobile, nil
		}
		p.Println(util.INVALID_MOBILE)
	}
}

// Date accepts YYYY-MM-DD no later than today in the clock's location.
func (p *Prompter) Date(msg string) (time.Time, error) {
	for {
		val, err := p.String(msg)
		if err != nil {
			return time.Time{}, err
		}
		today := p.now()
		date, err := time.ParseInLocation(util.DATE_LAYOUT, val, today.Location())
		if err != nil {
			p.Println(util.INVALID_DATE_FORMAT)
			continue
		}
		y, m, d := today.Date()
		if date.After(time.Date(y, m, d, 0, 0, 0, 0, today.Location())) {
			p.Println(util.FUTURE_DATE_NOT_ALLOWED)
			continue
		}
		return date, nil
	}
}

// Choice reads a menu selection in [1, limit].
func (p *Prompter) Choice(limit int) (int, error) {
	for {
		line, err := p.readLine("Select No : ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		// an integer too wide for int is still a number, just out of range
		if errors.Is(err, strconv.ErrRange) {
			p.Println(fmt.Sprintf(util.ENTER_NUMBER_BETWEEN, limit))
			continue
		}
		if err != nil {
			p.Println(util.ENTER_VALID_NUMBER)
			continue
		}
		if util.ValidateVar(choice, fmt.Sprintf("min=1,max=%d", limit)) != nil {
			p.Println(fmt.Sprintf(util.ENTER_NUMBER_BETWEEN, limit))
			continue
		}
		return choice, nil
	}
}
