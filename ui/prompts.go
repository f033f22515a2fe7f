package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/madans2984/uno/card"
	"github.com/madans2984/uno/card/color"
	"github.com/madans2984/uno/consts"
	"github.com/madans2984/uno/msg"
	"github.com/spf13/cast"
)

// Prompter asks questions on a Printer and reads the answers line by line. Invalid
// answers are reported and asked again; only closed input ends a prompt with an error.
type Prompter struct {
	reader  *bufio.Reader
	printer *Printer
}

func NewPrompter(in io.Reader, printer *Printer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), printer: printer}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", consts.ErrorsInputClosed)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) PromptString(message string) (string, error) {
	for {
		p.printer.Print(message)
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			p.printer.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (p *Prompter) PromptInteger(message string) (int, error) {
	for {
		input, err := p.PromptString(message)
		if err != nil {
			return 0, err
		}
		number, err := parseDecimal(input)
		if err != nil {
			p.printer.Println("Invalid number input")
			continue
		}
		return number, nil
	}
}

func (p *Prompter) PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := p.PromptInteger(message)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			p.printer.Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input, nil
	}
}

// PromptCardSelection asks for the 1-based position of a playable card and returns its
// 0-based hand index.
func (p *Prompter) PromptCardSelection(hand []*card.Card, legalMoves []int) (int, error) {
	message := msg.Message.CardSelection(hand, legalMoves)
	for {
		input, err := p.PromptString(message)
		if err != nil {
			return 0, err
		}
		position, err := parseDecimal(input)
		if err == nil && contains(legalMoves, position-1) {
			return position - 1, nil
		}
		p.printer.Print(msg.Message.NoCardAssigned(input))
	}
}

// PromptColor accepts a color initial or a color name.
func (p *Prompter) PromptColor() (color.Color, error) {
	message := msg.Message.ColorSelection()
	for {
		input, err := p.PromptString(message)
		if err != nil {
			return color.Wild, err
		}
		chosen, err := color.ByInitial(input)
		if err != nil {
			chosen, err = color.ByName(input)
		}
		if err != nil || !chosen.IsDeclarable() {
			p.printer.Print(msg.Message.UnknownColor(input))
			continue
		}
		return chosen, nil
	}
}

// parseDecimal reads input as a base 10 integer. Leading zeros do not switch to octal and
// hexadecimal prefixes are rejected.
func parseDecimal(input string) (int, error) {
	sign := ""
	if strings.HasPrefix(input, "-") || strings.HasPrefix(input, "+") {
		sign, input = input[:1], input[1:]
	}
	digits := strings.TrimLeft(input, "0")
	if digits == "" && input != "" {
		digits = "0"
	}
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("'%s%s' is not a decimal number", sign, input)
	}
	return cast.ToIntE(sign + digits)
}

func contains(indices []int, searched int) bool {
	for _, index := range indices {
		if index == searched {
			return true
		}
	}
	return false
}
