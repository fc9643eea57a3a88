package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/medicapp-cli/internal/domain"
	"github.com/bnema/medicapp-cli/internal/ports"
)

// linePrompter asks the admission questions on a line-based terminal.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
	// answer, when set, replies to the call offer without asking.
	answer *bool
	// callDuration bounds the call when input is closed and nobody can
	// press Enter.
	callDuration time.Duration
	// beforeAsk runs before anything is printed, e.g. to hide a spinner.
	beforeAsk func()
}

var _ ports.Prompter = (*linePrompter)(nil)

func newLinePrompter(in io.Reader, out io.Writer, callDuration time.Duration) *linePrompter {
	return &linePrompter{
		in:           bufio.NewReader(in),
		out:          out,
		callDuration: callDuration,
		beforeAsk:    func() {},
	}
}

func (p *linePrompter) ConfirmCall(ctx context.Context, room domain.Room) (bool, error) {
	p.beforeAsk()
	caller := room.PartnerName(domain.RolePatient)

	if p.answer != nil {
		verb := "declining"
		if *p.answer {
			verb = "joining"
		}
		_, _ = fmt.Fprintf(p.out, "%s is calling, %s.\n", caller, verb)
		return *p.answer, nil
	}

	_, _ = fmt.Fprintf(p.out, "%s is calling. Join the video call? [Y/n] ", caller)
	line, err := p.readLine(ctx)
	if errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(p.out)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *linePrompter) AwaitCallEnd(ctx context.Context, _ domain.Room) error {
	p.beforeAsk()
	_, _ = fmt.Fprintln(p.out, "Press Enter when the call is over.")

	_, err := p.readLine(ctx)
	if !errors.Is(err, io.EOF) {
		return err
	}

	timer := time.NewTimer(p.callDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// askRating reads a 1-5 rating and an optional comment. ok is false when
// the user skipped it or input is closed.
func (p *linePrompter) askRating(ctx context.Context, doctor string) (rating int, comment string, ok bool, err error) {
	p.beforeAsk()
	for {
		_, _ = fmt.Fprintf(p.out, "Rate %s from %d to %d (Enter to skip): ", doctor, domain.MinRating, domain.MaxRating)
		line, err := p.readLine(ctx)
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return 0, "", false, nil
		}
		if err != nil {
			return 0, "", false, err
		}
		if line == "" {
			return 0, "", false, nil
		}

		if _, scanErr := fmt.Sscanf(line, "%d", &rating); scanErr == nil && rating >= domain.MinRating && rating <= domain.MaxRating {
			break
		}
		_, _ = fmt.Fprintln(p.out, domain.ErrInvalidRating.Error()+".")
	}

	_, _ = fmt.Fprint(p.out, "Comment (optional): ")
	comment, err = p.readLine(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, "", false, err
	}

	return rating, comment, true, nil
}

type lineResult struct {
	line string
	err  error
}

// readLine returns the next trimmed line. A final line without newline is
// returned with a nil error; io.EOF means nothing was left.
func (p *linePrompter) readLine(ctx context.Context) (string, error) {
	result := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		result <- lineResult{line: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-result:
		return r.line, r.err
	}
}
