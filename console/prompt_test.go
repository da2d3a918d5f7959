package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/amortization-engine/console"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReadTerms_HappyPath(t *testing.T) {
	// GIVEN: Three valid lines
	var out bytes.Buffer
	p := console.New(strings.NewReader("1000\n12\n1\n"), &out, nil)

	// WHEN: Reading terms
	in, err := p.ReadTerms(context.Background())

	// THEN: Every field parses and each prompt was shown once
	require.NoError(t, err)
	assert.Equal(t, console.Input{Amount: 1000, Rate: 12, Years: 1}, in)
	assert.Equal(t, console.AmountPrompt+console.RatePrompt+console.TermPrompt, out.String())
}

func TestReadTerms_RepromptsUntilValid(t *testing.T) {
	// GIVEN: Bad values before each good one
	input := strings.Join([]string{
		"abc",     // not a number
		"0.00999", // below range
		" 250.50 ",
		"101",
		"5.5",
		"1.5",
		"0",
		"30",
	}, "\n") + "\n"
	var out bytes.Buffer
	p := console.New(strings.NewReader(input), &out, nil)

	// WHEN: Reading terms
	in, err := p.ReadTerms(context.Background())

	// THEN: The valid values win and each rejection names the range
	require.NoError(t, err)
	assert.Equal(t, console.Input{Amount: 250.5, Rate: 5.5, Years: 30}, in)

	transcript := out.String()
	assert.Equal(t, 3, strings.Count(transcript, console.AmountPrompt))
	assert.Equal(t, 2, strings.Count(transcript, console.RatePrompt))
	assert.Equal(t, 3, strings.Count(transcript, console.TermPrompt))
	assert.Equal(t, 2, strings.Count(transcript,
		"Please enter a positive value between 0.01 and 1000000000000. An invalid value was entered.\n"))
	assert.Equal(t, 1, strings.Count(transcript,
		"Please enter a positive value between 0.000001 and 100. An invalid value was entered.\n"))
	assert.Equal(t, 2, strings.Count(transcript,
		"Please enter a positive integer value between 1 and 1000000. An invalid value was entered.\n"))
}

func TestReadTerms_RejectsNaN(t *testing.T) {
	var out bytes.Buffer
	p := console.New(strings.NewReader("NaN\nInf\n10\n1\n1\n"), &out, nil)

	in, err := p.ReadTerms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10.0, in.Amount)
	assert.Equal(t, 2, strings.Count(out.String(), "An invalid value was entered."))
}

func TestReadTerms_LastLineWithoutNewline(t *testing.T) {
	p := console.New(strings.NewReader("1000\n12\n1"), &bytes.Buffer{}, nil)

	in, err := p.ReadTerms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, in.Years)
}

func TestReadTerms_EndOfInputAborts(t *testing.T) {
	// GIVEN: Input ends before the term is entered
	p := console.New(strings.NewReader("1000\n12\n"), &bytes.Buffer{}, nil)

	// WHEN: Reading terms
	in, err := p.ReadTerms(context.Background())

	// THEN: Aborted, nothing returned
	assert.ErrorIs(t, err, console.ErrInputAborted)
	assert.Equal(t, console.Input{}, in)
}

func TestReadTerms_ReadFailureAborts(t *testing.T) {
	p := console.New(failingReader{}, &bytes.Buffer{}, nil)

	_, err := p.ReadTerms(context.Background())
	assert.ErrorIs(t, err, console.ErrInputAborted)
	assert.Contains(t, err.Error(), "device gone")
}

func TestReadTerms_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	p := console.New(strings.NewReader("1000\n12\n1\n"), &out, nil)

	_, err := p.ReadTerms(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
