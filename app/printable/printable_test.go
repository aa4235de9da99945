package printable

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingPrinter struct{ n int }

func (p *countingPrinter) Print() { p.n++ }

func TestPrintsOnceAfterSuccessfulLoad(t *testing.T) {
	p := &countingPrinter{}
	loads := 0
	v := &View[[]string]{
		Load: func(ctx context.Context) ([]string, error) {
			loads++
			return []string{"101", "102"}, nil
		},
		Ready:   NonEmpty[string],
		Printer: p,
	}

	first := v.Run(context.Background())
	second := v.Run(context.Background())
	assert.True(t, first.Printed)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.n)
	assert.Equal(t, 1, loads)
}

func TestNeverPrintsOnError(t *testing.T) {
	p := &countingPrinter{}
	v := &View[[]string]{
		Load: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("backend down")
		},
		Ready:   NonEmpty[string],
		Printer: p,
	}

	r := v.Run(context.Background())
	v.Run(context.Background())
	assert.Error(t, r.Err)
	assert.False(t, r.Printed)
	assert.Zero(t, p.n)
}

func TestNotReadyDoesNotPrint(t *testing.T) {
	p := &countingPrinter{}
	v := &View[[]string]{
		Load:    func(ctx context.Context) ([]string, error) { return nil, nil },
		Ready:   NonEmpty[string],
		Printer: p,
	}

	r := v.Run(context.Background())
	assert.NoError(t, r.Err)
	assert.False(t, r.Ready)
	assert.Zero(t, p.n)
}

func TestPagePrinterScript(t *testing.T) {
	p := &PagePrinter{}
	assert.Empty(t, string(p.Script()))

	v := &View[int]{
		Load:    func(ctx context.Context) (int, error) { return 7, nil },
		Printer: p,
	}
	v.Run(context.Background())
	assert.True(t, p.Armed())
	assert.Contains(t, string(p.Script()), "window.print()")
}
