package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/sigpad"
)

// sampleInterval is the time step assumed for samples without a timestamp.
const sampleInterval = 16 * time.Millisecond

// stroke is one pen-down to pen-up sequence of samples.
type stroke []sigpad.Point

// parseStrokes reads pointer samples, one per line:
//
//	x y [t_ms]
//
// A blank line or the word "up" lifts the pen. Text after '#' is ignored.
// Timestamps are milliseconds from an arbitrary origin; a sample without
// one is placed sampleInterval after the previous sample.
func parseStrokes(r io.Reader) ([]stroke, error) {
	var (
		strokes []stroke
		cur     stroke
		last    time.Time
	)
	flush := func() {
		if len(cur) > 0 {
			strokes = append(strokes, cur)
			cur = nil
		}
	}

	origin := time.Unix(0, 0).UTC()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			flush()
			continue
		case len(fields) == 1 && strings.EqualFold(fields[0], "up"):
			flush()
			continue
		case len(fields) < 2 || len(fields) > 3:
			return nil, fmt.Errorf("line %d: want \"x y [t_ms]\", got %q", lineNo, strings.TrimSpace(line))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: x: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: y: %w", lineNo, err)
		}

		var at time.Time
		if len(fields) == 3 {
			ms, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: t: %w", lineNo, err)
			}
			at = origin.Add(time.Duration(ms * float64(time.Millisecond)))
		} else if last.IsZero() {
			at = origin
		} else {
			at = last.Add(sampleInterval)
		}
		last = at
		cur = append(cur, sigpad.PointAt(x, y, at))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	return strokes, nil
}

// replay feeds strokes to the pad in order.
func replay(pad *sigpad.Pad, strokes []stroke) error {
	for i, s := range strokes {
		if err := pad.BeginStroke(s[0]); err != nil {
			return fmt.Errorf("stroke %d: %w", i+1, err)
		}
		for j := 1; j < len(s)-1; j++ {
			if err := pad.AddPoint(s[j]); err != nil {
				return fmt.Errorf("stroke %d: %w", i+1, err)
			}
		}
		var err error
		if len(s) > 1 {
			err = pad.EndStroke(s[len(s)-1])
		} else {
			err = pad.EndStrokeHere()
		}
		if err != nil {
			return fmt.Errorf("stroke %d: %w", i+1, err)
		}
	}
	return nil
}

func countPoints(strokes []stroke) int {
	n := 0
	for _, s := range strokes {
		n += len(s)
	}
	return n
}
