//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package report renders hashing reports as terminal tables.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// FileSize specifies a size in bytes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records timing samples and renders a throughput report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// Sample contains information about one hashed input.
type Sample struct {
	Label string
	Start time.Time
	End   time.Time
	Bytes uint64
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Throughput returns the sample throughput in bytes per second.
func (s *Sample) Throughput() float64 {
	d := s.Duration()
	if d <= 0 {
		return 0
	}
	return float64(s.Bytes) / d.Seconds()
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample ending now. The sample starts where the
// previous sample ended.
func (t *Timing) Sample(label string, bytes uint64) *Sample {
	return t.SampleAt(label, bytes, time.Now())
}

// SampleAt adds a timing sample ending at end.
func (t *Timing) SampleAt(label string, bytes uint64, end time.Time) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   end,
		Bytes: bytes,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the timing report to w.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	var bytes uint64

	for _, sample := range t.Samples {
		bytes += sample.Bytes

		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		if total > 0 {
			row.Column(fmt.Sprintf("%.2f%%",
				float64(duration)/float64(total)*100))
		} else {
			row.Column("")
		}
		row.Column(FileSize(sample.Bytes).String())
		row.Column(FileSize(sample.Throughput()).String() + "/s")
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FileSize(bytes).String()).SetFormat(tabulate.FmtBold)
	var rate float64
	if total > 0 {
		rate = float64(bytes) / total.Seconds()
	}
	row.Column(FileSize(rate).String() + "/s").SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
