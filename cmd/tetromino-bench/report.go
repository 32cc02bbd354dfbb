package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	GameLimit int
	Seed      uint64

	// Results
	Games          int
	Lines          int
	TotalTicks     int64
	TotalTime      time.Duration
	Scores         ScoreStats
	TickTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Add(sample time.Duration) {
	s.Samples = append(s.Samples, sample)
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type ScoreStats struct {
	Max     int
	Mean    float64
	Median  int
	Samples []int
}

func (s *ScoreStats) Add(score int) {
	s.Samples = append(s.Samples, score)
}

func (s *ScoreStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total int
	for _, score := range sorted {
		total += score
	}
	s.Max = sorted[len(sorted)-1]
	s.Median = sorted[len(sorted)/2]
	s.Mean = float64(total) / float64(len(sorted))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetromino Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Game Limit:** {{if .GameLimit}}{{.GameLimit}}{{else}}none{{end}}
- **Seed:** {{.Seed}}

## Games
- **Finished Games:** {{.Games}}
- **Lines Cleared:** {{.Lines}}
- **Score:** max {{.Scores.Max}}, median {{.Scores.Median}}, mean {{printf "%.1f" .Scores.Mean}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Ticks per Second:** {{rate .TotalTicks .TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"rate": func(n int64, d time.Duration) string {
			if d <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.0f", float64(n)/d.Seconds())
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
