// Package report renders simulation statistics as text or JSON.
package report

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/cory-johannsen/reelsim/internal/game/sim"
)

// FrequencyPlaces is the number of decimal places for per-spin frequencies.
const FrequencyPlaces = 6

var jsonAPI = jsoniter.Config{
	IndentionStep:          4,
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Combination is one (count, symbol) line of the report.
type Combination struct {
	Count     int             `json:"count"`
	Symbol    string          `json:"symbol"`
	Prizes    uint64          `json:"prizes"`
	Frequency decimal.Decimal `json:"frequency"`
}

// CountLine totals prizes for one run length.
type CountLine struct {
	Count     int             `json:"count"`
	Prizes    uint64          `json:"prizes"`
	Frequency decimal.Decimal `json:"frequency"`
}

// SymbolLine totals prizes for one symbol.
type SymbolLine struct {
	Symbol    string          `json:"symbol"`
	Prizes    uint64          `json:"prizes"`
	Frequency decimal.Decimal `json:"frequency"`
}

// Report is the serializable view of one simulation run.
type Report struct {
	RunID        string          `json:"run_id,omitempty"`
	Seed         uint64          `json:"seed"`
	Workers      int             `json:"workers"`
	ElapsedMS    int64           `json:"elapsed_ms"`
	Spins        uint64          `json:"spins"`
	WinningSpins uint64          `json:"winning_spins"`
	Prizes       uint64          `json:"prizes"`
	HitRate      decimal.Decimal `json:"hit_rate"`
	Combinations []Combination   `json:"combinations"`
	ByCount      []CountLine     `json:"by_count"`
	BySymbol     []SymbolLine    `json:"by_symbol"`

	elapsed time.Duration
}

// Build converts a simulation result into a Report. Lines are ordered by count,
// then symbol, and only non-zero entries appear.
//
// Precondition: result and result.Stats must be non-nil.
func Build(result *sim.Result, runID string) *Report {
	if result == nil || result.Stats == nil {
		panic("report: Build precondition violated: result and stats must be non-nil")
	}
	st := result.Stats
	r := &Report{
		RunID:        runID,
		Seed:         result.Seed,
		Workers:      result.Workers,
		ElapsedMS:    result.Elapsed.Milliseconds(),
		Spins:        st.Spins,
		WinningSpins: st.WinningSpins,
		Prizes:       st.Prizes,
		HitRate:      frequency(st.WinningSpins, st.Spins),
		Combinations: []Combination{},
		ByCount:      []CountLine{},
		BySymbol:     []SymbolLine{},
		elapsed:      result.Elapsed,
	}
	for _, c := range st.Combinations() {
		r.Combinations = append(r.Combinations, Combination{
			Count:     c.Count,
			Symbol:    c.Symbol.String(),
			Prizes:    c.Occurrences,
			Frequency: frequency(c.Occurrences, st.Spins),
		})
	}
	for _, c := range st.Counts() {
		r.ByCount = append(r.ByCount, CountLine{
			Count:     c.Count,
			Prizes:    c.Occurrences,
			Frequency: frequency(c.Occurrences, st.Spins),
		})
	}
	for _, s := range st.Symbols() {
		r.BySymbol = append(r.BySymbol, SymbolLine{
			Symbol:    s.Symbol.String(),
			Prizes:    s.Occurrences,
			Frequency: frequency(s.Occurrences, st.Spins),
		})
	}
	return r
}

// frequency returns n/spins rounded to FrequencyPlaces; zero when spins is zero.
func frequency(n, spins uint64) decimal.Decimal {
	if spins == 0 {
		return decimal.Zero
	}
	num := decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
	den := decimal.NewFromBigInt(new(big.Int).SetUint64(spins), 0)
	return num.DivRound(den, FrequencyPlaces)
}

// WriteText writes the human-readable report.
//
// Postcondition: Returns the first write error, if any.
func WriteText(w io.Writer, r *Report) error {
	tw := &textWriter{w: w}

	tw.printf("Simulation Results (%d spins):\n", r.Spins)
	tw.printf("Total games played: %d\n", r.Spins)
	tw.printf("Total prizes won: %d\n", r.Prizes)
	tw.printf("Winning spins: %s of %s (hit rate %s)\n",
		humanize.Comma(int64(r.WinningSpins)), humanize.Comma(int64(r.Spins)), fixed(r.HitRate))
	tw.printf("%s, %d workers, %s elapsed%s\n", r.seedString(), r.Workers, r.elapsedString(), r.throughput())

	tw.printf("\nPrize combinations (amount-of-a-kind symbol: count):\n")
	for _, c := range r.Combinations {
		tw.printf("  %d-of-a-kind %s: %d prizes (%s per spin)\n", c.Count, c.Symbol, c.Prizes, fixed(c.Frequency))
	}

	tw.printf("\nSummary statistics:\n")
	tw.printf("\nTotal prizes by amount:\n")
	for _, c := range r.ByCount {
		tw.printf("  %d-of-a-kind: %d prizes total (%s per spin)\n", c.Count, c.Prizes, fixed(c.Frequency))
	}

	tw.printf("\nTotal prizes by symbol:\n")
	for _, s := range r.BySymbol {
		tw.printf("  Symbol %s: %d prizes total (%s per spin)\n", s.Symbol, s.Prizes, fixed(s.Frequency))
	}
	return tw.err
}

// WriteJSON writes the report as a 4-space indented JSON document.
func WriteJSON(w io.Writer, r *Report) error {
	data, err := jsonAPI.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Write renders r in the named format, "text" or "json".
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case "text":
		return WriteText(w, r)
	case "json":
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// seedString names the replay seed; seeded runs never use seed 0.
func (r *Report) seedString() string {
	if r.Seed == 0 {
		return "Crypto source"
	}
	return fmt.Sprintf("Seed %d", r.Seed)
}

func (r *Report) elapsedString() string {
	return r.elapsed.Round(time.Millisecond).String()
}

func (r *Report) throughput() string {
	secs := r.elapsed.Seconds()
	if secs <= 0 || r.Spins == 0 {
		return ""
	}
	return fmt.Sprintf(", %s spins/s", humanize.Comma(int64(float64(r.Spins)/secs)))
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(FrequencyPlaces)
}

// textWriter remembers the first write error so callers check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
