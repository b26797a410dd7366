package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/matchodds/pkg/combinatorics"
	"github.com/limaJavier/matchodds/pkg/model"
	"github.com/samber/lo"
)

const MB float32 = 1024 * 1024

type BenchmarkResult struct {
	Positions    int
	Arrangements uint64
	Enumeration  int64 // Milliseconds to walk every arrangement
	Filter       int64 // Milliseconds to apply one constraint
	Report       int64 // Milliseconds to build one report
	Memory       float32
	Remaining    uint64
}

func main() {
	rangePtr := flag.String("range", "2-9", "Range of positions to benchmark, e.g. \"4-10\"")
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	from, to, err := parseRange(*rangePtr)
	if err != nil {
		log.Fatalf("invalid range: %v", err)
	}

	results := make([]BenchmarkResult, 0, to-from+1)
	for n := from; n <= to; n++ {
		fmt.Printf("Benchmarking %v positions (%v arrangements)\n", n, combinatorics.ArrangementCount(n))
		results = append(results, measure(n))
	}

	toCsv(results, *outFilePtr)
}

func measure(n int) BenchmarkResult {
	result := BenchmarkResult{Positions: n, Arrangements: combinatorics.ArrangementCount(n)}

	start := time.Now()
	generator := combinatorics.NewArrangementGenerator(n)
	for arrangement := generator.Next(); arrangement != nil; arrangement = generator.Next() {
	}
	result.Enumeration = time.Since(start).Milliseconds()

	engine := model.NewEngine(n)
	start = time.Now()
	result.Remaining = engine.KnownDoublon(n - 1)
	result.Filter = time.Since(start).Milliseconds()

	start = time.Now()
	engine.Report()
	result.Report = time.Since(start).Milliseconds()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	result.Memory = float32(memStats.HeapAlloc) / MB

	return result
}

func toCsv(results []BenchmarkResult, fileName string) {
	file, err := os.Create(fileName)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Positions", "Arrangements", "Enumeration(ms)", "Filter(ms)", "Report(ms)", "Memory(MB)", "Remaining"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, record := range lo.Map(results, func(result BenchmarkResult, _ int) []string { return toRecord(result) }) {
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		fmt.Sprintf("%d", result.Positions),
		fmt.Sprintf("%d", result.Arrangements),
		fmt.Sprintf("%d", result.Enumeration),
		fmt.Sprintf("%d", result.Filter),
		fmt.Sprintf("%d", result.Report),
		fmt.Sprintf("%.1f", result.Memory),
		fmt.Sprintf("%d", result.Remaining),
	}
}

// Parses "from-to" (or a single value) into a range of positions
func parseRange(rangeStr string) (from, to int, err error) {
	parts := strings.Split(rangeStr, "-")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("unexpected range format: %v", rangeStr)
	}

	bounds := make([]int, 0, len(parts))
	for _, part := range parts {
		bound, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, err
		}
		bounds = append(bounds, bound)
	}

	from, to = bounds[0], bounds[len(bounds)-1]
	if from < 2 || to > combinatorics.MaxPositions || from > to {
		return 0, 0, fmt.Errorf("positions must satisfy 2 <= from <= to <= %v: %v", combinatorics.MaxPositions, rangeStr)
	}
	return from, to, nil
}
