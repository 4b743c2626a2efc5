package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	stringsCreatedTotal    atomic.Uint64
	stringsConflictsTotal  atomic.Uint64
	stringsDeletedTotal    atomic.Uint64
	stringsQueriesTotal    atomic.Uint64
	nlQueriesRejectedTotal atomic.Uint64

	analysisDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncStringsCreated increments the created counter.
func IncStringsCreated() {
	stringsCreatedTotal.Add(1)
}

// IncStringsConflicts increments the duplicate-submission counter.
func IncStringsConflicts() {
	stringsConflictsTotal.Add(1)
}

// IncStringsDeleted increments the deleted counter.
func IncStringsDeleted() {
	stringsDeletedTotal.Add(1)
}

// IncStringsQueries increments the list/filter counter.
func IncStringsQueries() {
	stringsQueriesTotal.Add(1)
}

// IncNLQueriesRejected increments the counter of natural-language queries
// that could not be translated.
func IncNLQueriesRejected() {
	nlQueriesRejectedTotal.Add(1)
}

// ObserveAnalysisDuration records how long computing properties took.
func ObserveAnalysisDuration(d time.Duration) {
	value := float64(d.Microseconds())
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "strings_created_total", "Total strings analyzed and stored", stringsCreatedTotal.Load())
	writeCounter(&buf, "strings_conflicts_total", "Total duplicate submissions rejected", stringsConflictsTotal.Load())
	writeCounter(&buf, "strings_deleted_total", "Total strings deleted", stringsDeletedTotal.Load())
	writeCounter(&buf, "strings_queries_total", "Total list and filter requests served", stringsQueriesTotal.Load())
	writeCounter(&buf, "nl_queries_rejected_total", "Total natural-language queries rejected", nlQueriesRejectedTotal.Load())
	writeHistogram(&buf, "analysis_duration_us", "Property computation duration in microseconds", analysisDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
