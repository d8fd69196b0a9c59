package meter

import (
	"context"
	"fmt"
	"time"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// Monitor prints periodic snapshots until completion, cancellation, or idle timeout.
func (m *Meter[T]) Monitor() {
	m.startTime = time.Now()
	ticker := m.currentTicker()
	if ticker == nil {
		ticker = time.NewTicker(defaultUpdateInterval)
		defer ticker.Stop()
	}

	for {
		select {
		case <-m.idleTimer.C:
			idleTimeout := m.idleTimeoutValue()
			fmt.Println()
			fmt.Print("\033[2K")
			fmt.Printf("Idled for %ds, shutting down...\n", int(idleTimeout.Seconds()))
			fmt.Println()
			m.printFinalProgress()
			m.cancelContext()
			return
		case <-m.ctx.Done():
			fmt.Println("Suite cancelled.")
			m.printFinalProgress()
			return
		case <-ticker.C:
			threshold, hasThreshold := m.thresholdFor(types.MetricBenchCaseErrorCount)
			if hasThreshold {
				completed := float64(m.GetMetricCount(types.MetricBenchCaseCompletedCount))
				errorCount := float64(m.GetMetricCount(types.MetricBenchCaseErrorCount))
				if completed > 0 {
					errRatio := (errorCount / completed) * 100
					if errRatio >= threshold {
						m.updateDisplay()
						fmt.Println()
						fmt.Printf("\nThreshold exceeded for bench case errors: %.2f%%\n", threshold)
						m.printFinalProgress()
						m.cancelContext()
						return
					}
				}
			}

			totalItems := m.totalItemsValue()
			if totalItems != 0 && m.casesDone() >= totalItems {
				m.updateDisplay()
				if m.GetMetricCount(types.MetricBenchCaseErrorCount) != 0 {
					fmt.Print("\033[2K")
					fmt.Printf("\nFinished with errors\n")
				} else {
					fmt.Print("\033[2K")
					fmt.Printf("\nCompleted all cases successfully!\n")
				}
				fmt.Println()

				m.printFinalProgress()
				m.cancelContext()
				return
			}

			m.updateDisplay()
		}
	}
}

// ReportData signals activity to reset the idle timer.
func (m *Meter[T]) ReportData() {
	select {
	case m.dataCh <- struct{}{}:
	default:
	}
}

// casesDone counts completed and skipped cases toward suite progress.
func (m *Meter[T]) casesDone() uint64 {
	return m.GetMetricCount(types.MetricBenchCaseCompletedCount) +
		m.GetMetricCount(types.MetricBenchCaseSkippedCount)
}

func (m *Meter[T]) cancelContext() {
	m.mu.Lock()
	cancel := m.cancel
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (m *Meter[T]) currentTicker() *time.Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticker
}

func (m *Meter[T]) idleTimeoutValue() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idleTimeout
}

func (m *Meter[T]) totalItemsValue() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalItems
}

func (m *Meter[T]) thresholdFor(metricName string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	threshold, hasThreshold := m.thresholds[metricName]
	return threshold, hasThreshold
}

func (m *Meter[T]) monitorIdleTime(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		if m.idleTimer != nil {
			m.idleTimer.Stop()
		}
		m.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.dataCh:
			m.mu.Lock()
			m.resetIdleTimerLocked()
			m.mu.Unlock()
		}
	}
}
