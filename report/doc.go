// Package report turns training events into human-readable output: an HTML
// page of learning curves (go-echarts) and a colored console log (aurora).
package report
