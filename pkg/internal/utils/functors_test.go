// functors_test.go file
package utils_test

import (
	"reflect"
	"testing"

	"github.com/algoscope/algoscope/pkg/internal/utils"
)

func TestMap(t *testing.T) {
	elems := []float64{12, 45, 280, 1100}
	scaled := utils.Map(elems, func(ms float64) float64 {
		return ms / 1000 // milliseconds to seconds
	})

	expected := []float64{0.012, 0.045, 0.28, 1.1}
	if !reflect.DeepEqual(scaled, expected) {
		t.Errorf("Expected %v, got %v", expected, scaled)
	}
}

func TestFilter(t *testing.T) {
	elems := []int{1000, 2000, 5000, 10000, 20000}
	filtered := utils.Filter(elems, func(n int) bool {
		return n <= 5000 // Keep only the small inputs
	})

	expected := []int{1000, 2000, 5000}
	if !reflect.DeepEqual(filtered, expected) {
		t.Errorf("Expected %v, got %v", expected, filtered)
	}
}

func TestContains(t *testing.T) {
	algorithms := []string{"bubble_sort", "merge_sort", "quick_sort"}

	if !utils.Contains(algorithms, "merge_sort") {
		t.Errorf("expected slice to contain merge_sort")
	}
	if utils.Contains(algorithms, "heap_sort") {
		t.Errorf("expected slice to not contain heap_sort")
	}
}
