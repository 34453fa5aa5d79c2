package constants

// This package contains only some constants

// Names of the measured algorithms. They are the keys used by the size
// schedule, the repeat policy, the CSV log and the chart file names.
const (
	FirstElement   = "first_element"
	IsEven         = "is_even"
	BinarySearch   = "binary_search"
	LinearSum      = "linear_sum"
	MergeSort      = "merge_sort"
	QuadraticPairs = "quadratic_pairs"
	FibExp         = "fib_exp"
)

// Growth classes, used for labelling reports.
const (
	ClassConstant     = "O(1)"
	ClassLogarithmic  = "O(log n)"
	ClassLinear       = "O(n)"
	ClassLinearithmic = "O(n log n)"
	ClassQuadratic    = "O(n^2)"
	ClassExponential  = "O(2^n)"
)

const (
	// FibExpMaxN is the largest n the exponential Fibonacci is ever scheduled
	// with. Cost doubles per unit of n.
	FibExpMaxN = 32

	// MergeSortMaxValue is the upper bound (inclusive) of the random values
	// fed to the merge sort.
	MergeSortMaxValue = 1_000_000
)

// Defaults for the harness configuration.
const (
	DefaultOutDir      = "plots"
	DefaultChartFormat = "png"
)

// CSVHeader is the header row of the timing log.
var CSVHeader = []string{"function", "n", "seconds"}
