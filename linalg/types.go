package linalg

// Matrix is a two-dimensional mutable array of float64 values.
// Every implementation enforces bounds checking and returns a clear
// error on misuse rather than panicking.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (row, col).
	// Returns ErrOutOfRange if out of bounds. Complexity: O(1).
	At(row, col int) (float64, error)

	// Set assigns v at (row, col).
	// Returns ErrOutOfRange if out of bounds. Complexity: O(1).
	Set(row, col int, v float64) error

	// Clone returns a deep, independent copy. Complexity: O(rows*cols).
	Clone() Matrix
}
