package mathutil

// Mat is a 2D float64 matrix stored as row-major [][]float64, used by the
// oracle package as a frame-by-label log-likelihood table.
type Mat = [][]float64
