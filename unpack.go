// unpack.go --  This file is part of goMCSCF project.
// Mirzaeva Irina, 2024
//
//	goMCSCF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package ao2mo

// UnpackTril expands a packed lower-triangular pair block into the full
// symmetric n x n matrix, row-major in out. Panics on a length mismatch:
// that is a programming error, not a runtime condition.
func UnpackTril(packed []float64, n int, out []float64) {
	if len(packed) < n*(n+1)/2 || len(out) < n*n {
		panic("ao2mo: UnpackTril buffer length mismatch")
	}
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			out[i*n+j] = packed[ij]
			out[j*n+i] = packed[ij]
			ij++
		}
	}
}

// PackTril is the inverse of UnpackTril for a symmetric square: it stores the
// lower triangle of the row-major n x n matrix in packed order.
func PackTril(square []float64, n int, out []float64) {
	if len(square) < n*n || len(out) < n*(n+1)/2 {
		panic("ao2mo: PackTril buffer length mismatch")
	}
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			out[ij] = square[i*n+j]
			ij++
		}
	}
}

// unpackTrilRows expands packed into nested rows, out[i][j] = out[j][i].
func unpackTrilRows(packed []float64, n int, out [][]float64) {
	if len(packed) < n*(n+1)/2 || len(out) < n {
		panic("ao2mo: unpackTrilRows buffer length mismatch")
	}
	ij := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			out[i][j] = packed[ij]
			out[j][i] = packed[ij]
			ij++
		}
	}
}
