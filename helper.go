// helper.go --  This file is part of goMCSCF project.
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

import (
	"fmt"
	"math"
	"runtime"

	"gonum.org/v1/gonum/mat"
)

func flatten(arr [][]float64) []float64 {
	dim := len(arr)
	res := make([]float64, dim*dim)
	for i := range arr {
		for j := range arr[i] {
			res[i*dim+j] = arr[i][j]
		}
	}
	return res
}

func make2(a, b int) [][]float64 {
	res := make([][]float64, a)
	for i := range res {
		res[i] = make([]float64, b)
	}
	return res
}

func make3(a, b, c int) [][][]float64 {
	res := make([][][]float64, a)
	for i := range res {
		res[i] = make2(b, c)
	}
	return res
}

func make4(a, b, c, d int) [][][][]float64 {
	res := make([][][][]float64, a)
	for i := range res {
		res[i] = make3(b, c, d)
	}
	return res
}

// sub3 returns a-b element-wise; shapes must agree. Any dimension may be
// zero, so the inner shapes are taken per element.
func sub3(a, b [][][]float64) [][][]float64 {
	res := make([][][]float64, len(a))
	for i := range a {
		res[i] = make([][]float64, len(a[i]))
		for j := range a[i] {
			res[i][j] = make([]float64, len(a[i][j]))
			for k := range a[i][j] {
				res[i][j][k] = a[i][j][k] - b[i][j][k]
			}
		}
	}
	return res
}

func PrintMat(M [][]float64) {
	aaa := mat.NewDense(len(M), len(M), flatten(M))
	PrintDense(aaa)
}

func PrintDense(D *mat.Dense) {
	fa := mat.Formatted(D, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("    %.8f\n", fa)
}

func MatrixSqrtInverse(S [][]float64) [][]float64 {
	n_basis := len(S)
	Smat := mat.NewSymDense(n_basis, flatten(S))
	var eigsym mat.EigenSym
	ok := eigsym.Factorize(Smat, true)
	if !ok {
		fmt.Println("S eigendecomposition failed")
	}
	var ev mat.Dense
	eigsym.VectorsTo(&ev)
	sqrtVec := make([]float64, n_basis)
	for i := range eigsym.Values(nil) {
		sqrtVec[i] = math.Sqrt(eigsym.Values(nil)[i])
	}
	diagM := mat.NewDiagDense(n_basis, sqrtVec)
	var SSqrtInv mat.Dense
	SSqrtInv.Mul(&ev, diagM)
	ev.Inverse(&ev)
	SSqrtInv.Mul(&SSqrtInv, &ev)
	SSqrtInv.Inverse(&SSqrtInv)

	result := make([][]float64, n_basis)
	for i := range result {
		result[i] = SSqrtInv.RawRowView(i)
	}
	return result
}

func MyMemDebug() {
	fmt.Println("-----------!!!!!!!!Enter MyMemDebug!!!!!!!!--------------")
	var memStats runtime.MemStats

	runtime.ReadMemStats(&memStats)

	fmt.Printf("Alloc: %d bytes\n", memStats.Alloc)
	fmt.Printf("TotalAlloc: %d bytes\n", memStats.TotalAlloc)
	fmt.Printf("HeapAlloc: %d bytes\n", memStats.HeapAlloc)
	fmt.Printf("HeapSys: %d bytes\n", memStats.HeapSys)
	fmt.Println("------------------------------------------!--------------")
}
