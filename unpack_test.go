// unpack_test.go --  This file is part of goMCSCF project.
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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpackTrilSymmetric(t *testing.T) {
	n := 5
	packed := make([]float64, n*(n+1)/2)
	for i := range packed {
		packed[i] = float64(i + 1)
	}
	out := make([]float64, n*n)
	UnpackTril(packed, n, out)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, out[i*n+j], out[j*n+i])
		}
	}
	// lower triangle keeps the packed order
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			assert.Equal(t, packed[k], out[i*n+j])
			k++
		}
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	n := 7
	packed := make([]float64, n*(n+1)/2)
	for i := range packed {
		packed[i] = rnd.NormFloat64()
	}
	square := make([]float64, n*n)
	UnpackTril(packed, n, square)
	back := make([]float64, len(packed))
	PackTril(square, n, back)
	assert.Equal(t, packed, back)
}

func TestUnpackTrilRows(t *testing.T) {
	n := 4
	packed := make([]float64, n*(n+1)/2)
	for i := range packed {
		packed[i] = float64(i)
	}
	flat := make([]float64, n*n)
	UnpackTril(packed, n, flat)
	rows := make2(n, n)
	unpackTrilRows(packed, n, rows)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, flat[i*n+j], rows[i][j])
		}
	}
}

func TestUnpackTrilBadLength(t *testing.T) {
	assert.Panics(t, func() {
		UnpackTril(make([]float64, 5), 4, make([]float64, 16))
	})
	assert.Panics(t, func() {
		PackTril(make([]float64, 16), 4, make([]float64, 9))
	})
}
