// helper_test.go --  This file is part of goMCSCF project.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSub3(t *testing.T) {
	a := [][][]float64{{{3, 2}, {1, 0}}}
	b := [][][]float64{{{1, 1}, {1, 1}}}
	assert.Equal(t, [][][]float64{{{2, 1}, {0, -1}}}, sub3(a, b))
}

func TestSub3EmptyOuter(t *testing.T) {
	// empty core blocks have a zero-length outer dimension
	assert.NotPanics(t, func() {
		res := sub3([][][]float64{}, [][][]float64{})
		assert.Empty(t, res)
	})
	assert.NotPanics(t, func() {
		res := sub3(make3(0, 7, 7), make3(0, 7, 7))
		assert.Empty(t, res)
	})
}

func TestSub3MixedEmptyCore(t *testing.T) {
	// one spin channel with core orbitals, the other without
	a := make3(2, 3, 3)
	a[1][2][0] = 5
	b := make3(2, 3, 3)
	b[1][2][0] = 2
	res := sub3(a, b)
	require.Len(t, res, 2)
	assert.Equal(t, 3.0, res[1][2][0])
}
