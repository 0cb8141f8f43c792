// swap_test.go --  This file is part of goMCSCF project.
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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapStoreRoundTrip(t *testing.T) {
	s, err := newSwapStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	rnd := rand.New(rand.NewSource(2))
	blocks := map[[2]int][]float64{}
	for step := 0; step < 3; step++ {
		for col := 0; col < 4; col++ {
			b := make([]float64, 11)
			for i := range b {
				b[i] = rnd.NormFloat64()
			}
			require.NoError(t, s.put(step, col, b))
			blocks[[2]int{step, col}] = b
		}
	}
	dst := make([]float64, 11)
	for key, want := range blocks {
		require.NoError(t, s.get(key[0], key[1], dst))
		assert.Equal(t, want, dst)
	}
}

func TestSwapStoreOverwrite(t *testing.T) {
	s, err := newSwapStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.put(0, 0, []float64{1, 2, 3}))
	require.NoError(t, s.put(0, 0, []float64{4, 5, 6}))
	dst := make([]float64, 3)
	require.NoError(t, s.get(0, 0, dst))
	assert.Equal(t, []float64{4, 5, 6}, dst)
}

func TestSwapStoreMissingKey(t *testing.T) {
	s, err := newSwapStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	assert.Error(t, s.get(9, 9, make([]float64, 1)))
}

func TestSwapStoreCloseRemovesDir(t *testing.T) {
	s, err := newSwapStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.put(0, 0, []float64{1}))

	dir := s.dir
	require.NoError(t, s.Close())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
