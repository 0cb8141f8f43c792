// shells_test.go --  This file is part of goMCSCF project.
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

func TestShellsCounts(t *testing.T) {
	sh := testShells()
	assert.Equal(t, 5, sh.NShells())
	assert.Equal(t, 7, sh.NAO())
	assert.Equal(t, []int{0, 1, 2, 5, 6, 7}, sh.AOLoc())
	assert.Equal(t, 28, sh.NPairs())
}

func TestRangesCoverAllPairs(t *testing.T) {
	sh := testShells()
	for _, maxPairs := range []int{1, 3, 12, 28, 1000} {
		ranges := sh.Ranges(maxPairs)
		require.NotEmpty(t, ranges)
		assert.Equal(t, 0, ranges[0].Start)
		assert.Equal(t, sh.NShells(), ranges[len(ranges)-1].Stop)
		total := 0
		for i, r := range ranges {
			assert.Less(t, r.Start, r.Stop)
			if i > 0 {
				assert.Equal(t, ranges[i-1].Stop, r.Start)
			}
			// a range only exceeds the budget when a single shell does
			if r.Stop-r.Start > 1 {
				assert.LessOrEqual(t, r.NPairs, maxPairs)
			}
			total += r.NPairs
		}
		assert.Equal(t, sh.NPairs(), total)
	}
}

func TestRangesSingleShellOverBudget(t *testing.T) {
	sh := Shells{Dims: []int{3}}
	ranges := sh.Ranges(1)
	require.Len(t, ranges, 1)
	assert.Equal(t, 6, ranges[0].NPairs)
}

func TestPartitionOcc(t *testing.T) {
	p := Partition{NCore: [2]int{3, 2}, NCas: 4, NMO: 7}
	require.NoError(t, p.check())
	assert.Equal(t, 7, p.NOcc(0))
	assert.Equal(t, 6, p.NOcc(1))
}

func TestPartitionCheck(t *testing.T) {
	cases := []struct {
		name string
		p    Partition
		ok   bool
	}{
		{"valid", Partition{NCore: [2]int{3, 2}, NCas: 4, NMO: 7}, true},
		{"noActive", Partition{NCore: [2]int{3, 3}, NCas: 0, NMO: 7}, true},
		{"negativeCore", Partition{NCore: [2]int{-1, 0}, NCas: 4, NMO: 7}, false},
		{"negativeActive", Partition{NCore: [2]int{0, 0}, NCas: -1, NMO: 7}, false},
		{"overfull", Partition{NCore: [2]int{4, 4}, NCas: 4, NMO: 7}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.check()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrShape)
			}
		})
	}
}
