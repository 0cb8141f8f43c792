// shells.go --  This file is part of goMCSCF project.
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

import "fmt"

// Shells describes the AO basis at shell granularity: Dims[i] is the number
// of basis functions generated by shell i. Shell order fixes AO order.
type Shells struct {
	Dims []int
}

func (s Shells) NShells() int {
	return len(s.Dims)
}

func (s Shells) NAO() int {
	n := 0
	for _, d := range s.Dims {
		n += d
	}
	return n
}

// AOLoc returns the AO offset of every shell, with the total appended:
// shell i covers AO functions AOLoc()[i] .. AOLoc()[i+1].
func (s Shells) AOLoc() []int {
	loc := make([]int, len(s.Dims)+1)
	for i, d := range s.Dims {
		loc[i+1] = loc[i] + d
	}
	return loc
}

// NPairs is the packed-triangular AO pair count nao*(nao+1)/2.
func (s Shells) NPairs() int {
	nao := s.NAO()
	return nao * (nao + 1) / 2
}

// ShellRange is a contiguous block of shells [Start, Stop) together with the
// number of packed AO pair rows its functions contribute.
type ShellRange struct {
	Start, Stop, NPairs int
}

// Ranges partitions the shell space into ordered contiguous ranges whose pair
// counts stay within maxPairs where possible. Every range holds at least one
// shell, so a single oversized shell yields a range above maxPairs; the
// caller decides whether that still fits its buffer. Pair counts over all
// ranges sum to NPairs().
func (s Shells) Ranges(maxPairs int) []ShellRange {
	loc := s.AOLoc()
	tri := func(n int) int { return n * (n + 1) / 2 }
	var res []ShellRange
	ish := 0
	for ish < len(s.Dims) {
		base := tri(loc[ish])
		jsh := ish + 1
		for jsh < len(s.Dims) && tri(loc[jsh+1])-base <= maxPairs {
			jsh++
		}
		res = append(res, ShellRange{ish, jsh, tri(loc[jsh]) - base})
		ish = jsh
	}
	return res
}

// Partition is the per-spin core/active/virtual split of the MO space.
// nocc = ncore + ncas per channel; channel 0 is alpha, channel 1 beta.
type Partition struct {
	NCore [2]int
	NCas  int
	NMO   int
}

func (p Partition) NOcc(spin int) int {
	return p.NCore[spin] + p.NCas
}

func (p Partition) check() error {
	if p.NCas < 0 || p.NMO < 0 {
		return fmt.Errorf("ncas=%d nmo=%d: %w", p.NCas, p.NMO, ErrShape)
	}
	for spin := 0; spin < 2; spin++ {
		nc := p.NCore[spin]
		if nc < 0 || nc+p.NCas > p.NMO {
			return fmt.Errorf("spin %d: ncore=%d ncas=%d nmo=%d: %w",
				spin, nc, p.NCas, p.NMO, ErrShape)
		}
	}
	return nil
}
