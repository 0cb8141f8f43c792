// memory_test.go --  This file is part of goMCSCF project.
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
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemUsageOrdering(t *testing.T) {
	incore, outcore := MemUsage([2]int{3, 2}, 4, 7)
	assert.Greater(t, outcore, 0.0)
	assert.Greater(t, incore, outcore, "incore keeps the half-transformed tensor resident")
}

func TestMemUsageMonotonic(t *testing.T) {
	in1, out1 := MemUsage([2]int{3, 2}, 4, 7)
	in2, out2 := MemUsage([2]int{3, 2}, 4, 14)
	assert.Greater(t, in2, in1)
	assert.Greater(t, out2, out1)

	_, outSmallCore := MemUsage([2]int{1, 1}, 4, 14)
	assert.GreaterOrEqual(t, out2, outSmallCore)
}

func TestMemUsageEmptyCore(t *testing.T) {
	incore, outcore := MemUsage([2]int{0, 0}, 4, 7)
	assert.Greater(t, incore, 0.0)
	assert.Greater(t, outcore, 0.0)
}

func TestMemUsageAddressSpaceAdvisory(t *testing.T) {
	var logBuf bytes.Buffer
	InitLog(&logBuf)
	defer InitLog(io.Discard)

	// a small system stays quiet
	MemUsage([2]int{3, 2}, 4, 7)
	assert.NotContains(t, logBuf.String(), "ulimit -v")

	// a few thousand basis functions push the outcore footprint past 10 GB
	_, outcore := MemUsage([2]int{100, 100}, 50, 400)
	assert.Greater(t, outcore, 10e9)
	assert.Contains(t, logBuf.String(), "ulimit -v")
}
