// swap.go --  This file is part of goMCSCF project.
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
	"encoding/binary"
	"fmt"
	"math"
	"os"

	badger "github.com/dgraph-io/badger/v4"
)

// swapStore is the disk-backed block store of the out-of-core engine: blocks
// keyed by (shell-range step, occupied column), written once during the
// forward pass, read back column-wise while the drivers run. It lives in a
// private temp directory and is removed on Close; it is scratch space for a
// single transformation call, never shared.
type swapStore struct {
	dir string
	db  *badger.DB
}

func newSwapStore(tmpDir string) (*swapStore, error) {
	dir, err := os.MkdirTemp(tmpDir, "ao2mo-swap-")
	if err != nil {
		return nil, fmt.Errorf("create swap dir: %w", err)
	}
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithSyncWrites(false)
	db, err := badger.Open(opts)
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("open swap store: %w", err)
	}
	return &swapStore{dir: dir, db: db}, nil
}

func swapKey(step, col int) []byte {
	return []byte(fmt.Sprintf("%d/%d", step, col))
}

func (s *swapStore) put(step, col int, block []float64) error {
	val := make([]byte, 8*len(block))
	for i, v := range block {
		binary.LittleEndian.PutUint64(val[8*i:], math.Float64bits(v))
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(swapKey(step, col), val)
	})
	if err != nil {
		return fmt.Errorf("swap write %d/%d: %w", step, col, err)
	}
	return nil
}

func (s *swapStore) get(step, col int, dst []float64) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(swapKey(step, col))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8*len(dst) {
				return fmt.Errorf("block is %d bytes, want %d: %w",
					len(val), 8*len(dst), ErrShape)
			}
			for i := range dst {
				dst[i] = math.Float64frombits(binary.LittleEndian.Uint64(val[8*i:]))
			}
			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("swap read %d/%d: %w", step, col, err)
	}
	return nil
}

// Close discards the store and its files.
func (s *swapStore) Close() error {
	err := s.db.Close()
	if rmErr := os.RemoveAll(s.dir); err == nil {
		err = rmErr
	}
	return err
}
