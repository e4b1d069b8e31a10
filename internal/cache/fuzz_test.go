package cache

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/metrics"
)

/*
Properties checked against a reference model (no evictor, so the model
is exact):
 1. No panics for any operation sequence.
 2. Get agrees with the model on presence and value.
 3. SpaceUsed() equals the summed size of the model's entries and never
    exceeds capacity.
 4. A set that does not fit leaves the model (and cache) without the
    key; a replacement is charged only at the new size.
*/
func FuzzCacheOperations(f *testing.F) {
	seedCorpus := [][]byte{
		{0x00, 3, 3, 0}, // set
		{0x01, 3, 0, 0}, // get
		{0x02, 3, 0, 0}, // delete
		{0x03, 0, 0, 0}, // reset
		{0x00, 5, 19, 1, 0x01, 5, 0, 1, 0x00, 5, 2, 1},
	}
	for _, c := range seedCorpus {
		f.Add(c)
	}

	const maxmem = 64

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 4 {
			t.Skip()
		}

		c := New(maxmem, WithMetrics(metrics.Noop{}))
		model := map[string]string{}
		modelUsed := func() uint64 {
			var n uint64
			for _, v := range model {
				n += uint64(len(v))
			}
			return n
		}

		const (
			opSet = iota
			opGet
			opDelete
			opReset
		)

		reader := bytes.NewReader(data)
		chunk := make([]byte, 4)

		for {
			if _, err := reader.Read(chunk); err != nil {
				break
			}
			op := chunk[0] % 4
			kSel := int(chunk[1] % 8)
			vLen := int(chunk[2] % 24)
			fill := chunk[3]

			key := fmt.Sprintf("k%d", kSel)

			switch op {
			case opSet:
				val := bytes.Repeat([]byte{'a' + fill%26}, vLen)
				c.Set(key, val)
				// Model: replace first, then the exact fit rule.
				delete(model, key)
				if modelUsed()+uint64(vLen) <= maxmem {
					model[key] = string(val)
				}
			case opGet:
				v, ok := c.Get(key)
				want, wantOK := model[key]
				if ok != wantOK {
					t.Fatalf("get %q: presence=%v, model says %v", key, ok, wantOK)
				}
				if ok && string(v) != want {
					t.Fatalf("get %q: value %q, model says %q", key, v, want)
				}
			case opDelete:
				removed := c.Del(key)
				_, wantOK := model[key]
				if removed != wantOK {
					t.Fatalf("del %q: removed=%v, model says %v", key, removed, wantOK)
				}
				delete(model, key)
			case opReset:
				c.Reset()
				model = map[string]string{}
			}

			if got, want := c.SpaceUsed(), modelUsed(); got != want {
				t.Fatalf("space used %d, model says %d", got, want)
			}
			if c.SpaceUsed() > maxmem {
				t.Fatalf("space used %d exceeds capacity %d", c.SpaceUsed(), maxmem)
			}
			if c.Len() != len(model) {
				t.Fatalf("len %d, model says %d", c.Len(), len(model))
			}
		}
	})
}
