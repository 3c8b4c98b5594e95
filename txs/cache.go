package txs

import (
	"bytes"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gulfstream/seashell/common/types"
)

// DefaultCacheSize is the number of decoded history entries kept in memory.
const DefaultCacheSize = 1024

type decoded struct {
	blockheight uint64
	gas         uint64
	payer       types.Address
	raw         []byte

	msg      types.TxMessage
	err      error
	verified bool
}

// matches reports whether the entry was computed for exactly the fields
// covered by the signature of tx.
func (d *decoded) matches(tx *types.Transaction) bool {
	return d.blockheight == tx.Blockheight &&
		d.gas == tx.Gas &&
		d.payer == tx.Payer &&
		bytes.Equal(d.raw, tx.Msg)
}

// historyCache remembers decoded messages and signature checks by transaction id.
type historyCache struct {
	*lru.Cache[string, decoded]
}

func newHistoryCache(size int) (*historyCache, error) {
	cache, err := lru.New[string, decoded](size)
	if err != nil {
		return nil, err
	}
	return &historyCache{Cache: cache}, nil
}

// get returns the cached entry for tx. Entries stored under the same id for a
// different blockheight, gas, payer or msg are ignored.
func (c *historyCache) get(tx *types.Transaction) (decoded, bool) {
	entry, ok := c.Cache.Get(tx.ID())
	if !ok || !entry.matches(tx) {
		cacheHits.WithLabelValues("miss").Inc()
		return decoded{}, false
	}
	cacheHits.WithLabelValues("hit").Inc()
	return entry, true
}

func (c *historyCache) add(tx *types.Transaction, entry decoded) {
	entry.blockheight = tx.Blockheight
	entry.gas = tx.Gas
	entry.payer = tx.Payer
	entry.raw = tx.Msg
	c.Cache.Add(tx.ID(), entry)
}
