package services

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	DefaultTransactionPrefix = "TXN"

	txnRandomMin = 100000
	txnRandomMax = 999999
)

// TransactionIDGenerator mints transaction identifiers for new payments
type TransactionIDGenerator interface {
	Generate() string
}

// TimestampTxIDGenerator produces ids of the form PREFIX-RANDOM-SECONDS.MICROS,
// e.g. TXN-482913-1718000000.123456.
type TimestampTxIDGenerator struct {
	prefix string
	now    func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewTransactionIDGenerator(prefix string) *TimestampTxIDGenerator {
	if prefix == "" {
		prefix = DefaultTransactionPrefix
	}
	return &TimestampTxIDGenerator{
		prefix: prefix,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(cryptoSeed())),
	}
}

func (g *TimestampTxIDGenerator) Generate() string {
	g.mu.Lock()
	n := txnRandomMin + g.rng.Intn(txnRandomMax-txnRandomMin+1)
	g.mu.Unlock()

	ts := g.now().UTC()
	return fmt.Sprintf("%s-%06d-%d.%06d", g.prefix, n, ts.Unix(), ts.Nanosecond()/int(time.Microsecond))
}

func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
