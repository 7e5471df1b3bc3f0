package huf28

import (
	"math/rand"
)

// pseudoRandomBytes returns n bytes drawn from the first alphabet byte
// values, skewed so that low values are more common.
func pseudoRandomBytes(seed int64, n int, alphabet int) []byte {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		a := rng.Intn(alphabet)
		b := rng.Intn(alphabet)
		if b < a {
			a = b
		}
		out[i] = byte(a)
	}
	return out
}

// fibonacciBytes returns a buffer in which symbol i occurs Fib(i+1) times,
// for the first count symbols.  Such inputs produce a maximally deep tree.
func fibonacciBytes(count int) []byte {
	var out []byte
	a, b := 1, 1
	for symbol := 0; symbol < count; symbol++ {
		for k := 0; k < a; k++ {
			out = append(out, byte(symbol))
		}
		a, b = b, a+b
	}
	return out
}

// frequencyCorpus returns a spread of frequency tables that stress the
// node placer: flat, linear, exponential and mixed distributions over
// anywhere from 1 to 256 symbols.
func frequencyCorpus(seed int64, count int) []Frequencies {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Frequencies, 0, count)
	for t := 0; t < count; t++ {
		var freqs Frequencies
		k := 1 + rng.Intn(NumSymbols)
		symbols := rng.Perm(NumSymbols)[:k]
		for i, symbol := range symbols {
			switch t % 5 {
			case 0:
				freqs[symbol] = 1
			case 1:
				freqs[symbol] = uint32(i + 1)
			case 2:
				freqs[symbol] = 1 << uint(i%20)
			case 3:
				if i < k/2 {
					freqs[symbol] = 1
				} else {
					freqs[symbol] = 1 << uint(min(23, i-k/2))
				}
			default:
				freqs[symbol] = 1 + uint32(rng.Intn(1<<uint(rng.Intn(24))))
			}
		}
		out = append(out, freqs)
	}
	return out
}
