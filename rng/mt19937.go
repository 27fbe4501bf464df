package rng

// Mersenne Twister parameters (MT19937, 32 bit).
const (
	mtN         = 624
	mtM         = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initMult    = 1812433253
	doubleScale = 1.0 / 9007199254740992.0 // 2^-53
)

// MT19937 is the 32 bit Mersenne Twister. Seeding uses the init_genrand
// recurrence and Float64 combines two outputs into a 53 bit double, so
// a generator seeded with 42 yields the same doubles as numpy's legacy
// RandomState seeded with 42.
//
// The zero value is not usable; construct with NewMT19937.
type MT19937 struct {
	state [mtN]uint32
	pos   int
}

// NewMT19937 returns a generator seeded with seed. Only the low 32 bits
// of seed are used.
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.seed(seed)
	return mt
}

func (mt *MT19937) seed(s uint32) {
	mt.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := mt.state[i-1]
		mt.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	mt.pos = mtN
}

// Seed reseeds mt. It implements golang.org/x/exp/rand.Source.
func (mt *MT19937) Seed(seed uint64) {
	mt.seed(uint32(seed))
}

// twist regenerates the whole state block.
func (mt *MT19937) twist() {
	var y uint32
	for i := 0; i < mtN; i++ {
		y = (mt.state[i] & upperMask) | (mt.state[(i+1)%mtN] & lowerMask)
		v := mt.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		mt.state[i] = v
	}
	mt.pos = 0
}

// Uint32 returns the next tempered 32 bit output.
func (mt *MT19937) Uint32() uint32 {
	if mt.pos >= mtN {
		mt.twist()
	}
	y := mt.state[mt.pos]
	mt.pos++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 returns two consecutive outputs, the first one in the high
// word. It implements golang.org/x/exp/rand.Source.
func (mt *MT19937) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	lo := uint64(mt.Uint32())
	return hi<<32 | lo
}

// Float64 returns a value in [0, 1) with 53 bits of randomness.
func (mt *MT19937) Float64() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * doubleScale
}
