package palette

// CacheBits is the number of bits per channel kept in the nearest-colour
// cache's address space. The spec allows 4-6; 5 gives a 32x32x32 grid
// (32768 int16 entries, 64KiB) which is cheap to allocate and fine-grained
// enough that the cube-center distance computed by update rarely disagrees
// with the true nearest entry for the original pixel.
const CacheBits = 5

const (
	cacheShift = 8 - CacheBits   // low bits dropped per channel
	cacheDim   = 1 << CacheBits // grid cells per axis
	cacheEmpty = 0x100           // sentinel: "not yet computed" (source uses 0x100 in a signed 16-bit slot)
)

// cache is the sparse 3-D nearest-colour memo. Entries start at cacheEmpty
// and are filled in, never invalidated, for the lifetime of the bracket
// between Prepare and Discard.
type cache struct {
	grid []int16 // cacheDim^3 entries, index (((r<<B)+g)<<B)+b
}

func cacheIndex(r, g, b uint8) int {
	qr := int(r) >> cacheShift
	qg := int(g) >> cacheShift
	qb := int(b) >> cacheShift
	return (qr*cacheDim+qg)*cacheDim + qb
}

// cellCenter returns the midpoint of the grid cell that channel value v
// quantizes into.
func cellCenter(v uint8) int {
	cell := int(v) >> cacheShift
	return cell<<cacheShift + (1 << (cacheShift - 1))
}

// Prepare (re)initializes the palette's nearest-colour cache to all
// sentinel entries. Idempotent: calling it on an already-prepared palette
// just resets every grid entry to the sentinel.
func (p *Palette) Prepare() {
	if p.cache == nil {
		p.cache = &cache{grid: make([]int16, cacheDim*cacheDim*cacheDim)}
	}
	for i := range p.cache.grid {
		p.cache.grid[i] = cacheEmpty
	}
}

// Discard releases the cache. Safe to call whether or not Prepare was
// called; after Discard, Lookup/Update must not be called again until
// Prepare runs.
func (p *Palette) Discard() {
	p.cache = nil
}

// Lookup addresses the cache cell that (r, g, b) quantizes into. ok is
// false if that cell has never been populated by Update.
func (p *Palette) Lookup(r, g, b uint8) (index uint8, ok bool) {
	v := p.cache.grid[cacheIndex(r, g, b)]
	if v == cacheEmpty {
		return 0, false
	}
	return uint8(v), true
}

// Update computes the palette entry minimizing squared Euclidean distance
// to the center of the grid cell addressed by (r, g, b), ties broken by
// the lowest palette index, stores it in the cache, and returns it.
func (p *Palette) Update(r, g, b uint8) uint8 {
	cr, cg, cb := cellCenter(r), cellCenter(g), cellCenter(b)

	best := 0
	bestDist := -1
	for i, e := range p.Entries {
		dr := cr - int(e.R)
		dg := cg - int(e.G)
		db := cb - int(e.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	p.cache.grid[cacheIndex(r, g, b)] = int16(best)
	return uint8(best)
}

// Nearest returns the cached nearest-colour index for (r, g, b), computing
// and memoizing it first if the cell has not been visited yet. This is the
// lookup-then-update pattern every quantizer code path uses.
func (p *Palette) Nearest(r, g, b uint8) uint8 {
	if idx, ok := p.Lookup(r, g, b); ok {
		return idx
	}
	return p.Update(r, g, b)
}
