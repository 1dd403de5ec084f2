package bytesize

// Unit is a byte scale factor. Units come in two families sharing the
// same rank letters: the binary family steps by 1024 and the decimal
// family by 1000. One has multiplier 1 and belongs to both.
type Unit int

// units, binary family first so Unit(rank) lands on the binary member
const (
	One Unit = iota
	Kibi
	Mebi
	Gibi
	Tebi
	Pebi
	Kilo
	Mega
	Giga
	Tera
	Peta
)

const maxRank = 5

// fixed multiplier tables indexed by rank, not extensible
var (
	binaryMultipliers  = [maxRank + 1]int64{1, 1 << 10, 1 << 20, 1 << 30, 1 << 40, 1 << 50}
	decimalMultipliers = [maxRank + 1]int64{1, 1e3, 1e6, 1e9, 1e12, 1e15}

	binarySuffixes  = [maxRank + 1]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
	decimalSuffixes = [maxRank + 1]string{"B", "kB", "MB", "GB", "TB", "PB"}
)

// Rank returns the exponent tier of the unit, 0 for One up to 5 for
// Pebi and Peta.
func (u Unit) Rank() int {
	if u > Pebi {
		return int(u) - maxRank
	}
	return int(u)
}

// Binary returns true for the 1024-based family members, false for One
// and the decimal family.
func (u Unit) Binary() bool {
	return u >= Kibi && u <= Pebi
}

// Multiplier returns the byte count of one unit.
func (u Unit) Multiplier() int64 {
	if u.Binary() {
		return binaryMultipliers[u.Rank()]
	}
	return decimalMultipliers[u.Rank()]
}

// Suffix returns the canonical suffix, "KiB" style for the binary
// family, "kB" style for the decimal family and plain "B" for One.
func (u Unit) Suffix() string {
	if u.Binary() {
		return binarySuffixes[u.Rank()]
	}
	return decimalSuffixes[u.Rank()]
}

func (u Unit) String() string {
	return u.Suffix()
}

// unitAt maps a rank back to the family member, One for rank 0.
func unitAt(rank int, binary bool) Unit {
	if rank == 0 {
		return One
	}
	if binary {
		return Unit(rank)
	}
	return Unit(rank + maxRank)
}
