package alphabet

// Size is the number of letters the machine family operates on, A through Z.
const Size = 26

func Valid(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func Index(c byte) int {
	return int(c - 'A')
}

func Letter(i int) byte {
	return byte('A' + Mod(i))
}

// Mod reduces n into the [0, Size) range, unlike the builtin
// remainder operator which keeps the sign of its operand.
func Mod(n int) int {
	return ((n % Size) + Size) % Size
}
