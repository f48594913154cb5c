// Package digits provides the verified table of π decimals.
package digits

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports a request beyond the verified table.
var ErrOutOfRange = errors.New("digit length out of range")

// The first 1000 decimals of π, from the canonical published expansion.
const table = "" +
	"1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679" +
	"8214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196" +
	"4428810975665933446128475648233786783165271201909145648566923460348610454326648213393607260249141273" +
	"7245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094" +
	"3305727036575959195309218611738193261179310511854807446237996274956735188575272489122793818301194912" +
	"9833673362440656643086021394946395224737190702179860943702770539217176293176752384674818467669405132" +
	"0005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235" +
	"4201995611212902196086403441815981362977477130996051870721134999999837297804995105973173281609631859" +
	"5024459455346908302642522308253344685035261931188171010003137838752886587533208381420617177669147303" +
	"5982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Max is the number of verified decimals in the table.
const Max = len(table)

// Digits returns the first length decimals of π.
func Digits(length int) (string, error) {
	if length < 1 || length > Max {
		return "", fmt.Errorf("%w: %d (supported 1 to %d)", ErrOutOfRange, length, Max)
	}
	return table[:length], nil
}

// Formatted returns π rendered as "3." followed by length decimals.
func Formatted(length int) (string, error) {
	decimals, err := Digits(length)
	if err != nil {
		return "", err
	}
	return "3." + decimals, nil
}
