package codec

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrModulusTooSmall is returned when the modulus cannot hold even a single
// two-digit letter code, i.e. BlockSize(n) == 0.
var ErrModulusTooSmall = errors.New("codec: modulus too small for a letter block")

const (
	// maxCode is the letter code of 'z', the largest code a block can hold.
	maxCode = 25
	// padCode is the letter code of 'x', used to fill a short final block.
	padCode = 'x' - 'a'
)

// Translate maps each lowercase letter to its two-digit alphabet position,
// 'a' -> "00" through 'z' -> "25". Characters outside a-z are not supported
// and produce unspecified output.
func Translate(text string) string {
	var b strings.Builder
	b.Grow(2 * len(text))
	for i := 0; i < len(text); i++ {
		writeCode(&b, int(text[i])-'a')
	}
	return b.String()
}

// Untranslate is the inverse of Translate. An odd trailing digit is read as
// if it carried a leading zero.
func Untranslate(digits string) string {
	var b strings.Builder
	b.Grow(len(digits)/2 + 1)
	for i := 0; i < len(digits); i += 2 {
		code := int(digits[i] - '0')
		if i+1 < len(digits) {
			code = code*10 + int(digits[i+1]-'0')
		}
		b.WriteByte(byte('a' + code))
	}
	return b.String()
}

// BlockSize returns the digit width of a block for modulus n: the largest
// even width w such that "2525...25" (w digits) is still below n. A block of
// that width built from letter codes therefore never reaches n.
//
// BlockSize returns 0 when n <= 25.
func BlockSize(n int64) int {
	size := 0
	var digits int64
	pow := int64(1)
	for {
		if pow > (math.MaxInt64-digits)/maxCode {
			break
		}
		digits += maxCode * pow
		if digits >= n {
			break
		}
		size += 2
		if pow > math.MaxInt64/100 {
			break
		}
		pow *= 100
	}
	return size
}

// ToBlocks translates text and splits it into blocks bounded by n.
func ToBlocks(text string, n int64) ([]int64, error) {
	return Segment(Translate(text), n)
}

// Segment splits an already translated digit string into BlockSize(n)-digit
// chunks. A short final chunk is right-padded with the code for 'x'.
func Segment(digits string, n int64) ([]int64, error) {
	size := BlockSize(n)
	if size == 0 {
		return nil, ErrModulusTooSmall
	}

	blocks := make([]int64, 0, (len(digits)+size-1)/size)
	for len(digits) > 0 {
		end := min(size, len(digits))
		chunk := digits[:end]
		digits = digits[end:]

		if len(chunk) < size {
			var b strings.Builder
			b.Grow(size)
			b.WriteString(chunk)
			for b.Len() < size {
				writeCode(&b, padCode)
			}
			chunk = b.String()
		}

		v, err := strconv.ParseInt(chunk, 10, 64)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, v)
	}
	return blocks, nil
}

// FromBlocks renders each block as a BlockSize(n)-digit decimal string,
// left-padding with zeros, and untranslates the concatenation. Values wider
// than the block width are rendered in full, never truncated.
func FromBlocks(blocks []int64, n int64) string {
	size := BlockSize(n)

	var b strings.Builder
	for _, block := range blocks {
		digits := strconv.FormatInt(block, 10)
		if pad := size - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		b.WriteString(Untranslate(digits))
	}
	return b.String()
}

func writeCode(b *strings.Builder, code int) {
	if code >= 0 && code < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(code))
}
