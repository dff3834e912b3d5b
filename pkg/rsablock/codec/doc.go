// Package codec converts lowercase text to numeric blocks and back.
//
// Every letter becomes a two-digit code ('a' = 00 ... 'z' = 25). The digit
// string is cut into chunks of BlockSize(n) digits so that no block, whatever
// letters it holds, reaches the RSA modulus n. The final chunk is padded with
// the code for 'x', so decoding returns the original text followed by any
// padding letters.
//
//	blocks, err := codec.ToBlocks("abcdefghij", 2537) // [1 203 405 607 809]
//	text := codec.FromBlocks(blocks, 2537)            // "abcdefghij"
package codec
