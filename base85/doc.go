// Package base85 implements the RFC 1924 flavor of base85 encoding.
//
// Every 4 bytes of input are treated as a big-endian 32-bit value and
// written as 5 digits of the alphabet
//
//	0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~
//
// A trailing group of n (1..3) bytes is written as n+1 digits. Decoding
// reverses this, skipping space, line feed, vertical tab and carriage return
// anywhere in the input. The output is plain 7-bit ASCII without separators,
// padding or length prefix, so framing is left to the caller.
//
// See https://www.rfc-editor.org/rfc/rfc1924
package base85
