// Package npy reads and writes arrays in the NumPy .npy file format.
//
// A .npy file is a 6-byte magic string, a two-byte version, a little-endian
// header length, an ASCII header holding a Python dict literal and the raw
// element data in C order:
//
//	\x93NUMPY 0x01 0x00 <uint16 len> {'descr': '<f8', 'fortran_order': False, 'shape': (3, 4), }
//
// The header is padded with spaces and terminated by a newline so that the
// data starts on a 64-byte boundary. Version 1.0 is written whenever the
// header fits in 65535 bytes, otherwise 2.0. Versions 1.0, 2.0 and 3.0 are
// read. Only the element types of the tensor package are supported. Read
// rejects headers whose shape overflows or describes more than MaxDataSize
// bytes.
package npy
