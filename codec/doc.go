// Package codec writes and reads partitioned graphs.
//
// Binary format, little-endian throughout:
//
//	offset 0   uint8    marker (0x01)
//	offset 1   uint32   file id (random)
//	offset 5   uint32   checksum: first 4 bytes of SHA-256(body)
//	offset 9   body     per vertex in id order:
//	                    x, y, group, edge count (uint16 each),
//	                    then edge count neighbor ids (uint16 each)
//
// The checksum bytes equal the digest prefix byte-for-byte. Any value that
// does not fit uint16 is rejected with core.ErrFormat before output starts.
//
// ASCII format:
//
//	<vertex count>
//	<max group + 1>
//	x;y;group;edge_count;n1;n2;...;     one line per vertex
//
// Verify recomputes the digest of a binary artifact and reports a match;
// ReadBinary and ReadASCII decode artifacts into a Document.
package codec
