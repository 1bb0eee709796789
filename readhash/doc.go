// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package readhash computes order-independent digests over the reads stored
// in BAM, SAM, FASTQ and FASTA files.
//
// Each read is first reduced to a canonical byte string:
//
//	[name + "/1" or "/2"] + sequence + [quality]
//
// with reverse-strand alignments flipped back to sequencing orientation, so
// the same read produces the same string whether it comes from an aligned BAM
// record or from the raw FASTQ it was aligned from. The string is hashed (MD5
// by default) and the low 64 bits of the digest are summed modulo 2^64. The
// sum, together with a read count, is invariant under any reordering of the
// input and under splitting the input across several files, so two files
// hold the same reads iff their sums and counts match (up to hash
// collisions).
//
// Sums can optionally be partitioned by read group ("lane"), as declared by
// the @RG lines of a SAM header.
package readhash
