// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
bio-readhash computes an order-independent digest of the reads in BAM, SAM,
FASTQ and FASTA files. Two sets of files with the same reads, in any order
and in any of these containers, produce the same digest.

	bio-readhash bam in.bam
	bio-readhash fastq in_R1.fastq.gz in_R2.fastq.gz
	bio-readhash bam -lanes -state=a.json.sz a.bam
	bio-readhash merge a.json.sz b.json.sz
*/
package main

import "github.com/grailbio/readhash/cmd/bio-readhash/cmd"

func main() {
	cmd.Run()
}
