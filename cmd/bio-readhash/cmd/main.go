package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/readhash/encoding/readsource"
	"github.com/grailbio/readhash/readhash"
	"v.io/x/lib/cmdline"
)

func newCmdBAM() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "bam",
		Short: "Digest the reads of BAM or SAM files",
		Long: `
Digest the reads of one or more BAM or SAM files. Secondary and supplementary
alignments are skipped; reverse-strand reads are hashed in sequencing
orientation, so an aligned file and its unaligned source give the same digest.`,
		ArgsName: "path...",
	}
	flags := newHashFlags(cmd)
	flags.lanes = cmd.Flags.Bool("lanes", false, "Report one digest per read group (@RG line) instead of a single digest")
	format := cmd.Flags.String("format", "", `Input format, "bam" or "sam". By default it is guessed from each file name.`)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("bam takes at least one path")
		}
		f, err := readsource.ParseFormat(*format)
		if err != nil {
			return err
		}
		if f != readsource.Unknown && f != readsource.BAM && f != readsource.SAM {
			return fmt.Errorf("bam: -format must be bam or sam, but got %s", *format)
		}
		return hashFiles(vcontext.Background(), env, flags, argv, readsource.Opener(f))
	})
	return cmd
}

func newCmdFASTQ() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "fastq",
		Short: "Digest the reads of a FASTQ file or a pair of FASTQ files",
		Long: `
With one path, every read is hashed as the first read of its pair. With two
paths, the files are R1 and R2 of a paired run and must list the same read
names in the same order. Files may be gzipped.`,
		ArgsName: "R1path [R2path]",
	}
	flags := newHashFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		ctx := vcontext.Background()
		switch len(argv) {
		case 1:
			return hashFiles(ctx, env, flags, argv, readsource.Opener(readsource.FASTQ))
		case 2:
			r1, r2 := argv[0], argv[1]
			open := func(ctx context.Context, _ string) (readhash.Source, error) {
				return readsource.NewFASTQPair(ctx, r1, r2)
			}
			return hashFiles(ctx, env, flags, []string{r1}, open)
		}
		return fmt.Errorf("fastq takes one or two paths, but got %v", argv)
	})
	return cmd
}

func newCmdFASTA() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "fasta",
		Short:    "Digest the sequences of FASTA files",
		Long:     "\nFASTA records carry no quality; use -no-quality when comparing with other formats.",
		ArgsName: "path...",
	}
	flags := newHashFlags(cmd)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("fasta takes at least one path")
		}
		return hashFiles(vcontext.Background(), env, flags, argv, readsource.Opener(readsource.FASTA))
	})
	return cmd
}

func newCmdMerge() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "merge",
		Short: "Merge digest state files written with -state",
		Long: `
Merge state files written by the bam, fastq or fasta commands with -state and
print the combined digest. The result equals the digest of all the input files
hashed in one run. All state files must use the same digest function and the
same -lanes setting.`,
		ArgsName: "statepath...",
	}
	statePath := cmd.Flags.String("state", "", "Also write the merged state to this path. A .sz suffix compresses it with snappy.")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) == 0 {
			return fmt.Errorf("merge takes at least one state path")
		}
		return merge(vcontext.Background(), env, argv, *statePath)
	})
	return cmd
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-readhash",
		Short:    "Order-independent digests of sequencing reads",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdBAM(),
			newCmdFASTQ(),
			newCmdFASTA(),
			newCmdMerge(),
		},
	}
}

// Run runs the bio-readhash command line and exits.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
