package cmd

import (
	"context"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/readhash/readhash"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

// hashFlags are the flags shared by the hashing commands.
type hashFlags struct {
	debug       *bool
	noReadNames *bool
	noQuality   *bool
	noPaired    *bool
	lanes       *bool // nil for commands without read groups
	digest      *string
	parallelism *int
	state       *string
}

func newHashFlags(cmd *cmdline.Command) *hashFlags {
	return &hashFlags{
		debug:       cmd.Flags.Bool("debug", false, "Print the hashed string and its value for every read instead of the digest"),
		noReadNames: cmd.Flags.Bool("no-readnames", false, "Do not include read names in the digest"),
		noQuality:   cmd.Flags.Bool("no-quality", false, "Do not include base qualities in the digest"),
		noPaired:    cmd.Flags.Bool("no-paired", false, "Hash all reads as single-end; second reads get the first-read suffix"),
		digest: cmd.Flags.String("digest", "md5",
			"Per-read hash function, one of "+strings.Join(readhash.DigestFuncNames(), ", ")+". Digests made with different functions are not comparable."),
		parallelism: cmd.Flags.Int("parallelism", 1, "Number of files to read concurrently"),
		state:       cmd.Flags.String("state", "", "Also write the digest state to this path, for later use with merge. A .sz suffix compresses it with snappy."),
	}
}

func (f *hashFlags) opts() (readhash.Opts, error) {
	digest, err := readhash.ParseDigestFunc(*f.digest)
	if err != nil {
		return readhash.Opts{}, err
	}
	opts := readhash.Opts{
		IncludeNames:   !*f.noReadNames,
		IncludeQuality: !*f.noQuality,
		Paired:         !*f.noPaired,
		Debug:          *f.debug,
		Digest:         digest,
	}
	if f.lanes != nil {
		opts.Partition = *f.lanes
	}
	if opts.Debug && *f.state != "" {
		return opts, errors.New("-state cannot be used with -debug")
	}
	return opts, nil
}

// hashFiles hashes paths and writes the report, or the per-read trace in
// debug mode, to env.Stdout.
func hashFiles(ctx context.Context, env *cmdline.Env, flags *hashFlags, paths []string, open readhash.OpenFunc) error {
	opts, err := flags.opts()
	if err != nil {
		return err
	}
	h := readhash.NewHasher(opts, env.Stdout)
	agg, err := h.HashFiles(ctx, paths, open, *flags.parallelism)
	if err != nil {
		return err
	}
	if opts.Debug {
		return nil
	}
	log.Debug.Printf("%d files: %d reads in %d lanes", len(paths), agg.Total().Count, agg.Lanes().Len())
	if *flags.state != "" {
		if err := readhash.WriteState(ctx, *flags.state, readhash.NewState(agg, opts)); err != nil {
			return err
		}
	}
	return readhash.WriteReport(env.Stdout, agg, opts.Partition)
}

func merge(ctx context.Context, env *cmdline.Env, paths []string, statePath string) error {
	states := make([]readhash.State, len(paths))
	for i, path := range paths {
		s, err := readhash.ReadState(ctx, path)
		if err != nil {
			return err
		}
		states[i] = s
	}
	merged, agg, err := readhash.MergeStates(states)
	if err != nil {
		return err
	}
	if statePath != "" {
		if err := readhash.WriteState(ctx, statePath, merged); err != nil {
			return err
		}
	}
	return readhash.WriteReport(env.Stdout, agg, merged.Partitioned)
}
