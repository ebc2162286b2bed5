package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/toolbox/internal/cmdregistry"
	"github.com/donaldgifford/toolbox/internal/getter"
)

var (
	fetchRef      string
	fetchChecksum string
	fetchSubpath  string
	fetchFile     bool
)

var remoteFetchCmd = cmdregistry.Register("remote", "fetch")(&cobra.Command{
	Use:   "fetch <source> [dest]",
	Short: "Download a file or directory",
	Long: `Download a source using go-getter URL syntax (git, http, s3, local paths).

When dest is omitted the source is written under fetch.dest_dir from the
config, or the current directory, using the last element of the source path.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRemoteFetch,
})

func init() {
	remoteFetchCmd.Flags().StringVar(&fetchRef, "ref", "", "git ref to check out")
	remoteFetchCmd.Flags().StringVar(&fetchChecksum, "checksum", "", "expected sha256 checksum")
	remoteFetchCmd.Flags().StringVar(&fetchSubpath, "subpath", "", "subdirectory of the source to fetch")
	remoteFetchCmd.Flags().BoolVar(&fetchFile, "file", false, "fetch a single file instead of a directory")
}

func runRemoteFetch(c *cobra.Command, args []string) error {
	w := newWriter(c)

	src := getter.SourceURL(args[0], fetchSubpath)

	dest := filepath.Join(activeConfig.Fetch.DestDir, getter.DefaultDest(src))
	if len(args) > 1 {
		dest = args[1]
	}

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	w.Infof("Fetching %s into %s", getter.AppendQuery(src, fetchRef, ""), dest)

	g := getter.New(nil)

	got, err := g.Fetch(c.Context(), src, dest, getter.FetchOpts{
		Ref:      fetchRef,
		Checksum: fetchChecksum,
		Pwd:      pwd,
		File:     fetchFile,
	})
	if err != nil {
		return err
	}

	w.Successf("Fetched %s to %s", args[0], got)

	return nil
}
