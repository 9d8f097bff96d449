package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
		Long: `Manage the rendered artifact cache.

'steprepeat render' keeps rendered previews under $XDG_CACHE_HOME/steprepeat
so repeated renders of the same layout are served from disk.`,
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the number and size of cached artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			entries, size, err := cacheUsage(dir)
			if err != nil {
				return err
			}
			printKeyValue("Directory", dir)
			printKeyValue("Entries", fmt.Sprintf("%d", entries))
			printKeyValue("Size", humanBytes(size))
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			count, err := clearCache(dir)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			loggerFromContext(cmd.Context()).Debug("cleared cache", "dir", dir, "entries", count)
			printSuccess("Cleared %d cached artifacts", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// isCacheEntry reports whether path looks like a file written by the file
// cache. Other files in the directory are left alone.
func isCacheEntry(path string) bool {
	return strings.HasSuffix(path, ".json") && !strings.HasPrefix(filepath.Base(path), ".tmp-")
}

// cacheUsage counts cache entries under dir and their total size. A missing
// directory is an empty cache.
func cacheUsage(dir string) (entries int, size int64, err error) {
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return fs.SkipAll
			}
			return nil
		}
		if d.IsDir() || !isCacheEntry(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		entries++
		size += info.Size()
		return nil
	})
	return entries, size, err
}

// clearCache removes every cache entry under dir, then the shard
// directories left empty. It returns the number of entries removed.
func clearCache(dir string) (int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	var shards []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == dir {
			return nil
		}
		if d.IsDir() {
			shards = append(shards, path)
			return nil
		}
		if isCacheEntry(path) && os.Remove(path) == nil {
			count++
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	// Deepest first so nested directories empty out before their parents.
	for i := len(shards) - 1; i >= 0; i-- {
		_ = os.Remove(shards[i])
	}
	return count, nil
}

// humanBytes formats n as B, KiB or MiB.
func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
